package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"strings"

	"github.com/Michwuanquana/vybav.it-sub000/internal/catalog"
)

// Kind names the signal that produced a duplicate verdict.
type Kind string

const (
	// KindIDCollision means two distinct rows derived the identical id,
	// which signals a digest or parser problem upstream.
	KindIDCollision  Kind = "id_collision"
	KindExactName    Kind = "exact_name"
	KindFuzzySimilar Kind = "fuzzy_similar"
)

// Verdict describes one detected duplicate. Absence of a verdict means
// the candidate is treated as unique.
type Verdict struct {
	Kind        Kind
	Existing    *catalog.Product
	Incoming    *catalog.Product
	Similarity  float64
	Explanation string
}

// Stats reports the detector's index sizes.
type Stats struct {
	Accepted int
	Buckets  int
}

const (
	fuzzyThreshold       = 0.94
	sharedImageThreshold = 0.80

	nameLenPrefilterRatio     = 0.10
	nameLenPrefilterSameImage = 0.25
	dimensionAxisTolerance    = 0.05

	weightName       = 0.40
	weightBrand      = 0.10
	weightCategory   = 0.10
	weightPrice      = 0.15
	weightDimensions = 0.15
	weightCollection = 0.10
)

// Detector holds the run-scoped duplicate indices. One instance per import
// run; never shared across runs and never used concurrently.
type Detector struct {
	byID         map[string]*catalog.Product
	byNameDigest map[string]*catalog.Product
	buckets      map[string][]*catalog.Product
}

func NewDetector() *Detector {
	return &Detector{
		byID:         make(map[string]*catalog.Product),
		byNameDigest: make(map[string]*catalog.Product),
		buckets:      make(map[string][]*catalog.Product),
	}
}

// Check decides whether the candidate collides with or closely resembles an
// accepted product. Signals short-circuit in order: id collision, exact
// normalized name, then fuzzy bucket search.
func (d *Detector) Check(p *catalog.Product) *Verdict {
	if existing, ok := d.byID[p.ID]; ok {
		return &Verdict{
			Kind:        KindIDCollision,
			Existing:    existing,
			Incoming:    p,
			Similarity:  1,
			Explanation: fmt.Sprintf("id %s already accepted for %q", p.ID, existing.Name),
		}
	}

	if existing, ok := d.byNameDigest[nameDigest(p.Name)]; ok {
		return &Verdict{
			Kind:        KindExactName,
			Existing:    existing,
			Incoming:    p,
			Similarity:  1,
			Explanation: fmt.Sprintf("normalized name matches accepted product %s", existing.ID),
		}
	}

	return d.checkFuzzy(p)
}

func (d *Detector) checkFuzzy(p *catalog.Product) *Verdict {
	incomingName := normalizeName(p.Name)
	compared := make(map[string]struct{})

	for _, key := range bucketKeys(p) {
		for _, candidate := range d.buckets[key] {
			if _, done := compared[candidate.ID]; done {
				continue
			}
			compared[candidate.ID] = struct{}{}

			sameImage := candidate.ImageURL != "" && candidate.ImageURL == p.ImageURL
			if candidate.Brand != p.Brand && p.CollectionName == "" && !sameImage {
				continue
			}
			if !passesLengthPrefilter(incomingName, normalizeName(candidate.Name), sameImage) {
				continue
			}

			similarity, factors := similarityScore(p, candidate)

			if sameImage && similarity >= sharedImageThreshold {
				return &Verdict{
					Kind:        KindExactName,
					Existing:    candidate,
					Incoming:    p,
					Similarity:  similarity,
					Explanation: fmt.Sprintf("identical image URL with %.0f%% overall similarity", similarity*100),
				}
			}
			if similarity >= fuzzyThreshold {
				return &Verdict{
					Kind:        KindFuzzySimilar,
					Existing:    candidate,
					Incoming:    p,
					Similarity:  similarity,
					Explanation: explainFuzzy(similarity, factors),
				}
			}
		}
	}
	return nil
}

// Accept registers a kept product under its id, its name digest, and every
// bucket it belongs to. Must be called exactly once per imported row, after
// validation and duplicate checks pass; buckets must never hold rejected
// candidates.
func (d *Detector) Accept(p *catalog.Product) {
	d.byID[p.ID] = p
	d.byNameDigest[nameDigest(p.Name)] = p
	for _, key := range bucketKeys(p) {
		d.buckets[key] = append(d.buckets[key], p)
	}
}

func (d *Detector) Stats() Stats {
	return Stats{
		Accepted: len(d.byID),
		Buckets:  len(d.buckets),
	}
}

// Candidates are drawn only from buckets the product falls into, bounding
// the fuzzy scan to O(bucket size).
func bucketKeys(p *catalog.Product) []string {
	var keys []string
	if collection := strings.TrimSpace(strings.ToLower(p.CollectionName)); collection != "" {
		keys = append(keys, "collection:"+collection)
	}
	keys = append(keys, "brandcat:"+string(p.Brand)+":"+string(p.Category))
	return keys
}

func passesLengthPrefilter(a, b string, sameImage bool) bool {
	la := len([]rune(a))
	lb := len([]rune(b))
	longer := la
	if lb > longer {
		longer = lb
	}
	if longer == 0 {
		return false
	}
	ratio := math.Abs(float64(la-lb)) / float64(longer)
	limit := nameLenPrefilterRatio
	if sameImage {
		limit = nameLenPrefilterSameImage
	}
	return ratio <= limit
}

type similarityFactors struct {
	name             float64
	sharedCollection bool
	closePrice       bool
	closeDimensions  bool
}

// similarityScore is a weighted sum renormalized by the factors actually
// present: price and dimension closeness only score when both sides carry
// them, collection equality only when both sides have a collection name.
func similarityScore(a, b *catalog.Product) (float64, similarityFactors) {
	var factors similarityFactors

	nameScore := nameSimilarity(normalizeName(a.Name), normalizeName(b.Name))
	factors.name = nameScore

	weighted := weightName * nameScore
	totalWeight := weightName

	brandScore := 0.0
	if a.Brand == b.Brand {
		brandScore = 1
	}
	weighted += weightBrand * brandScore
	totalWeight += weightBrand

	categoryScore := 0.0
	if a.Category == b.Category {
		categoryScore = 1
	}
	weighted += weightCategory * categoryScore
	totalWeight += weightCategory

	if avg := float64(a.Price+b.Price) / 2; avg > 0 {
		diff := math.Abs(float64(a.Price - b.Price))
		priceScore := 1 - diff/avg
		if priceScore < 0 {
			priceScore = 0
		}
		weighted += weightPrice * priceScore
		totalWeight += weightPrice
		factors.closePrice = priceScore >= 0.95
	}

	if score, ok := dimensionCloseness(a.Dimensions, b.Dimensions); ok {
		weighted += weightDimensions * score
		totalWeight += weightDimensions
		factors.closeDimensions = score >= 0.99
	}

	collectionA := strings.TrimSpace(strings.ToLower(a.CollectionName))
	collectionB := strings.TrimSpace(strings.ToLower(b.CollectionName))
	if collectionA != "" && collectionB != "" {
		collectionScore := 0.0
		if collectionA == collectionB {
			collectionScore = 1
			factors.sharedCollection = true
		}
		weighted += weightCollection * collectionScore
		totalWeight += weightCollection
	}

	return weighted / totalWeight, factors
}

// dimensionCloseness is the fraction of shared axes whose values lie within
// the tolerance of each other. Only scored when the sides share at least one
// populated axis.
func dimensionCloseness(a, b *catalog.Dimensions) (float64, bool) {
	axesA := a.Axes()
	axesB := b.Axes()
	if len(axesA) == 0 || len(axesB) == 0 {
		return 0, false
	}

	shared := 0
	within := 0
	for axis, valueA := range axesA {
		valueB, ok := axesB[axis]
		if !ok {
			continue
		}
		shared++
		larger := math.Max(valueA, valueB)
		if larger == 0 || math.Abs(valueA-valueB)/larger <= dimensionAxisTolerance {
			within++
		}
	}
	if shared == 0 {
		return 0, false
	}
	return float64(within) / float64(shared), true
}

func explainFuzzy(similarity float64, factors similarityFactors) string {
	reasons := []string{fmt.Sprintf("%.1f%% overall similarity", similarity*100)}
	if factors.name >= 0.9 {
		reasons = append(reasons, "near-identical name")
	}
	if factors.sharedCollection {
		reasons = append(reasons, "shared collection")
	}
	if factors.closePrice {
		reasons = append(reasons, "close price")
	}
	if factors.closeDimensions {
		reasons = append(reasons, "near-identical dimensions")
	}
	return strings.Join(reasons, ", ")
}

func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

func nameDigest(name string) string {
	sum := sha256.Sum256([]byte(normalizeName(name)))
	return hex.EncodeToString(sum[:])
}
