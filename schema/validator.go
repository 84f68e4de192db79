package payloadschema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed product.schema.json
var productSchemaJSON string

// ProductPayload is the canonical product shape exchanged as JSON, e.g. by the
// offline validate command or a future feed producer.
type ProductPayload struct {
	PayloadVersion   string             `json:"payload_version"`
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Brand            string             `json:"brand"`
	Category         string             `json:"category"`
	CollectionName   *string            `json:"collection_name,omitempty"`
	StyleTags        []string           `json:"style_tags,omitempty"`
	Color            *string            `json:"color,omitempty"`
	Material         *string            `json:"material,omitempty"`
	Price            int                `json:"price"`
	ImageURL         string             `json:"image_url"`
	AdditionalImages []string           `json:"additional_images,omitempty"`
	AffiliateURL     string             `json:"affiliate_url"`
	Dimensions       *PayloadDimensions `json:"dimensions,omitempty"`
	Availability     *string            `json:"availability,omitempty"`
	IsSeasonal       *bool              `json:"is_seasonal,omitempty"`
	Season           *string            `json:"season,omitempty"`
	SearchKeywords   []string           `json:"search_keywords,omitempty"`
}

type PayloadDimensions struct {
	Width    *float64 `json:"width,omitempty"`
	Height   *float64 `json:"height,omitempty"`
	Depth    *float64 `json:"depth,omitempty"`
	Length   *float64 `json:"length,omitempty"`
	Diameter *float64 `json:"diameter,omitempty"`
}

var (
	compileOnce       sync.Once
	compiledSchema    *jsonschema.Schema
	compiledSchemaErr error
)

// ValidateProductPayload checks a raw JSON document against the embedded
// product schema and a handful of semantic rules the schema cannot express.
func ValidateProductPayload(payload json.RawMessage) (*ProductPayload, error) {
	value, err := decodeStrictJSON(payload)
	if err != nil {
		return nil, fmt.Errorf("decode payload JSON: %w", err)
	}

	schema, err := loadSchema()
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}

	if err := schema.Validate(value); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	normalized, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("normalize payload JSON: %w", err)
	}

	var item ProductPayload
	if err := json.Unmarshal(normalized, &item); err != nil {
		return nil, fmt.Errorf("unmarshal payload: %w", err)
	}

	if err := validateSemantics(&item); err != nil {
		return nil, err
	}

	return &item, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		compiler.AssertFormat = true

		if err := compiler.AddResource("product.schema.json", strings.NewReader(productSchemaJSON)); err != nil {
			compiledSchemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}

		schema, err := compiler.Compile("product.schema.json")
		if err != nil {
			compiledSchemaErr = fmt.Errorf("compile schema: %w", err)
			return
		}

		compiledSchema = schema
	})

	if compiledSchemaErr != nil {
		return nil, compiledSchemaErr
	}
	if compiledSchema == nil {
		return nil, fmt.Errorf("schema not initialized")
	}
	return compiledSchema, nil
}

func decodeStrictJSON(raw []byte) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("payload is empty")
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("payload contains trailing content")
	}

	return value, nil
}

func validateSemantics(item *ProductPayload) error {
	if item == nil {
		return fmt.Errorf("payload is nil")
	}

	if !strings.HasPrefix(item.ID, item.Brand+"-") {
		return fmt.Errorf("id must start with the brand prefix %q", item.Brand+"-")
	}

	if err := validateURI("image_url", item.ImageURL); err != nil {
		return err
	}
	if err := validateURI("affiliate_url", item.AffiliateURL); err != nil {
		return err
	}
	for i, img := range item.AdditionalImages {
		if err := validateURI(fmt.Sprintf("additional_images[%d]", i), img); err != nil {
			return err
		}
	}

	seasonal := item.IsSeasonal != nil && *item.IsSeasonal
	if item.Season != nil && !seasonal {
		return fmt.Errorf("season is set but is_seasonal is not true")
	}

	for i, tag := range item.StyleTags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("style_tags[%d] must not be empty", i)
		}
	}
	for i, kw := range item.SearchKeywords {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("search_keywords[%d] must not be empty", i)
		}
	}

	return nil
}

func validateURI(field, raw string) error {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%s must be a valid URL: %w", field, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s must use http or https", field)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s must have a host", field)
	}
	return nil
}
