package extract

import "testing"

func floatVal(t *testing.T, p *float64, field string) float64 {
	t.Helper()
	if p == nil {
		t.Fatalf("expected %s to be set", field)
	}
	return *p
}

func TestDimensionsTriplet(t *testing.T) {
	t.Parallel()

	d := Dimensions("BILLY Police 80x28x202")
	if d == nil {
		t.Fatal("expected triplet to parse")
	}
	if got := floatVal(t, d.Width, "width"); got != 80 {
		t.Fatalf("unexpected width: %g", got)
	}
	if got := floatVal(t, d.Height, "height"); got != 28 {
		t.Fatalf("unexpected height: %g", got)
	}
	if got := floatVal(t, d.Depth, "depth"); got != 202 {
		t.Fatalf("unexpected depth: %g", got)
	}
	if d.Length != nil || d.Diameter != nil {
		t.Fatal("triplet must not populate length or diameter")
	}
}

func TestDimensionsPair(t *testing.T) {
	t.Parallel()

	d := Dimensions("Povlečení 80x160")
	if d == nil {
		t.Fatal("expected pair to parse")
	}
	if got := floatVal(t, d.Width, "width"); got != 80 {
		t.Fatalf("unexpected width: %g", got)
	}
	if got := floatVal(t, d.Height, "height"); got != 160 {
		t.Fatalf("unexpected height: %g", got)
	}
	if d.Depth != nil || d.Diameter != nil {
		t.Fatal("pair must not populate depth or diameter")
	}
}

func TestDimensionsDiameterBeatsTriplet(t *testing.T) {
	t.Parallel()

	d := Dimensions("Stolek Ø120 x V45")
	if d == nil {
		t.Fatal("expected diameter form to parse")
	}
	if got := floatVal(t, d.Diameter, "diameter"); got != 120 {
		t.Fatalf("unexpected diameter: %g", got)
	}
	if got := floatVal(t, d.Height, "height"); got != 45 {
		t.Fatalf("unexpected height: %g", got)
	}
	if d.Width != nil {
		t.Fatal("diameter form must not populate width")
	}
}

func TestDimensionsLabeled(t *testing.T) {
	t.Parallel()

	d := Dimensions("Jídelní stůl Š80 x D150 x V75")
	if d == nil {
		t.Fatal("expected labeled form to parse")
	}
	if got := floatVal(t, d.Width, "width"); got != 80 {
		t.Fatalf("unexpected width: %g", got)
	}
	if got := floatVal(t, d.Length, "length"); got != 150 {
		t.Fatalf("unexpected length: %g", got)
	}
	if got := floatVal(t, d.Height, "height"); got != 75 {
		t.Fatalf("unexpected height: %g", got)
	}
}

func TestDimensionsLabeledMeters(t *testing.T) {
	t.Parallel()

	d := Dimensions("Koberec Š 1,4 m x D 2 m")
	if d == nil {
		t.Fatal("expected meter-labeled form to parse")
	}
	if got := floatVal(t, d.Width, "width"); got != 140 {
		t.Fatalf("unexpected width in cm: %g", got)
	}
	if got := floatVal(t, d.Length, "length"); got != 200 {
		t.Fatalf("unexpected length in cm: %g", got)
	}
}

func TestDimensionsSingleLabeled(t *testing.T) {
	t.Parallel()

	d := Dimensions("Police V 25 cm")
	if d == nil {
		t.Fatal("expected single labeled value to parse")
	}
	if got := floatVal(t, d.Height, "height"); got != 25 {
		t.Fatalf("unexpected height: %g", got)
	}
	if d.Width != nil || d.Length != nil {
		t.Fatal("only height should be populated")
	}
}

func TestDimensionsSingleLabeledWidth(t *testing.T) {
	t.Parallel()

	d := Dimensions("Polička Š 60")
	if d == nil {
		t.Fatal("expected single labeled width to parse")
	}
	if got := floatVal(t, d.Width, "width"); got != 60 {
		t.Fatalf("unexpected width: %g", got)
	}

	d = Dimensions("Š80")
	if d == nil {
		t.Fatal("expected leading labeled width to parse")
	}
	if got := floatVal(t, d.Width, "width"); got != 80 {
		t.Fatalf("unexpected width: %g", got)
	}
}

func TestDimensionsTablecloth(t *testing.T) {
	t.Parallel()

	d := Dimensions("Ubrus vánoční 140")
	if d == nil {
		t.Fatal("expected tablecloth size to parse")
	}
	if got := floatVal(t, d.Width, "width"); got != 140 {
		t.Fatalf("unexpected width: %g", got)
	}
}

func TestDimensionsBareCm(t *testing.T) {
	t.Parallel()

	d := Dimensions("Váza keramická 45 cm")
	if d == nil {
		t.Fatal("expected bare cm value to parse")
	}
	if got := floatVal(t, d.Height, "height"); got != 45 {
		t.Fatalf("unexpected height: %g", got)
	}
}

func TestDimensionsNoMatch(t *testing.T) {
	t.Parallel()

	if d := Dimensions("BILLY Police bílá"); d != nil {
		t.Fatalf("expected nil for text without measurements, got %+v", d)
	}
	if d := Dimensions(""); d != nil {
		t.Fatal("expected nil for empty text")
	}
}

func TestDimensionsFromRow(t *testing.T) {
	t.Parallel()

	d := DimensionsFromRow([]string{"BILLY", "bílá", "80x28x202", "1 490 Kč"})
	if d == nil {
		t.Fatal("expected row scan to find the triplet")
	}
	if got := floatVal(t, d.Width, "width"); got != 80 {
		t.Fatalf("unexpected width: %g", got)
	}

	if d := DimensionsFromRow([]string{"BILLY", "bílá"}); d != nil {
		t.Fatal("expected nil when no value carries measurements")
	}
}
