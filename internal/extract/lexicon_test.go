package extract

import "testing"

func TestColor(t *testing.T) {
	t.Parallel()

	if got := Color("BILLY Police bílá"); got != "white" {
		t.Fatalf("unexpected color: %q", got)
	}
	if got := Color("Křeslo antracitově šedé"); got != "anthracite" {
		t.Fatalf("specific stem must win over generic gray: %q", got)
	}
	if got := Color("Stolek LACK"); got != "" {
		t.Fatalf("expected no color, got %q", got)
	}
}

func TestMaterialComposition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want string
	}{
		{"Jídelní stůl masivní dub", "solid_wood (oak)"},
		{"Komoda dubová dýha", "engineered_wood (oak veneer)"},
		{"Skříň z masivu", "solid_wood"},
		{"Police dřevotříska bílá", "particleboard"},
		{"Stolek dubový", "wood (oak)"},
		{"Rám nerezová ocel", "stainless_steel"},
		{"Povlečení bavlněné", "cotton"},
		{"Stolek LACK", ""},
	}
	for _, tc := range cases {
		if got := Material(tc.text); got != tc.want {
			t.Fatalf("Material(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestKnownMaterialTag(t *testing.T) {
	t.Parallel()

	if !KnownMaterialTag("solid_wood (oak)") {
		t.Fatal("composite solid wood tag must be known")
	}
	if !KnownMaterialTag("particleboard") {
		t.Fatal("engineered wood tag must be known")
	}
	if KnownMaterialTag("plutonium") {
		t.Fatal("unknown tag must not pass")
	}
	if KnownMaterialTag("") {
		t.Fatal("empty tag must not pass")
	}
}

func TestKnownColorTag(t *testing.T) {
	t.Parallel()

	if !KnownColorTag("white") {
		t.Fatal("white must be known")
	}
	if KnownColorTag("chartreuse") {
		t.Fatal("unknown color must not pass")
	}
}
