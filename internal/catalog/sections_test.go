package catalog

import "testing"

func TestNormalizeStripsAccentsAndCase(t *testing.T) {
	cases := map[string]string{
		"Picolé":   "picole",
		"PICOLE ":  "picole",
		"picole":   "picole",
		" Açaí ":   "acai",
		"GOURMET":  "gourmet",
		"Potes":    "potes",
		"  Gelo\t": "gelo",
	}
	for input, want := range cases {
		if got := Normalize(input); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{"Picolé", "AÇAÍ", "  Pote ", "çãõéü", "already normal", ""}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestClassifyAcceptsLabelVariants(t *testing.T) {
	cases := map[string]string{
		"Picolé":  "picoles",
		"PICOLE":  "picoles",
		"picole ": "picoles",
		"Pote":    "potes-2l",
		"potes":   "potes-2l",
		"Açaí":    "acai",
		"acai":    "acai",
		"Gourmet": "gourmet",
		"gelo":    "gelo",
	}
	for raw, wantKey := range cases {
		section, ok := Classify(raw)
		if !ok {
			t.Fatalf("Classify(%q) found no section, want %q", raw, wantKey)
		}
		if section.Key != wantKey {
			t.Fatalf("Classify(%q) = %q, want %q", raw, section.Key, wantKey)
		}
	}
}

func TestClassifyUnknownLabel(t *testing.T) {
	for _, raw := range []string{"sorvete", "", "  ", "picoles de luxo"} {
		if section, ok := Classify(raw); ok {
			t.Fatalf("Classify(%q) = %q, want no match", raw, section.Key)
		}
	}
}

func TestSectionsAreDisjointForKnownLabels(t *testing.T) {
	known := []string{"Picolé", "Pote", "Potes", "Açaí", "Gourmet", "Gelo"}
	for _, raw := range known {
		matches := 0
		for _, section := range Sections() {
			if section.Matches(raw) {
				matches++
			}
		}
		if matches != 1 {
			t.Fatalf("label %q matched %d sections, want exactly 1", raw, matches)
		}
	}
}

func TestSectionsOrderIsStable(t *testing.T) {
	wantKeys := []string{"picoles", "potes-2l", "acai", "gourmet", "gelo"}
	got := Sections()
	if len(got) != len(wantKeys) {
		t.Fatalf("expected %d sections, got %d", len(wantKeys), len(got))
	}
	for i, want := range wantKeys {
		if got[i].Key != want {
			t.Fatalf("section %d = %q, want %q", i, got[i].Key, want)
		}
	}
}
