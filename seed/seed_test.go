package seed

import (
	"regexp"
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	rng := NewRNG(1)
	signatures := Generate(rng, 200)

	if len(signatures) != 200 {
		t.Fatalf("len = %d, want 200", len(signatures))
	}

	idPattern := regexp.MustCompile(`^[0-9]{10}$`)
	seen := make(map[string]bool)
	now := time.Now()
	commented := 0

	for _, sig := range signatures {
		if sig.Name == "" {
			t.Fatal("empty name")
		}
		if !idPattern.MatchString(sig.NationalID) {
			t.Fatalf("national id %q does not match pattern", sig.NationalID)
		}
		if seen[sig.NationalID] {
			t.Fatalf("duplicate national id %q", sig.NationalID)
		}
		seen[sig.NationalID] = true

		age := now.Sub(sig.Signed)
		if age < 0 || age > 14*24*time.Hour+time.Minute {
			t.Fatalf("signed %v outside the two-week window", sig.Signed)
		}

		if sig.Comment != "" {
			commented++
			if !sig.Anonymous {
				t.Fatal("commented fixture rows should be anonymous")
			}
		}
	}

	// Roughly half carry a comment; allow a wide band.
	if commented < 50 || commented > 150 {
		t.Errorf("commented = %d, expected roughly half of 200", commented)
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a := Generate(NewRNG(42), 10)
	b := Generate(NewRNG(42), 10)

	for i := range a {
		if a[i].Name != b[i].Name || a[i].NationalID != b[i].NationalID {
			t.Fatalf("row %d differs across identical seeds", i)
		}
	}
}
