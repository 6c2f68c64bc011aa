package lexnorm_test

import (
	"testing"

	"github.com/awesomefanda/adjnt/pkg/lexnorm"
)

func TestSingularize(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"apples", "apple"},
		{"bananas", "banana"},
		{"children", "child"},
		{"people", "person"},
		{"berries", "berry"},
		{"dishes", "dish"},
		{"peaches", "peach"},
		{"glasses", "glass"},
		{"boxes", "box"},
		{"tomatoes", "tomatoe"},
		{"milk", "milk"},
		{"egg", "egg"},
		// Double-s words are left alone so the rules stay idempotent.
		{"glass", "glass"},
		// Short words stay untouched.
		{"is", "is"},
		{"as", "as"},
		// Normalization to lower case.
		{"Apples", "apple"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got := lexnorm.Singularize(tt.word)
			if got != tt.want {
				t.Errorf("Singularize(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestSingularizeIdempotent(t *testing.T) {
	words := []string{"apples", "children", "berries", "dishes", "boxes", "milk", "glass", ""}
	for _, w := range words {
		once := lexnorm.Singularize(w)
		twice := lexnorm.Singularize(once)
		if once != twice {
			t.Errorf("Singularize not idempotent for %q: %q then %q", w, once, twice)
		}
	}
}

func TestCapitalizeStore(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"safeway", "Safeway"},
		{"Safeway", "Safeway"},
		{"costco wholesale", "Costco wholesale"},
		{"general", "General"},
		{"", ""},
	}

	for _, tt := range tests {
		got := lexnorm.CapitalizeStore(tt.name)
		if got != tt.want {
			t.Errorf("CapitalizeStore(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
