package deck

import (
	"testing"

	"github.com/matzehuels/folio/pkg/errors"
)

func TestNewCatalog(t *testing.T) {
	c, err := NewCatalog("hero", "profile", "contact")
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
	if c.First() != "hero" || c.Last() != "contact" {
		t.Errorf("First/Last = %s/%s, want hero/contact", c.First(), c.Last())
	}
	if i, ok := c.Index("profile"); !ok || i != 1 {
		t.Errorf("Index(profile) = %d, %v; want 1, true", i, ok)
	}
	if c.Contains("projects") {
		t.Error("Contains(projects) = true, want false")
	}
}

func TestNewCatalogRejects(t *testing.T) {
	tests := []struct {
		name string
		ids  []SectionID
	}{
		{name: "empty", ids: nil},
		{name: "duplicate", ids: []SectionID{"hero", "hero"}},
		{name: "blank id", ids: []SectionID{"hero", ""}},
		{name: "whitespace", ids: []SectionID{"about me"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.ids...)
			if !errors.Is(err, errors.ErrCodeInvalidSection) {
				t.Errorf("NewCatalog error = %v, want %s", err, errors.ErrCodeInvalidSection)
			}
		})
	}
}

func TestCatalogIsImmutable(t *testing.T) {
	c := DefaultCatalog()
	ids := c.IDs()
	ids[0] = "mutated"

	if c.First() != SectionHero {
		t.Errorf("First() = %s after mutating IDs() copy, want hero", c.First())
	}
}

func TestDefaultCatalogOrder(t *testing.T) {
	want := []string{"hero", "profile", "matrix", "experience", "tech", "projects", "contact"}
	got := DefaultCatalog().Strings()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
