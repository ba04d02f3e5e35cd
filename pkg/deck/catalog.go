package deck

import (
	"github.com/matzehuels/folio/pkg/errors"
)

// SectionID identifies one section of the deck.
type SectionID string

// Default section identifiers, in presentation order.
const (
	SectionHero       SectionID = "hero"
	SectionProfile    SectionID = "profile"
	SectionMatrix     SectionID = "matrix"
	SectionExperience SectionID = "experience"
	SectionTech       SectionID = "tech"
	SectionProjects   SectionID = "projects"
	SectionContact    SectionID = "contact"
)

// Catalog is the fixed, ordered list of sections. Order defines previous/next.
// A Catalog is immutable once built.
type Catalog struct {
	ids   []SectionID
	index map[SectionID]int
}

// NewCatalog builds a catalog from ids in order.
// It rejects an empty list, invalid identifiers and duplicates.
func NewCatalog(ids ...SectionID) (*Catalog, error) {
	if len(ids) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSection, "catalog must contain at least one section")
	}

	c := &Catalog{
		ids:   make([]SectionID, len(ids)),
		index: make(map[SectionID]int, len(ids)),
	}
	for i, id := range ids {
		if err := errors.ValidateSectionID(string(id)); err != nil {
			return nil, err
		}
		if _, dup := c.index[id]; dup {
			return nil, errors.New(errors.ErrCodeInvalidSection, "duplicate section id: %s", id)
		}
		c.ids[i] = id
		c.index[id] = i
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on error. Use it for static catalogs.
func MustCatalog(ids ...SectionID) *Catalog {
	c, err := NewCatalog(ids...)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultCatalog returns the portfolio's standard section order.
func DefaultCatalog() *Catalog {
	return MustCatalog(
		SectionHero,
		SectionProfile,
		SectionMatrix,
		SectionExperience,
		SectionTech,
		SectionProjects,
		SectionContact,
	)
}

// Len returns the number of sections.
func (c *Catalog) Len() int { return len(c.ids) }

// At returns the section at index i. It panics if i is out of range.
func (c *Catalog) At(i int) SectionID { return c.ids[i] }

// Index returns the position of id, or false if id is not in the catalog.
func (c *Catalog) Index(id SectionID) (int, bool) {
	i, ok := c.index[id]
	return i, ok
}

// Contains reports whether id is in the catalog.
func (c *Catalog) Contains(id SectionID) bool {
	_, ok := c.index[id]
	return ok
}

// First returns the first section.
func (c *Catalog) First() SectionID { return c.ids[0] }

// Last returns the final section.
func (c *Catalog) Last() SectionID { return c.ids[len(c.ids)-1] }

// IDs returns a copy of the ordered identifiers.
func (c *Catalog) IDs() []SectionID {
	out := make([]SectionID, len(c.ids))
	copy(out, c.ids)
	return out
}

// Strings returns the identifiers as plain strings, in order.
func (c *Catalog) Strings() []string {
	out := make([]string, len(c.ids))
	for i, id := range c.ids {
		out[i] = string(id)
	}
	return out
}
