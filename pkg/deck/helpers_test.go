package deck

import (
	"time"

	"github.com/matzehuels/folio/pkg/clock"
)

var epoch = time.Unix(1_700_000_000, 0)

func newFakeClock() *clock.Fake { return clock.NewFake(epoch) }

func threeSections() *Catalog {
	return MustCatalog("hero", "profile", "matrix")
}

// box is a fake UI node living inside a section.
type box struct{ section SectionID }

// boxResolver resolves *box targets; anything else is outside every section.
var boxResolver = ResolverFunc(func(t Target) (SectionID, bool) {
	b, ok := t.(*box)
	if !ok || b == nil {
		return "", false
	}
	return b.section, true
})
