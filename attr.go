package attr

import (
	"fmt"

	"github.com/bgrewell/attr-kit/pkg"
	"github.com/bgrewell/attr-kit/pkg/catalog"
	"github.com/bgrewell/attr-kit/pkg/consts"
	"github.com/bgrewell/attr-kit/pkg/options"
	"github.com/bgrewell/attr-kit/pkg/tristate"
	"github.com/go-logr/logr"
)

// New builds an empty attribute rule. By default it uses the built-in Linux
// chattr flag catalog with table validation enabled; use the options to pick
// another platform, supply a custom catalog, or attach a logger.
func New(opts ...options.Option) (Rule, error) {
	// Set default options
	o := options.Options{
		Platform:       consts.PLATFORM_LINUX,
		ValidateTables: true,
		Logger:         logr.Discard(),
	}

	// Apply options
	for _, opt := range opts {
		opt(&o)
	}

	cat := o.Catalog
	if cat == nil {
		var err error
		cat, err = catalog.ForPlatform(o.Platform)
		if err != nil {
			return nil, err
		}
	}

	if o.ValidateTables {
		if err := cat.Validate(); err != nil {
			return nil, fmt.Errorf("invalid flag catalog: %w", err)
		}
	}

	return pkg.NewAttributeRule(cat, o), nil
}

// Rule is a tri-state flag rule: for every flag in its catalog it tracks
// whether the flag must be forced on, forced off, or left untouched, kept in
// sync both ways with the two raw masks ("bits required set" and "bits
// required unset") that external systems consume.
type Rule interface {
	Catalog() catalog.Catalog
	Cells() []*tristate.Cell
	Cell(name string) (*tristate.Cell, bool)
	BitsSet() uint32
	BitsUnset() uint32
	SetBitsSet(m uint32)
	SetBitsUnset(m uint32)
	SetState(name string, state tristate.TriState) error
	Evaluate(current uint32) uint32
	Matches(current uint32) bool
	Summary() string
	String() string
}
