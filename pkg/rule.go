package pkg

import (
	"strings"

	"github.com/bgrewell/attr-kit/pkg/catalog"
	"github.com/bgrewell/attr-kit/pkg/helpers"
	"github.com/bgrewell/attr-kit/pkg/logging"
	"github.com/bgrewell/attr-kit/pkg/options"
	"github.com/bgrewell/attr-kit/pkg/tristate"
)

// AttributeRule is a tri-state rule over a flag catalog: per flag it records
// whether the flag must be forced on, forced off, or left alone, and keeps
// that view in sync with the two raw masks downstream consumers use.
type AttributeRule struct {
	Options options.Options

	set *tristate.FlagSet
	log *logging.Logger
}

// NewAttributeRule builds an empty rule (all flags untouched) over the given
// catalog.
func NewAttributeRule(c catalog.Catalog, opts options.Options) *AttributeRule {
	return &AttributeRule{
		Options: opts,
		set:     tristate.NewFlagSet(c),
		log:     logging.NewLogger(opts.Logger),
	}
}

// Catalog returns the catalog the rule was built over.
func (r *AttributeRule) Catalog() catalog.Catalog {
	return r.set.Catalog()
}

// Cells returns the per-flag cells in catalog order.
func (r *AttributeRule) Cells() []*tristate.Cell {
	return r.set.Cells()
}

// Cell returns the cell for the named flag.
func (r *AttributeRule) Cell(name string) (*tristate.Cell, bool) {
	return r.set.Cell(name)
}

// BitsSet returns the mask of bits the rule requires on.
func (r *AttributeRule) BitsSet() uint32 {
	return r.set.BitsSet()
}

// BitsUnset returns the mask of bits the rule requires off.
func (r *AttributeRule) BitsUnset() uint32 {
	return r.set.BitsUnset()
}

// SetBitsSet loads the "must be set" mask, e.g. from stored rule data. The
// mask is taken as-is; a bit also present in the unset mask is reported as a
// conflict when that flag's cell is read, not here.
func (r *AttributeRule) SetBitsSet(m uint32) {
	r.log.Trace("Loading set mask", "mask", helpers.FormatMask(m))
	r.set.SetBitsSet(m)
}

// SetBitsUnset loads the "must be unset" mask. See SetBitsSet for the
// conflict semantics.
func (r *AttributeRule) SetBitsUnset(m uint32) {
	r.log.Trace("Loading unset mask", "mask", helpers.FormatMask(m))
	r.set.SetBitsUnset(m)
}

// SetState sets the named flag's tri-state, updating both masks.
func (r *AttributeRule) SetState(name string, state tristate.TriState) error {
	cell, ok := r.set.Cell(name)
	if !ok {
		return &catalog.UnknownFlagError{Name: name}
	}
	if err := cell.SetState(state); err != nil {
		return err
	}
	r.log.Debug("Flag state changed", "flag", name, "state", state,
		"bitsSet", helpers.FormatMask(r.set.BitsSet()),
		"bitsUnset", helpers.FormatMask(r.set.BitsUnset()))
	return nil
}

// Evaluate applies the rule to an existing flag word and returns the word
// with the required bits forced on and off.
func (r *AttributeRule) Evaluate(current uint32) uint32 {
	return (current | r.set.BitsSet()) &^ r.set.BitsUnset()
}

// Matches reports whether a flag word already satisfies the rule. A rule
// whose masks conflict matches nothing.
func (r *AttributeRule) Matches(current uint32) bool {
	return current&r.set.BitsSet() == r.set.BitsSet() && current&r.set.BitsUnset() == 0
}

// Summary renders the rule in a compact chattr-like form: "+" for flags
// forced on, "-" for flags forced off, "!" for flags whose raw data
// conflicts. Untouched flags are omitted.
func (r *AttributeRule) Summary() string {
	parts := make([]string, 0, len(r.set.Cells()))
	for _, cell := range r.set.Cells() {
		state, err := cell.State()
		if err != nil {
			parts = append(parts, "!"+cell.Descriptor().Identifier)
			continue
		}
		switch state {
		case tristate.Set:
			parts = append(parts, "+"+cell.Descriptor().Identifier)
		case tristate.Unset:
			parts = append(parts, "-"+cell.Descriptor().Identifier)
		}
	}
	return strings.Join(parts, " ")
}

// String implements fmt.Stringer.
func (r *AttributeRule) String() string {
	return r.Summary()
}
