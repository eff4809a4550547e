package tristate

import (
	"fmt"

	"github.com/bgrewell/attr-kit/pkg/catalog"
)

// FlagSet keeps a per-flag tri-state view of a catalog in sync with the two
// aggregate bit masks that are the wire representation: the bits a rule
// requires set and the bits it requires unset. Writing either side updates
// the other; cell states are always derived from the masks on read, so
// assigning contradictory masks does not fail until the affected cell is
// inspected.
//
// A FlagSet is not safe for concurrent use; it is meant to be owned and
// mutated by a single caller.
type FlagSet struct {
	catalog   catalog.Catalog
	cells     []*Cell
	bitsSet   uint32
	bitsUnset uint32
}

// NewFlagSet builds a FlagSet with one cell per catalog descriptor, in
// catalog order. All cells start out Void and both masks start at zero. An
// empty catalog is legal and yields an empty cell list.
func NewFlagSet(c catalog.Catalog) *FlagSet {
	fs := &FlagSet{catalog: c, cells: make([]*Cell, 0, len(c))}
	for _, d := range c {
		fs.cells = append(fs.cells, &Cell{desc: d, owner: fs})
	}
	return fs
}

// Catalog returns the catalog the set was built from.
func (fs *FlagSet) Catalog() catalog.Catalog {
	return fs.catalog
}

// Cells returns the cells in catalog order. The slice is shared; callers
// must not modify it.
func (fs *FlagSet) Cells() []*Cell {
	return fs.cells
}

// Cell returns the cell for the named flag.
func (fs *FlagSet) Cell(name string) (*Cell, bool) {
	for _, c := range fs.cells {
		if c.desc.Name == name {
			return c, true
		}
	}
	return nil, false
}

// BitsSet returns the mask of bits the set currently requires on.
func (fs *FlagSet) BitsSet() uint32 {
	return fs.bitsSet
}

// BitsUnset returns the mask of bits the set currently requires off.
func (fs *FlagSet) BitsUnset() uint32 {
	return fs.bitsUnset
}

// SetBitsSet replaces the "must be set" mask. It never fails, even when the
// new mask contradicts the "must be unset" mask; the contradiction surfaces
// as a *ConflictError when the affected cell's state is read.
func (fs *FlagSet) SetBitsSet(m uint32) {
	fs.bitsSet = m
}

// SetBitsUnset replaces the "must be unset" mask. See SetBitsSet for the
// conflict semantics.
func (fs *FlagSet) SetBitsUnset(m uint32) {
	fs.bitsUnset = m
}

// Cell is the tri-state view of a single catalog flag. Its state is never
// stored; it is derived from the owning set's masks on every read.
type Cell struct {
	desc  catalog.Descriptor
	owner *FlagSet
}

// Descriptor returns the flag this cell represents.
func (c *Cell) Descriptor() catalog.Descriptor {
	return c.desc
}

// State derives the cell's tri-state from the owning set's masks. It returns
// a *ConflictError if the flag's bit is present in both masks.
func (c *Cell) State() (TriState, error) {
	return Derive(c.owner.bitsSet, c.owner.bitsUnset, c.desc)
}

// SetState updates both aggregate masks so the cell carries the given state.
// The opposing bit is cleared first, so a cell write can never introduce a
// conflict; it only fails if state is not one of Set, Unset or Void.
func (c *Cell) SetState(state TriState) error {
	if !state.Valid() {
		return fmt.Errorf("invalid tri-state value %d for flag %s", int(state), c.desc.Name)
	}
	c.owner.bitsSet, c.owner.bitsUnset = Apply(state, c.desc.Mask, c.owner.bitsSet, c.owner.bitsUnset)
	return nil
}
