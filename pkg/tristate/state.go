package tristate

import (
	"fmt"

	"github.com/bgrewell/attr-kit/pkg/catalog"
)

// TriState is the requirement a rule places on a single flag bit: force it on
// (Set), force it off (Unset), or leave it alone (Void). The zero value is
// Void.
type TriState int

const (
	Void TriState = iota
	Set
	Unset
)

func (s TriState) String() string {
	switch s {
	case Set:
		return "set"
	case Unset:
		return "unset"
	case Void:
		return "void"
	default:
		return fmt.Sprintf("tristate(%d)", int(s))
	}
}

// Valid reports whether s is one of the three defined states.
func (s TriState) Valid() bool {
	return s == Void || s == Set || s == Unset
}

// ConflictError reports that a flag's bit is present in both the "must be
// set" and "must be unset" masks at once. It is returned only when the
// affected cell's state is read, never by a write.
type ConflictError struct {
	Descriptor catalog.Descriptor
	BitsSet    uint32
	BitsUnset  uint32
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting state for flag %s (mask 0x%08X): bit present in both set mask 0x%08X and unset mask 0x%08X",
		e.Descriptor.Name, e.Descriptor.Mask, e.BitsSet, e.BitsUnset)
}

// Derive computes the tri-state of a single flag with bit mask m from the two
// aggregate masks. A bit claimed by both masks is a conflict and yields a
// *ConflictError carrying the descriptor; the returned state is Void in that
// case and must not be used.
func Derive(bitsSet, bitsUnset uint32, d catalog.Descriptor) (TriState, error) {
	inSet := bitsSet&d.Mask != 0
	inUnset := bitsUnset&d.Mask != 0
	switch {
	case inSet && inUnset:
		return Void, &ConflictError{Descriptor: d, BitsSet: bitsSet, BitsUnset: bitsUnset}
	case inSet:
		return Set, nil
	case inUnset:
		return Unset, nil
	default:
		return Void, nil
	}
}

// Apply returns the two aggregate masks updated so that the flag with bit
// mask m carries the given state. The opposing bit is always cleared first,
// so Apply can never introduce a conflict regardless of the input masks.
func Apply(state TriState, m, bitsSet, bitsUnset uint32) (uint32, uint32) {
	switch state {
	case Set:
		return bitsSet | m, bitsUnset &^ m
	case Unset:
		return bitsSet &^ m, bitsUnset | m
	default:
		return bitsSet &^ m, bitsUnset &^ m
	}
}
