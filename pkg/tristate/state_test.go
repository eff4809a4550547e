package tristate

import (
	"testing"

	"github.com/bgrewell/attr-kit/pkg/catalog"
	"github.com/stretchr/testify/require"
)

func TestDerive(t *testing.T) {
	d := catalog.Descriptor{Name: "FS_IMMUTABLE_FL", Identifier: "i", Mask: 0x10}

	t.Run("bit in set mask only", func(t *testing.T) {
		state, err := Derive(0x10, 0x00, d)
		require.NoError(t, err)
		require.Equal(t, Set, state)
	})

	t.Run("bit in unset mask only", func(t *testing.T) {
		state, err := Derive(0x00, 0x10, d)
		require.NoError(t, err)
		require.Equal(t, Unset, state)
	})

	t.Run("bit in neither mask", func(t *testing.T) {
		state, err := Derive(0xEF, 0xEF, d)
		require.NoError(t, err)
		require.Equal(t, Void, state)
	})

	t.Run("bit in both masks is a conflict", func(t *testing.T) {
		_, err := Derive(0x10, 0x10, d)
		require.Error(t, err)
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		require.Equal(t, d, conflict.Descriptor)
		require.Equal(t, uint32(0x10), conflict.BitsSet)
		require.Equal(t, uint32(0x10), conflict.BitsUnset)
		require.Contains(t, conflict.Error(), "FS_IMMUTABLE_FL")
	})

	t.Run("other bits do not affect the result", func(t *testing.T) {
		state, err := Derive(0xFFFFFFEF, 0x10, d)
		require.NoError(t, err)
		require.Equal(t, Unset, state)
	})
}

func TestApply(t *testing.T) {
	const m = uint32(0b010)

	t.Run("set forces the bit on and clears it from the unset mask", func(t *testing.T) {
		set, unset := Apply(Set, m, 0b000, 0b011)
		require.Equal(t, uint32(0b010), set)
		require.Equal(t, uint32(0b001), unset)
	})

	t.Run("unset forces the bit off and clears it from the set mask", func(t *testing.T) {
		set, unset := Apply(Unset, m, 0b011, 0b000)
		require.Equal(t, uint32(0b001), set)
		require.Equal(t, uint32(0b010), unset)
	})

	t.Run("void clears the bit from both masks", func(t *testing.T) {
		set, unset := Apply(Void, m, 0b011, 0b110)
		require.Equal(t, uint32(0b001), set)
		require.Equal(t, uint32(0b100), unset)
	})

	t.Run("never produces overlapping masks", func(t *testing.T) {
		for _, state := range []TriState{Void, Set, Unset} {
			// Start from deliberately contradictory masks.
			set, unset := Apply(state, m, 0b111, 0b010)
			require.Zero(t, set&unset&m, "state %v left the bit in both masks", state)
		}
	})
}

func TestTriStateString(t *testing.T) {
	require.Equal(t, "set", Set.String())
	require.Equal(t, "unset", Unset.String())
	require.Equal(t, "void", Void.String())
	require.Equal(t, "tristate(9)", TriState(9).String())
}

func TestTriStateValid(t *testing.T) {
	require.True(t, Void.Valid())
	require.True(t, Set.Valid())
	require.True(t, Unset.Valid())
	require.False(t, TriState(3).Valid())
	require.False(t, TriState(-1).Valid())
}
