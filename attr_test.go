package attr_test

import (
	"testing"

	"github.com/bgrewell/attr-kit"
	"github.com/bgrewell/attr-kit/pkg/catalog"
	"github.com/bgrewell/attr-kit/pkg/consts"
	"github.com/bgrewell/attr-kit/pkg/options"
	"github.com/bgrewell/attr-kit/pkg/tristate"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	rule, err := attr.New()
	require.NoError(t, err)
	require.Equal(t, catalog.Linux(), rule.Catalog())
	require.Zero(t, rule.BitsSet())
	require.Zero(t, rule.BitsUnset())
	require.Len(t, rule.Cells(), len(catalog.Linux()))
}

func TestNewDarwin(t *testing.T) {
	rule, err := attr.New(options.WithPlatform(consts.PLATFORM_DARWIN))
	require.NoError(t, err)
	require.Equal(t, catalog.Darwin(), rule.Catalog())
}

func TestNewCustomCatalog(t *testing.T) {
	c := catalog.Catalog{
		{Name: "ONLY", Identifier: "o", Mask: 0b1},
	}
	rule, err := attr.New(options.WithCatalog(c))
	require.NoError(t, err)
	require.Len(t, rule.Cells(), 1)

	require.NoError(t, rule.SetState("ONLY", tristate.Set))
	require.Equal(t, uint32(0b1), rule.BitsSet())
}

func TestNewRejectsMalformedCatalog(t *testing.T) {
	c := catalog.Catalog{
		{Name: "A", Identifier: "a", Mask: 0b11},
		{Name: "B", Identifier: "b", Mask: 0b10},
	}
	_, err := attr.New(options.WithCatalog(c))
	require.ErrorContains(t, err, "invalid flag catalog")

	// Validation can be opted out of for deliberately grouped bits.
	rule, err := attr.New(options.WithCatalog(c), options.WithValidateTables(false))
	require.NoError(t, err)
	require.Len(t, rule.Cells(), 2)
}

func TestRuleEndToEnd(t *testing.T) {
	// Build a rule the way a UI would: per-flag edits, then read the masks
	// back for persistence.
	rule, err := attr.New()
	require.NoError(t, err)

	require.NoError(t, rule.SetState("FS_IMMUTABLE_FL", tristate.Set))
	require.NoError(t, rule.SetState("FS_APPEND_FL", tristate.Set))
	require.NoError(t, rule.SetState("FS_NODUMP_FL", tristate.Unset))

	require.Equal(t, uint32(consts.FS_IMMUTABLE_FL|consts.FS_APPEND_FL), rule.BitsSet())
	require.Equal(t, uint32(consts.FS_NODUMP_FL), rule.BitsUnset())
	require.Equal(t, "+i +a -d", rule.Summary())

	// Reload the persisted masks into a fresh rule and confirm the per-flag
	// view comes back.
	reloaded, err := attr.New()
	require.NoError(t, err)
	reloaded.SetBitsSet(rule.BitsSet())
	reloaded.SetBitsUnset(rule.BitsUnset())

	cell, ok := reloaded.Cell("FS_IMMUTABLE_FL")
	require.True(t, ok)
	state, err := cell.State()
	require.NoError(t, err)
	require.Equal(t, tristate.Set, state)
	require.Equal(t, rule.Summary(), reloaded.Summary())
}

func TestConflictSurfacesOnRead(t *testing.T) {
	rule, err := attr.New()
	require.NoError(t, err)

	// Loading contradictory raw data must not fail.
	rule.SetBitsSet(consts.FS_IMMUTABLE_FL | consts.FS_APPEND_FL)
	rule.SetBitsUnset(consts.FS_APPEND_FL)

	cell, ok := rule.Cell("FS_APPEND_FL")
	require.True(t, ok)
	_, err = cell.State()
	var conflict *tristate.ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "FS_APPEND_FL", conflict.Descriptor.Name)

	// The unaffected flag still reads cleanly.
	cell, ok = rule.Cell("FS_IMMUTABLE_FL")
	require.True(t, ok)
	state, err := cell.State()
	require.NoError(t, err)
	require.Equal(t, tristate.Set, state)
}
