package catalog

import (
	"fmt"

	"github.com/bgrewell/attr-kit/pkg/consts"
)

// Descriptor describes a single attribute flag: its stable name, the short
// identifier the platform's tooling displays for it, the bit it occupies and
// a human readable description. Descriptors are static input data; the core
// logic never mutates them.
type Descriptor struct {
	Name        string `json:"name"`
	Identifier  string `json:"identifier"`
	Mask        uint32 `json:"mask"`
	Description string `json:"description"`
}

// Catalog is an ordered list of flag descriptors. Order is preserved
// everywhere it is consumed so that rendered output is deterministic.
type Catalog []Descriptor

// Validate checks that the catalog is internally well formed: every mask is
// non-zero, no two descriptors claim overlapping bits and no name appears
// twice. A malformed catalog is a data-modeling bug in the caller, distinct
// from the per-flag set/unset conflict the tri-state engine detects.
func (c Catalog) Validate() error {
	var claimed uint32
	names := make(map[string]struct{}, len(c))
	for i, d := range c {
		if d.Mask == 0 {
			return fmt.Errorf("catalog entry %d (%s): mask must be non-zero", i, d.Name)
		}
		if claimed&d.Mask != 0 {
			return fmt.Errorf("catalog entry %d (%s): mask 0x%08X overlaps a previous entry", i, d.Name, d.Mask)
		}
		if _, dup := names[d.Name]; dup {
			return fmt.Errorf("catalog entry %d: duplicate name %s", i, d.Name)
		}
		claimed |= d.Mask
		names[d.Name] = struct{}{}
	}
	return nil
}

// UnknownFlagError reports a flag name that is not present in a catalog.
type UnknownFlagError struct {
	Name string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag: %s", e.Name)
}

// Lookup returns the descriptor with the given name.
func (c Catalog) Lookup(name string) (Descriptor, bool) {
	for _, d := range c {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Mask returns the union of all descriptor masks in the catalog.
func (c Catalog) Mask() uint32 {
	var m uint32
	for _, d := range c {
		m |= d.Mask
	}
	return m
}

// ForPlatform returns the built-in catalog for the given platform.
func ForPlatform(p consts.Platform) (Catalog, error) {
	switch p {
	case consts.PLATFORM_LINUX:
		return Linux(), nil
	case consts.PLATFORM_DARWIN:
		return Darwin(), nil
	default:
		return nil, fmt.Errorf("no built-in catalog for platform %d", p)
	}
}

// Linux returns the catalog of chattr(1)-visible inode flags. Identifiers
// match the single letters chattr and lsattr use.
func Linux() Catalog {
	return Catalog{
		{"FS_SECRM_FL", "s", consts.FS_SECRM_FL, "Secure deletion"},
		{"FS_UNRM_FL", "u", consts.FS_UNRM_FL, "Undeletable"},
		{"FS_COMPR_FL", "c", consts.FS_COMPR_FL, "Compressed"},
		{"FS_SYNC_FL", "S", consts.FS_SYNC_FL, "Synchronous updates"},
		{"FS_IMMUTABLE_FL", "i", consts.FS_IMMUTABLE_FL, "Immutable"},
		{"FS_APPEND_FL", "a", consts.FS_APPEND_FL, "Append only"},
		{"FS_NODUMP_FL", "d", consts.FS_NODUMP_FL, "No dump"},
		{"FS_NOATIME_FL", "A", consts.FS_NOATIME_FL, "No atime updates"},
		{"FS_NOCOMP_FL", "m", consts.FS_NOCOMP_FL, "Don't compress"},
		{"FS_ENCRYPT_FL", "E", consts.FS_ENCRYPT_FL, "Encrypted"},
		{"FS_INDEX_FL", "I", consts.FS_INDEX_FL, "Indexed directory"},
		{"FS_JOURNAL_DATA_FL", "j", consts.FS_JOURNAL_DATA_FL, "Journaled data"},
		{"FS_NOTAIL_FL", "t", consts.FS_NOTAIL_FL, "No tail-merging"},
		{"FS_DIRSYNC_FL", "D", consts.FS_DIRSYNC_FL, "Synchronous directory updates"},
		{"FS_TOPDIR_FL", "T", consts.FS_TOPDIR_FL, "Top of directory hierarchy"},
		{"FS_EXTENT_FL", "e", consts.FS_EXTENT_FL, "Extent format"},
		{"FS_VERITY_FL", "V", consts.FS_VERITY_FL, "Verity protected"},
		{"FS_NOCOW_FL", "C", consts.FS_NOCOW_FL, "No copy-on-write"},
		{"FS_DAX_FL", "x", consts.FS_DAX_FL, "Direct access (DAX)"},
		{"FS_PROJINHERIT_FL", "P", consts.FS_PROJINHERIT_FL, "Project hierarchy"},
		{"FS_CASEFOLD_FL", "F", consts.FS_CASEFOLD_FL, "Case-insensitive lookups"},
	}
}

// Darwin returns the catalog of chflags(2) file flags. Identifiers match the
// keywords chflags(1) accepts.
func Darwin() Catalog {
	return Catalog{
		{"UF_NODUMP", "nodump", consts.UF_NODUMP, "Do not dump the file"},
		{"UF_IMMUTABLE", "uchg", consts.UF_IMMUTABLE, "File may not be changed"},
		{"UF_APPEND", "uappnd", consts.UF_APPEND, "Writes may only append"},
		{"UF_OPAQUE", "opaque", consts.UF_OPAQUE, "Opaque in union mounts"},
		{"UF_COMPRESSED", "compressed", consts.UF_COMPRESSED, "File is compressed"},
		{"UF_TRACKED", "tracked", consts.UF_TRACKED, "Document-id change notifications"},
		{"UF_DATAVAULT", "datavault", consts.UF_DATAVAULT, "Entitlement required for access"},
		{"UF_HIDDEN", "hidden", consts.UF_HIDDEN, "Do not display item"},
		{"SF_ARCHIVED", "arch", consts.SF_ARCHIVED, "File is archived"},
		{"SF_IMMUTABLE", "schg", consts.SF_IMMUTABLE, "File may not be changed (super-user)"},
		{"SF_APPEND", "sappnd", consts.SF_APPEND, "Writes may only append (super-user)"},
		{"SF_RESTRICTED", "restricted", consts.SF_RESTRICTED, "Entitlement required for writing"},
		{"SF_NOUNLINK", "sunlnk", consts.SF_NOUNLINK, "May not be removed or renamed"},
		{"SF_DATALESS", "dataless", consts.SF_DATALESS, "Dataless placeholder object"},
	}
}
