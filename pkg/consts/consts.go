package consts

// Platform identifies which flag namespace a catalog or rule targets.
type Platform int

const (
	PLATFORM_LINUX Platform = iota
	PLATFORM_DARWIN
)

func (p Platform) String() string {
	switch p {
	case PLATFORM_LINUX:
		return "linux"
	case PLATFORM_DARWIN:
		return "darwin"
	default:
		return "unknown"
	}
}

// Linux inode flags as exposed through the FS_IOC_GETFLAGS/FS_IOC_SETFLAGS
// ioctl interface (linux/fs.h). These are the bits chattr(1) and lsattr(1)
// operate on.
const (
	FS_SECRM_FL        = 0x00000001 // Secure deletion
	FS_UNRM_FL         = 0x00000002 // Undelete
	FS_COMPR_FL        = 0x00000004 // Compress file
	FS_SYNC_FL         = 0x00000008 // Synchronous updates
	FS_IMMUTABLE_FL    = 0x00000010 // Immutable file
	FS_APPEND_FL       = 0x00000020 // Writes to file may only append
	FS_NODUMP_FL       = 0x00000040 // Do not dump file
	FS_NOATIME_FL      = 0x00000080 // Do not update atime
	FS_NOCOMP_FL       = 0x00000400 // Don't compress
	FS_ENCRYPT_FL      = 0x00000800 // Encrypted file
	FS_INDEX_FL        = 0x00001000 // Hash-indexed directory
	FS_JOURNAL_DATA_FL = 0x00004000 // File data should be journaled
	FS_NOTAIL_FL       = 0x00008000 // File tail should not be merged
	FS_DIRSYNC_FL      = 0x00010000 // Synchronous directory modifications
	FS_TOPDIR_FL       = 0x00020000 // Top of directory hierarchies
	FS_EXTENT_FL       = 0x00080000 // Extents
	FS_VERITY_FL       = 0x00100000 // Verity protected inode
	FS_NOCOW_FL        = 0x00800000 // Do not copy-on-write
	FS_DAX_FL          = 0x02000000 // Inode is DAX
	FS_PROJINHERIT_FL  = 0x20000000 // Create with parents projid
	FS_CASEFOLD_FL     = 0x40000000 // Folder is case insensitive
)

// macOS / BSD file flags as stored in st_flags and manipulated with
// chflags(2). UF_* flags may be changed by the file's owner, SF_* flags
// only by the super-user (sys/stat.h).
const (
	UF_NODUMP     = 0x00000001 // Do not dump file
	UF_IMMUTABLE  = 0x00000002 // File may not be changed
	UF_APPEND     = 0x00000004 // Writes to file may only append
	UF_OPAQUE     = 0x00000008 // Directory is opaque wrt union mounts
	UF_COMPRESSED = 0x00000020 // File is compressed
	UF_TRACKED    = 0x00000040 // Notify about document-id changes
	UF_DATAVAULT  = 0x00000080 // Entitlement required for access
	UF_HIDDEN     = 0x00008000 // Hint that this item should not be displayed
	SF_ARCHIVED   = 0x00010000 // File is archived
	SF_IMMUTABLE  = 0x00020000 // File may not be changed
	SF_APPEND     = 0x00040000 // Writes to file may only append
	SF_RESTRICTED = 0x00080000 // Entitlement required for writing
	SF_NOUNLINK   = 0x00100000 // Item may not be removed, renamed or mounted on
	SF_DATALESS   = 0x40000000 // File is dataless object
)
