// Package fileflags reads and writes the per-file attribute flag word the
// platform kernel keeps for a path: the chattr/lsattr inode flags on Linux,
// the chflags st_flags word on Darwin. The library core never touches the
// filesystem; only the command line tools use this package.
package fileflags

import "errors"

// ErrUnsupported is returned on platforms without a file flag word.
var ErrUnsupported = errors.New("file attribute flags are not supported on this platform")
