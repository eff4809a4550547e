//go:build darwin

package fileflags

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Read returns the st_flags word for path.
func Read(path string) (uint32, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return st.Flags, nil
}

// Write replaces the st_flags word for path via chflags(2). SF_* bits
// require super-user privileges.
func Write(path string, flags uint32) error {
	if err := unix.Chflags(path, int(flags)); err != nil {
		return fmt.Errorf("failed to change flags of %s: %w", path, err)
	}
	return nil
}
