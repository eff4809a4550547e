//go:build linux

package fileflags

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Read returns the inode flag word for path via the FS_IOC_GETFLAGS ioctl.
func Read(path string) (uint32, error) {
	f, err := os.OpenFile(path, os.O_RDONLY|unix.O_NONBLOCK|unix.O_NOCTTY, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	flags, err := unix.IoctlGetInt(int(f.Fd()), unix.FS_IOC_GETFLAGS)
	if err != nil {
		return 0, fmt.Errorf("failed to read flags of %s: %w", path, err)
	}
	return uint32(flags), nil
}

// Write replaces the inode flag word for path via the FS_IOC_SETFLAGS ioctl.
// The kernel rejects bits the filesystem does not support.
func Write(path string, flags uint32) error {
	f, err := os.OpenFile(path, os.O_RDONLY|unix.O_NONBLOCK|unix.O_NOCTTY, 0)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := unix.IoctlSetPointerInt(int(f.Fd()), unix.FS_IOC_SETFLAGS, int(flags)); err != nil {
		return fmt.Errorf("failed to write flags of %s: %w", path, err)
	}
	return nil
}
