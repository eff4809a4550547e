//go:build !linux && !darwin

package fileflags

// Read is unsupported on this platform.
func Read(path string) (uint32, error) {
	return 0, ErrUnsupported
}

// Write is unsupported on this platform.
func Write(path string, flags uint32) error {
	return ErrUnsupported
}
