package errors

import (
	"strconv"
	"strings"
	"unicode"
)

// ValidateTileCount checks that n is a natural number.
// This is the only check the layout engine performs on its input, and it runs
// before any geometry is computed.
func ValidateTileCount(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidArgument, "natural number was expected, got %d", n)
	}
	return nil
}

// ParseTileCount parses a tile count from text (a CLI argument or URL segment).
// Anything that is not a base-10 natural number is rejected with
// ErrCodeInvalidArgument, including "1.5", "0", "-3" and "12abc".
func ParseTileCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, New(ErrCodeInvalidArgument, "natural number was expected, got empty input")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, Wrap(ErrCodeInvalidArgument, err, "natural number was expected, got %q", s)
	}
	if err := ValidateTileCount(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidateOutputName validates the base name of an output file (without extension).
// It must be a simple file name: no path separators, no control characters,
// and not a relative path component.
func ValidateOutputName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "output name cannot be empty")
	}

	if len(name) > 255 {
		return New(ErrCodeInvalidPath, "output name too long (max 255 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "output name cannot contain path separators: %q", name)
	}

	if name == "." || name == ".." {
		return New(ErrCodeInvalidPath, "output name cannot be %q", name)
	}

	return nil
}

// ValidateOutputDir validates an output directory path.
// Absolute and relative paths are both accepted; the directory does not need
// to exist yet.
func ValidateOutputDir(dir string) error {
	if dir == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}

	const maxPathLength = 4096
	if len(dir) > maxPathLength {
		return New(ErrCodeInvalidPath, "output directory too long (max %d characters)", maxPathLength)
	}

	for _, r := range dir {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output directory contains invalid characters")
		}
	}

	return nil
}
