package errors

import (
	"os"
	"strings"
	"unicode"
)

// ValidatePackageName rejects names that cannot be used as a dependency key.
// An empty name is allowed: records without a name are valid input and
// simply never match as a dependency.
func ValidatePackageName(name string) error {
	if len(name) > 214 {
		return New(ErrCodeInvalidManifest, "package name too long (max 214 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidManifest, "package name contains invalid control characters")
		}
	}
	return nil
}

// ValidateManifestFilename validates a manifest filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateManifestFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be empty")
	}
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot contain path separators")
	}
	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be a hidden file")
	}
	return nil
}

// ValidateRoot checks that root names an existing directory.
//
// Validation rules:
//   - Root cannot be empty
//   - No null bytes or control characters
//   - Must exist and be a directory
func ValidateRoot(root string) error {
	if root == "" {
		return New(ErrCodeInvalidPath, "root path cannot be empty")
	}

	for _, r := range root {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "root path contains invalid characters")
		}
	}

	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return Wrap(ErrCodeFileNotFound, err, "root %s does not exist", root)
	}
	if err != nil {
		return Wrap(ErrCodeInvalidPath, err, "stat %s", root)
	}
	if !info.IsDir() {
		return New(ErrCodeInvalidPath, "root %s is not a directory", root)
	}
	return nil
}
