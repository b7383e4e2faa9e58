package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateOutputDir validates the directory that s<n>.<ext> exports are written to.
//
// The rules are intentionally conservative:
//   - No empty directory (use "." for the working directory)
//   - No control characters or null bytes
//   - Maximum length of 500 characters
func ValidateOutputDir(dir string) error {
	if dir == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}

	const maxPathLength = 500
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

// ValidateCommand validates the name or path of the external renderer binary.
// Arguments are configured separately, so whitespace is rejected to catch
// "dot -Tsvg" being passed where only "dot" is expected.
func ValidateCommand(cmd string) error {
	if cmd == "" {
		return New(ErrCodeInvalidRenderer, "renderer command cannot be empty")
	}

	for _, r := range cmd {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidRenderer, "renderer command contains invalid control characters")
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidRenderer, "renderer command must not contain arguments: %q", cmd)
		}
	}

	return nil
}

// featureNameRegex matches valid CoNLL feature names (no separators).
var featureNameRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// ValidateFeatureName validates the FEATS key used to mark highlighted tokens.
func ValidateFeatureName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "feature name cannot be empty")
	}
	if strings.ContainsAny(name, "|=") || !featureNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid feature name: %q", name)
	}
	return nil
}
