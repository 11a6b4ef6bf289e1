package common

import (
	"path"
	"strings"
)

// UnknownStr is printed for enum values without a name.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// SplitQualified splits "pkg/path.Name" into its package path and name.
// Names without a dot after the last slash have an empty package path.
func SplitQualified(s string) (pkgPath, name string) {
	i := strings.LastIndex(s, ".")
	if i < 0 || i < strings.LastIndex(s, "/") {
		return "", s
	}

	return s[:i], s[i+1:]
}

// ShortName returns "alias.Name" for a qualified name, or name unchanged.
func ShortName(pkgPath, name string) string {
	if pkgPath == "" {
		return name
	}

	return PkgAlias(pkgPath) + "." + name
}
