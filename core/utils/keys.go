package utils

import "strings"

// TrimLeadingSlashes removes every leading "/" from an object key or prefix.
// S3 website hosting prepends a slash to keys, and objects written by other
// clients may carry one; such keys cannot be fetched by browsers.
func TrimLeadingSlashes(key string) string {
	return strings.TrimLeft(key, "/")
}

// Relativize converts a remote key into a relative path: leading slashes are
// removed and doubled slashes are collapsed.
func Relativize(key string) string {
	result := TrimLeadingSlashes(key)
	for strings.Contains(result, "//") {
		result = strings.ReplaceAll(result, "//", "/")
	}
	return result
}

// SanitizeBucketName lower-cases name and drops every character outside [a-z0-9.].
func SanitizeBucketName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		}
	}
	return b.String()
}
