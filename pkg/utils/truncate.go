package utils

// Truncate shortens s to at most max runes and appends "..." when
// anything was cut. Cutting happens on rune boundaries so multi-byte
// characters are never split.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
