package theme

import "strings"

// Theme keys form a flat dash separated namespace with legitimate prefix
// collisions: "--font-weight-bold" starts with "--font-" but is not a font
// family. For every coarse namespace this table lists more specific prefixes
// which must not be treated as its members.
var ignoredKeys = map[string][]string{
	"--font":        {"--font-weight", "--font-size"},
	"--inset":       {"--inset-shadow", "--inset-ring"},
	"--text":        {"--text-color", "--text-decoration-color", "--text-decoration-thickness", "--text-indent", "--text-shadow", "--text-underline-offset"},
	"--grid-column": {"--grid-column-start", "--grid-column-end"},
	"--grid-row":    {"--grid-row-start", "--grid-row-end"},
}

// IgnoredPrefixes returns more specific prefixes shadowing namespace members.
func IgnoredPrefixes(namespace string) []string {
	return ignoredKeys[namespace]
}

// isIgnoredKey reports whether key belongs to a more specific namespace than
// the one it was looked up in.
func isIgnoredKey(key, namespace string) bool {
	for _, ignored := range ignoredKeys[namespace] {
		if key == ignored || strings.HasPrefix(key, ignored+"-") {
			return true
		}
	}
	return false
}
