package values

import "strings"

// legacyNamespaces maps theme namespaces spelled the way JS configuration
// files name them to namespaces used by the theme store.
var legacyNamespaces = map[string]string{
	"--colors":                   "--color",
	"--accentColor":              "--color",
	"--fontSize":                 "--text",
	"--fontFamily":               "--font",
	"--fontWeight":               "--font-weight",
	"--lineHeight":               "--leading",
	"--letterSpacing":            "--tracking",
	"--borderRadius":             "--radius",
	"--boxShadow":                "--shadow",
	"--dropShadow":               "--drop-shadow",
	"--screens":                  "--breakpoint",
	"--maxWidth":                 "--container",
	"--transitionTimingFunction": "--ease",
	"--transitionDuration":       "--duration",
	"--animation":                "--animate",
	"--aspectRatio":              "--aspect",
	"--blur":                     "--blur",
	"--spacing":                  "--spacing",
	"--opacity":                  "--opacity",
	"--perspective":              "--perspective",
	"--backgroundImage":          "--background-image",
	"--transitionProperty":       "--transition-property",
	"--gridTemplateColumns":      "--grid-template-columns",
	"--gridTemplateRows":         "--grid-template-rows",
	"--zIndex":                   "--z-index",
}

// LegacyNamespace returns modern spelling of a legacy namespace (or a key
// within one). The second result is false when key is not legacy.
func LegacyNamespace(key string) (string, bool) {
	if ns, ok := legacyNamespaces[key]; ok {
		return ns, ns != key
	}
	for legacy, ns := range legacyNamespaces {
		if rest, ok := strings.CutPrefix(key, legacy+"-"); ok && ns != legacy {
			return ns + "-" + rest, true
		}
	}
	return key, false
}

// LegacyKeys appends modern aliases of legacy keys after the original list,
// so a direct hit always wins over an alias.
func LegacyKeys(keys []string) []string {
	result := make([]string, 0, len(keys)*2)
	result = append(result, keys...)
	for _, key := range keys {
		if alias, ok := LegacyNamespace(key); ok {
			result = append(result, alias)
		}
	}
	return result
}
