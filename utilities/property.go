package utilities

import "twc/css"

// property declares registered custom property used by a utility. It is
// escaped to the stylesheet root so it never nests under the utility
// selector. Empty syntax means "*".
func property(name, initial, syntax string) css.Node {
	if syntax == "" {
		syntax = "*"
	}
	nodes := []css.Node{
		css.Decl("syntax", `"`+syntax+`"`),
		css.Decl("inherits", "false"),
	}
	if initial != "" {
		nodes = append(nodes, css.Decl("initial-value", initial))
	}
	return css.NewAtRoot(css.NewAtRule("property", name, nodes...))
}

// withProperties prepends @property scaffolding to utility output.
func withProperties(props []func() css.Node, nodes ...css.Node) []css.Node {
	result := make([]css.Node, 0, len(props)+len(nodes))
	for _, p := range props {
		result = append(result, p())
	}
	return append(result, nodes...)
}

// prop returns lazy @property declaration.
func prop(name, initial, syntax string) func() css.Node {
	return func() css.Node { return property(name, initial, syntax) }
}

// Shared custom properties.
var (
	borderStyleProperties  = []func() css.Node{prop("--tw-border-style", "solid", "")}
	outlineStyleProperties = []func() css.Node{prop("--tw-outline-style", "solid", "")}

	translateProperties = []func() css.Node{
		prop("--tw-translate-x", "0", ""),
		prop("--tw-translate-y", "0", ""),
		prop("--tw-translate-z", "0", ""),
	}

	scaleProperties = []func() css.Node{
		prop("--tw-scale-x", "1", ""),
		prop("--tw-scale-y", "1", ""),
		prop("--tw-scale-z", "1", ""),
	}

	transformProperties = []func() css.Node{
		prop("--tw-rotate-x", "", ""),
		prop("--tw-rotate-y", "", ""),
		prop("--tw-rotate-z", "", ""),
		prop("--tw-skew-x", "", ""),
		prop("--tw-skew-y", "", ""),
	}

	boxShadowProperties = []func() css.Node{
		prop("--tw-shadow", "0 0 #0000", ""),
		prop("--tw-shadow-color", "", ""),
		prop("--tw-inset-shadow", "0 0 #0000", ""),
		prop("--tw-inset-shadow-color", "", ""),
		prop("--tw-ring-color", "", ""),
		prop("--tw-ring-shadow", "0 0 #0000", ""),
		prop("--tw-inset-ring-color", "", ""),
		prop("--tw-inset-ring-shadow", "0 0 #0000", ""),
		prop("--tw-ring-inset", "", ""),
		prop("--tw-ring-offset-width", "0px", "<length>"),
		prop("--tw-ring-offset-color", "#fff", ""),
		prop("--tw-ring-offset-shadow", "0 0 #0000", ""),
	}

	gradientProperties = []func() css.Node{
		prop("--tw-gradient-position", "", ""),
		prop("--tw-gradient-from", "#0000", "<color>"),
		prop("--tw-gradient-via", "#0000", "<color>"),
		prop("--tw-gradient-to", "#0000", "<color>"),
		prop("--tw-gradient-stops", "", ""),
		prop("--tw-gradient-via-stops", "", ""),
		prop("--tw-gradient-from-position", "0%", "<length-percentage>"),
		prop("--tw-gradient-via-position", "50%", "<length-percentage>"),
		prop("--tw-gradient-to-position", "100%", "<length-percentage>"),
	}

	filterProperties = []func() css.Node{
		prop("--tw-blur", "", ""),
		prop("--tw-brightness", "", ""),
		prop("--tw-contrast", "", ""),
		prop("--tw-grayscale", "", ""),
		prop("--tw-hue-rotate", "", ""),
		prop("--tw-invert", "", ""),
		prop("--tw-opacity", "", ""),
		prop("--tw-saturate", "", ""),
		prop("--tw-sepia", "", ""),
		prop("--tw-drop-shadow", "", ""),
	}

	backdropFilterProperties = []func() css.Node{
		prop("--tw-backdrop-blur", "", ""),
		prop("--tw-backdrop-brightness", "", ""),
		prop("--tw-backdrop-contrast", "", ""),
		prop("--tw-backdrop-grayscale", "", ""),
		prop("--tw-backdrop-hue-rotate", "", ""),
		prop("--tw-backdrop-invert", "", ""),
		prop("--tw-backdrop-opacity", "", ""),
		prop("--tw-backdrop-saturate", "", ""),
		prop("--tw-backdrop-sepia", "", ""),
	}
)
