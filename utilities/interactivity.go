package utilities

import (
	"twc/css"
	"twc/theme"
)

var cursors = []string{
	"auto", "default", "pointer", "wait", "text", "move", "help", "not-allowed", "none",
	"context-menu", "progress", "cell", "crosshair", "vertical-text", "alias", "copy",
	"no-drop", "grab", "grabbing", "all-scroll", "col-resize", "row-resize", "n-resize",
	"e-resize", "s-resize", "w-resize", "ne-resize", "nw-resize", "se-resize", "sw-resize",
	"ew-resize", "ns-resize", "nesw-resize", "nwse-resize", "zoom-in", "zoom-out",
}

func (l *library) interactivity() {
	for _, c := range cursors {
		l.static("cursor-"+c, pair("cursor", c))
	}
	l.functionalUtility("cursor", functionalSpec{
		themeKeys: []string{"--cursor"},
		handle:    decls("cursor"),
	})

	l.static("touch-auto", pair("touch-action", "auto"))
	l.static("touch-none", pair("touch-action", "none"))
	l.static("touch-manipulation", pair("touch-action", "manipulation"))
	touch := "var(--tw-pan-x,) var(--tw-pan-y,) var(--tw-pinch-zoom,)"
	touchProperties := []func() css.Node{
		prop("--tw-pan-x", "", ""),
		prop("--tw-pan-y", "", ""),
		prop("--tw-pinch-zoom", "", ""),
	}
	for _, p := range []struct{ name, variable string }{
		{"pan-x", "--tw-pan-x"},
		{"pan-left", "--tw-pan-x"},
		{"pan-right", "--tw-pan-x"},
		{"pan-y", "--tw-pan-y"},
		{"pan-up", "--tw-pan-y"},
		{"pan-down", "--tw-pan-y"},
		{"pinch-zoom", "--tw-pinch-zoom"},
	} {
		l.static("touch-"+p.name, append(nodesOf(touchProperties), pair(p.variable, p.name), pair("touch-action", touch))...)
	}

	for _, s := range []string{"none", "text", "all", "auto"} {
		l.static("select-"+s, pair("-webkit-user-select", s), pair("user-select", s))
	}

	l.static("resize", pair("resize", "both"))
	l.static("resize-none", pair("resize", "none"))
	l.static("resize-x", pair("resize", "horizontal"))
	l.static("resize-y", pair("resize", "vertical"))

	l.static("appearance-none", pair("appearance", "none"))
	l.static("appearance-auto", pair("appearance", "auto"))

	for _, s := range []string{"normal", "dark", "light", "light-dark", "only-dark", "only-light"} {
		value := s
		switch s {
		case "light-dark":
			value = "light dark"
		case "only-dark":
			value = "dark only"
		case "only-light":
			value = "light only"
		}
		l.static("scheme-"+s, pair("color-scheme", value))
	}

	l.static("will-change-auto", pair("will-change", "auto"))
	l.static("will-change-scroll", pair("will-change", "scroll-position"))
	l.static("will-change-contents", pair("will-change", "contents"))
	l.static("will-change-transform", pair("will-change", "transform"))
	l.functionalUtility("will-change", functionalSpec{
		themeKeys: []string{"--will-change"},
		handle:    decls("will-change"),
	})

	l.colorUtility("accent", colorSpec{
		themeKeys: []string{"--accent-color", "--color"},
		handle:    decls("accent-color"),
	})
	l.static("accent-auto", pair("accent-color", "auto"))
	l.colorUtility("caret", colorSpec{
		themeKeys: []string{"--caret-color", "--color"},
		handle:    decls("caret-color"),
	})
}

func (l *library) scrolling() {
	l.static("scroll-auto", pair("scroll-behavior", "auto"))
	l.static("scroll-smooth", pair("scroll-behavior", "smooth"))

	for _, side := range []struct{ suffix, margin, padding string }{
		{"", "scroll-margin", "scroll-padding"},
		{"x", "scroll-margin-inline", "scroll-padding-inline"},
		{"y", "scroll-margin-block", "scroll-padding-block"},
		{"s", "scroll-margin-inline-start", "scroll-padding-inline-start"},
		{"e", "scroll-margin-inline-end", "scroll-padding-inline-end"},
		{"t", "scroll-margin-top", "scroll-padding-top"},
		{"r", "scroll-margin-right", "scroll-padding-right"},
		{"b", "scroll-margin-bottom", "scroll-padding-bottom"},
		{"l", "scroll-margin-left", "scroll-padding-left"},
	} {
		l.spacingUtility("scroll-m"+side.suffix, []string{"--scroll-margin", "--spacing"}, true, false, decls(side.margin))
		l.spacingUtility("scroll-p"+side.suffix, []string{"--scroll-padding", "--spacing"}, true, false, decls(side.padding))
	}

	snapProperties := []func() css.Node{prop("--tw-scroll-snap-strictness", "proximity", "*")}
	l.static("snap-none", pair("scroll-snap-type", "none"))
	for _, axis := range []string{"x", "y", "both"} {
		l.static("snap-"+axis, append(nodesOf(snapProperties), pair("scroll-snap-type", axis+" var(--tw-scroll-snap-strictness)"))...)
	}
	l.staticFn("snap-mandatory", func(Candidate, *theme.Theme) []css.Node {
		return withProperties(snapProperties, css.Decl("--tw-scroll-snap-strictness", "mandatory"))
	})
	l.staticFn("snap-proximity", func(Candidate, *theme.Theme) []css.Node {
		return withProperties(snapProperties, css.Decl("--tw-scroll-snap-strictness", "proximity"))
	})
	l.static("snap-align-none", pair("scroll-snap-align", "none"))
	l.static("snap-start", pair("scroll-snap-align", "start"))
	l.static("snap-end", pair("scroll-snap-align", "end"))
	l.static("snap-center", pair("scroll-snap-align", "center"))
	l.static("snap-normal", pair("scroll-snap-stop", "normal"))
	l.static("snap-always", pair("scroll-snap-stop", "always"))
}

func (l *library) lists() {
	l.static("list-inside", pair("list-style-position", "inside"))
	l.static("list-outside", pair("list-style-position", "outside"))
	l.static("list-none", pair("list-style-type", "none"))
	l.static("list-disc", pair("list-style-type", "disc"))
	l.static("list-decimal", pair("list-style-type", "decimal"))
	l.functionalUtility("list", functionalSpec{
		themeKeys: []string{"--list-style-type"},
		handle:    decls("list-style-type"),
	})

	l.static("list-image-none", pair("list-style-image", "none"))
	l.functionalUtility("list-image", functionalSpec{
		themeKeys: []string{"--list-style-image"},
		handle:    decls("list-style-image"),
	})
}
