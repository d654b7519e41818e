package utilities

import (
	"strconv"

	"github.com/samber/lo"

	"twc/css"
	"twc/theme"
)

func (l *library) accessibility() {
	l.static("sr-only",
		pair("position", "absolute"),
		pair("width", "1px"),
		pair("height", "1px"),
		pair("padding", "0"),
		pair("margin", "-1px"),
		pair("overflow", "hidden"),
		pair("clip-path", "inset(50%)"),
		pair("white-space", "nowrap"),
		pair("border-width", "0"),
	)
	l.static("not-sr-only",
		pair("position", "static"),
		pair("width", "auto"),
		pair("height", "auto"),
		pair("padding", "0"),
		pair("margin", "0"),
		pair("overflow", "visible"),
		pair("clip-path", "none"),
		pair("white-space", "normal"),
	)

	l.static("pointer-events-none", pair("pointer-events", "none"))
	l.static("pointer-events-auto", pair("pointer-events", "auto"))

	l.static("visible", pair("visibility", "visible"))
	l.static("invisible", pair("visibility", "hidden"))
	l.static("collapse", pair("visibility", "collapse"))

	l.static("forced-color-adjust-auto", pair("forced-color-adjust", "auto"))
	l.static("forced-color-adjust-none", pair("forced-color-adjust", "none"))
}

func (l *library) position() {
	for _, p := range []string{"static", "fixed", "absolute", "relative", "sticky"} {
		l.static(p, pair("position", p))
	}

	for _, side := range []struct{ root, property string }{
		{"inset", "inset"},
		{"inset-x", "inset-inline"},
		{"inset-y", "inset-block"},
		{"start", "inset-inline-start"},
		{"end", "inset-inline-end"},
		{"top", "top"},
		{"right", "right"},
		{"bottom", "bottom"},
		{"left", "left"},
	} {
		l.static(side.root+"-auto", pair(side.property, "auto"))
		l.static(side.root+"-full", pair(side.property, "100%"))
		l.static("-"+side.root+"-full", pair(side.property, "-100%"))
		l.spacingUtility(side.root, []string{"--inset", "--spacing"}, true, true, decls(side.property))
	}

	l.static("isolate", pair("isolation", "isolate"))
	l.static("isolation-auto", pair("isolation", "auto"))

	l.static("z-auto", pair("z-index", "auto"))
	l.functionalUtility("z", functionalSpec{
		themeKeys:        []string{"--z-index"},
		bareValue:        bareInteger,
		supportsNegative: true,
		suggestValues:    []string{"0", "10", "20", "30", "40", "50"},
		handle:           decls("z-index"),
	})

	l.static("order-first", pair("order", "calc(-infinity)"))
	l.static("order-last", pair("order", "calc(infinity)"))
	l.static("order-none", pair("order", "0"))
	l.functionalUtility("order", functionalSpec{
		themeKeys:        []string{"--order"},
		bareValue:        bareInteger,
		supportsNegative: true,
		suggestValues:    lo.Map(lo.Range(12), func(i, _ int) string { return strconv.Itoa(i + 1) }),
		handle:           decls("order"),
	})

	for _, f := range []string{"start", "end", "right", "left", "none"} {
		l.static("float-"+f, pair("float", lo.Ternary(f == "start" || f == "end", "inline-"+f, f)))
	}
	for _, f := range []string{"start", "end", "right", "left", "both", "none"} {
		l.static("clear-"+f, pair("clear", lo.Ternary(f == "start" || f == "end", "inline-"+f, f)))
	}
}

func (l *library) gridPlacement() {
	spanValue := Computed(func(v CandidateValue, _ *theme.Theme) (string, bool) {
		n, ok := evaluate(bareInteger, v, nil)
		if !ok || n == "0" {
			return "", false
		}
		return "span " + n + " / span " + n, true
	})

	for _, axis := range []struct{ root, property string }{
		{"col", "grid-column"},
		{"row", "grid-row"},
	} {
		l.static(axis.root+"-auto", pair(axis.property, "auto"))
		l.functionalUtility(axis.root, functionalSpec{
			themeKeys:        []string{"--" + axis.property},
			bareValue:        bareInteger,
			supportsNegative: true,
			handle:           decls(axis.property),
		})

		l.static(axis.root+"-span-full", pair(axis.property, "1 / -1"))
		l.functionalUtility(axis.root+"-span", functionalSpec{
			themeKeys:     []string{},
			bareValue:     spanValue,
			suggestValues: lo.Map(lo.Range(12), func(i, _ int) string { return strconv.Itoa(i + 1) }),
			handle:        decls(axis.property),
		})

		for _, edge := range []string{"start", "end"} {
			property := axis.property + "-" + edge
			l.static(axis.root+"-"+edge+"-auto", pair(property, "auto"))
			l.functionalUtility(axis.root+"-"+edge, functionalSpec{
				themeKeys:        []string{"--" + property},
				bareValue:        bareInteger,
				supportsNegative: true,
				suggestValues:    lo.Map(lo.Range(13), func(i, _ int) string { return strconv.Itoa(i + 1) }),
				handle:           decls(property),
			})
		}
	}
}

func (l *library) margin() {
	for _, side := range []struct {
		root       string
		properties []string
	}{
		{"m", []string{"margin"}},
		{"mx", []string{"margin-inline"}},
		{"my", []string{"margin-block"}},
		{"ms", []string{"margin-inline-start"}},
		{"me", []string{"margin-inline-end"}},
		{"mt", []string{"margin-top"}},
		{"mr", []string{"margin-right"}},
		{"mb", []string{"margin-bottom"}},
		{"ml", []string{"margin-left"}},
	} {
		l.static(side.root+"-auto", lo.Map(side.properties, func(p string, _ int) staticDecl { return pair(p, "auto") })...)
		l.spacingUtility(side.root, []string{"--margin", "--spacing"}, true, false, decls(side.properties...))
	}
}

func (l *library) display() {
	l.static("box-border", pair("box-sizing", "border-box"))
	l.static("box-content", pair("box-sizing", "content-box"))

	for _, d := range []string{
		"block", "inline-block", "inline", "flex", "inline-flex", "table", "inline-table",
		"table-caption", "table-cell", "table-column", "table-column-group", "table-footer-group",
		"table-header-group", "table-row-group", "table-row", "flow-root", "grid", "inline-grid",
		"contents", "list-item",
	} {
		l.static(d, pair("display", d))
	}
	l.static("hidden", pair("display", "none"))

	l.static("field-sizing-content", pair("field-sizing", "content"))
	l.static("field-sizing-fixed", pair("field-sizing", "fixed"))

	l.static("line-clamp-none",
		pair("overflow", "visible"),
		pair("display", "block"),
		pair("-webkit-box-orient", "horizontal"),
		pair("-webkit-line-clamp", "unset"),
	)
	l.functionalUtility("line-clamp", functionalSpec{
		themeKeys:     []string{"--line-clamp"},
		bareValue:     bareInteger,
		suggestValues: []string{"1", "2", "3", "4", "5", "6"},
		handle: func(value string) []css.Node {
			return []css.Node{
				css.Decl("overflow", "hidden"),
				css.Decl("display", "-webkit-box"),
				css.Decl("-webkit-box-orient", "vertical"),
				css.Decl("-webkit-line-clamp", value),
			}
		},
	})

	l.static("aspect-auto", pair("aspect-ratio", "auto"))
	l.static("aspect-square", pair("aspect-ratio", "1 / 1"))
	l.functionalUtility("aspect", functionalSpec{
		themeKeys: []string{"--aspect"},
		bareValue: bareRatio,
		handle:    decls("aspect-ratio"),
	})

	for _, o := range []string{"auto", "hidden", "clip", "visible", "scroll"} {
		l.static("overflow-"+o, pair("overflow", o))
		l.static("overflow-x-"+o, pair("overflow-x", o))
		l.static("overflow-y-"+o, pair("overflow-y", o))
	}
	for _, o := range []string{"auto", "contain", "none"} {
		l.static("overscroll-"+o, pair("overscroll-behavior", o))
		l.static("overscroll-x-"+o, pair("overscroll-behavior-x", o))
		l.static("overscroll-y-"+o, pair("overscroll-behavior-y", o))
	}

	l.static("box-decoration-clone", pair("-webkit-box-decoration-break", "clone"), pair("box-decoration-break", "clone"))
	l.static("box-decoration-slice", pair("-webkit-box-decoration-break", "slice"), pair("box-decoration-break", "slice"))

	for _, f := range []string{"contain", "cover", "fill", "none", "scale-down"} {
		l.static("object-"+f, pair("object-fit", f))
	}
	for _, p := range positionKeywords {
		l.static("object-"+p.name, pair("object-position", p.value))
	}
	l.functionalUtility("object", functionalSpec{
		themeKeys: []string{"--object-position"},
		handle:    decls("object-position"),
	})
}

// positionKeywords are named positions shared by object, background and
// transform origin utilities.
var positionKeywords = []struct{ name, value string }{
	{"top-left", "left top"},
	{"top", "top"},
	{"top-right", "right top"},
	{"right", "right"},
	{"bottom-right", "right bottom"},
	{"bottom", "bottom"},
	{"bottom-left", "left bottom"},
	{"left", "left"},
	{"center", "center"},
}

func (l *library) sizing() {
	type sizeFamily struct {
		root       string
		properties []string
		themeKeys  []string
		statics    map[string]string
	}
	common := map[string]string{
		"auto": "auto", "full": "100%", "min": "min-content", "max": "max-content", "fit": "fit-content",
	}
	widths := lo.Assign(common, map[string]string{
		"screen": "100vw", "svw": "100svw", "lvw": "100lvw", "dvw": "100dvw",
	})
	heights := lo.Assign(common, map[string]string{
		"screen": "100vh", "svh": "100svh", "lvh": "100lvh", "dvh": "100dvh", "lh": "1lh",
	})
	maxes := lo.Assign(lo.OmitByKeys(common, []string{"auto"}), map[string]string{"none": "none"})

	for _, f := range []sizeFamily{
		{"size", []string{"width", "height"}, []string{"--size", "--spacing"}, common},
		{"w", []string{"width"}, []string{"--width", "--spacing", "--container"}, widths},
		{"min-w", []string{"min-width"}, []string{"--min-width", "--spacing", "--container"}, widths},
		{"max-w", []string{"max-width"}, []string{"--max-width", "--spacing", "--container"}, lo.Assign(maxes, map[string]string{"screen": "100vw"})},
		{"h", []string{"height"}, []string{"--height", "--spacing"}, heights},
		{"min-h", []string{"min-height"}, []string{"--min-height", "--spacing"}, heights},
		{"max-h", []string{"max-height"}, []string{"--max-height", "--spacing"}, lo.Assign(maxes, map[string]string{"screen": "100vh"})},
	} {
		for name, value := range f.statics {
			l.static(f.root+"-"+name, lo.Map(f.properties, func(p string, _ int) staticDecl { return pair(p, value) })...)
		}
		l.spacingUtility(f.root, f.themeKeys, false, true, decls(f.properties...))
	}
}

// container sets width to 100% and caps it at every breakpoint in theme
// order.
func (l *library) container() {
	l.staticFn("container", func(_ Candidate, th *theme.Theme) []css.Node {
		nodes := []css.Node{css.Decl("width", "100%")}
		for _, bp := range th.Namespace("--breakpoint") {
			if bp.Name == "" {
				continue
			}
			nodes = append(nodes, css.NewAtRule("media", "(width >= "+bp.Value+")", css.Decl("max-width", bp.Value)))
		}
		return nodes
	})
}

func (l *library) padding() {
	for _, side := range []struct{ root, property string }{
		{"p", "padding"},
		{"px", "padding-inline"},
		{"py", "padding-block"},
		{"ps", "padding-inline-start"},
		{"pe", "padding-inline-end"},
		{"pt", "padding-top"},
		{"pr", "padding-right"},
		{"pb", "padding-bottom"},
		{"pl", "padding-left"},
	} {
		l.spacingUtility(side.root, []string{"--padding", "--spacing"}, false, false, decls(side.property))
	}
}
