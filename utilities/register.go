package utilities

import "twc/theme"

// Register adds the whole utility catalog to registry. Suggestion suppliers
// read theme lazily, so theme may still change until the first suggestion is
// requested. All configuration errors are returned together.
func Register(r *Registry, th *theme.Theme) error {
	l := &library{r: r, th: th}

	l.accessibility()
	l.position()
	l.gridPlacement()
	l.margin()
	l.padding()
	l.display()
	l.sizing()
	l.container()
	l.flexbox()
	l.alignment()
	l.gaps()
	l.grid()
	l.tables()
	l.origins()
	l.translate()
	l.scale()
	l.rotate()
	l.skew()
	l.transform()
	l.interactivity()
	l.scrolling()
	l.lists()
	l.fonts()
	l.text()
	l.leading()
	l.decoration()
	l.background()
	l.gradients()
	l.svg()
	l.radius()
	l.borders()
	l.divide()
	l.outline()
	l.shadows()
	l.rings()
	l.opacity()
	l.filters()
	l.transitions()
	l.animation()
	l.arbitraryProperty()

	return l.err
}
