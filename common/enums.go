// Package common holds enums shared between configuration and command line,
// kept apart so config does not depend on the compiler packages.
package common

// Format of theme token sources.
// ENUM(css, toml)
type ThemeFormat int

// ThemeFormatFromExt guesses source format from file extension, stylesheets
// are assumed for anything unknown.
func ThemeFormatFromExt(ext string) ThemeFormat {
	if ext == ".toml" {
		return ThemeFormatToml
	}
	return ThemeFormatCss
}

// Requested output type.
// ENUM(css, yaml)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtCss:
		return ".css"
	case OutputFmtYaml:
		return ".yaml"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
