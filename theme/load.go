package theme

import (
	_ "embed"
	"fmt"
	"sort"
	"strconv"

	"github.com/maruel/natural"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"twc/css"
)

//go:embed default.css
var defaultTheme []byte

// DefaultCSS returns stylesheet with the built-in theme.
func DefaultCSS() []byte {
	return defaultTheme
}

// Default creates theme populated with built-in tokens.
func Default(log *zap.Logger) (*Theme, error) {
	t := New(log)
	if err := LoadCSS(t, defaultTheme, css.NewParser(log), "default.css"); err != nil {
		return nil, fmt.Errorf("unable to load default theme: %w", err)
	}
	return t, nil
}

func optionsToFlags(opts css.ThemeOptions) Flags {
	flags := FlagNone
	if opts.Inline {
		flags |= FlagInline
	}
	if opts.Reference {
		flags |= FlagReference
	}
	if opts.Default {
		flags |= FlagDefault
	}
	if opts.Static {
		flags |= FlagStatic
	}
	return flags
}

// LoadCSS adds tokens from all @theme blocks of a stylesheet. All invalid
// declarations are reported together.
func LoadCSS(t *Theme, data []byte, parser *css.Parser, source string) (err error) {
	sheet := parser.ParseTheme(data, source)
	for _, w := range sheet.Warnings {
		t.log.Warn("Theme stylesheet problem", zap.String("source", source), zap.String("warning", w))
	}
	for _, d := range sheet.Decls {
		if e := t.Add(d.Key, d.Value, optionsToFlags(d.Options)); e != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", source, e))
		}
	}
	for _, name := range sheet.Keyframes {
		t.AddKeyframes(name)
	}
	t.log.Debug("Theme stylesheet loaded", zap.String("source", source), zap.Int("tokens", len(sheet.Decls)), zap.Int("size", t.Size()))
	return err
}

// tomlTheme is the layout of TOML theme files:
//
//	[options]
//	default = true
//
//	[theme]
//	spacing = "0.25rem"
//
//	[theme.color]
//	red-500 = "#ef4444"
//
// Nested tables are flattened with dashes, [theme.color.red] 500 = "..."
// produces "--color-red-500".
type tomlTheme struct {
	Options struct {
		Inline    bool `toml:"inline"`
		Reference bool `toml:"reference"`
		Default   bool `toml:"default"`
		Static    bool `toml:"static"`
	} `toml:"options"`
	Theme     map[string]any `toml:"theme"`
	Keyframes []string       `toml:"keyframes"`
}

// LoadTOML adds tokens from TOML theme file.
func LoadTOML(t *Theme, data []byte, source string) (err error) {
	var tt tomlTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return fmt.Errorf("unable to decode theme file %s: %w", source, err)
	}
	flags := optionsToFlags(css.ThemeOptions{
		Inline:    tt.Options.Inline,
		Reference: tt.Options.Reference,
		Default:   tt.Options.Default,
		Static:    tt.Options.Static,
	})

	var count int
	var walk func(prefix string, table map[string]any)
	walk = func(prefix string, table map[string]any) {
		keys := make([]string, 0, len(table))
		for k := range table {
			keys = append(keys, k)
		}
		sort.Sort(natural.StringSlice(keys))

		for _, k := range keys {
			key := prefix + "-" + k
			switch v := table[k].(type) {
			case map[string]any:
				walk(key, v)
				continue
			case string:
				err = multierr.Append(err, t.Add(key, v, flags))
			case int64:
				err = multierr.Append(err, t.Add(key, strconv.FormatInt(v, 10), flags))
			case float64:
				err = multierr.Append(err, t.Add(key, strconv.FormatFloat(v, 'f', -1, 64), flags))
			default:
				err = multierr.Append(err, fmt.Errorf("%s: unsupported value type %T for %s", source, v, key))
				continue
			}
			count++
		}
	}
	// top level keys are namespaces, "--" + "-" + name gives "--name"
	walk("-", tt.Theme)

	for _, name := range tt.Keyframes {
		t.AddKeyframes(name)
	}
	t.log.Debug("Theme file loaded", zap.String("source", source), zap.Int("tokens", count), zap.Int("size", t.Size()))
	return err
}
