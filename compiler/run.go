package compiler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	"github.com/samber/lo"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"twc/archive"
	"twc/common"
	"twc/config"
	"twc/css"
	"twc/state"
	"twc/theme"
	"twc/utilities"
	"twc/values"
)

var themeExts = []string{".css", ".toml"}

// optionsFromConfig assembles compiler options. Extra theme files are applied
// after configured ones. Zip bundles contribute every theme source they carry,
// in archive order.
func optionsFromConfig(cfg *config.CompilerConfig, extra []string, rpt *config.Report) (Options, error) {
	opts := Options{
		Prefix:       cfg.Prefix,
		Strict:       cfg.Strict,
		Important:    cfg.Important,
		Defaults:     cfg.Theme.Defaults,
		HintDistance: cfg.HintDistance,
	}
	for _, path := range append(append([]string{}, cfg.Theme.Sources...), extra...) {
		if strings.EqualFold(filepath.Ext(path), ".zip") {
			rpt.Store("theme/"+filepath.Base(path), path)
			err := archive.Walk(path, themeExts, func(bundle, name string, data []byte) error {
				opts.Sources = append(opts.Sources, Source{
					Name:   bundle + ":" + name,
					Format: common.ThemeFormatFromExt(strings.ToLower(filepath.Ext(name))),
					Data:   data,
				})
				return nil
			})
			if err != nil {
				return opts, fmt.Errorf("unable to read theme bundle %q: %w", path, err)
			}
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return opts, fmt.Errorf("unable to read theme source %q: %w", path, err)
		}
		rpt.Store("theme/"+filepath.Base(path), path)
		opts.Sources = append(opts.Sources, Source{
			Name:   path,
			Format: common.ThemeFormatFromExt(strings.ToLower(filepath.Ext(path))),
			Data:   data,
		})
	}
	return opts, nil
}

// fromCommand builds compiler using configuration and command flags.
func fromCommand(cmd *cli.Command, env *state.LocalEnv, log *zap.Logger) (*Compiler, error) {
	cfg := env.Cfg.Compiler
	if cmd.IsSet("prefix") {
		cfg.Prefix = cmd.String("prefix")
	}
	if cmd.IsSet("important") {
		cfg.Important = cmd.Bool("important")
	}
	if cmd.Bool("no-defaults") {
		cfg.Theme.Defaults = false
	}
	opts, err := optionsFromConfig(&cfg, cmd.StringSlice("theme"), env.Rpt)
	if err != nil {
		return nil, err
	}
	return New(opts, log)
}

func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// Run is the compile command: reads parsed candidates and writes produced CSS.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Logger("compile")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no candidates source has been specified")
	}
	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	format := env.Cfg.Compiler.Output
	if cmd.IsSet("format") {
		if format, err = common.ParseOutputFmt(cmd.String("format")); err != nil {
			log.Warn("Unknown output format requested, switching to configured one", zap.Error(err), zap.Stringer("format", env.Cfg.Compiler.Output))
			format = env.Cfg.Compiler.Output
		}
	}

	var in io.Reader
	if src == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("unable to read candidates: %w", err)
		}
		env.Rpt.StoreData("candidates/stdin.yaml", data)
		in = bytes.NewReader(data)
	} else {
		f, err := os.Open(src)
		if err != nil {
			return fmt.Errorf("unable to open candidates: %w", err)
		}
		defer f.Close()
		in = f
		env.Rpt.Store("candidates/"+filepath.Base(src), src)
	}
	candidates, err := DecodeCandidates(in)
	if err != nil {
		return err
	}

	c, err := fromCommand(cmd, env, log)
	if err != nil {
		return err
	}

	log.Info("Processing starting", zap.String("source", src), zap.Int("candidates", len(candidates)), zap.Stringer("format", format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	res, err := c.Compile(ctx, candidates)
	if err != nil {
		return err
	}
	used := c.Theme().Used()
	log.Info("Candidates resolved",
		zap.Int("produced", len(res.Outputs)),
		zap.Int("unknown", len(res.Unknown)),
		zap.Int("skipped", len(res.Skipped)),
		zap.Int("used tokens", len(used)),
		zap.Int("unused tokens", c.Theme().Size()-len(used)))

	var data []byte
	switch format {
	case common.OutputFmtYaml:
		if data, err = yaml.Marshal(res.Document(used)); err != nil {
			return fmt.Errorf("unable to serialize result: %w", err)
		}
	default:
		data = []byte(res.Stylesheet().String())
	}
	env.Rpt.StoreData("output"+format.Ext(), data)
	if env.Rpt != nil {
		env.Rpt.StoreData("output.tree", []byte(css.Dump(res.Nodes())))
		if format != common.OutputFmtYaml {
			if err := env.Rpt.StoreYAML("output.summary.yaml", res.Document(used)); err != nil {
				log.Warn("Unable to store result summary", zap.Error(err))
			}
		}
	}

	return writeResult(dst, src, format, data, writer(cmd), log)
}

// writeResult writes data to destination. Empty destination means standard
// output, for existing directory file name is derived from source.
func writeResult(dst, src string, format common.OutputFmt, data []byte, stdout io.Writer, log *zap.Logger) error {
	if len(dst) == 0 {
		_, err := stdout.Write(data)
		return err
	}
	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		dst = filepath.Join(dst, config.OutputName(src, format.Ext()))
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("unable to write result: %w", err)
	}
	log.Debug("Result written", zap.String("destination", dst))
	return nil
}

// Suggestions is the suggest command: lists utility roots with values they
// accept.
func Suggestions(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	c, err := fromCommand(cmd, env, env.Logger("suggest"))
	if err != nil {
		return err
	}

	w := writer(cmd)
	for _, s := range c.Suggest(cmd.Args().First()) {
		kinds := strings.Join(lo.Map(s.Kinds, func(k utilities.Kind, _ int) string { return k.String() }), ",")
		if _, err := fmt.Fprintf(w, "%s [%s]\n", s.Root, kinds); err != nil {
			return err
		}
		for _, g := range s.Groups {
			var attrs []string
			if g.SupportsNegative {
				attrs = append(attrs, "negative")
			}
			if g.SupportsFractions {
				attrs = append(attrs, "fractions")
			}
			if g.HasDefaultValue {
				attrs = append(attrs, "default")
			}
			line := "  " + strings.Join(g.Values, " ")
			if len(g.Modifiers) > 0 {
				line += " / " + strings.Join(g.Modifiers, " ")
			}
			if len(attrs) > 0 {
				line += " (" + strings.Join(attrs, ", ") + ")"
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// ListTheme is the theme command: lists tokens of requested namespaces (all
// tokens when none requested) in natural order. Legacy namespace spellings
// ("--colors") are accepted.
func ListTheme(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	log := env.Logger("theme")
	c, err := fromCommand(cmd, env, log)
	if err != nil {
		return err
	}
	th := c.Theme()

	var entries []theme.Entry
	if cmd.Args().Len() == 0 {
		entries = th.Entries()
	}
	for _, ns := range cmd.Args().Slice() {
		if !strings.HasPrefix(ns, "--") {
			ns = "--" + ns
		}
		found := th.Namespace(ns)
		if alias, ok := values.LegacyNamespace(ns); ok && len(found) == 0 {
			log.Debug("Legacy namespace requested", zap.String("namespace", ns), zap.String("alias", alias))
			found = th.Namespace(alias)
		}
		if len(found) == 0 {
			log.Warn("Theme namespace is empty", zap.String("namespace", ns))
		}
		entries = append(entries, found...)
	}
	entries = lo.UniqBy(entries, func(e theme.Entry) string { return e.Key })
	sort.SliceStable(entries, func(i, j int) bool { return natural.Less(entries[i].Key, entries[j].Key) })

	w := writer(cmd)
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s: %s [%s]\n", e.Key, e.Value, e.Flags); err != nil {
			return err
		}
	}
	return nil
}
