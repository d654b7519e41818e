package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/samber/lo"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"twc/common"
	"twc/compiler"
	"twc/config"
	"twc/misc"
	"twc/state"
)

// beforeCommand sets up environment once command line has been parsed. Bare
// invocation (help, version) needs nothing.
func beforeCommand(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.NArg() == 0 {
		return ctx, nil
	}
	return ctx, state.EnvFromContext(ctx).Setup(cmd.String("config"), cmd.Bool("debug"))
}

// afterCommand releases environment. Errors are reported directly to stderr
// from now on, log is already closed.
func afterCommand(ctx context.Context, _ *cli.Command) error {
	return state.EnvFromContext(ctx).Teardown()
}

// Commands return plain errors, cli.Exit is not used. Error is logged while
// logger is still alive, otherwise main prints it.
var errLogged bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	if env := state.EnvFromContext(ctx); env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errLogged = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Logger("cli").Warn("Unknown command, nothing to do", zap.String("command", name))
}

func main() {

	// allow graceful shutdown on interrupt.
	// NOTE: compilation is short, context is checked between candidates
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	themeFlags := []cli.Flag{
		&cli.StringSliceFlag{Name: "theme", Aliases: []string{"t"},
			Usage: "apply theme tokens from `FILE` (stylesheet with @theme blocks, TOML or zip bundle of those), may be repeated"},
		&cli.StringFlag{Name: "prefix", Usage: "`PREFIX` for emitted theme variables, overrides configuration"},
		&cli.BoolFlag{Name: "no-defaults", Usage: "do not load built-in theme tokens"},
	}

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "utility class CSS compiler",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          beforeCommand,
		After:           afterCommand,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "changes program behavior to help troubleshooting, produces report archive"},
		},
		Commands: []*cli.Command{
			{
				Name:         "compile",
				Usage:        "Resolves parsed utility candidates into CSS",
				OnUsageError: usageErrorHandler,
				Action:       compiler.Run,
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"},
						Usage: "output `TYPE` (supported types: " + strings.Join(common.OutputFmtNames(), ", ") + "), overrides configuration"},
					&cli.BoolFlag{Name: "important", Usage: "mark all generated declarations !important"},
				}, themeFlags...),
				ArgsUsage: "CANDIDATES [DESTINATION]",
				CustomHelpTemplate: fmt.Sprintf(`%s
CANDIDATES:
    YAML (or JSON) file with a list of parsed candidates, "-" reads STDIN:
        - root: bg
          value: {value: red-500}
          modifier: {value: "50"}
        - root: mt
          value: {kind: arbitrary, value: 10px}
          negative: true
        - property: color
          value: {kind: arbitrary, value: red}

DESTINATION:
    file or directory to write result to, if absent - STDOUT
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "suggest",
				Usage:        "Lists utilities and values they accept",
				OnUsageError: usageErrorHandler,
				Action:       compiler.Suggestions,
				Flags:        themeFlags,
				ArgsUsage:    "[QUERY]",
				CustomHelpTemplate: fmt.Sprintf(`%s
QUERY:
    fuzzy filter for utility names ("bgc" matches "bg-clip" and "bg-conic"), if absent - all utilities
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "theme",
				Usage:        "Lists theme tokens",
				OnUsageError: usageErrorHandler,
				Action:       compiler.ListTheme,
				Flags:        themeFlags,
				ArgsUsage:    "[NAMESPACE]...",
				CustomHelpTemplate: fmt.Sprintf(`%s
NAMESPACE:
    theme namespace to list ("color", "--spacing", legacy "colors"), if absent - all tokens
`, cli.CommandHelpTemplate),
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       dumpConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values which is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
			},
		},
	}

	err := app.Run(ctx, os.Args)
	stop()
	if err != nil {
		if !errLogged {
			fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
		}
		os.Exit(1)
	}
}

// dumpConfiguration writes embedded or effective configuration.
func dumpConfiguration(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)
	log := env.Logger("config")
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	which, dump := "actual", func() ([]byte, error) { return config.Dump(env.Cfg) }
	if cmd.Bool("default") {
		which, dump = "default", config.Prepare
	}
	data, err := dump()
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	dst := cmd.Args().First()
	log.Info("Outputting configuration", zap.String("state", which), zap.String("file", lo.Ternary(dst == "", "STDOUT", dst)))
	if dst == "" {
		_, err = os.Stdout.Write(data)
	} else {
		err = os.WriteFile(dst, data, 0644)
	}
	if err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
