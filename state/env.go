// Package state defines shared program state.
package state

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"twc/config"
	"twc/misc"
	"twc/theme"
)

type envKey struct{}

// LocalEnv is everything commands share: configuration, optional debug report
// and program logger. It is created once per run and filled by Setup after
// command line has been parsed.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// set when configuration came from a file
	ConfigFile string

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &LocalEnv{start: time.Now()})
}

// Setup loads configuration (embedded defaults when configFile is empty),
// opens debug report when requested and builds program logger.
func (e *LocalEnv) Setup(configFile string, report bool) (err error) {
	if e.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return fmt.Errorf("unable to prepare configuration: %w", err)
	}
	e.ConfigFile = configFile

	if report {
		if e.Rpt, err = e.Cfg.Reporting.Prepare(); err != nil {
			return fmt.Errorf("unable to prepare debug reporter: %w", err)
		}
		if len(configFile) > 0 {
			if data, err := config.Dump(e.Cfg); err == nil {
				e.Rpt.StoreData("config/"+filepath.Base(configFile), data)
			}
		}
		if e.Cfg.Compiler.Theme.Defaults {
			e.Rpt.StoreData("theme/default.css", theme.DefaultCSS())
		}
	}

	if e.Log, err = e.Cfg.Logging.Prepare(e.Rpt); err != nil {
		return fmt.Errorf("unable to prepare logs: %w", err)
	}
	e.RedirectStdLog()

	e.Log.Debug("Program started",
		zap.Strings("args", os.Args),
		zap.String("ver", misc.GetVersion()),
		zap.String("runtime", runtime.Version()),
		zap.String("hash", misc.GetGitHash()))
	if e.Rpt != nil {
		e.Log.Info("Creating debug report", zap.String("location", e.Rpt.Name()))
	}
	if len(configFile) == 0 {
		e.Log.Info("Using defaults (no configuration file)")
	}
	return nil
}

// Teardown syncs logs, closes debug report and removes empty crash output.
// Logger must not be used after that.
func (e *LocalEnv) Teardown() (err error) {
	if e.Log != nil {
		e.Log.Debug("Program ended", zap.Duration("elapsed", e.Uptime()))
	}
	e.RestoreStdLog()

	if e.Rpt != nil {
		if er := e.Rpt.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close debug report: %w", er))
		}
		e.Rpt = nil
	}
	if e.Cfg != nil {
		debug.SetCrashOutput(nil, debug.CrashOptions{})
		fname := e.Cfg.Logging.PanicLogName()
		if fi, er := os.Stat(fname); er == nil && fi.Size() == 0 {
			if er := os.Remove(fname); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to remove empty panic log file '%s': %w", fname, er))
			}
		}
	}
	return err
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
		e.restoreStdLog = nil
	}
}

// Logger returns named program logger or a no-op logger when logging has not
// been set up yet (command line parsing, help output).
func (e *LocalEnv) Logger(name string) *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log.Named(name)
}
