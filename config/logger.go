package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"

	"twc/misc"
)

type LoggerConfig struct {
	Level       string `yaml:"level" validate:"required,oneof=none debug normal"`
	Destination string `yaml:"destination,omitempty" sanitize:"path_clean,assure_dir_exists_for_file" validate:"omitempty,filepath"`
	Mode        string `yaml:"mode,omitempty" validate:"omitempty,oneof=append overwrite"`
}

type LoggingConfig struct {
	FileLogger    LoggerConfig `yaml:"file"`
	ConsoleLogger LoggerConfig `yaml:"console"`
}

// PanicLogName returns location of crash output file next to the file log.
func (conf *LoggingConfig) PanicLogName() string {
	return filepath.Join(filepath.Dir(conf.FileLogger.Destination), misc.GetAppName()+"-panic.log")
}

// consoleEncoder returns console encoder for stream, with colored levels and
// no timestamps when stream is a terminal.
func consoleEncoder(stream *os.File) zapcore.EncoderConfig {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if EnableColorOutput(stream) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return ec
}

// levelOf maps configured level name to the lowest enabled zap level, false
// means logging is off.
func levelOf(name string) (zapcore.Level, bool) {
	switch name {
	case "debug":
		return zapcore.DebugLevel, true
	case "normal":
		return zapcore.InfoLevel, true
	}
	return zapcore.InvalidLevel, false
}

// consoleCores splits console output: errors go to stderr, everything else
// at or above configured level goes to stdout.
func consoleCores(level string) (lp, hp zapcore.Core) {
	lowest, on := levelOf(level)
	if !on {
		return zapcore.NewNopCore(), zapcore.NewNopCore()
	}
	lp = zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncoder(os.Stdout)), zapcore.Lock(os.Stdout),
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lowest <= lvl && lvl < zapcore.ErrorLevel
		}))
	hp = zapcore.NewCore(newEncoder(consoleEncoder(os.Stderr)), zapcore.Lock(os.Stderr),
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl >= zapcore.ErrorLevel
		}))
	return lp, hp
}

func openLog(fname, mode string) (*os.File, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if mode == "append" {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	return os.OpenFile(fname, flags, 0644)
}

// fileCore opens file log and crash output next to it. Both fall back to
// temporary files when destination is not writable, returned name is set
// when file log had to be moved.
func (conf *LoggingConfig) fileCore(level zapcore.Level, mode string, rpt *Report) (zapcore.Core, string, error) {
	ef, err := openLog(conf.PanicLogName(), mode)
	if err != nil {
		ef, _ = os.CreateTemp("", misc.GetAppName()+"-panic.*.log")
	}
	if ef != nil {
		debug.SetCrashOutput(ef, debug.CrashOptions{})
		rpt.Store("panic.log", ef.Name())
		ef.Close()
	}

	var moved string
	f, err := openLog(conf.FileLogger.Destination, mode)
	if err != nil {
		if f, err = os.CreateTemp("", misc.GetAppName()+".*.log"); err != nil {
			return nil, "", fmt.Errorf("unable to access file log destination (%s): %w", conf.FileLogger.Destination, err)
		}
		moved = f.Name()
	}
	rpt.Store("final.log", f.Name())
	return zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.Lock(f), level), moved, nil
}

// Prepare returns program logger: console output split between stdout and
// stderr plus optional file log. Debug report forces file log at debug level,
// overwriting previous content, so the report always has the full story.
func (conf *LoggingConfig) Prepare(rpt *Report) (*zap.Logger, error) {
	lp, hp := consoleCores(conf.ConsoleLogger.Level)

	level, mode := conf.FileLogger.Level, conf.FileLogger.Mode
	if rpt != nil {
		level, mode = "debug", "overwrite"
	}

	fc, moved := zapcore.NewNopCore(), ""
	if lowest, on := levelOf(level); on {
		var err error
		if fc, moved, err = conf.fileCore(lowest, mode, rpt); err != nil {
			return nil, err
		}
	}

	log := zap.New(zapcore.NewTee(hp, lp, fc), zap.AddCaller())
	if len(moved) != 0 {
		log.Warn("Log file was redirected to new location", zap.String("location", moved))
	}
	return log.Named(misc.GetAppName()), nil
}

// When logging error to console - do not output verbose message.

type consoleEnc struct {
	zapcore.Encoder
}

func newEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	return consoleEnc{zapcore.NewConsoleEncoder(cfg)}
}

func (c consoleEnc) Clone() zapcore.Encoder {
	return consoleEnc{c.Encoder.Clone()}
}

func (c consoleEnc) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	newFields := make([]zapcore.Field, 0, len(fields))
	for _, f := range fields {
		if f.Type == zapcore.ErrorType {
			// multierr and wrapped errors carry verbose forms, console gets only the message
			e := f.Interface.(error)
			f.Interface = errors.New(e.Error())
		}
		newFields = append(newFields, f)
	}
	return c.Encoder.EncodeEntry(ent, newFields)
}
