// Package logging builds the zap logger used by the radiomesh CLI.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options select the level and destination of the CLI logger.
type Options struct {
	// Verbose logs every pipeline stage at debug level; otherwise only
	// warnings and errors are written.
	Verbose bool
	// File, when set, sends logs to a size-rotated file instead of stderr.
	File string
	// Size in megabytes before the file is rotated.
	MaxSize int
	// Number of rotated files kept.
	MaxBackups int
	// If true rotated files are gzipped.
	Compress bool
}

// New returns a console-encoded logger named "radiomesh" and a close function
// that releases the log file, if any. Call Sync before close.
func New(opts Options) (*zap.Logger, func() error) {
	encCfg := zap.NewProductionEncoderConfig()
	level := zapcore.WarnLevel
	if opts.Verbose {
		encCfg = zap.NewDevelopmentEncoderConfig()
		level = zapcore.DebugLevel
	}
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	out, closeFn := writeSyncer(opts)
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), out, level)
	zopts := []zap.Option{zap.ErrorOutput(zapcore.Lock(os.Stderr))}
	if opts.Verbose {
		zopts = append(zopts, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	}

	return zap.New(core, zopts...).Named("radiomesh"), closeFn
}

// writeSyncer picks stderr or a rotating file. Stderr is never closed.
func writeSyncer(opts Options) (zapcore.WriteSyncer, func() error) {
	if opts.File == "" {
		return zapcore.Lock(os.Stderr), func() error { return nil }
	}

	file := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		Compress:   opts.Compress,
	}

	return zapcore.AddSync(file), file.Close
}
