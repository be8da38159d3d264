package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Output targets
const (
	OutputStdout = "stdout"
	OutputFile   = "file"
)

// Options configures the zap logger
type Options struct {
	Level         string
	Format        string // json or console
	Output        string // stdout or file
	FilePath      string
	RotationHours int
	MaxAgeDays    int
	CallerInfo    bool
}

// ZapLogger implements the Logger interface using Zap
type ZapLogger struct {
	logger *zap.Logger
	atom   zap.AtomicLevel
	level  core.LogLevel
}

// NewZapLogger creates a zap-based logger writing to stdout or a rotated file
func NewZapLogger(opts Options) (core.Logger, error) {
	var sink io.Writer = os.Stdout
	if opts.Output == OutputFile {
		writer, err := newRotatingWriter(opts)
		if err != nil {
			return nil, err
		}
		sink = writer
	}
	return newZapLogger(opts, zapcore.AddSync(sink)), nil
}

// NewDefaultLogger creates a development console logger
func NewDefaultLogger() core.Logger {
	return newZapLogger(Options{Level: "info", Format: "console", CallerInfo: true}, zapcore.AddSync(os.Stdout))
}

func newZapLogger(opts Options, sink zapcore.WriteSyncer) *ZapLogger {
	var encoder zapcore.Encoder
	if opts.Format == "console" {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encCfg.TimeKey = "timestamp"
		encCfg.MessageKey = "message"
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encCfg.TimeKey = "timestamp"
		encCfg.MessageKey = "message"
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	level := core.ParseLogLevel(opts.Level)
	atom := zap.NewAtomicLevelAt(toZapLevel(level))

	zapOpts := []zap.Option{zap.AddStacktrace(zapcore.ErrorLevel)}
	if opts.CallerInfo {
		// skip the adapter frame so the caller is the use case or handler
		zapOpts = append(zapOpts, zap.AddCaller(), zap.AddCallerSkip(1))
	}

	return &ZapLogger{
		logger: zap.New(zapcore.NewCore(encoder, sink, atom), zapOpts...),
		atom:   atom,
		level:  level,
	}
}

func newRotatingWriter(opts Options) (io.Writer, error) {
	if opts.FilePath == "" {
		return nil, fmt.Errorf("logger file output requires a file path")
	}
	if err := os.MkdirAll(filepath.Dir(opts.FilePath), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	rotation := time.Duration(opts.RotationHours) * time.Hour
	if rotation <= 0 {
		rotation = 24 * time.Hour
	}
	maxAge := time.Duration(opts.MaxAgeDays) * 24 * time.Hour
	if maxAge <= 0 {
		maxAge = 7 * 24 * time.Hour
	}

	return rotatelogs.New(
		opts.FilePath+".%Y%m%d%H",
		rotatelogs.WithLinkName(opts.FilePath),
		rotatelogs.WithRotationTime(rotation),
		rotatelogs.WithMaxAge(maxAge),
	)
}

func toZapLevel(level core.LogLevel) zapcore.Level {
	switch level {
	case core.LogLevelDebug:
		return zap.DebugLevel
	case core.LogLevelWarn:
		return zap.WarnLevel
	case core.LogLevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// SetLevel sets the minimum log level
func (l *ZapLogger) SetLevel(level core.LogLevel) {
	l.level = level
	l.atom.SetLevel(toZapLevel(level))
}

// GetLevel gets the current log level
func (l *ZapLogger) GetLevel() core.LogLevel {
	return l.level
}

// mapToZapFields converts a map of fields to zap fields
func mapToZapFields(fields map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

// Debug logs debug messages
func (l *ZapLogger) Debug(message string, fields map[string]any) {
	l.logger.Debug(message, mapToZapFields(fields)...)
}

// Info logs informational messages
func (l *ZapLogger) Info(message string, fields map[string]any) {
	l.logger.Info(message, mapToZapFields(fields)...)
}

// Warn logs warning messages
func (l *ZapLogger) Warn(message string, fields map[string]any) {
	l.logger.Warn(message, mapToZapFields(fields)...)
}

// Error logs error messages
func (l *ZapLogger) Error(message string, fields map[string]any) {
	l.logger.Error(message, mapToZapFields(fields)...)
}

// Flush ensures all buffered logs are written
func (l *ZapLogger) Flush() error {
	return l.logger.Sync()
}
