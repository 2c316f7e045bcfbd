package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level names accepted by Config.Level.
type Level string

const (
	Debug   Level = "debug"
	Info    Level = "info"
	Warning Level = "warning"
	Error   Level = "error"
)

// Config controls logger construction.
type Config struct {
	// Level is the minimum level emitted. Defaults to info.
	Level Level `yaml:"level" env:"LOG_LEVEL"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`
}

// NewConfig reads the logger configuration from environment variables.
func NewConfig() Config {
	cfg := Config{
		Level:       Level(os.Getenv("LOG_LEVEL")),
		ServiceName: os.Getenv("SERVICE_NAME"),
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "dog-finder"
	}
	return cfg
}

// Logger is a thin wrapper around Uber's Zap logger.
type Logger struct {
	// Zap is the underlying zap.Logger, exposed for the rare case that
	// needs Zap-specific functionality. Most logging should go through the
	// wrapper methods.
	Zap *zap.Logger
}

// NewLogger builds a JSON-encoded Zap logger writing to stderr, with ISO8601
// timestamps, caller information, and the process id and service name as
// initial fields. Initialization failure is fatal: a service without logging
// is not worth starting.
func NewLogger(cfg Config) *Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	logLevel := zap.InfoLevel
	switch cfg.Level {
	case Debug:
		logLevel = zap.DebugLevel
	case Warning:
		logLevel = zap.WarnLevel
	case Error:
		logLevel = zap.ErrorLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(logLevel),
		Encoding:         "json",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	zl, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		log.Fatal(err)
	}

	return &Logger{Zap: zl}
}

// NewNop returns a logger that discards everything. Intended for tests.
func NewNop() *Logger {
	return &Logger{Zap: zap.NewNop()}
}

func toZapFields(fields map[string]any) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}

// Debug logs at debug level with optional structured fields.
func (l *Logger) Debug(msg string, fields map[string]any) {
	l.Zap.Debug(msg, toZapFields(fields)...)
}

// Info logs at info level with optional structured fields.
func (l *Logger) Info(msg string, fields map[string]any) {
	l.Zap.Info(msg, toZapFields(fields)...)
}

// Warn logs at warning level with optional structured fields.
func (l *Logger) Warn(msg string, fields map[string]any) {
	l.Zap.Warn(msg, toZapFields(fields)...)
}

// Error logs at error level, attaching err under the "error" field.
func (l *Logger) Error(msg string, err error, fields map[string]any) {
	zf := toZapFields(fields)
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	l.Zap.Error(msg, zf...)
}
