package logger

import "errors"

// Level is the minimum severity a logger writes.
type Level string

// Levels accepted in Config.Level.
const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

// Encodings accepted in Config.Encoding.
const (
	ConsoleEncoding = "console"
	JSONEncoding    = "json"
)

// Defaults applied by New for zero-value fields.
const (
	DefaultLevel    = InfoLevel
	DefaultEncoding = ConsoleEncoding
)

// DefaultOutputPaths keeps log lines off stdout, where the found path is printed.
var DefaultOutputPaths = []string{"stderr"}

var (
	// ErrInvalidLevel is returned for a level zap does not know.
	ErrInvalidLevel = errors.New("invalid logging level")
	// ErrInvalidEncoding is returned for an encoding other than console or json.
	ErrInvalidEncoding = errors.New("invalid log encoding format")
	// ErrInvalidOutputPath is returned when a sink cannot be opened.
	ErrInvalidOutputPath = errors.New("invalid output path")
)

// Config holds the logger settings.
type Config struct {
	Level       Level    `mapstructure:"level"        yaml:"level"`
	Encoding    string   `mapstructure:"encoding"     yaml:"encoding"`
	Development bool     `mapstructure:"development"  yaml:"development"`
	OutputPaths []string `mapstructure:"output_paths" yaml:"output_paths"`
}
