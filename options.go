package linefold

import (
	"log/slog"

	"github.com/signadot/linefold/encode"
	"github.com/signadot/linefold/mergeop"
)

// CommandPrefix marks a line as a command to the engine rather than data.
const CommandPrefix = "stdout.loop"

type Options struct {
	// Verbosity 1 logs each line and key collision at debug level, 2 adds
	// a diff of the document around each merge.
	Verbosity int
	Policy    mergeop.Policy
	// Delimiter separates the path from the value. Only its first
	// occurrence counts.
	Delimiter string
	// Sentinel prefixes every line the engine reads.
	Sentinel string
	// Encoding configures DocumentText and emitted output.
	Encoding []encode.EncodeOption
	Log      *slog.Logger
}

type Option func(*Options)

func DefaultOptions() Options {
	return Options{
		Policy:    mergeop.GenerateError,
		Delimiter: ":",
		Sentinel:  ";",
		Log:       slog.New(slog.DiscardHandler),
	}
}

func WithVerbosity(v int) Option {
	return func(o *Options) { o.Verbosity = v }
}

func WithPolicy(p mergeop.Policy) Option {
	return func(o *Options) { o.Policy = p }
}

func WithDelimiter(d string) Option {
	return func(o *Options) { o.Delimiter = d }
}

func WithSentinel(s string) Option {
	return func(o *Options) { o.Sentinel = s }
}

// WithEncoding appends encoder options used whenever the document is
// serialized.
func WithEncoding(opts ...encode.EncodeOption) Option {
	return func(o *Options) { o.Encoding = append(o.Encoding, opts...) }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Log = l }
}
