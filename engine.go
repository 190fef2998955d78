package linefold

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/signadot/linefold/debug"
	"github.com/signadot/linefold/encode"
	"github.com/signadot/linefold/ir"
	"github.com/signadot/linefold/libdiff"
	"github.com/signadot/linefold/mergeop"
)

// Signal tells the caller what to do after a line.
type Signal int

const (
	// Continue reading lines.
	Continue Signal = iota
	// Flushed means the document was serialized and emptied. The text is
	// available from Emitted.
	Flushed
	// End is Flushed followed by a request to stop reading.
	End
)

func (s Signal) String() string {
	switch s {
	case Continue:
		return "continue"
	case Flushed:
		return "flushed"
	case End:
		return "end"
	default:
		return fmt.Sprintf("<signal %d>", int(s))
	}
}

// Engine folds lines into a single document. An Engine is not safe for
// concurrent use.
type Engine struct {
	opts    Options
	doc     *ir.Node
	emitted string
}

// New returns an engine with an empty document, configured by
// DefaultOptions and then opts.
func New(opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Delimiter == "" {
		return nil, ErrEmptyDelimiter
	}
	if o.Log == nil {
		o.Log = slog.New(slog.DiscardHandler)
	}
	return &Engine{opts: o, doc: ir.Mapping()}, nil
}

// Options returns the options the engine was built with.
func (e *Engine) Options() Options {
	return e.opts
}

// AddLine processes one input line. Lines without the sentinel prefix, and
// lines with it but no delimiter, are ignored.
//
// A line whose path starts with CommandPrefix is a command: clear, flush or
// end. Any other line is merged into the document; on error the document
// keeps every change made before the failing key.
func (e *Engine) AddLine(raw string) (Signal, error) {
	e.emitted = ""
	if debug.Line() {
		debug.Logf("line %q\n", raw)
	}
	if e.opts.Verbosity > 0 {
		e.opts.Log.Debug("add line", "line", raw)
	}
	body, ok := strings.CutPrefix(raw, e.opts.Sentinel)
	if !ok {
		return Continue, nil
	}
	path, value, ok := strings.Cut(body, e.opts.Delimiter)
	if !ok {
		return Continue, nil
	}
	value = strings.TrimSpace(value)
	if strings.HasPrefix(path, CommandPrefix) {
		return e.command(value)
	}
	single, err := ir.FromPath(ir.SplitPath(path), ir.InferScalar(value))
	if err != nil {
		return Continue, err
	}
	if err := e.merge(single); err != nil {
		return Continue, fmt.Errorf("line %q: %w", strings.TrimRight(raw, "\r\n"), err)
	}
	return Continue, nil
}

func (e *Engine) merge(single *ir.Node) error {
	var before *ir.Node
	showDiff := e.opts.Verbosity > 1 || debug.Diff()
	if showDiff {
		before = e.doc.Clone()
	}
	opts := []mergeop.MergeOpt{mergeop.MergePolicy(e.opts.Policy)}
	if e.opts.Verbosity > 0 {
		opts = append(opts, mergeop.OnCollision(e.logCollision))
	}
	err := mergeop.MergeWith(e.doc, single, opts...)
	if showDiff {
		diff := libdiff.Documents(before, e.doc)
		if debug.Diff() {
			debug.Logf("diff\n%s", diff)
		}
		if e.opts.Verbosity > 1 {
			e.opts.Log.Debug("merged", "diff", diff)
		}
	}
	return err
}

func (e *Engine) logCollision(c *mergeop.Collision) {
	e.opts.Log.Debug("key already exists",
		"path", c.Path,
		"value", encode.MustString(c.Existing),
		"insert", encode.MustString(c.Incoming))
}

func (e *Engine) command(cmd string) (Signal, error) {
	if debug.Command() {
		debug.Logf("command %q\n", cmd)
	}
	if e.opts.Verbosity > 0 {
		e.opts.Log.Debug("command", "command", cmd)
	}
	switch cmd {
	case "clear":
		e.Reset()
		return Continue, nil
	case "flush":
		e.emitted = e.DocumentText()
		e.Reset()
		return Flushed, nil
	case "end":
		e.emitted = e.DocumentText()
		e.Reset()
		return End, nil
	default:
		return Continue, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

// Emitted returns the text serialized by the last line if it returned
// Flushed or End, and "" otherwise.
func (e *Engine) Emitted() string {
	return e.emitted
}

// DocumentText serializes the current document with the configured encoding.
func (e *Engine) DocumentText() string {
	return encode.MustString(e.doc, e.opts.Encoding...)
}

// Document returns the root mapping. It is owned by the engine.
func (e *Engine) Document() *ir.Node {
	return e.doc
}

// Reset empties the document.
func (e *Engine) Reset() {
	e.doc.Clear()
}
