package libdiff

import (
	"strings"

	"github.com/signadot/linefold/encode"
	"github.com/signadot/linefold/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

type Line struct {
	Op   Op
	Text string
}

// Lines computes a line oriented diff from one text to another.
func Lines(from, to string) []Line {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	res := []Line{}
	for i := range diffs {
		diff := &diffs[i]
		var op Op
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffEqual:
			op = Equal
		}
		text := strings.TrimSuffix(diff.Text, "\n")
		for _, ln := range strings.Split(text, "\n") {
			res = append(res, Line{Op: op, Text: ln})
		}
	}
	return res
}

// Text renders a line diff with "+ ", "- " and "  " prefixes. Unchanged
// texts give "".
func Text(from, to string) string {
	if from == to {
		return ""
	}
	buf := strings.Builder{}
	for _, ln := range Lines(from, to) {
		buf.WriteString(ln.Op.String())
		buf.WriteString(" ")
		buf.WriteString(ln.Text)
		buf.WriteString("\n")
	}
	return buf.String()
}

// Documents diffs the indented JSON encodings of two documents.
func Documents(from, to *ir.Node) string {
	return Text(
		encode.MustString(from, encode.EncodeIndent(2))+"\n",
		encode.MustString(to, encode.EncodeIndent(2))+"\n")
}
