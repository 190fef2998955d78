package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Line    bool
	Merge   bool
	Command bool
	Diff    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Line = boolEnv("LINEFOLD_DEBUG_LINE")
	d.Merge = boolEnv("LINEFOLD_DEBUG_MERGE")
	d.Command = boolEnv("LINEFOLD_DEBUG_COMMAND")
	d.Diff = boolEnv("LINEFOLD_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Line() bool {
	return d.Line
}
func Merge() bool {
	return d.Merge
}
func Command() bool {
	return d.Command
}
func Diff() bool {
	return d.Diff
}
