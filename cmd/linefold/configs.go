package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/linefold"
	"github.com/signadot/linefold/encode"
	"github.com/signadot/linefold/format"
	"github.com/signadot/linefold/mergeop"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Delimiter string `cli:"name=d aliases=delim desc='path/value delimiter' default=:"`
	Sentinel  string `cli:"name=s aliases=sentinel desc='prefix of lines to read' default=;"`
	Warnings  bool   `cli:"name=w aliases=warnings-as-error desc='stop at the first line error'"`
	Tee       bool   `cli:"name=t aliases=tee desc='copy input to stderr'"`
	Color     bool   `cli:"name=color desc='encode with color'"`
	Indent    int    `cli:"name=indent desc='indent output by this many spaces'"`
	Gops      bool   `cli:"name=gops desc='start a gops diagnostics agent'"`

	Policy    mergeop.Policy
	OutFormat format.Format
	Verbosity int

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.OutFormat = f
		return f, nil
	})
}

func (cfg *MainConfig) policyFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		p, err := mergeop.ParsePolicy(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Policy = p
		return p, nil
	})
}

// countOpt is a flag without a value which counts its occurrences into n.
//
// The cli parser does not call Parse for options without a value, so
// parseArgs takes the occurrences out of the arguments before parsing.
type countOpt struct {
	n *int
}

func (c countOpt) Parse(_ *cli.Context, v string) (any, error) {
	i, err := strconv.Atoi(v)
	if err != nil || i < 0 {
		return nil, fmt.Errorf("%w: bad count %q", cli.ErrUsage, v)
	}
	*c.n += i
	return *c.n, nil
}

func (c countOpt) ArgRequired() bool { return false }
func (c countOpt) String() string    { return "(count)" }

// countFlags removes the occurrences of the count option opt from args:
// -v, --v, stacked -vvv, the aliases, and -v=N which adds N. Values of
// options which take one and everything after "--" are left alone.
func countFlags(cc *cli.Context, opts map[string]*cli.Opt, opt *cli.Opt, args []string) ([]string, error) {
	names := append([]string{opt.Name}, opt.Aliases...)
	res := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			res = append(res, args[i:]...)
			break
		}
		body, ok := strings.CutPrefix(arg, "-")
		if !ok || body == "" {
			res = append(res, arg)
			continue
		}
		body = strings.TrimPrefix(body, "-")
		name, val, hasVal := strings.Cut(body, "=")
		switch {
		case slices.Contains(names, name) && hasVal:
			if _, err := opt.Type.Parse(cc, val); err != nil {
				return nil, err
			}
		case slices.Contains(names, name):
			if _, err := opt.Type.Parse(cc, "1"); err != nil {
				return nil, err
			}
		case !hasVal && len(opt.Name) == 1 && strings.Trim(name, opt.Name) == "":
			if _, err := opt.Type.Parse(cc, strconv.Itoa(len(name))); err != nil {
				return nil, err
			}
		default:
			res = append(res, arg)
			if o := opts[name]; o != nil && !hasVal && o.Type != cli.Bool && o.Type.ArgRequired() && i+1 < len(args) {
				i++
				res = append(res, args[i])
			}
		}
	}
	return res, nil
}

// parseArgs parses the command line into cfg.
func (cfg *MainConfig) parseArgs(cc *cli.Context, args []string) ([]string, error) {
	opts := cfg.Main.AllOpts()
	if v := opts["v"]; v != nil {
		var err error
		args, err = countFlags(cc, opts, v, args)
		if err != nil {
			return nil, err
		}
	}
	return cfg.Main.Parse(cc, args)
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.OutFormat),
		encode.EncodeIndent(cfg.Indent),
	}
	if !cfg.OutFormat.IsJSON() {
		return res
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return res
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) engineOpts(out, errOut io.Writer) []linefold.Option {
	return []linefold.Option{
		linefold.WithVerbosity(cfg.Verbosity),
		linefold.WithPolicy(cfg.Policy),
		linefold.WithDelimiter(cfg.Delimiter),
		linefold.WithSentinel(cfg.Sentinel),
		linefold.WithEncoding(cfg.encOpts(out)...),
		linefold.WithLogger(newLog(errOut, cfg.Verbosity)),
	}
}
