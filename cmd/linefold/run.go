package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
	"github.com/signadot/linefold"
)

func linefoldMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.parseArgs(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: unexpected arguments %v", cli.ErrUsage, args)
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			warn(cc.Err, fmt.Errorf("gops agent failed: %w", err))
		}
		defer agent.Close()
	}
	return run(cfg, cc.In, cc.Out, cc.Err)
}

// run feeds in to an engine line by line. Emitted documents go to out and
// diagnostics to errOut.
func run(cfg *MainConfig, in io.Reader, out, errOut io.Writer) error {
	eng, err := linefold.New(cfg.engineOpts(out, errOut)...)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	br := bufio.NewReader(in)
	for {
		line, rErr := br.ReadString('\n')
		if rErr != nil && !errors.Is(rErr, io.EOF) {
			return rErr
		}
		if line != "" {
			if cfg.Tee {
				if _, err := io.WriteString(errOut, line); err != nil {
					return err
				}
			}
			sig, err := eng.AddLine(line)
			if err != nil {
				if cfg.Warnings {
					return err
				}
				warn(errOut, err)
			}
			switch sig {
			case linefold.Flushed:
				if _, err := fmt.Fprintln(out, eng.Emitted()); err != nil {
					return err
				}
			case linefold.End:
				_, err := fmt.Fprintln(out, eng.Emitted())
				return err
			}
		}
		if rErr != nil {
			break
		}
	}
	_, err = fmt.Fprintln(out, eng.DocumentText())
	return err
}
