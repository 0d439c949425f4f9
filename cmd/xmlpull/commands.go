package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jacoelho/xmlpull/pkg/xmlecho"
	"github.com/jacoelho/xmlpull/pkg/xmlpull"
)

func newEventsCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "events <document.xml|->",
		Short: "Print one line per parser event",
		Long: "Print one line per parser event: line:column of the token, depth,\n" +
			"event name and the quoted token value.",
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.report(args[0], env.events(args[0]))
		},
	}
}

func newEchoCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "echo <document.xml|->",
		Short: "Rewrite a document as normalized markup",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			var stats xmlecho.Stats
			err := env.withParser(path, func(p *xmlpull.Parser) error {
				var err error
				stats, err = xmlecho.Copy(env.stdout, p, xmlecho.Options{Trim: env.settings.trim})
				return err
			})
			if err == nil {
				env.logStats(path, stats)
			}
			return env.report(path, err)
		},
	}
}

func newStatsCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <document.xml|->...",
		Short: "Summarize one or more documents",
		Args:  minimumArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed bool
			for _, path := range args {
				var stats xmlecho.Stats
				err := env.withParser(path, func(p *xmlpull.Parser) error {
					var err error
					stats, err = xmlecho.Copy(io.Discard, p, xmlecho.Options{Trim: env.settings.trim})
					return err
				})
				if err != nil {
					if reportErr := env.report(path, err); !errors.Is(reportErr, errFailed) {
						return reportErr
					}
					failed = true
					continue
				}
				env.logStats(path, stats)
				if err := writef(env.stdout, "%s: charset=%s events=%d elements=%d depth=%d bytes=%d\n",
					path, stats.Charset, stats.Events, stats.Elements, stats.MaxDepth, stats.Bytes); err != nil {
					return err
				}
			}
			if failed {
				return errFailed
			}
			return nil
		},
	}
}

// events prints one line per event of path.
func (env *environment) events(path string) error {
	out := bufio.NewWriter(env.stdout)
	err := env.withParser(path, func(p *xmlpull.Parser) error {
		for {
			event, err := p.Next()
			if err != nil {
				return err
			}
			value, err := env.value(p)
			if err != nil {
				return err
			}
			pos := p.Position()
			if _, err := fmt.Fprintf(out, "%d:%d\t%d\t%s\t%q\n", pos.Line, pos.Column, p.Depth(), event, value); err != nil {
				return err
			}
			if event == xmlpull.EventEndDocument {
				return nil
			}
		}
	})
	if flushErr := out.Flush(); flushErr != nil && err == nil {
		err = fmt.Errorf("write events: %w", flushErr)
	}
	return err
}

func (env *environment) value(p *xmlpull.Parser) (string, error) {
	if env.settings.trim {
		return p.TrimmedString(env.settings.decode)
	}
	return p.String(env.settings.decode)
}

// withParser opens path and runs fn over a parser configured from the
// current settings.
func (env *environment) withParser(path string, fn func(*xmlpull.Parser) error) (err error) {
	in, err := openInput(path, env.stdin)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := in.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()
	env.log.Debugf("parsing %s (stream=%t)", path, env.settings.stream)

	opts := env.settings.parserOptions()
	if env.settings.stream {
		return fn(xmlpull.NewReader(in, opts...))
	}
	doc, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return fn(xmlpull.NewBytes(doc, opts...))
}

// report prints a document failure and converts it to errFailed.
func (env *environment) report(path string, err error) error {
	if err == nil {
		return nil
	}
	env.log.Errorf("%s: %s", path, err.Error())
	if writeErr := writef(env.stderr, "%s: %v\n", path, err); writeErr != nil {
		return writeErr
	}
	return errFailed
}

func (env *environment) logStats(path string, stats xmlecho.Stats) {
	env.log.Infof("%s: %d events, %d elements, max depth %d, %d bytes, charset %s",
		path, stats.Events, stats.Elements, stats.MaxDepth, stats.Bytes, stats.Charset)
}
