package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

// usageError marks failures caused by how the command was invoked.
type usageError struct {
	err error
}

func (e usageError) Error() string {
	return e.err.Error()
}

func (e usageError) Unwrap() error {
	return e.err
}

// errFailed reports that a command already printed its failures.
var errFailed = errors.New("one or more documents failed")

type environment struct {
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	log      commonlog.Logger
	settings settings
	profiler *profiler
}

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	env := &environment{
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		log:      commonlog.GetLogger("xmlpull"),
		settings: defaultSettings(),
	}
	root := newRootCmd(env)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if env.profiler != nil {
		if stopErr := env.profiler.Stop(); stopErr != nil {
			_ = writef(stderr, "error: %v\n", stopErr)
		}
	}
	var usage usageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &usage):
		_ = writef(stderr, "error: %v\n%s", err, root.UsageString())
		return 2
	case errors.Is(err, errFailed):
		return 1
	default:
		_ = writef(stderr, "error: %v\n", err)
		return 1
	}
}

func newRootCmd(env *environment) *cobra.Command {
	s := &env.settings
	root := &cobra.Command{
		Use:           "xmlpull",
		Short:         "Tokenize XML documents with the xmlpull parser",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.setup(cmd)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	flags := root.PersistentFlags()
	flags.StringVar(&s.configPath, "config", "", "YAML profile with default settings")
	flags.StringVar(&s.charset, "charset", "", "force the document charset, ignoring the declaration")
	flags.StringVar(&s.defaultCharset, "default-charset", "", "charset used when the document declares none")
	flags.IntVar(&s.bufferSize, "buffer-size", 0, "initial streaming window size in bytes")
	flags.BoolVar(&s.stream, "stream", false, "stream input instead of reading it into memory")
	flags.BoolVar(&s.decode, "decode", true, "decode entity and character references")
	flags.BoolVar(&s.trim, "trim", false, "trim whitespace around text values")
	flags.CountVarP(&s.verbosity, "verbose", "v", "increase log verbosity")
	flags.StringVar(&s.cpuProfile, "cpuprofile", "", "write CPU profile to file")
	flags.StringVar(&s.memProfile, "memprofile", "", "write memory profile to file")

	root.AddCommand(newEventsCmd(env))
	root.AddCommand(newEchoCmd(env))
	root.AddCommand(newStatsCmd(env))
	return root
}

// setup merges the profile into the flags, then starts logging and
// profiling.
func (env *environment) setup(cmd *cobra.Command) error {
	s := &env.settings
	if s.configPath != "" {
		p, err := loadProfile(s.configPath)
		if err != nil {
			return err
		}
		s.apply(p, func(name string) bool {
			f := cmd.Flag(name)
			return f != nil && f.Changed
		})
	}
	commonlog.Configure(s.verbosity, nil)

	p, err := startProfiler(s.cpuProfile, s.memProfile)
	if err != nil {
		return err
	}
	env.profiler = p
	return nil
}

// exactArgs is cobra.ExactArgs reported as a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

func minimumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
