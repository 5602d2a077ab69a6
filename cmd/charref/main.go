package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jacoelho/charref"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// usageError marks failures caused by how the command was invoked.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Cause() error { return e.err }

func runWithArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := &app{stdin: stdin, stdout: stdout, stderr: stderr, log: zap.NewNop()}
	root := app.rootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteC()
	var uerr usageError
	if err != nil && cmd == root && !errors.As(err, &uerr) {
		// root only dispatches; its failures are unknown commands.
		err = usageError{err: err}
	}
	_ = app.log.Sync()
	if app.stopProfiles != nil {
		if stopErr := app.stopProfiles(); stopErr != nil {
			_ = writef(stderr, "error: %v\n", stopErr)
		}
	}
	if err == nil {
		return 0
	}
	if writeErr := writef(stderr, "error: %v\n", err); writeErr != nil {
		return 1
	}
	if errors.As(err, &uerr) {
		return 2
	}
	return 1
}

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    *zap.Logger

	configPath     string
	verbose        bool
	cpuProfilePath string
	memProfilePath string
	stopProfiles   func() error

	cfg   config
	flags config
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "charref",
		Short:         "Encode and decode XML and HTML character references",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log to stderr")
	pf.StringVar(&a.cpuProfilePath, "cpuprofile", "", "write CPU profile to file")
	pf.StringVar(&a.memProfilePath, "memprofile", "", "write memory profile to file")

	root.AddCommand(a.encodeCommand(), a.decodeCommand(), a.entityCommand())
	return root
}

func (a *app) encodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [file...]",
		Short: "Replace unsafe characters with character references",
		RunE: func(_ *cobra.Command, files []string) error {
			in, err := readInputs(a.stdin, files)
			if err != nil {
				return err
			}
			opts := charref.EncodeOptions{Mode: a.cfg.Mode, Level: a.cfg.Level, Numeric: a.cfg.Numeric}
			out := charref.Encode(string(in), opts)
			a.log.Debug("encoded",
				zap.Stringer("mode", opts.Mode),
				zap.Stringer("level", opts.Level),
				zap.Stringer("numeric", opts.Numeric),
				zap.String("in", humanize.Bytes(uint64(len(in)))),
				zap.String("out", humanize.Bytes(uint64(len(out)))),
			)
			return errors.Wrap(writeString(a.stdout, out), "write output")
		},
	}
	fs := cmd.Flags()
	fs.Var(textFlag(&a.flags.Mode, "mode"), "mode", "characters to encode: specialChars, nonAscii, nonAsciiPrintable, extensive")
	fs.Var(textFlag(&a.flags.Level, "level"), "level", "reference level: xml, html4, html5, all")
	fs.Var(textFlag(&a.flags.Numeric, "numeric"), "numeric", "numeric reference form: decimal, hexadecimal")
	return cmd
}

func (a *app) decodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [file...]",
		Short: "Replace character references with the characters they stand for",
		RunE: func(_ *cobra.Command, files []string) error {
			in, err := readInputs(a.stdin, files)
			if err != nil {
				return err
			}
			opts := charref.DecodeOptions{Level: a.cfg.Level, Scope: a.cfg.Scope}
			out := charref.Decode(string(in), opts)
			a.log.Debug("decoded",
				zap.Stringer("level", opts.Level),
				zap.Stringer("scope", opts.Scope),
				zap.String("in", humanize.Bytes(uint64(len(in)))),
				zap.String("out", humanize.Bytes(uint64(len(out)))),
			)
			return errors.Wrap(writeString(a.stdout, out), "write output")
		},
	}
	fs := cmd.Flags()
	fs.Var(textFlag(&a.flags.Level, "level"), "level", "reference level: xml, html4, html5, all")
	fs.Var(textFlag(&a.flags.Scope, "scope"), "scope", "decode scope: body, strict, attribute (default strict for xml, body otherwise)")
	return cmd
}

func (a *app) entityCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entity reference...",
		Short: "Decode isolated references, one result per line",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageError{err: errors.New("at least one reference is required")}
			}
			return nil
		},
		RunE: func(_ *cobra.Command, refs []string) error {
			opts := charref.EntityOptions{Level: a.cfg.Level, Scope: a.cfg.Scope}
			for _, ref := range refs {
				value := charref.DecodeEntity(ref, opts)
				a.log.Debug("entity", zap.String("ref", ref), zap.Bool("resolved", value != ref))
				if err := writeln(a.stdout, value); err != nil {
					return errors.Wrap(err, "write output")
				}
			}
			return nil
		},
	}
	fs := cmd.Flags()
	fs.Var(textFlag(&a.flags.Level, "level"), "level", "reference level: xml, html4, html5, all")
	fs.Var(textFlag(&a.flags.Scope, "scope"), "scope", "leniency rules to apply: body, strict, attribute")
	return cmd
}

// setup resolves configuration, the logger and profiling before a
// subcommand runs.
func (a *app) setup(cmd *cobra.Command) error {
	if a.verbose {
		a.log = newLogger(a.stderr)
	}
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	cfg.override(a.flags, cmd.Flags().Changed)
	a.cfg = cfg
	a.log.Debug("configuration",
		zap.String("file", a.configPath),
		zap.Stringer("mode", cfg.Mode),
		zap.Stringer("level", cfg.Level),
		zap.Stringer("numeric", cfg.Numeric),
		zap.Stringer("scope", cfg.Scope),
	)

	if a.cpuProfilePath != "" {
		stop, err := startCPUProfile(a.cpuProfilePath)
		if err != nil {
			return err
		}
		a.stopProfiles = stop
	}
	if a.memProfilePath != "" {
		stopCPU := a.stopProfiles
		a.stopProfiles = func() error {
			if stopCPU != nil {
				if err := stopCPU(); err != nil {
					return err
				}
			}
			return writeMemProfile(a.memProfilePath)
		}
	}
	return nil
}

func readInputs(stdin io.Reader, files []string) ([]byte, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	var data []byte
	for _, name := range files {
		var (
			b   []byte
			err error
		)
		if name == "-" {
			b, err = io.ReadAll(stdin)
		} else {
			b, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", name)
		}
		data = append(data, b...)
	}
	return data, nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}

func startCPUProfile(path string) (func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "create cpu profile %s", path)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, "start cpu profile %s", path)
	}
	return func() error {
		pprof.StopCPUProfile()
		return errors.Wrapf(f.Close(), "close cpu profile %s", path)
	}, nil
}

func writeMemProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create mem profile %s", path)
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "write mem profile %s", path)
	}
	return errors.Wrapf(f.Close(), "close mem profile %s", path)
}
