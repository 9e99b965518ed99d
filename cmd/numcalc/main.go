package main

import (
	"io"
	"log"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/shabbyrobe/go-bignum/internal/rpn"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const version = "v0.1"

func main() {
	log.SetFlags(0)
	log.SetPrefix("numcalc: ")
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	return makeNumcalcCommand(os.Stdin, os.Stdout, os.Stderr).Execute()
}

type options struct {
	config    string
	exprs     []string
	files     []string
	maxBits   uint64
	obase     int
	precision int
	debug     bool
}

func bindFlags(fs *pflag.FlagSet, opts *options) {
	fs.StringVar(&opts.config, "config", "", "TOML config file (max_bits, output_base, precision)")
	fs.StringArrayVarP(&opts.exprs, "expr", "e", nil, "evaluate expression (can pass multiple)")
	fs.StringArrayVarP(&opts.files, "file", "f", nil, "evaluate file, then read standard input")
	fs.Uint64Var(&opts.maxBits, "max-bits", 0, "largest shift, multiply or power result in bits, 0 for the default")
	fs.IntVar(&opts.obase, "obase", 10, "output base for integers, 2 to 36")
	fs.IntVar(&opts.precision, "precision", 0, "fractional digits printed for floats and fractions")
	fs.BoolVar(&opts.debug, "debug", false, "dump the final stack to stderr")
}

func makeNumcalcCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var opts options

	runCmdFunc := func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Flags(), &opts)
		if err != nil {
			return err
		}
		m, err := rpn.New(cfg, stdout, stderr)
		if err != nil {
			return err
		}
		if opts.debug {
			defer func() {
				spew.Fdump(stderr, m.Stack())
			}()
		}

		err = evalAll(m, stdin, opts, args)
		if errors.Is(err, rpn.ErrQuit) {
			return nil
		} else if err != nil {
			return err
		}
		if n := m.Failures(); n > 0 && (len(opts.exprs) > 0 || len(args) > 0) {
			return errors.Newf("%d commands failed", n)
		}
		return nil
	}

	cmd := &cobra.Command{
		Use:     "numcalc [file...]",
		Short:   "numcalc is an arbitrary-precision reverse-Polish calculator.",
		Version: version,
		Long: `numcalc is a dc-like reverse-Polish calculator over exact integers and
fractions, falling back to floats only when a result cannot be exact.

Typical usage:
    numcalc -e '2 100 ^ p'
        Print 2 to the power 100.

    numcalc -e '4 13 497 | p'
        Print 4**13 mod 497.

    numcalc -e '1/3 1/6 + p'
        Print 1/2.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCmdFunc,
	}
	bindFlags(cmd.Flags(), &opts)
	return cmd
}

// loadConfig builds the calculator config from the defaults, then the config
// file, then any flags set explicitly.
func loadConfig(fs *pflag.FlagSet, opts *options) (rpn.Config, error) {
	cfg := rpn.DefaultConfig()
	if opts.config != "" {
		if err := rpn.LoadConfig(opts.config, &cfg); err != nil {
			return cfg, err
		}
	}
	if fs.Changed("max-bits") {
		cfg.MaxBits = opts.maxBits
	}
	if fs.Changed("obase") {
		cfg.OutputBase = opts.obase
	}
	if fs.Changed("precision") {
		cfg.Precision = opts.precision
	}
	return cfg, cfg.Validate()
}

func evalAll(m *rpn.Machine, stdin io.Reader, opts options, args []string) error {
	for _, e := range opts.exprs {
		if err := m.EvalString(e); err != nil {
			return err
		}
	}
	if len(opts.exprs) > 0 && len(opts.files) == 0 && len(args) == 0 {
		return nil
	}

	for _, name := range append(opts.files, args...) {
		if err := evalFile(m, name); err != nil {
			return err
		}
	}
	if len(args) > 0 {
		return nil
	}
	return m.Eval(stdin)
}

func evalFile(m *rpn.Machine, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return m.Eval(f)
}
