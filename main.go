package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/crillab/qsat/claims"
	"github.com/crillab/qsat/qbf"
	"github.com/crillab/qsat/solver"
)

func main() {
	debug.SetGCPercent(300)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		stop()
		os.Exit(1)
	}
}

type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:           "qsat",
		Short:         "Evaluates quantified boolean formulas by brute force",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !a.verbose {
				return nil
			}
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			logger, err := config.Build()
			if err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "sets verbose mode on")
	root.AddCommand(a.checkCmd(), a.claimsCmd())
	return root
}

func (a *app) checkCmd() *cobra.Command {
	var (
		assigns []string
		show    bool
	)
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Evaluates the formula in FILE",
		Long: `Evaluates the formula in FILE, written with the operators
= (equivalence), -> (implication), | (or), + (xor), & (and), ^ (not),
the constants 0 and 1, and the quantifiers "exists", "forall" and "unique":

	forall a: exists b: a + b

Free variables must be given a value with --assign.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.check(cmd.OutOrStdout(), args[0], assigns, show)
		},
	}
	cmd.Flags().StringArrayVarP(&assigns, "assign", "a", nil, "assigns a free variable, as name=true or name=false")
	cmd.Flags().BoolVar(&show, "print", false, "prints the parsed formula")
	return cmd
}

func (a *app) check(w io.Writer, path string, assigns []string, show bool) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "could not open %q", path)
	}
	defer f.Close()
	p, err := qbf.Parse(f)
	if err != nil {
		return errors.Wrapf(err, "could not parse formula in %q", path)
	}
	assign, err := bindings(p.Free, assigns)
	if err != nil {
		return err
	}
	if show {
		fmt.Fprintf(w, "c %s\n", p.Formula)
	}
	s := solver.New(solver.WithLogger(a.logger))
	res, err := s.SolveUnder(p.Formula, assign)
	if err != nil {
		var unbound *solver.UnboundVariableError
		if errors.As(err, &unbound) {
			if name, ok := nameOf(p.Free, unbound.Var); ok {
				return errors.Errorf("free variable %q has no value, use --assign %s=true or --assign %s=false", name, name, name)
			}
		}
		return errors.Wrapf(err, "could not evaluate formula in %q", path)
	}
	if a.verbose {
		fmt.Fprintf(w, "c nb nodes: %d\nc nb quantifiers: %d\nc nb assignments: %d\n", s.Stats.NbNodes, s.Stats.NbQuantifiers, s.Stats.NbAssignments)
	}
	fmt.Fprintln(w, verdict(res))
	return nil
}

// bindings parses the name=bool assignments of the free variables of a formula.
func bindings(free map[string]*qbf.Variable, assigns []string) (solver.Assignment, error) {
	res := make(solver.Assignment, len(assigns))
	for _, assign := range assigns {
		name, val, ok := strings.Cut(assign, "=")
		if !ok {
			return nil, errors.Errorf("invalid assignment %q, expected name=bool", assign)
		}
		v, ok := free[name]
		if !ok {
			return nil, errors.Errorf("no free variable named %q", name)
		}
		b, err := strconv.ParseBool(val)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value for %q", name)
		}
		res[v.ID()] = b
	}
	return res, nil
}

func nameOf(free map[string]*qbf.Variable, v *qbf.Variable) (string, bool) {
	for name, fv := range free {
		if fv == v {
			return name, true
		}
	}
	return "", false
}

func (a *app) claimsCmd() *cobra.Command {
	var (
		config string
		only   []string
		jobs   int
		show   bool
		list   bool
	)
	cmd := &cobra.Command{
		Use:   "claims",
		Short: "Evaluates the built-in claims and checks they have their expected value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if list {
				listClaims(w)
				return nil
			}
			cfg := &claims.Config{}
			if config != "" {
				var err error
				if cfg, err = claims.LoadConfig(config); err != nil {
					return errors.Wrapf(err, "could not load %q", config)
				}
			}
			if len(only) > 0 {
				sels, err := selections(only)
				if err != nil {
					return err
				}
				cfg.Claims = sels
			}
			if cmd.Flags().Changed("jobs") {
				cfg.Jobs = jobs
			}
			tasks, err := cfg.Tasks()
			if err != nil {
				return err
			}
			runner := claims.NewRunner(claims.WithJobs(cfg.Jobs), claims.WithLogger(a.logger))
			results, err := runner.Run(cmd.Context(), tasks)
			report(w, results, show, a.verbose)
			return errors.Wrap(err, "some claims failed")
		},
	}
	cmd.Flags().StringVarP(&config, "config", "c", "", "YAML file selecting the claims to evaluate")
	cmd.Flags().StringArrayVar(&only, "only", nil, "evaluates only the given claim, as name or name=width")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "number of claims evaluated concurrently (0 means one per CPU)")
	cmd.Flags().BoolVar(&show, "print", false, "prints the formula of each claim")
	cmd.Flags().BoolVar(&list, "list", false, "lists the available claims")
	return cmd
}

func selections(only []string) ([]claims.Selection, error) {
	sels := make([]claims.Selection, len(only))
	for i, o := range only {
		name, width, ok := strings.Cut(o, "=")
		sels[i].Name = name
		if !ok {
			continue
		}
		w, err := strconv.Atoi(width)
		if err != nil || w <= 0 {
			return nil, errors.Errorf("invalid width in %q", o)
		}
		sels[i].Width = w
	}
	return sels, nil
}

func listClaims(w io.Writer) {
	for _, c := range claims.Catalog() {
		fmt.Fprintf(w, "%-30s %-5s (width %d) %s\n", c.Name, verdict(c.Expected), c.Width, c.Description)
	}
}

func report(w io.Writer, results []claims.Result, show, verbose bool) {
	for _, res := range results {
		if res.Claim.Name == "" {
			// Not started because of a cancellation.
			continue
		}
		switch {
		case res.Err != nil:
			fmt.Fprintf(w, "%-30s %s\n", res.Claim.Name, color.YellowString("ERROR: %v", res.Err))
		case res.Holds != res.Claim.Expected:
			fmt.Fprintf(w, "%-30s %s, expected %s\n", res.Claim.Name, verdict(res.Holds), verdict(res.Claim.Expected))
		default:
			fmt.Fprintf(w, "%-30s %s\n", res.Claim.Name, verdict(res.Holds))
		}
		if verbose {
			fmt.Fprintf(w, "c width: %d, nb assignments: %d, duration: %s\n", res.Width, res.Stats.NbAssignments, res.Duration)
		}
		if show && res.Formula != nil {
			fmt.Fprintf(w, "c %s\n", res.Formula)
		}
	}
}

func verdict(b bool) string {
	if b {
		return color.GreenString("TRUE")
	}
	return color.RedString("FALSE")
}
