// Command linprog solves linear programs defined in YAML or MPS files and
// prints the result. All formatting lives here; the solver packages emit
// structured values only.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/letruongzzio/linprog/lp"
	"github.com/letruongzzio/linprog/mps"
	"github.com/letruongzzio/linprog/probfile"
	"github.com/letruongzzio/linprog/simplex"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "linprog",
		Short:         "Exact linear-programming solvers: simplex, Bland, two-phase, geometric",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newSolveCommand())

	return root
}

type solveFlags struct {
	method   string
	fromMPS  bool
	showPath bool
	trace    bool
	maxIter  int
}

func newSolveCommand() *cobra.Command {
	flags := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve the problem defined in FILE (YAML by default, MPS with --mps)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args[0], flags)
		},
	}
	cmd.Flags().StringVar(&flags.method, "method", "", "override the method (simplex, bland, two_phase, geometric)")
	cmd.Flags().BoolVar(&flags.fromMPS, "mps", false, "read FILE as MPS instead of YAML")
	cmd.Flags().BoolVar(&flags.showPath, "path", false, "print the sequence of basic solutions traversed")
	cmd.Flags().BoolVar(&flags.trace, "trace", false, "print diagnostic events (degenerate pivots, rule fallbacks)")
	cmd.Flags().IntVar(&flags.maxIter, "max-iterations", 0, "pivot cap (0 uses the solver default)")

	return cmd
}

func runSolve(cmd *cobra.Command, path string, flags *solveFlags) error {
	spec, err := loadSpec(path, flags)
	if err != nil {
		return err
	}

	opts := []simplex.Option{simplex.WithMethod(spec.Method)}
	if spec.MaxIterations > 0 {
		opts = append(opts, simplex.WithMaxIterations(spec.MaxIterations))
	}
	if flags.showPath {
		opts = append(opts, simplex.WithPath())
	}
	if flags.trace {
		out := cmd.OutOrStdout()
		opts = append(opts, simplex.WithTrace(func(e lp.Event) {
			fmt.Fprintf(out, "event: %s (iteration %d) %s\n", e.Kind, e.Iteration, e.Detail)
		}))
	}

	sol, err := simplex.Solve(spec.Problem, opts...)
	if err != nil {
		return err
	}
	printSolution(cmd, sol, flags.showPath)

	return nil
}

// loadSpec reads the problem definition, applying command-line overrides on
// top of what the file declares.
func loadSpec(path string, flags *solveFlags) (probfile.Spec, error) {
	var spec probfile.Spec
	if flags.fromMPS {
		p, err := mps.Read(path)
		if err != nil {
			return probfile.Spec{}, err
		}
		spec = probfile.Spec{Problem: p, Method: lp.Simplex}
	} else {
		var err error
		if spec, err = probfile.Load(path); err != nil {
			return probfile.Spec{}, err
		}
	}

	if flags.method != "" {
		switch flags.method {
		case "simplex":
			spec.Method = lp.Simplex
		case "bland":
			spec.Method = lp.Bland
		case "two_phase":
			spec.Method = lp.TwoPhase
		case "geometric":
			spec.Method = lp.Geometric
		default:
			return probfile.Spec{}, fmt.Errorf("unknown method %q", flags.method)
		}
	}
	if flags.maxIter > 0 {
		spec.MaxIterations = flags.maxIter
	}

	return spec, nil
}

func printSolution(cmd *cobra.Command, sol lp.Solution, showPath bool) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "status:     %s\n", sol.Status)
	if sol.Status == lp.StatusOptimal {
		fmt.Fprintf(out, "objective:  %g\n", sol.Objective)
		fmt.Fprintf(out, "x:          %v\n", sol.X)
	}
	fmt.Fprintf(out, "iterations: %d", sol.Iterations)
	if sol.Phase1Iterations > 0 {
		fmt.Fprintf(out, " (phase 1: %d)", sol.Phase1Iterations)
	}
	fmt.Fprintln(out)

	if showPath {
		for i, v := range sol.Path {
			fmt.Fprintf(out, "  vertex %d: %v  objective %g\n", i, v.X, v.Objective)
		}
	}
}
