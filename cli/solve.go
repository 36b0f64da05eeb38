package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
	"q.log/bigm/instance"
	"q.log/bigm/instance/mps"
	"q.log/bigm/model"
	"q.log/bigm/simplex"
)

type solveOptions struct {
	*rootOptions

	format      string
	fixedMPS    bool
	showTableau bool
}

func newSolveCommand(root *rootOptions) *cobra.Command {
	o := &solveOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve the linear program stored in FILE",
		Long: heredoc.Doc(`
			Solve the linear program stored in FILE and print the solution, the
			objective value and the status of the problem.

			The format is detected from the extension (.yaml/.yml, .mps, anything
			else is read as "key: value" text) unless --format is given.
		`),
		Example: heredoc.Doc(`
			# maximize 3x1 + 5x2 from a text file
			bigm solve lp.txt

			# print the initial tableau and allow at most 100 pivots
			bigm solve --show-tableau --max-iterations 100 lp.yaml
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.OutOrStdout(), args[0])
		},
	}
	cmd.Flags().StringVar(&o.format, "format", "", "input format: text, yaml or mps")
	cmd.Flags().BoolVar(&o.fixedMPS, "fixed", false, "read MPS files in the fixed-column dialect")
	cmd.Flags().BoolVar(&o.showTableau, "show-tableau", false, "print the problem and the initial tableau before solving")
	return cmd
}

func (o *solveOptions) read(filename string) (*model.Problem, error) {
	format := instance.DetectFormat(filename)
	if o.format != "" {
		format = instance.Format(strings.ToLower(o.format))
	}
	if format == instance.FormatMPS {
		r := mps.NewReader(filename)
		if o.fixedMPS {
			r = r.Fixed()
		}
		return r.ConstructModelFromFile()
	}
	return instance.NewReader(filename).WithFormat(format).ConstructModelFromFile()
}

func (o *solveOptions) run(out io.Writer, filename string) error {
	p, err := o.read(filename)
	if err != nil {
		return err
	}
	opts := o.config.Options()

	if o.showTableau {
		cs, err := simplex.Standardize(p, opts...)
		if err != nil {
			return err
		}
		tab, err := simplex.NewTableau(cs)
		if err != nil {
			return err
		}
		p.Print(out)
		fmt.Fprintf(out, "M = %g\n", cs.Penalty)
		tab.Print(out)
		fmt.Fprintln(out)
	}

	sol, err := simplex.Solve(p, opts...)
	if err != nil {
		return errors.Wrap(err, filename)
	}
	klog.V(2).Infof("%s: %s in %d pivots", filename, sol.Status, sol.Iterations)

	if sol.HasSolution() {
		fmt.Fprintf(out, "Solution: %s\n", formatValues(sol.Values()))
		fmt.Fprintf(out, "Objective value: %s\n", formatValue(sol.Objective))
	}
	fmt.Fprintln(out, sol.Status.Message())
	return nil
}

func formatValue(v float64) string {
	if v == 0 {
		// avoid printing -0
		v = 0
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func formatValues(vs []float64) string {
	s := make([]string, len(vs))
	for i, v := range vs {
		s[i] = formatValue(v)
	}
	return "[" + strings.Join(s, ", ") + "]"
}
