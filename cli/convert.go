package cli

import (
	"github.com/spf13/cobra"
	"q.log/bigm/instance"
)

func newConvertCommand(root *rootOptions) *cobra.Command {
	o := &solveOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Print the problem stored in FILE as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := o.read(args[0])
			if err != nil {
				return err
			}
			return instance.WriteYAML(cmd.OutOrStdout(), p)
		},
	}
	cmd.Flags().StringVar(&o.format, "format", "", "input format: text, yaml or mps")
	cmd.Flags().BoolVar(&o.fixedMPS, "fixed", false, "read MPS files in the fixed-column dialect")
	return cmd
}
