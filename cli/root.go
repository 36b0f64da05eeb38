// Package cli holds the bigm commands.
package cli

import (
	goflag "flag"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
	"q.log/bigm/config"
)

// version is overridden at link time with -X q.log/bigm/cli.version=...
var version = "dev"

type rootOptions struct {
	configFile string
	viper      *viper.Viper
	config     config.Config
}

// NewCommand returns the bigm root command.
func NewCommand() *cobra.Command {
	opts := &rootOptions{viper: viper.New()}

	cmd := &cobra.Command{
		Use:   "bigm",
		Short: "Solve linear programs with the Big-M simplex method",
		Long: heredoc.Doc(`
			bigm solves small dense linear programs

			    maximize (or minimize) c·x  subject to  A·x (<=, >=, =) b

			with the tableau simplex method. Artificial variables of >= and =
			rows carry a Big-M penalty scaled to the largest input coefficient.

			Solver settings are read from --config, BIGM_* environment variables
			and flags, in increasing order of precedence.
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := config.Load(opts.viper, cmd.Flags(), opts.configFile)
			if err != nil {
				return err
			}
			opts.config = c
			return nil
		},
	}

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "YAML file with solver settings")
	config.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newSolveCommand(opts),
		newConvertCommand(opts),
		newServeCommand(opts),
		newVersionCommand(),
	)
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the bigm version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(version)
		},
	}
}
