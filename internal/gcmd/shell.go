package gcmd

import (
	"github.com/gordian-engine/gtree/internal/gshell"
	"github.com/spf13/cobra"
)

func newShellCmd(rootCfg *rootConfig) *cobra.Command {
	var (
		degree  int
		name    string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive shell on an empty tree",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkDegree(degree); err != nil {
				return err
			}

			log, err := rootCfg.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			s := gshell.New(log, cmd.InOrStdin(), cmd.OutOrStdout(), gshell.Config{
				Degree:  degree,
				Name:    name,
				NoColor: noColor,
			})
			return s.Run(cmd.Context())
		},
	}

	addDegreeFlag(cmd, &degree)
	cmd.Flags().StringVar(&name, "name", "", "Session name for logs (random if empty)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored shell output")

	return cmd
}
