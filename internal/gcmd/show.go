package gcmd

import (
	"fmt"
	"io"

	"github.com/gordian-engine/gtree/internal/gshell"
	"github.com/spf13/cobra"
)

func newShowCmd(rootCfg *rootConfig) *cobra.Command {
	var degree int

	cmd := &cobra.Command{
		Use:   "show [flags] VALUES...",
		Short: "Insert values into a tree and draw its shape",

		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := rootCfg.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			t, err := buildTree(degree, args)
			if err != nil {
				return err
			}
			if err := t.Validate(); err != nil {
				// Should be impossible for a freshly built tree.
				log.Error("Tree failed validation", "err", err)
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := io.WriteString(out, gshell.Shape(t)); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "size=%d height=%d\n", t.Size(), t.Height())
			return err
		},
	}

	addDegreeFlag(cmd, &degree)

	return cmd
}
