package gcmd

import (
	"github.com/gordian-engine/gtree/gkary"
	"github.com/spf13/cobra"
)

func newRenderCmd(rootCfg *rootConfig) *cobra.Command {
	var (
		degree int
		order  string
	)

	cmd := &cobra.Command{
		Use:   "render [flags] VALUES...",
		Short: "Insert values into a tree and print its traversal",
		Long: `Insert the integer values, in order, into an empty tree
and print the tree as START->v0->v1->...->END.

With --order=both, the breadth-first line is printed before the depth-first line.`,

		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := rootCfg.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			var orders []gkary.Order
			if order == "both" {
				orders = []gkary.Order{gkary.BreadthFirstOrder, gkary.DepthFirstOrder}
			} else {
				o, err := gkary.ParseOrder(order)
				if err != nil {
					return err
				}
				orders = []gkary.Order{o}
			}

			t, err := buildTree(degree, args)
			if err != nil {
				return err
			}
			log.Debug("Built tree", "degree", degree, "size", t.Size(), "height", t.Height())

			for _, o := range orders {
				if err := t.Render(cmd.OutOrStdout(), o); err != nil {
					return err
				}
			}
			return nil
		},
	}

	addDegreeFlag(cmd, &degree)
	cmd.Flags().StringVar(&order, "order", "both", "Traversal order (bfs, dfs, both)")

	return cmd
}
