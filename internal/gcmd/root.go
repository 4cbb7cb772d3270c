// Package gcmd contains the cobra command tree for the gtree binary.
package gcmd

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/gordian-engine/gtree/gkary"
	"github.com/spf13/cobra"
)

type rootConfig struct {
	logLevel string
}

// NewRootCmd returns the root gtree command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var cfg rootConfig

	root := &cobra.Command{
		Use:   "gtree",
		Short: "Build and inspect bounded-degree, level-filled trees",

		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&cfg.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newRenderCmd(&cfg),
		newShowCmd(&cfg),
		newShellCmd(&cfg),
	)

	return root
}

// logger returns a text logger writing to w at the configured level.
func (c *rootConfig) logger(w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", c.logLevel, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func addDegreeFlag(cmd *cobra.Command, degree *int) {
	cmd.Flags().IntVarP(degree, "degree", "k", 2, "Maximum number of children per node")
}

func checkDegree(degree int) error {
	if degree < 1 {
		return fmt.Errorf("--degree must be at least 1: got %d", degree)
	}
	return nil
}

// buildTree inserts the integer arguments, in order, into a new tree.
func buildTree(degree int, args []string) (*gkary.Tree[int], error) {
	if err := checkDegree(degree); err != nil {
		return nil, err
	}

	t := gkary.New[int](degree)
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", a, err)
		}
		t.Insert(v)
	}
	return t, nil
}
