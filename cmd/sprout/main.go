// Package main provides the sprout CLI: a runner for the tensor and
// autodiff lessons.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sprout-ml/sprout/internal/lesson"
)

const version = "v0.1.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sprout",
		Short:         "Learn tensors and autodiff in Go, one lesson at a time",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newListCommand(),
		newRunCommand(),
		newVersionCommand(),
	)
	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available lessons",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, l := range lesson.All() {
				fmt.Fprintf(tw, "%s\t%s\n", l.Slug, l.Summary)
			}
			return tw.Flush()
		},
	}
}

func newRunCommand() *cobra.Command {
	opts := lesson.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "run <lesson>",
		Short: "Run one lesson and print its walkthrough",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lesson.Find(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "=== %s: %s ===\n", l.Slug, l.Title)
			return l.Run(out, opts)
		},
	}

	cmd.Flags().Int64Var(&opts.Seed, "seed", opts.Seed, "random seed for reproducible runs")
	cmd.Flags().IntVar(&opts.Steps, "steps", opts.Steps, "training iterations (gradient-descent lesson)")
	cmd.Flags().Float64Var(&opts.LR, "lr", opts.LR, "learning rate (gradient-descent lesson)")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sprout %s\n", version)
		},
	}
}
