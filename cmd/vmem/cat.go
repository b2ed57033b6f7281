package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(newCatCmd())
}

func newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <file>...",
		Short: "Map files read-only and print their contents",
		Long: `The cat command maps each file into memory read-only, writes its contents
to standard output, and unmaps it. Empty files map successfully and print
nothing.

Example:
  vmem cat lorem_ipsum
  vmem cat a.txt b.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCat(args)
		},
	}
}

func runCat(paths []string) error {
	for _, path := range paths {
		m, err := mem.MapFile(path)
		if err != nil {
			return err
		}
		logger.Debug("mapped", zap.String("path", path), zap.Uint64("size", m.Size()))

		if _, err := os.Stdout.Write(m.Bytes()); err != nil {
			m.Unmap()
			return err
		}
		if err := m.Unmap(); err != nil {
			return err
		}
	}
	return nil
}
