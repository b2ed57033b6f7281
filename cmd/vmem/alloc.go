package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	allocSize uint64
	allocFill string
)

func init() {
	cmd := newAllocCmd()
	cmd.Flags().Uint64Var(&allocSize, "size", 256, "Number of bytes to allocate")
	cmd.Flags().StringVar(&allocFill, "fill", "E", "Byte to fill the region with")
	rootCmd.AddCommand(cmd)
}

func newAllocCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alloc",
		Short: "Allocate anonymous memory, fill it, and free it",
		Long: `The alloc command allocates anonymous read-write memory, fills it with a
byte pattern, prints the region, and frees it.

Example:
  vmem alloc
  vmem alloc --size 64 --fill x`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlloc()
		},
	}
}

func runAlloc() error {
	buf, err := mem.Alloc(allocSize)
	if err != nil {
		return err
	}
	logger.Debug("allocated", zap.Uint64("size", buf.Size()))

	fill := byte('E')
	if allocFill != "" {
		fill = allocFill[0]
	}
	b := buf.Bytes()
	for i := range b {
		b[i] = fill
	}

	fmt.Printf("bytes[%d]=%s\n", buf.Size(), b)

	return buf.Free()
}
