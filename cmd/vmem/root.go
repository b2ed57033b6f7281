package main

import (
	"fmt"
	"os"

	"github.com/pedro-bento/vmem"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose bool

	logger *zap.Logger
	mem    *vmem.VMem
)

var rootCmd = &cobra.Command{
	Use:   "vmem",
	Short: "Allocate anonymous memory and map files read-only",
	Long: `vmem exercises the vmem library against the running platform: it
allocates anonymous read-write memory and maps files into memory read-only,
printing what the operating system hands back. Failed operations are logged
with the platform's rendered error message.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger()
		mem = vmem.New(vmem.WithTrace(func(msg string) {
			logger.Error(msg)
		}))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func initLogger() {
	cfg := zap.NewDevelopmentConfig()
	level := zap.ErrorLevel
	if verbose {
		level = zap.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	logger = zap.Must(cfg.Build())
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
