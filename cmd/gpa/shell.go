package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yigit/gpacalc/internal/app/cli"
	"github.com/yigit/gpacalc/internal/pkg/logger"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Edit a course list interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		shell := cli.NewShell(newController(), os.Stdin, cmd.OutOrStdout(), logger.Get())
		return shell.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
