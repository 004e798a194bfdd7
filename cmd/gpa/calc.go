package main

import (
	"github.com/spf13/cobra"

	"github.com/yigit/gpacalc/internal/app/cli"
)

var courseArgs []string

var calcCmd = &cobra.Command{
	Use:     "calc",
	Short:   "Calculate the GPA of the given courses",
	Example: `  gpa calc --course "Linear Algebra:3:91" --course "History:2:75"`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunCalc(cmd.Context(), newController(), courseArgs, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)
	calcCmd.Flags().StringArrayVar(&courseArgs, "course", nil, `Course as "Name:credits:score" (repeatable)`)
}
