package cmd

import (
	"fmt"

	"github.com/alexiusacademia/ncpunch/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ncpunch",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ncpunch v%s\n", version.Version)
		fmt.Println("NC Punch Program Planner")
		fmt.Println("For roll-formed steel joists and bearers")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
