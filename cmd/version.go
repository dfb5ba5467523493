package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tanglefoot/multimatch/internal/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
