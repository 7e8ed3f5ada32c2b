package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the campwatch version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("campwatch %s\n", appVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
