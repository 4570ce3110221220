package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cq",
	Short: "Cq is a tool for working with sectioned config files.",
	Long:  "Cq is a tool for working with sectioned config files. It can parse conf documents, look up values by dotted path, and dump the parsed table.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Cq",
	Long:  `All software has versions. This is Cq's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Cq v0.1 -- HEAD")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(confCmd)
}
