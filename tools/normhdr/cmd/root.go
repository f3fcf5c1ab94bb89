package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "normhdr",
	Short: "Tools for canonicalizing HTTP header blocks",
}

func Execute() error {
	return rootCmd.Execute()
}
