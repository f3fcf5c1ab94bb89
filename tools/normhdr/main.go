package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-httpheaders/tools/normhdr/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
