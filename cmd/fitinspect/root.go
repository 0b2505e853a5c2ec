package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fitinspect",
	Short: "Inspect FIT activity files",
	Long:  `fitinspect decodes FIT (Flexible and Interoperable Data Transfer) files and prints their header and record stream.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
