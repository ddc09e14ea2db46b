package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {

	root := &cobra.Command{
		Use:          "prai",
		Short:        "Automated pull request review service",
		SilenceUsage: true,
	}

	root.AddCommand(serveCmd())
	root.AddCommand(reviewCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
