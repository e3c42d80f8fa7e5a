package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "carwash",
	Short: "Car Wash API - customers, vehicles, employees and wash orders",
	Long: `Car Wash API manages the customers, vehicles, employees and wash orders
of a car wash business and reports which customers are due for a wash.

Running without a subcommand starts the HTTP server.`,
	RunE: runServer,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
