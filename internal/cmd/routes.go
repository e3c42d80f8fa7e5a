package cmd

import (
	"carwash/internal/adapter/http/routes"
	"carwash/internal/config"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the HTTP routes the server exposes",
	RunE:  listRoutes,
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

var methodColors = map[string]*color.Color{
	"GET":    color.New(color.FgGreen, color.Bold),
	"POST":   color.New(color.FgYellow, color.Bold),
	"PUT":    color.New(color.FgBlue, color.Bold),
	"DELETE": color.New(color.FgRed, color.Bold),
}

func listRoutes(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Seed.Enabled = false
	cfg.Server.Mode = "release"

	deps, err := routes.NewDependencies(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to build dependencies: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, r := range routes.NewRouter(cfg, deps).Routes() {
		method := r.Method
		if c, ok := methodColors[r.Method]; ok {
			method = c.Sprintf("%-7s", r.Method)
		}
		fmt.Fprintf(out, "%s %s\n", method, r.Path)
	}
	return nil
}
