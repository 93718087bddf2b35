package main

import (
	"os"

	"github.com/spf13/cobra"

	"extinsia/internal/interfaces/cli/migrate"
	"extinsia/internal/interfaces/cli/remind"
	"extinsia/internal/interfaces/cli/server"
)

//	@title						Extinsia API
//	@version					1.0
//	@description				Sales and service management for a fire extinguisher business.
//	@BasePath					/
//	@securityDefinitions.apikey	Bearer
//	@in							header
//	@name						Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "extinsia",
		Short: "Extinsia - fire extinguisher sales and service management",
		Long:  `Extinsia manages customers, the product and extinguisher catalogs, service tickets and yearly renewal reminders for a fire extinguisher business.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		remind.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
