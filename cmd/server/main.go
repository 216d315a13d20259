// The eshop-back binary: HTTP server plus the database management commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Imported for their init() registrations.
	_ "eshop-back/database/migrations"
	_ "eshop-back/database/seeders"
)

var rootCmd = &cobra.Command{
	Use:   "eshop-back",
	Short: "E-shop backend",
	Long:  "REST backend for the e-shop storefront: users, catalogue, news and orders.",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
