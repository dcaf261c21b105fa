package main

import (
	"log"
	"os"

	"github.com/dangerclosesec/resadmin/internal/config"
	"github.com/spf13/cobra"
)

type app struct {
	env string
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "resadminctl",
		Short: "Administration tool for the research administration database",
		Long: `Administration tool for the research administration database.
Applies schema migrations, checks stored data and produces reports.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.Init(a.env)
			a.cfg = config.Load()
		},
	}

	// Add global --env flag to all commands
	rootCmd.PersistentFlags().StringVarP(&a.env, "env", "e", "dev", "Environment to use (dev, test, prod)")

	rootCmd.AddCommand(a.migrateCmd())
	rootCmd.AddCommand(a.verifyHierarchyCmd())
	rootCmd.AddCommand(a.exportCmd())
	rootCmd.AddCommand(a.tokenCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("Failed to execute command: %v", err)
		os.Exit(1)
	}
}
