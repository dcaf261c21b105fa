package main

import (
	"fmt"
	"strconv"

	"github.com/dangerclosesec/resadmin/internal/database"
	"github.com/spf13/cobra"
)

func (a *app) migrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage PostgreSQL schema migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withMigrator(cmd, func(m *database.Migrator) error {
				changed, err := m.Up()
				if err != nil {
					return err
				}
				if !changed {
					cmd.Println("No migrations to apply")
				} else {
					cmd.Println("Migration up completed successfully")
				}
				return nil
			})
		},
	}

	downCmd := &cobra.Command{
		Use:   "down [steps]",
		Short: "Rollback migrations",
		Long:  `Rollback the specified number of migrations (default: 1).`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("invalid step count %q", args[0])
				}
				steps = n
			}
			return a.withMigrator(cmd, func(m *database.Migrator) error {
				changed, err := m.Down(steps)
				if err != nil {
					return err
				}
				if !changed {
					cmd.Println("No migrations to rollback")
				} else {
					cmd.Printf("Migration down completed successfully (rolled back %d migration(s))\n", steps)
				}
				return nil
			})
		},
	}

	gotoCmd := &cobra.Command{
		Use:   "goto <version>",
		Short: "Migrate to a specific version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid version %q", args[0])
			}
			return a.withMigrator(cmd, func(m *database.Migrator) error {
				changed, err := m.Goto(uint(version))
				if err != nil {
					return err
				}
				if !changed {
					cmd.Printf("Already at version %d\n", version)
				} else {
					cmd.Printf("Migration goto %d completed successfully\n", version)
				}
				return nil
			})
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show current migration version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withMigrator(cmd, func(m *database.Migrator) error {
				version, dirty, ok, err := m.Version()
				if err != nil {
					return err
				}
				switch {
				case !ok:
					cmd.Println("Current version: No migrations applied yet")
				case dirty:
					cmd.Printf("Current version: %d (dirty - migration may have failed)\n", version)
				default:
					cmd.Printf("Current version: %d\n", version)
				}
				return nil
			})
		},
	}

	forceCmd := &cobra.Command{
		Use:   "force <version>",
		Short: "Force set migration version (use with caution)",
		Long:  `Force set the migration version without running migrations. Use with caution.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version %q", args[0])
			}
			return a.withMigrator(cmd, func(m *database.Migrator) error {
				if err := m.Force(version); err != nil {
					return err
				}
				cmd.Printf("Migration forced to version %d\n", version)
				return nil
			})
		},
	}

	migrateCmd.AddCommand(upCmd, downCmd, gotoCmd, versionCmd, forceCmd)
	return migrateCmd
}

func (a *app) withMigrator(cmd *cobra.Command, fn func(*database.Migrator) error) error {
	m, err := database.NewMigrator(a.cfg.MigrationURL())
	if err != nil {
		return err
	}
	defer m.Close()

	cmd.Printf("Using environment: %s (%s@%s:%s/%s)\n",
		a.env, a.cfg.Database.User, a.cfg.Database.Host, a.cfg.Database.Port, a.cfg.Database.Name)
	return fn(m)
}
