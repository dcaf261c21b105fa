package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dangerclosesec/resadmin/internal/auth"
	"github.com/dangerclosesec/resadmin/internal/database"
	"github.com/dangerclosesec/resadmin/internal/export"
	"github.com/dangerclosesec/resadmin/internal/repository"
	"github.com/spf13/cobra"
)

func (a *app) store() (*repository.Store, error) {
	db, err := database.Open(a.cfg)
	if err != nil {
		return nil, err
	}
	return repository.NewStore(db), nil
}

func (a *app) verifyHierarchyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-hierarchy",
		Short: "Check that no organization manager chain contains a cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			if err := store.VerifyHierarchy(cmd.Context()); err != nil {
				return err
			}
			cmd.Println("Organization hierarchy is acyclic")
			return nil
		},
	}
}

func (a *app) exportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export records as spreadsheets",
	}

	var output string
	projectCmd := &cobra.Command{
		Use:   "project <id>",
		Short: "Export a project with its team, consumables and initiations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}
			if output == "" {
				output = fmt.Sprintf("project-%d.xlsx", id)
			}

			store, err := a.store()
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			defer f.Close()

			if err := export.WriteProjectWorkbook(cmd.Context(), store, uint(id), f); err != nil {
				os.Remove(output)
				return err
			}
			cmd.Printf("Wrote %s\n", output)
			return nil
		},
	}
	projectCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default project-<id>.xlsx)")

	exportCmd.AddCommand(projectCmd)
	return exportCmd
}

func (a *app) tokenCmd() *cobra.Command {
	var actor string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an API token for an administrative user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := auth.NewTokenManager(a.cfg.JWT.Secret, a.cfg.JWT.ExpiryPeriod).Generate(actor)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&actor, "actor", "", "Name recorded as the actor of every change made with the token")
	_ = cmd.MarkFlagRequired("actor")
	return cmd
}
