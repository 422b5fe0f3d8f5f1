package main

import (
	"fmt"

	"github.com/piresc/guestportal/internal/pkg/database"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newMigrateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back schema migrations",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, client, err := openDB(v)
			if err != nil {
				return err
			}
			defer client.Close()
			if err := database.RunMigrations(client.GetDB()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back --steps migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			steps := v.GetInt("steps")
			if steps <= 0 {
				return fmt.Errorf("--steps must be positive")
			}
			_, client, err := openDB(v)
			if err != nil {
				return err
			}
			defer client.Close()
			if err := database.RollbackMigrations(client.GetDB(), steps); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rolled back %d migration(s)\n", steps)
			return nil
		},
	}
	down.Flags().Int("steps", 1, "number of migrations to roll back")

	cmd.AddCommand(up, down)
	return cmd
}
