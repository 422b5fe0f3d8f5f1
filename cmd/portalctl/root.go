package main

import (
	"encoding/json"
	"strings"

	"github.com/piresc/guestportal/internal/pkg/config"
	"github.com/piresc/guestportal/internal/pkg/database"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "PORTALCTL"

// newRootCmd builds the command tree. Every flag can also be set through
// PORTALCTL_<FLAG> with dashes as underscores.
func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:          "portalctl",
		Short:        "Operator tool for the guest portal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return v.BindPFlags(cmd.Flags())
		},
	}
	root.PersistentFlags().String("env-file", "", "service env file with DB_* settings")

	root.AddCommand(
		newControllerCmd(v),
		newVouchersCmd(v),
		newMigrateCmd(v),
		newEventsCmd(v),
	)
	return root
}

// openDB connects with the same DB_* settings the portal service reads
func openDB(v *viper.Viper) (*models.Config, *database.PostgresClient, error) {
	cfg := config.InitConfig(v.GetString("env-file"))
	client, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return cfg, client, nil
}

func printJSON(cmd *cobra.Command, value interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
