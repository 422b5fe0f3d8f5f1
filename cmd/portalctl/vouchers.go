package main

import (
	"fmt"

	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/piresc/guestportal/services/portal/repository"
	"github.com/piresc/guestportal/services/portal/usecase"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newVouchersCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vouchers",
		Short: "Manage vouchers",
	}

	generate := &cobra.Command{
		Use:   "generate",
		Short: "Create a batch of active vouchers for a tenant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tenantID := v.GetInt64("tenant")
			if tenantID <= 0 {
				return fmt.Errorf("--tenant is required")
			}

			cfg, client, err := openDB(v)
			if err != nil {
				return err
			}
			defer client.Close()

			repo := repository.NewPortalRepo(cfg, client.GetDB())
			uc := usecase.NewPortalUC(cfg, repo, nil, nil, nil)

			vouchers, err := uc.GenerateVouchers(cmd.Context(), tenantID, &models.VoucherBatchRequest{
				Count:   v.GetInt("count"),
				Minutes: v.GetInt("minutes"),
			})
			if err != nil {
				return err
			}
			for _, voucher := range vouchers {
				fmt.Fprintln(cmd.OutOrStdout(), voucher.Code)
			}
			return nil
		},
	}
	generate.Flags().Int64("tenant", 0, "tenant id")
	generate.Flags().Int("count", 10, "number of vouchers")
	generate.Flags().Int("minutes", 0, "session minutes per voucher (0 uses the portal default)")

	cmd.AddCommand(generate)
	return cmd
}
