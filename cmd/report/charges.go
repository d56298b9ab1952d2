package main

import (
	"github.com/spf13/cobra"
)

var customerIDFlag string

var ledgersCmd = &cobra.Command{
	Use:   "ledgers",
	Short: "Agrupa as cobranças da janela por cliente",
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := windowFromFlags()
		if err != nil {
			return err
		}

		app, cleanup, err := loadApplication(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		tenant, err := app.Tenant(platformFlag)
		if err != nil {
			return err
		}

		result, err := tenant.Reconciler.Ledgers(cmd.Context(), window, customerIDFlag)
		if err != nil {
			return err
		}

		printJSON(cmd, result)
		return nil
	},
}

var revenueCmd = &cobra.Command{
	Use:   "revenue",
	Short: "Soma o valor capturado das cobranças bem-sucedidas da janela",
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := windowFromFlags()
		if err != nil {
			return err
		}

		app, cleanup, err := loadApplication(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		tenant, err := app.Tenant(platformFlag)
		if err != nil {
			return err
		}

		result, err := tenant.Reconciler.TotalRevenue(cmd.Context(), window)
		if err != nil {
			return err
		}

		printJSON(cmd, result)
		return nil
	},
}

func init() {
	ledgersCmd.Flags().StringVar(&customerIDFlag, "customer-id", "", "restringe o ledger a um único cliente")
}
