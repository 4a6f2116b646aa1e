package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var merchantsCmd = &cobra.Command{
	Use:   "merchants",
	Short: "List merchants and their balances",
	RunE:  runMerchants,
}

func runMerchants(cmd *cobra.Command, args []string) error {
	dashboard, release, err := openDashboard(cmd.Context())
	if err != nil {
		return err
	}
	defer release()

	if err := dashboard.LoadMerchants(cmd.Context()); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Could not refresh merchants, showing cached list")
	}

	merchants := dashboard.MerchantState().Merchants
	if len(merchants) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No merchants found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tBALANCE")
	for _, m := range merchants {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s %s\n", m.ID, m.Name, m.Email, m.Balance.StringFixed(2), m.Currency)
	}
	return w.Flush()
}
