package cli

import (
	"fmt"

	"github.com/jeffleon2/draftea-dashboard/internal/models/dto"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var payCmd = &cobra.Command{
	Use:   "pay",
	Short: "Create a payment and wait for its outcome",
	RunE:  runPay,
}

func init() {
	addPayFlags(payCmd)
}

func addPayFlags(cmd *cobra.Command) {
	cmd.Flags().String("payer", "", "Payer merchant ID (required)")
	cmd.Flags().String("payee", "", "Payee merchant ID (required)")
	cmd.Flags().String("amount", "", "Amount, e.g. 50.00 (required)")
	cmd.Flags().String("currency", "BRL", "Currency code")
	cmd.Flags().String("email", "", "Payer email, looked up from the merchant list when empty")
	_ = cmd.MarkFlagRequired("payer")
	_ = cmd.MarkFlagRequired("payee")
	_ = cmd.MarkFlagRequired("amount")
}

func runPay(cmd *cobra.Command, args []string) error {
	payer, _ := cmd.Flags().GetString("payer")
	payee, _ := cmd.Flags().GetString("payee")
	rawAmount, _ := cmd.Flags().GetString("amount")
	currency, _ := cmd.Flags().GetString("currency")
	email, _ := cmd.Flags().GetString("email")

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", rawAmount, err)
	}

	dashboard, release, err := openDashboard(cmd.Context())
	if err != nil {
		return err
	}
	defer release()

	id, err := dashboard.CreatePayment(cmd.Context(), dto.CreatePayment{
		PayerID:    payer,
		PayeeID:    payee,
		PayerEmail: email,
		Amount:     amount,
		Currency:   currency,
	})
	if err != nil {
		if msg := dashboard.PaymentState().Error; msg != "" {
			return fmt.Errorf("%s: %w", msg, err)
		}
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Payment %s created, waiting for the outcome...\n", id)

	result, err := dashboard.AwaitPayment(cmd.Context(), id)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Payment %s: %s after %d checks\n", id, result.Outcome, result.Attempts)
	return nil
}
