package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jeffleon2/draftea-dashboard/config"
	"github.com/jeffleon2/draftea-dashboard/internal/app"
	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

func init() {
	rootCmd = &cobra.Command{
		Use:   "dashboard",
		Short: "Payments dashboard for the merchant and payment services",
		Long: `dashboard tracks merchants and payments against the payment, merchant and
notification services. It serves the dashboard state over HTTP and offers a
few one-shot commands for scripting.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(merchantsCmd)
	rootCmd.AddCommand(payCmd)
	rootCmd.AddCommand(cacheCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	cfg.APP.ConfigureLogger()
	return cfg, nil
}

// openDashboard builds and initializes a dashboard for one-shot commands.
func openDashboard(ctx context.Context) (*app.Dashboard, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	dashboard, release, err := app.Build(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	dashboard.Init(ctx)
	return dashboard, release, nil
}
