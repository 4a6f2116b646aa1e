package cli

import (
	"fmt"

	"github.com/jeffleon2/draftea-dashboard/internal/cache"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Dashboard cache utilities",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop the cached merchant and payment state",
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, closeStore, err := cache.Open(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := cache.Clear(cmd.Context(), store); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s and %s from the %s cache\n", cache.MerchantStateKey, cache.PaymentStateKey, cfg.Cache.Backend)
	return nil
}
