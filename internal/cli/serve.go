package cli

import (
	"github.com/jeffleon2/draftea-dashboard/internal/app"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard API until interrupted",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	myApp := &app.App{}
	if err := myApp.Initialize(cmd.Context(), cfg); err != nil {
		return err
	}
	return myApp.Run(cmd.Context())
}
