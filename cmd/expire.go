package cmd

import (
	"time"

	"renthub/db"
	"renthub/lifecycle"
	"renthub/logger"

	"github.com/spf13/cobra"
)

// expireCmd runs one expiry sweep and exits; meant for cron.
var expireCmd = &cobra.Command{
	Use:   "expire-rentals",
	Short: "Close live rentals whose end date has passed",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := openDB()
		if err != nil {
			return err
		}
		defer g.Close()

		manager := lifecycle.NewManager(db.NewStore(g), nil)
		n, err := manager.ExpireDueRentals(cmd.Context(), time.Now())
		if err != nil {
			return err
		}
		logger.Info("rentals expired", "count", n)
		return nil
	},
}
