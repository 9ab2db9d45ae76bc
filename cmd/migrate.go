package cmd

import (
	"renthub/db"
	"renthub/logger"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := openDB()
		if err != nil {
			return err
		}
		defer g.Close()

		if err := db.Migrate(g); err != nil {
			return err
		}
		logger.Info("migrations applied", "database", conf.Database)
		return nil
	},
}
