package cmd

import (
	"fmt"
	"os"

	"renthub/config"
	"renthub/db"
	"renthub/logger"

	"github.com/jinzhu/gorm"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	conf       config.Configuration
)

var rootCmd = &cobra.Command{
	Use:   "renthub",
	Short: "Rental marketplace API",
	Long: `RentHub serves the rental marketplace API: property listings,
rentals, favorites, contact requests, messages and password resets.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env é opcional
		_ = godotenv.Load()

		c, err := config.Get(configPath)
		if err != nil {
			return err
		}
		conf = c
		logger.SetLevel(logger.ParseLevel(conf.LogLevel))
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.json", "Path to a JSON or YAML configuration file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(expireCmd)
}

// openDB connects with the loaded configuration.
func openDB() (*gorm.DB, error) {
	g, err := db.Connect(conf)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return g, nil
}
