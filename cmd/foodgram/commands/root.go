package commands

import (
	"fmt"
	"os"

	"foodgram-backend/cmd/config"
	"foodgram-backend/internal/utils"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "foodgram",
	Short: "Foodgram recipe sharing backend",
	Long: `Foodgram serves the recipe sharing API and ships maintenance commands
for the schema and the tag and ingredient dictionaries.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.LoadConfigFrom(configPath)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to the YAML config file")
}

func connect() (*gorm.DB, error) {
	db, err := config.ConnectDB()
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}
