package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mwhite7112/cityform/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		sqlDB, err := openDB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		if err := db.Migrate(sqlDB); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		log.Info().Msg("migrations applied")
		return nil
	},
}
