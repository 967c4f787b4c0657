package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"scholartrack_backend/internals/configs"
	database "scholartrack_backend/internals/databases"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create/alter tables with GORM AutoMigrate",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			cfg.StoreDriver = configs.StoreDriverPostgres
			db, err := database.ConnectDB(cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			if err := database.AutoMigrate(db); err != nil {
				log.Error("❌ migrate gagal", zap.Error(err))
				return err
			}
			log.Info("✅ migrate selesai", zap.Int("tables", len(database.Models())))
			return nil
		},
	}
}
