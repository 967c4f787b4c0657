package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	database "scholartrack_backend/internals/databases"
	"scholartrack_backend/internals/seeds"
)

func newSeedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the institution/scholarship catalog from JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			if file == "" {
				file = cfg.CatalogSeedFile
			}

			db, err := database.ConnectDB(cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			if err := database.AutoMigrate(db); err != nil {
				return err
			}
			if err := seeds.RunAllSeeds(cmd.Context(), db, file, log); err != nil {
				log.Error("❌ seed gagal", zap.Error(err))
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "catalog JSON file (default CATALOG_SEED_FILE)")
	return cmd
}
