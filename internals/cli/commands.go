// Package cli berisi command cobra: serve (default), migrate, seed, revoke.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"scholartrack_backend/internals/configs"
)

// NewRootCmd: tanpa subcommand → serve.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "scholartrack",
		Short:         "ScholarTrack API: college & scholarship application tracking",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
	root.PersistentFlags().Bool("debug", false, "Enable debug logging (overrides DEBUG)")

	root.AddCommand(newServeCmd(), newMigrateCmd(), newSeedCmd(), newRevokeCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

// bootstrap: .env → Config → zap logger.
func bootstrap(cmd *cobra.Command) (configs.Config, *zap.Logger, error) {
	configs.LoadEnv()
	cfg := configs.Load()
	if f := cmd.Flags().Lookup("debug"); f != nil && f.Changed {
		cfg.Debug, _ = cmd.Flags().GetBool("debug")
	}
	log, err := configs.NewLogger(cfg.Debug)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, log, nil
}
