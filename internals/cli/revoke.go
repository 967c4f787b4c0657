package cli

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"scholartrack_backend/internals/configs"
	database "scholartrack_backend/internals/databases"
	authMiddleware "scholartrack_backend/internals/middlewares/auth"
)

func newRevokeCmd() *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:   "revoke",
		Short: "Revoke an access token until it expires (needs REDIS_URL)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			return revokeToken(cmd.Context(), cfg, log, token)
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "Raw JWT to revoke")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}

func revokeToken(ctx context.Context, cfg configs.Config, log *zap.Logger, raw string) error {
	switch {
	case strings.TrimSpace(raw) == "":
		return errors.New("token is required")
	case strings.TrimSpace(cfg.JWTSecret) == "":
		return errors.New("JWT_SECRET is required")
	case cfg.RedisURL == "":
		return errors.New("REDIS_URL is required to revoke tokens")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := database.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if err := authMiddleware.NewRedisBlacklist(client, cfg.JWTSecret).Revoke(ctx, raw); err != nil {
		log.Error("❌ revoke gagal", zap.Error(err))
		return err
	}
	log.Info("✅ token di-revoke")
	return nil
}
