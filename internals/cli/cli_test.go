package cli

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"scholartrack_backend/internals/configs"
	collegeDTO "scholartrack_backend/internals/features/tracking/college_applications/dto"
)

func TestNewRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.True(t, names["seed"])
	assert.True(t, names["revoke"])
	assert.NotNil(t, root.PersistentFlags().Lookup("debug"))
}

func TestBuildDeps_Memory(t *testing.T) {
	cfg := configs.Config{
		StoreDriver:        configs.StoreDriverMemory,
		JWTSecret:          "x",
		RateLimitMax:       100,
		DeadlineWindowDays: 14,
		CatalogSeedFile:    "../seeds/catalog/data_catalog.json",
	}
	deps, cleanup, err := buildDeps(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer cleanup()

	assert.Nil(t, deps.DB)
	assert.Nil(t, deps.LimiterStorage)
	require.NotNil(t, deps.College)
	require.NotNil(t, deps.Scholarship)
	assert.Equal(t, 14, deps.College.Tracker.WindowDays)
	assert.Equal(t, 14, deps.Scholarship.Tracker.WindowDays)

	// katalog memory terisi dari seed file
	app, err := deps.College.Create(context.Background(), uuid.New(), collegeDTO.CreateCollegeApplicationRequest{
		InstitutionID: "6f1d2c1e-4b1a-4c55-9a0e-1b2f3c4d5e01",
	})
	require.NoError(t, err)
	assert.NotNil(t, app.CollegeApplicationInstitutionNameSnapshot)
}

func TestBuildDeps_MissingCatalogFile(t *testing.T) {
	cfg := configs.Config{StoreDriver: configs.StoreDriverMemory, CatalogSeedFile: "does-not-exist.json"}
	deps, cleanup, err := buildDeps(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer cleanup()

	_, err = deps.College.Create(context.Background(), uuid.New(), collegeDTO.CreateCollegeApplicationRequest{
		InstitutionID: uuid.NewString(),
	})
	assert.Error(t, err)
}

func TestRevokeToken_RequiresConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  configs.Config
		raw  string
		want string
	}{
		{"empty token", configs.Config{JWTSecret: "x", RedisURL: "redis://localhost:6379"}, " ", "token is required"},
		{"no secret", configs.Config{RedisURL: "redis://localhost:6379"}, "abc", "JWT_SECRET is required"},
		{"no redis", configs.Config{JWTSecret: "x"}, "abc", "REDIS_URL is required to revoke tokens"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := revokeToken(context.Background(), tt.cfg, zap.NewNop(), tt.raw)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}
