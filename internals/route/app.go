// file: internals/route/app.go
package routes

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"scholartrack_backend/internals/configs"
	collegeService "scholartrack_backend/internals/features/tracking/college_applications/service"
	scholarshipService "scholartrack_backend/internals/features/tracking/scholarship_applications/service"
	helper "scholartrack_backend/internals/helpers"
	"scholartrack_backend/internals/metrics"
	middlewares "scholartrack_backend/internals/middlewares"
	"scholartrack_backend/internals/middlewares/logger"
)

// Deps: semua yang dibutuhkan app; DB nil = mode memory.
type Deps struct {
	Config  configs.Config
	Log     *zap.Logger
	DB      *gorm.DB
	Metrics *metrics.Metrics

	LimiterStorage   fiber.Storage
	BlacklistChecker func(rawToken string) (bool, error)

	College     *collegeService.CollegeApplicationService
	Scholarship *scholarshipService.ScholarshipApplicationService

	AccessLog bool
}

func NewApp(d Deps) *fiber.App {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.FromFiberError,
		// 🔒 Keep-Alive & timeout koneksi server
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  90 * time.Second,
	})

	app.Use(middlewares.RecoveryMiddleware(d.Log))
	app.Use(middlewares.RequestID(5 * time.Second)) // selaras dengan statement_timeout di DB
	if d.AccessLog {
		app.Use(logger.LoggerMiddleware())
	}
	app.Use(middlewares.CorsMiddleware(d.Config.CorsAllowOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
	app.Use(d.Metrics.Middleware())

	limit := d.Config.RateLimitMax
	if limit <= 0 {
		limit = 100
	}
	app.Use(middlewares.GlobalRateLimiter(limit, d.LimiterStorage))

	BaseRoutes(app, d.DB, d.Metrics)
	SetupRoutes(app, d)
	return app
}
