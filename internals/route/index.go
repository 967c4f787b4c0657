// file: internals/route/index.go
package routes

import (
	authMiddleware "scholartrack_backend/internals/middlewares/auth"
	routeDetails "scholartrack_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, d Deps) {
	api := app.Group("/api/v1")

	// ===================== PRIVATE (USER) =====================
	d.Log.Info("Setting up PRIVATE group...")
	private := api.Group("",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              d.Config.JWTSecret,
			BlacklistChecker:    d.BlacklistChecker,
			AllowCookieFallback: true,
		}),
	)

	// ===================== MOUNT ROUTES =====================
	d.Log.Info("Mounting Tracking routes...")
	routeDetails.TrackingUserRoutes(private, d.College, d.Scholarship, d.Log)

	// 404 JSON untuk sisa path
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "route not found")
	})
}
