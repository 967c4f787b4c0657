package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"scholartrack_backend/internals/features/tracking/college_applications/controller"
	"scholartrack_backend/internals/features/tracking/college_applications/service"
)

// CollegeTrackingUserRoutes: router sudah melewati AuthJWT.
func CollegeTrackingUserRoutes(r fiber.Router, svc *service.CollegeApplicationService, log *zap.Logger) {
	ctl := controller.NewCollegeApplicationController(svc, log)

	g := r.Group("/college-tracking")

	apps := g.Group("/applications")
	apps.Post("/", ctl.Create)      // ➕ simpan kampus ke daftar
	apps.Get("/", ctl.List)         // 📄 list (filter status + sort)
	apps.Get("/:id", ctl.GetByID)   // 🔍 detail + institusi
	apps.Put("/:id", ctl.Update)    // ✏️ update status / field
	apps.Delete("/:id", ctl.Delete) // 🗑️ hapus

	apps.Post("/:id/mark-submitted", ctl.MarkSubmitted())
	apps.Post("/:id/mark-accepted", ctl.MarkAccepted())
	apps.Post("/:id/mark-rejected", ctl.MarkRejected())
	apps.Post("/:id/mark-waitlisted", ctl.MarkWaitlisted())

	g.Get("/dashboard", ctl.Dashboard) // 📊 ringkasan
}
