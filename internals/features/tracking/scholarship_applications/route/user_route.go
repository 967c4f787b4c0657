package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"scholartrack_backend/internals/features/tracking/scholarship_applications/controller"
	"scholartrack_backend/internals/features/tracking/scholarship_applications/service"
)

// ScholarshipTrackingUserRoutes: router sudah melewati AuthJWT.
func ScholarshipTrackingUserRoutes(r fiber.Router, svc *service.ScholarshipApplicationService, log *zap.Logger) {
	ctl := controller.NewScholarshipApplicationController(svc, log)

	g := r.Group("/scholarship-tracking")

	apps := g.Group("/applications")
	apps.Post("/", ctl.Create)      // ➕ simpan beasiswa ke daftar
	apps.Get("/", ctl.List)         // 📄 list (filter status + sort)
	apps.Get("/:id", ctl.GetByID)   // 🔍 detail + info beasiswa
	apps.Put("/:id", ctl.Update)    // ✏️ update status / field
	apps.Delete("/:id", ctl.Delete) // 🗑️ hapus

	apps.Post("/:id/mark-submitted", ctl.MarkSubmitted())
	apps.Post("/:id/mark-accepted", ctl.MarkAccepted()) // ?award_amount=
	apps.Post("/:id/mark-rejected", ctl.MarkRejected())
	apps.Post("/:id/mark-not-pursuing", ctl.MarkNotPursuing())

	g.Get("/dashboard", ctl.Dashboard) // 📊 ringkasan + nilai potensial
}
