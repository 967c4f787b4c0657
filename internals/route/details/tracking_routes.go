package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	collegeRoute "scholartrack_backend/internals/features/tracking/college_applications/route"
	collegeService "scholartrack_backend/internals/features/tracking/college_applications/service"
	scholarshipRoute "scholartrack_backend/internals/features/tracking/scholarship_applications/route"
	scholarshipService "scholartrack_backend/internals/features/tracking/scholarship_applications/service"
)

// TrackingUserRoutes: /college-tracking & /scholarship-tracking (router sudah ter-auth)
func TrackingUserRoutes(
	r fiber.Router,
	college *collegeService.CollegeApplicationService,
	scholarship *scholarshipService.ScholarshipApplicationService,
	log *zap.Logger,
) {
	if college != nil {
		collegeRoute.CollegeTrackingUserRoutes(r, college, log)
	}
	if scholarship != nil {
		scholarshipRoute.ScholarshipTrackingUserRoutes(r, scholarship, log)
	}
}
