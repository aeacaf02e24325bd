// file: internals/features/academic/submissions/route/academic_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	milestoneController "skripsiku_backend/internals/features/academic/milestones/controller"
	controller "skripsiku_backend/internals/features/academic/submissions/controller"
	repository "skripsiku_backend/internals/features/academic/submissions/repository"
	service "skripsiku_backend/internals/features/academic/submissions/service"
)

// AcademicRoutes
// Base: /api/academic (sudah di belakang middleware auth)
func AcademicRoutes(r fiber.Router, db *gorm.DB) {
	repo := repository.NewSubmissionRepository(db)
	subCtrl := controller.NewSubmissionController(service.NewSubmissionService(repo))
	msCtrl := milestoneController.NewMilestoneController(service.NewMilestoneService(repo))

	sub := r.Group("/submissions")
	sub.Post("/", subCtrl.Create)               // POST /submissions
	sub.Get("/", subCtrl.List)                  // GET  /submissions
	sub.Get("/:id", subCtrl.GetByID)            // GET  /submissions/:id
	sub.Put("/:id", subCtrl.Update)             // PUT  /submissions/:id
	sub.Get("/:id/milestones", msCtrl.ListBySubmission) // GET /submissions/:id/milestones

	r.Put("/milestones/:id", msCtrl.Update) // PUT /milestones/:id
}
