// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"skripsiku_backend/internals/configs"
	academicRoute "skripsiku_backend/internals/features/academic/submissions/route"
	authMw "skripsiku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// Semua route akademik butuh token valid dari auth-service.
	log.Println("[INFO] Setting up ACADEMIC group...")
	academic := app.Group("/api/academic",
		authMw.AuthMiddleware(configs.JWTSecret),
	)
	academicRoute.AcademicRoutes(academic, db)
}
