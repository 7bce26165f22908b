// internals/route/routes.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionRoute "campushub_backend/internals/features/school/class_sessions/route"
	templateRoute "campushub_backend/internals/features/school/semester_templates/route"
	authmw "campushub_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})

	api := app.Group("/api", authmw.AuthMiddleware())

	// Student-facing
	log.Println("[INFO] Setting up user routes...")
	u := api.Group("/u")
	sessionRoute.ClassSessionUserRoutes(u, db)

	// Staff-only
	log.Println("[INFO] Setting up admin routes...")
	a := api.Group("/a", authmw.StaffOnly())
	templateRoute.SemesterTemplateAdminRoutes(a, db)
	sessionRoute.ClassSessionAdminRoutes(a, db)
}
