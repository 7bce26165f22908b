// internals/features/school/class_sessions/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctrl "campushub_backend/internals/features/school/class_sessions/controller"
)

func ClassSessionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ac := ctrl.NewClassSessionAdminController(db)

	g := r.Group("/class-sessions")
	g.Post("/expand", ac.Expand)
	g.Post("/:id/open", ac.OpenAttendance)
	g.Post("/:id/close", ac.CloseAttendance)
	g.Post("/:id/override", ac.Override)
	g.Delete("/", ac.ResetSemester)
}
