// internals/features/school/class_sessions/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctrl "campushub_backend/internals/features/school/class_sessions/controller"
)

func ClassSessionUserRoutes(r fiber.Router, db *gorm.DB) {
	uc := ctrl.NewClassSessionUserController(db)

	g := r.Group("/class-sessions")
	g.Get("/", uc.List)
	g.Get("/summary", uc.Summarize)
	g.Get("/details", uc.Details)
	g.Post("/:id/check-in", uc.CheckInHandler)
}
