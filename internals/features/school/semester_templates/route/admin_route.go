// internals/features/school/semester_templates/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctrl "campushub_backend/internals/features/school/semester_templates/controller"
)

func SemesterTemplateAdminRoutes(r fiber.Router, db *gorm.DB) {
	tc := ctrl.NewSemesterTemplateController(db)

	g := r.Group("/semester-templates")
	g.Post("/", tc.Create)
	g.Get("/", tc.List)
	g.Get("/:id", tc.GetByID)
	g.Delete("/:id", tc.Delete)
}
