// internals/features/school/class_sessions/controller/class_session_admin_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/features/school/class_sessions/dto"
	"campushub_backend/internals/features/school/class_sessions/service"
	"campushub_backend/internals/features/school/class_sessions/store"
	tmodel "campushub_backend/internals/features/school/semester_templates/model"
	helper "campushub_backend/internals/helpers"
)

type ClassSessionAdminController struct {
	DB        *gorm.DB
	Validator *validator.Validate

	Writer *service.LedgerWriter
	Admin  *service.AdminService
}

func NewClassSessionAdminController(db *gorm.DB) *ClassSessionAdminController {
	st := store.NewGormStore(db)
	return &ClassSessionAdminController{
		DB:        db,
		Validator: validator.New(),
		Writer:    service.NewLedgerWriter(st),
		Admin:     service.NewAdminService(st),
	}
}

// POST /api/a/class-sessions/expand
// Idempotent: re-running reports the duplicates as per-index conflicts.
func (ctl *ClassSessionAdminController) Expand(c *fiber.Ctx) error {
	var in dto.ExpandSemesterRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var tpl tmodel.SemesterTemplateModel
	err := ctl.DB.WithContext(c.UserContext()).
		Preload("Meetings", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("meeting_template_position ASC")
		}).
		First(&tpl, "semester_template_id = ?", in.SemesterTemplateID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Semester template not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	report := service.ExpandSemester(&tpl, in.StudentID)
	result := ctl.Writer.WriteBatch(c.UserContext(), report.Drafts)

	log.Printf("[INFO] expand: template=%s student=%s drafts=%d ok=%d failed=%d skipped_meetings=%d",
		in.SemesterTemplateID, in.StudentID, len(report.Drafts),
		len(result.Succeeded), len(result.Failed), report.SkippedMeetings)

	return helper.JsonOK(c, "Expansion finished", fiber.Map{
		"drafts":           len(report.Drafts),
		"skipped_meetings": report.SkippedMeetings,
		"succeeded":        result.Succeeded,
		"failed":           result.Failed,
	})
}

// POST /api/a/class-sessions/:id/open
func (ctl *ClassSessionAdminController) OpenAttendance(c *fiber.Ctx) error {
	return ctl.setOpen(c, true, "Attendance opened")
}

// POST /api/a/class-sessions/:id/close
func (ctl *ClassSessionAdminController) CloseAttendance(c *fiber.Ctx) error {
	return ctl.setOpen(c, false, "Attendance closed")
}

func (ctl *ClassSessionAdminController) setOpen(c *fiber.Ctx, open bool, msg string) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if err := ctl.Admin.SetAttendanceOpen(c.UserContext(), id, open); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, msg, fiber.Map{"class_session_id": id, "is_open": open})
}

// POST /api/a/class-sessions/:id/override
func (ctl *ClassSessionAdminController) Override(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var in dto.OverrideRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := ctl.Admin.Override(c.UserContext(), id, in.Status, in.Note); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Attendance overridden", fiber.Map{
		"class_session_id": id,
		"status":           in.Status,
	})
}

// DELETE /api/a/class-sessions
func (ctl *ClassSessionAdminController) ResetSemester(c *fiber.Ctx) error {
	var in dto.ResetSemesterRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	deleted, err := ctl.Admin.ResetSemester(c.UserContext(), in.StudentID, in.SemesterLabel, in.AcademicYearLabel)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Semester ledger cleared", fiber.Map{
		"deleted": deleted,
	})
}
