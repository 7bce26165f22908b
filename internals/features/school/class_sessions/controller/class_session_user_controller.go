// internals/features/school/class_sessions/controller/class_session_user_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/apperr"
	"campushub_backend/internals/configs"
	"campushub_backend/internals/features/school/class_sessions/dto"
	"campushub_backend/internals/features/school/class_sessions/model"
	"campushub_backend/internals/features/school/class_sessions/service"
	"campushub_backend/internals/features/school/class_sessions/store"
	helper "campushub_backend/internals/helpers"
	authmw "campushub_backend/internals/middlewares/auth"
)

type ClassSessionUserController struct {
	DB        *gorm.DB
	Validator *validator.Validate

	Store   store.SessionStore
	CheckIn *service.CheckInService
	Summary *service.SummaryService
}

func NewClassSessionUserController(db *gorm.DB) *ClassSessionUserController {
	st := store.NewGormStore(db)
	return &ClassSessionUserController{
		DB:        db,
		Validator: validator.New(),
		Store:     st,
		CheckIn:   service.NewCheckInService(st, configs.GraceMinutes),
		Summary:   service.NewSummaryService(st, store.NewGormCourseResolver(db)),
	}
}

// POST /api/u/class-sessions/:id/check-in
func (ctl *ClassSessionUserController) CheckInHandler(c *fiber.Ctx) error {
	studentID, err := authmw.StudentIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	sessionID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	status, err := ctl.CheckIn.CheckIn(c.UserContext(), sessionID, studentID, time.Now())
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Check-in recorded", fiber.Map{
		"class_session_id": sessionID,
		"status":           status,
	})
}

// GET /api/u/class-sessions?date_from=&date_to=&open_only=
func (ctl *ClassSessionUserController) List(c *fiber.Ctx) error {
	studentID, err := authmw.StudentIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	f := store.ListFilter{Offset: paging.Offset, Limit: paging.Limit}
	if v := strings.TrimSpace(c.Query("date_from")); v != "" {
		t, err := helper.ParseLocalDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_from invalid (YYYY-MM-DD)")
		}
		f.DateFrom = &t
	}
	if v := strings.TrimSpace(c.Query("date_to")); v != "" {
		t, err := helper.ParseLocalDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_to invalid (YYYY-MM-DD)")
		}
		f.DateTo = &t
	}
	f.OpenOnly = c.QueryBool("open_only")

	rows, total, err := ctl.Store.ListByStudent(c.UserContext(), studentID, f)
	if err != nil {
		return helper.JsonAppError(c, apperr.Internal(err))
	}
	items := dto.FromModels(rows)
	return helper.JsonOK(c, "OK", fiber.Map{
		"items":      items,
		"pagination": helper.BuildPagination(total, paging.Page, paging.PerPage, len(items)),
	})
}

// GET /api/u/class-sessions/summary
func (ctl *ClassSessionUserController) Summarize(c *fiber.Ctx) error {
	studentID, err := authmw.StudentIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	summaries, err := ctl.Summary.Summarize(c.UserContext(), studentID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "OK", summaries)
}

// GET /api/u/class-sessions/details?course_id=&statuses=absent,excused
func (ctl *ClassSessionUserController) Details(c *fiber.Ctx) error {
	studentID, err := authmw.StudentIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	courseID, err := uuid.Parse(strings.TrimSpace(c.Query("course_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "course_id invalid")
	}

	var statuses []model.SessionStatus
	if raw := strings.TrimSpace(c.Query("statuses")); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			statuses = append(statuses, model.SessionStatus(strings.TrimSpace(s)))
		}
	}

	rows, err := ctl.Summary.ListDetails(c.UserContext(), studentID, courseID, statuses)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.FromModels(rows))
}
