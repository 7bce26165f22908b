// internals/features/school/semester_templates/controller/semester_template_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/features/school/semester_templates/dto"
	"campushub_backend/internals/features/school/semester_templates/model"
	helper "campushub_backend/internals/helpers"
)

type SemesterTemplateController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSemesterTemplateController(db *gorm.DB) *SemesterTemplateController {
	return &SemesterTemplateController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/a/semester-templates
func (ctl *SemesterTemplateController) Create(c *fiber.Ctx) error {
	var in dto.SemesterTemplateCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := in.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Semester template created", dto.FromModel(m))
}

// GET /api/a/semester-templates/:id
func (ctl *SemesterTemplateController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var m model.SemesterTemplateModel
	err = ctl.DB.WithContext(c.Context()).
		Preload("Meetings", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("meeting_template_position ASC")
		}).
		First(&m, "semester_template_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Semester template not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromModel(&m))
}

// GET /api/a/semester-templates
func (ctl *SemesterTemplateController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).Model(&model.SemesterTemplateModel{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.SemesterTemplateModel
	if err := tx.
		Preload("Meetings", func(q *gorm.DB) *gorm.DB {
			return q.Order("meeting_template_position ASC")
		}).
		Order("semester_template_academic_year_label DESC, semester_template_start_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	items := make([]dto.SemesterTemplateResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.FromModel(&rows[i]))
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"items":      items,
		"pagination": helper.BuildPagination(total, paging.Page, paging.PerPage, len(items)),
	})
}

// DELETE /api/a/semester-templates/:id (soft)
func (ctl *SemesterTemplateController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&model.SemesterTemplateModel{}, "semester_template_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Semester template not found")
	}
	return helper.JsonOK(c, "Semester template deleted", fiber.Map{"semester_template_id": id})
}
