// internals/features/school/semester_templates/dto/semester_template_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "campushub_backend/internals/features/school/semester_templates/model"
)

/* =========================================================
   CREATE DTO
   ========================================================= */

type MeetingTemplateCreateDTO struct {
	MeetingTemplateCourseID   uuid.UUID `json:"meeting_template_course_id" validate:"required"`
	MeetingTemplateWeekday    string    `json:"meeting_template_weekday" validate:"required,max=16"`
	MeetingTemplateStartTime  string    `json:"meeting_template_start_time" validate:"required,len=5"`
	MeetingTemplateEndTime    string    `json:"meeting_template_end_time" validate:"required,len=5"`
	MeetingTemplateRoom       *string   `json:"meeting_template_room" validate:"omitempty,max=80"`
	MeetingTemplateInstructor *string   `json:"meeting_template_instructor" validate:"omitempty,max=120"`
}

type SemesterTemplateCreateDTO struct {
	SemesterTemplateSemesterLabel     string `json:"semester_template_semester_label" validate:"required,max=40"`
	SemesterTemplateAcademicYearLabel string `json:"semester_template_academic_year_label" validate:"required,max=16"`
	SemesterTemplateStartDate         string `json:"semester_template_start_date" validate:"required,datetime=2006-01-02"`
	SemesterTemplateEndDate           string `json:"semester_template_end_date" validate:"required,datetime=2006-01-02"`

	Meetings []MeetingTemplateCreateDTO `json:"meetings" validate:"required,min=1,dive"`
}

// ToModel converts the DTO into a template with its ordered meetings.
// Dates were already validated by the datetime tag.
func (in *SemesterTemplateCreateDTO) ToModel() *model.SemesterTemplateModel {
	start, _ := time.Parse("2006-01-02", in.SemesterTemplateStartDate)
	end, _ := time.Parse("2006-01-02", in.SemesterTemplateEndDate)

	m := &model.SemesterTemplateModel{
		SemesterTemplateSemesterLabel:     strings.TrimSpace(in.SemesterTemplateSemesterLabel),
		SemesterTemplateAcademicYearLabel: strings.TrimSpace(in.SemesterTemplateAcademicYearLabel),
		SemesterTemplateStartDate:         datatypes.Date(start),
		SemesterTemplateEndDate:           datatypes.Date(end),
	}
	for i, mt := range in.Meetings {
		m.Meetings = append(m.Meetings, model.MeetingTemplateModel{
			MeetingTemplateCourseID:   mt.MeetingTemplateCourseID,
			MeetingTemplateWeekday:    strings.TrimSpace(mt.MeetingTemplateWeekday),
			MeetingTemplateStartTime:  strings.TrimSpace(mt.MeetingTemplateStartTime),
			MeetingTemplateEndTime:    strings.TrimSpace(mt.MeetingTemplateEndTime),
			MeetingTemplateRoom:       trimPtr(mt.MeetingTemplateRoom),
			MeetingTemplateInstructor: trimPtr(mt.MeetingTemplateInstructor),
			MeetingTemplatePosition:   i,
		})
	}
	return m
}

/* =========================================================
   RESPONSE DTO
   ========================================================= */

type MeetingTemplateResponse struct {
	MeetingTemplateID         uuid.UUID `json:"meeting_template_id"`
	MeetingTemplateCourseID   uuid.UUID `json:"meeting_template_course_id"`
	MeetingTemplateWeekday    string    `json:"meeting_template_weekday"`
	MeetingTemplateStartTime  string    `json:"meeting_template_start_time"`
	MeetingTemplateEndTime    string    `json:"meeting_template_end_time"`
	MeetingTemplateRoom       *string   `json:"meeting_template_room,omitempty"`
	MeetingTemplateInstructor *string   `json:"meeting_template_instructor,omitempty"`
}

type SemesterTemplateResponse struct {
	SemesterTemplateID                uuid.UUID                 `json:"semester_template_id"`
	SemesterTemplateSemesterLabel     string                    `json:"semester_template_semester_label"`
	SemesterTemplateAcademicYearLabel string                    `json:"semester_template_academic_year_label"`
	SemesterTemplateStartDate         string                    `json:"semester_template_start_date"`
	SemesterTemplateEndDate           string                    `json:"semester_template_end_date"`
	Meetings                          []MeetingTemplateResponse `json:"meetings"`
}

func FromModel(m *model.SemesterTemplateModel) SemesterTemplateResponse {
	out := SemesterTemplateResponse{
		SemesterTemplateID:                m.SemesterTemplateID,
		SemesterTemplateSemesterLabel:     m.SemesterTemplateSemesterLabel,
		SemesterTemplateAcademicYearLabel: m.SemesterTemplateAcademicYearLabel,
		SemesterTemplateStartDate:         time.Time(m.SemesterTemplateStartDate).Format("2006-01-02"),
		SemesterTemplateEndDate:           time.Time(m.SemesterTemplateEndDate).Format("2006-01-02"),
		Meetings:                          make([]MeetingTemplateResponse, 0, len(m.Meetings)),
	}
	for _, mt := range m.Meetings {
		out.Meetings = append(out.Meetings, MeetingTemplateResponse{
			MeetingTemplateID:         mt.MeetingTemplateID,
			MeetingTemplateCourseID:   mt.MeetingTemplateCourseID,
			MeetingTemplateWeekday:    mt.MeetingTemplateWeekday,
			MeetingTemplateStartTime:  mt.MeetingTemplateStartTime,
			MeetingTemplateEndTime:    mt.MeetingTemplateEndTime,
			MeetingTemplateRoom:       mt.MeetingTemplateRoom,
			MeetingTemplateInstructor: mt.MeetingTemplateInstructor,
		})
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
