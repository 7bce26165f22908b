// internals/features/school/class_sessions/dto/class_session_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/school/class_sessions/model"
)

/* =========================================================
   REQUEST DTOs
   ========================================================= */

type ExpandSemesterRequest struct {
	SemesterTemplateID uuid.UUID `json:"semester_template_id" validate:"required"`
	StudentID          uuid.UUID `json:"student_id" validate:"required"`
}

type OverrideRequest struct {
	Status model.SessionStatus `json:"status" validate:"required,oneof=absent excused"`
	Note   *string             `json:"note" validate:"omitempty,max=500"`
}

type ResetSemesterRequest struct {
	StudentID         uuid.UUID `json:"student_id" validate:"required"`
	SemesterLabel     string    `json:"semester_label" validate:"required,max=40"`
	AcademicYearLabel string    `json:"academic_year_label" validate:"required,max=16"`
}

/* =========================================================
   RESPONSE DTOs
   ========================================================= */

type ClassSessionResponse struct {
	ClassSessionID                uuid.UUID           `json:"class_session_id"`
	ClassSessionCourseID          uuid.UUID           `json:"class_session_course_id"`
	ClassSessionDate              string              `json:"class_session_date"`
	ClassSessionWeekday           string              `json:"class_session_weekday"`
	ClassSessionStartTime         string              `json:"class_session_start_time"`
	ClassSessionEndTime           string              `json:"class_session_end_time"`
	ClassSessionRoom              *string             `json:"class_session_room,omitempty"`
	ClassSessionInstructor        *string             `json:"class_session_instructor,omitempty"`
	ClassSessionSemesterLabel     string              `json:"class_session_semester_label"`
	ClassSessionAcademicYearLabel string              `json:"class_session_academic_year_label"`
	ClassSessionStatus            model.SessionStatus `json:"class_session_status"`
	ClassSessionCheckedInAt       *time.Time          `json:"class_session_checked_in_at,omitempty"`
	ClassSessionNote              *string             `json:"class_session_note,omitempty"`
	ClassSessionIsOpen            bool                `json:"class_session_is_open"`
}

func FromModel(m *model.ClassSessionModel) ClassSessionResponse {
	return ClassSessionResponse{
		ClassSessionID:                m.ClassSessionID,
		ClassSessionCourseID:          m.ClassSessionCourseID,
		ClassSessionDate:              time.Time(m.ClassSessionDate).Format("2006-01-02"),
		ClassSessionWeekday:           m.ClassSessionWeekday,
		ClassSessionStartTime:         m.ClassSessionStartTime,
		ClassSessionEndTime:           m.ClassSessionEndTime,
		ClassSessionRoom:              m.ClassSessionRoom,
		ClassSessionInstructor:        m.ClassSessionInstructor,
		ClassSessionSemesterLabel:     m.ClassSessionSemesterLabel,
		ClassSessionAcademicYearLabel: m.ClassSessionAcademicYearLabel,
		ClassSessionStatus:            m.ClassSessionStatus,
		ClassSessionCheckedInAt:       m.ClassSessionCheckedInAt,
		ClassSessionNote:              m.ClassSessionNote,
		ClassSessionIsOpen:            m.ClassSessionIsOpen,
	}
}

func FromModels(rows []model.ClassSessionModel) []ClassSessionResponse {
	out := make([]ClassSessionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
