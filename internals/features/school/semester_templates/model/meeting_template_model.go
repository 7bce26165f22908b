// internals/features/school/semester_templates/model/meeting_template_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingTemplateModel is one weekly meeting inside a semester template.
// Weekday and times are kept as authored text; the expander validates them
// and skips malformed rows instead of rejecting the whole template.
type MeetingTemplateModel struct {
	// PK
	MeetingTemplateID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:meeting_template_id" json:"meeting_template_id"`

	// FKs
	MeetingTemplateSemesterTemplateID uuid.UUID `gorm:"type:uuid;not null;column:meeting_template_semester_template_id;index:idx_meeting_template_semester" json:"meeting_template_semester_template_id"`
	MeetingTemplateCourseID           uuid.UUID `gorm:"type:uuid;not null;column:meeting_template_course_id" json:"meeting_template_course_id"`

	// Weekly slot
	MeetingTemplateWeekday   string `gorm:"type:varchar(16);not null;column:meeting_template_weekday" json:"meeting_template_weekday"`
	MeetingTemplateStartTime string `gorm:"type:varchar(5);not null;column:meeting_template_start_time" json:"meeting_template_start_time"` // HH:mm
	MeetingTemplateEndTime   string `gorm:"type:varchar(5);not null;column:meeting_template_end_time" json:"meeting_template_end_time"`     // HH:mm

	// Snapshot fields copied onto sessions at expansion time
	MeetingTemplateRoom       *string `gorm:"type:varchar(80);column:meeting_template_room" json:"meeting_template_room,omitempty"`
	MeetingTemplateInstructor *string `gorm:"type:varchar(120);column:meeting_template_instructor" json:"meeting_template_instructor,omitempty"`

	// Author ordering within the template
	MeetingTemplatePosition int `gorm:"not null;default:0;column:meeting_template_position" json:"meeting_template_position"`

	// Audit & soft delete
	MeetingTemplateCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:meeting_template_created_at" json:"meeting_template_created_at"`
	MeetingTemplateUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:meeting_template_updated_at" json:"meeting_template_updated_at"`
	MeetingTemplateDeletedAt gorm.DeletedAt `gorm:"column:meeting_template_deleted_at;index" json:"meeting_template_deleted_at,omitempty"`
}

func (MeetingTemplateModel) TableName() string { return "meeting_templates" }
