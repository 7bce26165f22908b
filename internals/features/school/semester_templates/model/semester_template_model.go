// internals/features/school/semester_templates/model/semester_template_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SemesterTemplateModel is the administrator-authored definition of one
// semester: its date range plus the weekly meeting pattern below it.
type SemesterTemplateModel struct {
	// PK
	SemesterTemplateID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:semester_template_id" json:"semester_template_id"`

	// Labels (denormalized onto every expanded session)
	SemesterTemplateSemesterLabel     string `gorm:"type:varchar(40);not null;column:semester_template_semester_label" json:"semester_template_semester_label"`
	SemesterTemplateAcademicYearLabel string `gorm:"type:varchar(16);not null;column:semester_template_academic_year_label" json:"semester_template_academic_year_label"`

	// Date range, inclusive on both ends
	SemesterTemplateStartDate datatypes.Date `gorm:"type:date;not null;column:semester_template_start_date" json:"semester_template_start_date"`
	SemesterTemplateEndDate   datatypes.Date `gorm:"type:date;not null;column:semester_template_end_date" json:"semester_template_end_date"`

	// Audit & soft delete
	SemesterTemplateCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:semester_template_created_at" json:"semester_template_created_at"`
	SemesterTemplateUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:semester_template_updated_at" json:"semester_template_updated_at"`
	SemesterTemplateDeletedAt gorm.DeletedAt `gorm:"column:semester_template_deleted_at;index" json:"semester_template_deleted_at,omitempty"`

	// Ordered weekly meetings
	Meetings []MeetingTemplateModel `gorm:"foreignKey:MeetingTemplateSemesterTemplateID;references:SemesterTemplateID" json:"meetings,omitempty"`
}

func (SemesterTemplateModel) TableName() string { return "semester_templates" }
