// internals/features/school/class_sessions/model/class_session_model.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/*
=========================================================

	Enum (mirror of class_session_status_enum in DB)
	=========================================================
*/
type SessionStatus string

const (
	SessionStatusNotYet  SessionStatus = "not_yet"
	SessionStatusPresent SessionStatus = "present"
	SessionStatusLate    SessionStatus = "late"
	SessionStatusAbsent  SessionStatus = "absent"
	SessionStatusExcused SessionStatus = "excused"
)

// Valid returns true when the status is a supported value.
func (s SessionStatus) Valid() bool {
	switch s {
	case SessionStatusNotYet, SessionStatusPresent, SessionStatusLate,
		SessionStatusAbsent, SessionStatusExcused:
		return true
	default:
		return false
	}
}

// Recorded reports whether the check-in path may no longer touch the row.
// present/late come from check-in itself; absent/excused come from a staff
// override. Only not_yet is claimable.
func (s SessionStatus) Recorded() bool {
	return s != SessionStatusNotYet
}

/*
=========================================================

	Model
	=========================================================
*/

// ClassSessionModel is one ledger row: a concrete dated occurrence of a
// recurring course meeting for one student. Room/instructor/times are
// snapshots taken at expansion time and are never re-joined.
type ClassSessionModel struct {
	// PK
	ClassSessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_session_id" json:"class_session_id"`

	// Identity of the enrollment being tracked; unique per calendar date
	ClassSessionStudentID uuid.UUID `gorm:"type:uuid;not null;column:class_session_student_id;uniqueIndex:uq_class_session_student_course_date;index:idx_class_session_student" json:"class_session_student_id"`
	ClassSessionCourseID  uuid.UUID `gorm:"type:uuid;not null;column:class_session_course_id;uniqueIndex:uq_class_session_student_course_date" json:"class_session_course_id"`

	// Occurrence
	ClassSessionDate      datatypes.Date `gorm:"type:date;not null;column:class_session_date;uniqueIndex:uq_class_session_student_course_date" json:"class_session_date"`
	ClassSessionWeekday   string         `gorm:"type:varchar(16);not null;column:class_session_weekday" json:"class_session_weekday"`
	ClassSessionStartTime string         `gorm:"type:varchar(5);not null;column:class_session_start_time" json:"class_session_start_time"` // HH:mm
	ClassSessionEndTime   string         `gorm:"type:varchar(5);not null;column:class_session_end_time" json:"class_session_end_time"`     // HH:mm

	// Snapshot fields (historical fidelity even if the template changes)
	ClassSessionRoom       *string `gorm:"type:varchar(80);column:class_session_room" json:"class_session_room,omitempty"`
	ClassSessionInstructor *string `gorm:"type:varchar(120);column:class_session_instructor" json:"class_session_instructor,omitempty"`

	// Denormalized for aggregation
	ClassSessionSemesterLabel     string `gorm:"type:varchar(40);not null;column:class_session_semester_label;index:idx_class_session_semester" json:"class_session_semester_label"`
	ClassSessionAcademicYearLabel string `gorm:"type:varchar(16);not null;column:class_session_academic_year_label;index:idx_class_session_semester" json:"class_session_academic_year_label"`

	// Attendance state machine
	ClassSessionStatus      SessionStatus `gorm:"type:varchar(16);not null;default:'not_yet';column:class_session_status;index:idx_class_session_status" json:"class_session_status"`
	ClassSessionCheckedInAt *time.Time    `gorm:"type:timestamptz;column:class_session_checked_in_at" json:"class_session_checked_in_at,omitempty"`
	ClassSessionNote        *string       `gorm:"type:text;column:class_session_note" json:"class_session_note,omitempty"`

	// Staff-controlled gate; check-in is rejected while false
	ClassSessionIsOpen bool `gorm:"not null;default:false;column:class_session_is_open" json:"class_session_is_open"`

	// Audit. No soft delete: rows leave the ledger only through the
	// administrative semester reset, and the uniqueness invariant must not
	// be shadowed by dead rows.
	ClassSessionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:class_session_created_at" json:"class_session_created_at"`
	ClassSessionUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:class_session_updated_at" json:"class_session_updated_at"`
}

func (ClassSessionModel) TableName() string { return "class_sessions" }

// StartsAt combines the session date with its HH:mm start in local time.
func (m *ClassSessionModel) StartsAt() (time.Time, error) {
	var hh, mm int
	if _, err := fmt.Sscanf(m.ClassSessionStartTime, "%2d:%2d", &hh, &mm); err != nil {
		return time.Time{}, fmt.Errorf("malformed start time %q: %w", m.ClassSessionStartTime, err)
	}
	d := time.Time(m.ClassSessionDate)
	return time.Date(d.Year(), d.Month(), d.Day(), hh, mm, 0, 0, time.Local), nil
}
