// internals/features/school/class_sessions/service/expander.go
package service

import (
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"campushub_backend/internals/features/school/class_sessions/model"
	tmodel "campushub_backend/internals/features/school/semester_templates/model"
)

var weekdayLabels = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var hhmmRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ExpandReport carries the drafts plus how many meetings were skipped for
// malformed weekday or time values.
type ExpandReport struct {
	Drafts          []model.ClassSessionModel
	SkippedMeetings int
}

// ExpandSemester enumerates every calendar date in the template's range and
// emits one draft per (meeting, matching date). It is a pure function of its
// inputs: no deduplication, no status beyond the ledger default. Malformed
// meetings are skipped with a warning, never abort the template.
func ExpandSemester(tpl *tmodel.SemesterTemplateModel, studentID uuid.UUID) ExpandReport {
	var report ExpandReport

	start := atMidnight(time.Time(tpl.SemesterTemplateStartDate))
	end := atMidnight(time.Time(tpl.SemesterTemplateEndDate))
	if end.Before(start) {
		log.Printf("[WARN] expand: template %s has end before start, nothing to expand", tpl.SemesterTemplateID)
		return report
	}

	for _, mt := range tpl.Meetings {
		wd, ok := weekdayLabels[strings.ToLower(strings.TrimSpace(mt.MeetingTemplateWeekday))]
		if !ok {
			log.Printf("[WARN] expand: meeting %s has unknown weekday %q, skipped", mt.MeetingTemplateID, mt.MeetingTemplateWeekday)
			report.SkippedMeetings++
			continue
		}
		if !hhmmRe.MatchString(mt.MeetingTemplateStartTime) || !hhmmRe.MatchString(mt.MeetingTemplateEndTime) {
			log.Printf("[WARN] expand: meeting %s has malformed time %q-%q, skipped", mt.MeetingTemplateID, mt.MeetingTemplateStartTime, mt.MeetingTemplateEndTime)
			report.SkippedMeetings++
			continue
		}

		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if d.Weekday() != wd {
				continue
			}
			report.Drafts = append(report.Drafts, model.ClassSessionModel{
				ClassSessionStudentID:         studentID,
				ClassSessionCourseID:          mt.MeetingTemplateCourseID,
				ClassSessionDate:              datatypes.Date(d),
				ClassSessionWeekday:           mt.MeetingTemplateWeekday,
				ClassSessionStartTime:         mt.MeetingTemplateStartTime,
				ClassSessionEndTime:           mt.MeetingTemplateEndTime,
				ClassSessionRoom:              mt.MeetingTemplateRoom,
				ClassSessionInstructor:        mt.MeetingTemplateInstructor,
				ClassSessionSemesterLabel:     tpl.SemesterTemplateSemesterLabel,
				ClassSessionAcademicYearLabel: tpl.SemesterTemplateAcademicYearLabel,
				ClassSessionStatus:            model.SessionStatusNotYet,
			})
		}
	}
	return report
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
