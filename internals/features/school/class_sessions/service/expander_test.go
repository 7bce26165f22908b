package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"campushub_backend/internals/features/school/class_sessions/model"
	tmodel "campushub_backend/internals/features/school/semester_templates/model"
)

func strPtr(s string) *string { return &s }

func testTemplate(meetings ...tmodel.MeetingTemplateModel) *tmodel.SemesterTemplateModel {
	return &tmodel.SemesterTemplateModel{
		SemesterTemplateID:                uuid.New(),
		SemesterTemplateSemesterLabel:     "Semester 1",
		SemesterTemplateAcademicYearLabel: "2024-2025",
		SemesterTemplateStartDate:         datatypes.Date(time.Date(2024, 9, 16, 0, 0, 0, 0, time.Local)),
		SemesterTemplateEndDate:           datatypes.Date(time.Date(2025, 1, 17, 0, 0, 0, 0, time.Local)),
		Meetings:                          meetings,
	}
}

func mondayMeeting(courseID uuid.UUID) tmodel.MeetingTemplateModel {
	return tmodel.MeetingTemplateModel{
		MeetingTemplateID:        uuid.New(),
		MeetingTemplateCourseID:  courseID,
		MeetingTemplateWeekday:   "Monday",
		MeetingTemplateStartTime: "07:00",
		MeetingTemplateEndTime:   "11:30",
		MeetingTemplateRoom:      strPtr("A-203"),
	}
}

func TestExpandSemesterCountsWeekdayOccurrences(t *testing.T) {
	courseID := uuid.New()
	studentID := uuid.New()
	report := ExpandSemester(testTemplate(mondayMeeting(courseID)), studentID)

	// 2024-09-16 .. 2025-01-17 contains exactly 18 Mondays.
	require.Len(t, report.Drafts, 18)
	assert.Zero(t, report.SkippedMeetings)

	for _, d := range report.Drafts {
		date := time.Time(d.ClassSessionDate)
		assert.Equal(t, time.Monday, date.Weekday())
		assert.False(t, date.Before(time.Date(2024, 9, 16, 0, 0, 0, 0, time.Local)))
		assert.False(t, date.After(time.Date(2025, 1, 17, 0, 0, 0, 0, time.Local)))
		assert.Equal(t, studentID, d.ClassSessionStudentID)
		assert.Equal(t, courseID, d.ClassSessionCourseID)
		assert.Equal(t, model.SessionStatusNotYet, d.ClassSessionStatus)
		assert.Nil(t, d.ClassSessionCheckedInAt)
		assert.False(t, d.ClassSessionIsOpen)
	}

	assert.Equal(t, "2024-09-16", time.Time(report.Drafts[0].ClassSessionDate).Format("2006-01-02"))
	assert.Equal(t, "2025-01-13", time.Time(report.Drafts[17].ClassSessionDate).Format("2006-01-02"))
}

func TestExpandSemesterIsReferentiallyTransparent(t *testing.T) {
	tpl := testTemplate(mondayMeeting(uuid.New()))
	studentID := uuid.New()

	first := ExpandSemester(tpl, studentID)
	second := ExpandSemester(tpl, studentID)
	assert.Equal(t, first, second)
}

func TestExpandSemesterSkipsMalformedMeetings(t *testing.T) {
	good := mondayMeeting(uuid.New())

	badWeekday := mondayMeeting(uuid.New())
	badWeekday.MeetingTemplateWeekday = "Mondayish"

	badTime := mondayMeeting(uuid.New())
	badTime.MeetingTemplateStartTime = "7:00" // not HH:mm

	badEnd := mondayMeeting(uuid.New())
	badEnd.MeetingTemplateEndTime = "25:00"

	report := ExpandSemester(testTemplate(badWeekday, good, badTime, badEnd), uuid.New())

	// only the valid meeting expands; the rest are skipped, not fatal
	assert.Len(t, report.Drafts, 18)
	assert.Equal(t, 3, report.SkippedMeetings)
	for _, d := range report.Drafts {
		assert.Equal(t, good.MeetingTemplateCourseID, d.ClassSessionCourseID)
	}
}

func TestExpandSemesterWeekdayLabelIsCaseInsensitive(t *testing.T) {
	m := mondayMeeting(uuid.New())
	m.MeetingTemplateWeekday = "  monday "

	report := ExpandSemester(testTemplate(m), uuid.New())
	assert.Len(t, report.Drafts, 18)
}

func TestExpandSemesterEmptyWhenRangeInverted(t *testing.T) {
	tpl := testTemplate(mondayMeeting(uuid.New()))
	tpl.SemesterTemplateStartDate, tpl.SemesterTemplateEndDate =
		tpl.SemesterTemplateEndDate, tpl.SemesterTemplateStartDate

	report := ExpandSemester(tpl, uuid.New())
	assert.Empty(t, report.Drafts)
}

func TestExpandSemesterSingleDayRange(t *testing.T) {
	tpl := testTemplate(mondayMeeting(uuid.New()))
	day := time.Date(2024, 9, 16, 0, 0, 0, 0, time.Local) // a Monday
	tpl.SemesterTemplateStartDate = datatypes.Date(day)
	tpl.SemesterTemplateEndDate = datatypes.Date(day)

	report := ExpandSemester(tpl, uuid.New())
	require.Len(t, report.Drafts, 1)
	assert.Equal(t, day, time.Time(report.Drafts[0].ClassSessionDate))
}
