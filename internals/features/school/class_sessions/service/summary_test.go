package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"campushub_backend/internals/apperr"
	"campushub_backend/internals/features/school/class_sessions/model"
	"campushub_backend/internals/features/school/class_sessions/store"
)

func summaryRow(courseID uuid.UUID, semester, year string, status model.SessionStatus) model.ClassSessionModel {
	return model.ClassSessionModel{
		ClassSessionID:                uuid.New(),
		ClassSessionStudentID:         uuid.New(),
		ClassSessionCourseID:          courseID,
		ClassSessionDate:              datatypes.Date(time.Date(2024, 9, 16, 0, 0, 0, 0, time.Local)),
		ClassSessionWeekday:           "Monday",
		ClassSessionStartTime:         "07:00",
		ClassSessionEndTime:           "11:30",
		ClassSessionSemesterLabel:     semester,
		ClassSessionAcademicYearLabel: year,
		ClassSessionStatus:            status,
	}
}

func courseTotals(cs CourseSummary) int {
	return cs.PresentCount + cs.LateCount + cs.AbsentCount + cs.ExcusedCount + cs.NotYetCount
}

func TestBuildSummariesTotalsInvariant(t *testing.T) {
	courseID := uuid.New()
	rows := []model.ClassSessionModel{
		summaryRow(courseID, "Semester 1", "2024-2025", model.SessionStatusPresent),
		summaryRow(courseID, "Semester 1", "2024-2025", model.SessionStatusPresent),
		summaryRow(courseID, "Semester 1", "2024-2025", model.SessionStatusLate),
		summaryRow(courseID, "Semester 1", "2024-2025", model.SessionStatusAbsent),
		summaryRow(courseID, "Semester 1", "2024-2025", model.SessionStatusExcused),
		summaryRow(courseID, "Semester 1", "2024-2025", model.SessionStatusNotYet),
		summaryRow(courseID, "Semester 1", "2024-2025", model.SessionStatusNotYet),
	}

	out := BuildSummaries(rows, nil)
	require.Len(t, out, 1)
	require.Len(t, out[0].Courses, 1)

	cs := out[0].Courses[0]
	assert.Equal(t, 7, cs.TotalSessions)
	assert.Equal(t, cs.TotalSessions, courseTotals(cs))
	assert.Equal(t, 2, cs.PresentCount)
	assert.Equal(t, 1, cs.LateCount)
	assert.Equal(t, 1, cs.AbsentCount)
	assert.Equal(t, 1, cs.ExcusedCount)
	assert.Equal(t, 2, cs.NotYetCount)
}

func TestBuildSummariesSemesterOrdering(t *testing.T) {
	rows := []model.ClassSessionModel{
		summaryRow(uuid.New(), "Semester 2", "2024-2025", model.SessionStatusNotYet),
		summaryRow(uuid.New(), "Semester 1", "2024-2025", model.SessionStatusNotYet),
		summaryRow(uuid.New(), "Winter Intensive", "2024-2025", model.SessionStatusNotYet), // unknown label
		summaryRow(uuid.New(), "Tet Semester", "2024-2025", model.SessionStatusNotYet),
		summaryRow(uuid.New(), "Summer Semester", "2024-2025", model.SessionStatusNotYet),
		summaryRow(uuid.New(), "Semester 2", "2023-2024", model.SessionStatusNotYet),
	}

	out := BuildSummaries(rows, nil)
	require.Len(t, out, 6)

	titles := make([]string, 0, len(out))
	for _, s := range out {
		titles = append(titles, s.SemesterTitle)
	}
	assert.Equal(t, []string{
		"Semester 1 (2024-2025)",
		"Tet Semester (2024-2025)",
		"Semester 2 (2024-2025)",
		"Summer Semester (2024-2025)",
		"Winter Intensive (2024-2025)", // unrecognized labels sort last
		"Semester 2 (2023-2024)",       // older academic year after newer
	}, titles)
}

func TestBuildSummariesUnknownCourseKeptInTotals(t *testing.T) {
	known := uuid.New()
	dangling := uuid.New()
	rows := []model.ClassSessionModel{
		summaryRow(known, "Semester 1", "2024-2025", model.SessionStatusPresent),
		summaryRow(dangling, "Semester 1", "2024-2025", model.SessionStatusAbsent),
		summaryRow(dangling, "Semester 1", "2024-2025", model.SessionStatusNotYet),
	}
	courses := map[uuid.UUID]store.CourseInfo{
		known: {CourseID: known, CourseCode: "MAE101", CourseName: "Mathematics for Engineering"},
	}

	out := BuildSummaries(rows, courses)
	require.Len(t, out, 1)
	require.Len(t, out[0].Courses, 2)

	var grandTotal int
	for _, cs := range out[0].Courses {
		grandTotal += cs.TotalSessions
		assert.Equal(t, cs.TotalSessions, courseTotals(cs))
		if cs.CourseID == dangling {
			assert.Equal(t, UnknownCourseLabel, cs.CourseName)
			assert.Equal(t, 2, cs.TotalSessions)
		} else {
			assert.Equal(t, "Mathematics for Engineering", cs.CourseName)
		}
	}
	assert.Equal(t, 3, grandTotal, "dangling refs must not drop rows")
}

func TestSummarizeResolvesCoursesThroughResolver(t *testing.T) {
	ctx := context.Background()
	st := store.NewInMemoryStore()
	studentID := uuid.New()
	courseID := uuid.New()

	row := summaryRow(courseID, "Semester 1", "2024-2025", model.SessionStatusPresent)
	row.ClassSessionStudentID = studentID
	require.NoError(t, st.Insert(ctx, &row))

	svc := NewSummaryService(st, store.StaticCourseResolver{
		courseID: {CourseID: courseID, CourseCode: "PRF192", CourseName: "Programming Fundamentals"},
	})

	out, err := svc.Summarize(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0].Courses, 1)
	assert.Equal(t, "PRF192", out[0].Courses[0].CourseCode)
}

func TestListDetailsRejectsUnknownStatus(t *testing.T) {
	svc := NewSummaryService(store.NewInMemoryStore(), nil)
	_, err := svc.ListDetails(context.Background(), uuid.New(), uuid.New(), []model.SessionStatus{"skipped"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestListDetailsFiltersByCourseAndStatus(t *testing.T) {
	ctx := context.Background()
	st := store.NewInMemoryStore()
	studentID := uuid.New()
	courseID := uuid.New()

	mk := func(day int, status model.SessionStatus, course uuid.UUID) {
		row := summaryRow(course, "Semester 1", "2024-2025", status)
		row.ClassSessionStudentID = studentID
		row.ClassSessionDate = datatypes.Date(time.Date(2024, 9, day, 0, 0, 0, 0, time.Local))
		require.NoError(t, st.Insert(ctx, &row))
	}
	mk(16, model.SessionStatusAbsent, courseID)
	mk(23, model.SessionStatusPresent, courseID)
	mk(30, model.SessionStatusExcused, courseID)
	mk(17, model.SessionStatusAbsent, uuid.New()) // other course

	svc := NewSummaryService(st, nil)
	rows, err := svc.ListDetails(ctx, studentID, courseID,
		[]model.SessionStatus{model.SessionStatusAbsent, model.SessionStatusExcused})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, courseID, r.ClassSessionCourseID)
		assert.Contains(t, []model.SessionStatus{model.SessionStatusAbsent, model.SessionStatusExcused}, r.ClassSessionStatus)
	}
}
