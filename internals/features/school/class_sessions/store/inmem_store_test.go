package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"campushub_backend/internals/features/school/class_sessions/model"
)

func testSession(studentID, courseID uuid.UUID, day time.Time) model.ClassSessionModel {
	return model.ClassSessionModel{
		ClassSessionStudentID: studentID,
		ClassSessionCourseID:  courseID,
		ClassSessionDate:      datatypes.Date(day),
		ClassSessionWeekday:   day.Weekday().String(),
		ClassSessionStartTime: "07:00",
		ClassSessionEndTime:   "11:30",
		ClassSessionStatus:    model.SessionStatusNotYet,
	}
}

func TestInsertRejectsDuplicateKey(t *testing.T) {
	ctx := context.Background()
	st := NewInMemoryStore()
	studentID, courseID := uuid.New(), uuid.New()
	day := time.Date(2024, 9, 16, 0, 0, 0, 0, time.Local)

	first := testSession(studentID, courseID, day)
	require.NoError(t, st.Insert(ctx, &first))
	assert.NotEqual(t, uuid.Nil, first.ClassSessionID)

	dup := testSession(studentID, courseID, day)
	assert.ErrorIs(t, st.Insert(ctx, &dup), ErrDuplicate)

	// A different date under the same student and course is fine.
	next := testSession(studentID, courseID, day.AddDate(0, 0, 7))
	assert.NoError(t, st.Insert(ctx, &next))
}

func TestClaimCheckInOnlyWinsOnce(t *testing.T) {
	ctx := context.Background()
	st := NewInMemoryStore()
	s := testSession(uuid.New(), uuid.New(), time.Date(2024, 9, 16, 0, 0, 0, 0, time.Local))
	require.NoError(t, st.Insert(ctx, &s))

	at := time.Date(2024, 9, 16, 7, 10, 0, 0, time.Local)
	won, err := st.ClaimCheckIn(ctx, s.ClassSessionID, model.SessionStatusPresent, at)
	require.NoError(t, err)
	assert.True(t, won)

	won, err = st.ClaimCheckIn(ctx, s.ClassSessionID, model.SessionStatusLate, at.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, won, "claim must not fire on an already-recorded row")

	got, err := st.GetByID(ctx, s.ClassSessionID)
	require.NoError(t, err)
	assert.Equal(t, model.SessionStatusPresent, got.ClassSessionStatus)
	require.NotNil(t, got.ClassSessionCheckedInAt)
	assert.True(t, got.ClassSessionCheckedInAt.Equal(at))
}

func TestGetByIDReturnsCopy(t *testing.T) {
	ctx := context.Background()
	st := NewInMemoryStore()
	s := testSession(uuid.New(), uuid.New(), time.Date(2024, 9, 16, 0, 0, 0, 0, time.Local))
	require.NoError(t, st.Insert(ctx, &s))

	got, err := st.GetByID(ctx, s.ClassSessionID)
	require.NoError(t, err)
	got.ClassSessionStatus = model.SessionStatusAbsent

	again, err := st.GetByID(ctx, s.ClassSessionID)
	require.NoError(t, err)
	assert.Equal(t, model.SessionStatusNotYet, again.ClassSessionStatus)
}

func TestListByStudentPagingAndTotal(t *testing.T) {
	ctx := context.Background()
	st := NewInMemoryStore()
	studentID, courseID := uuid.New(), uuid.New()
	day := time.Date(2024, 9, 16, 0, 0, 0, 0, time.Local)
	for i := 0; i < 5; i++ {
		s := testSession(studentID, courseID, day.AddDate(0, 0, 7*i))
		require.NoError(t, st.Insert(ctx, &s))
	}

	rows, total, err := st.ListByStudent(ctx, studentID, ListFilter{Offset: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, rows, 2)
	assert.Equal(t, day.AddDate(0, 0, 14), time.Time(rows[0].ClassSessionDate))

	rows, total, err = st.ListByStudent(ctx, studentID, ListFilter{Offset: 10, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, rows)
}

func TestListByStudentOpenOnly(t *testing.T) {
	ctx := context.Background()
	st := NewInMemoryStore()
	studentID := uuid.New()

	open := testSession(studentID, uuid.New(), time.Date(2024, 9, 16, 0, 0, 0, 0, time.Local))
	require.NoError(t, st.Insert(ctx, &open))
	closed := testSession(studentID, uuid.New(), time.Date(2024, 9, 17, 0, 0, 0, 0, time.Local))
	require.NoError(t, st.Insert(ctx, &closed))

	ok, err := st.SetOpen(ctx, open.ClassSessionID, true)
	require.NoError(t, err)
	require.True(t, ok)

	rows, total, err := st.ListByStudent(ctx, studentID, ListFilter{OpenOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, open.ClassSessionID, rows[0].ClassSessionID)
}
