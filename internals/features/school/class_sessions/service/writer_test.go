package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campushub_backend/internals/apperr"
	"campushub_backend/internals/features/school/class_sessions/store"
)

func TestWriteBatchPersistsAllFreshDrafts(t *testing.T) {
	ctx := context.Background()
	st := store.NewInMemoryStore()
	w := NewLedgerWriter(st)

	report := ExpandSemester(testTemplate(mondayMeeting(uuid.New())), uuid.New())
	require.Len(t, report.Drafts, 18)

	res := w.WriteBatch(ctx, report.Drafts)
	assert.Len(t, res.Succeeded, 18)
	assert.Empty(t, res.Failed)

	for _, s := range res.Succeeded {
		assert.NotEqual(t, uuid.Nil, s.SessionID)
		assert.Equal(t, "07:00", s.StartTime)
	}
}

func TestWriteBatchReRunReportsConflictsPerIndex(t *testing.T) {
	ctx := context.Background()
	st := store.NewInMemoryStore()
	w := NewLedgerWriter(st)

	tpl := testTemplate(mondayMeeting(uuid.New()))
	studentID := uuid.New()

	first := w.WriteBatch(ctx, ExpandSemester(tpl, studentID).Drafts)
	require.Len(t, first.Succeeded, 18)

	// Idempotence: a second expansion leaves the ledger unchanged and
	// reports every draft as an expected conflict.
	second := w.WriteBatch(ctx, ExpandSemester(tpl, studentID).Drafts)
	assert.Empty(t, second.Succeeded)
	require.Len(t, second.Failed, 18)

	seen := make(map[int]bool)
	for _, f := range second.Failed {
		assert.Equal(t, apperr.KindConflict, f.Kind)
		assert.NotEmpty(t, f.Reason)
		seen[f.Index] = true
	}
	for i := 0; i < 18; i++ {
		assert.True(t, seen[i], "index %d must be reported", i)
	}

	rows, total, err := st.ListByStudent(ctx, studentID, store.ListFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 18, total)
	assert.Len(t, rows, 18)
}

func TestWriteBatchPartialFailureIsolation(t *testing.T) {
	ctx := context.Background()
	st := store.NewInMemoryStore()
	w := NewLedgerWriter(st)

	tpl := testTemplate(mondayMeeting(uuid.New()))
	studentID := uuid.New()
	drafts := ExpandSemester(tpl, studentID).Drafts

	// pre-insert one occurrence so the batch hits a single conflict
	clash := drafts[4]
	require.NoError(t, st.Insert(ctx, &clash))

	res := w.WriteBatch(ctx, drafts)
	assert.Len(t, res.Succeeded, 17)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, 4, res.Failed[0].Index)
	assert.Equal(t, apperr.KindConflict, res.Failed[0].Kind)
}

func TestWriteBatchIndependentStudentsDoNotInterfere(t *testing.T) {
	ctx := context.Background()
	st := store.NewInMemoryStore()
	w := NewLedgerWriter(st)

	tpl := testTemplate(mondayMeeting(uuid.New()))
	alpha, beta := uuid.New(), uuid.New()

	resA := w.WriteBatch(ctx, ExpandSemester(tpl, alpha).Drafts)
	resB := w.WriteBatch(ctx, ExpandSemester(tpl, beta).Drafts)
	assert.Len(t, resA.Succeeded, 18)
	assert.Len(t, resB.Succeeded, 18)
}

func TestWriteBatchEmptyInput(t *testing.T) {
	w := NewLedgerWriter(store.NewInMemoryStore())
	res := w.WriteBatch(context.Background(), nil)
	assert.Empty(t, res.Succeeded)
	assert.Empty(t, res.Failed)
}
