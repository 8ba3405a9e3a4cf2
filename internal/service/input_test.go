package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		raw     string
		want    time.Time
		wantErr bool
	}{
		{raw: "2026-03-10", want: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)},
		{raw: "2026-03-10T15:04:05Z", want: time.Date(2026, 3, 10, 15, 4, 5, 0, time.UTC)},
		{raw: "2026-03-10T15:04:05+02:00", want: time.Date(2026, 3, 10, 13, 4, 5, 0, time.UTC)},
		{raw: "2026-03-10T15:04", want: time.Date(2026, 3, 10, 15, 4, 0, 0, time.UTC)},
		{raw: " 2026-03-10 ", want: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)},
		{raw: "", wantErr: true},
		{raw: "tomorrow", wantErr: true},
		{raw: "2026-13-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseDueDate(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestReconcileCategories(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name       string
		current    []uuid.UUID
		desired    []uuid.UUID
		wantAttach []uuid.UUID
		wantDetach []uuid.UUID
	}{
		{name: "replace one", current: []uuid.UUID{a, b}, desired: []uuid.UUID{b, c}, wantAttach: []uuid.UUID{c}, wantDetach: []uuid.UUID{a}},
		{name: "clear all", current: []uuid.UUID{a, b}, desired: []uuid.UUID{}, wantDetach: []uuid.UUID{a, b}},
		{name: "from empty", desired: []uuid.UUID{a}, wantAttach: []uuid.UUID{a}},
		{name: "unchanged", current: []uuid.UUID{a, b}, desired: []uuid.UUID{b, a}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attach, detach := reconcileCategories(tt.current, tt.desired)
			assert.ElementsMatch(t, tt.wantAttach, attach)
			assert.ElementsMatch(t, tt.wantDetach, detach)
		})
	}
}

func TestDedupeIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	assert.Equal(t, []uuid.UUID{a, b}, dedupeIDs([]uuid.UUID{a, b, a, b, a}))
	assert.Empty(t, dedupeIDs(nil))
}
