package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurkanbulca/tasktracker/internal/models"
)

type fakeStats struct {
	stats *models.DashboardStats
	err   error
}

func (f fakeStats) Stats(context.Context) (*models.DashboardStats, error) {
	return f.stats, f.err
}

type logSink struct {
	mu    sync.Mutex
	lines []string
}

func (l *logSink) logf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *logSink) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

func TestStatsReporter_Run(t *testing.T) {
	tests := []struct {
		name   string
		source fakeStats
		want   string
	}{
		{
			name: "logs counters",
			source: fakeStats{stats: &models.DashboardStats{
				TotalUsers:      3,
				TotalTasks:      5,
				TotalCategories: 2,
				OverdueTasks:    1,
				TasksByStatus:   map[models.Status]int{models.StatusTodo: 4, models.StatusDone: 1},
			}},
			want: "[INFO] stats: users=3 tasks=5 categories=2 overdue=1 todo=4 doing=0 done=1",
		},
		{
			name:   "logs failures",
			source: fakeStats{err: errors.New("database is down")},
			want:   "[ERROR] stats report failed: database is down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &logSink{}
			r := NewStatsReporter(tt.source, time.Second)
			r.logf = sink.logf

			r.Run()
			assert.Equal(t, []string{tt.want}, sink.snapshot())
		})
	}
}

func TestScheduler_RunsReporter(t *testing.T) {
	sink := &logSink{}
	r := NewStatsReporter(fakeStats{stats: &models.DashboardStats{TasksByStatus: map[models.Status]int{}}}, time.Second)
	r.logf = sink.logf

	s := NewScheduler(time.UTC)
	_, err := s.Schedule("@every 1s", r)
	require.NoError(t, err)

	s.Start()
	assert.Eventually(t, func() bool { return len(sink.snapshot()) > 0 }, 5*time.Second, 50*time.Millisecond)
	s.Stop()
}

func TestScheduler_InvalidSpec(t *testing.T) {
	s := NewScheduler(nil)
	_, err := s.Schedule("not a spec", NewStatsReporter(fakeStats{}, 0))
	assert.Error(t, err)
}
