package jobs

import (
	"context"
	"log"
	"time"

	"github.com/gurkanbulca/tasktracker/internal/models"
)

// StatsSource computes the dashboard counters
type StatsSource interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
}

// StatsReporter logs the dashboard counters each time it runs
type StatsReporter struct {
	source  StatsSource
	timeout time.Duration
	logf    func(format string, args ...any)
}

func NewStatsReporter(source StatsSource, timeout time.Duration) *StatsReporter {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &StatsReporter{source: source, timeout: timeout, logf: log.Printf}
}

// Run implements cron.Job
func (r *StatsReporter) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	stats, err := r.source.Stats(ctx)
	if err != nil {
		r.logf("[ERROR] stats report failed: %v", err)
		return
	}

	r.logf("[INFO] stats: users=%d tasks=%d categories=%d overdue=%d todo=%d doing=%d done=%d",
		stats.TotalUsers, stats.TotalTasks, stats.TotalCategories, stats.OverdueTasks,
		stats.TasksByStatus[models.StatusTodo],
		stats.TasksByStatus[models.StatusDoing],
		stats.TasksByStatus[models.StatusDone],
	)
}
