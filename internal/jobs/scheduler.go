// Package jobs runs periodic background work.
package jobs

import (
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler wraps cron-based jobs
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler creates a scheduler whose specs accept an optional seconds field
func NewScheduler(loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithParser(cron.NewParser(
				cron.SecondOptional|cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow|cron.Descriptor,
			)),
		),
	}
}

// Schedule registers job under a cron spec such as "0 */15 * * * *" or "@every 1h"
func (s *Scheduler) Schedule(spec string, job cron.Job) (cron.EntryID, error) {
	return s.cron.AddJob(spec, job)
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
