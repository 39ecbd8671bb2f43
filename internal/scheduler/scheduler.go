// Package scheduler runs the unattended daily generation jobs. It drives
// the same batch entrypoint as the manual generate command, so scheduled
// and manual runs are indistinguishable in the ledger.
package scheduler

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/go-co-op/gocron"
)

// DefaultAt is the local wall-clock time of the daily run.
const DefaultAt = "08:00"

// DefaultTimezone matches the learner audience.
const DefaultTimezone = "Asia/Tokyo"

// Runner executes one generation batch.
type Runner interface {
	RunBatch(ctx context.Context, difficulty int, day time.Time) error
}

// Scheduler manages the daily generation jobs.
type Scheduler struct {
	scheduler    *gocron.Scheduler
	runner       Runner
	difficulties []int
	loc          *time.Location
}

// New creates a Scheduler that generates for the given difficulties each
// day. The timezone comes from VOCAQUIZ_TZ, defaulting to Asia/Tokyo.
func New(runner Runner, difficulties []int) (*Scheduler, error) {
	tz := os.Getenv("VOCAQUIZ_TZ")
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		scheduler:    gocron.NewScheduler(loc),
		runner:       runner,
		difficulties: difficulties,
		loc:          loc,
	}, nil
}

// Start registers the daily jobs and begins running them. The run time
// comes from VOCAQUIZ_SCHEDULE_AT (HH:MM), defaulting to 08:00.
func (s *Scheduler) Start() error {
	at := os.Getenv("VOCAQUIZ_SCHEDULE_AT")
	if at == "" {
		at = DefaultAt
	}

	for _, difficulty := range s.difficulties {
		difficulty := difficulty
		_, err := s.scheduler.Every(1).Day().At(at).
			SingletonMode().
			Do(func() { s.runOnce(difficulty) })
		if err != nil {
			return err
		}
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop terminates all scheduled jobs.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) runOnce(difficulty int) {
	day := time.Now().In(s.loc)
	log.Printf("scheduled generation: difficulty %d, date %s", difficulty, day.Format("2006-01-02"))

	if err := s.runner.RunBatch(context.Background(), difficulty, day); err != nil {
		log.Printf("scheduled generation failed for difficulty %d: %v", difficulty, err)
	}
}
