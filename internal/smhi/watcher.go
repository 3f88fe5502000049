package smhi

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// Watcher polls the approved-time endpoint and reports when SMHI publishes a
// new model run. It remembers only the reference time of the last run seen,
// never a payload.
type Watcher struct {
	scheduler *gocron.Scheduler
	client    *Client
	interval  time.Duration
	onRun     func(ModelRun)

	lastReference time.Time
}

// NewWatcher creates a Watcher calling onRun for every newly published model
// run. onRun may be nil, in which case new runs are only logged.
func NewWatcher(client *Client, interval time.Duration, onRun func(ModelRun)) *Watcher {
	s := gocron.NewScheduler(time.UTC)
	return &Watcher{
		scheduler: s,
		client:    client,
		interval:  interval,
		onRun:     onRun,
	}
}

// Start schedules the polling job and starts the underlying scheduler.
func (w *Watcher) Start() error {
	minutes := int(w.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := w.scheduler.Every(minutes).Minutes().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		run, err := w.client.ApprovedTime(ctx)
		if err != nil {
			log.Printf("watcher: approved time poll failed: %v", err)
			return
		}

		if !run.Reference.After(w.lastReference) {
			return
		}
		w.lastReference = run.Reference

		log.Printf("watcher: new model run, reference %s approved %s",
			run.Reference.Format(time.RFC3339), run.Approved.Format(time.RFC3339))
		if w.onRun != nil {
			w.onRun(run)
		}
	})
	if err != nil {
		return err
	}

	w.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future polls.
func (w *Watcher) Stop() {
	if w.scheduler != nil {
		w.scheduler.Stop()
	}
}
