// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: weather/refresher.go
// Summary: Periodic refresh of every visible card from the weather
//          provider.

package weather

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/stratuswx/stratus/board"
)

// CardSink is the slice of the board the refresher drives.
type CardSink interface {
	Order() []string
	RefreshCard(id string, data board.CardData)
}

// Refresher periodically pulls a fresh observation for each visible
// card and feeds it to the board.
type Refresher struct {
	scheduler *gocron.Scheduler
	provider  Provider
	sink      CardSink
	interval  time.Duration
	timeout   time.Duration

	// OnObservation, when set, receives every successful observation
	// before the board refresh. The rendering surface uses it to keep
	// the displayed temperature and details current.
	OnObservation func(Observation)
}

// NewRefresher creates a refresher ticking at the given interval.
func NewRefresher(provider Provider, sink CardSink, interval time.Duration) *Refresher {
	return &Refresher{
		scheduler: gocron.NewScheduler(time.UTC),
		provider:  provider,
		sink:      sink,
		interval:  interval,
		timeout:   30 * time.Second,
	}
}

// Start schedules the periodic refresh job.
func (r *Refresher) Start() error {
	secs := int(r.interval.Seconds())
	if secs <= 0 {
		secs = 600
	}
	if _, err := r.scheduler.Every(secs).Seconds().Do(r.RefreshAll); err != nil {
		return err
	}
	r.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler; a refresh pass in flight finishes.
func (r *Refresher) Stop() {
	r.scheduler.Stop()
}

// RefreshAll runs one refresh pass over every visible card. Failed
// cities are logged and skipped; their cards keep the previous data.
func (r *Refresher) RefreshAll() {
	ids := r.sink.Order()
	if len(ids) == 0 {
		return
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		id := id
		wg.Add(1)
		go func() {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
			defer cancel()

			obs, err := r.provider.Observe(ctx, id)
			if err != nil {
				log.Printf("Weather: refresh failed for %s: %v", id, err)
				return
			}
			if r.OnObservation != nil {
				r.OnObservation(obs)
			}
			data := obs.CardData()
			// The board keys cards by normalized id and keeps its own
			// display spelling; don't overwrite it with the id.
			data.City = ""
			data.Country = ""
			r.sink.RefreshCard(id, data)
		}()
	}
	wg.Wait()
	log.Printf("Weather: refreshed %d cards", len(ids))
}
