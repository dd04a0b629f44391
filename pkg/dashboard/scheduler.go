package dashboard

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/smartfarm-io/console/pkg/client"
	"github.com/smartfarm-io/console/pkg/forecast"
	"github.com/smartfarm-io/console/pkg/models"
)

// Scheduler keeps the dashboard snapshot synchronized with the backend.
// One scheduler belongs to one view; Start and Stop bracket the view's
// visible lifetime.
type Scheduler struct {
	api client.FarmAPI
	cfg Config

	mu         sync.Mutex
	generation uint64
	current    *State
	inFlight   bool
	started    bool
	cancel     context.CancelFunc
	done       chan struct{}
	subs       map[chan State]struct{}
	history    *snapshotRing
}

// NewScheduler creates a stopped scheduler polling through api.
func NewScheduler(api client.FarmAPI, cfg Config) *Scheduler {
	cfg.setDefaults()

	return &Scheduler{
		api:     api,
		cfg:     cfg,
		subs:    make(map[chan State]struct{}),
		history: newSnapshotRing(cfg.HistorySize),
	}
}

// Start triggers an immediate refresh cycle and then schedules recurring
// cycles until Stop is called or ctx is canceled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()

	if s.started {
		s.mu.Unlock()
		return errAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	s.started = true
	s.cancel = cancel
	s.done = make(chan struct{})
	s.mu.Unlock()

	log.Printf("Starting dashboard refresh with interval %v", s.cfg.Interval)

	go s.run(ctx)

	return nil
}

// Stop cancels the recurring refresh and invalidates the generation
// token so in-flight responses are dropped silently. No publication can
// occur after Stop returns.
func (s *Scheduler) Stop() error {
	s.mu.Lock()

	if !s.started {
		s.mu.Unlock()
		return errNotStarted
	}

	s.started = false
	s.generation++ // orphan any in-flight cycle
	cancel := s.cancel
	done := s.done
	s.mu.Unlock()

	cancel()
	<-done

	return nil
}

// Current returns the latest published snapshot, if any.
func (s *Scheduler) Current() (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return State{}, false
	}

	return *s.current, true
}

// History returns up to n recent snapshots, newest first.
func (s *Scheduler) History(n int) []State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.history.Recent(n)
}

// Subscribe registers a snapshot channel. The returned function removes
// the subscription; slow subscribers drop updates rather than block the
// refresh loop.
func (s *Scheduler) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 8)

	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	unsubscribe := func() {
		s.mu.Lock()
		delete(s.subs, ch)
		s.mu.Unlock()
	}

	return ch, unsubscribe
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	// Initial refresh before the first tick.
	s.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

// refresh runs one poll cycle unless a previous cycle is still in
// flight; overlapping cycles are suppressed rather than interleaved.
func (s *Scheduler) refresh(ctx context.Context) {
	s.mu.Lock()

	if s.inFlight {
		s.mu.Unlock()
		log.Printf("Skipping dashboard refresh: previous cycle still in flight")

		return
	}

	s.inFlight = true
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	s.cycle(ctx, gen)
}

func (s *Scheduler) cycle(ctx context.Context, gen uint64) {
	stats, series, err := s.fetch(ctx)
	if err != nil {
		s.handleFailure(gen, err)
		return
	}

	s.publish(gen, State{
		Available:   true,
		Target:      s.api.BaseURL(),
		Stats:       stats,
		Forecast:    series,
		HealthTrend: forecast.HealthPoints(series),
		YieldBars:   forecast.YieldPoints(series),
		UpdatedAt:   time.Now(),
	})
}

// fetch issues the stats and forecast requests concurrently and waits
// for both.
func (s *Scheduler) fetch(ctx context.Context) (*models.StatsSnapshot, *models.ForecastSeries, error) {
	var (
		wg          sync.WaitGroup
		stats       *models.StatsSnapshot
		series      *models.ForecastSeries
		statsErr    error
		forecastErr error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()

		stats, statsErr = s.api.GetStats(ctx)
	}()

	go func() {
		defer wg.Done()

		series, forecastErr = s.api.GetForecast(ctx, s.cfg.ForecastMonths)
	}()

	wg.Wait()

	if statsErr != nil {
		return nil, nil, statsErr
	}

	if forecastErr != nil {
		return nil, nil, forecastErr
	}

	return stats, series, nil
}

// handleFailure logs the error; only a first-ever failure publishes an
// explicit unavailable state. Later failures keep the stale snapshot to
// avoid display flicker.
func (s *Scheduler) handleFailure(gen uint64, err error) {
	log.Printf("Dashboard refresh failed: %v", err)

	s.mu.Lock()
	firstCycle := s.current == nil
	s.mu.Unlock()

	if !firstCycle {
		return
	}

	s.publish(gen, State{
		Available: false,
		Target:    s.api.BaseURL(),
		UpdatedAt: time.Now(),
	})
}

// publish installs the snapshot iff its generation token still matches
// the latest scheduled generation. A late response for an older cycle
// can never overwrite a newer one.
func (s *Scheduler) publish(gen uint64, st State) {
	s.mu.Lock()

	if gen != s.generation {
		s.mu.Unlock()
		log.Printf("Dropping stale dashboard snapshot (generation %d)", gen)

		return
	}

	st.Generation = gen
	s.current = &st
	s.history.Add(st)

	for ch := range s.subs {
		select {
		case ch <- st:
		default:
		}
	}

	s.mu.Unlock()
}
