package feed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/shu-assistant/shu/ent"
	"github.com/shu-assistant/shu/ent/pluginexecution"
	"github.com/shu-assistant/shu/ent/pluginfeed"
)

// Scheduler turns enabled feeds into PENDING execution rows on their cron
// schedule. It reconciles its cron entries against the feed table on an
// interval, so feeds created, edited, or disabled at runtime take effect
// without a restart.
type Scheduler struct {
	client *ent.Client
	cron   *cron.Cron
	reload time.Duration

	mu      sync.Mutex
	entries map[string]cron.EntryID
	specs   map[string]string // feed id → registered schedule spec

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	log      *slog.Logger
}

// NewScheduler creates a feed scheduler.
func NewScheduler(client *ent.Client, reloadInterval time.Duration) *Scheduler {
	return &Scheduler{
		client:  client,
		cron:    cron.New(),
		reload:  reloadInterval,
		entries: make(map[string]cron.EntryID),
		specs:   make(map[string]string),
		stopCh:  make(chan struct{}),
		log:     slog.With("component", "feed_scheduler"),
	}
}

// Start performs an initial reconcile, starts the cron engine, and begins
// the periodic reconcile loop.
func (s *Scheduler) Start(ctx context.Context) error {
	if err := s.Reconcile(ctx); err != nil {
		return err
	}
	s.cron.Start()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.reload)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stopCh:
				return
			case <-ticker.C:
				if err := s.Reconcile(ctx); err != nil {
					s.log.Error("Feed reconcile failed", "error", err)
				}
			}
		}
	}()

	s.log.Info("Feed scheduler started", "reload_interval", s.reload)
	return nil
}

// Stop halts the reconcile loop and waits for in-flight cron jobs.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
	<-s.cron.Stop().Done()
	s.log.Info("Feed scheduler stopped")
}

// Reconcile aligns cron entries with the current enabled feed set:
// registers new feeds, re-registers feeds whose schedule changed, and
// removes entries for disabled or deleted feeds.
func (s *Scheduler) Reconcile(ctx context.Context) error {
	feeds, err := s.client.PluginFeed.Query().
		Where(pluginfeed.EnabledEQ(true)).
		All(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool, len(feeds))
	for _, f := range feeds {
		seen[f.ID] = true
		if spec, ok := s.specs[f.ID]; ok && spec == f.Schedule {
			continue
		}
		if id, ok := s.entries[f.ID]; ok {
			s.cron.Remove(id)
		}
		feedID := f.ID
		entryID, err := s.cron.AddFunc(f.Schedule, func() { s.fire(feedID) })
		if err != nil {
			s.log.Warn("Feed has invalid schedule, skipping",
				"feed_id", f.ID, "schedule", f.Schedule, "error", err)
			delete(s.entries, f.ID)
			delete(s.specs, f.ID)
			continue
		}
		s.entries[f.ID] = entryID
		s.specs[f.ID] = f.Schedule
	}

	for feedID, entryID := range s.entries {
		if !seen[feedID] {
			s.cron.Remove(entryID)
			delete(s.entries, feedID)
			delete(s.specs, feedID)
		}
	}
	return nil
}

// fire enqueues one PENDING execution for a due feed, unless an execution
// for the feed is already in flight. Workers enforce single-flight again at
// claim time; this check just avoids piling up rows.
func (s *Scheduler) fire(feedID string) {
	ctx := context.Background()
	log := s.log.With("feed_id", feedID)

	feed, err := s.client.PluginFeed.Get(ctx, feedID)
	if err != nil {
		if !ent.IsNotFound(err) {
			log.Error("Failed to load due feed", "error", err)
		}
		return
	}
	if !feed.Enabled {
		return
	}

	inFlight, err := s.client.PluginExecution.Query().
		Where(
			pluginexecution.ScheduleIDEQ(feedID),
			pluginexecution.StatusIn(pluginexecution.StatusPending, pluginexecution.StatusRunning),
		).
		Exist(ctx)
	if err != nil {
		log.Error("Failed to check in-flight executions", "error", err)
		return
	}
	if inFlight {
		log.Debug("Feed already has an execution in flight, skipping tick")
		return
	}

	row, err := s.client.PluginExecution.Create().
		SetID(uuid.New().String()).
		SetUserID(feed.UserID).
		SetPluginName(feed.PluginName).
		SetScheduleID(feedID).
		SetParams(cloneParams(feed.Params)).
		SetStatus(pluginexecution.StatusPending).
		Save(ctx)
	if err != nil {
		log.Error("Failed to enqueue feed execution", "error", err)
		return
	}
	log.Info("Feed execution enqueued", "execution_id", row.ID, "plugin", feed.PluginName)
}
