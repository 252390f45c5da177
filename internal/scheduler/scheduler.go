// Package scheduler runs the console's periodic maintenance: refreshing the
// cached dashboard counters so the first request after a quiet period is not
// the one paying for eight COUNT queries, and pruning activity-feed rows past
// the retention window.
package scheduler

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/wakili/console/internal/cache"
	"github.com/wakili/console/internal/handler"
	"github.com/wakili/console/internal/model"
	"gorm.io/gorm"
)

type StatsScheduler struct {
	db        *gorm.DB
	cache     *cache.RedisCache
	interval  time.Duration
	cacheTTL  time.Duration
	retention time.Duration

	mu       sync.Mutex
	running  bool
	lastRun  time.Time
	runCount int64
	stopChan chan struct{}
}

type Config struct {
	Interval  time.Duration
	CacheTTL  time.Duration
	Retention time.Duration
}

func NewStatsScheduler(db *gorm.DB, redisCache *cache.RedisCache, cfg Config) *StatsScheduler {
	if cfg.Interval == 0 {
		cfg.Interval = time.Minute
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 30 * time.Second
	}
	return &StatsScheduler{
		db:        db,
		cache:     redisCache,
		interval:  cfg.Interval,
		cacheTTL:  cfg.CacheTTL,
		retention: cfg.Retention,
		stopChan:  make(chan struct{}),
	}
}

func (s *StatsScheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.tick(ctx)

	for {
		select {
		case <-ticker.C:
			s.tick(ctx)
		case <-s.stopChan:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *StatsScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	close(s.stopChan)
}

func (s *StatsScheduler) GetStatus() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]interface{}{
		"enabled":  s.running,
		"interval": s.interval.String(),
		"lastRun":  s.lastRun,
		"runCount": s.runCount,
	}
}

func (s *StatsScheduler) tick(ctx context.Context) {
	s.refreshStats(ctx)
	s.pruneActivities()

	s.mu.Lock()
	s.lastRun = time.Now()
	s.runCount++
	s.mu.Unlock()
}

func (s *StatsScheduler) refreshStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	stats := handler.CountStats(s.db)
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cache.StatsKey, raw, s.cacheTTL); err != nil {
		log.Printf("[Scheduler] Warning: failed to refresh stats cache: %v", err)
	}
}

func (s *StatsScheduler) pruneActivities() {
	if s.retention <= 0 {
		return
	}
	cutoff := time.Now().Add(-s.retention)
	result := s.db.Where("created_at < ?", cutoff).Delete(&model.Activity{})
	if result.Error != nil {
		log.Printf("[Scheduler] Warning: failed to prune activities: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("[Scheduler] Pruned %d activity rows older than %s", result.RowsAffected, cutoff.Format(time.RFC3339))
	}
}
