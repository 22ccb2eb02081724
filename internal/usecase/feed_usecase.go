package usecase

import (
	"context"
	"math"
	"sync"
	"time"

	"gamedex/internal/domain/entity"
	ws "gamedex/internal/infrastructure/websocket"
	"gamedex/pkg/logger"
)

type Broadcaster interface {
	BroadcastEvent(event ws.Event)
}

// MotionSample is one accelerometer reading from a device, in g-force units.
type MotionSample struct {
	X, Y, Z float64
	At      time.Time
}

// Magnitude is the total acceleration of the sample.
func (s MotionSample) Magnitude() float64 {
	return math.Sqrt(s.X*s.X + s.Y*s.Y + s.Z*s.Z)
}

// ShakeDetector recognizes the tilt-past-threshold-and-back gesture. A shake
// fires when the magnitude crosses above Threshold and then falls back under
// Rearm, at most once per Cooldown window.
type ShakeDetector struct {
	Threshold float64
	Rearm     float64
	Cooldown  time.Duration

	tilted    bool
	lastShake time.Time
}

func NewShakeDetector() *ShakeDetector {
	return &ShakeDetector{
		Threshold: 1.8,
		Rearm:     1.2,
		Cooldown:  3 * time.Second,
	}
}

// Feed processes one sample and reports whether it completed a shake.
func (d *ShakeDetector) Feed(sample MotionSample) bool {
	magnitude := sample.Magnitude()

	if !d.tilted {
		if magnitude > d.Threshold {
			d.tilted = true
		}
		return false
	}

	if magnitude >= d.Rearm {
		return false
	}
	d.tilted = false

	if !d.lastShake.IsZero() && sample.At.Sub(d.lastShake) < d.Cooldown {
		return false
	}
	d.lastShake = sample.At

	return true
}

// FeedUseCase drives the live feed: a tick stream triggers silent re-fetches
// of the headline lists, and a motion stream triggers surprise picks. Both
// streams are injected so the logic runs under test without a real clock or
// device.
type FeedUseCase struct {
	catalog  FeedCatalog
	discover *DiscoverUseCase
	hub      Broadcaster
	detector *ShakeDetector

	listLimit int

	mu      sync.RWMutex
	popular []entity.Game
	recent  []entity.Game
}

func NewFeedUseCase(catalog FeedCatalog, discover *DiscoverUseCase, hub Broadcaster) *FeedUseCase {
	return &FeedUseCase{
		catalog:   catalog,
		discover:  discover,
		hub:       hub,
		detector:  NewShakeDetector(),
		listLimit: 20,
	}
}

// Run consumes the streams until ctx is done. An initial refresh fills the
// lists before the first tick.
func (uc *FeedUseCase) Run(ctx context.Context, ticks <-chan time.Time, motion <-chan MotionSample) {
	uc.Refresh(ctx)

	for {
		select {
		case <-ticks:
			uc.Refresh(ctx)

		case sample, ok := <-motion:
			if !ok {
				motion = nil
				continue
			}
			if uc.detector.Feed(sample) {
				uc.Surprise()
			}

		case <-ctx.Done():
			return
		}
	}
}

// Refresh re-fetches the headline lists and replaces them. A failed fetch
// keeps the previous list; the feed degrades silently.
func (uc *FeedUseCase) Refresh(ctx context.Context) {
	popular, err := uc.catalog.PopularGames(ctx, uc.listLimit)
	if err != nil {
		logger.Warn("Feed popular refresh failed: %v", err)
	}

	recent, err := uc.catalog.RecentlyReleased(ctx, uc.listLimit)
	if err != nil {
		logger.Warn("Feed recent refresh failed: %v", err)
	}

	uc.mu.Lock()
	if popular != nil {
		uc.popular = popular
	}
	if recent != nil {
		uc.recent = recent
	}
	popular, recent = uc.popular, uc.recent
	uc.mu.Unlock()

	uc.hub.BroadcastEvent(ws.Event{
		Type: "feed-refresh",
		Payload: map[string]interface{}{
			"popular": popular,
			"recent":  recent,
		},
	})
}

// Surprise broadcasts one random game from the loaded lists, if any.
func (uc *FeedUseCase) Surprise() {
	uc.mu.RLock()
	popular, recent := uc.popular, uc.recent
	uc.mu.RUnlock()

	game := uc.discover.SurprisePick(popular, recent)
	if game == nil {
		return
	}

	uc.hub.BroadcastEvent(ws.Event{
		Type:    "surprise-game",
		Payload: game,
	})
}
