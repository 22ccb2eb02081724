package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamedex/internal/domain/entity"
	ws "gamedex/internal/infrastructure/websocket"
	"gamedex/pkg/errors"
)

type fakeCatalog struct {
	mu      sync.Mutex
	popular []entity.Game
	recent  []entity.Game
	fail    bool
	fetches int
}

func (c *fakeCatalog) PopularGames(ctx context.Context, limit int) ([]entity.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetches++
	if c.fail {
		return nil, errors.Upstream("Catalog service returned Internal Server Error", 500, nil)
	}
	return c.popular, nil
}

func (c *fakeCatalog) RecentlyReleased(ctx context.Context, limit int) ([]entity.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return nil, errors.Upstream("Catalog service returned Internal Server Error", 500, nil)
	}
	return c.recent, nil
}

type fakeBroadcaster struct {
	mu     sync.Mutex
	events []ws.Event
}

func (b *fakeBroadcaster) BroadcastEvent(event ws.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *fakeBroadcaster) Events() []ws.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]ws.Event(nil), b.events...)
}

func sampleAt(magnitude float64, at time.Time) MotionSample {
	return MotionSample{X: magnitude, At: at}
}

func TestShakeDetectorFiresOnTiltAndRelease(t *testing.T) {
	d := NewShakeDetector()
	base := time.Now()

	assert.False(t, d.Feed(sampleAt(1.0, base)))
	assert.False(t, d.Feed(sampleAt(2.5, base.Add(10*time.Millisecond))))
	assert.True(t, d.Feed(sampleAt(0.9, base.Add(20*time.Millisecond))))
}

func TestShakeDetectorNeedsRearm(t *testing.T) {
	d := NewShakeDetector()
	base := time.Now()

	assert.False(t, d.Feed(sampleAt(2.5, base)))
	// Still above the rearm level; the gesture is not complete.
	assert.False(t, d.Feed(sampleAt(1.5, base.Add(10*time.Millisecond))))
	assert.True(t, d.Feed(sampleAt(0.5, base.Add(20*time.Millisecond))))
}

func TestShakeDetectorCooldown(t *testing.T) {
	d := NewShakeDetector()
	base := time.Now()

	assert.False(t, d.Feed(sampleAt(2.5, base)))
	assert.True(t, d.Feed(sampleAt(0.5, base.Add(10*time.Millisecond))))

	// A second shake inside the cooldown window is suppressed.
	assert.False(t, d.Feed(sampleAt(2.5, base.Add(time.Second))))
	assert.False(t, d.Feed(sampleAt(0.5, base.Add(time.Second+10*time.Millisecond))))

	// After the cooldown the gesture fires again.
	assert.False(t, d.Feed(sampleAt(2.5, base.Add(5*time.Second))))
	assert.True(t, d.Feed(sampleAt(0.5, base.Add(5*time.Second+10*time.Millisecond))))
}

func TestMotionSampleMagnitude(t *testing.T) {
	s := MotionSample{X: 3, Y: 4, Z: 0}
	assert.InDelta(t, 5.0, s.Magnitude(), 1e-9)
}

func TestFeedRefreshBroadcastsLists(t *testing.T) {
	catalog := &fakeCatalog{
		popular: []entity.Game{{ID: 1, Name: "A"}},
		recent:  []entity.Game{{ID: 2, Name: "B"}},
	}
	hub := &fakeBroadcaster{}
	uc := NewFeedUseCase(catalog, NewDiscoverUseCase(&fakeSampler{}, newFakeUserRepo()), hub)

	uc.Refresh(context.Background())

	events := hub.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "feed-refresh", events[0].Type)

	encoded, err := json.Marshal(events[0].Payload)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"popular"`)
	assert.Contains(t, string(encoded), `"recent"`)
}

func TestFeedRefreshKeepsOldListsOnFailure(t *testing.T) {
	catalog := &fakeCatalog{
		popular: []entity.Game{{ID: 1}},
		recent:  []entity.Game{{ID: 2}},
	}
	hub := &fakeBroadcaster{}
	uc := NewFeedUseCase(catalog, NewDiscoverUseCase(&fakeSampler{}, newFakeUserRepo()), hub)

	uc.Refresh(context.Background())

	catalog.mu.Lock()
	catalog.fail = true
	catalog.mu.Unlock()

	uc.Refresh(context.Background())
	uc.Surprise()

	events := hub.Events()
	// Two refreshes plus a surprise: the stale lists still feed the pick.
	require.Len(t, events, 3)
	assert.Equal(t, "surprise-game", events[2].Type)
	assert.NotNil(t, events[2].Payload)
}

func TestFeedSurpriseSilentWhenEmpty(t *testing.T) {
	hub := &fakeBroadcaster{}
	uc := NewFeedUseCase(&fakeCatalog{}, NewDiscoverUseCase(&fakeSampler{}, newFakeUserRepo()), hub)

	uc.Surprise()

	assert.Empty(t, hub.Events())
}

func TestFeedRunRespondsToTicksAndMotion(t *testing.T) {
	catalog := &fakeCatalog{
		popular: []entity.Game{{ID: 1}},
		recent:  []entity.Game{{ID: 2}},
	}
	hub := &fakeBroadcaster{}
	uc := NewFeedUseCase(catalog, NewDiscoverUseCase(&fakeSampler{}, newFakeUserRepo()), hub)

	ctx, cancel := context.WithCancel(context.Background())
	ticks := make(chan time.Time)
	motion := make(chan MotionSample)
	done := make(chan struct{})

	go func() {
		uc.Run(ctx, ticks, motion)
		close(done)
	}()

	ticks <- time.Now()

	base := time.Now()
	motion <- sampleAt(2.5, base)
	motion <- sampleAt(0.5, base.Add(10*time.Millisecond))

	cancel()
	<-done

	events := hub.Events()
	// Initial refresh, tick refresh, then the shake-triggered surprise.
	require.Len(t, events, 3)
	assert.Equal(t, "feed-refresh", events[0].Type)
	assert.Equal(t, "feed-refresh", events[1].Type)
	assert.Equal(t, "surprise-game", events[2].Type)
}
