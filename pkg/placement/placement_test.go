package placement

import (
	"bytes"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/jwebster45206/drama-engine/pkg/actor"
	"github.com/jwebster45206/drama-engine/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Width:        800,
		Height:       600,
		Margin:       40,
		MinDistance:  60,
		Jitter:       20,
		Attempts:     1000,
		ItemAttempts: 100,
	}
}

func newService(seed uint64, cfg Config, logger *slog.Logger) *Service {
	return New(cfg, rand.New(rand.NewPCG(seed, seed+1)), logger)
}

func TestPlaceCharacterKeepsSeparation(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		svc := newService(seed, testConfig(), nil)
		placed := []actor.Position{{X: 400, Y: 300}}

		for range 6 {
			res := svc.PlaceCharacter(placed, 0)
			require.True(t, res.OK, "seed %d", seed)
			assert.True(t, svc.OnScreen(res.Position))
			for _, p := range placed {
				assert.GreaterOrEqual(t, p.Sub(res.Position).Len(), 60.0, "seed %d", seed)
			}
			placed = append(placed, res.Position)
		}
	}
}

func TestPlaceCharacterFlagsExhaustion(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	// The arena is smaller than the separation, so nothing can ever fit.
	cfg := testConfig()
	cfg.Width, cfg.Height, cfg.Margin = 50, 50, 0
	svc := newService(7, cfg, logger)

	res := svc.PlaceCharacter([]actor.Position{{X: 25, Y: 25}}, 25)
	assert.False(t, res.OK)
	assert.Equal(t, 25, res.Attempts)
	assert.True(t, strings.Contains(buf.String(), "placement budget exhausted"))
}

func TestPushAwayMovesByMinDistance(t *testing.T) {
	svc := newService(1, testConfig(), nil)
	other := actor.Position{X: 400, Y: 300}

	got := svc.pushAway(actor.Position{X: 410, Y: 300}, []actor.Position{other})
	assert.InDelta(t, 470, got.X, 1e-9)
	assert.InDelta(t, 300, got.Y, 1e-9)

	// Coincident points still move the full distance.
	got = svc.pushAway(other, []actor.Position{other})
	assert.InDelta(t, 60, got.Sub(other).Len(), 1e-9)
}

func TestPlaceItemAnchorsNearOthers(t *testing.T) {
	svc := newService(3, testConfig(), nil)

	s := state.New(actor.Position{X: 400, Y: 300})
	owner := actor.NewCharacter("Prisoner Qawas", actor.Position{X: 100, Y: 100})
	anchor := actor.NewCharacter("Guard Lokpol", actor.Position{X: 600, Y: 400})
	require.NoError(t, s.AddCharacter(owner))
	require.NoError(t, s.AddCharacter(anchor))

	for range 20 {
		pos, ok := svc.ItemLocation(s, owner.Name)
		require.True(t, ok)
		assert.InDelta(t, 600, pos.X, 20)
		assert.InDelta(t, 400, pos.Y, 20)
	}
}

func TestPlaceItemFallsBack(t *testing.T) {
	svc := newService(5, testConfig(), nil)

	s := state.New(actor.Position{X: 400, Y: 300})
	owner := actor.NewCharacter("Prisoner Qawas", actor.Position{X: 100, Y: 100})
	dead := actor.NewCharacter("Guard Lokpol", actor.Position{X: 600, Y: 400})
	require.NoError(t, dead.RemoveStatus(actor.StatusAlive))
	require.NoError(t, s.AddCharacter(owner))
	require.NoError(t, s.AddCharacter(dead))

	res := svc.PlaceItem(s, owner.Name)
	require.True(t, res.OK)
	for _, p := range []actor.Position{owner.Position, dead.Position, s.Player.Position} {
		assert.GreaterOrEqual(t, p.Sub(res.Position).Len(), 60.0)
	}
}

func TestIntn(t *testing.T) {
	svc := newService(9, testConfig(), nil)
	assert.Equal(t, 0, svc.Intn(0))
	for range 50 {
		n := svc.Intn(2)
		assert.True(t, n == 0 || n == 1)
	}
}
