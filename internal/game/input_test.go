package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abertram/Invisiboga/internal/input"
	"github.com/abertram/Invisiboga/internal/world"
)

func TestGesturesNeedTracking(t *testing.T) {
	h := newHarness(t, DefaultConfig(), 0)
	ctx := context.Background()
	h.building(t)

	h.s.Frame(ctx, false, 0.1)
	h.tap(world.Vec2{})
	require.Equal(t, 0, h.s.Field().Len())

	h.frame()
	h.tap(world.Vec2{})
	require.Equal(t, 1, h.s.Field().Len())
}

func TestGesturesOnlyWhileBuilding(t *testing.T) {
	h := newHarness(t, DefaultConfig(), 0)
	h.s.Init(context.Background())

	// Still waiting for the marker.
	h.tap(world.Vec2{})
	require.Equal(t, 0, h.s.Field().Len())

	h.running(t, 5)
	h.tap(world.Vec2{X: 500})
	require.Equal(t, 5, h.s.Field().Len())
}

func TestTapCreatesOrToggles(t *testing.T) {
	h := newHarness(t, DefaultConfig(), 0)
	h.building(t)
	h.lay(3)

	f := h.s.Field()
	require.Equal(t, world.SpaceStart, f.Space(0).Type)
	require.Equal(t, world.SpaceNormal, f.Space(1).Type)
	require.Equal(t, world.SpaceTarget, f.Space(2).Type)

	h.tap(world.Vec2{X: 32, Y: 3})
	assert.Equal(t, world.SpaceSpecial, f.Space(1).Type)
	h.tap(world.Vec2{X: 30})
	assert.Equal(t, world.SpaceNormal, f.Space(1).Type)

	// Start and target never toggle.
	h.tap(world.Vec2{})
	h.tap(world.Vec2{X: 60})
	assert.Equal(t, world.SpaceStart, f.Space(0).Type)
	assert.Equal(t, world.SpaceTarget, f.Space(2).Type)

	// Too close to a space but outside its radius: nothing happens.
	h.tap(world.Vec2{X: 75})
	require.Equal(t, 3, f.Len())
}

func TestDragLaysSpacesAfterThreshold(t *testing.T) {
	h := newHarness(t, DefaultConfig(), 0)
	ctx := context.Background()
	h.building(t)

	drag := func(x float64, elapsed time.Duration, sq float64) {
		h.s.HandleGesture(ctx, input.Gesture{
			Kind:            input.DragActive,
			Position:        world.Vec2{X: x},
			Elapsed:         elapsed,
			SquaredDistance: sq,
		})
	}

	// Young and short: still could be a tap.
	drag(0, 100*time.Millisecond, 100)
	require.Equal(t, 0, h.s.Field().Len())

	drag(0, 300*time.Millisecond, 100)
	require.Equal(t, 1, h.s.Field().Len())

	// Still on top of the first space.
	drag(15, 400*time.Millisecond, 500)
	require.Equal(t, 1, h.s.Field().Len())

	drag(25, 100*time.Millisecond, 900)
	require.Equal(t, 2, h.s.Field().Len())
	require.Equal(t, world.SpaceTarget, h.s.Field().Space(1).Type)
}

func TestControlThresholds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpacesToShowNext = 3
	cfg.SpacesToShowRestart = 2
	h := newHarness(t, cfg, 0)
	h.building(t)

	h.lay(1)
	assert.False(t, h.rec.controls[ControlRestart])
	h.tap(world.Vec2{X: 30})
	assert.True(t, h.rec.controls[ControlRestart])
	assert.False(t, h.rec.controls[ControlNext])
	h.tap(world.Vec2{X: 60})
	assert.True(t, h.rec.controls[ControlNext])
}

func TestFieldCapacity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FieldCapacity = 5
	h := newHarness(t, cfg, 0)
	h.building(t)

	h.lay(8)
	require.Equal(t, 5, h.s.Field().Len())
	require.Equal(t, world.SpaceTarget, h.s.Field().Space(4).Type)
}
