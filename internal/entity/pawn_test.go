package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abertram/Invisiboga/internal/world"
)

var epoch = time.Date(2011, 6, 17, 12, 0, 0, 0, time.UTC)

func lineField(n int) *world.Field {
	f := world.NewField(world.DefaultCapacity, world.DefaultSpaceRadius)
	for i := 0; i < n; i++ {
		f.CreateSpace(world.Vec2{X: float64(i) * 30, Y: 0})
	}
	return f
}

func TestPawnStateString(t *testing.T) {
	tests := []struct {
		state    PawnState
		expected string
	}{
		{PawnResting, "resting"},
		{PawnDelaying, "delaying"},
		{PawnPreMoving, "pre_moving"},
		{PawnMoving, "moving"},
		{PawnPostMoving, "post_moving"},
		{PawnState(99), "unknown"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, tt.state.String())
	}
}

func TestPawnPreMovingComputesVelocity(t *testing.T) {
	f := lineField(3)
	var p Pawn
	p.PlaceAt(f, 1)
	p.Aim(2)
	p.State = PawnPreMoving

	require.NoError(t, p.Step(f, epoch, 0.016, 2))
	require.Equal(t, PawnMoving, p.State)
	require.Equal(t, world.Vec2{X: 60, Y: 0}, p.Velocity)
	require.Equal(t, world.Vec2{X: 30, Y: 0}, p.Position, "velocity is applied from the next step on")
}

func TestPawnArrivesExactly(t *testing.T) {
	tests := []struct {
		name string
		dts  []float64
	}{
		{"single large step", []float64{1.7}},
		{"even steps", []float64{0.3, 0.3, 0.3, 0.3}},
		{"uneven steps", []float64{0.01, 0.5, 0.49, 0.2}},
		{"exact one second", []float64{0.5, 0.5, 0.25}},
	}

	f := world.NewField(world.DefaultCapacity, world.DefaultSpaceRadius)
	f.CreateSpace(world.Vec2{X: 0, Y: 0})
	f.CreateSpace(world.Vec2{X: 21.3, Y: -13.7})
	target := f.Space(1).Position

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Pawn
			p.PlaceAt(f, 0)
			p.Aim(1)
			p.State = PawnPreMoving
			require.NoError(t, p.Step(f, epoch, 0, 1))

			for _, dt := range tt.dts {
				require.NoError(t, p.Step(f, epoch, dt, 1))
			}

			require.Equal(t, PawnPostMoving, p.State)
			require.Equal(t, target, p.Position)
		})
	}
}

func TestPawnStaysMovingUntilArrival(t *testing.T) {
	f := lineField(2)
	var p Pawn
	p.PlaceAt(f, 0)
	p.Aim(1)
	p.State = PawnPreMoving
	require.NoError(t, p.Step(f, epoch, 0, 1))

	require.NoError(t, p.Step(f, epoch, 0.25, 1))
	require.Equal(t, PawnMoving, p.State)
	require.InDelta(t, 7.5, p.Position.X, 1e-9)

	require.NoError(t, p.Step(f, epoch, 0.5, 1))
	require.Equal(t, PawnMoving, p.State)
	require.InDelta(t, 22.5, p.Position.X, 1e-9)

	require.NoError(t, p.Step(f, epoch, 0.5, 1))
	require.Equal(t, PawnPostMoving, p.State)
	require.Equal(t, world.Vec2{X: 30, Y: 0}, p.Position)
}

func TestPawnDelay(t *testing.T) {
	f := lineField(2)
	var p Pawn
	p.PlaceAt(f, 0)
	p.Aim(1)
	p.Delay(epoch.Add(time.Second), PawnPreMoving)

	require.NoError(t, p.Step(f, epoch.Add(999*time.Millisecond), 0.1, 1))
	require.Equal(t, PawnDelaying, p.State)

	require.NoError(t, p.Step(f, epoch.Add(time.Second), 0.1, 1))
	require.Equal(t, PawnPreMoving, p.State)
}

func TestPawnIdleStates(t *testing.T) {
	f := lineField(2)
	for _, state := range []PawnState{PawnResting, PawnPostMoving} {
		p := Pawn{State: state}
		p.PlaceAt(f, 1)
		require.NoError(t, p.Step(f, epoch, 1, 1))
		require.Equal(t, state, p.State)
		require.Equal(t, world.Vec2{X: 30, Y: 0}, p.Position)
	}
}

func TestPawnErrors(t *testing.T) {
	f := lineField(2)

	t.Run("unknown state", func(t *testing.T) {
		p := Pawn{State: PawnState(42)}
		err := p.Step(f, epoch, 0.1, 1)
		require.ErrorIs(t, err, ErrUnknownState)
	})

	t.Run("hop off the field", func(t *testing.T) {
		var p Pawn
		p.PlaceAt(f, 1)
		p.Aim(9)
		p.State = PawnPreMoving
		err := p.Step(f, epoch, 0.1, 1)
		require.ErrorIs(t, err, ErrNoSpace)
		require.Equal(t, PawnPreMoving, p.State)
	})
}

func TestPawnReset(t *testing.T) {
	p := Pawn{State: PawnMoving, CurrentSpace: 3, TargetSpace: 4, Velocity: world.Vec2{X: 1}}
	p.Reset()
	require.Equal(t, Pawn{State: PawnResting}, p)
}
