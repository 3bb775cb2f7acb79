package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/abertram/Invisiboga/internal/telemetry"
	"github.com/abertram/Invisiboga/internal/world"
)

// counters collects every int64 sum from reader, keyed by instrument name.
func counters(t *testing.T, reader *sdkmetric.ManualReader) map[string][]metricdata.DataPoint[int64] {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string][]metricdata.DataPoint[int64])
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				out[m.Name] = append(out[m.Name], sum.DataPoints...)
			}
		}
	}
	return out
}

func total(points []metricdata.DataPoint[int64]) int64 {
	var n int64
	for _, p := range points {
		n += p.Value
	}
	return n
}

func TestSessionCountsGameEvents(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := telemetry.NewMeterProvider(nil, reader)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	cfg := DefaultConfig()
	cfg.SpacesToShowNext = 4
	// Player 1 begins and rolls a 1 onto the special space, which sends it
	// 2 ahead onto the target.
	h := newHarnessWith(t, cfg, []Option{WithMeter(telemetry.MeterFrom(mp, "game"))}, 0, 0, 0, 1)
	ctx := context.Background()

	h.building(t)
	h.lay(4)
	h.tap(world.Vec2{X: 30})
	require.Equal(t, world.SpaceSpecial, h.s.Field().Space(1).Type)
	require.True(t, h.s.RequestAdvance(ctx))

	got := counters(t, reader)
	require.Equal(t, int64(4), total(got["invisiboga.spaces.created"]))
	require.Zero(t, total(got["invisiboga.dice.rolls"]))

	require.True(t, h.s.RequestRoll(ctx))
	h.runUntil(t, func() bool { return h.s.Mode() == ModeGameOver })
	require.Equal(t, 3, h.s.Players()[0].CurrentSpace)

	got = counters(t, reader)

	rolls := got["invisiboga.dice.rolls"]
	require.Len(t, rolls, 1)
	require.Equal(t, int64(1), rolls[0].Value)
	pips, ok := rolls[0].Attributes.Value("pips")
	require.True(t, ok)
	require.Equal(t, int64(1), pips.AsInt64())

	specials := got["invisiboga.special.effects"]
	require.Len(t, specials, 1)
	require.Equal(t, int64(1), specials[0].Value)
	forward, ok := specials[0].Attributes.Value("forward")
	require.True(t, ok)
	require.True(t, forward.AsBool())

	wins := got["invisiboga.games.won"]
	require.Len(t, wins, 1)
	require.Equal(t, int64(1), wins[0].Value)
	kind, ok := wins[0].Attributes.Value("kind")
	require.True(t, ok)
	require.Equal(t, h.s.Players()[0].Kind.String(), kind.AsString())
}
