package game

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// metrics holds the session's counters, created once per session.
type metrics struct {
	spaces   metric.Int64Counter
	rolls    metric.Int64Counter
	specials metric.Int64Counter
	wins     metric.Int64Counter
}

func newMetrics(m metric.Meter) (*metrics, error) {
	spaces, err := m.Int64Counter("invisiboga.spaces.created",
		metric.WithDescription("Spaces added to the board"))
	if err != nil {
		return nil, err
	}
	rolls, err := m.Int64Counter("invisiboga.dice.rolls",
		metric.WithDescription("Die rolls"))
	if err != nil {
		return nil, err
	}
	specials, err := m.Int64Counter("invisiboga.special.effects",
		metric.WithDescription("Special space effects applied"))
	if err != nil {
		return nil, err
	}
	wins, err := m.Int64Counter("invisiboga.games.won",
		metric.WithDescription("Games that ended with a winner"))
	if err != nil {
		return nil, err
	}
	return &metrics{spaces: spaces, rolls: rolls, specials: specials, wins: wins}, nil
}

// sessionMetrics returns counters on meter, or no-op counters if meter
// rejects them.
func sessionMetrics(meter metric.Meter) *metrics {
	m, err := newMetrics(meter)
	if err != nil {
		m, _ = newMetrics(noop.Meter{})
	}
	return m
}
