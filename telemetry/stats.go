// Package telemetry aggregates per-tick census samples into windows and records them as CSV.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of ticks.
type WindowStats struct {
	WindowStart uint64 `csv:"-"`
	WindowEnd   uint64 `csv:"window_end"`
	Ticks       int    `csv:"ticks"`

	// Population at window end
	Normal  int `csv:"normal"`
	Transit int `csv:"transit"`
	Seaweed int `csv:"seaweed"`

	// Population over the window
	FishMean    float64 `csv:"fish_mean"`
	BubblesMean float64 `csv:"bubbles_mean"`
	BubblesMax  int     `csv:"bubbles_max"`

	// Events during window
	Schools       int `csv:"schools"`
	ShipArrivals  int `csv:"ship_arrivals"`
	SharkArrivals int `csv:"shark_arrivals"`
	WhaleArrivals int `csv:"whale_arrivals"`

	// Fish speed distribution sampled at window end
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
}

// ComputeSpeedStats calculates mean, std and percentiles from speed values.
func ComputeSpeedStats(values []float64) (mean, std, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0], 0, sorted[0], sorted[0]
	}
	mean, std = stat.MeanStdDev(sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return mean, std, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("window_start", s.WindowStart),
		slog.Uint64("window_end", s.WindowEnd),
		slog.Int("normal", s.Normal),
		slog.Int("transit", s.Transit),
		slog.Float64("bubbles_mean", s.BubblesMean),
		slog.Int("schools", s.Schools),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p90", s.SpeedP90),
	)
}
