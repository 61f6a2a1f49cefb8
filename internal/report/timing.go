// Package report computes traffic statistics over imported bus traces and
// renders them as standalone HTML charts.
package report

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// IntervalStats summarises the inter-arrival timing of a message sequence.
// All durations are nanoseconds.
type IntervalStats struct {
	Count  int // number of intervals, one less than message count
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	P50    float64
	P95    float64
	P99    float64
	RateHz float64 // mean message rate over the capture span
}

// Intervals returns the successive timestamp differences. Out-of-order
// timestamps produce negative-free output because the input is sorted first.
func Intervals(timestamps []uint64) []float64 {
	if len(timestamps) < 2 {
		return nil
	}
	ts := append([]uint64(nil), timestamps...)
	sort.Slice(ts, func(i, j int) bool { return ts[i] < ts[j] })

	out := make([]float64, len(ts)-1)
	for i := 1; i < len(ts); i++ {
		out[i-1] = float64(ts[i] - ts[i-1])
	}
	return out
}

// ComputeIntervalStats derives timing statistics from raw message timestamps.
// Fewer than two messages yield a zero-valued result.
func ComputeIntervalStats(timestamps []uint64) IntervalStats {
	intervals := Intervals(timestamps)
	if len(intervals) == 0 {
		return IntervalStats{}
	}
	sort.Float64s(intervals)

	s := IntervalStats{
		Count:  len(intervals),
		Mean:   stat.Mean(intervals, nil),
		Min:    intervals[0],
		Max:    intervals[len(intervals)-1],
		P50:    stat.Quantile(0.50, stat.Empirical, intervals, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, intervals, nil),
		P99:    stat.Quantile(0.99, stat.Empirical, intervals, nil),
	}
	if len(intervals) > 1 {
		s.StdDev = stat.StdDev(intervals, nil)
	}
	if s.Mean > 0 {
		s.RateHz = 1e9 / s.Mean
	}
	return s
}
