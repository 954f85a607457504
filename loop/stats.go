package loop

import "time"

// Phase names a step-routine phase.
type Phase int

const (
	PhaseInput Phase = iota
	PhaseUpdate
	PhaseRender
	phaseCount
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseUpdate:
		return "update"
	case PhaseRender:
		return "render"
	default:
		return "unknown"
	}
}

// Stats summarizes driver activity since construction.
type Stats struct {
	Ticks        int64
	Steps        int64
	ClampedSteps int64
	Phases       []PhaseStats
}

// PhaseStats provides execution statistics for a single phase.
type PhaseStats struct {
	Phase          Phase
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type phaseStatsInternal struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type statsRecorder struct {
	ticks        int64
	steps        int64
	clampedSteps int64
	phases       [phaseCount]phaseStatsInternal
}

func newStatsRecorder() *statsRecorder {
	r := &statsRecorder{}
	for i := range r.phases {
		r.phases[i].minDuration = time.Duration(1<<63 - 1)
	}
	return r
}

func (r *statsRecorder) record(phase Phase, duration time.Duration) {
	stats := &r.phases[phase]
	stats.executionCount++
	stats.lastDuration = duration
	stats.totalDuration += duration

	if duration < stats.minDuration {
		stats.minDuration = duration
	}
	if duration > stats.maxDuration {
		stats.maxDuration = duration
	}
}

func (r *statsRecorder) snapshot() Stats {
	stats := Stats{
		Ticks:        r.ticks,
		Steps:        r.steps,
		ClampedSteps: r.clampedSteps,
		Phases:       make([]PhaseStats, phaseCount),
	}

	for i, internal := range r.phases {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Phases[i] = PhaseStats{
			Phase:          Phase(i),
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
