package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/fixedstep/loop"
)

type Report struct {
	// Configuration
	Duration       time.Duration
	Entities       int
	FPS            int
	Refresh        time.Duration
	MaxSteps       int
	GCPauseMetrics bool

	// Results
	TotalTime     time.Duration
	Stats         loop.Stats
	ExpectedSteps int64
	TrackerUpdates  int64
	TrackerRenders  int64
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Loop Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Entities:** {{.Entities}}
- **Tick Rate:** {{.FPS}} steps/s
- **Refresh Interval:** {{.Refresh}}
- **Max Steps per Tick:** {{if .MaxSteps}}{{.MaxSteps}}{{else}}unbounded{{end}}

## Loop Results
- **Total Time:** {{.TotalTime}}
- **Ticks:** {{.Stats.Ticks}} ({{rate .Stats.Ticks .TotalTime}}/s)
- **Steps:** {{.Stats.Steps}} of {{.ExpectedSteps}} expected ({{rate .Stats.Steps .TotalTime}}/s)
- **Dropped Steps:** {{.Stats.ClampedSteps}}
- **Tracker Entity:** {{.TrackerUpdates}} updates, {{.TrackerRenders}} renders

## Phase Timing
| Phase | Count | Avg | Min | Max |
|---|---|---|---|---|
{{- range .Stats.Phases}}
| {{.Phase}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}
`

	fm := template.FuncMap{
		"rate": func(n int64, d time.Duration) string {
			if d <= 0 {
				return "n/a"
			}
			return fmt.Sprintf("%.1f", float64(n)/d.Seconds())
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
