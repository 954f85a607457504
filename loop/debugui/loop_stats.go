package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/fixedstep/loop"
)

// LoopStats shows tick timing, accumulator state and per-phase durations of
// a driver, with a history graph of frame times.
type LoopStats struct {
	driver        *loop.Driver
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewLoopStats(driver *loop.Driver, historyFrames int) *LoopStats {
	return &LoopStats{
		driver:        driver,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

func (ls *LoopStats) Render() {
	if !imgui.BeginV("Loop Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	d := ls.driver
	ls.frameHistory[ls.frameIndex] = float32(d.Elapsed().Seconds() * 1000.0)
	ls.frameIndex = (ls.frameIndex + 1) % ls.historyFrames

	stats := d.Stats()

	imgui.Text(fmt.Sprintf("State: %s", d.State()))
	imgui.Text(fmt.Sprintf("Scene: %d of %d (%d entities)", d.ActiveIndex()+1, len(d.Scenes()), d.Active().Len()))
	imgui.Text(fmt.Sprintf("Step: %s (%.1f Hz)", d.Dt(), 1/d.Dt().Seconds()))
	imgui.Text(fmt.Sprintf("Lag: %s  Interpolation: %.2f", d.Lag(), d.Interpolation()))
	imgui.Text(fmt.Sprintf("Ticks: %d  Steps: %d  Dropped: %d", stats.Ticks, stats.Steps, stats.ClampedSteps))

	var avgFrameTime float32
	for _, ft := range ls.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ls.historyFrames)
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ls.frameHistory[0], int32(len(ls.frameHistory)))

	if imgui.TreeNodeStr("Phases") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PhaseStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Phase")
			imgui.TableSetupColumn("Count")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableSetupColumn("Last")
			imgui.TableHeadersRow()

			for _, phase := range stats.Phases {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(phase.Phase.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", phase.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(phase.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(phase.MaxDuration.String())
				imgui.TableNextColumn()
				imgui.Text(phase.LastDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
