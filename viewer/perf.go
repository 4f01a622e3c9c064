package viewer

import "time"

const (
	perfWindow   = 60
	slowRender   = 2 * time.Second
	goodFPSFloor = 30
)

// perfMonitor keeps rolling windows of recent frame and render
// durations so the HUD can report averages without unbounded growth.
type perfMonitor struct {
	frames  []time.Duration
	renders []time.Duration
}

func newPerfMonitor() *perfMonitor {
	return &perfMonitor{
		frames:  make([]time.Duration, 0, perfWindow),
		renders: make([]time.Duration, 0, perfWindow),
	}
}

func (p *perfMonitor) addFrame(d time.Duration) {
	p.frames = slide(p.frames, d)
}

func (p *perfMonitor) addRender(d time.Duration) {
	p.renders = slide(p.renders, d)
}

func slide(win []time.Duration, d time.Duration) []time.Duration {
	if len(win) >= perfWindow {
		copy(win, win[1:])
		win = win[:len(win)-1]
	}
	return append(win, d)
}

func (p *perfMonitor) averageFPS() float64 {
	avg := average(p.frames)
	if avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}

func (p *perfMonitor) averageRender() time.Duration {
	return average(p.renders)
}

func average(win []time.Duration) time.Duration {
	if len(win) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range win {
		sum += d
	}
	return sum / time.Duration(len(win))
}

func (p *perfMonitor) good() bool {
	return p.averageFPS() >= goodFPSFloor
}

func (p *perfMonitor) lastRender() time.Duration {
	if len(p.renders) == 0 {
		return 0
	}
	return p.renders[len(p.renders)-1]
}
