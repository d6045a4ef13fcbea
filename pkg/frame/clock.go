// Package frame tracks per-frame timing and the periodic FPS report shown in
// the window title.
package frame

// ReportInterval is the minimum span, in seconds, between two reports.
const ReportInterval = 1.0 / 30.0

// Report is the frame rate measured over one reporting window.
type Report struct {
	FPS        float64
	MsPerFrame float64
}

// Clock turns a monotonic time source into frame deltas.
// The zero value is ready to use with its origin at time 0.
type Clock struct {
	lastFrameTime float64

	windowStart float64
	frameCount  int
}

// NewClock returns a clock whose first tick measures from 0.
func NewClock() *Clock {
	return &Clock{}
}

// Tick records a frame at now, in seconds, and returns the time since the
// previous frame. When the reporting window has run for at least
// ReportInterval, ok is true and report holds the window's frame rate.
func (c *Clock) Tick(now float64) (dt float64, report Report, ok bool) {
	if now < c.lastFrameTime {
		now = c.lastFrameTime
	}

	dt = now - c.lastFrameTime
	c.lastFrameTime = now

	c.frameCount++
	span := now - c.windowStart
	if span >= ReportInterval {
		report = Report{
			FPS:        float64(c.frameCount) / span,
			MsPerFrame: span / float64(c.frameCount) * 1000,
		}
		c.windowStart = now
		c.frameCount = 0
		ok = true
	}
	return dt, report, ok
}

// Elapsed returns the time of the last Tick.
func (c *Clock) Elapsed() float64 {
	return c.lastFrameTime
}
