// Package anim provides the playback state machine for frame
// sequences. The controller owns no timer: callers drive it by
// invoking Tick at the cadence reported by IntervalMS.
package anim

import "math"

// State is the playback state.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	}
	return "unknown"
}

// LoopMode selects the boundary policy applied by Tick at the edges of
// the playback range.
type LoopMode int

const (
	// Once clamps at the boundary and stops.
	Once LoopMode = iota
	// Loop wraps to the opposite boundary.
	Loop
	// PingPong clamps at the boundary and reverses direction.
	PingPong
)

func (m LoopMode) String() string {
	switch m {
	case Once:
		return "once"
	case Loop:
		return "loop"
	case PingPong:
		return "pingpong"
	}
	return "unknown"
}

// Direction is the playback direction.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Controller tracks which frame index is current over time under the
// configured looping, range restriction and stepping rules. It is a
// single-writer state machine: every mutating operation validates
// first and commits only on success, and concurrent use requires
// external synchronization.
type Controller struct {
	fps        int
	frameCount int
	current    int
	rangeStart float64
	rangeEnd   float64
	mode       LoopMode
	dir        Direction
	state      State
}

// New creates a stopped controller with no frames, full range and loop
// mode Loop. fps values below 1 are clamped to 1.
func New(fps int) *Controller {
	return &Controller{
		fps:        max(fps, 1),
		rangeStart: 0.0,
		rangeEnd:   1.0,
		mode:       Loop,
		dir:        Forward,
	}
}

// bounds returns the inclusive frame index bounds derived from the
// fractional range. The lower bound rounds, the upper bound ceils, so
// 100 frames with range (0.25, 0.75) play indices 25 through 75.
func (c *Controller) bounds() (lo, hi int) {
	if c.frameCount == 0 {
		return 0, 0
	}
	last := float64(c.frameCount - 1)
	lo = int(math.Round(c.rangeStart * last))
	hi = int(math.Ceil(c.rangeEnd * last))
	if hi > c.frameCount-1 {
		hi = c.frameCount - 1
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi
}

func (c *Controller) clampCurrent() {
	lo, hi := c.bounds()
	if c.current < lo {
		c.current = lo
	}
	if c.current > hi {
		c.current = hi
	}
}

// SetFrameCount sets the total number of frames. A count of zero
// forces index 0 and stops playback; otherwise the current index is
// clamped into the range bounds.
func (c *Controller) SetFrameCount(n int) {
	if n <= 0 {
		c.frameCount = 0
		c.current = 0
		c.state = Stopped
		return
	}
	c.frameCount = n
	c.clampCurrent()
}

// FrameCount returns the total number of frames.
func (c *Controller) FrameCount() int {
	return c.frameCount
}

// SetFPS sets the playback rate, clamped to at least 1.
func (c *Controller) SetFPS(fps int) {
	c.fps = max(fps, 1)
}

// FPS returns the playback rate.
func (c *Controller) FPS() int {
	return c.fps
}

// IntervalMS returns the tick cadence in milliseconds for the
// configured fps. Drive Tick from a timer at this interval.
func (c *Controller) IntervalMS() int {
	return int(math.Round(1000.0 / float64(c.fps)))
}

// Play starts playback. It is a no-op with zero frames.
func (c *Controller) Play() {
	if c.frameCount > 0 {
		c.state = Playing
	}
}

// Pause suspends playback without moving the current index.
func (c *Controller) Pause() {
	if c.state == Playing {
		c.state = Paused
	}
}

// Toggle swaps between playing and not playing.
func (c *Controller) Toggle() {
	if c.state == Playing {
		c.Pause()
	} else {
		c.Play()
	}
}

// Stop halts playback and rewinds to the start of the range.
func (c *Controller) Stop() {
	c.state = Stopped
	lo, _ := c.bounds()
	c.current = lo
}

// State returns the playback state.
func (c *Controller) State() State {
	return c.state
}

// IsPlaying reports whether playback is active.
func (c *Controller) IsPlaying() bool {
	return c.state == Playing
}

// CurrentFrame returns the current frame index.
func (c *Controller) CurrentFrame() int {
	return c.current
}

// Direction returns the playback direction.
func (c *Controller) Direction() Direction {
	return c.dir
}

// SetDirection sets the playback direction, taking effect on the next
// Tick.
func (c *Controller) SetDirection(d Direction) {
	c.dir = d
}

// LoopMode returns the boundary policy.
func (c *Controller) LoopMode() LoopMode {
	return c.mode
}

// SetLoopMode sets the boundary policy, taking effect on the next
// Tick.
func (c *Controller) SetLoopMode(m LoopMode) {
	c.mode = m
}

// Range returns the fractional playback range.
func (c *Controller) Range() (start, end float64) {
	return c.rangeStart, c.rangeEnd
}

// RangeFrames returns the inclusive frame index bounds of the range.
func (c *Controller) RangeFrames() (lo, hi int) {
	return c.bounds()
}

// SetRange restricts playback to the fractional interval
// [start, end]. It fails with ErrInvalidRange unless
// 0 <= start < end <= 1, leaving all state untouched on failure.
func (c *Controller) SetRange(start, end float64) error {
	if math.IsNaN(start) || math.IsNaN(end) || start < 0 || end > 1 || start >= end {
		return ErrInvalidRange
	}
	c.rangeStart = start
	c.rangeEnd = end
	c.clampCurrent()
	return nil
}

// Seek jumps to the given fraction of the whole sequence, clamped into
// the range bounds. It fails with ErrOutOfRange unless the fraction is
// within [0, 1], leaving all state untouched on failure.
func (c *Controller) Seek(fraction float64) error {
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return ErrOutOfRange
	}
	if c.frameCount == 0 {
		return nil
	}
	c.current = int(math.Round(fraction * float64(c.frameCount-1)))
	c.clampCurrent()
	return nil
}

// Tick advances the current index by one step in the playback
// direction, applying the loop mode's boundary policy at the range
// edges. It is a no-op unless playing. The return value reports
// whether the index changed.
func (c *Controller) Tick() bool {
	if c.state != Playing || c.frameCount == 0 {
		return false
	}
	lo, hi := c.bounds()

	// Snap back inside the range before stepping; a range change while
	// playing can strand the index outside it.
	if c.current < lo {
		c.current = lo
		return true
	}
	if c.current > hi {
		c.current = hi
		return true
	}

	if c.dir == Forward {
		if c.current < hi {
			c.current++
			return true
		}
		switch c.mode {
		case Loop:
			c.current = lo
			return true
		case Once:
			c.state = Stopped
		case PingPong:
			// The reversed step applies on the next tick.
			c.dir = Backward
		}
		return false
	}

	if c.current > lo {
		c.current--
		return true
	}
	switch c.mode {
	case Loop:
		c.current = hi
		return true
	case Once:
		c.state = Stopped
	case PingPong:
		c.dir = Forward
	}
	return false
}

// StepForward advances one frame regardless of playback state,
// clamping at the upper range bound.
func (c *Controller) StepForward() {
	if c.frameCount == 0 {
		return
	}
	c.current++
	c.clampCurrent()
}

// StepBackward retreats one frame regardless of playback state,
// clamping at the lower range bound.
func (c *Controller) StepBackward() {
	if c.frameCount == 0 {
		return
	}
	c.current--
	c.clampCurrent()
}

// Position returns the current index as a fraction of the range, in
// [0, 1].
func (c *Controller) Position() float64 {
	lo, hi := c.bounds()
	if hi <= lo {
		return 0.0
	}
	return float64(c.current-lo) / float64(hi-lo)
}
