// Package loader loads frame sequences in two phases: plain text
// first, so playback can start immediately, then color data in the
// background as a progressive enhancement.
package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/san-kum/cascii/internal/cframe"
)

// ErrNoFrames indicates a directory with no frame files.
var ErrNoFrames = errors.New("loader: no frames found")

// Provider supplies frame data from some I/O mechanism (filesystem,
// HTTP, archive). CFrameBytes returns (nil, nil) when a frame has no
// color file.
type Provider interface {
	FrameFiles(ctx context.Context, dir string) ([]cframe.FrameFile, error)
	FrameText(ctx context.Context, path string) (string, error)
	CFrameBytes(ctx context.Context, path string) ([]byte, error)
}

// Phase is the loading phase of a session.
type Phase int

const (
	Idle Phase = iota
	LoadingText
	LoadingColors
	Complete
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case LoadingText:
		return "loading text"
	case LoadingColors:
		return "loading colors"
	case Complete:
		return "complete"
	}
	return "unknown"
}

// Progress tracks how far each loading phase has advanced.
type Progress struct {
	TextLoaded  int
	TextTotal   int
	ColorLoaded int
	ColorTotal  int
}

// TextPercent returns the text phase progress in [0, 100].
func (p Progress) TextPercent() int {
	if p.TextTotal == 0 {
		return 0
	}
	return p.TextLoaded * 100 / p.TextTotal
}

// ColorPercent returns the color phase progress in [0, 100].
func (p Progress) ColorPercent() int {
	if p.ColorTotal == 0 {
		return 0
	}
	return p.ColorLoaded * 100 / p.ColorTotal
}

// ColorComplete reports whether the color phase has finished.
func (p Progress) ColorComplete() bool {
	return p.ColorTotal > 0 && p.ColorLoaded >= p.ColorTotal
}

// Session accumulates frames across the two loading phases.
type Session struct {
	phase    Phase
	progress Progress
	frames   []cframe.Frame
	files    []cframe.FrameFile
}

// NewSession returns an idle session with no frames.
func NewSession() *Session {
	return &Session{}
}

// LoadText runs phase 1: list the frame files and read every text
// frame. After it returns successfully the session is playable while
// LoadColors runs.
func (s *Session) LoadText(ctx context.Context, p Provider, dir string) error {
	files, err := p.FrameFiles(ctx, dir)
	if err != nil {
		return fmt.Errorf("listing frames: %w", err)
	}
	if len(files) == 0 {
		return ErrNoFrames
	}

	s.phase = LoadingText
	s.progress = Progress{TextTotal: len(files), ColorTotal: len(files)}
	s.files = files
	s.frames = make([]cframe.Frame, 0, len(files))

	for _, f := range files {
		content, err := p.FrameText(ctx, f.Path)
		if err != nil {
			s.phase = Idle
			return fmt.Errorf("reading %s: %w", f.Name, err)
		}
		s.frames = append(s.frames, cframe.TextOnly(content))
		s.progress.TextLoaded++
	}

	s.phase = LoadingColors
	return nil
}

// LoadColors runs phase 2: decode color data for each frame loaded by
// LoadText. Frames without a color file keep their text-only form, as
// do frames whose color data fails to decode. onFrame, when non-nil,
// is invoked after each frame so callers can refresh a progress
// display.
func (s *Session) LoadColors(ctx context.Context, p Provider, onFrame func(loaded, total int)) error {
	if s.phase != LoadingColors {
		return fmt.Errorf("loader: color phase requires a completed text phase (phase is %v)", s.phase)
	}

	total := len(s.files)
	for i, f := range s.files {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, err := p.CFrameBytes(ctx, f.Path)
		if err != nil {
			return fmt.Errorf("reading color data for %s: %w", f.Name, err)
		}
		if data != nil {
			if grid, err := cframe.Parse(data); err == nil {
				s.frames[i].Grid = grid
			}
		}

		s.progress.ColorLoaded++
		if onFrame != nil {
			onFrame(i+1, total)
		}
	}

	s.phase = Complete
	return nil
}

// Phase returns the current loading phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Progress returns the loading progress counters.
func (s *Session) Progress() Progress {
	return s.progress
}

// CanPlay reports whether text loading finished and playback may
// start.
func (s *Session) CanPlay() bool {
	return len(s.frames) > 0 && (s.phase == LoadingColors || s.phase == Complete)
}

// HasAnyColor reports whether at least one frame carries color data.
func (s *Session) HasAnyColor() bool {
	for i := range s.frames {
		if s.frames[i].HasColor() {
			return true
		}
	}
	return false
}

// FrameCount returns the number of loaded frames.
func (s *Session) FrameCount() int {
	return len(s.frames)
}

// Frame returns the frame at the given index.
func (s *Session) Frame(i int) (*cframe.Frame, bool) {
	if i < 0 || i >= len(s.frames) {
		return nil, false
	}
	return &s.frames[i], true
}
