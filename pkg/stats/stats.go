// Package stats collects frame timing statistics for the renderer.
package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/samber/lo"
)

// DefaultHistory is the number of recent frames kept for rolling figures.
const DefaultHistory = 60

// FrameStats records how long each frame took.
type FrameStats struct {
	history    []time.Duration
	maxSamples int

	frames int
	total  time.Duration
	last   time.Duration
}

// New creates a FrameStats keeping the last maxSamples frame times.
func New(maxSamples int) *FrameStats {
	if maxSamples <= 0 {
		maxSamples = DefaultHistory
	}
	return &FrameStats{
		maxSamples: maxSamples,
		history:    make([]time.Duration, 0, maxSamples),
	}
}

// Record adds one frame time.
func (s *FrameStats) Record(d time.Duration) {
	s.history = append(s.history, d)
	if len(s.history) > s.maxSamples {
		s.history = s.history[1:]
	}
	s.frames++
	s.total += d
	s.last = d
}

// Frames returns the number of recorded frames.
func (s *FrameStats) Frames() int { return s.frames }

// Last returns the most recent frame time.
func (s *FrameStats) Last() time.Duration { return s.last }

// Average returns the mean frame time over every recorded frame.
func (s *FrameStats) Average() time.Duration {
	if s.frames == 0 {
		return 0
	}
	return s.total / time.Duration(s.frames)
}

// AverageFPS returns the frame rate matching Average, truncated to whole frames.
func (s *FrameStats) AverageFPS() int {
	avg := s.Average().Microseconds()
	if avg == 0 {
		return 0
	}
	return int(1_000_000 / avg)
}

// RecentAverage returns the mean frame time over the rolling history.
func (s *FrameStats) RecentAverage() time.Duration {
	if len(s.history) == 0 {
		return 0
	}
	return lo.Sum(s.history) / time.Duration(len(s.history))
}

// Slowest returns the longest frame time in the rolling history.
func (s *FrameStats) Slowest() time.Duration {
	return lo.Max(s.history)
}

// FPS converts a frame time to frames per second.
func FPS(d time.Duration) float64 {
	us := d.Microseconds()
	if us <= 0 {
		return 0
	}
	return 1e6 / float64(us)
}

// Summary describes a finished run.
type Summary struct {
	Width, Height int
	Points        int
}

// WriteSummary prints the end-of-run report.
func (s *FrameStats) WriteSummary(w io.Writer, sum Summary) error {
	_, err := fmt.Fprintf(w,
		"Width: %d | Height: %d\nFrame Average: %dus\nFPS Average: %d\nRecent Frame Average: %dus\nSlowest Recent Frame: %dus\nPoints: %d\n",
		sum.Width, sum.Height,
		s.Average().Microseconds(),
		s.AverageFPS(),
		s.RecentAverage().Microseconds(),
		s.Slowest().Microseconds(),
		sum.Points,
	)
	return err
}
