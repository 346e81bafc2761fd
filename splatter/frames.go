package splatter

import "fmt"

// FrameCount is the number of animation frames in every FrameSet.
const FrameCount = 4

// FrameSet is the fixed, ordered animation for one effect at one size.
type FrameSet struct {
	frames [FrameCount]*Bitmap
}

// NewFrameSet wraps four decoded frames. Every frame must be non-nil.
func NewFrameSet(frames [FrameCount]*Bitmap) *FrameSet {
	for i, f := range frames {
		if f == nil {
			panic(fmt.Sprintf("splatter: nil frame %d", i))
		}
	}
	return &FrameSet{frames: frames}
}

// Len is always FrameCount.
func (fs *FrameSet) Len() int { return len(fs.frames) }

// Frame returns frame i, holding the last frame once i runs past the end.
func (fs *FrameSet) Frame(i int) *Bitmap { return fs.frames[ClampFrame(i)] }

// Last returns the final frame of the animation.
func (fs *FrameSet) Last() *Bitmap { return fs.frames[FrameCount-1] }

// ClampFrame maps any frame index into [0, FrameCount). Indices past the end
// hold the last frame; negative indices hold the first.
func ClampFrame(i int) int {
	switch {
	case i < 0:
		return 0
	case i >= FrameCount:
		return FrameCount - 1
	}
	return i
}
