package splatter

import (
	"image"
	"math"
	"sync"
)

// Splatter pairs the Regular and Large animations of one effect.
type Splatter struct {
	ID      EffectID
	regular *FrameSet
	large   *FrameSet
}

// Frames returns the animation for size; unknown sizes get Regular.
func (s *Splatter) Frames(size Size) *FrameSet {
	if size == Large {
		return s.large
	}
	return s.regular
}

// Frame returns the bitmap for frame at size, holding the last frame for
// indices past the end.
func (s *Splatter) Frame(frame int, size Size) *Bitmap {
	return s.Frames(size).Frame(frame)
}

// At is Anchor for this splatter.
func (s *Splatter) At(x, y float64, size Size) image.Point {
	return Anchor(x, y, size)
}

// Anchor returns the top-left pixel at which a frame of the given size must
// be drawn to appear centered on (x, y). Coordinates are floored, so
// fractional positions never round up into the next pixel. Results saturate
// at the int range; NaN maps to 0.
func Anchor(x, y float64, size Size) image.Point {
	half := float64(size.HalfExtent())
	return image.Point{X: floorPixel(x - half), Y: floorPixel(y - half)}
}

func floorPixel(v float64) int {
	f := math.Floor(v)
	switch {
	case math.IsNaN(f):
		return 0
	case f >= float64(math.MaxInt):
		return math.MaxInt
	case f <= float64(math.MinInt):
		return math.MinInt
	}
	return int(f)
}

// Registry composes the cached FrameSets into one Splatter per effect. Each
// entry is built on first lookup, independently of the others.
type Registry struct {
	cache     *Cache
	splatters [EffectCount]func() *Splatter
}

// NewRegistry creates a registry backed by cache.
func NewRegistry(cache *Cache) *Registry {
	r := &Registry{cache: cache}
	for id := range r.splatters {
		effect := EffectID(id)
		r.splatters[id] = sync.OnceValue(func() *Splatter {
			return &Splatter{
				ID:      effect,
				regular: cache.Get(Key{Effect: effect, Size: Regular}),
				large:   cache.Get(Key{Effect: effect, Size: Large}),
			}
		})
	}
	return r
}

// Cache returns the FrameSet cache backing r.
func (r *Registry) Cache() *Cache { return r.cache }

// Splatter returns the entry for id. Ids outside [0, EffectCount) fall back
// to DefaultEffect; new effects must be added to the asset table, not relied
// on through this fallback.
func (r *Registry) Splatter(id EffectID) *Splatter {
	return r.splatters[id.Normalize()]()
}

// FrameOf resolves one bitmap without computing an anchor.
func (r *Registry) FrameOf(id EffectID, frame int, size Size) *Bitmap {
	return r.Splatter(id).Frame(frame, size)
}

// Resolve returns the bitmap to draw for (id, frame, size) and the top-left
// point that centers it on (x, y). After the first call for an effect it
// performs no allocation.
func (r *Registry) Resolve(id EffectID, frame int, size Size, x, y float64) (*Bitmap, image.Point) {
	s := r.Splatter(id)
	return s.Frame(frame, size), s.At(x, y, size)
}

// WarmAll decodes every FrameSet and builds every Splatter.
func (r *Registry) WarmAll() {
	r.cache.WarmAll()
	for _, get := range r.splatters {
		get()
	}
}
