package splatter

import (
	"sync"
	"sync/atomic"
)

// EffectID identifies one splatter effect.
type EffectID int

// EffectCount is the number of effects in the asset table.
const EffectCount = 4

// DefaultEffect stands in for any id outside [0, EffectCount).
const DefaultEffect EffectID = 0

// Valid reports whether id has an entry in the asset table.
func (id EffectID) Valid() bool { return id >= 0 && id < EffectCount }

// Normalize maps ids outside the table to DefaultEffect.
func (id EffectID) Normalize() EffectID {
	if !id.Valid() {
		return DefaultEffect
	}
	return id
}

// Key addresses one FrameSet.
type Key struct {
	Effect EffectID
	Size   Size
}

func (k Key) normalize() Key {
	return Key{Effect: k.Effect.Normalize(), Size: k.Size.orRegular()}
}

// Source supplies the encoded asset for one (effect, size, frame). Callers
// only ask for valid effects, sizes and frames in [0, FrameCount).
type Source interface {
	Encoded(effect EffectID, size Size, frame int) string
}

// Table is the fixed encoded-asset layout: effect, then size, then frame.
type Table [EffectCount][SizeCount][FrameCount]string

// Encoded implements Source.
func (t *Table) Encoded(effect EffectID, size Size, frame int) string {
	return t[effect][size][frame]
}

// Cache decodes each FrameSet at most once, on first use. Concurrent first
// requests for the same key wait for a single decode; different keys build
// independently. A decode failure panics, and the panic repeats on every
// later request for that key.
type Cache struct {
	src     Source
	decodes atomic.Int64
	sets    [EffectCount][SizeCount]func() *FrameSet
}

// NewCache creates an empty cache over src. Nothing is decoded until first use.
func NewCache(src Source) *Cache {
	c := &Cache{src: src}
	for id := range c.sets {
		for size := range c.sets[id] {
			key := Key{Effect: EffectID(id), Size: Size(size)}
			c.sets[id][size] = sync.OnceValue(func() *FrameSet {
				return c.build(key)
			})
		}
	}
	return c
}

// Get returns the shared FrameSet for key, decoding it on first use. Unknown
// effects resolve to DefaultEffect and unknown sizes to Regular.
func (c *Cache) Get(key Key) *FrameSet {
	key = key.normalize()
	return c.sets[key.Effect][key.Size]()
}

// WarmAll decodes every FrameSet now so the first draw of each effect pays
// no decode cost. Keys are built in parallel; a decode panic is re-raised in
// the calling goroutine once all keys have finished.
func (c *Cache) WarmAll() {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		failure any
	)
	for id := range c.sets {
		for size := range c.sets[id] {
			wg.Add(1)
			go func(get func() *FrameSet) {
				defer wg.Done()
				defer func() {
					if p := recover(); p != nil {
						mu.Lock()
						if failure == nil {
							failure = p
						}
						mu.Unlock()
					}
				}()
				get()
			}(c.sets[id][size])
		}
	}
	wg.Wait()
	if failure != nil {
		panic(failure)
	}
}

// Decodes reports how many assets this cache has decoded so far.
func (c *Cache) Decodes() int64 { return c.decodes.Load() }

func (c *Cache) build(key Key) *FrameSet {
	var frames [FrameCount]*Bitmap
	for i := range frames {
		frames[i] = MustDecode(c.src.Encoded(key.Effect, key.Size, i))
		c.decodes.Add(1)
	}
	return NewFrameSet(frames)
}
