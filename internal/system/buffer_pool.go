package system

import (
	"image"
	"sync"
	"sync/atomic"
)

// ImagePool переиспользует кадры превью одного размера, чтобы не выделять
// новый *image.RGBA на каждый снимок сетки.
type ImagePool struct {
	mu     sync.RWMutex
	pools  map[image.Rectangle]*sync.Pool
	allocs atomic.Int64
	reuses atomic.Int64
}

// PoolStats показывает, сколько кадров создано и сколько взято повторно.
type PoolStats struct {
	Allocated int64
	Reused    int64
}

var globalPool = NewImagePool()

// NewImagePool создает пустой пул.
func NewImagePool() *ImagePool {
	return &ImagePool{pools: make(map[image.Rectangle]*sync.Pool)}
}

// GetImage берет кадр из общего пула.
func GetImage(rect image.Rectangle) *image.RGBA {
	return globalPool.Get(rect)
}

// PutImage возвращает кадр в общий пул.
func PutImage(img *image.RGBA) {
	globalPool.Put(img)
}

// Stats возвращает счетчики общего пула.
func Stats() PoolStats {
	return globalPool.Stats()
}

func (p *ImagePool) pool(rect image.Rectangle) *sync.Pool {
	p.mu.RLock()
	pool, ok := p.pools[rect]
	p.mu.RUnlock()
	if ok {
		return pool
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if pool, ok = p.pools[rect]; ok {
		return pool
	}
	pool = &sync.Pool{}
	p.pools[rect] = pool
	return pool
}

// Get возвращает очищенный кадр размера rect.
func (p *ImagePool) Get(rect image.Rectangle) *image.RGBA {
	if v := p.pool(rect).Get(); v != nil {
		img := v.(*image.RGBA)
		clear(img.Pix)
		p.reuses.Add(1)
		return img
	}
	p.allocs.Add(1)
	return image.NewRGBA(rect)
}

// Put возвращает кадр в пул. nil игнорируется.
func (p *ImagePool) Put(img *image.RGBA) {
	if img == nil {
		return
	}
	p.pool(img.Rect).Put(img)
}

// Stats возвращает счетчики пула.
func (p *ImagePool) Stats() PoolStats {
	return PoolStats{Allocated: p.allocs.Load(), Reused: p.reuses.Load()}
}
