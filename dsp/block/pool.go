package block

import "sync"

// Pool provides sync.Pool-based Block reuse for callers that render on
// transient goroutines and want to avoid per-render allocation.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Block{}
			},
		},
	}
}

// Get returns a zeroed Block with the requested shape. Callers must return
// it via Put when done.
func (p *Pool) Get(numChannels, numSamples int) *Block {
	if numChannels < 0 {
		numChannels = 0
	}
	if numSamples < 0 {
		numSamples = 0
	}

	b := p.pool.Get().(*Block)
	b.resize(numChannels, numSamples)
	b.Clear()
	return b
}

// Put returns a Block to the pool for reuse. The caller must not use the
// block after calling Put.
func (p *Pool) Put(b *Block) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
