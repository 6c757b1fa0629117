package gpu

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/cogentcore/webgpu/wgpu"
)

var ErrNilFactory = errors.New("gpu: pipeline factory is nil")

// PipelineFactory builds a render pipeline for the given fixed-function state.
type PipelineFactory func(state PipelineState) (*wgpu.RenderPipeline, error)

// PipelineCache keeps one render pipeline per PipelineKey. Lookups take a read
// lock; creation re-checks under the write lock so a key is built once.
type PipelineCache struct {
	mu        sync.RWMutex
	pipelines map[PipelineKey]*wgpu.RenderPipeline
	factory   PipelineFactory

	hits   atomic.Uint64
	misses atomic.Uint64
}

func NewPipelineCache(factory PipelineFactory) (*PipelineCache, error) {
	if factory == nil {
		return nil, ErrNilFactory
	}
	return &PipelineCache{
		pipelines: make(map[PipelineKey]*wgpu.RenderPipeline),
		factory:   factory,
	}, nil
}

func (c *PipelineCache) Get(key PipelineKey) (*wgpu.RenderPipeline, error) {
	c.mu.RLock()
	p, ok := c.pipelines[key]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return p, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.pipelines[key]; ok {
		c.hits.Add(1)
		return p, nil
	}
	c.misses.Add(1)
	p, err := c.factory(PipelineStateFor(key))
	if err != nil {
		return nil, err
	}
	c.pipelines[key] = p
	return p, nil
}

func (c *PipelineCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pipelines)
}

func (c *PipelineCache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Release frees every cached pipeline and empties the cache.
func (c *PipelineCache) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, p := range c.pipelines {
		if p != nil {
			p.Release()
		}
		delete(c.pipelines, key)
	}
}
