package meshing

import (
	"context"
	"sync"

	"voxmesh/internal/world"
)

// MeshJob asks the pool to greedy-mesh one chunk.
type MeshJob struct {
	World *world.World
	Chunk *world.Chunk
	Coord world.ChunkCoord
	// ResultChan receives the result when the job completes.
	ResultChan chan MeshResult
}

// MeshResult carries the packed instance stream for one meshed chunk,
// two uint32 words per quad in wire order.
type MeshResult struct {
	Coord     world.ChunkCoord
	Instances []uint32
	QuadCount int
}

// WorkerPool meshes chunks on background goroutines so the render thread
// never blocks on greedy meshing.
type WorkerPool struct {
	jobQueue chan MeshJob
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWorkerPool starts a pool with the given worker count and queue size.
func NewWorkerPool(workers, queueSize int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	pool := &WorkerPool{
		jobQueue: make(chan MeshJob, queueSize),
		workers:  workers,
		ctx:      ctx,
		cancel:   cancel,
	}
	for range workers {
		pool.wg.Add(1)
		go pool.worker()
	}
	return pool
}

// Submit enqueues a job without blocking. Returns false when the queue is
// full; the caller retries on a later frame.
func (p *WorkerPool) Submit(job MeshJob) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			quads := BuildChunkQuads(job.World, job.Chunk)
			result := MeshResult{
				Coord:     job.Coord,
				Instances: EncodeInstances(quads),
				QuadCount: len(quads),
			}
			select {
			case job.ResultChan <- result:
			case <-p.ctx.Done():
				return
			}
		case <-p.ctx.Done():
			return
		}
	}
}

// Shutdown stops the workers and waits for them to exit.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

// QueueLength returns the number of jobs waiting in the queue.
func (p *WorkerPool) QueueLength() int {
	return len(p.jobQueue)
}
