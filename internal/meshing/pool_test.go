package meshing

import (
	"testing"
	"time"

	"voxmesh/internal/world"
)

func TestWorkerPoolMeshesSubmittedChunk(t *testing.T) {
	w := world.New()
	w.Set(1, 1, 1, world.VoxelStone)
	c := w.GetChunk(world.ChunkCoord{}, false)
	if c == nil {
		t.Fatal("chunk not created by Set")
	}

	pool := NewWorkerPool(2, 4)
	defer pool.Shutdown()

	results := make(chan MeshResult, 1)
	ok := pool.Submit(MeshJob{World: w, Chunk: c, Coord: c.Coord, ResultChan: results})
	if !ok {
		t.Fatal("submit rejected on empty queue")
	}

	select {
	case result := <-results:
		if result.Coord != c.Coord {
			t.Fatalf("result coord: got %v, want %v", result.Coord, c.Coord)
		}
		if result.QuadCount != 6 {
			t.Fatalf("isolated voxel quad count: got %d, want 6", result.QuadCount)
		}
		if len(result.Instances) != 2*result.QuadCount {
			t.Fatalf("instance words: got %d, want %d", len(result.Instances), 2*result.QuadCount)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for mesh result")
	}
}

func TestWorkerPoolSubmitRejectsWhenFull(t *testing.T) {
	// Zero workers: nothing drains the queue.
	pool := &WorkerPool{jobQueue: make(chan MeshJob, 1)}

	if !pool.Submit(MeshJob{}) {
		t.Fatal("first submit should fit the queue")
	}
	if pool.Submit(MeshJob{}) {
		t.Fatal("second submit should be rejected, queue is full")
	}
	if pool.QueueLength() != 1 {
		t.Fatalf("queue length: got %d, want 1", pool.QueueLength())
	}
}

func TestWorkerPoolShutdownStopsWorkers(t *testing.T) {
	pool := NewWorkerPool(4, 16)
	pool.Shutdown()

	done := make(chan struct{})
	go func() {
		pool.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("workers did not exit after Shutdown")
	}
}
