package renderer

import (
	"runtime"
	"sync"

	"github.com/kschuler/lumentrace/pkg/pathtracer"
)

// TileTask is one tile's worth of rendering work for a given pass.
type TileTask struct {
	Tile          *Tile
	PassNumber    int
	TargetSamples int
	TaskID        int
	PixelStats    [][]PixelStats
}

// TileResult is the outcome of rendering one TileTask.
type TileResult struct {
	TaskID int
	Stats  RenderStats
	Error  error
}

// WorkerPool dispatches TileTasks across a fixed number of worker
// goroutines, grounded on the teacher's pkg/renderer/worker_pool.go.
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*worker
	numWorkers  int
	wg          sync.WaitGroup
}

// worker renders tiles against its own TileRenderer instance, never
// shared with another goroutine, so a tracer carrying per-call scratch
// state (BidirectMISTracer's path buffers) stays safe.
type worker struct {
	id          int
	renderer    *TileRenderer
	scene       SceneData
	adaptive    AdaptiveConfig
	taskQueue   chan TileTask
	resultQueue chan TileResult
}

// NewWorkerPool builds a pool of numWorkers workers, each with its own
// PathTracer built by newTracer (0 numWorkers means runtime.NumCPU()).
func NewWorkerPool(scene SceneData, adaptive AdaptiveConfig, newTracer func() pathtracer.PathTracer, width, height, tileSize, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	maxTiles := ((width + tileSize - 1) / tileSize) * ((height + tileSize - 1) / tileSize)

	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, maxTiles),
		resultQueue: make(chan TileResult, maxTiles),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &worker{
			id:          i,
			renderer:    NewTileRenderer(newTracer()),
			scene:       scene,
			adaptive:    adaptive,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start launches every worker's run loop.
func (wp *WorkerPool) Start() {
	for _, w := range wp.workers {
		wp.wg.Add(1)
		go w.run(&wp.wg)
	}
}

// Stop closes the task queue, waits for every worker to drain it, then
// closes the result queue.
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask enqueues a tile task.
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves one completed tile result.
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the pool's worker count.
func (wp *WorkerPool) GetNumWorkers() int { return wp.numWorkers }

func (w *worker) run(wg *sync.WaitGroup) {
	defer wg.Done()
	for task := range w.taskQueue {
		stats := w.renderer.RenderTileBounds(task.Tile.Bounds, task.PixelStats, task.Tile.Rng, task.TargetSamples, w.scene, w.adaptive)
		w.resultQueue <- TileResult{TaskID: task.TaskID, Stats: stats}
	}
}
