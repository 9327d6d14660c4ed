package terrain

import (
	"log/slog"
	"sync"
	"time"
)

// SyncBudget meters inline tile generation for callers that bypass the
// background worker. A caller draws from it before each synchronous
// GenerateTile and resets it once per scheduling tick; once
// MaxSynchronousTilesPerTick draws are spent, further tiles must go through
// the worker. Not safe for concurrent use; each consumer loop owns its own.
type SyncBudget struct {
	used int
}

// Allow reports whether another inline generation fits in this tick and
// consumes one slot if so.
func (b *SyncBudget) Allow() bool {
	if b.used >= MaxSynchronousTilesPerTick {
		return false
	}
	b.used++
	return true
}

// Remaining reports how many inline generations are left this tick.
func (b *SyncBudget) Remaining() int {
	return MaxSynchronousTilesPerTick - b.used
}

// Reset restores the full budget at the start of a tick.
func (b *SyncBudget) Reset() {
	b.used = 0
}

// TileKey identifies a pending tile request. Deduplication and cancellation
// are keyed on it.
type TileKey struct {
	TileX, TileY int
	LOD          int
}

// TileRequest asks the background worker to generate one tile.
type TileRequest struct {
	Config     Config
	Key        TileKey
	Resolution int
}

// TileResult carries a completed tile back to the producer side.
type TileResult struct {
	Key  TileKey
	Tile *Tile
}

// Worker generates tiles on background goroutines. Producers enqueue
// requests (duplicates for a pending key are rejected) and drain completed
// results once per scheduling tick. Cancellation is cooperative: a cancelled
// key is removed from the queue if still waiting, and an in-flight result is
// discarded at write time. Each worker goroutine owns its generation
// buffers outright; nothing static is shared between workers.
type Worker struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []TileRequest
	pending map[TileKey]bool
	closed  bool

	resMu   sync.Mutex
	results []TileResult

	wg     sync.WaitGroup
	logger *slog.Logger
}

// NewWorker starts a pool with the given number of generation goroutines.
// workers below 1 is treated as 1.
func NewWorker(workers int, logger *slog.Logger) *Worker {
	if workers < 1 {
		workers = 1
	}
	w := &Worker{
		pending: make(map[TileKey]bool),
		logger:  logger.With("component", "terrain_worker"),
	}
	w.cond = sync.NewCond(&w.mu)

	w.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go w.run(i)
	}
	w.logger.Debug("Terrain worker pool started", "workers", workers)
	return w
}

// Enqueue schedules a tile for background generation. It returns false if a
// request for the same key is already pending or the pool is closed.
func (w *Worker) Enqueue(req TileRequest) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || w.pending[req.Key] {
		return false
	}
	w.pending[req.Key] = true
	w.queue = append(w.queue, req)
	w.cond.Signal()
	return true
}

// Cancel withdraws a pending request. A request still queued is removed
// outright; one already in flight finishes but its result is discarded.
func (w *Worker) Cancel(key TileKey) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.pending[key] {
		return
	}
	delete(w.pending, key)
	for i, req := range w.queue {
		if req.Key == key {
			w.queue = append(w.queue[:i], w.queue[i+1:]...)
			break
		}
	}
}

// Drain returns all completed results accumulated since the last call.
func (w *Worker) Drain() []TileResult {
	w.resMu.Lock()
	defer w.resMu.Unlock()
	out := w.results
	w.results = nil
	return out
}

// PendingCount reports how many requests are queued or in flight.
func (w *Worker) PendingCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}

// WaitIdle spin-waits (with a sleep) until no requests are pending. There is
// no deadline mechanism in the worker itself; callers that need one wrap
// this with their own timer.
func (w *Worker) WaitIdle(poll time.Duration) {
	for w.PendingCount() > 0 {
		time.Sleep(poll)
	}
}

// Close stops the pool and waits for workers to exit. Queued requests are
// dropped.
func (w *Worker) Close() {
	w.mu.Lock()
	w.closed = true
	w.queue = nil
	w.pending = make(map[TileKey]bool)
	w.cond.Broadcast()
	w.mu.Unlock()
	w.wg.Wait()
}

func (w *Worker) run(id int) {
	defer w.wg.Done()
	logger := w.logger.With("worker", id)

	for {
		w.mu.Lock()
		for len(w.queue) == 0 && !w.closed {
			w.cond.Wait()
		}
		if w.closed {
			w.mu.Unlock()
			return
		}
		req := w.queue[0]
		w.queue = w.queue[1:]
		cancelled := !w.pending[req.Key]
		w.mu.Unlock()

		// Cancelled while queued: nothing to generate.
		if cancelled {
			continue
		}

		tile := GenerateTile(req.Config, req.Key.TileX, req.Key.TileY, req.Key.LOD, req.Resolution)

		// Pending-membership check at write time: a key cancelled while the
		// tile was in flight never reaches the result queue.
		w.mu.Lock()
		if w.pending[req.Key] {
			w.resMu.Lock()
			w.results = append(w.results, TileResult{Key: req.Key, Tile: tile})
			w.resMu.Unlock()
		} else {
			logger.Debug("Discarding cancelled tile", "tile_x", req.Key.TileX, "tile_y", req.Key.TileY, "lod", req.Key.LOD)
		}
		delete(w.pending, req.Key)
		w.mu.Unlock()
	}
}
