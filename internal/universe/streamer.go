package universe

import (
	"context"
	"time"

	"starforge-server/internal/terrain"
)

// Streamer feeds terrain tiles for one landed planet through the background
// worker pool, releasing at most a fixed number of completed tiles per
// scheduling tick so a consuming game loop never stalls on a burst of
// finished work. Tick and Drained bookkeeping assume a single consumer
// goroutine; Request and Cancel may be called from anywhere.
type Streamer struct {
	cfg     terrain.Config
	worker  *terrain.Worker
	perTick int
	carry   []terrain.TileResult
	sync    terrain.SyncBudget
}

// NewStreamer resolves the planet's terrain parameters once and starts a
// worker pool for it. Gas giants are rejected the same way TerrainConfig
// rejects them.
func (s *Service) NewStreamer(ctx context.Context, x, y, z, starIndex, planetIndex, workers, tilesPerTick int) (*Streamer, error) {
	cfg, err := s.TerrainConfig(ctx, x, y, z, starIndex, planetIndex)
	if err != nil {
		return nil, err
	}
	if tilesPerTick < 1 {
		tilesPerTick = 1
	}
	return &Streamer{
		cfg:     cfg,
		worker:  terrain.NewWorker(workers, s.logger),
		perTick: tilesPerTick,
	}, nil
}

// Request schedules a tile at the LOD tier for its distance (in tile units)
// from the player. Duplicate pending requests are rejected.
func (st *Streamer) Request(tileX, tileY int, tileDistance float64) bool {
	lvl := terrain.LevelForDistance(tileDistance)
	return st.worker.Enqueue(terrain.TileRequest{
		Config:     st.cfg,
		Key:        terrain.TileKey{TileX: tileX, TileY: tileY, LOD: lvl.LOD},
		Resolution: lvl.Resolution,
	})
}

// RequestAt schedules a tile at an explicit LOD and resolution.
func (st *Streamer) RequestAt(tileX, tileY, lod, resolution int) bool {
	return st.worker.Enqueue(terrain.TileRequest{
		Config:     st.cfg,
		Key:        terrain.TileKey{TileX: tileX, TileY: tileY, LOD: lod},
		Resolution: resolution,
	})
}

// Cancel withdraws a pending tile, e.g. when the player turned around.
func (st *Streamer) Cancel(tileX, tileY, lod int) {
	st.worker.Cancel(terrain.TileKey{TileX: tileX, TileY: tileY, LOD: lod})
}

// GenerateNow produces a tile inline when the per-tick synchronous budget
// still has room, so a player standing on a not-yet-streamed tile gets it
// this frame. Once the budget is spent the request is deferred to the
// background queue instead and the second return is false; the tile then
// arrives through Tick.
func (st *Streamer) GenerateNow(tileX, tileY, lod, resolution int) (*terrain.Tile, bool) {
	if !st.sync.Allow() {
		st.RequestAt(tileX, tileY, lod, resolution)
		return nil, false
	}
	return terrain.GenerateTile(st.cfg, tileX, tileY, lod, resolution), true
}

// Tick returns up to the per-tick budget of completed tiles. Overflow is
// carried to the next tick. Tick also opens the next scheduling tick, so
// the synchronous budget refills here.
func (st *Streamer) Tick() []terrain.TileResult {
	st.sync.Reset()
	st.carry = append(st.carry, st.worker.Drain()...)
	n := len(st.carry)
	if n > st.perTick {
		n = st.perTick
	}
	out := st.carry[:n]
	st.carry = st.carry[n:]
	return out
}

// Idle reports whether no work is pending and no completed tiles remain
// undelivered.
func (st *Streamer) Idle() bool {
	return st.worker.PendingCount() == 0 && len(st.carry) == 0
}

// Collect tick-loops until the streamer is idle and returns everything
// generated. It is a convenience for request/response callers that have no
// real tick cadence.
func (st *Streamer) Collect() []terrain.TileResult {
	var all []terrain.TileResult
	for {
		all = append(all, st.Tick()...)
		if st.Idle() {
			return all
		}
		time.Sleep(2 * time.Millisecond)
	}
}

// Close stops the worker pool. Pending tiles are dropped.
func (st *Streamer) Close() {
	st.worker.Close()
}
