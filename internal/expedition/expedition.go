// Package expedition layers the only mutable gameplay state on top of the
// pure generators: POI discovery, artifact collection, and the surface
// objective tracker. Nothing here feeds back into generation.
package expedition

import (
	"log/slog"
	"math"

	"starforge-server/internal/poi"
)

const (
	// DiscoverRadius is how close a player must stand to a POI origin for
	// the proximity check to flag it discovered.
	DiscoverRadius = 25.0

	// CollectRadius is the reach for picking up an artifact.
	CollectRadius = 3.0

	// ShipRadius is how close to the landing spot counts as "at the ship".
	ShipRadius = 10.0
)

// Log tracks a single surface expedition: which POIs were found and which
// artifacts were carried off.
type Log struct {
	Collected []string

	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger.With("component", "expedition_log")}
}

// VisitPOI runs the proximity check for a player position against a POI and
// flags it discovered when in range. It reports whether the flag flipped on
// this call.
func (l *Log) VisitPOI(p *poi.POI, px, py float64) bool {
	if p == nil || p.Discovered {
		return false
	}
	if math.Hypot(px-p.WorldX, py-p.WorldY) > DiscoverRadius {
		return false
	}
	p.Discovered = true
	l.logger.Debug("POI discovered", "type", string(p.Type), "index", p.Index)
	return true
}

// Collect attempts to pick up a POI's artifact. Collection is gated on the
// POI having been discovered and on range to the artifact; it succeeds
// exactly once. A second attempt is a no-op returning false.
func (l *Log) Collect(p *poi.POI, px, py float64) bool {
	if p == nil || !p.Discovered || p.ArtifactCollected {
		return false
	}
	ax, ay := p.ArtifactWorldPosition()
	if math.Hypot(px-ax, py-ay) > CollectRadius {
		return false
	}
	p.ArtifactCollected = true
	l.Collected = append(l.Collected, p.Artifact.Name)
	l.logger.Debug("Artifact collected", "name", p.Artifact.Name, "total", len(l.Collected))
	return true
}

// ObjectiveState is the phase of the surface objective.
type ObjectiveState string

const (
	ObjectiveExplore      ObjectiveState = "explore"
	ObjectiveCollect      ObjectiveState = "collect"
	ObjectiveReturnToShip ObjectiveState = "return_to_ship"
)

// Tracker advances Explore → Collect → ReturnToShip as it observes
// expedition events, and gates leaving the planet on standing at the ship
// with at least one artifact aboard.
type Tracker struct {
	State ObjectiveState

	shipX, shipY float64
	log          *Log
}

func NewTracker(log *Log, shipX, shipY float64) *Tracker {
	return &Tracker{State: ObjectiveExplore, shipX: shipX, shipY: shipY, log: log}
}

// OnDiscover observes a discovery event.
func (t *Tracker) OnDiscover() {
	if t.State == ObjectiveExplore {
		t.State = ObjectiveCollect
	}
}

// OnCollect observes a collection event.
func (t *Tracker) OnCollect() {
	if t.State == ObjectiveCollect {
		t.State = ObjectiveReturnToShip
	}
}

// CanLeave reports whether the player may lift off: back at the ship spawn
// with at least one collected artifact.
func (t *Tracker) CanLeave(px, py float64) bool {
	if t.State != ObjectiveReturnToShip || len(t.log.Collected) == 0 {
		return false
	}
	return math.Hypot(px-t.shipX, py-t.shipY) <= ShipRadius
}
