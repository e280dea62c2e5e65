package boxdrop

// Snapshot captures the observable game state for determinism testing.
// Continuous quantities are quantized to fixed-point so two runs compare
// exactly. Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick        uint64
	Score       int
	PlayerX     int64 // Position quantized to 1/1000 unit
	PlayerY     int64
	PlayerAngle int64 // Radians quantized to 1/1000
	BoxX        int64
	BoxY        int64
	Near        bool
	Particles   int // Live particle count
	Popups      int // Live popup count
}

// quantize converts a continuous value to fixed-point millis.
func quantize(v float64) int64 {
	return int64(v * 1000)
}

// Snapshot returns the current game state for determinism verification.
func (g *Game) Snapshot() Snapshot {
	playerPos := g.player.Body.Position()
	boxPos := g.box.Body.Position()

	return Snapshot{
		Tick:        g.tickCount,
		Score:       g.score,
		PlayerX:     quantize(playerPos.X),
		PlayerY:     quantize(playerPos.Y),
		PlayerAngle: quantize(g.player.Body.Angle()),
		BoxX:        quantize(boxPos.X),
		BoxY:        quantize(boxPos.Y),
		Near:        g.prevNear,
		Particles:   len(g.particles.Active()),
		Popups:      len(g.popups.Active()),
	}
}

// Hash folds the snapshot into a single comparable value.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerAngle) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BoxX)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BoxY)        //#nosec G115 -- hash computation
	if snap.Near {
		h = h*31 + 1
	} else {
		h = h * 31
	}
	h = h*31 + uint64(snap.Particles) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Popups)    //#nosec G115 -- hash computation
	return h
}
