package object

import (
	"math"

	"github.com/tomz197/stressgame/internal/game/config"
	"github.com/tomz197/stressgame/internal/physics"
)

// WaveSource produces the hostiles to add on a given frame.
type WaveSource interface {
	Wave(frame int, screen Screen) []*Hostile
}

// WaveFunc adapts a function to WaveSource.
type WaveFunc func(frame int, screen Screen) []*Hostile

// Wave calls f.
func (f WaveFunc) Wave(frame int, screen Screen) []*Hostile {
	return f(frame, screen)
}

// NoWaves never spawns anything.
var NoWaves WaveSource = WaveFunc(func(int, Screen) []*Hostile { return nil })

// WaveSpawner spawns batches of hostiles on the perimeter circle at
// pseudo-random intervals.
type WaveSpawner struct {
	rng Rand
}

// NewWaveSpawner creates a spawner drawing from rng.
func NewWaveSpawner(rng Rand) *WaveSpawner {
	return &WaveSpawner{rng: rng}
}

// Wave draws a fresh gate interval in [30,60] frames and, when frame is a
// multiple of it, returns a batch of 2-24 hostiles.
func (w *WaveSpawner) Wave(frame int, screen Screen) []*Hostile {
	span := float64(config.SpawnGateMaxFrames - config.SpawnGateMinFrames)
	gate := int(math.Round(config.SpawnGateMinFrames + w.rng.Float64()*span))
	if frame%gate != 0 {
		return nil
	}

	count := config.SpawnBatchMin + w.rng.IntN(config.SpawnBatchMax-config.SpawnBatchMin+1)
	cx, cy := screen.Center()
	radius := float64(screen.Width) / 2

	batch := make([]*Hostile, 0, count)
	for range count {
		angle := w.rng.Float64() * 2 * math.Pi
		x, y := physics.Advance(cx, cy, angle, radius)
		batch = append(batch, NewHostile(x, y, screen))
	}
	return batch
}
