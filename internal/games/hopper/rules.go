package hopper

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/hopper/internal/storage"
)

// state is the transient per-lifecycle game state.
type state struct {
	running  bool // Start button was pressed
	collided bool // A top contact already scored and has not ended yet
	score    int
	progress storage.Progress // As loaded at Init
}

// afterDeath returns the progress to persist when a run ends with score.
// Losing the last life starts over with full lives and a zero score;
// otherwise one life is lost and the score carries over.
func afterDeath(p storage.Progress, score, maxLives int) storage.Progress {
	next := storage.Progress{HighScore: max(p.HighScore, score)}
	if p.Lives <= 1 {
		next.Lives = maxLives
		next.LastScore = 0
	} else {
		next.Lives = p.Lives - 1
		next.LastScore = score
	}
	return next
}

// between returns a uniform integer in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// rotationFrame picks the sprite frame for an angle in degrees, with the
// frames spread evenly over one counter-clockwise turn.
func rotationFrame(angle float64, frames int) int {
	if frames <= 1 {
		return 0
	}
	turn := math.Mod(-angle, 360)
	if turn < 0 {
		turn += 360
	}
	return int(turn/360*float64(frames)) % frames
}
