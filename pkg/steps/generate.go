package steps

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// FitnessLevel is the categorical covariate driving each participant's
// step-count distribution.
type FitnessLevel int

const (
	Low FitnessLevel = iota
	Moderate
	High
)

func (l FitnessLevel) String() string {
	switch l {
	case Low:
		return "Low"
	case Moderate:
		return "Moderate"
	case High:
		return "High"
	}
	return fmt.Sprintf("FitnessLevel(%d)", int(l))
}

// Normal parameters per fitness level.
var fitnessParams = map[FitnessLevel]struct {
	Mean, Std float64
}{
	Low:      {Mean: 6000, Std: 600},
	Moderate: {Mean: 7500, Std: 500},
	High:     {Mean: 9000, Std: 700},
}

// Generated step counts are clamped to this range.
const (
	MinSteps = 3000
	MaxSteps = 15000
)

// Participant holds one generated record: identifier, fitness level and the
// ordered daily step counts. Read-only after generation.
type Participant struct {
	ID    string
	Level FitnessLevel
	Steps []int
}

// Mean returns the participant's average daily steps.
func (p Participant) Mean() float64 {
	if len(p.Steps) == 0 {
		return 0
	}
	sum := 0
	for _, s := range p.Steps {
		sum += s
	}
	return float64(sum) / float64(len(p.Steps))
}

// Generator produces synthetic step-count cohorts from an explicitly seeded
// random source, so identical seeds reproduce identical cohorts.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator constructs a Generator with its own seeded source. No global
// PRNG state is touched.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate assigns each of n participants a fitness level uniformly at
// random, then draws days samples from that level's normal distribution,
// rounded to the nearest integer and clamped to [MinSteps, MaxSteps].
func (g *Generator) Generate(n, days int) []Participant {
	// Assign all levels before drawing any steps so the level sequence for
	// a given seed does not depend on the number of days.
	levels := make([]FitnessLevel, n)
	for i := range levels {
		levels[i] = FitnessLevel(g.rng.Intn(3))
	}

	cohort := make([]Participant, n)
	for i, level := range levels {
		params := fitnessParams[level]
		dist := distuv.Normal{Mu: params.Mean, Sigma: params.Std, Src: g.rng}
		steps := make([]int, days)
		for d := range steps {
			steps[d] = clamp(int(math.Round(dist.Rand())), MinSteps, MaxSteps)
		}
		cohort[i] = Participant{
			ID:    fmt.Sprintf("P%d", i+1),
			Level: level,
			Steps: steps,
		}
	}
	return cohort
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
