package synth

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/rand"
	"time"
)

const (
	// SmallCellThreshold is the stay count below which a row is considered
	// potentially identifying.
	SmallCellThreshold = 10

	// SmallCellToken replaces redacted values.
	SmallCellToken = "petit_effectif"

	// MaxRows caps the number of rows any response may carry.
	MaxRows = 100
)

// Engine derives per-row random sources from a global seed and a request
// fingerprint, so identical requests reproduce identical rows while distinct
// requests stay uncorrelated.
type Engine struct {
	bounds Bounds
	seed   int64
	seeded bool
}

// NewEngine builds an engine. When seeded is false every request draws a
// fresh seed and responses are not reproducible across calls.
func NewEngine(bounds Bounds, seed int64, seeded bool) *Engine {
	return &Engine{bounds: bounds, seed: seed, seeded: seeded}
}

// Bounds exposes the value ranges the engine draws from.
func (e *Engine) Bounds() Bounds {
	return e.bounds
}

// RequestSeed folds the request fingerprint into the global seed.
func (e *Engine) RequestSeed(fingerprint string) int64 {
	if !e.seeded {
		return time.Now().UnixNano()
	}
	h := fnv.New64a()
	h.Write([]byte(fingerprint))
	return e.seed ^ int64(h.Sum64())
}

// RowRand returns the random source for one row. The source depends only on
// the request seed and the row index, never on the order rows are built in.
func (e *Engine) RowRand(requestSeed int64, idx int) *rand.Rand {
	h := fnv.New64a()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(requestSeed))
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(idx))
	h.Write(buf[:])
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

// IntIn draws uniformly from an inclusive integer range.
func IntIn(rng *rand.Rand, r IntRange) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// FloatIn draws uniformly from a float range.
func FloatIn(rng *rand.Rand, r FloatRange) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// BaseMetrics are the cells shared by most endpoint rows.
type BaseMetrics struct {
	StayCount int
	MeanStay  float64
	DeathRate float64
	MaleRate  float64
	MeanAge   float64
}

// DrawBase synthesizes the shared metrics. Each narrowing filter halves the
// stay-count ceiling, so more restrictive requests yield smaller aggregates.
// When small is set the stay count lands strictly below the disclosure
// threshold.
func (e *Engine) DrawBase(rng *rand.Rand, narrowing int, small bool) BaseMetrics {
	var stays int
	if small {
		stays = 1 + rng.Intn(SmallCellThreshold-1)
	} else {
		r := e.bounds.StayCount
		max := r.Max
		for i := 0; i < narrowing; i++ {
			max /= 2
		}
		if max < r.Min {
			max = r.Min
		}
		stays = IntIn(rng, IntRange{Min: r.Min, Max: max})
	}
	return BaseMetrics{
		StayCount: stays,
		MeanStay:  Round2(FloatIn(rng, e.bounds.StayDuration)),
		DeathRate: Round4(FloatIn(rng, e.bounds.DeathRate)),
		MaleRate:  Round4(FloatIn(rng, e.bounds.MaleRate)),
		MeanAge:   Round1(FloatIn(rng, e.bounds.MeanAge)),
	}
}

// DrawPatients draws a patient count never exceeding the stay count, since a
// patient accounts for at least one stay.
func (e *Engine) DrawPatients(rng *rand.Rand, stays int) int {
	lo := int(e.bounds.PatientFraction.Min * float64(stays))
	if lo < 1 && stays >= 1 {
		lo = 1
	}
	if lo >= stays {
		return stays
	}
	return lo + rng.Intn(stays-lo+1)
}

// SampleRows enforces the row cap with a seeded shuffle, so the retained
// subset is itself deterministic under a fixed seed.
func SampleRows(rng *rand.Rand, rows []*Row) []*Row {
	if len(rows) <= MaxRows {
		return rows
	}
	sampled := make([]*Row, len(rows))
	copy(sampled, rows)
	rng.Shuffle(len(sampled), func(i, j int) {
		sampled[i], sampled[j] = sampled[j], sampled[i]
	})
	return sampled[:MaxRows]
}

func Round1(v float64) float64 { return math.Round(v*10) / 10 }

func Round2(v float64) float64 { return math.Round(v*100) / 100 }

func Round4(v float64) float64 { return math.Round(v*10000) / 10000 }
