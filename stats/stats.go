package stats

import (
	"sort"
	"sync"
	"time"
)

// GameRecord is one finished game.
type GameRecord struct {
	SessionID string
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Length    int
	Ticks     int
	Cause     string
}

// Duration returns how long the game ran.
func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// Summary is a snapshot of the aggregated figures.
type Summary struct {
	GamesPlayed     int
	AverageScore    float64
	MedianScore     float64
	MaxScore        int
	MinScore        int
	AverageLength   float64
	AverageTicks    float64
	AverageDuration time.Duration
	MaxDuration     time.Duration
	Causes          map[string]int
}

// Tracker accumulates game records for the lifetime of the process. It is
// safe for concurrent use.
type Tracker struct {
	games []GameRecord
	mutex sync.RWMutex
}

func NewTracker() *Tracker {
	return &Tracker{
		games: make([]GameRecord, 0),
	}
}

// AddGame records a finished game.
func (t *Tracker) AddGame(rec GameRecord) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.games = append(t.games, rec)
}

// Games returns a copy of every record, oldest first.
func (t *Tracker) Games() []GameRecord {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	out := make([]GameRecord, len(t.games))
	copy(out, t.games)
	return out
}

func (t *Tracker) GamesPlayed() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return len(t.games)
}

// AverageScore returns the mean score, 0 with no games.
func (t *Tracker) AverageScore() float64 {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	if len(t.games) == 0 {
		return 0
	}
	total := 0
	for _, g := range t.games {
		total += g.Score
	}
	return float64(total) / float64(len(t.games))
}

func (t *Tracker) MedianScore() float64 {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return median(t.scores())
}

// MaxScore returns the best score, 0 with no games.
func (t *Tracker) MaxScore() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	if len(t.games) == 0 {
		return 0
	}
	best := t.games[0].Score
	for _, g := range t.games[1:] {
		if g.Score > best {
			best = g.Score
		}
	}
	return best
}

func (t *Tracker) AverageDuration() time.Duration {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	if len(t.games) == 0 {
		return 0
	}
	var total time.Duration
	for _, g := range t.games {
		total += g.Duration()
	}
	return total / time.Duration(len(t.games))
}

// Summary computes every figure under a single lock.
func (t *Tracker) Summary() Summary {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	s := Summary{
		GamesPlayed: len(t.games),
		Causes:      make(map[string]int),
	}
	if len(t.games) == 0 {
		return s
	}

	var score, length, ticks int
	var duration time.Duration
	s.MaxScore = t.games[0].Score
	s.MinScore = t.games[0].Score
	for _, g := range t.games {
		score += g.Score
		length += g.Length
		ticks += g.Ticks
		d := g.Duration()
		duration += d
		if g.Score > s.MaxScore {
			s.MaxScore = g.Score
		}
		if g.Score < s.MinScore {
			s.MinScore = g.Score
		}
		if d > s.MaxDuration {
			s.MaxDuration = d
		}
		if g.Cause != "" {
			s.Causes[g.Cause]++
		}
	}

	n := float64(len(t.games))
	s.AverageScore = float64(score) / n
	s.MedianScore = median(t.scores())
	s.AverageLength = float64(length) / n
	s.AverageTicks = float64(ticks) / n
	s.AverageDuration = duration / time.Duration(len(t.games))
	return s
}

// scores must be called with the lock held.
func (t *Tracker) scores() []float64 {
	out := make([]float64, 0, len(t.games))
	for _, g := range t.games {
		out = append(out, float64(g.Score))
	}
	return out
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 0 {
		return (values[mid-1] + values[mid]) / 2
	}
	return values[mid]
}
