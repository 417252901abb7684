package service

import (
	"errors"
	"math/rand"
	"sort"
	"time"

	"github.com/UnknownGamerYT/fsquiz-trainer/internal/domain/entities"
)

var ErrNoQuestionsAvailable = errors.New("no questions available")

const (
	// defaultTimeLimit is assumed when the dataset carries no timing at all.
	defaultTimeLimit = 60.0
	// minTimeLimit and maxTimeLimit clamp fallback limits to a sane window.
	// A question's own recorded time is used as-is.
	minTimeLimit = 30
	maxTimeLimit = 900
)

// QuizService picks questions for a session and derives advisory time
// limits. It holds no per-call state beyond its RNG.
type QuizService struct {
	rng *rand.Rand
}

func NewQuizService() *QuizService {
	return &QuizService{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// PickQuestions filters the pool down to questions with at least minOptions
// non-empty answer options, shuffles it and returns up to count questions.
func (s *QuizService) PickQuestions(all []entities.Question, count, minOptions int) ([]entities.Question, error) {
	pool := make([]entities.Question, 0, len(all))
	for _, q := range all {
		options, _ := ExtractOptions(q)
		if len(options) >= minOptions {
			pool = append(pool, q)
		}
	}
	if len(pool) == 0 {
		return nil, ErrNoQuestionsAvailable
	}

	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if count > 0 && count < len(pool) {
		pool = pool[:count]
	}
	return pool, nil
}

// TimeStats holds median answer times in seconds, per question type and
// over the whole pool. Only positive recorded times contribute.
type TimeStats struct {
	ByType  map[string]float64
	Overall float64
}

// ComputeTimeStats derives the median answer time per question type and
// overall. The overall median defaults to 60 seconds when no question
// carries timing data.
func ComputeTimeStats(questions []entities.Question) TimeStats {
	byType := make(map[string][]float64)
	var all []float64

	for _, q := range questions {
		if q.Time <= 0 {
			continue
		}
		all = append(all, q.Time)
		byType[typeOrUnknown(q.Type)] = append(byType[typeOrUnknown(q.Type)], q.Time)
	}

	stats := TimeStats{ByType: make(map[string]float64, len(byType)), Overall: defaultTimeLimit}
	for qt, vals := range byType {
		stats.ByType[qt] = median(vals)
	}
	if len(all) > 0 {
		stats.Overall = median(all)
	}
	return stats
}

// TimeLimit returns the advisory countdown for a question in seconds: the
// question's own recorded time when present, otherwise the per-type median
// (falling back to the overall median) clamped to [30, 900].
func TimeLimit(q entities.Question, stats TimeStats) int {
	if q.Time > 0 {
		return int(q.Time)
	}

	fallback := stats.ByType[typeOrUnknown(q.Type)]
	if fallback <= 0 {
		fallback = stats.Overall
	}
	if fallback <= 0 {
		fallback = defaultTimeLimit
	}

	limit := int(fallback)
	if limit < minTimeLimit {
		limit = minTimeLimit
	}
	if limit > maxTimeLimit {
		limit = maxTimeLimit
	}
	return limit
}

func typeOrUnknown(qtype string) string {
	if qtype == "" {
		return "unknown"
	}
	return qtype
}

// median of an unsorted, non-empty slice; the mean of the two middle
// values for even lengths.
func median(vals []float64) float64 {
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
