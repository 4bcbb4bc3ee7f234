package predictor

import (
	"fmt"
	"math"
	"math/rand"

	"soccerscout/app/service/analysis"

	"github.com/samber/do"
)

const (
	peakAge       = 27.5
	defaultAge    = 25
	improveFactor = 0.02
	declineFactor = 0.03
	noiseStdDev   = 0.05
	minFactor     = 0.1
	maxFactor     = 1.5
)

// YearProjection is the expected performance for one future season.
type YearProjection struct {
	Year              int     `json:"year"`
	Age               int     `json:"age"`
	Performance       float64 `json:"predicted_performance"`
	PerformanceFactor float64 `json:"performance_factor"`
}

type Potential struct {
	CurrentPerformance float64          `json:"current_performance"`
	Confidence         float64          `json:"confidence"`
	Projections        []YearProjection `json:"predictions"`
}

type Service struct {
	rng *rand.Rand
}

func New(_ *do.Injector) (*Service, error) {
	return &Service{}, nil
}

// NewDeterministic fixes the noise source, used by tests and by hosts that
// need reproducible projections.
func NewDeterministic(seed int64) *Service {
	return &Service{rng: rand.New(rand.NewSource(seed))}
}

// PerformanceScore weighs a career into a single [0,1]-ish number: passing
// 30%, finishing 40%, dribbling 20%, defensive work rate 10%.
func (s *Service) PerformanceScore(career *analysis.CareerStats) float64 {
	score := 0.0

	if career.TotalPasses > 0 {
		score += career.PassAccuracy * 0.3
	}
	if career.TotalShots > 0 {
		score += career.ShotAccuracy * 0.4
	}
	if career.TotalDribbles > 0 {
		score += career.DribbleSuccessRate * 0.2
	}
	if career.TotalActions > 0 {
		score += float64(career.DefensiveActions) / float64(career.TotalActions) * 0.1
	}

	return score
}

// PredictPotential projects performance over the coming seasons with a simple
// age curve peaking at 27.5.
func (s *Service) PredictPotential(career *analysis.CareerStats, age, yearsAhead int) (*Potential, error) {
	if career.MatchCount == 0 {
		return nil, fmt.Errorf("no career data for %s", career.PlayerName)
	}
	if yearsAhead < 1 {
		return nil, fmt.Errorf("yearsAhead must be positive, got %d", yearsAhead)
	}

	if age <= 0 {
		age = defaultAge
	}

	current := s.PerformanceScore(career)

	result := &Potential{
		CurrentPerformance: current,
		Confidence:         confidence(career),
		Projections:        make([]YearProjection, 0, yearsAhead),
	}

	for year := 1; year <= yearsAhead; year++ {
		futureAge := age + year

		var factor float64
		if float64(futureAge) <= peakAge {
			factor = 1.0 + (peakAge-float64(futureAge))*improveFactor
		} else {
			factor = 1.0 - (float64(futureAge)-peakAge)*declineFactor
		}

		factor *= 1.0 + s.noise()
		factor = math.Max(minFactor, math.Min(maxFactor, factor))

		result.Projections = append(result.Projections, YearProjection{
			Year:              year,
			Age:               futureAge,
			Performance:       current * factor,
			PerformanceFactor: factor,
		})
	}

	return result, nil
}

func (s *Service) noise() float64 {
	if s.rng == nil {
		return rand.NormFloat64() * noiseStdDev
	}
	return s.rng.NormFloat64() * noiseStdDev
}

// confidence grows with data completeness: how many of the feature families
// actually carry signal.
func confidence(career *analysis.CareerStats) float64 {
	features := []bool{
		career.TotalPasses > 0,
		career.TotalShots > 0,
		career.TotalDribbles > 0,
		career.DefensiveActions > 0,
		career.MatchCount > 1,
	}

	nonZero := 0
	for _, present := range features {
		if present {
			nonZero++
		}
	}

	score := float64(nonZero) / float64(len(features))

	return math.Min(1.0, score*1.2)
}
