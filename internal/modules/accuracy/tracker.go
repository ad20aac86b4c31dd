package accuracy

import (
	"math"
	"sort"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"
)

// Metrics summarizes predicted-vs-actual performance over resolved
// predictions. Bias is mean(predicted) - mean(actual); positive means the
// model over-predicts.
type Metrics struct {
	Samples         int     `json:"samples"`
	MAE             float64 `json:"mae"`
	RMSE            float64 `json:"rmse"`
	MAEPct          float64 `json:"mae_percent"`
	Bias            float64 `json:"bias"`
	MeanActual      float64 `json:"mean_actual"`
	MeanPredicted   float64 `json:"mean_predicted"`
	MedianAbsErr    float64 `json:"median_abs_error"`
	P90AbsErr       float64 `json:"p90_abs_error"`
	AccuracyIn10Pct float64 `json:"accuracy_10pct"`
	AccuracyIn15Pct float64 `json:"accuracy_15pct"`
	AccuracyIn20Pct float64 `json:"accuracy_20pct"`
}

// Tracker computes accuracy metrics from the prediction store.
type Tracker struct {
	repo *Repository
	log  zerolog.Logger
}

// NewTracker creates a new accuracy tracker.
func NewTracker(repo *Repository, log zerolog.Logger) *Tracker {
	return &Tracker{
		repo: repo,
		log:  log.With().Str("component", "accuracy").Logger(),
	}
}

// Summary loads all resolved predictions and computes metrics. An empty
// store yields a zero-sample Metrics, not an error.
func (t *Tracker) Summary() (Metrics, error) {
	preds, err := t.repo.Resolved()
	if err != nil {
		return Metrics{}, err
	}

	var predicted, actual []float64
	for _, p := range preds {
		if p.ActualKBTU == nil {
			continue
		}
		// Non-positive or non-finite pairs carry no signal.
		if !validPair(p.PredictedKBTU, *p.ActualKBTU) {
			continue
		}
		predicted = append(predicted, p.PredictedKBTU)
		actual = append(actual, *p.ActualKBTU)
	}

	return Compute(predicted, actual), nil
}

// Compute derives Metrics from aligned predicted and actual slices. Slices
// of unequal length are truncated to the shorter one.
func Compute(predicted, actual []float64) Metrics {
	n := len(predicted)
	if len(actual) < n {
		n = len(actual)
	}
	if n == 0 {
		return Metrics{}
	}
	predicted = predicted[:n]
	actual = actual[:n]

	absErrs := make([]float64, n)
	pctErrs := make([]float64, n)
	var sqErrSum float64
	var within10, within15, within20 int

	for i := 0; i < n; i++ {
		err := predicted[i] - actual[i]
		absErrs[i] = math.Abs(err)
		sqErrSum += err * err
		pctErrs[i] = absErrs[i] / actual[i] * 100

		if pctErrs[i] <= 10 {
			within10++
		}
		if pctErrs[i] <= 15 {
			within15++
		}
		if pctErrs[i] <= 20 {
			within20++
		}
	}

	meanActual := stat.Mean(actual, nil)
	meanPredicted := stat.Mean(predicted, nil)
	mae := stat.Mean(absErrs, nil)

	maePct := 0.0
	if meanActual > 0 {
		maePct = mae / meanActual * 100
	}

	sorted := append([]float64(nil), absErrs...)
	sort.Float64s(sorted)

	return Metrics{
		Samples:         n,
		MAE:             mae,
		RMSE:            math.Sqrt(sqErrSum / float64(n)),
		MAEPct:          maePct,
		Bias:            meanPredicted - meanActual,
		MeanActual:      meanActual,
		MeanPredicted:   meanPredicted,
		MedianAbsErr:    stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90AbsErr:       stat.Quantile(0.9, stat.Empirical, sorted, nil),
		AccuracyIn10Pct: float64(within10) / float64(n),
		AccuracyIn15Pct: float64(within15) / float64(n),
		AccuracyIn20Pct: float64(within20) / float64(n),
	}
}

func validPair(predicted, actual float64) bool {
	return !math.IsNaN(predicted) && !math.IsInf(predicted, 0) &&
		!math.IsNaN(actual) && !math.IsInf(actual, 0) &&
		predicted >= 0 && actual > 0
}
