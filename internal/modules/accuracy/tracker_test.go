package accuracy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMetrics(t *testing.T) {
	predicted := []float64{100, 110, 90, 105}
	actual := []float64{100, 100, 100, 100}

	m := Compute(predicted, actual)

	assert.Equal(t, 4, m.Samples)
	// Absolute errors: 0, 10, 10, 5.
	assert.InDelta(t, 6.25, m.MAE, 1e-9)
	assert.InDelta(t, math.Sqrt((0+100+100+25)/4.0), m.RMSE, 1e-9)
	assert.InDelta(t, 6.25, m.MAEPct, 1e-9)
	assert.InDelta(t, 1.25, m.Bias, 1e-9)
	assert.InDelta(t, 100.0, m.MeanActual, 1e-9)
	assert.InDelta(t, 101.25, m.MeanPredicted, 1e-9)

	// Errors of 0%, 10%, 10%, 5% are all within 10%.
	assert.InDelta(t, 1.0, m.AccuracyIn10Pct, 1e-9)
	assert.InDelta(t, 1.0, m.AccuracyIn20Pct, 1e-9)
}

func TestComputeUnderPredictionBias(t *testing.T) {
	m := Compute([]float64{80, 85}, []float64{100, 100})
	assert.InDelta(t, -17.5, m.Bias, 1e-9)
	assert.InDelta(t, 0.0, m.AccuracyIn10Pct, 1e-9)
	assert.InDelta(t, 0.5, m.AccuracyIn15Pct, 1e-9)
	assert.InDelta(t, 1.0, m.AccuracyIn20Pct, 1e-9)
}

func TestComputeEmpty(t *testing.T) {
	m := Compute(nil, nil)
	assert.Equal(t, 0, m.Samples)
	assert.Equal(t, 0.0, m.MAE)
}

func TestComputeTruncatesMismatchedLengths(t *testing.T) {
	m := Compute([]float64{100, 200, 300}, []float64{100})
	assert.Equal(t, 1, m.Samples)
	assert.Equal(t, 0.0, m.MAE)
}

func TestValidPair(t *testing.T) {
	assert.True(t, validPair(100, 90))
	assert.False(t, validPair(100, 0), "zero actual would divide by zero")
	assert.False(t, validPair(-5, 90))
	assert.False(t, validPair(math.NaN(), 90))
	assert.False(t, validPair(100, math.Inf(1)))
}
