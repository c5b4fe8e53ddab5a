package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	ex "sigtest/extensions"
	m "sigtest/models"
)

const (
	NullHypothesisMean  = 0.0
	MinimumObservations = 2
)

// Analyze runs the one tailed t-test on a loaded series and packages the result
func Analyze(series *m.ReturnSeries) (*m.SignificanceResult, error) {
	returns := series.Values()

	tStat, pValue, err := AnalyzeReturns(returns)
	if err != nil {
		return nil, err
	}

	mean, stdDev, n := SampleStatistics(returns)

	return &m.SignificanceResult{
		TStatistic:       tStat,
		PValue:           pValue,
		Mean:             mean,
		StdDev:           stdDev,
		N:                n,
		DegreesOfFreedom: n - 1,
	}, nil
}

// AnalyzeReturns performs a one sample t-test of the returns against a population mean of zero,
// with the alternative hypothesis that the true mean is greater than zero.
// Returns the t-statistic and the one tailed p-value.
func AnalyzeReturns(returns []float64) (float64, float64, error) {
	n := len(returns)
	if n < MinimumObservations {
		return 0, 0, fmt.Errorf("%w, got %d", ErrInsufficientData, n)
	}

	if floats.HasNaN(returns) || math.IsInf(floats.Max(returns), 1) || math.IsInf(floats.Min(returns), -1) {
		return 0, 0, ErrNonFiniteValue
	}

	tStat, err := tStatistic(returns)
	if err != nil {
		return 0, 0, err
	}

	pTwoTailed := TwoTailedPValue(tStat, float64(n-1))

	return tStat, OneTailedPValue(tStat, pTwoTailed), nil
}

// SampleStatistics returns the mean and the sample (n-1) standard deviation
func SampleStatistics(returns []float64) (mean, stdDev float64, n int) {
	n = len(returns)

	// a constant series has no spread, dont let rounding in the mean say otherwise
	if ex.AreAllEqual(returns) {
		if n == 0 {
			return math.NaN(), math.NaN(), n
		}
		return returns[0], 0, n
	}

	mean, stdDev = stat.MeanStdDev(returns, nil)
	return mean, stdDev, n
}

func tStatistic(returns []float64) (float64, error) {
	mean, stdDev, n := SampleStatistics(returns)
	diff := mean - NullHypothesisMean

	if stdDev == 0 {
		if diff == 0 {
			return 0, ErrDegenerateInput
		}
		// no variance but a non zero mean, t blows up in the direction of the mean
		return math.Inf(int(math.Copysign(1, diff))), nil
	}

	standardError := stdDev / math.Sqrt(float64(n))
	return diff / standardError, nil
}

// TwoTailedPValue is P(|T| >= |t|) for a Student's t with df degrees of freedom.
// Uses the survival function rather than 1 - CDF so small p-values keep their precision.
func TwoTailedPValue(tStat, df float64) float64 {
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * tDist.Survival(math.Abs(tStat))
}

// OneTailedPValue converts a two tailed p-value to one tailed for H1: mean > 0
func OneTailedPValue(tStat, pTwoTailed float64) float64 {
	if tStat > 0 {
		return pTwoTailed / 2
	}
	return 1 - pTwoTailed/2
}
