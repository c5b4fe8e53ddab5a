package models

import "fmt"

// SignificanceResult is the outcome of the one tailed t-test (H1: mean return > 0)
type SignificanceResult struct {
	TStatistic       float64 `json:"tStatistic"`
	PValue           float64 `json:"pValue"` // one tailed
	Mean             float64 `json:"mean"`
	StdDev           float64 `json:"stdDev"`
	N                int     `json:"n"`
	DegreesOfFreedom int     `json:"degreesOfFreedom"`
}

// String renders the two line console report
func (sr SignificanceResult) String() string {
	return fmt.Sprintf("t-statistic: %.3f\np-value: %.6f", sr.TStatistic, sr.PValue)
}

// IsSignificant reports if the null hypothesis is rejected at level alpha
func (sr SignificanceResult) IsSignificant(alpha float64) bool {
	return sr.PValue < alpha
}
