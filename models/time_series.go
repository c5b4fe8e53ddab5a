package models

import (
	"github.com/guregu/null/v5"

	ex "sigtest/extensions"
)

const (
	DefaultIndexName = "date"
	DefaultValueName = "return"
)

// ReturnObservation is one row of the input file, a labelled net return for one period
type ReturnObservation struct {
	Label  string    // raw first column, kept as is for writing back out
	Date   null.Time // label parsed as a date, null when it isnt one
	Return float64
}

// ReturnSeries is the ordered set of net returns along with the header it was read with
type ReturnSeries struct {
	IndexName    string
	ValueName    string
	Observations []ReturnObservation
}

func (rs *ReturnSeries) Len() int {
	return len(rs.Observations)
}

// Values returns the returns in file order, this is what gets handed to the t-test
func (rs *ReturnSeries) Values() []float64 {
	return ex.Map(rs.Observations, func(o ReturnObservation) float64 { return o.Return })
}

// DatedObservations returns only the rows whose label parsed as a date
func (rs *ReturnSeries) DatedObservations() []ReturnObservation {
	return ex.FilterMultiple(rs.Observations, func(o ReturnObservation) bool { return o.Date.Valid })
}
