package core

import (
	"time"

	ex "sigtest/extensions"
	l "sigtest/loader"
	m "sigtest/models"
)

// RunSignificanceTest loads the returns at path and tests if their mean is significantly above zero
func (sc *ServiceContext) RunSignificanceTest(path string) (*m.SignificanceResult, error) {
	start := time.Now()
	logger := sc.Logger.With().Str("file", path).Logger()

	logger.Info().Msg("Loading returns")
	series, err := l.LoadReturns(path)
	if err != nil {
		logger.Error().Err(err).Msg("Error loading returns")
		return nil, err
	}

	logSeriesSummary(sc, series, path)

	logger.Info().Dur("elapsed", time.Since(start)).Msg("Running one tailed t-test")
	res, err := Analyze(series)
	if err != nil {
		logger.Error().Err(err).Int("observations", series.Len()).Msg("Error running t-test")
		return nil, err
	}

	logger.Info().
		Float64("mean", res.Mean).
		Float64("stdDev", res.StdDev).
		Int("degreesOfFreedom", res.DegreesOfFreedom).
		Dur("elapsed", time.Since(start)).
		Msg("t-test completed")

	return res, nil
}

func logSeriesSummary(sc *ServiceContext, series *m.ReturnSeries, path string) {
	event := sc.Logger.Debug().Str("file", path).Int("observations", series.Len())

	// labels are usually dates, when they are its handy to see the span being tested
	if dated := series.DatedObservations(); len(dated) > 0 {
		event = event.
			Str("first", ex.FmtShort(dated[0].Date.Time)).
			Str("last", ex.FmtShort(dated[len(dated)-1].Date.Time))
	}

	event.Msg("Loaded returns")
}
