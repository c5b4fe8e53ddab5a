package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	m "sigtest/models"
)

// WriteReturns serializes a series back into the same two column format LoadReturns reads.
// Floats are written with the shortest exact representation so a reload gives the same bits.
func WriteReturns(w io.Writer, series *m.ReturnSeries) error {
	writer := csv.NewWriter(w)

	indexName, valueName := series.IndexName, series.ValueName
	if indexName == "" {
		indexName = m.DefaultIndexName
	}
	if valueName == "" {
		valueName = m.DefaultValueName
	}

	if err := writer.Write([]string{indexName, valueName}); err != nil {
		return fmt.Errorf("error writing returns header: %w", err)
	}

	for i, o := range series.Observations {
		row := []string{o.Label, strconv.FormatFloat(o.Return, 'f', -1, 64)}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("error writing return row %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// SaveReturns writes the series to path, replacing whatever is there
func SaveReturns(path string, series *m.ReturnSeries) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating returns file %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing returns file %s: %w", path, cerr)
		}
	}()

	return WriteReturns(file, series)
}
