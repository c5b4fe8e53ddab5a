package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/guregu/null/v5"

	m "sigtest/models"
)

const (
	DefaultFileName = "net_returns.csv"

	indexColumn = 0
	valueColumn = 1
)

var (
	labelDateFormats = []string{
		time.DateOnly,
		time.DateTime,
		time.RFC3339,
	}

	errMissingColumn = errors.New("expected a label column and a return column")
	errEmptyCell     = errors.New("return value is empty")
	errNotFinite     = errors.New("return value is not finite")
)

// LoadReturns reads a two column (label, return) csv file into a return series
func LoadReturns(path string) (*m.ReturnSeries, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
		}
		return nil, fmt.Errorf("error opening returns file %s: %w", path, err)
	}
	defer file.Close()

	series, err := ReadReturns(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return series, nil
}

// ReadReturns parses comma delimited returns from r. The first row is the header,
// the first column is the row label and the second is the return, anything after is ignored.
func ReadReturns(r io.Reader) (*m.ReturnSeries, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are reported as parse errors below, not by csv
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, wrapCsvError(err)
	}
	if len(header) <= valueColumn {
		return nil, &ParseError{Line: 1, Err: errMissingColumn}
	}

	series := &m.ReturnSeries{
		IndexName:    strings.TrimSpace(header[indexColumn]),
		ValueName:    strings.TrimSpace(header[valueColumn]),
		Observations: []m.ReturnObservation{},
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapCsvError(err)
		}

		line, _ := reader.FieldPos(0)
		observation, err := parseObservation(record, line)
		if err != nil {
			return nil, err
		}

		series.Observations = append(series.Observations, observation)
	}

	if series.Len() == 0 {
		return nil, ErrEmptyFile
	}

	return series, nil
}

func parseObservation(record []string, line int) (m.ReturnObservation, error) {
	if len(record) <= valueColumn {
		return m.ReturnObservation{}, &ParseError{Line: line, Err: errMissingColumn}
	}

	label := strings.TrimSpace(record[indexColumn])
	value, err := parseReturn(record[valueColumn])
	if err != nil {
		return m.ReturnObservation{}, &ParseError{Line: line, Value: record[valueColumn], Err: err}
	}

	return m.ReturnObservation{
		Label:  label,
		Date:   parseLabelDate(label),
		Return: value,
	}, nil
}

func parseReturn(val string) (float64, error) {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0, errEmptyCell
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, err
	}

	// ParseFloat happily accepts "NaN" and "Inf"
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotFinite
	}

	return f, nil
}

func parseLabelDate(label string) null.Time {
	for _, format := range labelDateFormats {
		t, err := time.Parse(format, label)
		if err != nil {
			continue
		}
		return null.TimeFrom(t)
	}
	return null.Time{}
}

func wrapCsvError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Line: csvErr.Line, Err: csvErr}
	}
	return fmt.Errorf("error reading returns: %w", err)
}
