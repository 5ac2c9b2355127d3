// Package analysis post-processes performance logs written by the
// swimming-foil simulations: whitespace-delimited numeric time series
// plus a filename convention that encodes the case parameters.
package analysis

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Column indexes into a performance record. Files always carry Time;
// trailing columns are optional.
type Column int

const (
	Time Column = iota
	Amplitude
	Frequency
	Speed
	Thrust
	Power
	Efficiency
	numColumns
)

var columnNames = [numColumns]string{
	"time", "amplitude", "frequency", "speed", "thrust", "power", "efficiency",
}

func (c Column) String() string {
	if c < 0 || c >= numColumns {
		return fmt.Sprintf("column(%d)", int(c))
	}
	return columnNames[c]
}

// Series is one performance log, rows ordered as read.
type Series struct {
	Label string
	cols  [][]float64
}

// DefaultTransient is the startup interval discarded before
// time-averaging, in simulation time units.
const DefaultTransient = 5.0

// LoadPerformanceFile parses a whitespace or tab delimited numeric
// file. Lines starting with # are comments. Every data row must have
// the same column count, at least one (time) and at most seven.
func LoadPerformanceFile(path string) (*Series, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open performance file %s: %w", path, err)
	}
	defer file.Close()

	s := &Series{Label: path}
	var ncols int
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if ncols == 0 {
			ncols = len(fields)
			if ncols < 1 || ncols > int(numColumns) {
				return nil, fmt.Errorf("%s:%d: %d columns, expected 1 to %d",
					path, lineNo, ncols, int(numColumns))
			}
			s.cols = make([][]float64, ncols)
		}
		if len(fields) != ncols {
			return nil, fmt.Errorf("%s:%d: %d columns, expected %d",
				path, lineNo, len(fields), ncols)
		}
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad value %q", path, lineNo, f)
			}
			s.cols[i] = append(s.cols[i], v)
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}
	if ncols == 0 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}
	return s, nil
}

// Len is the number of time samples.
func (s *Series) Len() int { return len(s.cols[0]) }

// Has reports whether the file carried the given column.
func (s *Series) Has(c Column) bool { return int(c) >= 0 && int(c) < len(s.cols) }

// Col returns the raw samples for a column, or nil if absent.
func (s *Series) Col(c Column) []float64 {
	if !s.Has(c) {
		return nil
	}
	return s.cols[c]
}

// TimeAverage is the mean of a column over samples with
// time >= startTime. ok is false when the column is absent or no
// sample survives the transient cutoff.
func (s *Series) TimeAverage(c Column, startTime float64) (avg float64, ok bool) {
	if !s.Has(c) {
		return
	}
	var (
		time = s.cols[Time]
		vals []float64
	)
	for i, tm := range time {
		if tm >= startTime {
			vals = append(vals, s.cols[c][i])
		}
	}
	if len(vals) == 0 {
		return
	}
	return stat.Mean(vals, nil), true
}
