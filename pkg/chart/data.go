package chart

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/madsen/postscript-graph/pkg/errors"
)

// Point is one XY observation.
type Point struct {
	X, Y float64
}

// BarSeries is one named value column of a bar chart; Values align with
// the chart's row labels.
type BarSeries struct {
	Name   string
	Values []float64
}

// XYSeries is one named point sequence of an XY chart.
type XYSeries struct {
	Name   string
	Points []Point
}

// readRecords reads delimited rows, rejecting ragged input before any
// numbers are parsed. encoding/csv enforces a uniform field count per
// record, which is exactly the shape guarantee the layout engine relies
// on.
func readRecords(r io.Reader) ([][]string, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeBadData, err, "malformed delimited data")
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeMissingData, "no data rows")
	}
	return records, nil
}

func parseCell(row, col int, cell string) (float64, error) {
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeBadData, "row %d column %d: %q is not numeric", row, col, cell)
	}
	return v, nil
}

// ReadBarCSV parses bar-chart data: one row per bar slot, first column
// the slot label, remaining columns one value per series. With header
// set, the first row names the series.
func ReadBarCSV(r io.Reader, header bool) ([]string, []BarSeries, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, nil, err
	}
	if len(records[0]) < 2 {
		return nil, nil, errors.New(errors.ErrCodeBadData, "bar data needs a label column and at least one value column")
	}

	nseries := len(records[0]) - 1
	series := make([]BarSeries, nseries)
	for i := range series {
		series[i].Name = "series " + strconv.Itoa(i+1)
	}

	rows := records
	if header {
		for i, name := range records[0][1:] {
			series[i].Name = name
		}
		rows = records[1:]
		if len(rows) == 0 {
			return nil, nil, errors.New(errors.ErrCodeMissingData, "no data rows after header")
		}
	}

	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row[0]
		for j, cell := range row[1:] {
			v, err := parseCell(i, j+1, cell)
			if err != nil {
				return nil, nil, err
			}
			series[j].Values = append(series[j].Values, v)
		}
	}
	return labels, series, nil
}

// ReadXYCSV parses XY-chart data: first column the x value, remaining
// columns one y value per series. With header set, the first row names
// the series.
func ReadXYCSV(r io.Reader, header bool) ([]XYSeries, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}
	if len(records[0]) < 2 {
		return nil, errors.New(errors.ErrCodeBadData, "xy data needs an x column and at least one y column")
	}

	nseries := len(records[0]) - 1
	series := make([]XYSeries, nseries)
	for i := range series {
		series[i].Name = "series " + strconv.Itoa(i+1)
	}

	rows := records
	if header {
		for i, name := range records[0][1:] {
			series[i].Name = name
		}
		rows = records[1:]
		if len(rows) == 0 {
			return nil, errors.New(errors.ErrCodeMissingData, "no data rows after header")
		}
	}

	for i, row := range rows {
		x, err := parseCell(i, 0, row[0])
		if err != nil {
			return nil, err
		}
		for j, cell := range row[1:] {
			y, err := parseCell(i, j+1, cell)
			if err != nil {
				return nil, err
			}
			series[j].Points = append(series[j].Points, Point{X: x, Y: y})
		}
	}
	return series, nil
}
