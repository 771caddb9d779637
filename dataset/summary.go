package dataset

import (
	"errors"

	"github.com/montanaflynn/stats"
)

// ErrEmptyDataset is reported by Summary on a dataset with no records.
var ErrEmptyDataset = errors.New("dataset: no records to summarize")

// FieldSummary describes one numeric column.
type FieldSummary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stdDev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summary aggregates the numeric columns plus headline counts.
type Summary struct {
	Count       int            `json:"count"`
	ActiveCount int            `json:"activeCount"`
	PlanCounts  map[string]int `json:"planCounts"`
	Score       FieldSummary   `json:"score"`
	Visits      FieldSummary   `json:"visits"`
}

// Summarize computes descriptive statistics over the dataset.
func (ds *Dataset) Summarize() (*Summary, error) {
	if len(ds.Records) == 0 {
		return nil, ErrEmptyDataset
	}

	scores := make(stats.Float64Data, len(ds.Records))
	visits := make(stats.Float64Data, len(ds.Records))
	s := &Summary{
		Count:      len(ds.Records),
		PlanCounts: make(map[string]int),
	}
	for i := range ds.Records {
		r := &ds.Records[i]
		scores[i] = r.Score
		visits[i] = float64(r.Visits)
		s.PlanCounts[r.Plan]++
		if r.Active {
			s.ActiveCount++
		}
	}

	var err error
	if s.Score, err = summarizeField(scores); err != nil {
		return nil, err
	}
	if s.Visits, err = summarizeField(visits); err != nil {
		return nil, err
	}
	return s, nil
}

func summarizeField(data stats.Float64Data) (FieldSummary, error) {
	var fs FieldSummary
	var err error
	if fs.Mean, err = stats.Mean(data); err != nil {
		return fs, err
	}
	if fs.Median, err = stats.Median(data); err != nil {
		return fs, err
	}
	if fs.StdDev, err = stats.StandardDeviation(data); err != nil {
		return fs, err
	}
	if fs.Min, err = stats.Min(data); err != nil {
		return fs, err
	}
	if fs.Max, err = stats.Max(data); err != nil {
		return fs, err
	}
	return fs, nil
}
