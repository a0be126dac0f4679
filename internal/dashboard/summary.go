package dashboard

import (
	"github.com/montanaflynn/stats"
)

// ActivitySummary describes pulls per active day.
type ActivitySummary struct {
	Days   int
	Mean   float64
	Median float64
	Max    float64
}

// Summarize computes the activity summary of a ByDay series.
func Summarize(days []Point) (ActivitySummary, error) {
	if len(days) == 0 {
		return ActivitySummary{}, nil
	}

	data := make(stats.Float64Data, 0, len(days))
	for _, d := range days {
		data = append(data, float64(d.Count))
	}

	mean, err := data.Mean()
	if err != nil {
		return ActivitySummary{}, err
	}
	median, err := data.Median()
	if err != nil {
		return ActivitySummary{}, err
	}
	peak, err := data.Max()
	if err != nil {
		return ActivitySummary{}, err
	}

	return ActivitySummary{
		Days:   len(days),
		Mean:   mean,
		Median: median,
		Max:    peak,
	}, nil
}
