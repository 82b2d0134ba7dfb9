package domain

// PricePoint is one sample of a token's price time series.
type PricePoint struct {
	Timestamp int64   `json:"timestamp"` // epoch milliseconds
	Price     float64 `json:"price"`
}

// Chart windows supported by the chart provider, in days.
const (
	ChartWindowDay   = 1
	ChartWindowWeek  = 7
	ChartWindowMonth = 30
)

// ChartPoints returns the number of hourly samples for a window.
// Unsupported windows fall back to the 1-day count.
func ChartPoints(windowDays int) int {
	switch windowDays {
	case ChartWindowWeek:
		return 168
	case ChartWindowMonth:
		return 720
	default:
		return 24
	}
}

// MarketStats holds the derived market figures shown alongside a chart.
type MarketStats struct {
	High24h   float64 `json:"high_24h"`
	Low24h    float64 `json:"low_24h"`
	MarketCap float64 `json:"market_cap"`
	Volume24h float64 `json:"volume_24h"`
}
