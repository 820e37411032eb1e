package signals

import (
	"github.com/markcheno/go-talib"
)

// ScoreTrend rates the trend 0-3 from daily closes (oldest first):
// price above the 50-day average, 50-day above 200-day, and a rising
// 50-day over the last 5 bars each score one point. Too little history
// to judge returns the neutral 1.
func ScoreTrend(closes []float64) int {
	if len(closes) < 60 {
		return 1
	}

	sma50 := talib.Sma(closes, 50)

	// Without enough bars for a real 200-day average, reuse the 50-day;
	// the cross condition then never awards its point
	sma200 := sma50
	if len(closes) >= 200 {
		sma200 = talib.Sma(closes, 200)
	}

	last := len(closes) - 1
	score := 0

	if closes[last] > sma50[last] {
		score++
	}

	if sma50[last] > sma200[last] {
		score++
	}

	if sma50[last]-sma50[last-5] > 0 {
		score++
	}

	return score
}
