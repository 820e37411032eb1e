package signals

import (
	"math"

	"github.com/markcheno/go-talib"
)

const rsiPeriod = 14

// ScoreMomentum rates momentum 0-3 from the latest RSI(14) value.
// Too few bars for a meaningful RSI returns the neutral 1.
func ScoreMomentum(closes []float64) int {
	if len(closes) < rsiPeriod+1 {
		return 1
	}

	rsi := talib.Rsi(closes, rsiPeriod)
	last := rsi[len(rsi)-1]

	if math.IsNaN(last) {
		return 1
	}

	switch {
	case last >= 60:
		return 3
	case last >= 50:
		return 2
	case last >= 40:
		return 1
	default:
		return 0
	}
}
