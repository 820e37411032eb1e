package macro

// Score applies the three pillar rules, each worth at most +1:
//
//   - Retail: actual beats forecast, or beats previous when no forecast
//     comparison lands. Actual alone with nothing to beat scores nothing.
//   - PMI: expansion (current >= 50) is checked first and wins even when
//     the index is falling; otherwise improvement over previous counts.
//   - CPI: hot print (actual > forecast); with no forecast at all, a
//     print at or above 2.0 YoY counts (supports higher-for-longer rates).
//
// Absent readings and absent fields contribute nothing. The clamp to
// [0,3] is defensive; the rules cannot structurally leave the range.
func Score(retail *RetailSales, pmi *PMI, cpi *CPI) int {
	score := 0

	if retail != nil && retail.Actual != nil {
		a := *retail.Actual
		if (retail.Forecast != nil && a > *retail.Forecast) ||
			(retail.Previous != nil && a > *retail.Previous) {
			score++
		}
	}

	if pmi != nil && pmi.Current != nil {
		cur := *pmi.Current
		if cur >= 50.0 {
			score++
		} else if pmi.Previous != nil && cur > *pmi.Previous {
			score++
		}
	}

	if cpi != nil && cpi.ActualYoY != nil {
		act := *cpi.ActualYoY
		if cpi.ForecastYoY != nil {
			if act > *cpi.ForecastYoY {
				score++
			}
		} else if act >= 2.0 {
			score++
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 3 {
		score = 3
	}
	return score
}

// Bias maps a score to its display label. No other string is ever
// emitted for a given score.
func Bias(score int) string {
	switch {
	case score >= 3:
		return BiasStrong
	case score == 2:
		return BiasSupportive
	case score == 1:
		return BiasNeutral
	default:
		return BiasWeak
	}
}
