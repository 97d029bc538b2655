// Package analytics computes the summary statistics shown on the
// analytics panel from the portfolio-vs-benchmark series.
package analytics

import (
	"math"

	"github.com/openquant/vega/internal/core"
)

// Summary holds headline performance statistics, returns in percent.
type Summary struct {
	TotalReturn     float64 `json:"total_return"`
	BenchmarkReturn float64 `json:"benchmark_return"`
	Alpha           float64 `json:"alpha"`
	MaxDrawdown     float64 `json:"max_drawdown"`
	SharpeRatio     float64 `json:"sharpe_ratio"`
	BestDay         float64 `json:"best_day"`
	WorstDay        float64 `json:"worst_day"`
}

// Summarize computes statistics over the performance series. Fewer than
// two points yields a zero summary.
func Summarize(points []core.PerformancePoint) Summary {
	if len(points) < 2 {
		return Summary{}
	}

	portfolio := make([]float64, len(points))
	benchmark := make([]float64, len(points))
	for i, p := range points {
		portfolio[i] = p.Portfolio
		benchmark[i] = p.Benchmark
	}

	returns := dailyReturns(portfolio)

	best, worst := returns[0], returns[0]
	for _, r := range returns[1:] {
		if r > best {
			best = r
		}
		if r < worst {
			worst = r
		}
	}

	totalReturn := (portfolio[len(portfolio)-1]/portfolio[0] - 1) * 100
	benchReturn := (benchmark[len(benchmark)-1]/benchmark[0] - 1) * 100

	return Summary{
		TotalReturn:     totalReturn,
		BenchmarkReturn: benchReturn,
		Alpha:           totalReturn - benchReturn,
		MaxDrawdown:     maxDrawdown(portfolio) * 100,
		SharpeRatio:     sharpeRatio(returns),
		BestDay:         best * 100,
		WorstDay:        worst * 100,
	}
}

// SMA calculates a simple moving average overlay for the chart.
// Returns a slice of length len(values) - period + 1.
func SMA(values []float64, period int) []float64 {
	if period <= 0 || len(values) < period {
		return []float64{}
	}

	result := make([]float64, 0, len(values)-period+1)

	var sum float64
	for i := 0; i < period; i++ {
		sum += values[i]
	}
	result = append(result, sum/float64(period))

	for i := period; i < len(values); i++ {
		sum = sum - values[i-period] + values[i]
		result = append(result, sum/float64(period))
	}

	return result
}

func dailyReturns(values []float64) []float64 {
	returns := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		if values[i-1] == 0 {
			returns = append(returns, 0)
			continue
		}
		returns = append(returns, values[i]/values[i-1]-1)
	}
	return returns
}

// maxDrawdown finds the largest peak-to-trough decline of the equity curve.
func maxDrawdown(values []float64) float64 {
	var maxDD float64
	peak := values[0]

	for _, v := range values {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			dd := (peak - v) / peak
			if dd > maxDD {
				maxDD = dd
			}
		}
	}

	return maxDD
}

// sharpeRatio computes annualized risk-adjusted return over daily returns.
// Assumes a risk-free rate of 0.
func sharpeRatio(returns []float64) float64 {
	if len(returns) < 2 {
		return 0
	}

	var sum float64
	for _, r := range returns {
		sum += r
	}
	mean := sum / float64(len(returns))

	var variance float64
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	stdDev := math.Sqrt(variance / float64(len(returns)-1))

	if stdDev == 0 {
		return 0
	}

	// Annualize assuming ~252 trading days.
	return (mean * 252) / (stdDev * math.Sqrt(252))
}
