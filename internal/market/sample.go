package market

import (
	"time"

	"github.com/openquant/vega/internal/core"
)

// Dataset bundles the seed data the dashboard serves. All records are
// display-only; nothing mutates them after seeding.
type Dataset struct {
	Quotes      []core.Quote
	Volatility  core.VolatilitySnapshot
	Strategies  []core.Strategy
	Chains      []core.OptionChain
	Performance []core.PerformancePoint
	Signals     []core.Signal
}

// SampleDataset returns the built-in dataset used when no live feed is
// configured. Quotes, chains and the performance series are anchored to
// "now" so DTE and chart axes stay sensible.
func SampleDataset(now time.Time) Dataset {
	return Dataset{
		Quotes:      sampleQuotes(),
		Volatility:  sampleVolatility(),
		Strategies:  sampleStrategies(),
		Chains:      sampleChains(now),
		Performance: samplePerformance(now),
		Signals:     sampleSignals(now),
	}
}

func sampleQuotes() []core.Quote {
	return []core.Quote{
		{Symbol: "SPY", Price: 448.73, Change: 2.15, ChangePercent: 0.48, Volume: 45678900},
		{Symbol: "QQQ", Price: 378.42, Change: -1.12, ChangePercent: -0.30, Volume: 32145600},
		{Symbol: "IWM", Price: 198.56, Change: 0.87, ChangePercent: 0.44, Volume: 18234500},
		{Symbol: "SPX", Price: 4478.12, Change: 21.30, ChangePercent: 0.48, Volume: 2134500},
	}
}

func sampleVolatility() core.VolatilitySnapshot {
	return core.VolatilitySnapshot{
		Level:      14.23,
		Change:     -0.45,
		Regime:     core.RegimeLow,
		Percentile: 23.5,
	}
}

func sampleStrategies() []core.Strategy {
	return []core.Strategy{
		{
			ID:         "strat_001",
			Symbol:     "SPY",
			Type:       "iron_condor",
			Status:     core.StrategyOpen,
			PnL:        156.50,
			MaxProfit:  245.00,
			MaxLoss:    -755.00,
			Confidence: 0.78,
		},
		{
			ID:         "strat_002",
			Symbol:     "QQQ",
			Type:       "put_credit_spread",
			Status:     core.StrategyOpen,
			PnL:        -42.25,
			MaxProfit:  110.00,
			MaxLoss:    -390.00,
			Confidence: 0.64,
		},
		{
			ID:         "strat_003",
			Symbol:     "SPY",
			Type:       "call_debit_spread",
			Status:     core.StrategyClosed,
			PnL:        212.00,
			MaxProfit:  300.00,
			MaxLoss:    -200.00,
			Confidence: 0.82,
		},
		{
			ID:         "strat_004",
			Symbol:     "IWM",
			Type:       "iron_butterfly",
			Status:     core.StrategyPending,
			PnL:        0,
			MaxProfit:  180.00,
			MaxLoss:    -320.00,
			Confidence: 0.57,
		},
	}
}

func sampleSignals(now time.Time) []core.Signal {
	return []core.Signal{
		{
			Symbol:     "SPY",
			Type:       core.SignalLongCall,
			Strength:   core.StrengthStrong,
			Confidence: 0.87,
			Reasoning: []string{
				"gamma exposure flipped positive above 447",
				"0DTE call volume running 2.3x average",
				"volatility index percentile below 25",
			},
			GeneratedAt: now.Add(-4 * time.Minute),
		},
		{
			Symbol:     "QQQ",
			Type:       core.SignalLongPut,
			Strength:   core.StrengthModerate,
			Confidence: 0.72,
			Reasoning: []string{
				"rejected at opening-range high on declining breadth",
				"put skew steepening on 0DTE expiry",
			},
			GeneratedAt: now.Add(-11 * time.Minute),
		},
		{
			Symbol:     "SPX",
			Type:       core.SignalNeutral,
			Strength:   core.StrengthWeak,
			Confidence: 0.55,
			Reasoning: []string{
				"price pinned between large gamma strikes",
			},
			GeneratedAt: now.Add(-26 * time.Minute),
		},
		{
			Symbol:     "IWM",
			Type:       core.SignalShortPut,
			Strength:   core.StrengthModerate,
			Confidence: 0.68,
			Reasoning: []string{
				"small-cap relative strength improving",
				"put premium rich versus realized volatility",
			},
			GeneratedAt: now.Add(-42 * time.Minute),
		},
	}
}

func sampleChains(now time.Time) []core.OptionChain {
	// Same-day expiry at 16:00 local, the 0DTE case.
	expiry := time.Date(now.Year(), now.Month(), now.Day(), 16, 0, 0, 0, now.Location())

	return []core.OptionChain{
		buildChain("SPY", 448.73, expiry),
		buildChain("QQQ", 378.42, expiry),
		buildChain("IWM", 198.56, expiry),
	}
}

// buildChain lays out a small strike ladder around spot with call and put
// rows per strike. Values are representative, not derived from a model.
func buildChain(symbol string, spot float64, expiry time.Time) core.OptionChain {
	atm := float64(int(spot/5)) * 5
	strikes := []float64{atm - 10, atm - 5, atm, atm + 5, atm + 10}

	contracts := make([]core.OptionContract, 0, len(strikes)*2)
	for i, strike := range strikes {
		moneyness := spot - strike
		callMid := 0.35 + 0.45*float64(len(strikes)-i)
		putMid := 0.35 + 0.45*float64(i+1)
		if moneyness > 0 {
			callMid += moneyness * 0.9
		} else {
			putMid += -moneyness * 0.9
		}

		contracts = append(contracts,
			core.OptionContract{
				Strike:       strike,
				Side:         core.SideCall,
				Bid:          callMid - 0.05,
				Ask:          callMid + 0.05,
				Last:         callMid,
				Volume:       int64(12000 - 2100*i),
				OpenInterest: int64(34000 - 4800*i),
				IV:           0.12 + 0.015*float64(i),
				Delta:        0.92 - 0.18*float64(i),
			},
			core.OptionContract{
				Strike:       strike,
				Side:         core.SidePut,
				Bid:          putMid - 0.05,
				Ask:          putMid + 0.05,
				Last:         putMid,
				Volume:       int64(4000 + 2300*i),
				OpenInterest: int64(15000 + 5200*i),
				IV:           0.13 + 0.012*float64(i),
				Delta:        -0.08 - 0.18*float64(i),
			},
		)
	}

	return core.OptionChain{
		Symbol:    symbol,
		Expiry:    expiry,
		Spot:      spot,
		Contracts: contracts,
	}
}

func samplePerformance(now time.Time) []core.PerformancePoint {
	// 30 trading days ending today, portfolio vs benchmark indexed from 100k.
	deltas := []struct{ portfolio, benchmark float64 }{
		{0, 0}, {420, 310}, {-180, 120}, {650, 400}, {910, 520},
		{760, 490}, {1240, 700}, {1490, 810}, {1320, 760}, {1780, 950},
		{2050, 1100}, {1880, 1040}, {2310, 1250}, {2620, 1380}, {2480, 1310},
		{2890, 1490}, {3140, 1620}, {2950, 1550}, {3380, 1740}, {3610, 1860},
		{3420, 1790}, {3850, 1980}, {4120, 2090}, {3940, 2010}, {4390, 2210},
		{4650, 2330}, {4480, 2270}, {4920, 2450}, {5180, 2560}, {5460, 2690},
	}

	const base = 100_000.0
	points := make([]core.PerformancePoint, len(deltas))
	start := now.AddDate(0, 0, -len(deltas)+1)
	for i, d := range deltas {
		points[i] = core.PerformancePoint{
			Date:      start.AddDate(0, 0, i),
			Portfolio: base + d.portfolio,
			Benchmark: base + d.benchmark,
		}
	}
	return points
}
