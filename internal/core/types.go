package core

import "time"

// SignalType classifies the direction of a trading signal.
type SignalType string

const (
	SignalLongCall  SignalType = "long_call"
	SignalLongPut   SignalType = "long_put"
	SignalShortCall SignalType = "short_call"
	SignalShortPut  SignalType = "short_put"
	SignalNeutral   SignalType = "neutral"
)

// Strength buckets a signal's conviction.
type Strength string

const (
	StrengthWeak     Strength = "weak"
	StrengthModerate Strength = "moderate"
	StrengthStrong   Strength = "strong"
)

// Regime labels the prevailing volatility environment.
type Regime string

const (
	RegimeLow      Regime = "low"
	RegimeNormal   Regime = "normal"
	RegimeElevated Regime = "elevated"
	RegimeExtreme  Regime = "extreme"
)

// Quote represents a display-only price quote.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	Volume        int64   `json:"volume"`
}

// IsValid checks if the quote has required fields.
func (q Quote) IsValid() bool {
	return q.Symbol != "" && q.Price > 0
}

// VolatilitySnapshot captures the volatility index state shown on the
// overview panel.
type VolatilitySnapshot struct {
	Level      float64 `json:"level"`
	Change     float64 `json:"change"`
	Regime     Regime  `json:"regime"`
	Percentile float64 `json:"percentile"`
}

// BoundedPercentile returns the percentile clamped to [0, 100] so the
// progress bar it drives never overflows.
func (v VolatilitySnapshot) BoundedPercentile() float64 {
	if v.Percentile < 0 {
		return 0
	}
	if v.Percentile > 100 {
		return 100
	}
	return v.Percentile
}

// Signal represents an AI-generated trading opportunity.
type Signal struct {
	ID          string     `json:"id"`
	Symbol      string     `json:"symbol"`
	Type        SignalType `json:"type"`
	Strength    Strength   `json:"strength"`
	Confidence  float64    `json:"confidence"` // 0..1
	Reasoning   []string   `json:"reasoning"`
	GeneratedAt time.Time  `json:"generated_at"`
}

// StrategyStatus tracks the lifecycle of an options position.
type StrategyStatus string

const (
	StrategyPending StrategyStatus = "pending"
	StrategyOpen    StrategyStatus = "open"
	StrategyClosed  StrategyStatus = "closed"
)

// Strategy represents a named options position with tracked P&L bounds.
type Strategy struct {
	ID         string         `json:"id"`
	Symbol     string         `json:"symbol"`
	Type       string         `json:"type"` // e.g. "iron_condor", "put_credit_spread"
	Status     StrategyStatus `json:"status"`
	PnL        float64        `json:"pnl"`
	MaxProfit  float64        `json:"max_profit"`
	MaxLoss    float64        `json:"max_loss"`
	Confidence float64        `json:"confidence"`
}

// PerformancePoint is one sample of the portfolio-vs-benchmark series.
type PerformancePoint struct {
	Date      time.Time `json:"date"`
	Portfolio float64   `json:"portfolio"`
	Benchmark float64   `json:"benchmark"`
}

// OptionSide distinguishes calls from puts.
type OptionSide string

const (
	SideCall OptionSide = "call"
	SidePut  OptionSide = "put"
)

// OptionContract is a single row of an options chain.
type OptionContract struct {
	Strike       float64    `json:"strike"`
	Side         OptionSide `json:"side"`
	Bid          float64    `json:"bid"`
	Ask          float64    `json:"ask"`
	Last         float64    `json:"last"`
	Volume       int64      `json:"volume"`
	OpenInterest int64      `json:"open_interest"`
	IV           float64    `json:"iv"`
	Delta        float64    `json:"delta"`
}

// OptionChain groups the contracts for one underlying and expiry.
type OptionChain struct {
	Symbol    string           `json:"symbol"`
	Expiry    time.Time        `json:"expiry"`
	Spot      float64          `json:"spot"`
	Contracts []OptionContract `json:"contracts"`
}

// DTE returns days to expiration relative to now, floored at zero.
func (c OptionChain) DTE(now time.Time) int {
	d := int(c.Expiry.Sub(now).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
