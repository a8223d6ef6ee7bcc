// Package breakdown formats pricing results for display. It never changes
// the numbers it is given.
package breakdown

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/Simplici0/pricing-calculator/internal/pricing"
)

// FormatMoney renders v with a literal "$" and two decimals. Non-finite
// values are rendered as-is rather than rejected.
func FormatMoney(v float64) string {
	switch {
	case math.IsNaN(v):
		return "$NaN"
	case math.IsInf(v, 1):
		return "$Infinity"
	case math.IsInf(v, -1):
		return "$-Infinity"
	}
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}

// Row is one labelled amount.
type Row struct {
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	Amount string  `json:"amount"`
}

// Segment is one slice of the proportion chart. Percent is the share of the
// drawn ring; Offset is where the slice starts, both on a 0..100 scale.
type Segment struct {
	Row
	Color   string  `json:"color"`
	Border  string  `json:"border"`
	Percent float64 `json:"percent"`
	Offset  float64 `json:"offset"`
}

// View is everything the breakdown card shows.
type View struct {
	Categories   []Row     `json:"categories"`
	TotalCost    Row       `json:"totalCost"`
	SellingPrice Row       `json:"sellingPrice"`
	Profit       Row       `json:"profit"`
	Chart        []Segment `json:"chart"`

	// NegativeProfit is set when the profit slice cannot be drawn.
	NegativeProfit bool `json:"negativeProfit"`
	// EmptyChart is set when no slice has a positive value.
	EmptyChart bool `json:"emptyChart"`
}

var palette = []struct{ fill, border string }{
	{"#8B5CF6", "#7C3AED"},
	{"#A78BFA", "#8B5CF6"},
	{"#C4B5FD", "#A78BFA"},
	{"#DDD6FE", "#C4B5FD"},
	{"#7C3AED", "#6D28D9"},
}

// Build lays out subtotals and result. The chart's fifth slice is profit,
// so slices add up to the selling price only while profit is not negative.
func Build(sub pricing.Subtotals, res pricing.Result) View {
	categories := []Row{
		row("Materials", sub.Materials),
		row("Packaging", sub.Packaging),
		row("Labor", sub.Labor),
		row("Other Costs", sub.Other),
	}
	profit := row("Profit", res.Profit)

	v := View{
		Categories:     categories,
		TotalCost:      row("Total Cost", res.AggregateCost),
		SellingPrice:   row("Selling Price", res.SellingPrice),
		Profit:         profit,
		NegativeProfit: res.Profit < 0,
	}
	v.Chart, v.EmptyChart = chart(append(categories, profit))
	return v
}

func row(label string, value float64) Row {
	return Row{Label: label, Value: value, Amount: FormatMoney(value)}
}

// chart spreads the drawable (positive, finite) rows over a ring of 100.
// Rows that cannot be drawn keep their value with a zero-width slice.
func chart(rows []Row) ([]Segment, bool) {
	var drawn float64
	for _, r := range rows {
		drawn += drawable(r.Value)
	}

	segments := make([]Segment, len(rows))
	var offset float64
	for i, r := range rows {
		seg := Segment{Row: r, Color: palette[i%len(palette)].fill, Border: palette[i%len(palette)].border, Offset: offset}
		if drawn > 0 {
			seg.Percent = drawable(r.Value) / drawn * 100
		}
		offset += seg.Percent
		segments[i] = seg
	}
	return segments, drawn == 0
}

func drawable(v float64) float64 {
	if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}
