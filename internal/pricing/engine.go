// Package pricing turns cost line items into a suggested selling price.
//
// Line items are grouped into categories whose subtotals feed Calculate.
// Nothing here rounds: values stay full precision until they are formatted
// for display.
package pricing

// Subtotals holds the latest subtotal of each cost category.
type Subtotals struct {
	Materials float64 `json:"materials"`
	Packaging float64 `json:"packaging"`
	Labor     float64 `json:"labor"`
	Other     float64 `json:"other"`
}

// Aggregate returns the cost basis before markup, discount and tax.
func (s Subtotals) Aggregate() float64 {
	return s.Materials + s.Packaging + s.Labor + s.Other
}

// Inputs are the percentages applied on top of the aggregate cost.
type Inputs struct {
	MarkupPercent   float64 `json:"markup"`
	DiscountPercent float64 `json:"discount"`
	SalesTaxPercent float64 `json:"salesTax"`
}

// Result is the outcome of a pricing calculation.
type Result struct {
	AggregateCost float64 `json:"aggregateCost"`
	SellingPrice  float64 `json:"sellingPrice"`
	Profit        float64 `json:"profit"`
}

// Calculate applies markup, then discount, then sales tax to the aggregate
// cost. Percentages are not clamped; negative or >100 values propagate.
func Calculate(sub Subtotals, in Inputs) Result {
	aggregate := sub.Aggregate()
	selling := aggregate *
		(1 + in.MarkupPercent/100) *
		(1 - in.DiscountPercent/100) *
		(1 + in.SalesTaxPercent/100)

	return Result{
		AggregateCost: aggregate,
		SellingPrice:  selling,
		Profit:        selling - aggregate,
	}
}
