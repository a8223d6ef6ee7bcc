package breakdown

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteText prints v as an aligned plain-text table.
func WriteText(w io.Writer, v View) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(tw, "Cost Breakdown\t\t")
	for _, r := range v.Categories {
		fmt.Fprintf(tw, "%s:\t%s\t\n", r.Label, r.Amount)
	}
	fmt.Fprintf(tw, "%s\t\t\n", strings.Repeat("-", 14))
	for _, r := range []Row{v.TotalCost, v.SellingPrice, v.Profit} {
		fmt.Fprintf(tw, "%s:\t%s\t\n", r.Label, r.Amount)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if v.NegativeProfit {
		if _, err := fmt.Fprintln(w, "note: profit is negative; the chart cannot show its slice"); err != nil {
			return err
		}
	}
	return nil
}
