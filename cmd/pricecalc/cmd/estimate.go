package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Simplici0/pricing-calculator/internal/breakdown"
	"github.com/Simplici0/pricing-calculator/internal/pricing"
	"github.com/Simplici0/pricing-calculator/internal/worksheet"
)

type estimateOptions struct {
	materials     []string
	packaging     []string
	labor         []string
	materialsMisc string
	packagingMisc string
	laborMisc     string
	otherDesc     string
	other         string
	markup        string
	discount      string
	tax           string
	format        string
}

func newEstimateCmd(a *app) *cobra.Command {
	opts := &estimateOptions{}

	c := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate a selling price from cost lines",
		Long: `Build a worksheet from flags and print its cost breakdown.

Line flags take comma-separated values and may be repeated. Quote a value
that itself contains a comma. Blank or non-numeric amounts count as 0, and
a blank unit size counts as 1.

  --material  name,cost,size,quantity
  --packaging description,cost,size,quantity
  --labor     description,hourlyWage,hours`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd.OutOrStdout(), cmd.ErrOrStderr(), a.logger, opts)
		},
	}

	f := c.Flags()
	f.StringArrayVar(&opts.materials, "material", nil, "material line: name,cost,size,quantity (repeatable)")
	f.StringArrayVar(&opts.packaging, "packaging", nil, "packaging line: description,cost,size,quantity (repeatable)")
	f.StringArrayVar(&opts.labor, "labor", nil, "labor line: description,hourlyWage,hours (repeatable)")
	f.StringVar(&opts.materialsMisc, "materials-misc", "", "miscellaneous materials amount")
	f.StringVar(&opts.packagingMisc, "packaging-misc", "", "miscellaneous packaging amount")
	f.StringVar(&opts.laborMisc, "labor-misc", "", "miscellaneous labor amount")
	f.StringVar(&opts.other, "other", "", "other costs total")
	f.StringVar(&opts.otherDesc, "other-description", "", "other costs description")
	f.StringVar(&opts.markup, "markup", "", "markup percent")
	f.StringVar(&opts.discount, "discount", "", "discount percent")
	f.StringVar(&opts.tax, "tax", "", "sales tax percent")
	f.StringVarP(&opts.format, "format", "f", "cli", "output format (cli, json)")

	return c
}

type estimateReport struct {
	Subtotals pricing.Subtotals   `json:"subtotals"`
	Result    pricing.Result      `json:"result"`
	Breakdown breakdown.View      `json:"breakdown"`
	Warnings  []worksheet.Warning `json:"warnings"`
}

func runEstimate(out, errOut io.Writer, logger *zap.Logger, opts *estimateOptions) error {
	if opts.format != "cli" && opts.format != "json" {
		return fmt.Errorf("unknown format %q (want cli or json)", opts.format)
	}

	in, err := opts.input()
	if err != nil {
		return err
	}
	ws, err := worksheet.FromInput(in)
	if err != nil {
		return fmt.Errorf("build worksheet: %w", err)
	}

	sub := ws.Subtotals()
	res := ws.Result()
	logger.Debug("worksheet computed",
		zap.Float64("aggregate", res.AggregateCost),
		zap.Float64("selling", res.SellingPrice),
		zap.Float64("profit", res.Profit),
	)

	report := estimateReport{
		Subtotals: sub,
		Result:    res,
		Breakdown: breakdown.Build(sub, res),
		Warnings:  ws.Warnings(),
	}
	if report.Warnings == nil {
		report.Warnings = []worksheet.Warning{}
	}

	if opts.format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return nil
	}

	for _, w := range report.Warnings {
		fmt.Fprintf(errOut, "warning: %s %d: %s\n", w.Category, w.Index+1, w.Message)
	}
	return breakdown.WriteText(out, report.Breakdown)
}

func (o *estimateOptions) input() (worksheet.Input, error) {
	in := worksheet.Input{
		MaterialsMisc: worksheet.Raw(o.materialsMisc),
		PackagingMisc: worksheet.Raw(o.packagingMisc),
		LaborMisc:     worksheet.Raw(o.laborMisc),
		Other:         worksheet.OtherInput{Description: worksheet.Raw(o.otherDesc), Total: worksheet.Raw(o.other)},
		Markup:        o.markup,
		Discount:      o.discount,
		SalesTax:      o.tax,
	}

	for _, raw := range o.materials {
		v, err := splitLine("material", raw, 4)
		if err != nil {
			return worksheet.Input{}, err
		}
		in.Materials = append(in.Materials, worksheet.MaterialInput{Name: v[0], Cost: v[1], Size: v[2], Quantity: v[3]})
	}
	for _, raw := range o.packaging {
		v, err := splitLine("packaging", raw, 4)
		if err != nil {
			return worksheet.Input{}, err
		}
		in.Packaging = append(in.Packaging, worksheet.PackagingInput{Description: v[0], Cost: v[1], Size: v[2], Quantity: v[3]})
	}
	for _, raw := range o.labor {
		v, err := splitLine("labor", raw, 3)
		if err != nil {
			return worksheet.Input{}, err
		}
		in.Labor = append(in.Labor, worksheet.LaborInput{Description: v[0], HourlyWage: v[1], Time: v[2]})
	}

	return in, nil
}

// splitLine reads one comma-separated record of at most n values. Missing
// trailing values are returned blank.
func splitLine(flag, raw string, n int) ([]worksheet.Raw, error) {
	r := csv.NewReader(strings.NewReader(raw))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	record, err := r.Read()
	if err == io.EOF {
		record = nil
	} else if err != nil {
		return nil, fmt.Errorf("--%s %q: %w", flag, raw, err)
	}
	if len(record) > n {
		return nil, fmt.Errorf("--%s %q: expected at most %d values, got %d", flag, raw, n, len(record))
	}

	out := make([]worksheet.Raw, n)
	for i, v := range record {
		out[i] = worksheet.Raw(strings.TrimSpace(v))
	}
	return out, nil
}
