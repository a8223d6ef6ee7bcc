package worksheet

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"

	"github.com/Simplici0/pricing-calculator/internal/pricing"
)

// Raw is a field value that decodes from a JSON string or number and is kept
// as text, the way the forms keep it.
type Raw string

func (r *Raw) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v == nil {
		*r = ""
		return nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Errorf("field value: %w", err)
	}
	*r = Raw(s)
	return nil
}

type MaterialInput struct {
	Name     Raw `json:"name"`
	Cost     Raw `json:"cost"`
	Size     Raw `json:"size"`
	Quantity Raw `json:"quantity"`
}

type PackagingInput struct {
	Description Raw `json:"description"`
	Cost        Raw `json:"cost"`
	Size        Raw `json:"size"`
	Quantity    Raw `json:"quantity"`
}

type LaborInput struct {
	Description Raw `json:"description"`
	HourlyWage  Raw `json:"hourlyWage"`
	Time        Raw `json:"time"`
}

type OtherInput struct {
	Description Raw `json:"description"`
	Total       Raw `json:"total"`
}

// Input is a whole worksheet as submitted by a script or built by the CLI.
// Percentages may be numbers or text.
type Input struct {
	Materials     []MaterialInput  `json:"materials"`
	MaterialsMisc Raw              `json:"materialsMisc"`
	Packaging     []PackagingInput `json:"packaging"`
	PackagingMisc Raw              `json:"packagingMisc"`
	Labor         []LaborInput     `json:"labor"`
	LaborMisc     Raw              `json:"laborMisc"`
	Other         OtherInput       `json:"other"`
	Markup        any              `json:"markup"`
	Discount      any              `json:"discount"`
	SalesTax      any              `json:"salesTax"`
}

// FromInput replays in onto an empty worksheet through the same add and
// update operations the forms use.
func FromInput(in Input) (*Worksheet, error) {
	w := &Worksheet{}

	for i, m := range in.Materials {
		w.Materials.Add()
		values := map[pricing.MaterialField]Raw{
			pricing.MaterialName:         m.Name,
			pricing.MaterialUnitCost:     m.Cost,
			pricing.MaterialUnitSize:     m.Size,
			pricing.MaterialQuantityUsed: m.Quantity,
		}
		for _, f := range pricing.MaterialFields {
			if err := w.Materials.Update(i, f, string(values[f])); err != nil {
				return nil, fmt.Errorf("materials[%d]: %w", i, err)
			}
		}
	}
	for i, p := range in.Packaging {
		w.Packaging.Add()
		values := map[pricing.PackagingField]Raw{
			pricing.PackagingDescription:  p.Description,
			pricing.PackagingUnitCost:     p.Cost,
			pricing.PackagingUnitSize:     p.Size,
			pricing.PackagingQuantityUsed: p.Quantity,
		}
		for _, f := range pricing.PackagingFields {
			if err := w.Packaging.Update(i, f, string(values[f])); err != nil {
				return nil, fmt.Errorf("packaging[%d]: %w", i, err)
			}
		}
	}
	for i, l := range in.Labor {
		w.Labor.Add()
		values := map[pricing.LaborField]Raw{
			pricing.LaborDescription: l.Description,
			pricing.LaborHourlyWage:  l.HourlyWage,
			pricing.LaborHoursSpent:  l.Time,
		}
		for _, f := range pricing.LaborFields {
			if err := w.Labor.Update(i, f, string(values[f])); err != nil {
				return nil, fmt.Errorf("labor[%d]: %w", i, err)
			}
		}
	}

	w.Materials.SetMiscellaneous(string(in.MaterialsMisc))
	w.Packaging.SetMiscellaneous(string(in.PackagingMisc))
	w.Labor.SetMiscellaneous(string(in.LaborMisc))
	w.Other.Set(pricing.OtherCost{Description: string(in.Other.Description), Total: string(in.Other.Total)})

	w.SetPercent(Markup, in.Markup)
	w.SetPercent(Discount, in.Discount)
	w.SetPercent(SalesTax, in.SalesTax)

	return w, nil
}
