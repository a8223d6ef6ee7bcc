// Package worksheet owns the full state of one pricing session: the three
// line-item categories, the fixed other-costs entry and the percentage
// inputs. Every derived value is recomputed from that state on demand.
package worksheet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Simplici0/pricing-calculator/internal/pricing"
)

// Category identifies one of the editable line-item categories.
type Category string

const (
	Materials Category = "materials"
	Packaging Category = "packaging"
	Labor     Category = "labor"
)

// Categories lists the editable categories in display order.
var Categories = []Category{Materials, Packaging, Labor}

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownAction   = errors.New("unknown action")
)

// ParseCategory maps a category name to a Category.
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// Percent identifies one of the pricing percentages.
type Percent uint8

const (
	Markup Percent = iota + 1
	Discount
	SalesTax
)

// Worksheet is the single owner of a pricing session's inputs.
type Worksheet struct {
	Materials pricing.Materials
	Packaging pricing.Packaging
	Labor     pricing.Labor
	Other     pricing.OtherCosts
	Inputs    pricing.Inputs
}

// New returns a worksheet with one empty line in each category.
func New() *Worksheet {
	w := &Worksheet{}
	for _, c := range Categories {
		_ = w.AddLine(c)
	}
	return w
}

// Subtotals derives every category subtotal from the current state.
func (w *Worksheet) Subtotals() pricing.Subtotals {
	return pricing.Subtotals{
		Materials: w.Materials.Subtotal(),
		Packaging: w.Packaging.Subtotal(),
		Labor:     w.Labor.Subtotal(),
		Other:     w.Other.Subtotal(),
	}
}

// Result derives aggregate cost, selling price and profit.
func (w *Worksheet) Result() pricing.Result {
	return pricing.Calculate(w.Subtotals(), w.Inputs)
}

func (w *Worksheet) AddLine(c Category) error {
	switch c {
	case Materials:
		w.Materials.Add()
	case Packaging:
		w.Packaging.Add()
	case Labor:
		w.Labor.Add()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}
	return nil
}

func (w *Worksheet) RemoveLine(c Category, index int) error {
	switch c {
	case Materials:
		return w.Materials.Remove(index)
	case Packaging:
		return w.Packaging.Remove(index)
	case Labor:
		return w.Labor.Remove(index)
	}
	return fmt.Errorf("%w: %q", ErrUnknownCategory, c)
}

// SetField stores a raw value into the named field of a line. Field names
// are the ones the forms use (see pricing.MaterialField.String and friends).
func (w *Worksheet) SetField(c Category, index int, field, value string) error {
	switch c {
	case Materials:
		f, ok := pricing.ParseMaterialField(field)
		if !ok {
			return fmt.Errorf("%w: %s.%s", pricing.ErrUnknownField, c, field)
		}
		return w.Materials.Update(index, f, value)
	case Packaging:
		f, ok := pricing.ParsePackagingField(field)
		if !ok {
			return fmt.Errorf("%w: %s.%s", pricing.ErrUnknownField, c, field)
		}
		return w.Packaging.Update(index, f, value)
	case Labor:
		f, ok := pricing.ParseLaborField(field)
		if !ok {
			return fmt.Errorf("%w: %s.%s", pricing.ErrUnknownField, c, field)
		}
		return w.Labor.Update(index, f, value)
	}
	return fmt.Errorf("%w: %q", ErrUnknownCategory, c)
}

func (w *Worksheet) SetMiscellaneous(c Category, value string) error {
	switch c {
	case Materials:
		w.Materials.SetMiscellaneous(value)
	case Packaging:
		w.Packaging.SetMiscellaneous(value)
	case Labor:
		w.Labor.SetMiscellaneous(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}
	return nil
}

func (w *Worksheet) Miscellaneous(c Category) string {
	switch c {
	case Materials:
		return w.Materials.Miscellaneous()
	case Packaging:
		return w.Packaging.Miscellaneous()
	case Labor:
		return w.Labor.Miscellaneous()
	}
	return ""
}

// SetPercent parses raw with a 0 fallback and stores it.
func (w *Worksheet) SetPercent(p Percent, raw any) {
	v := pricing.ParsePercent(raw)
	switch p {
	case Markup:
		w.Inputs.MarkupPercent = v
	case Discount:
		w.Inputs.DiscountPercent = v
	case SalesTax:
		w.Inputs.SalesTaxPercent = v
	}
}

// Warning points at a line whose total could not be derived normally.
type Warning struct {
	Category Category `json:"category"`
	Index    int      `json:"index"`
	Message  string   `json:"message"`
}

const zeroSizeMessage = "unit size is 0; line total counted as 0"

// Warnings lists lines whose unit size was typed as a literal zero.
func (w *Worksheet) Warnings() []Warning {
	var out []Warning
	for i, item := range w.Materials.Items() {
		if item.Fields.ZeroUnitSize() {
			out = append(out, Warning{Category: Materials, Index: i, Message: zeroSizeMessage})
		}
	}
	for i, item := range w.Packaging.Items() {
		if item.Fields.ZeroUnitSize() {
			out = append(out, Warning{Category: Packaging, Index: i, Message: zeroSizeMessage})
		}
	}
	return out
}

// ActionKind is what a submitted form asks the worksheet to do.
type ActionKind uint8

const (
	Recalculate ActionKind = iota
	AddLine
	RemoveLine
)

// Action is a parsed form action such as "add:materials" or
// "remove:labor:2". An empty action recalculates only.
type Action struct {
	Kind     ActionKind
	Category Category
	Index    int
}

func ParseAction(raw string) (Action, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "recalculate" {
		return Action{Kind: Recalculate}, nil
	}

	parts := strings.Split(raw, ":")
	switch {
	case parts[0] == "add" && len(parts) == 2:
		c, err := ParseCategory(parts[1])
		if err != nil {
			return Action{}, err
		}
		return Action{Kind: AddLine, Category: c}, nil
	case parts[0] == "remove" && len(parts) == 3:
		c, err := ParseCategory(parts[1])
		if err != nil {
			return Action{}, err
		}
		index, err := strconv.Atoi(parts[2])
		if err != nil {
			return Action{}, fmt.Errorf("%w: bad index in %q", ErrUnknownAction, raw)
		}
		return Action{Kind: RemoveLine, Category: c, Index: index}, nil
	}
	return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, raw)
}

// Apply performs a on the worksheet.
func (w *Worksheet) Apply(a Action) error {
	switch a.Kind {
	case Recalculate:
		return nil
	case AddLine:
		return w.AddLine(a.Category)
	case RemoveLine:
		return w.RemoveLine(a.Category, a.Index)
	}
	return fmt.Errorf("%w: kind %d", ErrUnknownAction, a.Kind)
}

// FieldNames lists the form names of c's fields in display order.
func FieldNames(c Category) []string {
	switch c {
	case Materials:
		return names(pricing.MaterialFields)
	case Packaging:
		return names(pricing.PackagingFields)
	case Labor:
		return names(pricing.LaborFields)
	}
	return nil
}

func names[F fmt.Stringer](fields []F) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.String())
	}
	return out
}

// Line is one line of a category as the surfaces render it. Values line up
// with FieldNames.
type Line struct {
	Values       []string
	Total        float64
	ZeroUnitSize bool
}

// Lines returns the current lines of c in order.
func (w *Worksheet) Lines(c Category) []Line {
	switch c {
	case Materials:
		return linesOf(w.Materials.Items(), pricing.MaterialFields, (*pricing.MaterialLine).ZeroUnitSize)
	case Packaging:
		return linesOf(w.Packaging.Items(), pricing.PackagingFields, (*pricing.PackagingLine).ZeroUnitSize)
	case Labor:
		return linesOf(w.Labor.Items(), pricing.LaborFields, func(*pricing.LaborLine) bool { return false })
	}
	return nil
}

func linesOf[T any, F comparable, PT interface {
	*T
	Get(F) string
}](items []pricing.Item[T], fields []F, zeroSize func(PT) bool) []Line {
	out := make([]Line, 0, len(items))
	for _, item := range items {
		line := item.Fields
		p := PT(&line)
		values := make([]string, 0, len(fields))
		for _, f := range fields {
			values = append(values, p.Get(f))
		}
		out = append(out, Line{Values: values, Total: item.LineTotal(), ZeroUnitSize: zeroSize(p)})
	}
	return out
}
