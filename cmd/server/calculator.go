package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/Simplici0/pricing-calculator/internal/botcheck"
	"github.com/Simplici0/pricing-calculator/internal/breakdown"
	"github.com/Simplici0/pricing-calculator/internal/pricing"
	"github.com/Simplici0/pricing-calculator/internal/worksheet"
	"github.com/Simplici0/pricing-calculator/web"
)

const (
	maxLinesPerCategory = 200
	maxJSONBody         = 1 << 20
)

type baseViewData struct {
	ErrorMessage string
}

type pageMeta struct {
	Title          string
	Description    string
	Lead           string
	Features       []string
	StructuredData template.JS
}

type iconLink struct {
	Name string
	URL  string
}

type inputView struct {
	Name        string
	Value       string
	Placeholder string
	Type        string
}

type lineView struct {
	Label        string
	Inputs       []inputView
	Total        string
	RemoveAction string
	ZeroSize     bool
}

type categoryView struct {
	Key       string
	Title     string
	ItemLabel string
	Lines     []lineView
	Misc      string
	Subtotal  string
	AddAction string
}

type chartSlice struct {
	Label      string
	Amount     string
	Color      string
	Percent    string
	Dasharray  string
	Dashoffset string
}

type calculatorViewData struct {
	baseViewData
	Page       pageMeta
	Icons      []iconLink
	Widget     botcheck.Widget
	BotToken   string
	Categories []categoryView
	Other      pricing.OtherCost
	Markup     string
	Discount   string
	SalesTax   string
	Breakdown  breakdown.View
	Slices     []chartSlice
	Warnings   []string
}

type categoryCopy struct {
	title        string
	itemLabel    string
	placeholders []string
}

var categoryText = map[worksheet.Category]categoryCopy{
	worksheet.Materials: {title: "Materials Cost", itemLabel: "Material", placeholders: []string{"Material Name", "Cost", "Size", "Quantity"}},
	worksheet.Packaging: {title: "Packaging Costs", itemLabel: "Packaging", placeholders: []string{"Description", "Cost", "Size", "Quantity"}},
	worksheet.Labor:     {title: "Labor Costs", itemLabel: "Activity", placeholders: []string{"Description", "Hourly Wage", "Time"}},
}

func (s *server) handleCalculatorForm(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, http.StatusOK, "calculator.html", s.calculatorView(r, worksheet.New(), ""))
}

func (s *server) handleCalculatorSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	ws, err := parseWorksheetForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	action, err := worksheet.ParseAction(r.FormValue("action"))
	if err == nil {
		err = ws.Apply(action)
	}
	if err != nil {
		s.logger.Warn("rejected worksheet action", zap.String("action", r.FormValue("action")), zap.Error(err))
		s.renderTemplate(w, http.StatusBadRequest, "calculator.html", s.calculatorView(r, ws, err.Error()))
		return
	}

	s.renderTemplate(w, http.StatusOK, "calculator.html", s.calculatorView(r, ws, ""))
}

type breakdownResponse struct {
	Subtotals pricing.Subtotals   `json:"subtotals"`
	Result    pricing.Result      `json:"result"`
	Breakdown breakdown.View      `json:"breakdown"`
	Warnings  []worksheet.Warning `json:"warnings"`
}

func (s *server) handleBreakdownAPI(w http.ResponseWriter, r *http.Request) {
	var in worksheet.Input
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(&in); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	ws, err := worksheet.FromInput(in)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sub := ws.Subtotals()
	res := ws.Result()
	warnings := ws.Warnings()
	if warnings == nil {
		warnings = []worksheet.Warning{}
	}

	s.writeJSON(w, http.StatusOK, breakdownResponse{
		Subtotals: sub,
		Result:    res,
		Breakdown: breakdown.Build(sub, res),
		Warnings:  warnings,
	})
}

// parseWorksheetForm rebuilds the whole worksheet from a submitted form.
// Each category posts "<category>.count" and then
// "<category>.<index>.<field>" for every line.
func parseWorksheetForm(r *http.Request) (*worksheet.Worksheet, error) {
	ws := &worksheet.Worksheet{}

	for _, c := range worksheet.Categories {
		count, err := parseLineCount(c, r.FormValue(string(c)+".count"))
		if err != nil {
			return nil, err
		}
		fields := worksheet.FieldNames(c)
		for i := 0; i < count; i++ {
			if err := ws.AddLine(c); err != nil {
				return nil, err
			}
			for _, field := range fields {
				if err := ws.SetField(c, i, field, r.FormValue(lineKey(c, i, field))); err != nil {
					return nil, err
				}
			}
		}
		if err := ws.SetMiscellaneous(c, r.FormValue(string(c)+".misc")); err != nil {
			return nil, err
		}
	}

	ws.Other.Set(pricing.OtherCost{
		Description: r.FormValue("other.description"),
		Total:       r.FormValue("other.total"),
	})
	ws.SetPercent(worksheet.Markup, r.FormValue("markup"))
	ws.SetPercent(worksheet.Discount, r.FormValue("discount"))
	ws.SetPercent(worksheet.SalesTax, r.FormValue("salesTax"))

	return ws, nil
}

func parseLineCount(c worksheet.Category, raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count < 0 || count > maxLinesPerCategory {
		return 0, fmt.Errorf("%s.count must be a whole number between 0 and %d", c, maxLinesPerCategory)
	}
	return count, nil
}

func lineKey(c worksheet.Category, index int, field string) string {
	return string(c) + "." + strconv.Itoa(index) + "." + field
}

func (s *server) calculatorView(r *http.Request, ws *worksheet.Worksheet, errMsg string) calculatorViewData {
	sub := ws.Subtotals()
	res := ws.Result()
	view := breakdown.Build(sub, res)

	data := calculatorViewData{
		baseViewData: baseViewData{ErrorMessage: errMsg},
		Page:         calculatorPage,
		Icons:        s.iconLinks(r),
		Widget:       s.widget,
		Other:        ws.Other.Item(),
		Markup:       formatPercent(ws.Inputs.MarkupPercent),
		Discount:     formatPercent(ws.Inputs.DiscountPercent),
		SalesTax:     formatPercent(ws.Inputs.SalesTaxPercent),
		Breakdown:    view,
		Slices:       chartSlices(view.Chart),
	}
	if s.widget.Simulated() {
		data.BotToken = botcheck.DevToken
	}

	subtotals := map[worksheet.Category]float64{
		worksheet.Materials: sub.Materials,
		worksheet.Packaging: sub.Packaging,
		worksheet.Labor:     sub.Labor,
	}
	for _, c := range worksheet.Categories {
		data.Categories = append(data.Categories, categoryViewFor(ws, c, subtotals[c]))
	}

	for _, warning := range ws.Warnings() {
		data.Warnings = append(data.Warnings, fmt.Sprintf("%s %d: %s", categoryText[warning.Category].itemLabel, warning.Index+1, warning.Message))
	}

	return data
}

func categoryViewFor(ws *worksheet.Worksheet, c worksheet.Category, subtotal float64) categoryView {
	text := categoryText[c]
	fields := worksheet.FieldNames(c)

	cv := categoryView{
		Key:       string(c),
		Title:     text.title,
		ItemLabel: text.itemLabel,
		Misc:      ws.Miscellaneous(c),
		Subtotal:  breakdown.FormatMoney(subtotal),
		AddAction: "add:" + string(c),
	}
	for i, line := range ws.Lines(c) {
		lv := lineView{
			Label:        text.itemLabel + " " + strconv.Itoa(i+1),
			Total:        breakdown.FormatMoney(line.Total),
			RemoveAction: "remove:" + string(c) + ":" + strconv.Itoa(i),
			ZeroSize:     line.ZeroUnitSize,
		}
		for j, field := range fields {
			input := inputView{
				Name:        lineKey(c, i, field),
				Value:       line.Values[j],
				Placeholder: text.placeholders[j],
				Type:        "number",
			}
			if j == 0 {
				input.Type = "text"
			}
			lv.Inputs = append(lv.Inputs, input)
		}
		cv.Lines = append(cv.Lines, lv)
	}
	return cv
}

// chartSlices turns segments into SVG ring strokes on a circle whose
// circumference is 100, starting at twelve o'clock.
func chartSlices(segments []breakdown.Segment) []chartSlice {
	var out []chartSlice
	for _, seg := range segments {
		if seg.Percent <= 0 {
			continue
		}
		out = append(out, chartSlice{
			Label:      seg.Label,
			Amount:     seg.Amount,
			Color:      seg.Color,
			Percent:    strconv.FormatFloat(seg.Percent, 'f', 1, 64),
			Dasharray:  strconv.FormatFloat(seg.Percent, 'f', 4, 64) + " " + strconv.FormatFloat(100-seg.Percent, 'f', 4, 64),
			Dashoffset: strconv.FormatFloat(25-seg.Offset, 'f', 4, 64),
		})
	}
	return out
}

func formatPercent(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (s *server) renderTemplate(w http.ResponseWriter, status int, page string, data any) {
	templates, err := template.ParseFS(web.TemplatesFS,
		"templates/layout.html",
		"templates/"+page,
	)
	if err != nil {
		s.logger.Error("failed to parse template", zap.String("page", page), zap.Error(err))
		http.Error(w, "failed to parse template", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		s.logger.Error("failed to render template", zap.String("page", page), zap.Error(err))
		http.Error(w, "failed to render template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *server) writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
		var unsupported *json.UnsupportedValueError
		if errors.As(err, &unsupported) {
			http.Error(w, "result is not a finite number", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}
