package main

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Simplici0/pricing-calculator/internal/botcheck"
	"github.com/Simplici0/pricing-calculator/internal/db"
	"github.com/Simplici0/pricing-calculator/internal/icons"
	"github.com/Simplici0/pricing-calculator/internal/migrations"
	"github.com/Simplici0/pricing-calculator/internal/regions"
	"github.com/Simplici0/pricing-calculator/internal/seed"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	ctx := context.Background()
	database, err := db.Open(ctx, filepath.Join(t.TempDir(), "server-test.db"))
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if _, err := migrations.Up(ctx, database, zap.NewNop()); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	if _, err := seed.Run(ctx, database, seed.DefaultDataset()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	srv := &server{
		logger:  zap.NewNop(),
		regions: regions.NewStore(database),
		icons:   icons.NewStore(database),
		widget:  botcheck.New("", "calculate", true),
	}
	return srv.routes()
}

func postForm(t *testing.T, h http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func assertContains(t *testing.T, body string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %q", want)
		}
	}
}

func scenarioForm() url.Values {
	return url.Values{
		"materials.count":        {"1"},
		"materials.0.name":       {"Yarn"},
		"materials.0.cost":       {"20"},
		"materials.0.size":       {"10"},
		"materials.0.quantity":   {"5"},
		"packaging.count":        {"1"},
		"labor.count":            {"1"},
		"labor.0.description":    {"Knitting"},
		"labor.0.hourlyWage":     {"12.5"},
		"labor.0.time":           {"2"},
		"markup":                 {"50"},
		"discount":               {"10"},
		"salesTax":               {"8"},
		"other.description":      {""},
		"other.total":            {""},
	}
}

func TestCalculatorForm_RendersFreshWorksheet(t *testing.T) {
	t.Parallel()
	h := newTestServer(t)

	rec := get(t, h, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	body := rec.Body.String()
	assertContains(t, body,
		"Pricing Calculator for Handmade Products",
		`name="materials.count" value="1"`,
		`name="packaging.count" value="1"`,
		`name="labor.count" value="1"`,
		`"@type":"WebApplication"`,
		"Bot verification is simulated in development.",
		botcheck.DevToken,
		"Enter some costs to see the chart.",
		"/icons/facebook.svg",
		"$0.00",
	)
}

func TestCalculatorSubmit_ComputesBreakdown(t *testing.T) {
	t.Parallel()
	h := newTestServer(t)

	rec := postForm(t, h, scenarioForm())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	assertContains(t, body,
		"$10.00",
		"$25.00",
		"$35.00",
		"$51.03",
		"$16.03",
		`value="Yarn"`,
		"stroke-dasharray",
	)
	if strings.Contains(body, "Profit is negative") {
		t.Fatalf("did not expect negative profit note")
	}
}

func TestCalculatorSubmit_AddAndRemoveLines(t *testing.T) {
	t.Parallel()
	h := newTestServer(t)

	form := scenarioForm()
	form.Set("action", "add:packaging")
	rec := postForm(t, h, form)
	if rec.Code != http.StatusOK {
		t.Fatalf("add: expected %d, got %d", http.StatusOK, rec.Code)
	}
	assertContains(t, rec.Body.String(), `name="packaging.count" value="2"`, `name="packaging.1.description"`)

	form = scenarioForm()
	form.Set("action", "remove:labor:0")
	rec = postForm(t, h, form)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove: expected %d, got %d", http.StatusOK, rec.Code)
	}
	body := rec.Body.String()
	assertContains(t, body, `name="labor.count" value="0"`, "$10.00")
	if strings.Contains(body, `name="labor.0.description"`) {
		t.Fatalf("expected labor line to be removed")
	}
}

func TestCalculatorSubmit_RejectsBadInput(t *testing.T) {
	t.Parallel()
	h := newTestServer(t)

	tests := []struct {
		name   string
		mutate func(url.Values)
		want   string
	}{
		{name: "index out of range", mutate: func(f url.Values) { f.Set("action", "remove:labor:5") }, want: "line index out of range"},
		{name: "unknown category", mutate: func(f url.Values) { f.Set("action", "add:shipping") }, want: "unknown category"},
		{name: "unknown action", mutate: func(f url.Values) { f.Set("action", "explode") }, want: "unknown action"},
		{name: "bad count", mutate: func(f url.Values) { f.Set("materials.count", "many") }, want: "materials.count must be a whole number"},
		{name: "negative count", mutate: func(f url.Values) { f.Set("labor.count", "-1") }, want: "labor.count must be a whole number"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			form := scenarioForm()
			tc.mutate(form)
			rec := postForm(t, h, form)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
			}
			assertContains(t, rec.Body.String(), tc.want)
		})
	}
}

func TestCalculatorSubmit_WarnsOnZeroUnitSize(t *testing.T) {
	t.Parallel()
	h := newTestServer(t)

	form := scenarioForm()
	form.Set("materials.0.size", "0")
	rec := postForm(t, h, form)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	assertContains(t, rec.Body.String(), "Material 1: unit size is 0; line total counted as 0", "$25.00")
}

func TestCalculatorSubmit_NegativeProfitNote(t *testing.T) {
	t.Parallel()
	h := newTestServer(t)

	form := scenarioForm()
	form.Set("markup", "0")
	form.Set("discount", "50")
	form.Set("salesTax", "0")
	rec := postForm(t, h, form)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	assertContains(t, rec.Body.String(), "$17.50", "$-17.50", "Profit is negative")
}

func TestBreakdownAPI(t *testing.T) {
	t.Parallel()
	h := newTestServer(t)

	payload := `{
		"materials": [{"name": "Yarn", "cost": 20, "size": "10", "quantity": 5}],
		"labor": [{"description": "Knitting", "hourlyWage": "12.5", "time": 2}],
		"other": {"description": "Fees", "total": null},
		"markup": 50,
		"discount": "10",
		"salesTax": 8
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/breakdown", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var resp struct {
		Result struct {
			AggregateCost float64 `json:"aggregateCost"`
			SellingPrice  float64 `json:"sellingPrice"`
		} `json:"result"`
		Breakdown struct {
			SellingPrice struct {
				Amount string `json:"amount"`
			} `json:"sellingPrice"`
			Chart []json.RawMessage `json:"chart"`
		} `json:"breakdown"`
		Warnings []json.RawMessage `json:"warnings"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if math.Abs(resp.Result.AggregateCost-35) > 1e-9 || math.Abs(resp.Result.SellingPrice-51.03) > 1e-9 {
		t.Fatalf("unexpected result %+v", resp.Result)
	}
	if resp.Breakdown.SellingPrice.Amount != "$51.03" {
		t.Fatalf("selling price amount = %q", resp.Breakdown.SellingPrice.Amount)
	}
	if len(resp.Breakdown.Chart) != 5 {
		t.Fatalf("expected 5 chart segments, got %d", len(resp.Breakdown.Chart))
	}
	if resp.Warnings == nil || len(resp.Warnings) != 0 {
		t.Fatalf("expected empty warnings array, got %v", resp.Warnings)
	}
}

func TestBreakdownAPI_RejectsInvalidJSON(t *testing.T) {
	t.Parallel()
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/breakdown", strings.NewReader(`{"materials": [`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestReferenceEndpoints(t *testing.T) {
	t.Parallel()
	h := newTestServer(t)

	rec := get(t, h, "/api/countries")
	if rec.Code != http.StatusOK {
		t.Fatalf("countries: expected %d, got %d", http.StatusOK, rec.Code)
	}
	var countries []regions.Country
	if err := json.Unmarshal(rec.Body.Bytes(), &countries); err != nil {
		t.Fatalf("decode countries: %v", err)
	}
	if len(countries) != 5 {
		t.Fatalf("expected 5 countries, got %d", len(countries))
	}

	rec = get(t, h, "/api/countries/us/subdivisions?q=new")
	var subs []regions.Subdivision
	if err := json.Unmarshal(rec.Body.Bytes(), &subs); err != nil {
		t.Fatalf("decode subdivisions: %v", err)
	}
	if len(subs) != 4 {
		t.Fatalf("expected 4 US matches for %q, got %+v", "new", subs)
	}

	rec = get(t, h, "/api/countries/SG/subdivisions")
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty list for SG, got %d %q", rec.Code, rec.Body.String())
	}

	if rec = get(t, h, "/api/countries/ZZ/subdivisions"); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown country: expected %d, got %d", http.StatusNotFound, rec.Code)
	}

	rec = get(t, h, "/api/countries/ca/subdivisions/qc")
	if rec.Code != http.StatusOK {
		t.Fatalf("lookup: expected %d, got %d", http.StatusOK, rec.Code)
	}
	assertContains(t, rec.Body.String(), `"name":"Quebec"`, `"type":"province"`)

	if rec = get(t, h, "/api/countries/CA/subdivisions/XX"); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown subdivision: expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestIconEndpoint(t *testing.T) {
	t.Parallel()
	h := newTestServer(t)

	rec := get(t, h, "/icons/facebook.svg?size=32&color=%23000000")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Fatalf("unexpected content type %q", ct)
	}
	assertContains(t, rec.Body.String(), `width="32"`, `fill="#000000"`, `aria-label="facebook"`)

	if rec = get(t, h, "/icons/myspace.svg"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestStaticAssets(t *testing.T) {
	t.Parallel()
	h := newTestServer(t)

	rec := get(t, h, "/static/app.css")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	assertContains(t, rec.Body.String(), ".breakdown", "--violet")
}
