package cmd

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestEstimate_TextOutput(t *testing.T) {
	out, _, err := run(t, "estimate",
		"--material", "Yarn,20,10,5",
		"--labor", "Knitting,12.5,2",
		"--markup", "50",
		"--discount", "10",
		"--tax", "8",
	)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}

	for _, want := range []string{"Cost Breakdown", "Materials:", "$10.00", "Labor:", "$25.00", "Total Cost:", "$35.00", "Selling Price:", "$51.03", "Profit:", "$16.03"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestEstimate_JSONOutput(t *testing.T) {
	out, _, err := run(t, "estimate", "--format", "json",
		"--material", `"Wax, soy",8,,2`,
		"--packaging", "Box,3,4,1",
		"--other", "2.5",
		"--other-description", "Fees",
	)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}

	var report struct {
		Subtotals struct {
			Materials float64 `json:"materials"`
			Packaging float64 `json:"packaging"`
			Other     float64 `json:"other"`
		} `json:"subtotals"`
		Result struct {
			AggregateCost float64 `json:"aggregateCost"`
		} `json:"result"`
		Warnings []json.RawMessage `json:"warnings"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v\n%s", err, out)
	}

	if report.Subtotals.Materials != 16 {
		t.Fatalf("materials = %v, want 16 (blank size counts as 1)", report.Subtotals.Materials)
	}
	if math.Abs(report.Subtotals.Packaging-0.75) > 1e-9 {
		t.Fatalf("packaging = %v, want 0.75", report.Subtotals.Packaging)
	}
	if math.Abs(report.Result.AggregateCost-19.25) > 1e-9 {
		t.Fatalf("aggregate = %v, want 19.25", report.Result.AggregateCost)
	}
	if len(report.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %d", len(report.Warnings))
	}
}

func TestEstimate_ZeroSizeWarning(t *testing.T) {
	out, errOut, err := run(t, "estimate", "--material", "Glue,5,0,1")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if !strings.Contains(errOut, "warning: materials 1: unit size is 0") {
		t.Fatalf("expected warning on stderr, got %q", errOut)
	}
	if !strings.Contains(out, "$0.00") {
		t.Fatalf("expected zero totals, got:\n%s", out)
	}
}

func TestEstimate_NegativeProfitNote(t *testing.T) {
	out, _, err := run(t, "estimate", "--material", "Clay,10,1,1", "--discount", "20")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if !strings.Contains(out, "$-2.00") || !strings.Contains(out, "profit is negative") {
		t.Fatalf("expected negative profit note, got:\n%s", out)
	}
}

func TestEstimate_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "too many values", args: []string{"estimate", "--labor", "a,1,2,3"}, want: "expected at most 3 values"},
		{name: "bad quoting", args: []string{"estimate", "--material", `"open,1,1,1`}, want: "--material"},
		{name: "unknown format", args: []string{"estimate", "--format", "xml"}, want: "unknown format"},
		{name: "positional args", args: []string{"estimate", "extra"}, want: "unknown command"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, tc.args...)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestSplitLine(t *testing.T) {
	got, err := splitLine("material", "Yarn, 20", 4)
	if err != nil {
		t.Fatalf("splitLine: %v", err)
	}
	if len(got) != 4 || got[0] != "Yarn" || got[1] != "20" || got[2] != "" || got[3] != "" {
		t.Fatalf("unexpected values %q", got)
	}

	empty, err := splitLine("labor", "", 3)
	if err != nil {
		t.Fatalf("splitLine empty: %v", err)
	}
	if len(empty) != 3 {
		t.Fatalf("expected 3 blank values, got %q", empty)
	}
}

func TestStates(t *testing.T) {
	out, _, err := run(t, "states", "au")
	if err != nil {
		t.Fatalf("states: %v", err)
	}
	if !strings.Contains(out, "CODE") || !strings.Contains(out, "New South Wales") || !strings.Contains(out, "Tasmania") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	out, _, err = run(t, "states", "US", "--search", "dakota")
	if err != nil {
		t.Fatalf("states search: %v", err)
	}
	if strings.Count(out, "Dakota") != 2 {
		t.Fatalf("expected North and South Dakota, got:\n%s", out)
	}

	out, _, err = run(t, "states", "sg")
	if err != nil {
		t.Fatalf("states sg: %v", err)
	}
	if !strings.Contains(out, "No states/provinces available for this country") {
		t.Fatalf("unexpected output for SG:\n%s", out)
	}

	if _, _, err := run(t, "states", "zz"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) != "pricecalc version "+version {
		t.Fatalf("unexpected version output %q", out)
	}
}
