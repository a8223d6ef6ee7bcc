package botcheck

import "testing"

func TestWidget(t *testing.T) {
	tests := []struct {
		name       string
		widget     Widget
		wantScript string
		simulated  bool
	}{
		{name: "dev", widget: New("key", "", true), wantScript: "", simulated: true},
		{name: "missing key", widget: New("", "quote", false), wantScript: "", simulated: true},
		{name: "live", widget: New("abc 123", "", false), wantScript: "https://www.google.com/recaptcha/api.js?render=abc+123"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.widget.ScriptURL(); got != tc.wantScript {
				t.Fatalf("ScriptURL() = %q, want %q", got, tc.wantScript)
			}
			if got := tc.widget.Simulated(); got != tc.simulated {
				t.Fatalf("Simulated() = %v, want %v", got, tc.simulated)
			}
		})
	}

	if New("k", "", false).Action != DefaultAction {
		t.Fatalf("expected default action")
	}
}
