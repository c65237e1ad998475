package models

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, body string) ComputeResponse {
	t.Helper()
	var resp ComputeResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unmarshal %s: %v", body, err)
	}
	return resp
}

func TestRootListVariants(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		kind   RootKind
		text   string
		wantOK bool
	}{
		{"numbers", `{"zeros": [-1, -2]}`, RootsList, "-1, -2", true},
		{"strings", `{"zeros": ["-1+2j", "-1-2j"]}`, RootsList, "-1+2j, -1-2j", true},
		{"single string", `{"zeros": "нет нулей"}`, RootsText, "нет нулей", true},
		{"empty list", `{"zeros": []}`, RootsList, "", true},
		{"absent", `{}`, RootsAbsent, "", false},
		{"null", `{"zeros": null}`, RootsAbsent, "", false},
		{"number", `{"zeros": 5}`, RootsAbsent, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := decode(t, tc.body)
			if resp.Zeros.Kind != tc.kind {
				t.Fatalf("Kind = %v, want %v", resp.Zeros.Kind, tc.kind)
			}
			text, ok := resp.Zeros.Text()
			if ok != tc.wantOK || text != tc.text {
				t.Fatalf("Text() = %q, %v; want %q, %v", text, ok, tc.text, tc.wantOK)
			}
		})
	}
}

func TestNumericText(t *testing.T) {
	cases := []struct {
		body   string
		text   string
		wantOK bool
	}{
		{`{"overshoot": 12.5}`, "12.5", true},
		{`{"overshoot": 0}`, "0", true},
		{`{"overshoot": "3.2"}`, "3.2", true},
		{`{"overshoot": ""}`, "", false},
		{`{"overshoot": null}`, "", false},
		{`{}`, "", false},
	}
	for _, tc := range cases {
		resp := decode(t, tc.body)
		text, ok := resp.Overshoot.Text()
		if ok != tc.wantOK || text != tc.text {
			t.Fatalf("%s: Text() = %q, %v; want %q, %v", tc.body, text, ok, tc.text, tc.wantOK)
		}
	}
}

func TestIsStableFlag(t *testing.T) {
	cases := []struct {
		body string
		want bool
	}{
		{`{"is_stable": true}`, true},
		{`{"is_stable": false}`, false},
		{`{"is_stable": "true"}`, true},
		{`{"is_stable": ""}`, false},
		{`{"is_stable": 1}`, true},
		{`{"is_stable": 0}`, false},
		{`{"is_stable": null}`, false},
		{`{"is_stable": [0]}`, true},
		{`{}`, false},
	}

	for _, tc := range cases {
		resp := decode(t, tc.body)
		if bool(resp.IsStable) != tc.want {
			t.Fatalf("%s: IsStable = %v, want %v", tc.body, resp.IsStable, tc.want)
		}
	}
}

func TestNonBoolStabilityKeepsResponse(t *testing.T) {
	resp := decode(t, `{"is_stable": "true", "bode": "iVBORw0KG"}`)
	if !resp.IsStable {
		t.Fatalf("IsStable = false")
	}
	if s, ok := resp.Plot(PlotBode).Text(); !ok || s != "iVBORw0KG" {
		t.Fatalf("bode Text() = %q, %v", s, ok)
	}
}

func TestPlotField(t *testing.T) {
	resp := decode(t, `{
		"bode": "iVBORw0KG",
		"step_response": "",
		"impulse_response": 42,
		"nyquist_plot": null
	}`)

	if !resp.Plot(PlotBode).Present() {
		t.Fatalf("bode should be present")
	}
	if s, ok := resp.Plot(PlotBode).Text(); !ok || s != "iVBORw0KG" {
		t.Fatalf("bode Text() = %q, %v", s, ok)
	}
	if resp.Plot(PlotStepResponse).Present() {
		t.Fatalf("empty string should not be present")
	}
	if !resp.Plot(PlotImpulseResponse).Present() {
		t.Fatalf("number should be present")
	}
	if _, ok := resp.Plot(PlotImpulseResponse).Text(); ok {
		t.Fatalf("number should not decode as text")
	}
	if resp.Plot(PlotNyquist).Present() || resp.Plot(PlotMikhailov).Present() {
		t.Fatalf("null and absent plots should not be present")
	}
	if resp.Plot("unknown") != nil {
		t.Fatalf("unknown key should return nil")
	}
}

func TestComputeRequestBody(t *testing.T) {
	b, err := json.Marshal(ComputeRequest{Function: "(s+3)/(s^2+4s+5)"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"function":"(s+3)/(s^2+4s+5)"}` {
		t.Fatalf("body = %s", b)
	}
}
