package services

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"control-system/internal/models"
)

func mustResponse(t *testing.T, body string) *models.ComputeResponse {
	t.Helper()
	var resp models.ComputeResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return &resp
}

func descriptionText(block PlotBlock) string {
	parts := make([]string, 0, len(block.Description))
	for _, line := range block.Description {
		parts = append(parts, line.Text)
	}
	return strings.Join(parts, "\n")
}

func TestBuildReportZerosList(t *testing.T) {
	resp := mustResponse(t, `{"zeros": [-1, -2], "poles": "-1+2j, -1-2j", "poles_zeros": "iVBORw0KG"}`)
	report := BuildReport(resp, testAPIURL)

	if report.Zeros != "-1, -2" {
		t.Fatalf("Zeros = %q, want %q", report.Zeros, "-1, -2")
	}
	if len(report.Plots) != 1 {
		t.Fatalf("plots = %d, want 1", len(report.Plots))
	}
	desc := descriptionText(report.Plots[0])
	if !strings.Contains(desc, "Нули: -1, -2") {
		t.Fatalf("description %q missing zeros", desc)
	}
	if !strings.Contains(desc, "Полюса: -1+2j, -1-2j") {
		t.Fatalf("description %q missing poles", desc)
	}
}

func TestBuildReportNoData(t *testing.T) {
	resp := mustResponse(t, `{"bode": "iVBORw0KG", "step_response": "iVBORw0KG", "poles_zeros": "iVBORw0KG"}`)
	report := BuildReport(resp, testAPIURL)

	if report.Zeros != MsgNoData || report.Poles != MsgNoData {
		t.Fatalf("Zeros/Poles = %q/%q, want placeholder", report.Zeros, report.Poles)
	}
	bode := descriptionText(report.Plots[0])
	if !strings.Contains(bode, "Запас устойчивости: Нет данных°") {
		t.Fatalf("bode description = %q", bode)
	}
	step := descriptionText(report.Plots[1])
	if !strings.Contains(step, "Время переходного процесса: Нет данных сек") ||
		!strings.Contains(step, "Перерегулирование: Нет данных%") {
		t.Fatalf("step description = %q", step)
	}
}

func TestBuildReportStability(t *testing.T) {
	cases := []struct {
		body  string
		label string
		color string
	}{
		{`{"is_stable": true, "bode": "iVBORw0KG", "stability_margin": 45.5}`, MsgStable, ColorStable},
		{`{"is_stable": false, "bode": "iVBORw0KG", "stability_margin": 45.5}`, MsgUnstable, ColorUnstable},
		{`{"bode": "iVBORw0KG"}`, MsgUnstable, ColorUnstable},
	}
	for _, tc := range cases {
		report := BuildReport(mustResponse(t, tc.body), testAPIURL)
		if report.Stability.Label != tc.label || report.Stability.Color != tc.color {
			t.Fatalf("%s: stability = %+v", tc.body, report.Stability)
		}
		first := report.Plots[0].Description[0]
		if first.Text != tc.label || first.Color != tc.color {
			t.Fatalf("%s: bode first line = %+v", tc.body, first)
		}
	}

	report := BuildReport(mustResponse(t, cases[0].body), testAPIURL)
	if got := report.Plots[0].Description[1].Text; got != "Запас устойчивости: 45.5°" {
		t.Fatalf("margin line = %q", got)
	}
}

func TestBuildReportStepMetrics(t *testing.T) {
	resp := mustResponse(t, `{"step_response": "/plots/step.png", "settling_time": 2.4, "overshoot": "13.1"}`)
	report := BuildReport(resp, testAPIURL)

	block := report.Plots[0]
	if block.Src != "https://compute.example.com/plots/step.png" || block.Kind != "path" {
		t.Fatalf("block = %+v", block)
	}
	want := []DescriptionLine{
		{Text: "Время переходного процесса: 2.4 сек"},
		{Text: "Перерегулирование: 13.1%"},
	}
	if !reflect.DeepEqual(block.Description, want) {
		t.Fatalf("description = %+v, want %+v", block.Description, want)
	}
}

func TestBuildReportOrderAndSkips(t *testing.T) {
	resp := mustResponse(t, `{
		"poles_zeros": "iVBORw0KG",
		"mikhailov_plot": "not an image!",
		"nyquist_plot": "data:image/png;base64,AAAA",
		"impulse_response": 17,
		"step_response": "",
		"bode": "/plots/bode.png",
		"extra_plot": "iVBORw0KG"
	}`)
	report := BuildReport(resp, testAPIURL)

	want := []string{models.PlotBode, models.PlotNyquist, models.PlotPolesZeros}
	if got := report.PlotKeys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("plot keys = %v, want %v", got, want)
	}
	for _, block := range report.Plots {
		if block.Title == "" {
			t.Fatalf("block %s has empty title", block.Key)
		}
	}
	if report.Plots[1].Description != nil {
		t.Fatalf("nyquist description = %+v, want empty", report.Plots[1].Description)
	}
}

func TestBuildReportBase64Source(t *testing.T) {
	report := BuildReport(mustResponse(t, `{"impulse_response": "iVBORw0KG"}`), testAPIURL)
	if report.Plots[0].Src != "data:image/png;base64,iVBORw0KG" {
		t.Fatalf("src = %q", report.Plots[0].Src)
	}
}
