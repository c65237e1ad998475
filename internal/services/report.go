package services

import (
	"log/slog"

	"control-system/internal/models"
)

// DescriptionLine строка подписи под графиком
type DescriptionLine struct {
	Text  string `json:"text"`
	Color string `json:"color,omitempty"`
}

// PlotBlock один отрисованный график
type PlotBlock struct {
	Key         string            `json:"key"`
	Title       string            `json:"title"`
	Src         string            `json:"src"`
	Kind        string            `json:"kind" enums:"data_url,base64,path"`
	Description []DescriptionLine `json:"description"`
}

// Stability метка устойчивости системы
type Stability struct {
	Stable bool   `json:"stable"`
	Label  string `json:"label"`
	Color  string `json:"color"`
}

// Report всё, что нужно показать по ответу сервиса расчёта
type Report struct {
	Zeros     string      `json:"zeros"`
	Poles     string      `json:"poles"`
	Stability Stability   `json:"stability"`
	Plots     []PlotBlock `json:"plots"`
}

// PlotKeys ключи отрисованных графиков по порядку
func (r *Report) PlotKeys() []string {
	keys := make([]string, 0, len(r.Plots))
	for _, p := range r.Plots {
		keys = append(keys, p.Key)
	}
	return keys
}

// BuildReport интерпретирует ответ. Чистая функция, кроме предупреждений в лог
// о графиках, которые не удалось разобрать.
func BuildReport(resp *models.ComputeResponse, apiURL string) Report {
	report := Report{
		Zeros:     textOrNoData(resp.Zeros.Text()),
		Poles:     textOrNoData(resp.Poles.Text()),
		Stability: stabilityOf(bool(resp.IsStable)),
	}

	for _, key := range models.PlotOrder {
		field := resp.Plot(key)
		if !field.Present() {
			continue
		}

		raw, ok := field.Text()
		if !ok {
			slog.Warn("Invalid plot data format", "plot", key, "value", string(field))
			continue
		}
		src, ok := ResolveImage(raw, apiURL)
		if !ok {
			slog.Warn("Invalid plot data format", "plot", key, "value", truncate(raw, 64))
			continue
		}

		report.Plots = append(report.Plots, PlotBlock{
			Key:         key,
			Title:       plotTitles[key],
			Src:         src.Src,
			Kind:        src.Kind.String(),
			Description: describe(key, resp, report),
		})
	}

	return report
}

func describe(key string, resp *models.ComputeResponse, report Report) []DescriptionLine {
	switch key {
	case models.PlotBode:
		return []DescriptionLine{
			{Text: report.Stability.Label, Color: report.Stability.Color},
			{Text: "Запас устойчивости: " + textOrNoData(resp.StabilityMargin.Text()) + "°"},
		}
	case models.PlotStepResponse:
		return []DescriptionLine{
			{Text: "Время переходного процесса: " + textOrNoData(resp.SettlingTime.Text()) + " сек"},
			{Text: "Перерегулирование: " + textOrNoData(resp.Overshoot.Text()) + "%"},
		}
	case models.PlotPolesZeros:
		return []DescriptionLine{
			{Text: "Нули: " + report.Zeros},
			{Text: "Полюса: " + report.Poles},
		}
	}
	return nil
}

func stabilityOf(stable bool) Stability {
	if stable {
		return Stability{Stable: true, Label: MsgStable, Color: ColorStable}
	}
	return Stability{Stable: false, Label: MsgUnstable, Color: ColorUnstable}
}

func textOrNoData(text string, ok bool) string {
	if !ok {
		return MsgNoData
	}
	return text
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
