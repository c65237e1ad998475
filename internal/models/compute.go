package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ComputeRequest тело запроса к сервису расчёта
type ComputeRequest struct {
	Function string `json:"function" binding:"required" example:"(s+3)/(s^2+4s+5)"` // Передаточная функция
}

// Ключи графиков в ответе сервиса расчёта
const (
	PlotBode            = "bode"
	PlotStepResponse    = "step_response"
	PlotImpulseResponse = "impulse_response"
	PlotNyquist         = "nyquist_plot"
	PlotMikhailov       = "mikhailov_plot"
	PlotPolesZeros      = "poles_zeros"
)

// PlotOrder фиксированный порядок вывода графиков
var PlotOrder = []string{
	PlotBode,
	PlotStepResponse,
	PlotImpulseResponse,
	PlotNyquist,
	PlotMikhailov,
	PlotPolesZeros,
}

// ComputeResponse ответ сервиса расчёта. Все поля необязательные.
type ComputeResponse struct {
	Zeros           RootList    `json:"zeros"`
	Poles           RootList    `json:"poles"`
	IsStable        Flag        `json:"is_stable"`
	StabilityMargin NumericText `json:"stability_margin"`
	SettlingTime    NumericText `json:"settling_time"`
	Overshoot       NumericText `json:"overshoot"`

	Bode            PlotField `json:"bode"`
	StepResponse    PlotField `json:"step_response"`
	ImpulseResponse PlotField `json:"impulse_response"`
	NyquistPlot     PlotField `json:"nyquist_plot"`
	MikhailovPlot   PlotField `json:"mikhailov_plot"`
	PolesZeros      PlotField `json:"poles_zeros"`
}

// Plot возвращает поле графика по ключу
func (r *ComputeResponse) Plot(key string) PlotField {
	switch key {
	case PlotBode:
		return r.Bode
	case PlotStepResponse:
		return r.StepResponse
	case PlotImpulseResponse:
		return r.ImpulseResponse
	case PlotNyquist:
		return r.NyquistPlot
	case PlotMikhailov:
		return r.MikhailovPlot
	case PlotPolesZeros:
		return r.PolesZeros
	}
	return nil
}

// RootKind вид поля zeros/poles
type RootKind int

const (
	RootsAbsent RootKind = iota
	RootsText
	RootsList
)

// RootList нули или полюса: строка, упорядоченный список или ничего
type RootList struct {
	Kind  RootKind
	Items []string
}

// UnmarshalJSON принимает строку или массив; остальное считается отсутствием данных
func (r *RootList) UnmarshalJSON(data []byte) error {
	*r = RootList{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		r.Kind, r.Items = RootsText, []string{text}
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err == nil {
		r.Kind = RootsList
		r.Items = make([]string, 0, len(items))
		for _, item := range items {
			r.Items = append(r.Items, rawText(item))
		}
	}
	return nil
}

// MarshalJSON обратное преобразование, для журнала и тестов
func (r RootList) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case RootsText:
		return json.Marshal(r.Items[0])
	case RootsList:
		return json.Marshal(r.Items)
	}
	return []byte("null"), nil
}

// Text строка как есть или элементы через ", "
func (r RootList) Text() (string, bool) {
	switch r.Kind {
	case RootsText:
		return r.Items[0], true
	case RootsList:
		return strings.Join(r.Items, ", "), true
	}
	return "", false
}

// NumericText числовое поле, которое может прийти числом, строкой или null
type NumericText struct {
	Value string
	Valid bool
}

func (n *NumericText) UnmarshalJSON(data []byte) error {
	*n = NumericText{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		n.Value, n.Valid = text, text != ""
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		n.Value, n.Valid = strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return nil
}

func (n NumericText) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Text текстовое значение или false, если данных нет
func (n NumericText) Text() (string, bool) {
	return n.Value, n.Valid
}

// Flag логическое поле, которое может прийти не только true/false.
// Строка считается истиной, если она не пустая, число - если не ноль,
// массив и объект - всегда; null и отсутствие ключа дают false.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		*f = false
		return nil
	}

	switch v := v.(type) {
	case bool:
		*f = Flag(v)
	case string:
		*f = v != ""
	case float64:
		*f = v != 0
	case nil:
		*f = false
	default:
		*f = true
	}
	return nil
}

// PlotField сырое значение графика. Разбирается отдельно, чтобы одно
// испорченное поле не ломало весь ответ.
type PlotField json.RawMessage

func (p *PlotField) UnmarshalJSON(data []byte) error {
	*p = append((*p)[:0], data...)
	return nil
}

func (p PlotField) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("null"), nil
	}
	return []byte(p), nil
}

// Present false для отсутствующего ключа, null, false и пустой строки
func (p PlotField) Present() bool {
	switch strings.TrimSpace(string(p)) {
	case "", "null", `""`, "false", "0":
		return false
	}
	return true
}

// Text значение графика, если это JSON-строка
func (p PlotField) Text() (string, bool) {
	var s string
	if err := json.Unmarshal([]byte(p), &s); err != nil {
		return "", false
	}
	return s, true
}

// rawText строковое представление элемента списка
func rawText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return string(bytes.TrimSpace(raw))
}
