package handlers

import (
	"control-system/internal/formula"
	"control-system/internal/services"
)

// PageView состояние страницы после одной отправки
type PageView struct {
	Function string
	Example  string
	Error    string
	Latex    string
	Formula  string
	Loading  bool
	Summary  *services.Report
	Plots    []services.PlotBlock
}

// PageDisplay собирает PageView, один экземпляр на запрос
type PageDisplay struct {
	view PageView
}

func NewPageDisplay(function string) *PageDisplay {
	return &PageDisplay{view: PageView{Function: function, Example: formula.Example}}
}

func (d *PageDisplay) Reset() {
	d.view.Error = ""
	d.view.Latex = ""
	d.view.Formula = ""
	d.view.Summary = nil
	d.view.Plots = nil
}

func (d *PageDisplay) SetLoading(loading bool) {
	d.view.Loading = loading
}

func (d *PageDisplay) ShowError(message string) {
	d.view.Error = message
}

func (d *PageDisplay) ShowFormula(latex string) {
	d.view.Latex = latex
	d.view.Formula = formula.DisplayFormula(latex)
}

func (d *PageDisplay) ShowSummary(report *services.Report) {
	d.view.Summary = report
}

func (d *PageDisplay) AddPlot(block services.PlotBlock) {
	d.view.Plots = append(d.view.Plots, block)
}

// View копия текущего состояния
func (d *PageDisplay) View() PageView {
	return d.view
}
