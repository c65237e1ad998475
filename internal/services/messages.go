package services

import (
	"control-system/internal/formula"
	"control-system/internal/models"
)

// Тексты, которые видит пользователь
const (
	MsgInvalidFunction = "Ошибка! Введите функцию в формате: " + formula.Example
	MsgRequestFailed   = "Произошла ошибка при обработке запроса. Подробности записаны в журнал сервиса."

	MsgStable   = "Система устойчива"
	MsgUnstable = "Система неустойчива"
	MsgNoData   = "Нет данных"

	ColorStable   = "green"
	ColorUnstable = "red"
)

// plotTitles заголовки графиков
var plotTitles = map[string]string{
	models.PlotBode:            "Частотная характеристика (Боде)",
	models.PlotStepResponse:    "Переходная характеристика",
	models.PlotImpulseResponse: "Импульсная характеристика",
	models.PlotNyquist:         "Годограф Найквиста",
	models.PlotMikhailov:       "Годограф Михайлова",
	models.PlotPolesZeros:      "Нули и полюса",
}
