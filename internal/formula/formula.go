// Package formula проверяет форму передаточной функции и переводит её в LaTeX.
//
// Перевод в LaTeX - это последовательность текстовых замен, а не разбор выражения:
// вложенные дроби, отрицательные степени и несколько символов "/" дают
// неопределённый результат.
package formula

import (
	"regexp"
	"strings"
)

// Example пример корректного ввода, показывается пользователю
const Example = "(s+3)/(s^2+4s+5)"

var (
	shapeRe    = regexp.MustCompile(`^\(.*\)/\(.*\)$`)
	exponentRe = regexp.MustCompile(`s\^(\d+)`)

	delimiters = strings.NewReplacer(
		"(", `\left(`,
		")", `\right)`,
	)
)

// IsValidTransferFunction проверяет форму (числитель)/(знаменатель)
func IsValidTransferFunction(input string) bool {
	return shapeRe.MatchString(strings.TrimSpace(input))
}

// ToLatex переводит выражение в \frac{...}{...}
func ToLatex(expr string) string {
	out := strings.ReplaceAll(expr, "*", "")
	out = exponentRe.ReplaceAllString(out, "s^{$1}")
	out = delimiters.Replace(out)
	out = strings.Replace(out, ",", ".", 1)
	out = strings.Replace(out, "/", "}{", 1)
	return `\frac{` + out + "}"
}

// DisplayFormula W(s) = <latex>
func DisplayFormula(latex string) string {
	return "W(s) = " + latex
}
