// Package cliout выводит результат отправки в терминал
package cliout

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"control-system/internal/formula"
	"control-system/internal/services"
)

var ansiColors = map[string]string{
	services.ColorStable:   "\033[32m",
	services.ColorUnstable: "\033[31m",
}

const ansiReset = "\033[0m"

// TerminalDisplay пишет состояние отправки в поток. Если задан outDir,
// встроенные картинки сохраняются туда как <key>.<ext>.
type TerminalDisplay struct {
	w      io.Writer
	outDir string
	color  bool
	saved  []string
	err    error
}

func NewTerminalDisplay(w io.Writer, outDir string, color bool) *TerminalDisplay {
	return &TerminalDisplay{w: w, outDir: outDir, color: color}
}

// Reset поток нельзя очистить, сбрасывается только список сохранённых файлов
func (d *TerminalDisplay) Reset() {
	d.saved = nil
	d.err = nil
}

func (d *TerminalDisplay) SetLoading(loading bool) {
	if loading {
		d.printf("Загрузка...\n")
	}
}

func (d *TerminalDisplay) ShowError(message string) {
	d.printf("%s\n", d.paint(message, services.ColorUnstable))
}

func (d *TerminalDisplay) ShowFormula(latex string) {
	d.printf("%s\n", formula.DisplayFormula(latex))
}

func (d *TerminalDisplay) ShowSummary(report *services.Report) {
	d.printf("%s\n", d.paint(report.Stability.Label, report.Stability.Color))
}

func (d *TerminalDisplay) AddPlot(block services.PlotBlock) {
	d.printf("\n== %s ==\n", block.Title)
	d.printf("%s\n", d.location(block))
	for _, line := range block.Description {
		d.printf("  %s\n", d.paint(line.Text, line.Color))
	}
}

// Saved пути сохранённых картинок
func (d *TerminalDisplay) Saved() []string {
	return d.saved
}

// Err первая ошибка записи или сохранения
func (d *TerminalDisplay) Err() error {
	return d.err
}

func (d *TerminalDisplay) location(block services.PlotBlock) string {
	if !strings.HasPrefix(block.Src, "data:") {
		return block.Src
	}
	if d.outDir == "" {
		return fmt.Sprintf("(встроенное изображение, %d байт, используйте --out)", len(block.Src))
	}

	path, err := SaveDataURL(d.outDir, block.Key, block.Src)
	if err != nil {
		slog.Warn("Failed to save plot", "plot", block.Key, "error", err)
		d.setErr(err)
		return "(не удалось сохранить изображение)"
	}
	d.saved = append(d.saved, path)
	return path
}

func (d *TerminalDisplay) paint(text, color string) string {
	code, ok := ansiColors[color]
	if !d.color || !ok {
		return text
	}
	return code + text + ansiReset
}

func (d *TerminalDisplay) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(d.w, format, args...); err != nil {
		d.setErr(err)
	}
}

func (d *TerminalDisplay) setErr(err error) {
	if d.err == nil {
		d.err = err
	}
}

var (
	ErrNotBase64  = errors.New("data URL is not base64 encoded")
	ErrOutsideDir = errors.New("image path escapes output directory")
)

// imageExtensions подтипы image/*, которые сохраняются со своим расширением.
// Всё остальное пишется как .bin.
var imageExtensions = map[string]string{
	"png":     "png",
	"jpeg":    "jpg",
	"jpg":     "jpg",
	"gif":     "gif",
	"svg+xml": "svg",
	"webp":    "webp",
}

// SaveDataURL декодирует data:image/<type>;base64,... и пишет в dir/<name>.<ext>
func SaveDataURL(dir, name, dataURL string) (string, error) {
	header, payload, ok := strings.Cut(strings.TrimPrefix(dataURL, "data:"), ",")
	if !ok || !strings.HasSuffix(header, ";base64") {
		return "", ErrNotBase64
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}

	path, err := outputPath(dir, name+"."+extension(strings.TrimSuffix(header, ";base64")))
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// outputPath dir/file, если результат остаётся внутри dir
func outputPath(dir, file string) (string, error) {
	path := filepath.Join(dir, file)
	rel, err := filepath.Rel(filepath.Clean(dir), path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", fmt.Errorf("%w: %s", ErrOutsideDir, file)
	}
	return path, nil
}

func extension(mediaType string) string {
	sub, ok := strings.CutPrefix(strings.ToLower(mediaType), "image/")
	if !ok {
		return "bin"
	}
	if ext, ok := imageExtensions[sub]; ok {
		return ext
	}
	return "bin"
}
