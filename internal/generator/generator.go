package generator

import (
	"errors"
	"fmt"
	"path/filepath"
	"rosterFixture/internal/config"
	"rosterFixture/internal/excel"
	"rosterFixture/internal/logger"
	"rosterFixture/internal/roster"
)

// ErrBackendUnavailable reports that no spreadsheet backend could be created
var ErrBackendUnavailable = errors.New("spreadsheet backend unavailable")

// Backend creates the empty workbook the fixture is written into
type Backend func() (*excel.Editor, error)

func excelizeBackend() (*excel.Editor, error) {
	return excel.CreateNewFile(), nil
}

type Options struct {
	OutputFile      string
	SheetName       string
	Widths          []float64
	HeaderColor     string
	HeaderFontColor string
}

// DefaultOptions returns the fixed fixture layout
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default().Output)
}

func OptionsFromConfig(cfg config.OutputConfig) Options {
	return Options{
		OutputFile:      cfg.File,
		SheetName:       cfg.Sheet,
		Widths:          cfg.ColumnWidths,
		HeaderColor:     cfg.HeaderColor,
		HeaderFontColor: cfg.HeaderFontColor,
	}
}

type Generator struct {
	opts    Options
	backend Backend
}

func New(opts Options) *Generator {
	return &Generator{
		opts:    opts,
		backend: excelizeBackend,
	}
}

// WithBackend replaces the workbook factory
func (g *Generator) WithBackend(b Backend) *Generator {
	g.backend = b
	return g
}

// OutputFile returns the path the workbook is saved to, as configured
func (g *Generator) OutputFile() string {
	return g.opts.OutputFile
}

// Generate writes the sample roster workbook and returns its absolute path.
// An existing file at the output path is replaced.
func (g *Generator) Generate() (string, error) {
	editor, err := g.backend()
	if err != nil {
		return "", err
	}
	defer editor.Close()

	sheet := g.opts.SheetName
	if err := editor.RenameSheet(editor.ActiveSheet(), sheet); err != nil {
		return "", err
	}

	lastCol := excel.ColumnName(len(roster.Headers) - 1)

	headers := make([]interface{}, len(roster.Headers))
	for i, h := range roster.Headers {
		headers[i] = h
	}
	if err := editor.SetRow(sheet, 1, headers); err != nil {
		return "", err
	}
	err = editor.ApplyStyle(sheet, "A1", lastCol+"1", excel.HeaderStyle(g.opts.HeaderColor, g.opts.HeaderFontColor))
	if err != nil {
		return "", err
	}

	rows := roster.SampleRows()
	for i, r := range rows {
		if err := editor.SetRow(sheet, i+2, r.Values()); err != nil {
			return "", err
		}
	}

	for i, w := range g.opts.Widths {
		if err := editor.SetColumnWidth(sheet, excel.ColumnName(i), w); err != nil {
			return "", fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if len(rows) > 0 {
		err = editor.ApplyStyle(sheet, "A2", fmt.Sprintf("%s%d", lastCol, len(rows)+1), excel.DataStyle())
		if err != nil {
			return "", err
		}
	}

	if err := editor.SaveAs(g.opts.OutputFile); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", g.opts.OutputFile, err)
	}

	abs, err := filepath.Abs(g.opts.OutputFile)
	if err != nil {
		return "", err
	}

	logger.Info("Sample roster written", "path", abs, "sheet", sheet, "rows", len(rows))
	return abs, nil
}
