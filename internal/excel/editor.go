package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

type Editor struct {
	file     *excelize.File
	filepath string
}

// OpenFile opens an existing Excel file
func OpenFile(filepath string) (*Editor, error) {
	file, err := excelize.OpenFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return &Editor{
		file:     file,
		filepath: filepath,
	}, nil
}

// CreateNewFile creates a new Excel file in memory
func CreateNewFile() *Editor {
	return &Editor{
		file: excelize.NewFile(),
	}
}

// ActiveSheet returns the name of the sheet shown when the workbook opens
func (e *Editor) ActiveSheet() string {
	return e.file.GetSheetName(e.file.GetActiveSheetIndex())
}

// RenameSheet changes the title of a sheet
func (e *Editor) RenameSheet(oldName, newName string) error {
	if oldName == newName {
		return nil
	}
	if err := e.file.SetSheetName(oldName, newName); err != nil {
		return fmt.Errorf("failed to rename sheet %s: %w", oldName, err)
	}
	return nil
}

// GetSheetNames returns all sheet names in the workbook
func (e *Editor) GetSheetNames() []string {
	return e.file.GetSheetList()
}

// SetRow writes values left to right starting at column A of the given 1-based row
func (e *Editor) SetRow(sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := e.file.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

// SetColumnWidth sets the width of a single column
func (e *Editor) SetColumnWidth(sheet, column string, width float64) error {
	return e.file.SetColWidth(sheet, column, column, width)
}

// GetColumnWidth returns the width of a single column
func (e *Editor) GetColumnWidth(sheet, column string) (float64, error) {
	return e.file.GetColWidth(sheet, column)
}

// ApplyStyle registers style and applies it to the cell range from:to
func (e *Editor) ApplyStyle(sheet, from, to string, style *excelize.Style) error {
	id, err := e.file.NewStyle(style)
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	if err := e.file.SetCellStyle(sheet, from, to, id); err != nil {
		return fmt.Errorf("failed to apply style to %s:%s: %w", from, to, err)
	}
	return nil
}

// GetCellStyle returns the style definition applied to a cell
func (e *Editor) GetCellStyle(sheet, cell string) (*excelize.Style, error) {
	id, err := e.file.GetCellStyle(sheet, cell)
	if err != nil {
		return nil, err
	}
	return e.file.GetStyle(id)
}

// GetAllRows returns all rows from a sheet
func (e *Editor) GetAllRows(sheet string) ([][]string, error) {
	return e.file.GetRows(sheet)
}

// SaveAs saves the Excel file with a new name, replacing any existing file
func (e *Editor) SaveAs(filepath string) error {
	e.filepath = filepath
	return e.file.SaveAs(filepath)
}

// Close closes the Excel file
func (e *Editor) Close() error {
	return e.file.Close()
}

// ColumnName converts a 0-based column index to its letter form
func ColumnName(index int) string {
	result := ""
	for index >= 0 {
		result = string(rune('A'+index%26)) + result
		index = index/26 - 1
	}
	return result
}
