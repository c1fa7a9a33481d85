package generator

import (
	"errors"
	"fmt"
	"io"
	"rosterFixture/internal/logger"
	"rosterFixture/internal/roster"

	"github.com/charmbracelet/lipgloss"
)

// Report prints the saved location and the column legend
func Report(w io.Writer, file, absPath string) {
	r := lipgloss.NewRenderer(w)
	okStyle := r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	titleStyle := r.NewStyle().Bold(true)

	fmt.Fprintln(w, okStyle.Render("✓ 示例文件已生成: "+file))
	fmt.Fprintf(w, "  文件位置: %s\n", absPath)
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("说明："))
	for _, line := range roster.Legend() {
		fmt.Fprintln(w, line)
	}
}

// Remediation prints how to restore the spreadsheet backend
func Remediation(w io.Writer) {
	fmt.Fprintln(w, "错误：需要安装 excelize")
	fmt.Fprintln(w, "请运行: go get github.com/xuri/excelize/v2")
}

// Run generates the fixture and reports to w. A missing backend is
// reported with Remediation and is not an error.
func Run(w io.Writer, g *Generator) error {
	abs, err := g.Generate()
	if errors.Is(err, ErrBackendUnavailable) {
		logger.Warn("Spreadsheet backend unavailable", "error", err)
		Remediation(w)
		return nil
	}
	if err != nil {
		return err
	}

	Report(w, g.OutputFile(), abs)
	return nil
}
