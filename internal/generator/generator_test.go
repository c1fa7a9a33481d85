package generator

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"rosterFixture/internal/excel"
	"strings"
	"testing"
)

func testOptions(t *testing.T) Options {
	opts := DefaultOptions()
	opts.OutputFile = filepath.Join(t.TempDir(), "sample_students.xlsx")
	return opts
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.OutputFile != "sample_students.xlsx" || opts.SheetName != "学员数据" {
		t.Errorf("unexpected defaults %+v", opts)
	}
	if !reflect.DeepEqual(opts.Widths, []float64{15, 10, 10, 15, 10}) {
		t.Errorf("unexpected widths %v", opts.Widths)
	}
}

func TestGenerateContents(t *testing.T) {
	opts := testOptions(t)

	path, err := New(opts).Generate()
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(path) || path != opts.OutputFile {
		t.Errorf("unexpected path %q", path)
	}

	e, err := excel.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer e.Close()

	if names := e.GetSheetNames(); len(names) != 1 || names[0] != "学员数据" {
		t.Fatalf("unexpected sheets %v", names)
	}

	rows, err := e.GetAllRows("学员数据")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 11 {
		t.Fatalf("expected 11 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if len(row) != 5 {
			t.Errorf("row %d: expected 5 columns, got %d", i+1, len(row))
		}
	}

	cases := []struct {
		row  int
		want []string
	}{
		{1, []string{"姓名", "性别", "年龄", "学员类型", "优先级"}},
		{2, []string{"法悟", "M", "45", "monk", "1"}},
		{3, []string{"李梅", "F", "38", "old_student", "2"}},
		{7, []string{"林道", "M", "55", "monk", "1"}},
		{11, []string{"周翔", "M", "26", "new_student", "3"}},
	}
	for _, c := range cases {
		if !reflect.DeepEqual(rows[c.row-1], c.want) {
			t.Errorf("row %d: %v != %v", c.row, rows[c.row-1], c.want)
		}
	}
}

func TestGenerateLayout(t *testing.T) {
	opts := testOptions(t)

	path, err := New(opts).Generate()
	if err != nil {
		t.Fatal(err)
	}

	e, err := excel.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer e.Close()

	sheet := opts.SheetName
	for i, want := range opts.Widths {
		col := excel.ColumnName(i)
		w, err := e.GetColumnWidth(sheet, col)
		if err != nil {
			t.Fatal(err)
		}
		if w != want {
			t.Errorf("column %s: width %v != %v", col, w, want)
		}
	}

	header, err := e.GetCellStyle(sheet, "C1")
	if err != nil {
		t.Fatal(err)
	}
	if header.Font == nil || !header.Font.Bold {
		t.Errorf("header font not bold: %+v", header.Font)
	}
	if header.Fill.Pattern != 1 {
		t.Errorf("header fill not solid: %+v", header.Fill)
	}

	for _, cell := range []string{"A1", "A2", "E11", "C6"} {
		s, err := e.GetCellStyle(sheet, cell)
		if err != nil {
			t.Fatal(err)
		}
		if s.Alignment == nil || s.Alignment.Horizontal != "center" || s.Alignment.Vertical != "center" {
			t.Errorf("%s: not centred: %+v", cell, s.Alignment)
		}
	}
}

func TestGenerateOverwrites(t *testing.T) {
	opts := testOptions(t)
	if err := os.WriteFile(opts.OutputFile, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	g := New(opts)
	var runs [][][]string
	for i := 0; i < 2; i++ {
		path, err := g.Generate()
		if err != nil {
			t.Fatal(err)
		}
		e, err := excel.OpenFile(path)
		if err != nil {
			t.Fatal(err)
		}
		rows, err := e.GetAllRows(opts.SheetName)
		_ = e.Close()
		if err != nil {
			t.Fatal(err)
		}
		runs = append(runs, rows)
	}

	if !reflect.DeepEqual(runs[0], runs[1]) {
		t.Error("rerun produced different content")
	}
}

func TestGenerateSaveError(t *testing.T) {
	opts := testOptions(t)
	opts.OutputFile = filepath.Join(t.TempDir(), "missing", "dir", "out.xlsx")

	_, err := New(opts).Generate()
	if err == nil {
		t.Fatal("unexpected success saving into a missing directory")
	}
	if errors.Is(err, ErrBackendUnavailable) {
		t.Error("save failure reported as missing backend")
	}
}

func TestRunReport(t *testing.T) {
	opts := testOptions(t)

	var buf bytes.Buffer
	if err := Run(&buf, New(opts)); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"✓ 示例文件已生成: " + opts.OutputFile,
		"  文件位置: " + opts.OutputFile,
		"",
		"说明：",
		"- 第1列：姓名（必填）",
		"- 第2列：性别（必填，M 男 / F 女）",
		"- 第3列：年龄（必填，正整数）",
		"- 第4列：学员类型（必填）",
		"    • monk 表示法师",
		"    • old_student 表示旧生",
		"    • new_student 表示新生",
		"- 第5列：优先级（可选，数字）",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("unexpected report:\n%s", buf.String())
	}
}

func TestRunBackendUnavailable(t *testing.T) {
	opts := testOptions(t)
	g := New(opts).WithBackend(func() (*excel.Editor, error) {
		return nil, fmt.Errorf("loading excelize: %w", ErrBackendUnavailable)
	})

	var buf bytes.Buffer
	if err := Run(&buf, g); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	want := "错误：需要安装 excelize\n请运行: go get github.com/xuri/excelize/v2\n"
	if buf.String() != want {
		t.Errorf("unexpected output %q", buf.String())
	}
	if _, err := os.Stat(opts.OutputFile); !os.IsNotExist(err) {
		t.Error("output written without a backend")
	}
}

func TestRunOtherError(t *testing.T) {
	boom := errors.New("boom")
	g := New(testOptions(t)).WithBackend(func() (*excel.Editor, error) {
		return nil, boom
	})

	var buf bytes.Buffer
	if err := Run(&buf, g); !errors.Is(err, boom) {
		t.Errorf("unexpected error %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}
