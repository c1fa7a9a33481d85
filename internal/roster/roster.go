package roster

// Category is the student type stored in the fourth column
type Category string

const (
	Monk       Category = "monk"
	OldStudent Category = "old_student"
	NewStudent Category = "new_student"
)

const (
	Male   = "M"
	Female = "F"
)

// Headers are the column labels of the first row, in column order
var Headers = []string{"姓名", "性别", "年龄", "学员类型", "优先级"}

// Row is one student line of the fixture
type Row struct {
	Name     string
	Sex      string
	Age      int
	Category Category
	Priority int
}

// Values returns the cell values of the row in column order
func (r Row) Values() []interface{} {
	return []interface{}{r.Name, r.Sex, r.Age, string(r.Category), r.Priority}
}

// SampleRows returns the demonstration rows written below the header
func SampleRows() []Row {
	return []Row{
		{"法悟", Male, 45, Monk, 1},
		{"李梅", Female, 38, OldStudent, 2},
		{"张三", Male, 25, NewStudent, 3},
		{"王五", Male, 42, OldStudent, 2},
		{"陈女", Female, 30, NewStudent, 3},
		{"林道", Male, 55, Monk, 1},
		{"刘英", Female, 28, NewStudent, 3},
		{"孙慧", Female, 48, OldStudent, 2},
		{"赵刚", Male, 35, OldStudent, 2},
		{"周翔", Male, 26, NewStudent, 3},
	}
}

// Legend describes each column and the accepted category values
func Legend() []string {
	return []string{
		"- 第1列：姓名（必填）",
		"- 第2列：性别（必填，M 男 / F 女）",
		"- 第3列：年龄（必填，正整数）",
		"- 第4列：学员类型（必填）",
		"    • " + string(Monk) + " 表示法师",
		"    • " + string(OldStudent) + " 表示旧生",
		"    • " + string(NewStudent) + " 表示新生",
		"- 第5列：优先级（可选，数字）",
	}
}
