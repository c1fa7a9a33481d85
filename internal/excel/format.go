package excel

import (
	"dario.cat/mergo"
	"github.com/xuri/excelize/v2"
)

// HeaderStyle is a solid fill with bold text, centred both ways
func HeaderStyle(fillColor, fontColor string) *excelize.Style {
	return mergeStyles(solidFill(fillColor), fontBold(fontColor), centered())
}

// DataStyle centres cell contents both ways
func DataStyle() *excelize.Style {
	return centered()
}

func solidFill(color string) *excelize.Style {
	return &excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#" + color},
			Pattern: 1,
		},
	}
}

// mergo replaces pointer fields wholesale, so bold and colour share one Font
func fontBold(color string) *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#" + color,
		},
	}
}

func centered() *excelize.Style {
	return &excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	}
}

func mergeStyles(ext ...*excelize.Style) *excelize.Style {
	if len(ext) == 0 {
		return nil
	}
	for _, e := range ext[1:] {
		_ = mergo.Merge(ext[0], e, mergo.WithOverride)
	}
	return ext[0]
}
