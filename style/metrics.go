package style

import "strings"

// 该文件负责把元素的内联样式与尺寸属性解析为一次渲染所需的字体度量。

// 默认值：当元素未声明对应样式时使用。
const (
	DefaultFontSize   = 16.0
	DefaultFontFamily = "'Arial Black', sans-serif"
	DefaultFontWeight = "600"
	DefaultWidth      = 800.0
)

// Font 描述测量与渲染共用的字体（尺寸单位为 px）。
type Font struct {
	Family string  `json:"family"`
	Size   float64 `json:"size"`
	Weight string  `json:"weight"`
}

// Metrics 保存一次渲染所需的全部度量。Width/Height 为容器尺寸（px），
// Height 为 0 表示未显式指定，由调用方派生。
type Metrics struct {
	Font
	LineHeight float64 `json:"lineHeight"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

// Source 汇集计算度量所需的元素原始属性值。
type Source struct {
	Style  string // style 属性原文
	Width  string // width 属性（style 未声明 width 时的兜底）
	Height string // height 属性（同上）
}

// Compute 按 Source 解析度量，缺失项回退到默认值。
// 行高遵循 factor/absolute 语义，未声明时为字号的 1.4 倍。
func Compute(src Source) Metrics {
	sheet := ParseDeclarations(src.Style)

	m := Metrics{
		Font: Font{
			Family: DefaultFontFamily,
			Size:   DefaultFontSize,
			Weight: DefaultFontWeight,
		},
	}

	if d := sheet.Lookup("font-size"); d != nil {
		if px := ParseLength(d.First()).ToPx(DefaultFontSize, DefaultFontSize); px > 0 {
			m.Size = px
		}
	}
	if d := sheet.Lookup("font-family"); d != nil {
		if v := d.Value(); v != "" {
			m.Family = v
		}
	}
	if d := sheet.Lookup("font-weight"); d != nil {
		if v := strings.TrimSpace(d.First()); v != "" {
			m.Weight = v
		}
	}

	lh := LineHeightSpec{}
	if d := sheet.Lookup("line-height"); d != nil {
		lh = ParseLineHeight(d.First())
	}
	m.LineHeight = lh.Resolve(m.Size)

	m.Width = resolveDimension(sheet.Lookup("width"), src.Width, m.Size)
	if m.Width <= 0 {
		m.Width = DefaultWidth
	}
	// Height 为 0 视作未指定（与宽度不同，这里不回退默认值）。
	m.Height = resolveDimension(sheet.Lookup("height"), src.Height, m.Size)
	if m.Height < 0 {
		m.Height = 0
	}
	return m
}

// resolveDimension 优先取 style 声明，其次取元素属性；属性允许裸数字。
func resolveDimension(decl *Declaration, attr string, fontSize float64) float64 {
	if decl != nil {
		if px := ParseLength(decl.First()).ToPx(fontSize, 0); px > 0 {
			return px
		}
	}
	if v := strings.TrimSpace(attr); v != "" {
		return ParseLength(v).ToPx(fontSize, 0)
	}
	return 0
}
