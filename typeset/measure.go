// Package typeset 负责文本测量与贪心折行：把一段文本按容器宽度拆成可渲染的行。
package typeset

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/bright/style"
)

// Measurer 返回文本按给定字体渲染后的像素宽度。
// 折行判定必须使用与最终渲染一致的字体，否则断行位置会与实际字形不符。
type Measurer interface {
	Width(text string, font style.Font) float64
}

// FontMeasurer 基于 github.com/tdewolff/canvas 的字体面实现测量，
// 字体族按 family|weight 缓存，首次使用时从宿主系统解析。
// 当 CSS 字体族逐一解析失败时退回粗略估算，保证无字体环境下流程不中断。
type FontMeasurer struct {
	mu       sync.Mutex
	families map[string]*familyEntry
}

type familyEntry struct {
	family *canvas.FontFamily
	style  canvas.FontStyle
}

// NewMeasurer 创建一个空缓存的测量器。
func NewMeasurer() *FontMeasurer {
	return &FontMeasurer{families: map[string]*familyEntry{}}
}

var (
	defaultOnce     sync.Once
	defaultMeasurer *FontMeasurer
)

// Default 返回进程级共享的测量器：首次调用时创建，之后复用，进程结束前不销毁。
func Default() *FontMeasurer {
	defaultOnce.Do(func() {
		defaultMeasurer = NewMeasurer()
	})
	return defaultMeasurer
}

// Width 实现 Measurer。字体面以 px 尺寸创建，TextWidth 的返回值因此也是 px。
func (m *FontMeasurer) Width(text string, f style.Font) float64 {
	if text == "" {
		return 0
	}
	if face := m.Face(f); face != nil {
		return face.TextWidth(text)
	}
	return estimateWidth(text, f.Size)
}

// Face 返回按 f 解析出的字体面；宿主没有任何可用字体时为 nil。
// 字体面以 px 尺寸创建，预览渲染与测量共用。
func (m *FontMeasurer) Face(f style.Font) *canvas.FontFace {
	entry := m.ensureFamily(f)
	if entry == nil || entry.family == nil {
		return nil
	}
	size := f.Size
	if size <= 0 {
		size = style.DefaultFontSize
	}
	return entry.family.Face(size, canvas.Black, entry.style, canvas.FontNormal)
}

// ensureFamily 解析 CSS 字体族列表，返回第一个宿主可用的字体族；全部失败时
// 缓存一个空条目，避免重复探测。
func (m *FontMeasurer) ensureFamily(f style.Font) *familyEntry {
	key := familyCacheKey(f)
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry, ok := m.families[key]; ok {
		return entry
	}

	fontStyle := parseFontWeight(f.Weight)
	for _, name := range familyCandidates(f.Family) {
		family := canvas.NewFontFamily(name)
		if err := family.LoadSystemFont(name, fontStyle); err != nil {
			continue
		}
		entry := &familyEntry{family: family, style: fontStyle}
		m.families[key] = entry
		return entry
	}

	entry := &familyEntry{}
	m.families[key] = entry
	return entry
}

// familyCandidates 拆分 "A, 'B C', sans-serif" 形式的字体族列表并去除引号。
// CSS 泛型族名不对应具体系统字体，跳过。
func familyCandidates(list string) []string {
	var out []string
	for _, part := range strings.Split(list, ",") {
		name := strings.Trim(strings.TrimSpace(part), `"'`)
		if name == "" {
			continue
		}
		switch strings.ToLower(name) {
		case "serif", "sans-serif", "monospace", "cursive", "fantasy", "system-ui":
			continue
		}
		out = append(out, name)
	}
	return out
}

// parseFontWeight 把 CSS font-weight（数字或关键字）映射为 canvas.FontStyle。
func parseFontWeight(weight string) canvas.FontStyle {
	w := strings.ToLower(strings.TrimSpace(weight))
	switch w {
	case "", "normal", "400":
		return canvas.FontRegular
	case "bold", "700":
		return canvas.FontBold
	case "100":
		return canvas.FontThin
	case "200":
		return canvas.FontExtraLight
	case "300", "lighter", "light":
		return canvas.FontLight
	case "500", "medium":
		return canvas.FontMedium
	case "600", "semibold":
		return canvas.FontSemiBold
	case "800":
		return canvas.FontExtraBold
	case "900", "bolder", "black":
		return canvas.FontBlack
	}
	return canvas.FontRegular
}

func familyCacheKey(f style.Font) string {
	return f.Family + "|" + f.Weight
}

// estimateWidth 在没有可用字体面时粗略估算文本宽度（px）。
func estimateWidth(text string, fontSize float64) float64 {
	if fontSize <= 0 {
		fontSize = style.DefaultFontSize
	}
	return fontSize * 0.55 * float64(utf8.RuneCountInString(text))
}
