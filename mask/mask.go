// Package mask 把排好的文本行合成为一张内联 SVG，并编码为可直接用作
// CSS 遮罩的 data URL。
package mask

import (
	"fmt"
	"strings"

	"github.com/ByLCY/bright/style"
)

// Image 是合成出的遮罩图：DataURL 为自包含的 data:image/svg+xml 资源，
// Width/Height 供调用方设置 mask-size 使用（px）。每次渲染重新生成，不持久化。
type Image struct {
	DataURL string  `json:"dataUrl"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// DefaultFill 是遮罩文本的默认填充色。遮罩只取不透明度，纯白即可。
const DefaultFill = "#fff"

// Build 生成把 lines 居中排布的 SVG 遮罩图。
//   - 高度：显式 metrics.Height 优先；否则取行数×行高（至少一个行高）；
//   - 首行基线 startY 垂直居中整块文本，但不高于 0.6 倍行高，避免单行场景裁切；
//   - 零行输入仍产出一张一个行高的合法图片。
func Build(lines []string, metrics style.Metrics) Image {
	return BuildFilled(lines, metrics, DefaultFill)
}

// BuildFilled 同 Build，但允许指定填充色。
func BuildFilled(lines []string, metrics style.Metrics, fill string) Image {
	width := metrics.Width
	if width < 1 {
		width = 1
	}
	lineHeight := metrics.LineHeight
	if lineHeight <= 0 {
		lineHeight = metrics.Size * 1.4
	}
	n := len(lines)

	height := metrics.Height
	if height <= 0 {
		height = lineHeight * float64(n)
		if height < lineHeight {
			height = lineHeight
		}
	}

	startY := StartY(height, lineHeight, n)
	if fill == "" {
		fill = DefaultFill
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s">`, num(width), num(height))
	// 单条样式规则统一作用于所有文本行
	fmt.Fprintf(&b, `<style>text{font-family:%s;font-size:%spx;font-weight:%s;fill:%s}</style>`,
		metrics.Family, num(metrics.Size), metrics.Weight, fill)
	for i, line := range lines {
		y := startY + float64(i)*lineHeight
		fmt.Fprintf(&b, `<text x="%s" y="%s" text-anchor="middle">%s</text>`,
			num(width/2), num(y), escapeText(line))
	}
	b.WriteString(`</svg>`)

	return Image{
		DataURL: "data:image/svg+xml," + percentEncode(b.String()),
		Width:   width,
		Height:  height,
	}
}

// StartY 计算首行基线的纵坐标：让整块文本在 height 内垂直居中，
// 但不高于 0.6 倍行高，避免单行与边界场景下首行被裁掉。
func StartY(height, lineHeight float64, lines int) float64 {
	startY := (height - lineHeight*float64(lines-1)) / 2
	if floor := lineHeight * 0.6; startY < floor {
		startY = floor
	}
	return startY
}

// escapeText 对写入 SVG 的行内容做实体转义，保证任意文本都不会破坏文档结构。
func escapeText(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#39;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// percentEncode 按 encodeURIComponent 的保留集对 SVG 文档做百分号编码，
// 使其可以安全内嵌进 url(...) 形式的样式值。
func percentEncode(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnescaped(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isUnescaped(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '~', '!', '*', '\'', '(', ')':
		return true
	}
	return false
}

// num 输出紧凑的十进制数字（去掉多余的小数零）。
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
