package typeset

import (
	"strings"
	"unicode"

	"github.com/ByLCY/bright/style"
)

// 容器宽度减去的安全边距（px），避免折行结果与渲染字形在边缘处打架。
const wrapSafetyMargin = 4.0

// Wrap 按贪心策略把 text 折成不超过容器宽度的行。
// 规则：
//   - 先按显式换行切段，空段保留为一个空行；
//   - 含空白的段按 词/空白串 交替分词，不含空白的段按单个字符分词；
//   - 单个 token 超宽时不在 token 内部二次拆分，整体作为一个溢出行提交。
func Wrap(text string, metrics style.Metrics, m Measurer) []string {
	maxWidth := metrics.Width - wrapSafetyMargin
	if maxWidth < 1 {
		maxWidth = 1
	}

	text = strings.ReplaceAll(text, "\r", "")
	var out []string
	for _, segment := range strings.Split(text, "\n") {
		if segment == "" {
			// 显式空行原样保留
			out = append(out, "")
			continue
		}
		out = append(out, wrapSegment(segment, maxWidth, metrics.Font, m)...)
	}
	return out
}

// wrapSegment 对单个不含换行的段执行贪心累积，返回过滤掉退化空行的结果。
func wrapSegment(segment string, maxWidth float64, font style.Font, m Measurer) []string {
	var lines []string
	current := ""

	commit := func() {
		if current != "" {
			lines = append(lines, current)
		}
		current = ""
	}

	for _, token := range tokenize(segment) {
		if current == "" {
			// 行首吞掉空白 token
			token = strings.TrimLeftFunc(token, unicode.IsSpace)
			if token == "" {
				continue
			}
		}
		candidate := current + token
		if m.Width(candidate, font) > maxWidth && strings.TrimSpace(current) != "" {
			commit()
			current = strings.TrimLeftFunc(token, unicode.IsSpace)
			continue
		}
		current = candidate
	}
	commit()
	return lines
}

// tokenize 将段拆分为折行单元：存在空白时按 词/空白串 交替分组，
// 否则（长单词、无空格文字）按字符逐个拆分。
func tokenize(segment string) []string {
	if !strings.ContainsFunc(segment, unicode.IsSpace) {
		runes := []rune(segment)
		tokens := make([]string, 0, len(runes))
		for _, r := range runes {
			tokens = append(tokens, string(r))
		}
		return tokens
	}

	var tokens []string
	var builder strings.Builder
	lastWasSpace := false
	flush := func() {
		if builder.Len() == 0 {
			return
		}
		tokens = append(tokens, builder.String())
		builder.Reset()
	}
	for _, r := range segment {
		isSpace := unicode.IsSpace(r)
		if builder.Len() == 0 {
			lastWasSpace = isSpace
		} else if lastWasSpace != isSpace {
			flush()
			lastWasSpace = isSpace
		}
		builder.WriteRune(r)
	}
	flush()
	return tokens
}
