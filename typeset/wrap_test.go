package typeset

import (
	"strings"
	"testing"

	"github.com/ByLCY/bright/style"
)

// stubMeasurer 以固定的单字符宽度测量文本，使折行结果与宿主字体无关。
type stubMeasurer struct{ advance float64 }

func (s stubMeasurer) Width(text string, _ style.Font) float64 {
	return s.advance * float64(len([]rune(text)))
}

func metricsWithWidth(width float64) style.Metrics {
	return style.Metrics{
		Font:       style.Font{Family: "Test", Size: 16, Weight: "600"},
		LineHeight: 22.4,
		Width:      width,
	}
}

func TestWrapSingleLineWhenTextFits(t *testing.T) {
	m := stubMeasurer{advance: 10}
	lines := Wrap("Hello World", metricsWithWidth(200), m)
	if len(lines) != 1 {
		t.Fatalf("expected single line, got %d: %q", len(lines), lines)
	}
	if lines[0] != "Hello World" {
		t.Fatalf("line mismatch: got=%q want=%q", lines[0], "Hello World")
	}
}

// TestWrapConservesText 验证折行不丢字也不重复字：按空白归一化后与原文一致。
func TestWrapConservesText(t *testing.T) {
	m := stubMeasurer{advance: 10}
	content := "The quick brown fox jumps over the lazy dog"
	lines := Wrap(content, metricsWithWidth(100), m)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping into multiple lines, got %d", len(lines))
	}
	got := strings.Fields(strings.Join(lines, " "))
	want := strings.Fields(content)
	if strings.Join(got, "\x00") != strings.Join(want, "\x00") {
		t.Fatalf("content not conserved:\n got=%q\nwant=%q", got, want)
	}
}

func TestWrapKeepsExplicitBlankLines(t *testing.T) {
	m := stubMeasurer{advance: 10}
	lines := Wrap("foo\n\nbar", metricsWithWidth(500), m)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines including blank, got %d: %q", len(lines), lines)
	}
	if lines[1] != "" {
		t.Fatalf("expected middle line to be blank, got %q", lines[1])
	}
	if lines[0] != "foo" || lines[2] != "bar" {
		t.Fatalf("unexpected lines: %q", lines)
	}
}

// TestWrapSplitsUnspacedRun 验证无空白的长串按字符拆分，且拼接后不变。
func TestWrapSplitsUnspacedRun(t *testing.T) {
	m := stubMeasurer{advance: 10}
	// maxWidth = 50-4 = 46px，每行最多 4 个字符
	lines := Wrap("AAAAAAAAAA", metricsWithWidth(50), m)
	if len(lines) < 2 {
		t.Fatalf("expected multiple lines, got %d: %q", len(lines), lines)
	}
	for i, line := range lines {
		if n := len([]rune(line)); n > 4 {
			t.Fatalf("line %d too long: %q (%d runes)", i, line, n)
		}
	}
	if joined := strings.Join(lines, ""); joined != "AAAAAAAAAA" {
		t.Fatalf("characters lost or duplicated: %q", joined)
	}
}

// 超宽 token 不做词内拆分：整体作为一个溢出行提交。这是有意的已知限制。
func TestWrapNeverSplitsOverwideToken(t *testing.T) {
	m := stubMeasurer{advance: 10}
	long := "supercalifragilistic"
	lines := Wrap("hi "+long+" yo", metricsWithWidth(80), m)
	found := false
	for _, line := range lines {
		if strings.TrimSpace(line) == long {
			found = true
		}
		if strings.Contains(line, long) && strings.TrimSpace(line) != long {
			t.Fatalf("overwide token should sit on its own line, got %q", line)
		}
	}
	if !found {
		t.Fatalf("overwide token was split across lines: %q", lines)
	}
}

// 容器宽度过小时，最小可用宽度固定为 1px，折行仍须正常终止。
func TestWrapMinimumWidthFloor(t *testing.T) {
	m := stubMeasurer{advance: 10}
	lines := Wrap("ab cd", metricsWithWidth(0), m)
	if len(lines) != 2 {
		t.Fatalf("expected one token per line, got %q", lines)
	}
	if lines[0] != "ab" || lines[1] != "cd" {
		t.Fatalf("unexpected lines: %q", lines)
	}
}

func TestWrapStripsLeadingWhitespaceAtLineStart(t *testing.T) {
	m := stubMeasurer{advance: 10}
	lines := Wrap("  indented start", metricsWithWidth(500), m)
	if len(lines) != 1 {
		t.Fatalf("expected single line, got %q", lines)
	}
	if lines[0] != "indented start" {
		t.Fatalf("leading whitespace should be stripped: %q", lines[0])
	}
}
