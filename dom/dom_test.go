package dom

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func parseDoc(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("解析 HTML 失败: %v", err)
	}
	return doc
}

func TestFindByID(t *testing.T) {
	doc := parseDoc(t, `<div id="outer"><p id="inner">hi</p></div>`)
	if n := FindByID(doc, "inner"); n == nil || n.Data != "p" {
		t.Fatalf("未找到 #inner: %+v", n)
	}
	if n := FindByID(doc, "missing"); n != nil {
		t.Fatalf("不存在的 id 应返回 nil")
	}
	if n := FindByID(doc, ""); n != nil {
		t.Fatalf("空 id 应返回 nil")
	}
}

func TestTextContentCollectsDescendants(t *testing.T) {
	doc := parseDoc(t, `<div id="x">aa<span>bb</span>cc</div>`)
	n := FindByID(doc, "x")
	if got := TextContent(n); got != "aabbcc" {
		t.Fatalf("TextContent: got %q", got)
	}
}

func TestSetTextContentReplacesChildren(t *testing.T) {
	doc := parseDoc(t, `<div id="x">aa<span>bb</span></div>`)
	n := FindByID(doc, "x")
	SetTextContent(n, "line one\nline two")
	if got := TextContent(n); got != "line one\nline two" {
		t.Fatalf("文本未整体替换: %q", got)
	}
	if n.FirstChild == nil || n.FirstChild.NextSibling != nil {
		t.Fatalf("应只剩一个文本子节点")
	}
}

func TestSetAttrOverwrites(t *testing.T) {
	doc := parseDoc(t, `<div id="x" class="a"></div>`)
	n := FindByID(doc, "x")
	SetAttr(n, "class", "b")
	SetAttr(n, "data-extra", "1")
	if Attr(n, "class") != "b" || Attr(n, "data-extra") != "1" {
		t.Fatalf("属性写入失败: %+v", n.Attr)
	}
}

// MergeStyle：同名声明覆盖，其余声明与顺序保持不变。
func TestMergeStylePreservesExisting(t *testing.T) {
	doc := parseDoc(t, `<div id="x" style="font-size: 24px; color: red"></div>`)
	n := FindByID(doc, "x")
	MergeStyle(n, "mask-position", "center", "color", "blue")
	got := Attr(n, "style")
	want := "font-size: 24px; color: blue; mask-position: center"
	if got != want {
		t.Fatalf("样式合并结果不符:\n got=%q\nwant=%q", got, want)
	}
}

func TestMergeStyleIdempotent(t *testing.T) {
	doc := parseDoc(t, `<div id="x"></div>`)
	n := FindByID(doc, "x")
	MergeStyle(n, "mask-size", "100px 30px")
	MergeStyle(n, "mask-size", "100px 30px")
	if got := Attr(n, "style"); got != "mask-size: 100px 30px" {
		t.Fatalf("重复合并应幂等: %q", got)
	}
}

func TestWalkVisitsAllElements(t *testing.T) {
	doc := parseDoc(t, `<div><p></p><span></span></div>`)
	var tags []string
	Walk(doc, func(n *html.Node) { tags = append(tags, n.Data) })
	joined := strings.Join(tags, ",")
	for _, want := range []string{"div", "p", "span"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("Walk 未访问 %s: %q", want, joined)
		}
	}
}
