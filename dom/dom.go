// Package dom 提供对 golang.org/x/net/html 文档节点的少量访问助手：
// 按 id 查找元素、读写属性与文本内容、合并内联样式。
package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// FindByID 深度优先查找 id 属性等于 id 的元素节点，未找到时返回 nil。
func FindByID(root *html.Node, id string) *html.Node {
	if root == nil || id == "" {
		return nil
	}
	if root.Type == html.ElementNode && Attr(root, "id") == id {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := FindByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// Walk 对 root 及其全部后代元素节点调用 fn。
func Walk(root *html.Node, fn func(*html.Node)) {
	if root == nil {
		return
	}
	if root.Type == html.ElementNode {
		fn(root)
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		Walk(c, fn)
	}
}

// Attr 返回元素的属性值，不存在时为空串。
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// SetAttr 设置或覆盖元素属性。
func SetAttr(n *html.Node, key, val string) {
	if n == nil {
		return
	}
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// TextContent 拼接元素后代的全部文本节点内容。
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return b.String()
}

// SetTextContent 用单个文本节点替换元素的全部子节点。
func SetTextContent(n *html.Node, text string) {
	if n == nil {
		return
	}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// MergeStyle 把若干 属性名/值 对合并进元素的 style 属性：
// 同名声明被覆盖，其余声明与顺序保持不变。props 按 [name, value, ...] 成对给出。
func MergeStyle(n *html.Node, props ...string) {
	if n == nil || len(props) < 2 {
		return
	}

	type decl struct{ name, value string }
	var decls []decl
	index := map[string]int{}
	for _, part := range strings.Split(Attr(n, "style"), ";") {
		colon := strings.Index(part, ":")
		if colon < 0 {
			continue
		}
		name := strings.TrimSpace(part[:colon])
		value := strings.TrimSpace(part[colon+1:])
		if name == "" {
			continue
		}
		if at, ok := index[name]; ok {
			decls[at].value = value
			continue
		}
		index[name] = len(decls)
		decls = append(decls, decl{name: name, value: value})
	}

	for i := 0; i+1 < len(props); i += 2 {
		name, value := props[i], props[i+1]
		if at, ok := index[name]; ok {
			decls[at].value = value
			continue
		}
		index[name] = len(decls)
		decls = append(decls, decl{name: name, value: value})
	}

	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.name+": "+d.value)
	}
	SetAttr(n, "style", strings.Join(parts, "; "))
}
