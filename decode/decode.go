// Package decode 在文档加载阶段把混淆（base64）的文本片段还原进对应元素。
// 它只是查表赋值的胶水层：解码失败或元素缺失仅记录警告并跳过。
package decode

import (
	"encoding/base64"
	"log"

	"golang.org/x/net/html"

	"github.com/ByLCY/bright/dom"
)

// EncAttr 是携带混淆文本的元素属性名。
const EncAttr = "data-bright-enc"

// Apply 按 id→base64 的映射逐个解码并写入元素文本。
// 任何一条失败都不影响其余条目。
func Apply(doc *html.Node, fragments map[string]string) {
	for id, enc := range fragments {
		node := dom.FindByID(doc, id)
		if node == nil {
			log.Printf("bright/decode: 找不到元素 #%s，跳过", id)
			continue
		}
		text, ok := decodeFragment(enc)
		if !ok {
			log.Printf("bright/decode: 元素 #%s 的片段不是合法 base64，跳过", id)
			continue
		}
		dom.SetTextContent(node, text)
	}
}

// ApplyAttributes 扫描文档中携带 data-bright-enc 属性的元素，
// 把解码结果写为该元素自身的文本。
func ApplyAttributes(doc *html.Node) {
	dom.Walk(doc, func(n *html.Node) {
		enc := dom.Attr(n, EncAttr)
		if enc == "" {
			return
		}
		text, ok := decodeFragment(enc)
		if !ok {
			log.Printf("bright/decode: 属性 %s 不是合法 base64，跳过", EncAttr)
			return
		}
		dom.SetTextContent(n, text)
	})
}

// decodeFragment 依次尝试标准与无填充两种字母表。
func decodeFragment(enc string) (string, bool) {
	if data, err := base64.StdEncoding.DecodeString(enc); err == nil {
		return string(data), true
	}
	if data, err := base64.RawStdEncoding.DecodeString(enc); err == nil {
		return string(data), true
	}
	return "", false
}
