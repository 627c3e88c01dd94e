// Package applier 串联整个遮罩流程：定位目标元素、确定源文本、折行、
// 合成 SVG 遮罩并写回元素样式。
package applier

import (
	"fmt"
	"log"
	"strings"

	"golang.org/x/net/html"

	"github.com/ByLCY/bright/binding"
	"github.com/ByLCY/bright/dom"
	"github.com/ByLCY/bright/mask"
	"github.com/ByLCY/bright/style"
	"github.com/ByLCY/bright/typeset"
)

// 默认的容器与内容元素 id，以及承载源文本的 data 属性。
const (
	DefaultContainerID = "bright-container"
	DefaultContentID   = "bright-content"
	TextAttr           = "data-bright-text"
)

// Options 配置一次 Apply 调用。零值表示全部取默认。
type Options struct {
	ContainerID string           // 容器元素 id，默认 bright-container
	ContentID   string           // 内容元素 id，默认 bright-content
	Text        string           // 显式文本：按换行或竖线拆分成行，跳过折行
	TextLines   []string         // 显式行列表：调用方保证每行已适配宽度
	Data        any              // ${path} 插值数据，可为空
	Fill        string           // 遮罩填充色，默认 #fff
	Measurer    typeset.Measurer // 测量后端，默认进程级共享实例
}

// Result 保存一次渲染的产物，供调试输出与预览使用。Apply 空转时为 nil。
type Result struct {
	Lines   []string      `json:"lines"`
	Metrics style.Metrics `json:"metrics"`
	Mask    mask.Image    `json:"mask"`
	Wrapped bool          `json:"wrapped"` // 是否经过折行（显式行列表时为 false）
	Target  *html.Node    `json:"-"`
}

// Apply 对文档执行一遍完整的遮罩渲染。
// 失败路径（元素缺失、无可用文本）只记录警告并原样返回 nil，不产生任何副作用；
// 重复调用是幂等的：每次都从当前文档状态重新计算并覆盖旧遮罩。
func Apply(doc *html.Node, opts Options) *Result {
	containerID := opts.ContainerID
	if containerID == "" {
		containerID = DefaultContainerID
	}
	contentID := opts.ContentID
	if contentID == "" {
		contentID = DefaultContentID
	}

	container := dom.FindByID(doc, containerID)
	if container == nil {
		log.Printf("bright: 找不到容器元素 #%s，跳过渲染", containerID)
		return nil
	}
	content := dom.FindByID(doc, contentID)
	if content == nil {
		log.Printf("bright: 找不到内容元素 #%s，跳过渲染", contentID)
		return nil
	}

	measurer := opts.Measurer
	if measurer == nil {
		measurer = typeset.Default()
	}

	lines, explicit := explicitLines(opts)
	wrapped := false
	if !explicit {
		text := sourceText(container, content)
		text = strings.TrimSpace(binding.Interpolate(text, opts.Data))
		if text == "" {
			log.Printf("bright: #%s 没有可用的源文本，跳过渲染", contentID)
			return nil
		}
		metrics := metricsFor(content)
		lines = typeset.Wrap(text, metrics, measurer)
		wrapped = true
	}

	// 可见文本与遮罩必须一致
	dom.SetTextContent(content, strings.Join(lines, "\n"))

	// 文本写回后重新取度量；高度未显式指定时默认 行高×(行数+1)
	metrics := metricsFor(content)
	if metrics.Height <= 0 {
		metrics.Height = metrics.LineHeight * float64(len(lines)+1)
	}
	img := mask.BuildFilled(lines, metrics, opts.Fill)
	applyMaskStyle(content, img)

	return &Result{
		Lines:   lines,
		Metrics: metrics,
		Mask:    img,
		Wrapped: wrapped,
		Target:  content,
	}
}

// explicitLines 归一化显式输入：按换行或竖线拆分、逐行修剪并去掉空行。
func explicitLines(opts Options) ([]string, bool) {
	raw := opts.TextLines
	if opts.Text != "" {
		raw = append([]string{opts.Text}, raw...)
	}
	if len(raw) == 0 {
		return nil, false
	}
	var lines []string
	for _, entry := range raw {
		entry = strings.ReplaceAll(entry, "|", "\n")
		for _, line := range strings.Split(entry, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				lines = append(lines, line)
			}
		}
	}
	return lines, len(lines) > 0
}

// sourceText 按优先级取源文本：内容元素 data 属性 → 容器 data 属性 → 元素自身文本。
func sourceText(container, content *html.Node) string {
	if v := dom.Attr(content, TextAttr); strings.TrimSpace(v) != "" {
		return v
	}
	if v := dom.Attr(container, TextAttr); strings.TrimSpace(v) != "" {
		return v
	}
	return dom.TextContent(content)
}

// metricsFor 从内容元素的内联样式与尺寸属性解析度量。
func metricsFor(content *html.Node) style.Metrics {
	return style.Compute(style.Source{
		Style:  dom.Attr(content, "style"),
		Width:  dom.Attr(content, "width"),
		Height: dom.Attr(content, "height"),
	})
}

// applyMaskStyle 把遮罩图写入元素样式：标准属性与 -webkit- 前缀各写一份，
// 不平铺、居中、按图片像素尺寸显式设定大小。
func applyMaskStyle(content *html.Node, img mask.Image) {
	url := `url("` + img.DataURL + `")`
	size := fmt.Sprintf("%gpx %gpx", img.Width, img.Height)
	dom.MergeStyle(content,
		"mask-image", url,
		"-webkit-mask-image", url,
		"mask-repeat", "no-repeat",
		"-webkit-mask-repeat", "no-repeat",
		"mask-position", "center",
		"-webkit-mask-position", "center",
		"mask-size", size,
		"-webkit-mask-size", size,
	)
}
