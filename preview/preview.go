// Package preview 把一次渲染结果用真实字形画成独立 SVG，供人工核对
// 折行与居中效果。与遮罩不同，预览必须有宿主字体才有意义。
package preview

import (
	"bytes"
	"fmt"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/ByLCY/bright/applier"
	"github.com/ByLCY/bright/mask"
	"github.com/ByLCY/bright/typeset"
)

// Render 将 res 的行按遮罩同样的几何规则绘制为 SVG 字节流。
func Render(res *applier.Result) ([]byte, error) {
	if res == nil {
		return nil, fmt.Errorf("没有可渲染的结果")
	}
	face := typeset.Default().Face(res.Metrics.Font)
	if face == nil {
		return nil, fmt.Errorf("宿主没有可用字体，无法生成预览（字体族：%s）", res.Metrics.Family)
	}

	width := res.Mask.Width
	height := res.Mask.Height
	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 与遮罩一致，以左上角为原点

	lineHeight := res.Metrics.LineHeight
	startY := mask.StartY(height, lineHeight, len(res.Lines))
	for i, line := range res.Lines {
		if line == "" {
			continue
		}
		textLine := canvas.NewTextLine(face, line, canvas.Center)
		baseline := startY + float64(i)*lineHeight
		ctx.DrawText(width/2, baseline, textLine)
	}

	var buf bytes.Buffer
	writer := svg.New(&buf, width, height, nil)
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入预览 SVG 失败: %w", err)
	}
	return buf.Bytes(), nil
}
