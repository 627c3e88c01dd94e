package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/net/html"

	"github.com/ByLCY/bright/applier"
	"github.com/ByLCY/bright/decode"
	"github.com/ByLCY/bright/preview"
)

func main() {
	input := flag.String("in", "examples/demo.html", "输入 HTML 文件路径")
	output := flag.String("out", "output/demo.html", "输出 HTML 文件路径")
	container := flag.String("container", "", "容器元素 id（默认 "+applier.DefaultContainerID+"）")
	content := flag.String("content", "", "内容元素 id（默认 "+applier.DefaultContentID+"）")
	text := flag.String("text", "", "显式文本（按换行或 | 分行，跳过折行）")
	dataJSON := flag.String("data", "", "绑定到 ${path} 占位符的 JSON 数据")
	fragmentsJSON := flag.String("fragments", "", "base64 片段映射（JSON：id→编码文本），先于遮罩渲染执行")
	debug := flag.String("debug", "", "渲染调试 JSON 输出路径")
	previewPath := flag.String("preview", "", "排版预览 SVG 输出路径")
	flag.Parse()

	var inputData any
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &inputData); err != nil {
			log.Fatalf("解析 data JSON 失败: %v", err)
		}
	}
	var fragments map[string]string
	if *fragmentsJSON != "" {
		if err := json.Unmarshal([]byte(*fragmentsJSON), &fragments); err != nil {
			log.Fatalf("解析 fragments JSON 失败: %v", err)
		}
	}

	opts := applier.Options{
		ContainerID: *container,
		ContentID:   *content,
		Text:        *text,
		Data:        inputData,
	}
	if err := run(*input, *output, *debug, *previewPath, fragments, opts); err != nil {
		log.Fatalf("生成遮罩文档失败: %v", err)
	}
	fmt.Printf("已生成：%s\n", *output)
}

// run 串联片段解码、遮罩渲染与文档回写。
func run(inputPath, outputPath, debugPath, previewPath string, fragments map[string]string, opts applier.Options) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("无法打开 HTML 文件 %s: %w", inputPath, err)
	}
	doc, err := html.Parse(file)
	file.Close()
	if err != nil {
		return fmt.Errorf("解析 HTML 失败: %w", err)
	}

	// 先还原混淆片段，再执行遮罩渲染
	if len(fragments) > 0 {
		decode.Apply(doc, fragments)
	}
	decode.ApplyAttributes(doc)

	result := applier.Apply(doc, opts)

	if debugPath != "" && result != nil {
		if err := writeDebug(result, debugPath); err != nil {
			return err
		}
	}
	if previewPath != "" && result != nil {
		svgBytes, err := preview.Render(result)
		if err != nil {
			return fmt.Errorf("生成预览失败: %w", err)
		}
		if err := writeFile(previewPath, svgBytes); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return fmt.Errorf("序列化 HTML 失败: %w", err)
	}
	return writeFile(outputPath, buf.Bytes())
}

func writeDebug(result *applier.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := applier.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("写入文件 %s 失败: %w", path, err)
	}
	return nil
}
