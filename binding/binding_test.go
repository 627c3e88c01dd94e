package binding

import "testing"

func data() any {
	return map[string]any{
		"user": map[string]any{
			"name": "Ada",
			"tags": []any{"a", "b"},
		},
		"count": 3,
	}
}

func TestInterpolateNestedPath(t *testing.T) {
	got := Interpolate("Hello ${user.name}!", data())
	if got != "Hello Ada!" {
		t.Fatalf("插值结果不符: %q", got)
	}
}

func TestInterpolateArrayIndex(t *testing.T) {
	got := Interpolate("tag=${user.tags[1]}", data())
	if got != "tag=b" {
		t.Fatalf("数组下标插值失败: %q", got)
	}
}

func TestInterpolateNumbers(t *testing.T) {
	if got := Interpolate("n=${count}", data()); got != "n=3" {
		t.Fatalf("数值插值失败: %q", got)
	}
}

// 路径缺失且无回退时保留原占位符。
func TestInterpolateMissingKeepsPlaceholder(t *testing.T) {
	got := Interpolate("${nope.deep}", data())
	if got != "${nope.deep}" {
		t.Fatalf("缺失路径应保留占位符: %q", got)
	}
}

func TestInterpolateFallback(t *testing.T) {
	if got := Interpolate("${nope|N/A}", data()); got != "N/A" {
		t.Fatalf("回退文本未生效: %q", got)
	}
	// 路径存在时优先取值
	if got := Interpolate("${user.name|N/A}", data()); got != "Ada" {
		t.Fatalf("存在路径不应使用回退: %q", got)
	}
}

func TestInterpolateNilData(t *testing.T) {
	if got := Interpolate("${user.name}", nil); got != "${user.name}" {
		t.Fatalf("空数据应原样返回: %q", got)
	}
}
