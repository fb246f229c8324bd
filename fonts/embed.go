// Package fonts 提供内置字体，渲染器通过 "embed:<name>" 引用。
package fonts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsans10regular"
)

var builtin = map[string][]byte{
	"sans-regular": lmsans10regular.TTF,
	"sans-bold":    lmsans10bold.TTF,
}

// Load 返回内置字体的字节数据，path 可写为 "embed:sans-regular" 或直接 "sans-regular"。
func Load(path string) ([]byte, error) {
	name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(path, "embed:")))
	data, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("内置字体 %s 不存在（可用：%s）", name, strings.Join(Names(), ", "))
	}
	return data, nil
}

// Names 返回全部内置字体名称。
func Names() []string {
	out := make([]string, 0, len(builtin))
	for name := range builtin {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
