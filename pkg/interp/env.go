package interp

import (
	"os"
	"strings"
)

// EnvStore 生成当前环境变量的存储快照。
//
// 快照与进程环境相互独立，修改其中任何一方都不影响另一方。
func EnvStore() *Store {
	s := NewStore()
	for _, env := range os.Environ() {
		name, value, ok := strings.Cut(env, "=")
		if ok && name != "" {
			s.values[name] = value
		}
	}

	return s
}

// ExpandEnv 使用环境变量展开 text。
//
//	out, err := interp.ExpandEnv(`model: "${LLM_MODEL:gpt-4}"`)
func ExpandEnv(text string, opts ...Option) (string, error) {
	return WithStore(EnvStore(), opts...).Parse(text)
}
