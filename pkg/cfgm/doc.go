// Package cfgm 提供分层配置加载。
//
// 支持 YAML/JSON，按默认值、配置文件、环境变量与 CLI flags 逐层覆盖。
// 配置 key 使用 json tag 描述，YAML 与 JSON 共享同一套 key。
//
// # 加载优先级 (从低到高)
//
//  1. 默认值 - 通过 defaultConfig 参数传入
//  2. 配置文件 - 通过 [WithConfigPaths] 或 [WithAppName] 设置
//  3. 环境变量(前缀) - 通过 [WithEnvPrefix] 自动生成绑定
//  4. CLI flags - 通过 [WithCommand] 设置，仅用户显式指定的 flag 生效
//
// # 快速开始
//
//	type Config struct {
//	    Name    string        `json:"name"`
//	    Timeout time.Duration `json:"timeout"`
//	}
//
//	cfg, err := cfgm.LoadCmd(cmd, Config{Name: "app"}, "myapp",
//	    cfgm.WithEnvPrefix("MYAPP_"),
//	)
//
// # 模板展开
//
// 默认值与配置文件合并后，所有字符串叶子节点使用 [interp] 按环境变量展开：
//
//	# config.yaml
//	api_key: "${OPENAI_API_KEY}"
//	base_url: "${PROD_URL:${DEV_URL:http://localhost:8080}}"
//
// 默认启用变量名与值中的嵌套展开。使用 [WithTemplateOptions] 调整语法，
// 使用 [WithoutTemplateExpansion] 保留原始字符串。
//
// # 环境变量与 CLI Flag 映射
//
// 前缀 "MYAPP_"：server.idle-timeout → MYAPP_SERVER_IDLE_TIMEOUT。
// CLI flag 仅替换 "." 为 "-"：server.idle-timeout → --server-idle-timeout。
package cfgm
