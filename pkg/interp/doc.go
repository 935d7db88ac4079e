// Package interp 提供基于占位符的字符串插值。
//
// 给定包含 ${name} 占位符的文本与一个可变的 key→value 存储 ([Store])，
// [Parse] 将可解析的占位符替换为值的文本形式；未定义、被转义或格式不完整的
// 占位符按固定规则原样保留。不执行表达式、不做类型转换，只做文本替换。
//
// # 语法
//
// 默认前缀 "${"、后缀 "}"、转义字符 '$'、默认值分隔符 ":"，均可配置：
//
//	<prefix><name>[<delimiter><default>]<suffix>
//
//   - ${NAME}      - 变量替换
//   - ${age:20}    - 未定义时使用默认值 "20"
//   - ${age::20}   - 仅按第一个分隔符切分，默认值为 ":20"
//   - $${NAME}     - 转义，输出 "${NAME}"
//   - ${NAME       - 缺少后缀，从该前缀起的余下文本原样输出
//
// # 语义说明
//
//  1. 未定义且无默认值的变量保持原样（[WithUndefinedVariableError] 可改为报错）
//  2. 一个转义字符只作用于紧随其后的一个前缀，扫描从该前缀之后继续
//  3. [WithSubstitutionInVariables] 允许变量名中嵌套占位符，如 ${${KIND}_URL}
//  4. [WithSubstitutionInValues] 会继续展开值中的占位符，深度受 [WithMaxDepth] 限制
//  5. 值为 nil 的 key 视为未定义
//  6. [WithMaxOutput] 限制单次解析的输出大小与占位符解析次数，防止非循环引用的指数膨胀
//
// # 快速开始
//
//	ip := interp.Of(map[string]any{"NAME": "zs", "ID": 123456})
//	out, err := ip.Parse("${NAME}==${ID}") // "zs==123456"
//
// 存储支持链式修改，[Store.Snapshot] 返回只读的实时视图：
//
//	ip.Add(map[string]any{"age": 20}).Delete("ID")
//	view := ip.Values()
//	err := view.Put("x", 1) // ErrUnsupportedMutation
//
// # 并发
//
// [Store] 不加锁，同一个存储上的并发 Parse 与修改属于数据竞争。
// 多个 goroutine 使用时，每个 goroutine 持有自己的存储（见 [Store.Clone]）。
package interp
