package interp_test

import (
	"errors"
	"fmt"

	"github.com/lwmacct/251208-go-pkg-interp/pkg/interp"
)

// Example_parse 演示基本替换、默认值与转义。
func Example_parse() {
	ip := interp.Of(map[string]any{"NAME": "zs", "ID": 123456})

	out, _ := ip.Parse("${NAME}==${ID}==${age:20}==$${ID}==${missing}")
	fmt.Println(out)

	// Output:
	// zs==123456==20==${ID}==${missing}
}

// Example_mutation 演示存储修改立即生效，快照保持只读。
func Example_mutation() {
	ip := interp.New()
	view := ip.Values()

	ip.Add(map[string]any{"age": 20})
	fmt.Println(ip.MustParse("age=${age}"), view.Len())

	ip.Delete("age")
	fmt.Println(ip.MustParse("age=${age}"), view.Len())

	err := view.Put("age", 30)
	fmt.Println(errors.Is(err, interp.ErrUnsupportedMutation))

	// Output:
	// age=20 1
	// age=${age} 0
	// true
}

// Example_nested 演示变量名与值中的嵌套展开。
func Example_nested() {
	ip := interp.Of(map[string]any{
		"ENV":      "prod",
		"prod_URL": "https://${HOST}",
		"HOST":     "example.com",
	},
		interp.WithSubstitutionInVariables(true),
		interp.WithSubstitutionInValues(true),
	)

	fmt.Println(ip.MustParse("${${ENV}_URL}"))

	// Output:
	// https://example.com
}
