package interp

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUndefinedVariable 变量未定义且没有默认值（仅在启用严格模式时返回）。
	ErrUndefinedVariable = errors.New("interp: undefined variable")

	// ErrRecursionLimit 值的递归展开超过最大深度，通常是变量自引用。
	ErrRecursionLimit = errors.New("interp: recursion limit exceeded")

	// ErrOutputLimit 展开结果或占位符解析次数超过 MaxOutput。
	ErrOutputLimit = errors.New("interp: output limit exceeded")

	// ErrUnsupportedMutation 通过只读视图修改存储。
	ErrUnsupportedMutation = errors.New("interp: unsupported mutation of read-only view")
)

// UndefinedVariableError 记录无法解析的变量名。
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("interp: cannot resolve variable %q", e.Name)
}

func (e *UndefinedVariableError) Unwrap() error {
	return ErrUndefinedVariable
}

// RecursionLimitError 记录超限时的展开链。
type RecursionLimitError struct {
	Limit int
	Chain []string
}

func (e *RecursionLimitError) Error() string {
	return fmt.Sprintf("interp: recursion limit %d exceeded: %s", e.Limit, strings.Join(e.Chain, " -> "))
}

func (e *RecursionLimitError) Unwrap() error {
	return ErrRecursionLimit
}

// OutputLimitError 记录超限时的上限。
type OutputLimitError struct {
	Limit int
}

func (e *OutputLimitError) Error() string {
	return fmt.Sprintf("interp: output limit %d exceeded", e.Limit)
}

func (e *OutputLimitError) Unwrap() error {
	return ErrOutputLimit
}

func mutationError(op, key string) error {
	if key == "" {
		return fmt.Errorf("%w: %s", ErrUnsupportedMutation, op)
	}

	return fmt.Errorf("%w: %s %q", ErrUnsupportedMutation, op, key)
}
