// Package benchmark 定义基准测试单元的三阶段约定：Init（准备数据）、Execute（被测量的操作）、
// Finalize（校验并释放数据）。
//
// go test -bench 负责计时；这里只负责把生命周期显式化，让测试和自检程序都能直接驱动同一个单元，
// 而不依赖某个具体的基准测试框架。
package benchmark

import (
	"errors"
	"fmt"
)

// ErrInvalidInvocations 调用次数为负数
var ErrInvalidInvocations = errors.New("benchmark: invocations must not be negative")

// Unit 一个自包含的基准测试单元
type Unit interface {
	// Name 单元名称，出现在校验错误里
	Name() string
	// Init 分配并填充数据集，只调用一次
	Init()
	// Execute 被测量的操作，返回一个标量结果，防止编译器把循环优化掉
	Execute() int
	// Finalize 校验对账不变量并释放数据集
	Finalize() error
}

// Phase 单元所处的阶段
type Phase int

const (
	// PhaseNotRun 已初始化但还没有执行过 Execute
	PhaseNotRun Phase = iota
	// PhaseRan 至少执行过一次 Execute
	PhaseRan
)

func (p Phase) String() string {
	switch p {
	case PhaseNotRun:
		return "not-run"
	case PhaseRan:
		return "ran"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Run 依次执行 Init、invocations 次 Execute 和 Finalize，返回最后一次 Execute 的结果。
// invocations 为 0 时单元停留在 PhaseNotRun，Finalize 按"尚未运行"的规则校验。
func Run(u Unit, invocations int) (int, error) {
	if invocations < 0 {
		return 0, ErrInvalidInvocations
	}
	u.Init()
	var last int
	for i := 0; i < invocations; i++ {
		last = u.Execute()
	}
	if err := u.Finalize(); err != nil {
		return last, fmt.Errorf("run %s: %w", u.Name(), err)
	}
	return last, nil
}
