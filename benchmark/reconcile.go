package benchmark

import (
	"errors"
	"fmt"
)

// ErrNotReconciled 各分类计数之和与数据集大小对不上
var ErrNotReconciled = errors.New("benchmark: tallies do not reconcile")

// ReconcileError 对账失败的详细信息，errors.Is(err, ErrNotReconciled) 为 true
type ReconcileError struct {
	Unit  string
	Phase Phase
	Want  int
	Got   int
}

func (e *ReconcileError) Error() string {
	return fmt.Sprintf("%s (%s): expected %d got %d", e.Unit, e.Phase, e.Want, e.Got)
}

func (e *ReconcileError) Is(target error) bool {
	return target == ErrNotReconciled
}

// Reconcile 严格对账：got 必须等于 want
func Reconcile(unit string, want, got int) error {
	if got != want {
		return &ReconcileError{Unit: unit, Phase: PhaseRan, Want: want, Got: got}
	}
	return nil
}

// ReconcilePhase 按阶段对账。
//
//   - PhaseNotRun：还没有执行过，合计只能是 0
//   - PhaseRan：已经执行过，合计必须等于 want；此时 0 不再被当作"还没跑"而放过
func ReconcilePhase(unit string, phase Phase, want, got int) error {
	if phase == PhaseNotRun {
		if got != 0 {
			return &ReconcileError{Unit: unit, Phase: phase, Want: 0, Got: got}
		}
		return nil
	}
	if got != want {
		return &ReconcileError{Unit: unit, Phase: phase, Want: want, Got: got}
	}
	return nil
}
