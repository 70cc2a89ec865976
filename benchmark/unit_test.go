package benchmark

import (
	"errors"
	"testing"
)

// tallyUnit 每次 Execute 计数加一，Finalize 时和调用次数对账
type tallyUnit struct {
	phase Phase
	calls int
	count int

	// leak 为 true 时每次 Execute 少记一次，模拟丢失更新
	leak bool
}

func (u *tallyUnit) Name() string { return "tally" }

func (u *tallyUnit) Init() {
	u.phase = PhaseNotRun
	u.calls, u.count = 0, 0
}

func (u *tallyUnit) Execute() int {
	u.phase = PhaseRan
	u.calls++
	if !u.leak || u.calls%2 == 0 {
		u.count++
	}
	return u.count
}

func (u *tallyUnit) Finalize() error {
	return ReconcilePhase(u.Name(), u.phase, u.calls, u.count)
}

func TestRun(t *testing.T) {
	tests := []struct {
		name        string
		invocations int
		leak        bool
		wantLast    int
		wantErr     error
	}{
		{name: "not run", invocations: 0, wantLast: 0},
		{name: "single", invocations: 1, wantLast: 1},
		{name: "many", invocations: 1000, wantLast: 1000},
		{name: "lost update", invocations: 10, leak: true, wantLast: 5, wantErr: ErrNotReconciled},
		{name: "negative", invocations: -1, wantErr: ErrInvalidInvocations},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &tallyUnit{leak: tt.leak}
			last, err := Run(u, tt.invocations)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}
			if last != tt.wantLast {
				t.Errorf("Run() last = %d, want %d", last, tt.wantLast)
			}
		})
	}
}

func TestReconcilePhase(t *testing.T) {
	tests := []struct {
		name    string
		phase   Phase
		want    int
		got     int
		wantErr bool
	}{
		{name: "not run and zero", phase: PhaseNotRun, want: 100, got: 0},
		{name: "not run but counted", phase: PhaseNotRun, want: 100, got: 3, wantErr: true},
		{name: "ran and matched", phase: PhaseRan, want: 100, got: 100},
		// 已经跑过却是 0，说明计数丢了，不能当成"还没跑"
		{name: "ran but zero", phase: PhaseRan, want: 100, got: 0, wantErr: true},
		{name: "ran with nothing expected", phase: PhaseRan, want: 0, got: 0},
		{name: "ran and double counted", phase: PhaseRan, want: 100, got: 101, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ReconcilePhase("unit", tt.phase, tt.want, tt.got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReconcilePhase() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, ErrNotReconciled) {
				t.Errorf("error %v should match ErrNotReconciled", err)
			}
			var re *ReconcileError
			if !errors.As(err, &re) {
				t.Fatalf("error %v should be a *ReconcileError", err)
			}
			if re.Got != tt.got || re.Phase != tt.phase {
				t.Errorf("ReconcileError = %+v", re)
			}
		})
	}
}

func TestReconcile(t *testing.T) {
	if err := Reconcile("unit", 7, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := Reconcile("unit", 7, 0)
	if !errors.Is(err, ErrNotReconciled) {
		t.Fatalf("expected ErrNotReconciled, got: %v", err)
	}
	if got, want := err.Error(), "unit (ran): expected 7 got 0"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseNotRun.String() != "not-run" || PhaseRan.String() != "ran" {
		t.Errorf("unexpected phase names: %s %s", PhaseNotRun, PhaseRan)
	}
	if got := Phase(9).String(); got != "Phase(9)" {
		t.Errorf("Phase(9).String() = %q", got)
	}
}
