package comparatorstyle

// 两种语义等价的比较函数对排序性能的影响
//
// CompareByBranches 返回 -1/0/1，需要两次比较；
// CompareBySubtraction 直接返回 x-y，没有分支，但只在不会溢出时才正确：
// x、y 都落在 [SubtractionSafeMin, SubtractionSafeMax] 内时 x-y 不会溢出。
// 超出这个范围时，例如 math.MinInt - 1 会回绕成正数，排序结果就错了。

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"idiom-bench/benchmark"
)

const (
	SubtractionSafeMin = math.MinInt / 2
	SubtractionSafeMax = math.MaxInt / 2
)

// DefaultSize 序列长度
const DefaultSize = 2_000

var ErrNotSorted = errors.New("comparatorstyle: sequence is not sorted")

func CompareByBranches(x, y int) int {
	if x < y {
		return -1
	}
	if x == y {
		return 0
	}
	return 1
}

// CompareBySubtraction 仅当 SubtractionSafe 成立时可用
func CompareBySubtraction(x, y int) int {
	return x - y
}

// CompareStd 标准库 cmp.Compare，作为基线
func CompareStd(x, y int) int {
	return cmp.Compare(x, y)
}

// SubtractionSafe 序列中所有值两两相减都不会溢出
func SubtractionSafe(s []int) bool {
	for _, v := range s {
		if v < SubtractionSafeMin || v > SubtractionSafeMax {
			return false
		}
	}
	return true
}

// Comparator 具名的比较函数
type Comparator struct {
	Name    string
	Compare func(x, y int) int
}

var Comparators = []Comparator{
	{Name: "branches", Compare: CompareByBranches},
	{Name: "subtraction", Compare: CompareBySubtraction},
	{Name: "std", Compare: CompareStd},
}

// Shuffled 0..size-1 打乱顺序
func Shuffled(rng *rand.Rand, size int) []int {
	s := make([]int, size)
	for i := range s {
		s[i] = i
	}
	rng.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
	return s
}

func Sum(s []int) int {
	sum := 0
	for _, v := range s {
		sum += v
	}
	return sum
}

// Sequence 排序基准单元。序列在多次 Execute 之间保留，第一次排序之后就已经有序，
// 后续测到的其实是对有序序列的排序
type Sequence struct {
	Comparator Comparator
	Size       int

	rng   *rand.Rand
	list  []int
	sum   int
	phase benchmark.Phase
}

var _ benchmark.Unit = (*Sequence)(nil)

func NewSequence(c Comparator) *Sequence {
	return &Sequence{Comparator: c, Size: DefaultSize}
}

// WithRand 使用指定的随机数源打乱序列
func (s *Sequence) WithRand(rng *rand.Rand) *Sequence {
	s.rng = rng
	return s
}

func (s *Sequence) Name() string { return "comparator-style/" + s.Comparator.Name }

func (s *Sequence) Init() {
	rng := s.rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s.list = Shuffled(rng, s.Size)
	s.sum = Sum(s.list)
	s.phase = benchmark.PhaseNotRun
}

// List 当前序列，只读
func (s *Sequence) List() []int { return s.list }

// Execute 原地排序后求和
func (s *Sequence) Execute() int {
	s.phase = benchmark.PhaseRan
	return SortThenSum(s.list, s.Comparator.Compare)
}

// Finalize 元素之和必须与打乱时一致；排序过的序列还必须有序
func (s *Sequence) Finalize() error {
	if s.phase == benchmark.PhaseRan && !slices.IsSortedFunc(s.list, CompareByBranches) {
		return fmt.Errorf("%s: %w", s.Name(), ErrNotSorted)
	}
	return benchmark.Reconcile(s.Name(), s.sum, Sum(s.list))
}

// SortThenSum 原地排序并返回元素之和
func SortThenSum(s []int, compare func(x, y int) int) int {
	slices.SortFunc(s, compare)
	return Sum(s)
}
