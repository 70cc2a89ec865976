package nucleotidecount

/*
性能对比：统计一段 DNA 编码里每种碱基出现的次数

四种写法：
  - CountIf: 每种碱基一个 if，数据随机时分支预测失败率高
  - CountBoolToInt: 比较结果转成 0/1 再累加，编译器通常生成 SETcc/CMOV，没有跳转
  - CountSwitch: 一个 switch，编译器可能生成二分比较或跳转表
  - CountTable: 以字节值为下标累加到 [256]int，完全没有比较

运行基准测试：
  go test -bench=. -benchmem .

关键结论：
  - 数据随机时 CountIf 最慢，分支越不可预测差距越大
  - CountTable 最稳定，和数据分布无关
  - 对数据排序后再统计，CountIf 会明显变快（分支变得可预测）
*/

import (
	"math/rand/v2"

	"idiom-bench/benchmark"
)

// Tally 每种碱基的计数
type Tally struct {
	A, C, G, T, N int
}

// Total 五种碱基计数之和，字母表之外的字节不计入
func (t Tally) Total() int {
	return t.A + t.C + t.G + t.T + t.N
}

// GCContent 鸟嘌呤和胞嘧啶占比，n 不参与计算；没有有效碱基时返回 0
func (t Tally) GCContent() float64 {
	acgt := t.A + t.C + t.G + t.T
	if acgt == 0 {
		return 0
	}
	return float64(t.G+t.C) / float64(acgt)
}

// CountIf 每种碱基单独一个 if
func CountIf(dna []byte) Tally {
	var t Tally
	for _, nucleotide := range dna {
		if nucleotide == Adenine {
			t.A++
		}
		if nucleotide == Cytosine {
			t.C++
		}
		if nucleotide == Thymine {
			t.T++
		}
		if nucleotide == Guanine {
			t.G++
		}
		if nucleotide == AnyNucleotide {
			t.N++
		}
	}
	return t
}

// b2i 会被内联，通常编译成 SETcc，不产生跳转
func b2i(b bool) int {
	var i int
	if b {
		i = 1
	}
	return i
}

// CountBoolToInt 比较结果转成 0/1 后累加
func CountBoolToInt(dna []byte) Tally {
	var t Tally
	for _, nucleotide := range dna {
		t.A += b2i(nucleotide == Adenine)
		t.C += b2i(nucleotide == Cytosine)
		t.T += b2i(nucleotide == Thymine)
		t.G += b2i(nucleotide == Guanine)
		t.N += b2i(nucleotide == AnyNucleotide)
	}
	return t
}

// CountSwitch 按编码分派
func CountSwitch(dna []byte) Tally {
	var t Tally
	for _, nucleotide := range dna {
		switch nucleotide {
		case Adenine:
			t.A++
		case Cytosine:
			t.C++
		case Thymine:
			t.T++
		case Guanine:
			t.G++
		case AnyNucleotide:
			t.N++
		}
	}
	return t
}

// CountTable 查表累加。表覆盖整个字节范围，任何字节值都不会越界
func CountTable(dna []byte) Tally {
	var table [256]int
	for _, nucleotide := range dna {
		table[nucleotide]++
	}
	return Tally{
		A: table[Adenine],
		C: table[Cytosine],
		G: table[Guanine],
		T: table[Thymine],
		N: table[AnyNucleotide],
	}
}

// Strategy 一种计数写法
type Strategy struct {
	Name  string
	Count func([]byte) Tally
}

// Strategies 全部四种写法
var Strategies = []Strategy{
	{Name: "if", Count: CountIf},
	{Name: "bool-to-int", Count: CountBoolToInt},
	{Name: "switch", Count: CountSwitch},
	{Name: "table", Count: CountTable},
}

// Verify 计数之和必须等于缓冲区长度
func Verify(name string, t Tally, size int) error {
	return benchmark.Reconcile(name, size, t.Total())
}

// Buffer 碱基计数基准单元：Init 生成数据，Execute 用选定的写法统计一遍，Finalize 校验后释放数据
type Buffer struct {
	Strategy   Strategy
	Size       int
	Thresholds []Threshold

	rng  *rand.Rand
	dna  []byte
	last Tally
	err  error
}

var _ benchmark.Unit = (*Buffer)(nil)

// NewBuffer 默认大小、默认分布、不固定种子
func NewBuffer(s Strategy) *Buffer {
	return &Buffer{Strategy: s, Size: DefaultSize, Thresholds: DefaultThresholds}
}

// WithRand 使用指定的随机数源生成数据，便于复现
func (b *Buffer) WithRand(rng *rand.Rand) *Buffer {
	b.rng = rng
	return b
}

func (b *Buffer) Name() string { return "nucleotide-count/" + b.Strategy.Name }

func (b *Buffer) Init() {
	rng := b.rng
	if rng == nil {
		rng = NewRand()
	}
	b.dna = Generate(rng, b.Size, b.Thresholds)
	b.last, b.err = Tally{}, nil
}

// DNA 当前的数据，只读
func (b *Buffer) DNA() []byte { return b.dna }

func (b *Buffer) Execute() int {
	b.last = b.Strategy.Count(b.dna)
	if b.err == nil {
		b.err = Verify(b.Name(), b.last, len(b.dna))
	}
	return b.last.Total()
}

// Last 最近一次 Execute 的结果
func (b *Buffer) Last() Tally { return b.last }

func (b *Buffer) Finalize() error {
	err := b.err
	b.dna = nil
	return err
}
