package nucleotidecount

import (
	"math/rand/v2"
)

const (
	Adenine       = 'a'
	Cytosine      = 'c'
	Guanine       = 'g'
	Thymine       = 't'
	AnyNucleotide = 'n'
)

// DefaultSize 20KB，整块缓冲区可以放进 L1/L2
const DefaultSize = 2 * 1024 * 10

// Threshold 累积概率阈值：随机数 < Limit 时取 Code
type Threshold struct {
	Limit float32
	Code  byte
}

// DefaultThresholds 默认的加权分布。
// t 的阈值与 a 相同，所以 t 的权重为 0，生成的数据里不会出现 t；
// 四种计数方式仍然都要处理 t。
var DefaultThresholds = []Threshold{
	{Limit: 0.3, Code: Adenine},
	{Limit: 0.3, Code: Thymine},
	{Limit: 0.8, Code: Cytosine},
	{Limit: 0.99, Code: Guanine},
	{Limit: 1.0, Code: AnyNucleotide},
}

// NewRand 每个单元自己的随机数源，不固定种子，每次运行的数据都不同
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Generate 按阈值生成 size 个碱基编码，阈值按 Limit 递增排列，最后一个 Limit 应为 1.0
func Generate(rng *rand.Rand, size int, thresholds []Threshold) []byte {
	dna := make([]byte, size)
	last := thresholds[len(thresholds)-1].Code
	for i := range dna {
		next := rng.Float32()
		dna[i] = last
		for _, th := range thresholds {
			if next < th.Limit {
				dna[i] = th.Code
				break
			}
		}
	}
	return dna
}
