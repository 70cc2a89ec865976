package fieldencoding

import (
	"idiom-bench/benchmark"
)

// Census 按三阶段约定包装一个 Cohort：Init 用固定种子生成数据，Execute 统计男女，Finalize 对账
type Census struct {
	Seed uint64
	Size int

	encoding Encoding
	cohort   Cohort
}

var _ benchmark.Unit = (*Census)(nil)

func NewCensus(enc Encoding) (*Census, error) {
	if _, err := ParseEncoding(string(enc)); err != nil {
		return nil, err
	}
	return &Census{Seed: DefaultSeed, Size: DefaultCohortSize, encoding: enc}, nil
}

func (c *Census) Name() string { return "field-encoding/" + string(c.encoding) }

func (c *Census) Init() {
	// 编码已在 NewCensus 中校验过
	c.cohort, _ = Setup(c.encoding, c.Seed, c.Size)
}

// Cohort 当前数据
func (c *Census) Cohort() Cohort { return c.cohort }

// Execute 支持 CountBoth 的编码一次遍历统计，其余编码分两次遍历
func (c *Census) Execute() int {
	if both, ok := c.cohort.(BothCounter); ok {
		return both.CountBoth()
	}
	return c.cohort.CountMales() + c.cohort.CountFemales()
}

func (c *Census) Finalize() error {
	err := Check(c.cohort)
	c.cohort = nil
	return err
}
