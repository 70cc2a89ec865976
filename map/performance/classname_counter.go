package performance

import (
	"fmt"
	"math/rand/v2"
	"reflect"

	"github.com/cockroachdb/swiss"

	"idiom-bench/benchmark"
)

// 随机挑选一个类型，再通过哈希表找到它的计数器并加一。
// 对比三种哈希分发方式：
//   - DispatchByName: map[string]*Counter，每次都要对类型名做字符串哈希
//   - DispatchByType: map[reflect.Type]*Counter，按接口值（类型指针）哈希
//   - DispatchSwiss: cockroachdb/swiss 的 SwissTable，同样按类型名
//
// 随机数源由调用方传入，不使用包级别的全局随机数，避免不同基准之间互相干扰。

// Dispatch 计数器的查找方式
type Dispatch int

const (
	DispatchByName Dispatch = iota
	DispatchByType
	DispatchSwiss
)

func (d Dispatch) String() string {
	switch d {
	case DispatchByName:
		return "by-name"
	case DispatchByType:
		return "by-type"
	case DispatchSwiss:
		return "swiss"
	default:
		return fmt.Sprintf("Dispatch(%d)", int(d))
	}
}

// Counter 一个可变的计数器
type Counter struct {
	count int
}

func (c *Counter) Run() { c.count++ }

func (c *Counter) Count() int { return c.count }

// ClassCounter 类型出现次数统计单元
type ClassCounter struct {
	// BatchSize 每次 Execute 做多少次随机挑选，<= 0 时按 1 处理
	BatchSize int

	catalog  *Catalog
	rng      *rand.Rand
	dispatch Dispatch

	byName map[string]*Counter
	byType map[reflect.Type]*Counter
	table  *swiss.Map[string, *Counter]

	phase      benchmark.Phase
	selections int
}

var _ benchmark.Unit = (*ClassCounter)(nil)

func NewClassCounter(catalog *Catalog, rng *rand.Rand, dispatch Dispatch) *ClassCounter {
	return &ClassCounter{catalog: catalog, rng: rng, dispatch: dispatch}
}

func (c *ClassCounter) Name() string {
	return "classname-counter/" + c.dispatch.String()
}

// Init 为目录里的每个标识建立一个计数器
func (c *ClassCounter) Init() {
	n := c.catalog.Len()
	c.byName, c.byType, c.table = nil, nil, nil
	switch c.dispatch {
	case DispatchByType:
		c.byType = make(map[reflect.Type]*Counter, n)
		for _, e := range c.catalog.entries {
			c.byType[e.typ] = &Counter{}
		}
	case DispatchSwiss:
		c.table = swiss.New[string, *Counter](n)
		for _, e := range c.catalog.entries {
			c.table.Put(e.name, &Counter{})
		}
	default:
		c.byName = make(map[string]*Counter, n)
		for _, e := range c.catalog.entries {
			c.byName[e.name] = &Counter{}
		}
	}
	c.phase = benchmark.PhaseNotRun
	c.selections = 0
}

// Select 均匀随机地挑一个标识，并给它的计数器加一
func (c *ClassCounter) Select() {
	e := &c.catalog.entries[c.rng.IntN(len(c.catalog.entries))]
	var counter *Counter
	switch c.dispatch {
	case DispatchByType:
		counter = c.byType[e.typ]
	case DispatchSwiss:
		counter, _ = c.table.Get(e.name)
	default:
		counter = c.byName[e.name]
	}
	counter.Run()
	c.selections++
	c.phase = benchmark.PhaseRan
}

// Execute 做一批随机挑选，返回累计挑选次数
func (c *ClassCounter) Execute() int {
	n := c.BatchSize
	if n <= 0 {
		n = 1
	}
	for i := 0; i < n; i++ {
		c.Select()
	}
	return c.selections
}

// Selections 累计挑选次数
func (c *ClassCounter) Selections() int { return c.selections }

// Total 所有计数器之和
func (c *ClassCounter) Total() int {
	total := 0
	for _, n := range c.Counts() {
		total += n
	}
	return total
}

// Counts 每个标识当前的计数快照
func (c *ClassCounter) Counts() map[string]int {
	counts := make(map[string]int, c.catalog.Len())
	switch {
	case c.byType != nil:
		for t, counter := range c.byType {
			counts[t.String()] = counter.Count()
		}
	case c.table != nil:
		c.table.All(func(name string, counter *Counter) bool {
			counts[name] = counter.Count()
			return true
		})
	default:
		for name, counter := range c.byName {
			counts[name] = counter.Count()
		}
	}
	return counts
}

// Finalize 计数之和必须等于挑选次数；还没挑选过时只能是 0。校验后清空计数器
func (c *ClassCounter) Finalize() error {
	err := benchmark.ReconcilePhase(c.Name(), c.phase, c.selections, c.Total())
	c.byName, c.byType, c.table = nil, nil, nil
	return err
}
