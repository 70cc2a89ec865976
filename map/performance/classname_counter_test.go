package performance_test

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"testing"

	"idiom-bench/benchmark"
	p "idiom-bench/map/performance"
)

/*
对比按类型名哈希、按 reflect.Type 哈希以及 SwissTable 三种计数器分发方式。

执行命令:

	go test -run '^$' -bench '^BenchmarkSelect' -benchmem .

预期结论:
 1. 按 reflect.Type 查找只需要哈希一个接口值，通常比对类型名做字符串哈希更快
 2. SwissTable 在目录较小、全部命中 L1 时与内建 map 差距不大
 3. 共享随机数源和每个单元自带随机数源在单线程下开销接近，区别在于结果是否可复现
*/

var dispatches = []p.Dispatch{p.DispatchByName, p.DispatchByType, p.DispatchSwiss}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestSelectionsReconcile(t *testing.T) {
	single, err := p.NewCatalog(reflect.TypeFor[string]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	catalogs := map[string]*p.Catalog{
		"single":  single,
		"default": p.DefaultCatalog(),
	}

	for name, catalog := range catalogs {
		for _, d := range dispatches {
			for _, n := range []int{0, 1, 7, 10_000} {
				c := p.NewClassCounter(catalog, newRand(uint64(n)), d)
				last, err := benchmark.Run(c, n)
				if err != nil {
					t.Fatalf("%s/%s/%d: %v", name, d, n, err)
				}
				if last != n {
					t.Errorf("%s/%s/%d: last Execute = %d", name, d, n, last)
				}
			}
		}
	}
}

func TestBatchSize(t *testing.T) {
	for _, d := range dispatches {
		c := p.NewClassCounter(p.DefaultCatalog(), newRand(1), d)
		c.BatchSize = 500
		c.Init()
		for i := 0; i < 4; i++ {
			c.Execute()
		}
		if c.Selections() != 2000 || c.Total() != 2000 {
			t.Errorf("%s: selections = %d, total = %d, want 2000", d, c.Selections(), c.Total())
		}
		if err := c.Finalize(); err != nil {
			t.Fatalf("%s: %v", d, err)
		}
	}
}

func TestEveryIdentifierIsReachable(t *testing.T) {
	catalog := p.DefaultCatalog()
	c := p.NewClassCounter(catalog, newRand(42), p.DispatchByType)
	c.BatchSize = 100_000
	c.Init()
	c.Execute()

	counts := c.Counts()
	if len(counts) != catalog.Len() {
		t.Fatalf("counts has %d identifiers, want %d", len(counts), catalog.Len())
	}
	for _, name := range catalog.Names() {
		if counts[name] == 0 {
			t.Errorf("%s was never selected", name)
		}
	}
	if err := c.Finalize(); err != nil {
		t.Fatal(err)
	}
}

// 同一个种子、同一个目录，三种分发方式的计数分布应完全一致
func TestDispatchAgree(t *testing.T) {
	var want map[string]int
	for _, d := range dispatches {
		c := p.NewClassCounter(p.DefaultCatalog(), newRand(7), d)
		c.BatchSize = 5000
		c.Init()
		c.Execute()
		got := c.Counts()
		if want == nil {
			want = got
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s counts differ from %s", d, dispatches[0])
		}
	}
}

func TestFinalizeBeforeExecute(t *testing.T) {
	c := p.NewClassCounter(p.DefaultCatalog(), newRand(1), p.DispatchByName)
	c.Init()
	if err := c.Finalize(); err != nil {
		t.Fatalf("finalize before any selection should pass: %v", err)
	}
}

func TestNewCatalog(t *testing.T) {
	if _, err := p.NewCatalog(); !errors.Is(err, p.ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got: %v", err)
	}
	// byte 是 uint8 的别名，名字相同
	_, err := p.NewCatalog(reflect.TypeFor[uint8](), reflect.TypeFor[byte]())
	if !errors.Is(err, p.ErrDuplicateIdentifier) {
		t.Errorf("expected ErrDuplicateIdentifier, got: %v", err)
	}
	if n := p.DefaultCatalog().Len(); n < 60 {
		t.Errorf("default catalog has %d identifiers", n)
	}
}

func TestDispatchString(t *testing.T) {
	if p.DispatchSwiss.String() != "swiss" || p.Dispatch(9).String() != "Dispatch(9)" {
		t.Errorf("unexpected dispatch names")
	}
}

var selectSink int

func benchmarkSelect(b *testing.B, d p.Dispatch, rng *rand.Rand) {
	c := p.NewClassCounter(p.DefaultCatalog(), rng, d)
	c.Init()
	for b.Loop() {
		c.Select()
	}
	selectSink = c.Selections()
	if err := c.Finalize(); err != nil {
		b.Fatal(err)
	}
}

// 共享随机数源：模拟进程级别的全局随机数，不保证可复现
var sharedRand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

func BenchmarkSelectByName(b *testing.B)       { benchmarkSelect(b, p.DispatchByName, newRand(42)) }
func BenchmarkSelectByType(b *testing.B)       { benchmarkSelect(b, p.DispatchByType, newRand(42)) }
func BenchmarkSelectSwiss(b *testing.B)        { benchmarkSelect(b, p.DispatchSwiss, newRand(42)) }
func BenchmarkSelectByNameShared(b *testing.B) { benchmarkSelect(b, p.DispatchByName, sharedRand) }
