// Package selfcheck 独立于 go test -bench 的自检程序：反复重新生成学生数据并校验男女计数，
// 每一轮把 true/false 结果逐行写到错误输出，用来排除偶发性的计数错误。
package selfcheck

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/timex"
	"golang.org/x/sync/errgroup"

	fe "idiom-bench/struct/performance/field-encoding"
)

// TrialResult 一轮自检的结果
type TrialResult struct {
	Trial    int
	Encoding fe.Encoding
	Seed     uint64
	Size     int
	Males    int
	Females  int

	// MaleOrFemale 每个学生非男即女，这是唯一必须为 true 的一项
	MaleOrFemale bool
	AllMale      bool
	AllFemale    bool
	Err          error
}

// Lines 每轮固定输出三行，格式为 "<true/false> 描述"
func (r TrialResult) Lines() []string {
	return []string{
		fmt.Sprintf("%t all students are male or female", r.MaleOrFemale),
		fmt.Sprintf("%t all students are male", r.AllMale),
		fmt.Sprintf("%t all students are female", r.AllFemale),
	}
}

func (r TrialResult) Failed() bool { return r.Err != nil }

// RunTrial 生成一组新数据并校验，每一轮独占自己的数据
func RunTrial(trial int, enc fe.Encoding, seed uint64, size int) (TrialResult, error) {
	c, err := fe.Setup(enc, seed, size)
	if err != nil {
		return TrialResult{}, err
	}

	r := TrialResult{Trial: trial, Encoding: enc, Seed: seed, Size: size}
	r.Males, r.Females = c.CountMales(), c.CountFemales()
	total := r.Males + r.Females
	if both, ok := c.(fe.BothCounter); ok {
		total = both.CountBoth()
	}
	r.MaleOrFemale = total == c.Len()
	r.AllMale = r.Males == c.Len()
	r.AllFemale = r.Females == c.Len()
	if err := fe.Check(c); err != nil {
		r.Err = fmt.Errorf("trial %d: %w", trial, err)
	}
	return r, nil
}

// Runner 按配置执行所有自检
type Runner struct {
	cfg Config
	out io.Writer
}

// NewRunner out 通常是 os.Stderr
func NewRunner(c Config, out io.Writer) *Runner {
	return &Runner{cfg: c, out: out}
}

// Run 依次对每种编码执行 Trials 轮自检。同一编码的各轮之间并发执行，输出按轮次顺序写出。
// 任意一轮对账失败时返回汇总后的错误，报告仍然完整返回。
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	start := timex.Now()
	report := &Report{Trials: r.cfg.Trials, SeedMode: r.cfg.SeedMode, Size: r.cfg.Size}
	w := bufio.NewWriter(r.out)
	defer w.Flush()

	var errs []error
	for _, name := range r.cfg.Encodings {
		enc, err := fe.ParseEncoding(name)
		if err != nil {
			return report, err
		}
		er, results, err := r.runEncoding(ctx, enc)
		if err != nil {
			return report, err
		}
		for _, res := range results {
			for _, line := range res.Lines() {
				if _, err := fmt.Fprintln(w, line); err != nil {
					return report, err
				}
			}
			if res.Failed() {
				errs = append(errs, res.Err)
			}
		}
		report.Encodings = append(report.Encodings, er)
		logx.Infow("self check finished",
			logx.Field("encoding", name),
			logx.Field("trials", er.Trials),
			logx.Field("failed", er.Failed),
			logx.Field("elapsed", er.Elapsed.String()))
	}
	report.Elapsed = timex.Since(start)

	if len(errs) > 0 {
		logx.Errorf("self check: %d trials failed", len(errs))
	}
	return report, errors.Join(errs...)
}

func (r *Runner) runEncoding(ctx context.Context, enc fe.Encoding) (EncodingReport, []TrialResult, error) {
	start := timex.Now()
	results := make([]TrialResult, r.cfg.Trials)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Parallelism)
	for i := range results {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := RunTrial(i, enc, r.cfg.seedFor(i), r.cfg.Size)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return EncodingReport{}, nil, err
	}

	er := EncodingReport{Encoding: string(enc), Trials: len(results), Elapsed: timex.Since(start)}
	for i, res := range results {
		if res.Failed() {
			er.Failed++
		} else {
			er.Passed++
		}
		if i == 0 {
			er.Males, er.Females = res.Males, res.Females
		}
	}
	return er, results, nil
}

// EncodingReport 单个编码的汇总，Males/Females 取第一轮的结果
type EncodingReport struct {
	Encoding string        `json:"encoding"`
	Trials   int           `json:"trials"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Males    int           `json:"males"`
	Females  int           `json:"females"`
	Elapsed  time.Duration `json:"elapsed"`
}
