package selfcheck

import (
	"fmt"
	"io"
	"time"

	"github.com/bytedance/sonic"
	"github.com/dustin/go-humanize"
)

// Report 一次自检运行的汇总
type Report struct {
	Trials    int              `json:"trials"`
	SeedMode  string           `json:"seedMode"`
	Size      int              `json:"size"`
	Encodings []EncodingReport `json:"encodings"`
	Elapsed   time.Duration    `json:"elapsed"`
}

// Failed 所有编码失败轮数之和
func (r *Report) Failed() int {
	failed := 0
	for _, e := range r.Encodings {
		failed += e.Failed
	}
	return failed
}

// JSON 用 sonic 编码
func (r *Report) JSON() ([]byte, error) {
	return sonic.Marshal(r)
}

// Write 按 format 写出报告，format 为 text 或 json
func (r *Report) Write(w io.Writer, format string) error {
	if format == ReportJSON {
		data, err := r.JSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	for _, e := range r.Encodings {
		_, err := fmt.Fprintf(w, "%-5s %s trials, %s passed, %s failed, %d/%d male/female, %s\n",
			e.Encoding, humanize.Comma(int64(e.Trials)), humanize.Comma(int64(e.Passed)),
			humanize.Comma(int64(e.Failed)), e.Males, e.Females, e.Elapsed)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "total %s\n", r.Elapsed)
	return err
}
