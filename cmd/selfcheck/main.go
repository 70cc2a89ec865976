// selfcheck 反复重新生成学生数据并校验男女计数，结果逐行写到 stderr。
//
// 使用方式：
//
//	go run ./cmd/selfcheck -f selfcheck/etc/selfcheck.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/gops/agent"
	"github.com/zeromicro/go-zero/core/logx"

	"idiom-bench/selfcheck"
)

var configFile = flag.String("f", "selfcheck/etc/selfcheck.yaml", "the config file")

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	c, err := selfcheck.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "selfcheck: %v\n", err)
		return 2
	}
	logx.MustSetup(c.Log)
	defer logx.Close()

	if c.Gops {
		// 方便用 gops 查看自检过程中的 goroutine 和内存
		if err := agent.Listen(agent.Options{}); err != nil {
			logx.Errorf("gops agent: %v", err)
		} else {
			defer agent.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := selfcheck.NewRunner(c, os.Stderr).Run(ctx)
	if werr := report.Write(os.Stdout, c.Report); werr != nil {
		logx.Errorf("write report: %v", werr)
	}
	if err != nil {
		logx.Error(err)
		return 1
	}
	return 0
}
