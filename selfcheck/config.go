package selfcheck

import (
	"errors"
	"fmt"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"

	fe "idiom-bench/struct/performance/field-encoding"
)

const (
	SeedModeFixed      = "fixed"
	SeedModeSequential = "sequential"

	ReportText = "text"
	ReportJSON = "json"
)

var ErrInvalidConfig = errors.New("selfcheck: invalid config")

// Config 自检程序配置，默认每种编码 10000 轮，每轮都用种子 42
type Config struct {
	Trials      int    `json:",default=10000"`
	Parallelism int    `json:",default=4"`
	Seed        uint64 `json:",default=42"`

	// fixed: 每轮使用同一个种子；sequential: 第 i 轮使用 Seed+i
	SeedMode  string   `json:",default=fixed,options=fixed|sequential"`
	Size      int      `json:",default=2000"`
	Encodings []string `json:",optional"`
	Report    string   `json:",default=text,options=text|json"`
	Gops      bool     `json:",optional"`

	Log logx.LogConf `json:",optional"`
}

// LoadConfig 从文件加载配置，支持 yaml/json/toml
func LoadConfig(path string) (Config, error) {
	var c Config
	if err := conf.Load(path, &c); err != nil {
		return c, fmt.Errorf("load %s: %w", path, err)
	}
	err := c.validate()
	return c, err
}

// LoadConfigFromYaml 从 yaml 内容加载配置
func LoadConfigFromYaml(content []byte) (Config, error) {
	var c Config
	if err := conf.LoadFromYamlBytes(content, &c); err != nil {
		return c, err
	}
	err := c.validate()
	return c, err
}

func (c *Config) validate() error {
	if c.Trials < 0 {
		return fmt.Errorf("%w: Trials = %d", ErrInvalidConfig, c.Trials)
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("%w: Parallelism = %d", ErrInvalidConfig, c.Parallelism)
	}
	if c.Size < 0 {
		return fmt.Errorf("%w: Size = %d", ErrInvalidConfig, c.Size)
	}
	if len(c.Encodings) == 0 {
		// 默认只检查 bool 和 int 两种编码
		c.Encodings = []string{string(fe.EncodingBool), string(fe.EncodingInt)}
	}
	for _, name := range c.Encodings {
		if _, err := fe.ParseEncoding(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// seedFor 第 trial 轮使用的种子
func (c Config) seedFor(trial int) uint64 {
	if c.SeedMode == SeedModeSequential {
		return c.Seed + uint64(trial)
	}
	return c.Seed
}
