package performance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"net"
	"net/url"
	"os"
	"os/exec"
	"reflect"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

var (
	ErrEmptyCatalog        = errors.New("catalog: at least one identifier is required")
	ErrDuplicateIdentifier = errors.New("catalog: duplicate identifier")
)

type entry struct {
	typ  reflect.Type
	name string
}

// Catalog 一组互不相同的类型标识，名字取自 reflect.Type.String()
type Catalog struct {
	entries []entry
}

// NewCatalog 按传入顺序建立目录，名字重复（例如 byte 和 uint8 其实是同一个类型）会返回错误
func NewCatalog(types ...reflect.Type) (*Catalog, error) {
	if len(types) == 0 {
		return nil, ErrEmptyCatalog
	}
	seen := mapset.NewThreadUnsafeSetWithSize[string](len(types))
	entries := make([]entry, 0, len(types))
	for _, t := range types {
		name := t.String()
		if !seen.Add(name) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateIdentifier, name)
		}
		entries = append(entries, entry{typ: t, name: name})
	}
	return &Catalog{entries: entries}, nil
}

func (c *Catalog) Len() int { return len(c.entries) }

// Names 按目录顺序返回所有标识
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.name
	}
	return names
}

// DefaultCatalog 标准库里常见的内建类型、结构体和错误类型
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultTypes()...)
	if err != nil {
		panic(err)
	}
	return c
}

func defaultTypes() []reflect.Type {
	return []reflect.Type{
		// 内建类型
		reflect.TypeFor[bool](),
		reflect.TypeFor[int](),
		reflect.TypeFor[int8](),
		reflect.TypeFor[int16](),
		reflect.TypeFor[int32](),
		reflect.TypeFor[int64](),
		reflect.TypeFor[uint](),
		reflect.TypeFor[uint8](),
		reflect.TypeFor[uint16](),
		reflect.TypeFor[uint32](),
		reflect.TypeFor[uint64](),
		reflect.TypeFor[uintptr](),
		reflect.TypeFor[float32](),
		reflect.TypeFor[float64](),
		reflect.TypeFor[complex64](),
		reflect.TypeFor[complex128](),
		reflect.TypeFor[string](),

		// 常用结构体
		reflect.TypeFor[strings.Builder](),
		reflect.TypeFor[strings.Reader](),
		reflect.TypeFor[bytes.Buffer](),
		reflect.TypeFor[bytes.Reader](),
		reflect.TypeFor[sync.Mutex](),
		reflect.TypeFor[sync.RWMutex](),
		reflect.TypeFor[sync.WaitGroup](),
		reflect.TypeFor[sync.Once](),
		reflect.TypeFor[sync.Map](),
		reflect.TypeFor[sync.Pool](),
		reflect.TypeFor[time.Time](),
		reflect.TypeFor[time.Duration](),
		reflect.TypeFor[time.Location](),
		reflect.TypeFor[time.Timer](),
		reflect.TypeFor[time.Ticker](),
		reflect.TypeFor[time.Month](),
		reflect.TypeFor[time.Weekday](),
		reflect.TypeFor[big.Int](),
		reflect.TypeFor[big.Float](),
		reflect.TypeFor[big.Rat](),
		reflect.TypeFor[os.File](),
		reflect.TypeFor[os.Process](),
		reflect.TypeFor[os.ProcessState](),
		reflect.TypeFor[exec.Cmd](),
		reflect.TypeFor[runtime.MemStats](),
		reflect.TypeFor[runtime.Frame](),
		reflect.TypeFor[runtime.Frames](),
		reflect.TypeFor[regexp.Regexp](),
		reflect.TypeFor[reflect.Value](),
		reflect.TypeFor[reflect.Kind](),
		reflect.TypeFor[context.CancelFunc](),
		reflect.TypeFor[url.URL](),
		reflect.TypeFor[url.Values](),
		reflect.TypeFor[net.IP](),

		// 错误类型
		reflect.TypeFor[fs.PathError](),
		reflect.TypeFor[os.LinkError](),
		reflect.TypeFor[os.SyscallError](),
		reflect.TypeFor[strconv.NumError](),
		reflect.TypeFor[json.SyntaxError](),
		reflect.TypeFor[json.UnmarshalTypeError](),
		reflect.TypeFor[net.OpError](),
		reflect.TypeFor[net.DNSError](),
		reflect.TypeFor[url.Error](),
		reflect.TypeFor[exec.Error](),
		reflect.TypeFor[exec.ExitError](),
		reflect.TypeFor[time.ParseError](),
		reflect.TypeFor[runtime.TypeAssertionError](),
		reflect.TypeFor[big.ErrNaN](),
		reflect.TypeFor[reflect.ValueError](),
	}
}
