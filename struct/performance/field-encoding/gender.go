package fieldencoding

// 同一个二值属性（性别）用三种字段类型存储时，计数的性能差异
//
//   - bool: male bool，计数时需要把 bool 转成 0/1
//   - char: genderCode byte，'m' 或 'f'，计数时需要比较
//   - int:  genderCode int，1 或 0，男生数就是直接求和，女生数是总数减去男生数
//
// 三种编码语义完全相同，数据都从同一组 Gender 转换而来。

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Gender 二值属性本身，与存储方式无关
type Gender uint8

const (
	Female Gender = iota
	Male
)

func (g Gender) String() string {
	switch g {
	case Female:
		return "female"
	case Male:
		return "male"
	default:
		return fmt.Sprintf("Gender(%d)", uint8(g))
	}
}

const (
	DefaultCohortSize        = 2000
	DefaultSeed       uint64 = 42
)

var ErrUnknownEncoding = errors.New("fieldencoding: unknown encoding")

// NewRand 固定种子的随机数源，保证每次生成的数据相同
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// DrawGenders 每条记录抽一次随机布尔值
func DrawGenders(rng *rand.Rand, n int) []Gender {
	genders := make([]Gender, n)
	for i := range genders {
		if rng.IntN(2) == 1 {
			genders[i] = Male
		}
	}
	return genders
}

// Encoding 字段的存储方式
type Encoding string

const (
	EncodingBool Encoding = "bool"
	EncodingChar Encoding = "char"
	EncodingInt  Encoding = "int"
)

var Encodings = []Encoding{EncodingBool, EncodingChar, EncodingInt}

// ParseEncoding 校验编码名
func ParseEncoding(s string) (Encoding, error) {
	for _, e := range Encodings {
		if string(e) == s {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
}

// Cohort 一组学生
type Cohort interface {
	Encoding() Encoding
	Len() int
	CountMales() int
	CountFemales() int
}

// BothCounter 一次遍历同时统计男女，返回两者之和
type BothCounter interface {
	CountBoth() int
}

// NewCohort 按编码从同一组 Gender 构造学生
func NewCohort(enc Encoding, genders []Gender) (Cohort, error) {
	switch enc {
	case EncodingBool:
		return NewBoolCohort(genders), nil
	case EncodingChar:
		return NewCharCohort(genders), nil
	case EncodingInt:
		return NewIntCohort(genders), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, string(enc))
	}
}

// Setup 用 seed 抽取 n 条记录并按编码存储
func Setup(enc Encoding, seed uint64, n int) (Cohort, error) {
	return NewCohort(enc, DrawGenders(NewRand(seed), n))
}
