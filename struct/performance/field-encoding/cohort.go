package fieldencoding

import (
	"idiom-bench/benchmark"
)

// b2i bool 转 0/1，内联后一般是 SETcc
func b2i(b bool) int {
	var i int
	if b {
		i = 1
	}
	return i
}

type boolStudent struct {
	male bool
}

// BoolCohort 性别存为 bool
type BoolCohort struct {
	students []boolStudent
}

func NewBoolCohort(genders []Gender) *BoolCohort {
	students := make([]boolStudent, len(genders))
	for i, g := range genders {
		students[i].male = g == Male
	}
	return &BoolCohort{students: students}
}

func (c *BoolCohort) Encoding() Encoding { return EncodingBool }
func (c *BoolCohort) Len() int           { return len(c.students) }

func (c *BoolCohort) CountMales() int {
	males := 0
	for i := range c.students {
		males += b2i(c.students[i].male)
	}
	return males
}

func (c *BoolCohort) CountFemales() int {
	females := 0
	for i := range c.students {
		females += b2i(!c.students[i].male)
	}
	return females
}

func (c *BoolCohort) CountBoth() int {
	females, males := 0, 0
	for i := range c.students {
		females += b2i(!c.students[i].male)
		males += b2i(c.students[i].male)
	}
	return females + males
}

type charStudent struct {
	genderCode byte
}

// CharCohort 性别存为单字符 'm'/'f'
type CharCohort struct {
	students []charStudent
}

func NewCharCohort(genders []Gender) *CharCohort {
	students := make([]charStudent, len(genders))
	for i, g := range genders {
		students[i].genderCode = 'f'
		if g == Male {
			students[i].genderCode = 'm'
		}
	}
	return &CharCohort{students: students}
}

func (c *CharCohort) Encoding() Encoding { return EncodingChar }
func (c *CharCohort) Len() int           { return len(c.students) }

func (c *CharCohort) CountMales() int {
	males := 0
	for i := range c.students {
		males += b2i(c.students[i].genderCode == 'm')
	}
	return males
}

func (c *CharCohort) CountFemales() int {
	females := 0
	for i := range c.students {
		females += b2i(c.students[i].genderCode == 'f')
	}
	return females
}

type intStudent struct {
	genderCode int
}

// IntCohort 性别存为 1（男）/0（女）
type IntCohort struct {
	students []intStudent
}

func NewIntCohort(genders []Gender) *IntCohort {
	students := make([]intStudent, len(genders))
	for i, g := range genders {
		if g == Male {
			students[i].genderCode = 1
		}
	}
	return &IntCohort{students: students}
}

func (c *IntCohort) Encoding() Encoding { return EncodingInt }
func (c *IntCohort) Len() int           { return len(c.students) }

// CountMales 编码本身就是 0/1，直接求和，没有比较
func (c *IntCohort) CountMales() int {
	males := 0
	for i := range c.students {
		males += c.students[i].genderCode
	}
	return males
}

func (c *IntCohort) CountFemales() int {
	females := len(c.students)
	for i := range c.students {
		females -= c.students[i].genderCode
	}
	return females
}

func (c *IntCohort) CountBoth() int {
	females, males := len(c.students), 0
	for i := range c.students {
		females -= c.students[i].genderCode
		males += c.students[i].genderCode
	}
	return females + males
}

// Check 男生数加女生数必须等于总人数；支持 CountBoth 的编码还要校验 CountBoth
func Check(c Cohort) error {
	name := "field-encoding/" + string(c.Encoding())
	if err := benchmark.Reconcile(name, c.Len(), c.CountMales()+c.CountFemales()); err != nil {
		return err
	}
	if both, ok := c.(BothCounter); ok {
		return benchmark.Reconcile(name+"/both", c.Len(), both.CountBoth())
	}
	return nil
}
