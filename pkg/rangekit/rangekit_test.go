package rangekit_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"pgregory.net/rapid"

	"go.llib.dev/iterview"
	"go.llib.dev/iterview/iterviewcontract"
	"go.llib.dev/iterview/pkg/rangekit"
)

func ExampleNew() {
	r, err := rangekit.New(10, 0, -3)
	if err != nil {
		panic(err.Error())
	}
	for n := range r.Iter() {
		fmt.Println(n)
	}
	// Output:
	// 10
	// 7
	// 4
	// 1
}

func ExampleUntil() {
	for n := range rangekit.Until(3).Iter() {
		fmt.Println(n)
	}
	// Output:
	// 0
	// 1
	// 2
}

func ExampleRange_Begin() {
	r := rangekit.MustNew[uint8](250, 255, 10)
	for c, end := r.Begin(), r.End(); c.NotEqual(end); c.Next() {
		fmt.Println(c.Value())
	}
	// Output:
	// 250
}

func TestNew(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		start = testcase.Let(s, func(t *testcase.T) int {
			return t.Random.IntB(-100, 100)
		})
		stop = testcase.Let(s, func(t *testcase.T) int {
			return start.Get(t) + t.Random.IntB(1, 100)
		})
		step = testcase.Let(s, func(t *testcase.T) int {
			return t.Random.IntB(1, 7)
		})
	)
	act := func(t *testcase.T) (*rangekit.Range[int], error) {
		return rangekit.New(start.Get(t), stop.Get(t), step.Get(t))
	}

	s.Then("it yields the values from start by step, strictly less than stop", func(t *testcase.T) {
		r, err := act(t)
		t.Must.NoError(err)

		var exp []int
		for v := start.Get(t); v < stop.Get(t); v += step.Get(t) {
			exp = append(exp, v)
		}
		t.Must.NotEmpty(exp)
		t.Must.Equal(exp, iterview.Collect(r))
	})

	s.When("start is already at or past stop", func(s *testcase.Spec) {
		stop.Let(s, func(t *testcase.T) int {
			return start.Get(t) - t.Random.IntB(0, 100)
		})

		s.Then("it yields nothing, and it is not an error", func(t *testcase.T) {
			r, err := act(t)
			t.Must.NoError(err)
			t.Must.Empty(iterview.Collect(r))
			t.Must.Equal(uint64(0), r.Len())
		})
	})

	s.When("step is negative", func(s *testcase.Spec) {
		step.Let(s, func(t *testcase.T) int {
			return -t.Random.IntB(1, 7)
		})
		stop.Let(s, func(t *testcase.T) int {
			return start.Get(t) - t.Random.IntB(1, 100)
		})

		s.Then("it yields descending values strictly greater than stop", func(t *testcase.T) {
			r, err := act(t)
			t.Must.NoError(err)

			var exp []int
			for v := start.Get(t); stop.Get(t) < v; v += step.Get(t) {
				exp = append(exp, v)
			}
			t.Must.NotEmpty(exp)
			t.Must.Equal(exp, iterview.Collect(r))
		})

		s.And("start is already at or below stop", func(s *testcase.Spec) {
			stop.Let(s, func(t *testcase.T) int {
				return start.Get(t) + t.Random.IntB(0, 100)
			})

			s.Then("it yields nothing", func(t *testcase.T) {
				r, err := act(t)
				t.Must.NoError(err)
				t.Must.Empty(iterview.Collect(r))
			})
		})
	})

	s.When("step is zero", func(s *testcase.Spec) {
		step.LetValue(s, 0)

		s.Then("it fails with an invalid argument error", func(t *testcase.T) {
			_, err := act(t)
			t.Must.ErrorIs(iterview.ErrInvalidArgument, err)
			t.Must.ErrorIs(rangekit.ErrZeroStep, err)
		})
	})

	s.Test("step defaults to one", func(t *testcase.T) {
		r, err := rangekit.New(3, 7)
		t.Must.NoError(err)
		t.Must.Equal(1, r.Step())
		t.Must.Equal([]int{3, 4, 5, 6}, iterview.Collect(r))
	})

	s.Test("more than one step value is rejected", func(t *testcase.T) {
		_, err := rangekit.New(0, 10, 1, 2)
		t.Must.ErrorIs(iterview.ErrInvalidArgument, err)
	})
}

func TestNew_zeroStepAlwaysFails(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		start := rapid.Int64().Draw(rt, "start")
		stop := rapid.Int64().Draw(rt, "stop")
		if _, err := rangekit.New(start, stop, 0); !errors.Is(err, iterview.ErrInvalidArgument) {
			rt.Fatalf("expected invalid argument error, got %v", err)
		}
	})
}

func TestRange_saturation(t *testing.T) {
	t.Run("uint8 ending at the max value", func(t *testing.T) {
		assert.Equal(t, []uint8{250}, iterview.Collect(rangekit.MustNew[uint8](250, 255, 10)))
		assert.Equal(t, []uint8{250, 252, 254}, iterview.Collect(rangekit.MustNew[uint8](250, 255, 2)))
		assert.Equal(t, []uint8{0, 100, 200}, iterview.Collect(rangekit.MustNew[uint8](0, math.MaxUint8, 100)))
	})
	t.Run("int8 across the whole domain", func(t *testing.T) {
		assert.Equal(t, []int8{-128, -28, 72}, iterview.Collect(rangekit.MustNew[int8](math.MinInt8, math.MaxInt8, 100)))
		assert.Equal(t, []int8{127, 27, -73}, iterview.Collect(rangekit.MustNew[int8](math.MaxInt8, math.MinInt8, -100)))
	})
	t.Run("int64 bounds with a huge step", func(t *testing.T) {
		r := rangekit.MustNew[int64](0, math.MaxInt64, math.MaxInt64/2+1)
		assert.Equal(t, []int64{0, math.MaxInt64/2 + 1}, iterview.Collect(r))
	})
	t.Run("uint64 stepping by one up to the max value", func(t *testing.T) {
		r := rangekit.MustNew[uint64](math.MaxUint64-3, math.MaxUint64)
		assert.Equal(t, []uint64{math.MaxUint64 - 3, math.MaxUint64 - 2, math.MaxUint64 - 1}, iterview.Collect(r))
	})
	t.Run("int8 stepping by minus one down to the min value", func(t *testing.T) {
		r := rangekit.MustNew[int8](-125, math.MinInt8, -1)
		assert.Equal(t, []int8{-125, -126, -127}, iterview.Collect(r))
	})
}

func TestRange_property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		start := rapid.Int8().Draw(rt, "start")
		stop := rapid.Int8().Draw(rt, "stop")
		step := rapid.Int8().Filter(func(v int8) bool { return v != 0 }).Draw(rt, "step")

		r := rangekit.MustNew(start, stop, step)

		var exp []int8
		for v := int(start); (0 < step && v < int(stop)) || (step < 0 && int(stop) < v); v += int(step) {
			exp = append(exp, int8(v))
		}
		got := iterview.Collect(r)
		if len(exp) != len(got) {
			rt.Fatalf("%s: expected %v, got %v", r, exp, got)
		}
		for i := range exp {
			if exp[i] != got[i] {
				rt.Fatalf("%s: expected %v, got %v", r, exp, got)
			}
		}
		if r.Len() != uint64(len(exp)) {
			rt.Fatalf("%s: expected length %d, got %d", r, len(exp), r.Len())
		}
		for _, v := range exp {
			if !r.Contains(v) {
				rt.Fatalf("%s: expected to contain %d", r, v)
			}
		}
	})
}

func TestUntil(t *testing.T) {
	s := testcase.NewSpec(t)

	stop := testcase.Let(s, func(t *testcase.T) int {
		return t.Random.IntB(0, 42)
	})

	s.Then("it is equivalent to a range from zero with a step of one", func(t *testcase.T) {
		exp := iterview.Collect(rangekit.MustNew(0, stop.Get(t), 1))
		got := iterview.Collect(rangekit.Until(stop.Get(t)))
		t.Must.Equal(exp, got)
		t.Must.Equal(stop.Get(t), len(got))
	})

	s.When("stop is negative", func(s *testcase.Spec) {
		stop.Let(s, func(t *testcase.T) int {
			return -t.Random.IntB(1, 42)
		})

		s.Then("it yields nothing", func(t *testcase.T) {
			t.Must.Empty(iterview.Collect(rangekit.Until(stop.Get(t))))
		})
	})
}

func TestInt(t *testing.T) {
	r, err := rangekit.Int(0, 10, 3)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 3, 6, 9}, iterview.Collect(r))

	_, err = rangekit.Int(0, 10, 0)
	assert.ErrorIs(t, iterview.ErrInvalidArgument, err)
}

func TestRange_Iter(t *testing.T) {
	r := rangekit.MustNew(0, 100, 10)

	var got []int
	for v := range r.Iter() {
		if 30 < v {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 10, 20, 30}, got)

	assert.Equal(t, 10, iterview.Count(r), "the view must be restartable after an early break")
}

func TestRange_Len(t *testing.T) {
	assert.Equal(t, uint64(4), rangekit.MustNew(0, 10, 3).Len())
	assert.Equal(t, uint64(5), rangekit.MustNew(0, 10, 2).Len())
	assert.Equal(t, uint64(0), rangekit.MustNew(10, 0).Len())
	assert.Equal(t, uint64(4), rangekit.MustNew(10, 0, -3).Len())
	assert.Equal(t, uint64(1), rangekit.MustNew[uint8](250, 255, 10).Len())
	assert.Equal(t, uint64(math.MaxUint64), rangekit.MustNew[int64](math.MinInt64, math.MaxInt64).Len())
}

func TestRange_Contains(t *testing.T) {
	r := rangekit.MustNew(10, 0, -3)
	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(1))
	assert.False(t, r.Contains(0))
	assert.False(t, r.Contains(2))
	assert.False(t, r.Contains(13))
}

func TestRange_String(t *testing.T) {
	assert.Equal(t, "range(1, 10, 2)", rangekit.MustNew(1, 10, 2).String())
}

func TestRange_implementsView(t *testing.T) {
	iterviewcontract.View(func(tb testing.TB) iterview.View[int, *rangekit.Cursor[int]] {
		t := testcase.ToT(&tb)
		start := t.Random.IntB(-50, 50)
		step := t.Random.IntB(1, 7)
		if t.Random.Bool() {
			return rangekit.MustNew(start, start+t.Random.IntB(0, 100), step)
		}
		return rangekit.MustNew(start, start-t.Random.IntB(0, 100), -step)
	}).Test(t)
}

func TestRange_implementsView_uint8(t *testing.T) {
	iterviewcontract.View(func(tb testing.TB) iterview.View[uint8, *rangekit.Cursor[uint8]] {
		t := testcase.ToT(&tb)
		return rangekit.MustNew(uint8(t.Random.IntB(200, 255)), math.MaxUint8, uint8(t.Random.IntB(1, 60)))
	}).Test(t)
}
