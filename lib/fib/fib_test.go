// Copyright 2019 The Wuffs Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fib

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeckendorf-codec/zeck/lib/bignat"
)

func TestBaseCases(t *testing.T) {
	want := []uint64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	for n, w := range want {
		exp := bignat.FromUint64(w)
		assert.Equal(t, 0, SlowIterativeMemo(uint(n)).Cmp(exp), "SlowIterativeMemo(%d)", n)
		assert.Equal(t, 0, FastDoubling(uint(n)).Cmp(exp), "FastDoubling(%d)", n)
		assert.Equal(t, 0, FastDoublingMemo(uint(n)).Cmp(exp), "FastDoublingMemo(%d)", n)
	}
}

func TestThreeAlgorithmsAgree(t *testing.T) {
	for n := uint(0); n <= 500; n++ {
		a := SlowIterativeMemo(n)
		b := FastDoubling(n)
		c := FastDoublingMemo(n)
		assert.Equal(t, 0, a.Cmp(b), "n=%d slow vs fast-doubling", n)
		assert.Equal(t, 0, a.Cmp(c), "n=%d slow vs memoized fast-doubling", n)
	}
}

func TestAgreementAtSparseLargeIndices(t *testing.T) {
	for _, n := range []uint{501, 777, 999, 1000, 2000, 5000} {
		a := FastDoubling(n)
		b := FastDoublingMemo(n)
		c := SlowIterativeMemo(n)
		assert.Equal(t, 0, a.Cmp(b), "n=%d", n)
		assert.Equal(t, 0, a.Cmp(c), "n=%d", n)
	}
}

func TestLinearCacheConcurrentReadersWriters(t *testing.T) {
	c := &LinearCache{}
	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(n uint) {
			defer wg.Done()
			_ = c.Get(n)
		}(uint(100 + g))
	}
	wg.Wait()
	assert.Equal(t, 0, c.Get(100).Cmp(FastDoubling(100)))
}

func TestSparseCacheConcurrentAccess(t *testing.T) {
	c := &SparseCache{}
	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(n uint) {
			defer wg.Done()
			fk, _ := memoPair(c, n)
			assert.Equal(t, 0, fk.Cmp(FastDoubling(n)))
		}(uint(50 + g))
	}
	wg.Wait()
}

func TestResetClearsCaches(t *testing.T) {
	c := &LinearCache{}
	c.Get(30)
	c.Reset()
	assert.Equal(t, 0, len(c.cache))

	s := &SparseCache{}
	memoPair(s, 30)
	s.Reset()
	_, ok := s.load(30)
	assert.False(t, ok)
}
