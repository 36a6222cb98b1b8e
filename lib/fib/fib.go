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

// ----------------

// Package fib computes Fibonacci numbers F(n) as arbitrary-precision
// bignat.Nat values, for any non-negative Fibonacci Index n.
//
// Three algorithms are provided and are observationally equivalent: for
// every n, SlowIterativeMemo(n), FastDoubling(n) and FastDoublingMemo(n)
// return the same value. They differ only in their time/space trade-offs,
// documented on each function.
package fib

import (
	"sync"

	"github.com/zeckendorf-codec/zeck/lib/bignat"
)

// LinearCache is a dense, monotonically-growing cache of F(0), F(1), ...
// Readers take a read lock; extension takes a write lock and re-checks
// under it, so concurrent callers observe a monotonically growing cache
// without ever seeing a torn write.
//
// The zero value is a ready-to-use, empty cache.
type LinearCache struct {
	mu    sync.RWMutex
	cache []bignat.Nat
}

// DefaultLinearCache is the package-level cache used by SlowIterativeMemo.
var DefaultLinearCache = &LinearCache{}

// Reset discards every entry in c. Callers operating on inputs of more than
// about 10 000 bytes may want to call this periodically to bound memory
// growth; correctness does not depend on it.
func (c *LinearCache) Reset() {
	c.mu.Lock()
	c.cache = nil
	c.mu.Unlock()
}

// Get returns F(n), extending c as necessary.
func (c *LinearCache) Get(n uint) bignat.Nat {
	c.mu.RLock()
	if int(n) < len(c.cache) {
		v := c.cache[n]
		c.mu.RUnlock()
		return v
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.cache) == 0 {
		c.cache = append(c.cache, bignat.Zero, bignat.One)
	}
	for uint(len(c.cache)) <= n {
		next := c.cache[len(c.cache)-1].Add(c.cache[len(c.cache)-2])
		c.cache = append(c.cache, next)
	}
	return c.cache[n]
}

// SlowIterativeMemo returns F(n) using the package-level dense cache,
// extending it with the iterative recurrence F(i) = F(i-1) + F(i-2) as
// needed. Amortized cost is O(n - maxReached) bignat additions per call;
// the cache holds O(n) entries in aggregate, each of size proportional to
// its index, so memory grows without bound as n grows across calls.
func SlowIterativeMemo(n uint) bignat.Nat {
	return DefaultLinearCache.Get(n)
}

// FastDoubling returns F(n) in O(log n) bignat operations and O(log n)
// transient memory, using no cache. It is the cacheless variant; repeated
// calls redo all the work every time.
func FastDoubling(n uint) bignat.Nat {
	fk, _ := fastDoublingPair(n)
	return fk
}

// fastDoublingPair returns (F(k), F(k+1)) using the doubling identities
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))
//	F(2k+1) = F(k)^2 + F(k+1)^2
//
// A pair is returned, rather than making two independent recursive calls,
// so that F(k+1) is never recomputed from scratch.
func fastDoublingPair(k uint) (fk, fk1 bignat.Nat) {
	if k == 0 {
		return bignat.Zero, bignat.One
	}
	a, b := fastDoublingPair(k / 2)
	// c = F(2*(k/2)) = a * (2*b - a)
	twoB := b.Double()
	c := a.Mul(twoB.Sub(a))
	// d = F(2*(k/2)+1) = a^2 + b^2
	d := a.Mul(a).Add(b.Mul(b))
	if k%2 == 0 {
		return c, d
	}
	return d, c.Add(d)
}

// SparseCache is a sparse, concurrency-safe FI -> F(FI) cache for the
// memoized fast-doubling algorithm. Unlike LinearCache it does not need
// every intermediate index to be present: it is keyed by whatever FI values
// fast doubling's recursion happens to touch.
//
// The zero value is a ready-to-use, empty cache.
type SparseCache struct {
	m sync.Map // uint -> bignat.Nat
}

// DefaultSparseCache is the package-level cache used by FastDoublingMemo.
var DefaultSparseCache = &SparseCache{}

// Reset discards every entry in c.
func (c *SparseCache) Reset() {
	c.m.Range(func(k, _ interface{}) bool {
		c.m.Delete(k)
		return true
	})
}

func (c *SparseCache) load(n uint) (bignat.Nat, bool) {
	v, ok := c.m.Load(n)
	if !ok {
		return bignat.Nat{}, false
	}
	return v.(bignat.Nat), true
}

func (c *SparseCache) store(n uint, v bignat.Nat) {
	c.m.Store(n, v)
}

// FastDoublingMemo returns F(n) using the package-level sparse cache,
// consulting it before recursing and writing every intermediate F(FI) (both
// k and k+1 at each level) it computes back into the cache.
func FastDoublingMemo(n uint) bignat.Nat {
	fk, _ := memoPair(DefaultSparseCache, n)
	return fk
}

func memoPair(c *SparseCache, k uint) (fk, fk1 bignat.Nat) {
	if fk, ok := c.load(k); ok {
		if fk1, ok := c.load(k + 1); ok {
			return fk, fk1
		}
	}
	if k == 0 {
		fk, fk1 = bignat.Zero, bignat.One
	} else {
		a, b := memoPair(c, k/2)
		twoB := b.Double()
		cc := a.Mul(twoB.Sub(a))
		d := a.Mul(a).Add(b.Mul(b))
		if k%2 == 0 {
			fk, fk1 = cc, d
		} else {
			fk, fk1 = d, cc.Add(d)
		}
	}
	c.store(k, fk)
	c.store(k+1, fk1)
	return fk, fk1
}
