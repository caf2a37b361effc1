// Package hashmaptest holds the checks every hashtable.Map implementation
// has to pass, along with a btree backed reference model.
package hashmaptest

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/scottcagno/hashtable"
	"github.com/scottcagno/hashtable/pkg/hashmap"
	"github.com/scottcagno/hashtable/pkg/prime"
	"github.com/scottcagno/hashtable/pkg/util"
)

// Factory builds an empty table with the requested capacity and hash
type Factory func(capacity int, hash hashmap.HashFunc) hashtable.Map[int]

// 25 words
var Words = []string{
	"reproducibility",
	"eruct",
	"acids",
	"flyspecks",
	"driveshafts",
	"volcanically",
	"discouraging",
	"acapnia",
	"phenazines",
	"hoarser",
	"abusing",
	"samara",
	"thromboses",
	"impolite",
	"drivennesses",
	"tenancy",
	"counterreaction",
	"kilted",
	"linty",
	"kistful",
	"biomarkers",
	"infusiblenesses",
	"capsulate",
	"reflowering",
	"heterophyllies",
}

// SortEntries orders snapshots by key before cmp compares them
var SortEntries = cmpopts.SortSlices(func(a, b hashmap.Entry[int]) bool {
	return a.Key < b.Key
})

// ConstantHash sends every key to the same home bucket
func ConstantHash(string) uint64 {
	return 7
}

// UniqueKeys returns count distinct random keys for seed
func UniqueKeys(seed int64, count int) []string {
	seen := make(map[string]struct{}, count)
	keys := make([]string, 0, count)
	for len(keys) < count {
		for _, k := range util.RandKeys(seed, count, 8) {
			if _, ok := seen[k]; ok || len(keys) == count {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
		seed++
	}
	return keys
}

// Run exercises the behaviour shared by every table. maxLoad is the load
// factor a table must stay under once Put returns.
func Run(t *testing.T, newMap Factory, maxLoad float64) {
	t.Run("Construct", func(t *testing.T) { testConstruct(t, newMap) })
	t.Run("ResizeScenario", func(t *testing.T) { testResizeScenario(t, newMap) })
	t.Run("RoundTrip", func(t *testing.T) { testRoundTrip(t, newMap) })
	t.Run("Remove", func(t *testing.T) { testRemove(t, newMap) })
	t.Run("ResizePreserves", func(t *testing.T) { testResizePreserves(t, newMap) })
	t.Run("LoadCeiling", func(t *testing.T) { testLoadCeiling(t, newMap, maxLoad) })
	t.Run("Clear", func(t *testing.T) { testClear(t, newMap) })
	t.Run("Collisions", func(t *testing.T) { testCollisions(t, newMap) })
	t.Run("EntriesAreCopies", func(t *testing.T) { testEntriesAreCopies(t, newMap) })
	t.Run("Model", func(t *testing.T) { testModel(t, newMap) })
}

func testConstruct(t *testing.T, newMap Factory) {
	cases := []struct {
		in, want int
	}{
		{20, 23},
		{11, 11},
		{2, 3},
		{1, 3},
		{0, 3},
		{-5, 3},
		{53, 53},
	}
	for _, c := range cases {
		m := newMap(c.in, nil)
		util.AssertExpected(t, c.want, m.Cap())
		util.AssertExpected(t, 0, m.Len())
		util.AssertExpected(t, 0.0, m.PercentFull())
		util.AssertExpected(t, c.want, m.EmptyBuckets())
	}
}

func testResizeScenario(t *testing.T, newMap Factory) {
	m := newMap(20, hashmap.SumOfCodes)
	m.Put("key1", 10)
	util.AssertExpected(t, 1, m.Len())
	util.AssertExpected(t, 23, m.Cap())
	util.AssertTrue(t, m.Resize(30))
	util.AssertExpected(t, 1, m.Len())
	util.AssertExpected(t, 31, m.Cap())
	v, ok := m.Get("key1")
	util.AssertTrue(t, ok)
	util.AssertExpected(t, 10, v)
	util.AssertTrue(t, m.Contains("key1"))
}

func testRoundTrip(t *testing.T, newMap Factory) {
	m := newMap(11, hashmap.PositionalSum)
	v, ok := m.Get("missing")
	util.AssertFalse(t, ok)
	util.AssertExpected(t, 0, v)
	for i, w := range Words {
		m.Put(w, i)
	}
	util.AssertExpected(t, len(Words), m.Len())
	for i, w := range Words {
		v, ok := m.Get(w)
		util.AssertTrue(t, ok)
		util.AssertExpected(t, i, v)
	}
	for i, w := range Words {
		m.Put(w, i*100)
		util.AssertExpected(t, len(Words), m.Len())
	}
	for i, w := range Words {
		v, ok := m.Get(w)
		util.AssertTrue(t, ok)
		util.AssertExpected(t, i*100, v)
	}
}

func testRemove(t *testing.T, newMap Factory) {
	m := newMap(53, nil)
	util.AssertFalse(t, m.Remove("key4"))
	util.AssertExpected(t, 0, m.Len())
	for i, w := range Words {
		m.Put(w, i)
	}
	for i, w := range Words {
		size := m.Len()
		util.AssertTrue(t, m.Remove(w))
		util.AssertExpected(t, size-1, m.Len())
		util.AssertFalse(t, m.Contains(w))
		_, ok := m.Get(w)
		util.AssertFalse(t, ok)
		// a second remove is a no-op
		util.AssertFalse(t, m.Remove(w))
		util.AssertExpected(t, size-1, m.Len())
		// everything after it is still there
		for _, rest := range Words[i+1:] {
			util.AssertTrue(t, m.Contains(rest))
		}
	}
	util.AssertExpected(t, 0, m.Len())
	// removed keys can come back
	m.Put(Words[0], 42)
	v, ok := m.Get(Words[0])
	util.AssertTrue(t, ok)
	util.AssertExpected(t, 42, v)
	util.AssertExpected(t, 1, m.Len())
}

func testResizePreserves(t *testing.T, newMap Factory) {
	m := newMap(75, hashmap.PositionalSum)
	var keys []int
	for k := 25; k < 1000; k += 13 {
		keys = append(keys, k)
		m.Put(strconv.Itoa(k), k*42)
	}
	// drop every fourth key so the table carries some history
	for i := 0; i < len(keys); i += 4 {
		util.AssertTrue(t, m.Remove(strconv.Itoa(keys[i])))
	}
	size := m.Len()
	for _, capacity := range []int{size, size + 1, 2 * size, 111, 228, 345, 997} {
		util.AssertTrue(t, m.Resize(capacity))
		util.AssertTrue(t, prime.IsPrime(m.Cap()))
		util.AssertExpected(t, size, m.Len())
		for i, k := range keys {
			v, ok := m.Get(strconv.Itoa(k))
			if i%4 == 0 {
				util.AssertFalse(t, ok)
				continue
			}
			util.AssertTrue(t, ok)
			util.AssertExpected(t, k*42, v)
			util.AssertFalse(t, m.Contains(strconv.Itoa(k+1)))
		}
	}
}

func testLoadCeiling(t *testing.T, newMap Factory, maxLoad float64) {
	for n, hash := range []hashmap.HashFunc{nil, hashmap.SumOfCodes, hashmap.PositionalSum} {
		m := newMap(3, hash)
		for i, k := range UniqueKeys(int64(n+1), 500) {
			m.Put(k, i)
			util.AssertWithin(t, 0, maxLoad, m.PercentFull())
			util.AssertTrue(t, prime.IsPrime(m.Cap()))
		}
		util.AssertExpected(t, 500, m.Len())
	}
	// repeated keys never push the load up
	m := newMap(41, hashmap.PositionalSum)
	for i := 0; i < 50; i++ {
		m.Put("str"+strconv.Itoa(i/3), i*100)
		util.AssertWithin(t, 0, maxLoad, m.PercentFull())
	}
	util.AssertExpected(t, 17, m.Len())
}

func testClear(t *testing.T, newMap Factory) {
	m := newMap(11, nil)
	for i, w := range Words {
		m.Put(w, i)
	}
	capacity := m.Cap()
	for n := 0; n < 2; n++ {
		m.Clear()
		util.AssertExpected(t, 0, m.Len())
		util.AssertExpected(t, capacity, m.Cap())
		util.AssertExpected(t, capacity, m.EmptyBuckets())
		util.AssertExpected(t, 0, len(m.Entries()))
		for _, w := range Words {
			util.AssertFalse(t, m.Contains(w))
			_, ok := m.Get(w)
			util.AssertFalse(t, ok)
		}
	}
	m.Put("key1", 10)
	v, ok := m.Get("key1")
	util.AssertTrue(t, ok)
	util.AssertExpected(t, 10, v)
}

func testCollisions(t *testing.T, newMap Factory) {
	m := newMap(11, ConstantHash)
	keys := UniqueKeys(99, 40)
	for i, k := range keys {
		m.Put(k, i)
	}
	util.AssertExpected(t, len(keys), m.Len())
	for i, k := range keys {
		if i%2 == 0 {
			util.AssertTrue(t, m.Remove(k))
		}
	}
	for i, k := range keys {
		v, ok := m.Get(k)
		if i%2 == 0 {
			util.AssertFalse(t, ok)
			continue
		}
		util.AssertTrue(t, ok)
		util.AssertExpected(t, i, v)
	}
	util.AssertExpected(t, len(keys)/2, m.Len())
}

func testEntriesAreCopies(t *testing.T, newMap Factory) {
	m := newMap(11, hashmap.PositionalSum)
	want := make([]hashmap.Entry[int], 0, 5)
	for i := 1; i < 6; i++ {
		m.Put(strconv.Itoa(i), i*10)
		want = append(want, hashmap.Entry[int]{Key: strconv.Itoa(i), Value: i * 10})
	}
	got := m.Entries()
	if diff := cmp.Diff(want, got, SortEntries); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
	for i := range got {
		got[i].Value = -1
	}
	v, _ := m.Get("1")
	util.AssertExpected(t, 10, v)
}

// testModel runs a seeded random workload against the table and the btree
// model side by side. Live keys are only overwritten before any removal, so
// the open addressing tombstone takeover never leaves a duplicate behind.
func testModel(t *testing.T, newMap Factory) {
	m := newMap(7, nil)
	model := NewModel[int]()
	keys := UniqueKeys(2024, 300)

	for i := 0; i < 2000; i++ {
		k := keys[(i*7919)%len(keys)]
		m.Put(k, i)
		model.Put(k, i)
	}
	check := func(step string) {
		t.Helper()
		util.AssertExpected(t, model.Len(), m.Len())
		if diff := cmp.Diff(model.Entries(), m.Entries(), SortEntries); diff != "" {
			t.Fatalf("%s: Entries() mismatch (-model +table):\n%s", step, diff)
		}
	}
	check("overwrite phase")

	for i := 0; i < 3000; i++ {
		k := keys[(i*104729+i/3)%len(keys)]
		switch i % 3 {
		case 0:
			util.AssertExpected(t, model.Remove(k), m.Remove(k))
		case 1:
			if _, ok := model.Get(k); !ok {
				model.Put(k, i)
				m.Put(k, i)
			}
		case 2:
			want, wok := model.Get(k)
			got, gok := m.Get(k)
			util.AssertExpected(t, wok, gok)
			util.AssertExpected(t, want, got)
			util.AssertExpected(t, wok, m.Contains(k))
		}
	}
	check("mixed phase")

	m.Clear()
	model.Clear()
	check("clear")
}
