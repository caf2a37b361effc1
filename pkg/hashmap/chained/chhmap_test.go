package chained

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scottcagno/hashtable"
	"github.com/scottcagno/hashtable/pkg/hashmap"
	"github.com/scottcagno/hashtable/pkg/hashmap/hashmaptest"
	"github.com/scottcagno/hashtable/pkg/logger"
	"github.com/scottcagno/hashtable/pkg/util"
)

var _ hashtable.Map[int] = (*HashMap[int])(nil)

func newIntMap(capacity int, hash hashmap.HashFunc) hashtable.Map[int] {
	return NewHashMap[int](capacity, hash)
}

func TestHashMap_Contract(t *testing.T) {
	hashmaptest.Run(t, newIntMap, MaxLoadFactor)
}

func TestNewHashMap(t *testing.T) {
	hm := NewHashMap[[]byte](128, nil)
	util.AssertExpected(t, 0, hm.Len())
	util.AssertExpected(t, 131, hm.Cap())
	hm.Put("0", nil)
	util.AssertExpected(t, 1, hm.Len())
	for i := 1; i < 5; i++ {
		hm.Put(strconv.Itoa(i), nil)
	}
	util.AssertExpected(t, 5, hm.Len())
}

func TestNewHashMapWithConfig(t *testing.T) {
	hm := NewHashMapWithConfig[int](nil)
	util.AssertExpected(t, hashmap.DefaultCapacity, hm.Cap())
	hm = NewHashMapWithConfig[int](&hashmap.Config{Capacity: 30})
	util.AssertExpected(t, 31, hm.Cap())
}

func Test_bucket_insert(t *testing.T) {
	b := newBucket[[]byte]()
	b.insert("1", []byte("1"))
	b.insert("2", []byte("2"))
	b.insert("3", []byte("3"))
	util.AssertExpected(t, 3, b.len())

	// new nodes go to the head
	var keys []string
	b.scan(func(n *entryNode[[]byte]) bool {
		keys = append(keys, n.key)
		return true
	})
	util.AssertExpected(t, []string{"3", "2", "1"}, keys)
}

func Test_bucket_search(t *testing.T) {
	b := newBucket[[]byte]()
	for i := 1; i <= 5; i++ {
		b.insert(strconv.Itoa(i), []byte(strconv.Itoa(i)))
	}
	for _, k := range []string{"3", "1", "5", "2", "4"} {
		n, ok := b.search(k)
		util.AssertExpected(t, true, ok)
		util.AssertExpected(t, []byte(k), n.val)
	}
	n, ok := b.search("6")
	util.AssertExpected(t, false, ok)
	util.AssertNil(t, n)
}

func Test_bucket_delete(t *testing.T) {
	b := newBucket[[]byte]()
	for i := 1; i <= 5; i++ {
		b.insert(strconv.Itoa(i), []byte(strconv.Itoa(i)))
	}
	// list is 5 -> 4 -> 3 -> 2 -> 1
	util.AssertExpected(t, true, b.delete("3")) // middle
	util.AssertExpected(t, true, b.delete("5")) // head
	util.AssertExpected(t, true, b.delete("1")) // tail
	util.AssertExpected(t, false, b.delete("1"))
	util.AssertExpected(t, false, b.delete("9"))
	util.AssertExpected(t, 2, b.len())
	util.AssertExpected(t, "(4: [52]) -> (2: [50])", b.String())

	util.AssertExpected(t, true, b.delete("4"))
	util.AssertExpected(t, true, b.delete("2"))
	util.AssertExpected(t, 0, b.len())
	util.AssertExpected(t, "", b.String())
	util.AssertExpected(t, false, b.delete("2"))
}

func Test_bucket_scan(t *testing.T) {
	b := newBucket[int]()
	for i := 0; i < 5; i++ {
		b.insert(strconv.Itoa(i), i)
	}
	var count int
	b.scan(func(n *entryNode[int]) bool {
		count++
		return n.val > 2
	})
	// 4, 3, then stops on 2
	util.AssertExpected(t, 3, count)
}

func TestHashMap_ChainOrder(t *testing.T) {
	hm := NewHashMap[int](11, hashmaptest.ConstantHash)
	hm.Put("a", 1)
	hm.Put("b", 2)
	hm.Put("c", 3)
	util.AssertExpected(t, 10, hm.EmptyBuckets())

	want := []hashmap.Entry[int]{{Key: "c", Value: 3}, {Key: "b", Value: 2}, {Key: "a", Value: 1}}
	if diff := cmp.Diff(want, hm.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
	util.AssertExpected(t, "7: (c: 3) -> (b: 2) -> (a: 1)", strings.Split(hm.String(), "\n")[7])

	// overwriting keeps the node where it is
	hm.Put("a", 10)
	util.AssertExpected(t, 3, hm.Len())
	util.AssertExpected(t, "7: (c: 3) -> (b: 2) -> (a: 10)", strings.Split(hm.String(), "\n")[7])

	util.AssertTrue(t, hm.Remove("b"))
	util.AssertExpected(t, "7: (c: 3) -> (a: 10)", strings.Split(hm.String(), "\n")[7])
	util.AssertTrue(t, hm.Remove("a"))
	util.AssertTrue(t, hm.Remove("c"))
	util.AssertExpected(t, 11, hm.EmptyBuckets())
	util.AssertExpected(t, 0, hm.Len())
}

func TestHashMap_ResizeBelowCount(t *testing.T) {
	hm := NewHashMap[int](53, nil)
	for i, w := range hashmaptest.Words {
		hm.Put(w, i)
	}
	util.AssertFalse(t, hm.Resize(0))
	util.AssertFalse(t, hm.Resize(-3))
	util.AssertExpected(t, 53, hm.Cap())

	// going below the entry count is allowed, the table regrows as the
	// entries go back in
	util.AssertTrue(t, hm.Resize(1))
	util.AssertWithin(t, 0, MaxLoadFactor, hm.PercentFull())
	util.AssertExpected(t, len(hashmaptest.Words), hm.Len())
	for i, w := range hashmaptest.Words {
		v, ok := hm.Get(w)
		util.AssertTrue(t, ok)
		util.AssertExpected(t, i, v)
	}

	util.AssertTrue(t, hm.Resize(2))
	util.AssertExpected(t, len(hashmaptest.Words), hm.Len())

	empty := NewHashMap[int](53, nil)
	util.AssertTrue(t, empty.Resize(2))
	util.AssertExpected(t, 2, empty.Cap())
	util.AssertTrue(t, empty.Resize(1))
	util.AssertExpected(t, 3, empty.Cap())
}

func TestHashMap_EmptyBuckets(t *testing.T) {
	hm := NewHashMap[int](101, hashmap.SumOfCodes)
	util.AssertExpected(t, 101, hm.EmptyBuckets())
	hm.Put("key1", 10)
	util.AssertExpected(t, 100, hm.EmptyBuckets())
	hm.Put("key2", 20)
	util.AssertExpected(t, 99, hm.EmptyBuckets())
	hm.Put("key1", 30)
	util.AssertExpected(t, 99, hm.EmptyBuckets())
	hm.Put("key4", 40)
	util.AssertExpected(t, 98, hm.EmptyBuckets())
	hm.Remove("key2")
	util.AssertExpected(t, 99, hm.EmptyBuckets())

	// non-empty buckets never outnumber the entries
	hm = NewHashMap[int](53, hashmap.SumOfCodes)
	for i := 0; i < 150; i++ {
		hm.Put("key"+strconv.Itoa(i), i*100)
		if hm.Cap()-hm.EmptyBuckets() > hm.Len() {
			t.Fatalf("%d non-empty buckets for %d entries", hm.Cap()-hm.EmptyBuckets(), hm.Len())
		}
	}
}

func TestHashMap_ResizeLogging(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewLogger()
	l.SetOutput(&buf)
	l.SetLevel(logger.LevelDebug)
	hm := NewHashMapWithConfig[int](&hashmap.Config{Capacity: 3, Logger: l})
	hm.Put("k1", 1)
	hm.Put("k2", 2)
	util.AssertExpected(t, 0, buf.Len())
	hm.Put("k3", 3)
	util.AssertExpected(t, 7, hm.Cap())
	util.AssertTrue(t, strings.Contains(buf.String(), "chained: resized from 3 to 7 buckets (3 entries)"))
}

func TestHashMap_Range(t *testing.T) {
	hm := NewHashMap[[]byte](128, nil)
	for i := 0; i < len(hashmaptest.Words); i++ {
		hm.Put(hashmaptest.Words[i], []byte{0x69})
	}
	util.AssertExpected(t, 25, hm.Len())
	var counted int
	hm.Range(func(key string, value []byte) bool {
		if key != "" && bytes.Equal(value, []byte{0x69}) {
			counted++
			return true
		}
		return false
	})
	util.AssertExpected(t, 25, counted)

	counted = 0
	hm.Range(func(key string, value []byte) bool {
		counted++
		return counted < 3
	})
	util.AssertExpected(t, 3, counted)
}

func TestHashMap_String(t *testing.T) {
	hm := NewHashMap[int](3, hashmaptest.ConstantHash)
	util.AssertExpected(t, "0: \n1: \n2: \n", hm.String())
	hm.Put("a", 1)
	util.AssertExpected(t, "0: \n1: (a: 1)\n2: \n", hm.String())
}

var result interface{}

func BenchmarkHashMap_Put(b *testing.B) {
	keys := hashmaptest.UniqueKeys(1, 4096)
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		hm := NewHashMap[int](16, nil)
		for i, k := range keys {
			hm.Put(k, i)
		}
		result = hm
	}
}

func BenchmarkHashMap_Get(b *testing.B) {
	keys := hashmaptest.UniqueKeys(1, 4096)
	hm := NewHashMap[int](16, nil)
	for i, k := range keys {
		hm.Put(k, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	var v int
	for n := 0; n < b.N; n++ {
		v, _ = hm.Get(keys[n%len(keys)])
	}
	result = v
}
