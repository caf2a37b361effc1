package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/scottcagno/hashtable"
	"github.com/scottcagno/hashtable/pkg/hashmap"
	"github.com/scottcagno/hashtable/pkg/hashmap/chained"
	"github.com/scottcagno/hashtable/pkg/hashmap/openaddr"
	"github.com/scottcagno/hashtable/pkg/logger"
)

var (
	table   = flag.String("table", "oa", "table to exercise: oa (open addressing) or sc (separate chaining)")
	hashFn  = flag.String("hash", "", "hash function for every scenario: xxhash, sum or positional (default: per scenario)")
	verbose = flag.Bool("v", false, "log resize events")
)

var override hashmap.HashFunc

func main() {
	flag.Parse()
	if *table != "oa" && *table != "sc" {
		errCheck(fmt.Errorf("unknown table %q", *table))
	}
	if *hashFn != "" {
		fn, err := hashmap.HashFuncByName(*hashFn)
		errCheck(err)
		override = fn
	}
	if *verbose {
		logger.DefaultLogger.SetLevel(logger.LevelDebug)
	} else {
		logger.DefaultLogger.SetLevel(logger.LevelInfo)
	}
	logger.DefaultLogger.Infof("running scenarios against %q table", *table)

	putExamples()
	resizeExamples()
	loadExamples()
	emptyBucketExamples()
	getExamples()
	containsExamples()
	removeExample()
	entriesExample()
	clearExamples()
	iterateExample()
}

func errCheck(err error) {
	if err != nil {
		log.Panicf("got error: %v\n", err)
	}
}

func newTable(capacity int, hash hashmap.HashFunc) hashtable.Map[int] {
	if override != nil {
		hash = override
	}
	conf := &hashmap.Config{
		Capacity: capacity,
		HashFunc: hash,
		Logger:   logger.DefaultLogger,
	}
	if *table == "sc" {
		return chained.NewHashMapWithConfig[int](conf)
	}
	return openaddr.NewHashMapWithConfig[int](conf)
}

func header(title string) {
	fmt.Printf("\n%s\n", title)
	for range title {
		fmt.Print("-")
	}
	fmt.Println()
}

func putExamples() {
	header("put example 1")
	m := newTable(53, hashmap.SumOfCodes)
	for i := 0; i < 150; i++ {
		m.Put("str"+strconv.Itoa(i), i*100)
		if i%25 == 24 {
			fmt.Println(m.EmptyBuckets(), fmt.Sprintf("%.2f", m.PercentFull()), m.Len(), m.Cap())
		}
	}

	header("put example 2")
	m = newTable(41, hashmap.PositionalSum)
	for i := 0; i < 50; i++ {
		m.Put("str"+strconv.Itoa(i/3), i*100)
		if i%10 == 9 {
			fmt.Println(m.EmptyBuckets(), fmt.Sprintf("%.2f", m.PercentFull()), m.Len(), m.Cap())
		}
	}
}

func resizeExamples() {
	header("resize example 1")
	m := newTable(20, hashmap.SumOfCodes)
	m.Put("key1", 10)
	v, _ := m.Get("key1")
	fmt.Println(m.Len(), m.Cap(), v, m.Contains("key1"))
	m.Resize(30)
	v, _ = m.Get("key1")
	fmt.Println(m.Len(), m.Cap(), v, m.Contains("key1"))

	header("resize example 2")
	m = newTable(75, hashmap.PositionalSum)
	var keys []int
	for k := 25; k < 1000; k += 13 {
		keys = append(keys, k)
		m.Put(strconv.Itoa(k), k*42)
	}
	fmt.Println(m.Len(), m.Cap())
	for capacity := 111; capacity < 1000; capacity += 117 {
		m.Resize(capacity)
		m.Put("some key", -1)
		result := m.Contains("some key")
		m.Remove("some key")
		for _, k := range keys {
			result = result && m.Contains(strconv.Itoa(k))
			result = result && !m.Contains(strconv.Itoa(k+1))
		}
		fmt.Println(capacity, result, m.Len(), m.Cap(), fmt.Sprintf("%.2f", m.PercentFull()))
	}
}

func loadExamples() {
	header("load example 1")
	m := newTable(101, hashmap.SumOfCodes)
	fmt.Printf("%.2f\n", m.PercentFull())
	m.Put("key1", 10)
	fmt.Printf("%.2f\n", m.PercentFull())
	m.Put("key2", 20)
	fmt.Printf("%.2f\n", m.PercentFull())
	m.Put("key1", 30)
	fmt.Printf("%.2f\n", m.PercentFull())

	header("load example 2")
	m = newTable(53, hashmap.SumOfCodes)
	for i := 0; i < 50; i++ {
		m.Put("key"+strconv.Itoa(i), i*100)
		if i%10 == 0 {
			fmt.Printf("%.2f %d %d\n", m.PercentFull(), m.Len(), m.Cap())
		}
	}
}

func emptyBucketExamples() {
	header("empty buckets example 1")
	m := newTable(101, hashmap.SumOfCodes)
	fmt.Println(m.EmptyBuckets(), m.Len(), m.Cap())
	for _, kv := range []struct {
		k string
		v int
	}{{"key1", 10}, {"key2", 20}, {"key1", 30}, {"key4", 40}} {
		m.Put(kv.k, kv.v)
		fmt.Println(m.EmptyBuckets(), m.Len(), m.Cap())
	}

	header("empty buckets example 2")
	m = newTable(53, hashmap.SumOfCodes)
	for i := 0; i < 150; i++ {
		m.Put("key"+strconv.Itoa(i), i*100)
		if i%30 == 0 {
			fmt.Println(m.EmptyBuckets(), m.Len(), m.Cap())
		}
	}
}

func getExamples() {
	header("get example 1")
	m := newTable(31, hashmap.SumOfCodes)
	fmt.Println(m.Get("key"))
	m.Put("key1", 10)
	fmt.Println(m.Get("key1"))

	header("get example 2")
	m = newTable(151, hashmap.PositionalSum)
	for i := 200; i < 300; i += 7 {
		m.Put(strconv.Itoa(i), i*10)
	}
	fmt.Println(m.Len(), m.Cap())
	for i := 200; i < 300; i += 21 {
		for _, k := range []int{i, i + 1} {
			v, ok := m.Get(strconv.Itoa(k))
			fmt.Println(k, v, ok, ok && v == k*10)
		}
	}
}

func containsExamples() {
	header("contains example 1")
	m := newTable(11, hashmap.SumOfCodes)
	fmt.Println(m.Contains("key1"))
	m.Put("key1", 10)
	m.Put("key2", 20)
	m.Put("key3", 30)
	fmt.Println(m.Contains("key1"))
	fmt.Println(m.Contains("key4"))
	fmt.Println(m.Contains("key2"))
	fmt.Println(m.Contains("key3"))
	m.Remove("key3")
	fmt.Println(m.Contains("key3"))

	header("contains example 2")
	m = newTable(79, hashmap.PositionalSum)
	var keys []int
	for k := 1; k < 1000; k += 20 {
		keys = append(keys, k)
		m.Put(strconv.Itoa(k), k*42)
	}
	fmt.Println(m.Len(), m.Cap())
	result := true
	for _, k := range keys {
		result = result && m.Contains(strconv.Itoa(k))
		result = result && !m.Contains(strconv.Itoa(k+1))
	}
	fmt.Println(result)
}

func removeExample() {
	header("remove example")
	m := newTable(53, hashmap.SumOfCodes)
	fmt.Println(m.Get("key1"))
	m.Put("key1", 10)
	fmt.Println(m.Get("key1"))
	fmt.Println(m.Remove("key1"))
	fmt.Println(m.Get("key1"))
	fmt.Println(m.Remove("key4"))
}

func entriesExample() {
	header("entries example")
	m := newTable(11, hashmap.PositionalSum)
	for i := 1; i < 6; i++ {
		m.Put(strconv.Itoa(i), i*10)
	}
	fmt.Println(m.Entries())
	m.Resize(2)
	fmt.Println(m.Entries())
	m.Put("20", 200)
	m.Remove("1")
	m.Resize(12)
	fmt.Println(m.Entries())
}

func clearExamples() {
	header("clear example 1")
	m := newTable(101, hashmap.SumOfCodes)
	fmt.Println(m.Len(), m.Cap())
	m.Put("key1", 10)
	m.Put("key2", 20)
	m.Put("key1", 30)
	fmt.Println(m.Len(), m.Cap())
	m.Clear()
	fmt.Println(m.Len(), m.Cap())

	header("clear example 2")
	m = newTable(53, hashmap.SumOfCodes)
	fmt.Println(m.Len(), m.Cap())
	m.Put("key1", 10)
	fmt.Println(m.Len(), m.Cap())
	m.Put("key2", 20)
	fmt.Println(m.Len(), m.Cap())
	m.Resize(100)
	fmt.Println(m.Len(), m.Cap())
	m.Clear()
	fmt.Println(m.Len(), m.Cap())
}

func iterateExample() {
	header("iterate example")
	m := newTable(10, hashmap.PositionalSum)
	for i := 0; i < 5; i++ {
		m.Put(strconv.Itoa(i), i*24)
	}
	m.Remove("0")
	m.Remove("4")
	fmt.Print(m)
	switch t := m.(type) {
	case *openaddr.HashMap[int]:
		// the cursor also walks over tombstones
		for c := t.Cursor(); c.Next(); {
			s := c.Slot()
			fmt.Println("K:", s.Key, "V:", s.Value, "TS:", s.Tombstone)
		}
	case *chained.HashMap[int]:
		t.Range(func(key string, value int) bool {
			fmt.Println("K:", key, "V:", value)
			return true
		})
	}
}
