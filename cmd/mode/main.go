package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/scottcagno/hashtable/pkg/hashmap"
	"github.com/scottcagno/hashtable/pkg/mode"
)

var hashFn = flag.String("hash", hashmap.HashXX, "hash function for the counting table: xxhash, sum or positional")

func main() {
	flag.Parse()

	fn, err := hashmap.HashFuncByName(*hashFn)
	errCheck(err)

	tokens := flag.Args()
	if len(tokens) == 0 {
		tokens, err = readTokens(os.Stdin)
		errCheck(err)
	}

	modes, freq := mode.FindWithConfig(tokens, &hashmap.Config{HashFunc: fn})
	fmt.Printf("Input: %v\nMode : %v, Frequency: %d\n", tokens, modes, freq)
}

func errCheck(err error) {
	if err != nil {
		log.Panicf("got error: %v\n", err)
	}
}

// readTokens splits r into whitespace separated tokens
func readTokens(r io.Reader) ([]string, error) {
	var tokens []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading tokens: %w", err)
	}
	return tokens, nil
}
