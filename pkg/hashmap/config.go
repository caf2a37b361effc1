package hashmap

import (
	"strconv"
	"strings"

	"github.com/scottcagno/hashtable/pkg/logger"
)

const (
	// DefaultCapacity is the requested capacity used when a Config leaves
	// it unset. It is already prime.
	DefaultCapacity = 11

	// hash function names accepted by HashFuncByName
	HashXX         = "xxhash"
	HashSum        = "sum"
	HashPositional = "positional"
)

// Config holds the settings a table is built from
type Config struct {
	Capacity int            // requested initial capacity, promoted to a prime
	HashFunc HashFunc       // key hash, DefaultHashFunc when nil
	Logger   *logger.Logger // resize events are logged at debug level; nil is silent
}

func (conf *Config) String() string {
	var sb strings.Builder
	sb.WriteString("Capacity: ")
	sb.WriteString(strconv.Itoa(conf.Capacity))
	sb.WriteString("\n")
	sb.WriteString("HashFunc: ")
	if conf.HashFunc == nil {
		sb.WriteString("default")
	} else {
		sb.WriteString("custom")
	}
	sb.WriteString("\n")
	sb.WriteString("Logger: ")
	if conf.Logger == nil {
		sb.WriteString("off")
	} else {
		sb.WriteString("on")
	}
	return sb.String()
}

// CheckConfig returns a copy of conf with any missing options filled in.
// A nil conf yields the defaults.
func CheckConfig(conf *Config) *Config {
	if conf == nil {
		return &Config{
			Capacity: DefaultCapacity,
			HashFunc: DefaultHashFunc,
		}
	}
	c := *conf
	if c.Capacity <= 0 {
		c.Capacity = DefaultCapacity
	}
	if c.HashFunc == nil {
		c.HashFunc = DefaultHashFunc
	}
	return &c
}

// HashFuncByName looks up one of the built in hash functions
func HashFuncByName(name string) (HashFunc, error) {
	switch strings.ToLower(name) {
	case "", HashXX:
		return DefaultHashFunc, nil
	case HashSum:
		return SumOfCodes, nil
	case HashPositional:
		return PositionalSum, nil
	}
	return nil, ErrUnknownHashFunc
}
