package logger

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

const (
	White = iota
	Black = iota + 30
	Red
	Green
	Yellow
	Blue
	Purple
	Cyan
	Grey
)

// Level is the severity of a log line. Lines below the logger's
// threshold are dropped.
type Level int

const (
	LevelDefault Level = iota
	LevelTrace
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
	LevelPanic
	LevelOff
)

const (
	color = iota
	prefix
)

var colors = map[int]string{
	White:  "\033[0m",
	Black:  "\033[30m",
	Red:    "\033[31m",
	Green:  "\033[32m",
	Yellow: "\033[33m",
	Blue:   "\033[34m",
	Purple: "\033[35m",
	Cyan:   "\033[36m",
	Grey:   "\033[37m",
}

var levels = map[Level][2]string{
	LevelTrace:   {colors[Grey], "TRCE"},
	LevelDebug:   {colors[Grey], "DBUG"},
	LevelInfo:    {colors[Blue], "INFO"},
	LevelWarn:    {colors[Yellow], "WARN"},
	LevelError:   {colors[Red], "EROR"},
	LevelFatal:   {colors[Red], "FATL"},
	LevelPanic:   {colors[Red], "PANC"},
	LevelDefault: {colors[White], "NORM"},
}

var DefaultLogger = NewLogger()

type Logger struct {
	lock      sync.Mutex    // sync
	log       *log.Logger   // actual logger
	buf       *bytes.Buffer // buffer
	level     Level         // minimum level written
	printFunc bool
	printFile bool
	dep       int // call depth
}

func NewLogger() *Logger {
	l := &Logger{
		log: log.New(os.Stderr, "", log.LstdFlags),
		buf: new(bytes.Buffer),
		dep: 5,
	}
	return l
}

func (l *Logger) logInternal(level Level, depth int, format string, args ...interface{}) {
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.level == LevelOff || (level != LevelDefault && level < l.level) {
		return
	}
	levelInfo, ok := levels[level]
	if !ok {
		levelInfo = levels[LevelDefault]
	}
	l.buf.Reset()
	l.buf.WriteString("| ")
	l.buf.WriteString(levelInfo[color])
	l.buf.WriteString(levelInfo[prefix])
	l.buf.WriteString(colors[White])
	l.buf.WriteString(" | ")
	if l.printFunc || l.printFile {
		if level == LevelFatal {
			depth += 1
		}
		if level != LevelPanic {
			fn, file := trace(depth)
			if l.printFunc {
				l.buf.WriteByte('[')
				l.buf.WriteString(funcName(fn))
				l.buf.WriteByte(']')
			}
			if l.printFunc && l.printFile {
				l.buf.WriteByte(' ')
			}
			if l.printFile {
				l.buf.WriteString(file)
			}
			l.buf.WriteString(" - ")
		}
	}
	l.buf.WriteString(format)
	if len(args) == 0 {
		l.log.Print(l.buf.String())
		return
	}
	l.log.Printf(l.buf.String(), args...)
}

func (l *Logger) SetPrefix(prefix string) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.log.SetPrefix(prefix)
}

// SetOutput redirects the logger, mostly so tests can capture it
func (l *Logger) SetOutput(w io.Writer) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.log.SetOutput(w)
}

// SetLevel sets the minimum level that gets written. Print and Printf
// always write unless the level is LevelOff, which silences everything.
func (l *Logger) SetLevel(level Level) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.level = level
}

func (l *Logger) SetPrintFunc(ok bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.printFunc = ok
}

func (l *Logger) SetPrintFile(ok bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.printFile = ok
}

func (l *Logger) SetCallDepth(depth int) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.dep = depth
}

func (l *Logger) Trace(message string) {
	l.logInternal(LevelTrace, l.dep, message)
}

func (l *Logger) Tracef(format string, args ...interface{}) {
	l.logInternal(LevelTrace, l.dep, format, args...)
}

func (l *Logger) Debug(message string) {
	l.logInternal(LevelDebug, l.dep, message)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logInternal(LevelDebug, l.dep, format, args...)
}

func (l *Logger) Info(message string) {
	l.logInternal(LevelInfo, l.dep, message)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.logInternal(LevelInfo, l.dep, format, args...)
}

func (l *Logger) Warn(message string) {
	l.logInternal(LevelWarn, l.dep, message)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logInternal(LevelWarn, l.dep, format, args...)
}

func (l *Logger) Error(message string) {
	l.logInternal(LevelError, l.dep, message)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logInternal(LevelError, l.dep, format, args...)
}

func (l *Logger) Fatal(message string) {
	l.logInternal(LevelFatal, l.dep, message)
	os.Exit(1)
}

func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logInternal(LevelFatal, l.dep, format, args...)
	os.Exit(1)
}

func (l *Logger) Panic(message string) {
	l.logInternal(LevelPanic, l.dep, message)
	panic(message)
}

func (l *Logger) Panicf(format string, args ...interface{}) {
	l.logInternal(LevelPanic, l.dep, format, args...)
	panic(fmt.Sprintf(format, args...))
}

func (l *Logger) Print(message string) {
	l.logInternal(LevelDefault, l.dep, message)
}

func (l *Logger) Printf(format string, args ...interface{}) {
	l.logInternal(LevelDefault, l.dep, format, args...)
}

// funcName strips the package path off a runtime function name
func funcName(fn string) string {
	if i := strings.LastIndexByte(fn, '.'); i >= 0 {
		return fn[i+1:]
	}
	return fn
}

func trace(calldepth int) (string, string) {
	pc := make([]uintptr, 10) // at least 1 entry needed
	runtime.Callers(calldepth, pc)
	fn := runtime.FuncForPC(pc[0])
	if fn == nil {
		return "???", "???:0"
	}
	file, line := fn.FileLine(pc[0])
	return filepath.Base(fn.Name()), fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
