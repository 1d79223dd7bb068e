package logger

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level controls which messages are emitted.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var (
	mu       sync.Mutex
	minLevel = INFO
	out      = os.Stderr
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "?"
	}
}

// SetLevel sets the minimum level that will be emitted.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = l
}

func emit(l Level, component, msg string, fields map[string]any) {
	mu.Lock()
	defer mu.Unlock()
	if l < minLevel {
		return
	}

	var b strings.Builder
	b.WriteString(time.Now().Format("2006-01-02 15:04:05.000"))
	b.WriteString(" ")
	b.WriteString(l.String())
	b.WriteString(" [")
	b.WriteString(component)
	b.WriteString("] ")
	b.WriteString(msg)

	if len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, fields[k])
		}
	}
	b.WriteString("\n")

	fmt.Fprint(out, b.String())
}

func DebugC(component, msg string) { emit(DEBUG, component, msg, nil) }
func InfoC(component, msg string)  { emit(INFO, component, msg, nil) }
func WarnC(component, msg string)  { emit(WARN, component, msg, nil) }
func ErrorC(component, msg string) { emit(ERROR, component, msg, nil) }

func DebugCF(component, msg string, fields map[string]any) { emit(DEBUG, component, msg, fields) }
func InfoCF(component, msg string, fields map[string]any)  { emit(INFO, component, msg, fields) }
func WarnCF(component, msg string, fields map[string]any)  { emit(WARN, component, msg, fields) }
func ErrorCF(component, msg string, fields map[string]any) { emit(ERROR, component, msg, fields) }
