package debug

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Debug levels
const (
	LevelOff     = 0 // No output
	LevelInfo    = 1 // Important info (chip ID, selected mode)
	LevelLive    = 2 // Live info (setter calls, focus results)
	LevelVerbose = 3 // Verbose (table sizes, poll attempts, steps)
	LevelTrace   = 4 // Trace (every register access, GPIO lines)
)

var (
	mu     sync.Mutex
	level  int
	out    io.Writer = os.Stdout
	logger *log.Logger
)

// Init initializes the debug system with a level (0-4).
// 0 = no output
// 1 = important info (chip ID, resolution, pixel format)
// 2 = live info (setters applied, focus results)
// 3 = verbose (table playback, poll sessions, bring-up steps)
// 4 = trace (register reads/writes, GPIO)
func Init(debugLevel int) {
	mu.Lock()
	defer mu.Unlock()
	level = debugLevel
	logger = nil
	if level > LevelOff {
		logger = log.New(out, "[ov5640] ", log.LstdFlags|log.Lmicroseconds)
	}
}

// SetOutput redirects debug output. Takes effect immediately if logging is enabled.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	if logger != nil {
		logger.SetOutput(w)
	}
}

// Level returns the current debug level.
func Level() int {
	mu.Lock()
	defer mu.Unlock()
	return level
}

// IsEnabled returns true if debug level is >= the requested level.
func IsEnabled(minLevel int) bool {
	return Level() >= minLevel
}

func emit(minLevel int, format string, args ...interface{}) {
	mu.Lock()
	l := logger
	enabled := level >= minLevel
	mu.Unlock()
	if enabled && l != nil {
		l.Printf(format, args...)
	}
}

// --- Level 1 functions (Info) ---

// Info prints a level 1 message.
func Info(format string, args ...interface{}) {
	emit(LevelInfo, "[INFO] "+format, args...)
}

// Value prints a named value (level 1).
func Value(name string, value interface{}) {
	emit(LevelInfo, "[INFO]   %s = %v", name, value)
}

// Summary prints a framed title (level 1).
func Summary(title string) {
	emit(LevelInfo, "═══════════════════════════════════════")
	emit(LevelInfo, "  %s", title)
	emit(LevelInfo, "═══════════════════════════════════════")
}

// --- Level 2 functions (Live) ---

// Live prints a level 2 message.
func Live(format string, args ...interface{}) {
	emit(LevelLive, "[LIVE] "+format, args...)
}

// Setting prints an applied sensor setting (level 2).
func Setting(name string, value interface{}) {
	emit(LevelLive, "[LIVE] %s -> %v", name, value)
}

// --- Level 3 functions (Verbose) ---

// Verbose prints a level 3 message.
func Verbose(format string, args ...interface{}) {
	emit(LevelVerbose, "[VERBOSE] "+format, args...)
}

// Printf is an alias for Verbose.
func Printf(format string, args ...interface{}) {
	Verbose(format, args...)
}

// PrintStruct prints a struct in formatted form (level 3).
func PrintStruct(name string, v interface{}) {
	emit(LevelVerbose, "[VERBOSE] %s: %+v", name, v)
}

// Section prints a section separator (level 3).
func Section(name string) {
	emit(LevelVerbose, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	emit(LevelVerbose, "  %s", name)
	emit(LevelVerbose, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
}

// Step prints a numbered step (level 3).
func Step(num int, description string) {
	emit(LevelVerbose, "[VERBOSE] Step %d: %s", num, description)
}

// --- Level 4 functions (Trace) ---

// Trace prints a level 4 message.
func Trace(format string, args ...interface{}) {
	emit(LevelTrace, "[TRACE] "+format, args...)
}

// Reg prints a register access (level 4).
func Reg(op string, reg uint16, data []byte) {
	emit(LevelTrace, "[SCCB] %s reg=0x%04X data=% X", op, reg, data)
}

// Pin prints a GPIO operation (level 4).
func Pin(operation string, pin int, value interface{}) {
	emit(LevelTrace, "[GPIO] %s pin=%d value=%v", operation, pin, value)
}

// --- General functions ---

// Error prints a debug error (level 1+).
func Error(err error) {
	emit(LevelInfo, "[ERROR] %v", err)
}

// Fmt returns a formatted string only if debug is enabled.
func Fmt(format string, args ...interface{}) string {
	if Level() > 0 {
		return fmt.Sprintf(format, args...)
	}
	return ""
}
