package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ANSI colors used for human readable output
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorCyan   = "\033[36m"
	ColorBold   = "\033[1m"
)

var titleCaser = cases.Title(language.English)

func printSection(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s%s=== %s ===%s\n", ColorBold, ColorBlue, strings.ToUpper(title), ColorReset)
}

func printSubsection(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s--- %s ---%s\n", ColorCyan, titleCaser.String(title), ColorReset)
}

func printKeyValue(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "  %-22s %v\n", titleCaser.String(strings.ReplaceAll(key, "_", " "))+":", value)
}

func printResult(w io.Writer, ok bool, message string) {
	if ok {
		fmt.Fprintf(w, "%s✓ %s%s\n", ColorGreen, message, ColorReset)
		return
	}
	fmt.Fprintf(w, "%s✗ %s%s\n", ColorRed, message, ColorReset)
}

// PerformanceTimer measures named checkpoints of a command
type PerformanceTimer struct {
	start       time.Time
	last        time.Time
	checkpoints []checkpoint
}

type checkpoint struct {
	name    string
	elapsed time.Duration
}

// NewPerformanceTimer starts a timer
func NewPerformanceTimer() *PerformanceTimer {
	now := time.Now()
	return &PerformanceTimer{start: now, last: now}
}

// Checkpoint records the time since the previous checkpoint
func (pt *PerformanceTimer) Checkpoint(name string) time.Duration {
	now := time.Now()
	elapsed := now.Sub(pt.last)
	pt.last = now
	pt.checkpoints = append(pt.checkpoints, checkpoint{name: name, elapsed: elapsed})
	return elapsed
}

// Total returns the time since the timer started
func (pt *PerformanceTimer) Total() time.Duration {
	return time.Since(pt.start)
}

// Print writes every checkpoint followed by the total
func (pt *PerformanceTimer) Print(w io.Writer) {
	printSubsection(w, "timing")
	for _, cp := range pt.checkpoints {
		printKeyValue(w, cp.name, cp.elapsed.Round(time.Microsecond))
	}
	printKeyValue(w, "total", pt.Total().Round(time.Microsecond))
}
