package printer

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gammazero/deque"
	"github.com/olekukonko/ts"

	"keyforge/internal/generator"
)

const maxHistory = 10

// Printer renders the progress screen for a generation run. It is
// driven inline from the write loop: Update is cheap when called more
// often than once per second.
type Printer struct {
	outputFile string
	keyLength  int
	start      uint64
	end        uint64
	total      uint64
	startedAt  time.Time
	lastRender time.Time
	history    *deque.Deque
}

type progressEntry struct {
	written uint64
	percent float64
	rate    float64
	lastKey string
}

func New(outputFile string, keyLength int, start, end, total uint64) *Printer {
	return &Printer{
		outputFile: outputFile,
		keyLength:  keyLength,
		start:      start,
		end:        end,
		total:      total,
		startedAt:  time.Now(),
		history:    &deque.Deque{},
	}
}

// Update records a progress snapshot and redraws the screen at most once
// per second.
func (p *Printer) Update(written uint64, lastKey string) {
	if time.Since(p.lastRender) < time.Second {
		return
	}
	p.lastRender = time.Now()
	elapsed := time.Since(p.startedAt).Seconds()
	entry := progressEntry{
		written: written,
		percent: float64(written) / float64(p.total) * 100,
		lastKey: lastKey,
	}
	if elapsed > 0 {
		entry.rate = float64(written) / elapsed
	}
	p.pushHistory(entry)
	p.render()
}

// Finish draws the final state regardless of throttling.
func (p *Printer) Finish(written uint64, lastKey string) {
	p.pushHistory(progressEntry{
		written: written,
		percent: float64(written) / float64(p.total) * 100,
		lastKey: lastKey,
	})
	p.render()
	fmt.Println()
}

func (p *Printer) pushHistory(entry progressEntry) {
	if p.history.Len() >= maxHistory {
		p.history.PopFront()
	}
	p.history.PushBack(entry)
}

func (p *Printer) render() {
	width := terminalSize()
	clear()

	fmt.Printf("%s\n", color.CyanString(center("  KEYFORGE  ", width-len("  KEYFORGE  "), "#")))
	fmt.Printf(`
	Output: %v
	Range: %v - %v
	Key length: %v
	Keys to generate: %v`,
		p.outputFile,
		generator.FormatKey(p.start, p.keyLength),
		generator.FormatKey(p.end, p.keyLength),
		p.keyLength,
		humanCount(float64(p.total)))
	fmt.Printf("\n\n%s\n\n", center("  PROGRESS  ", width-len("  PROGRESS  "), "#"))

	for i := 0; i < p.history.Len(); i++ {
		entry := p.history.At(i).(progressEntry)
		line := fmt.Sprintf("written: %v (%.2f%%) | rate: %v keys/s | last: %v",
			humanCount(float64(entry.written)), entry.percent, humanCount(entry.rate), entry.lastKey)
		if i == p.history.Len()-1 && entry.rate > 0 {
			remaining := float64(p.total-entry.written) / entry.rate
			line += fmt.Sprintf(" | eta: %v", fmtDuration(time.Duration(remaining)*time.Second))
		}
		fmt.Println(line)
	}
}

func terminalSize() int {
	size, _ := ts.GetSize()
	width := size.Col()
	if width < 40 {
		width = 40
	}
	return width
}

func clear() {
	if runtime.GOOS == "windows" {
		cmd := exec.Command("cmd", "/c", "cls")
		cmd.Stdout = os.Stdout
		cmd.Run()
	} else {
		fmt.Print("\033c")
	}
}

func center(s string, n int, fill string) string {
	div := n / 2
	return strings.Repeat(fill, div) + s + strings.Repeat(fill, div)
}

func humanCount(n float64) string {
	var unitFound string
	for _, unit := range []string{"", "K", "M", "G", "T"} {
		if n < 1000.0 {
			unitFound = unit
			break
		}
		n /= 1000.0
	}
	if unitFound == "" {
		return fmt.Sprintf("%.0f", n)
	}
	return fmt.Sprintf("%.2f%v", n, unitFound)
}

func fmtDuration(d time.Duration) string {
	if d.Seconds() < 0 {
		return fmt.Sprint(0 * time.Second)
	}
	return fmt.Sprint(time.Duration(int(d.Seconds())) * time.Second)
}
