package printer

import (
	"fmt"
	"testing"
	"time"
)

func TestHumanCount(T *testing.T) {
	data := []struct {
		in  float64
		out string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.00K"},
		{1536, "1.54K"},
		{1048576, "1.05M"},
		{281474976710656, "281.47T"},
	}
	for idx, td := range data {
		T.Run(fmt.Sprint(idx), func(t *testing.T) {
			got := humanCount(td.in)
			if got != td.out {
				t.Errorf("got %q, want %q", got, td.out)
			}
		})
	}
}

func TestFmtDuration(T *testing.T) {
	data := []struct {
		in  time.Duration
		out string
	}{
		{-5 * time.Second, "0s"},
		{90 * time.Second, "1m30s"},
		{3750 * time.Millisecond, "3s"},
		{26 * time.Hour, "26h0m0s"},
	}
	for idx, td := range data {
		T.Run(fmt.Sprint(idx), func(t *testing.T) {
			got := fmtDuration(td.in)
			if got != td.out {
				t.Errorf("got %q, want %q", got, td.out)
			}
		})
	}
}

func TestCenter(t *testing.T) {
	got := center("ab", 4, "#")
	if got != "##ab##" {
		t.Errorf("got %q, want %q", got, "##ab##")
	}
}

func TestPushHistoryBounded(t *testing.T) {
	p := New("keys.txt", 12, 0, 0xFFFF, 0x10000)
	for i := 0; i < maxHistory+5; i++ {
		p.pushHistory(progressEntry{written: uint64(i)})
	}
	if p.history.Len() != maxHistory {
		t.Errorf("history length: got %d, want %d", p.history.Len(), maxHistory)
	}
	oldest := p.history.At(0).(progressEntry)
	if oldest.written != 5 {
		t.Errorf("oldest entry: got %d, want 5", oldest.written)
	}
}
