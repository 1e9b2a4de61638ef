package keywriter

import (
	"bufio"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"keyforge/internal/config"
	"keyforge/internal/generator"
	"keyforge/internal/printer"
)

const (
	writeBufferSize = 1 << 20
	// keys written between progress checks; the printer throttles the
	// actual redraw to once per second.
	progressStride = 1 << 16
)

// KeyWriter enumerates the configured range and streams one key per line
// to the output file. The loop is strictly sequential: the file is
// opened once, written through a buffered writer and closed at the end
// or on the first error.
type KeyWriter struct {
	cfg *config.Config
	log *slog.Logger
}

func New(cfg *config.Config, log *slog.Logger) *KeyWriter {
	return &KeyWriter{cfg: cfg, log: log}
}

// Total returns the number of keys a run will write, after applying the
// num_keys cap.
func (K *KeyWriter) Total() uint64 {
	start, end := K.cfg.Range()
	total := generator.Count(start, end)
	if K.cfg.NumKeys > 0 {
		if K.cfg.NumKeys > total {
			K.log.Warn("num_keys exceeds the range size, clamping",
				"num_keys", K.cfg.NumKeys, "range_size", total)
		} else {
			total = K.cfg.NumKeys
		}
	}
	return total
}

// Run writes the whole key file, overwriting any existing content.
func (K *KeyWriter) Run() error {
	start, _ := K.cfg.Range()
	total := K.Total()

	var prog *printer.Printer
	if !K.cfg.Quiet {
		_, end := K.cfg.Range()
		prog = printer.New(K.cfg.OutputFile, K.cfg.KeyLength, start, end, total)
	}

	K.log.Info("starting generation",
		"output", K.cfg.OutputFile, "key_length", K.cfg.KeyLength, "total", total)

	f, err := os.Create(K.cfg.OutputFile)
	if err != nil {
		return errors.Wrapf(err, "creating output file %s", K.cfg.OutputFile)
	}
	w := bufio.NewWriterSize(f, writeBufferSize)

	buf := make([]byte, 0, K.cfg.KeyLength+1)
	var written uint64
	for v := start; written < total; v++ {
		buf = generator.AppendKey(buf[:0], v, K.cfg.KeyLength)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			f.Close()
			return errors.Wrapf(err, "writing key %d of %d", written+1, total)
		}
		written++
		if prog != nil && written%progressStride == 0 {
			prog.Update(written, generator.FormatKey(v, K.cfg.KeyLength))
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return errors.Wrapf(err, "flushing %s", K.cfg.OutputFile)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", K.cfg.OutputFile)
	}

	if prog != nil {
		prog.Finish(written, generator.FormatKey(start+written-1, K.cfg.KeyLength))
	}
	K.log.Info("generation finished", "keys_written", written)
	return nil
}
