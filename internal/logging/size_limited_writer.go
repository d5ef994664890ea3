package logging

import (
	"os"
	"sync"
)

// sizeLimitedWriter appends to a log file and truncates it once the next
// write would push it past the size cap. Crude rotation, but it bounds disk
// use without another dependency.
type sizeLimitedWriter struct {
	path     string
	maxBytes int64

	mu   sync.Mutex
	file *os.File
	size int64
}

func newSizeLimitedWriter(path string, maxMB int) (*sizeLimitedWriter, error) {
	if maxMB <= 0 {
		maxMB = 10
	}
	w := &sizeLimitedWriter{path: path, maxBytes: int64(maxMB) * 1024 * 1024}
	if err := w.open(os.O_CREATE | os.O_APPEND | os.O_WRONLY); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *sizeLimitedWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		if err := w.open(os.O_CREATE | os.O_APPEND | os.O_WRONLY); err != nil {
			return 0, err
		}
	}
	if w.size+int64(len(p)) > w.maxBytes {
		if w.file != nil {
			_ = w.file.Close()
			w.file = nil
		}
		if err := w.open(os.O_CREATE | os.O_TRUNC | os.O_WRONLY); err != nil {
			return 0, err
		}
	}
	n, err := w.file.Write(p)
	w.size += int64(n)
	return n, err
}

func (w *sizeLimitedWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}

func (w *sizeLimitedWriter) open(flags int) error {
	f, err := os.OpenFile(w.path, flags, 0o644)
	if err != nil {
		return err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return err
	}
	w.file = f
	w.size = info.Size()
	return nil
}
