// Package audit implements the append-only checkout audit trail.
package audit

import (
	"fmt"
	"os"
	"sync"

	"github.com/fairyhunter13/pos-checkout-service/internal/obs"
)

// Log appends one line per completed checkout to a plain-text file.
//
// The backing file is opened lazily on the first Log call and in append
// mode, so the trail accumulates across process runs. If the open fails,
// Log degrades to a no-op: a missing audit trail must never abort a
// checkout. Close releases the file exactly once; the handle is built in
// main and passed to the checkout service explicitly rather than looked
// up from a global.
type Log struct {
	path string
	once sync.Once
	f    *os.File
}

// New returns a Log that will write to path.
func New(path string) *Log {
	return &Log{path: path}
}

func (l *Log) open() {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		obs.Logger.Warn("audit_log_open_failed", "path", l.path, "error", err)
		return
	}
	l.f = f
}

// Log appends the record for orderID paid via paymentLabel.
func (l *Log) Log(orderID uint64, paymentLabel string) {
	l.once.Do(l.open)
	if l.f == nil {
		return
	}
	_, err := fmt.Fprintf(l.f, "[LOG] -> Order ID: %d has been successfully checked out and paid using %s.\n", orderID, paymentLabel)
	if err != nil {
		obs.Logger.Warn("audit_log_write_failed", "path", l.path, "error", err)
	}
}

// Close releases the backing file. Safe to call when the file was never
// opened or failed to open.
func (l *Log) Close() error {
	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}
