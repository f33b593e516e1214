package pos

import "sync/atomic"

// Sequencer provides monotonically increasing order ids starting at 1.
// Ids are never reused within a process, even when the order that
// consumed one was not recorded.
type Sequencer struct{ n atomic.Uint64 }

// Next returns the next order id.
func (s *Sequencer) Next() uint64 { return s.n.Add(1) }
