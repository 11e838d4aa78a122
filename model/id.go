package model

import (
	"fmt"
	"sync/atomic"
	"time"
)

var idSeq atomic.Int64

// NewID builds a timestamp-derived identifier like "txn-1724990000123456789".
// The sequence suffix keeps ids unique inside one nanosecond tick.
func NewID(prefix string) string {
	return fmt.Sprintf("%s-%d%04d", prefix, time.Now().UnixNano(), idSeq.Add(1)%10000)
}
