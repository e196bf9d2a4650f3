package utils

import (
	"fmt"
	"sync/atomic"
	"time"
)

// ResultIDGenerator builds result ids from the submission time, the user id and
// a process-wide sequence number, so two ids never collide even inside one millisecond.
type ResultIDGenerator struct {
	seq atomic.Uint64
}

func NewResultIDGenerator() *ResultIDGenerator {
	return &ResultIDGenerator{}
}

func (g *ResultIDGenerator) Next(userID string, at time.Time) string {
	n := g.seq.Add(1)
	return fmt.Sprintf("result_%d_%s_%d", at.UnixMilli(), userID, n)
}
