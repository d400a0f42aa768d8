package service

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const ReferencePrefix = "MAT"

var lastReferenceSeq atomic.Int64

// nextReferenceSeq is monotonic per process: the current Unix time in
// nanoseconds, bumped past the previous value when the clock has not moved.
func nextReferenceSeq(now time.Time) int64 {
	candidate := now.UnixNano()
	for {
		last := lastReferenceSeq.Load()
		next := candidate
		if next <= last {
			next = last + 1
		}
		if lastReferenceSeq.CompareAndSwap(last, next) {
			return next
		}
	}
}

// NewReference builds the external gateway reference for an enrollment's payment.
func NewReference(enrollmentID uuid.UUID) string {
	return fmt.Sprintf("%s-%s-%d", ReferencePrefix, enrollmentID, nextReferenceSeq(time.Now()))
}
