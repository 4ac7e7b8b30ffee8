package policy

import "time"

const (
	PartialRefundPercent = 75
	LateCancelHours      = 24
)

const (
	RefundTypeNone    = "none"
	RefundTypePartial = "partial"
	RefundTypeFull    = "full"
)

// ComputeRefund decides the refund tier and amount for a cancellation.
// Partner-less bookings always refund in full. Partnered bookings refund 75%
// when cancelled strictly more than 24 hours before the slot starts, nothing
// otherwise. With no captured amount the tier is still recorded for audit but
// the amount is zero. All time inputs are explicit so the function stays
// deterministic.
func ComputeRefund(hasPartner bool, slotStart, now time.Time, capturedAmount int64) (string, int64) {
	if !hasPartner {
		return RefundTypeFull, capturedAmount
	}

	hoursUntilSlot := slotStart.Sub(now).Hours()
	if hoursUntilSlot > LateCancelHours {
		return RefundTypePartial, capturedAmount * PartialRefundPercent / 100
	}

	return RefundTypeNone, 0
}
