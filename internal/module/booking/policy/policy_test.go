package policy_test

import (
	"testing"
	"time"

	"partner-booking-service/internal/module/booking/policy"

	"github.com/stretchr/testify/assert"
)

func TestComputeRefund(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		hasPartner     bool
		slotStart      time.Time
		capturedAmount int64
		expectedType   string
		expectedAmount int64
	}{
		{
			name:           "partner-less booking refunds in full",
			hasPartner:     false,
			slotStart:      now.Add(1 * time.Hour),
			capturedAmount: 10000,
			expectedType:   policy.RefundTypeFull,
			expectedAmount: 10000,
		},
		{
			name:           "partnered booking 25 hours out refunds 75 percent",
			hasPartner:     true,
			slotStart:      now.Add(25 * time.Hour),
			capturedAmount: 10000,
			expectedType:   policy.RefundTypePartial,
			expectedAmount: 7500,
		},
		{
			name:           "partial refund floors odd amounts",
			hasPartner:     true,
			slotStart:      now.Add(48 * time.Hour),
			capturedAmount: 999,
			expectedType:   policy.RefundTypePartial,
			expectedAmount: 749,
		},
		{
			name:           "exactly 24 hours is a late cancel",
			hasPartner:     true,
			slotStart:      now.Add(24 * time.Hour),
			capturedAmount: 10000,
			expectedType:   policy.RefundTypeNone,
			expectedAmount: 0,
		},
		{
			name:           "under 24 hours yields no refund",
			hasPartner:     true,
			slotStart:      now.Add(3 * time.Hour),
			capturedAmount: 10000,
			expectedType:   policy.RefundTypeNone,
			expectedAmount: 0,
		},
		{
			name:           "slot already started yields no refund",
			hasPartner:     true,
			slotStart:      now.Add(-1 * time.Hour),
			capturedAmount: 10000,
			expectedType:   policy.RefundTypeNone,
			expectedAmount: 0,
		},
		{
			name:           "full tier with no captured payment records zero amount",
			hasPartner:     false,
			slotStart:      now.Add(48 * time.Hour),
			capturedAmount: 0,
			expectedType:   policy.RefundTypeFull,
			expectedAmount: 0,
		},
		{
			name:           "partial tier with no captured payment records zero amount",
			hasPartner:     true,
			slotStart:      now.Add(48 * time.Hour),
			capturedAmount: 0,
			expectedType:   policy.RefundTypePartial,
			expectedAmount: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			refundType, amount := policy.ComputeRefund(tc.hasPartner, tc.slotStart, now, tc.capturedAmount)

			assert.Equal(t, tc.expectedType, refundType)
			assert.Equal(t, tc.expectedAmount, amount)
		})
	}
}

func TestComputeRefundIsDeterministic(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	slotStart := now.Add(30 * time.Hour)

	firstType, firstAmount := policy.ComputeRefund(true, slotStart, now, 5000)
	secondType, secondAmount := policy.ComputeRefund(true, slotStart, now, 5000)

	assert.Equal(t, firstType, secondType)
	assert.Equal(t, firstAmount, secondAmount)
}
