package request

type CreateBooking struct {
	PartnerID  int64 `json:"partner_id" validate:"required"`
	SlotID     int64 `json:"slot_id" validate:"required"`
	CustomerID int64 `json:"customer_id" validate:"required"`
}

type CancelBooking struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
	Reason    string `json:"reason" validate:"required"`
}

// SettleRefund is the payload of the post-commit refund settlement task.
type SettleRefund struct {
	RefundID       int64  `json:"refund_id" validate:"required"`
	BookingID      string `json:"booking_id" validate:"required,uuid"`
	ProviderTxnID  string `json:"provider_txn_id" validate:"required"`
	OriginalAmount int64  `json:"original_amount" validate:"required"`
	Amount         int64  `json:"amount" validate:"required"`
	Reason         string `json:"reason"`
}

type BookingEvent struct {
	BookingID  string `json:"booking_id"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurred_at"`
}

type RefundSettledEvent struct {
	RefundID         int64  `json:"refund_id"`
	BookingID        string `json:"booking_id"`
	Status           string `json:"status"`
	ProviderRefundID string `json:"provider_refund_id,omitempty"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}
