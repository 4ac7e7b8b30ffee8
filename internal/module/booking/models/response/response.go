package response

type Booking struct {
	ID         string `json:"id"`
	PartnerID  *int64 `json:"partner_id"`
	SlotID     *int64 `json:"slot_id"`
	CustomerID int64  `json:"customer_id"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

type Refund struct {
	ID         int64  `json:"id"`
	BookingID  string `json:"booking_id"`
	PaymentID  *int64 `json:"payment_id"`
	Amount     int64  `json:"amount"`
	RefundType string `json:"refund_type"`
	Reason     string `json:"reason"`
	Status     string `json:"status"`
}

type BookingDetail struct {
	Booking Booking  `json:"booking"`
	Payment *Payment `json:"payment,omitempty"`
	Refunds []Refund `json:"refunds,omitempty"`
}

type Payment struct {
	ID            int64  `json:"id"`
	Provider      string `json:"provider"`
	ProviderTxnID string `json:"provider_txn_id"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
}
