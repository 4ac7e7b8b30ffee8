package request

import "time"

type AssignPartner struct {
	City      string     `json:"city" validate:"required"`
	SlotStart *time.Time `json:"slot_start"`
}
