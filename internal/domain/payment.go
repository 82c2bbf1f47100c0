package domain

import "time"

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCheck    PaymentMethod = "check"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentCard     PaymentMethod = "card"
)

var PaymentMethods = []PaymentMethod{
	PaymentCash,
	PaymentCheck,
	PaymentTransfer,
	PaymentCard,
}

func (m PaymentMethod) IsValid() bool {
	for _, method := range PaymentMethods {
		if m == method {
			return true
		}
	}

	return false
}

type Payment struct {
	ID        uint          `json:"id"`
	FamilyID  uint          `json:"family_id"`
	Amount    int           `json:"amount"` // cents
	Method    PaymentMethod `json:"method"`
	PaidAt    time.Time     `json:"paid_at"`
	Note      string        `json:"note,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
