package reservation

// PaymentStatus moves freely among its values: the business enforces no
// ordering between Pending, Confirmed and Paid. Canceled reservations stop
// blocking the room.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentConfirmed PaymentStatus = "Confirmed"
	PaymentPaid      PaymentStatus = "Paid"
	PaymentCanceled  PaymentStatus = "Canceled"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentConfirmed, PaymentPaid, PaymentCanceled:
		return true
	default:
		return false
	}
}
