package model

type PaymentStatus string
type PaymentProvider string

/* ===== enum payment_status (mirror DB) =====
pending → {completed, rejected}; completed → refunded; rejected → refunded.
'failed' dicadangkan untuk callback gateway di masa depan — tidak ada
transisi yang menghasilkannya. */
const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRejected  PaymentStatus = "rejected"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

/* ===== enum payment_provider (mirror DB) ===== */
const (
	PaymentProviderBkash  PaymentProvider = "bkash"
	PaymentProviderNagad  PaymentProvider = "nagad"
	PaymentProviderRocket PaymentProvider = "rocket"
	PaymentProviderBank   PaymentProvider = "bank"
	PaymentProviderOther  PaymentProvider = "other"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed,
		PaymentStatusRejected, PaymentStatusRefunded:
		return true
	}
	return false
}

// Terminal: tidak ada transisi keluar selain refunded (dari completed/rejected)
func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusRefunded || s == PaymentStatusFailed
}
