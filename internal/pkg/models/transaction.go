package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus represents the lifecycle state of a payment request
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusConfirmed TransactionStatus = "confirmed"
	TransactionStatusRejected  TransactionStatus = "rejected"
	TransactionStatusExpired   TransactionStatus = "expired"
)

var allowedTransitions = map[TransactionStatus][]TransactionStatus{
	TransactionStatusPending: {
		TransactionStatusConfirmed,
		TransactionStatusRejected,
		TransactionStatusExpired,
	},
}

// CanTransition reports whether moving from one status to another is legal
func CanTransition(from, to TransactionStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Transaction is a single payment request and its attested outcome
type Transaction struct {
	ID            uuid.UUID         `json:"id" db:"id"`
	Reference     string            `json:"reference" db:"reference"`
	MerchantID    uuid.UUID         `json:"merchant_id" db:"merchant_id"`
	Amount        int64             `json:"amount" db:"amount"`
	CustomerPhone *string           `json:"customer_phone,omitempty" db:"customer_phone"`
	Provider      string            `json:"provider" db:"provider"`
	DialString    string            `json:"dial_string" db:"dial_string"`
	QRCodeHandle  string            `json:"qr_code_handle" db:"qr_code_handle"`
	Status        TransactionStatus `json:"status" db:"status"`
	ResolvedBy    *string           `json:"resolved_by,omitempty" db:"resolved_by"`
	ResolvedAt    *time.Time        `json:"resolved_at,omitempty" db:"resolved_at"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" db:"updated_at"`
}

// PaymentArtifacts are the customer-facing outputs of a payment request
type PaymentArtifacts struct {
	Reference    string `json:"reference"`
	DialString   string `json:"dial_string"`
	QRCodeHandle string `json:"qr_code_handle"`
	QRCodeURL    string `json:"qr_code_url,omitempty"`
}

// Artifacts returns the dial string and QR code handle for embedding.
// baseURL is prefixed to the handle when non-empty.
func (t *Transaction) Artifacts(baseURL string) PaymentArtifacts {
	a := PaymentArtifacts{
		Reference:    t.Reference,
		DialString:   t.DialString,
		QRCodeHandle: t.QRCodeHandle,
	}
	if baseURL != "" {
		a.QRCodeURL = baseURL + "/static/" + t.QRCodeHandle
	}
	return a
}

// PaymentStatusView is what anyone holding the QR link may see. It carries
// no customer phone and no actor IDs.
type PaymentStatusView struct {
	Reference    string            `json:"reference"`
	MerchantCode string            `json:"merchant_code"`
	MerchantName string            `json:"merchant_name"`
	Amount       int64             `json:"amount"`
	Provider     string            `json:"provider"`
	DialString   string            `json:"dial_string"`
	Status       TransactionStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	ResolvedAt   *time.Time        `json:"resolved_at,omitempty"`
}

// NewPaymentStatusView builds the public view of txn
func NewPaymentStatusView(txn *Transaction, merchant *Merchant) PaymentStatusView {
	return PaymentStatusView{
		Reference:    txn.Reference,
		MerchantCode: merchant.Code,
		MerchantName: merchant.Name,
		Amount:       txn.Amount,
		Provider:     txn.Provider,
		DialString:   txn.DialString,
		Status:       txn.Status,
		CreatedAt:    txn.CreatedAt,
		ResolvedAt:   txn.ResolvedAt,
	}
}

// CreatePaymentRequest is the input to CreateRequest
type CreatePaymentRequest struct {
	MerchantCode  string  `json:"merchant_code"`
	Amount        *int64  `json:"amount,omitempty"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
	Provider      string  `json:"provider,omitempty"`
}

// StatusTransition describes a guarded status change
type StatusTransition struct {
	Reference string
	From      TransactionStatus
	To        TransactionStatus
	ActorID   string
	At        time.Time
}

// TransactionFilter narrows a transaction listing
type TransactionFilter struct {
	MerchantID uuid.UUID
	Status     TransactionStatus
	Limit      int
}

// PaymentResponse is returned by the payment endpoints
type PaymentResponse struct {
	Transaction *Transaction     `json:"transaction"`
	Artifacts   PaymentArtifacts `json:"artifacts"`
}
