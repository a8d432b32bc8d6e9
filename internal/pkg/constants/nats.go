package constants

// NATS Subjects
const (
	// Payment lifecycle events, published after commit
	SubjectPaymentCreated   = "payment.created"
	SubjectPaymentConfirmed = "payment.confirmed"
	SubjectPaymentRejected  = "payment.rejected"
	SubjectPaymentExpired   = "payment.expired"

	// SubjectPaymentSweep asks a payments instance to expire stale requests
	SubjectPaymentSweep = "payment.sweep"

	// QueuePaymentSweep makes exactly one subscriber handle each sweep
	QueuePaymentSweep = "payments-sweepers"
)
