package model

type PaymentStatus string
type PaymentType string
type PaymentGatewayProvider string
type GatewayEventStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusFailed    PaymentStatus = "failed"
)

const (
	PaymentTypeSingle PaymentType = "single"
)

const (
	GatewayProviderWompi    PaymentGatewayProvider = "wompi"
	GatewayProviderMidtrans PaymentGatewayProvider = "midtrans"
)

const (
	GatewayEventStatusReceived  GatewayEventStatus = "received"
	GatewayEventStatusProcessed GatewayEventStatus = "processed"
	GatewayEventStatusRejected  GatewayEventStatus = "rejected"
	GatewayEventStatusFailed    GatewayEventStatus = "failed"
)
