package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	model "academia_backend/internals/features/finance/payments/model"
)

type PaymentResponse struct {
	ID              uuid.UUID                     `json:"id"`
	StudentID       uuid.UUID                     `json:"student_id"`
	ProgramID       uuid.UUID                     `json:"program_id"`
	EnrollmentID    uuid.UUID                     `json:"enrollment_id"`
	Concept         string                        `json:"concept"`
	Amount          decimal.Decimal               `json:"amount"`
	PaidAmount      decimal.Decimal               `json:"paid_amount"`
	RemainingAmount decimal.Decimal               `json:"remaining_amount"`
	DueDate         string                        `json:"due_date"`
	Status          model.PaymentStatus           `json:"status"`
	Reference       string                        `json:"reference"`
	GatewayProvider *model.PaymentGatewayProvider `json:"gateway_provider,omitempty"`
	CheckoutURL     *string                       `json:"checkout_url,omitempty"`
	PaidAt          *time.Time                    `json:"paid_at,omitempty"`
	CreatedAt       time.Time                     `json:"created_at"`
}

func FromPaymentModel(m *model.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:              m.ID,
		StudentID:       m.StudentID,
		ProgramID:       m.ProgramID,
		EnrollmentID:    m.EnrollmentID,
		Concept:         m.Concept,
		Amount:          m.Amount,
		PaidAmount:      m.PaidAmount,
		RemainingAmount: m.RemainingAmount,
		DueDate:         m.DueDate.Format("2006-01-02"),
		Status:          m.Status,
		Reference:       m.WompiReference,
		GatewayProvider: m.GatewayProvider,
		CheckoutURL:     m.CheckoutURL,
		PaidAt:          m.PaidAt,
		CreatedAt:       m.CreatedAt,
	}
}

type PaymentGatewayEventResponse struct {
	ID          uuid.UUID                    `json:"id"`
	PaymentID   *uuid.UUID                   `json:"payment_id,omitempty"`
	Provider    model.PaymentGatewayProvider `json:"provider"`
	EventType   *string                      `json:"event_type,omitempty"`
	ExternalRef *string                      `json:"external_ref,omitempty"`
	Payload     datatypes.JSON               `json:"payload,omitempty"`
	Status      model.GatewayEventStatus     `json:"status"`
	Error       *string                      `json:"error,omitempty"`
	ReceivedAt  time.Time                    `json:"received_at"`
	ProcessedAt *time.Time                   `json:"processed_at,omitempty"`
}

// FromEventModel leaves the signature out of API responses.
func FromEventModel(m *model.PaymentGatewayEvent) *PaymentGatewayEventResponse {
	return &PaymentGatewayEventResponse{
		ID:          m.ID,
		PaymentID:   m.PaymentID,
		Provider:    m.Provider,
		EventType:   m.EventType,
		ExternalRef: m.ExternalRef,
		Payload:     m.Payload,
		Status:      m.Status,
		Error:       m.Error,
		ReceivedAt:  m.ReceivedAt,
		ProcessedAt: m.ProcessedAt,
	}
}
