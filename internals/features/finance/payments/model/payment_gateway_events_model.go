package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*
  payment_gateway_events = webhook / callback log
  - many rows per payment (one per notification)
  - keeps raw payload and signature for replay and audit
*/

type PaymentGatewayEvent struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PaymentID *uuid.UUID `gorm:"column:payment_id;type:uuid;index" json:"payment_id,omitempty"`

	Provider    PaymentGatewayProvider `gorm:"column:provider;type:varchar(20);not null" json:"provider"`
	EventType   *string                `gorm:"column:event_type" json:"event_type,omitempty"`
	ExternalRef *string                `gorm:"column:external_ref;index" json:"external_ref,omitempty"`

	Payload   datatypes.JSON `gorm:"column:payload" json:"payload"`
	Signature *string        `gorm:"column:signature" json:"signature,omitempty"`

	Status GatewayEventStatus `gorm:"column:status;type:varchar(20);not null;default:'received'" json:"status"`
	Error  *string            `gorm:"column:error" json:"error,omitempty"`

	ReceivedAt  time.Time  `gorm:"column:received_at;not null" json:"received_at"`
	ProcessedAt *time.Time `gorm:"column:processed_at" json:"processed_at,omitempty"`
}

func (PaymentGatewayEvent) TableName() string { return "payment_gateway_events" }

func (e *PaymentGatewayEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.ReceivedAt.IsZero() {
		e.ReceivedAt = time.Now().UTC()
	}
	return nil
}
