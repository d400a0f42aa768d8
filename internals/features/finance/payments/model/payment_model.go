package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Payment struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	StudentID    uuid.UUID `gorm:"column:student_id;type:uuid;not null;index" json:"student_id"`
	ProgramID    uuid.UUID `gorm:"column:program_id;type:uuid;not null" json:"program_id"`
	EnrollmentID uuid.UUID `gorm:"column:enrollment_id;type:uuid;not null;index" json:"enrollment_id"`

	Concept     string      `gorm:"column:concept;size:255;not null" json:"concept"`
	PaymentType PaymentType `gorm:"column:payment_type;type:varchar(20);not null;default:'single'" json:"payment_type"`

	Amount          decimal.Decimal `gorm:"column:amount;type:numeric(14,2);not null" json:"amount"`
	OriginalAmount  decimal.Decimal `gorm:"column:original_amount;type:numeric(14,2);not null" json:"original_amount"`
	PaidAmount      decimal.Decimal `gorm:"column:paid_amount;type:numeric(14,2);not null" json:"paid_amount"`
	RemainingAmount decimal.Decimal `gorm:"column:remaining_amount;type:numeric(14,2);not null" json:"remaining_amount"`

	DueDate time.Time     `gorm:"column:due_date;type:date;not null" json:"due_date"`
	Status  PaymentStatus `gorm:"column:status;type:varchar(20);not null;default:'pending'" json:"status"`

	// Gateway
	WompiReference  string                  `gorm:"column:wompi_reference;size:120;not null;uniqueIndex" json:"wompi_reference"`
	GatewayProvider *PaymentGatewayProvider `gorm:"column:gateway_provider;type:varchar(20)" json:"gateway_provider,omitempty"`
	GatewayLinkID   *string                 `gorm:"column:gateway_link_id" json:"gateway_link_id,omitempty"`
	CheckoutURL     *string                 `gorm:"column:checkout_url" json:"checkout_url,omitempty"`
	PaidAt          *time.Time              `gorm:"column:paid_at" json:"paid_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Payment) TableName() string { return "payments" }

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

/* ===================== Helpers ===================== */

func (p *Payment) IsOpen() bool {
	return p.Status == PaymentStatusPending
}
