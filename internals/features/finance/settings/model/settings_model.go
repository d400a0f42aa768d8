package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentSetting holds the monthly tuition price. At most one row is active.
type PaymentSetting struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	MonthlyAmount decimal.Decimal `gorm:"column:monthly_amount;type:numeric(14,2);not null" json:"monthly_amount"`
	IsActive      bool            `gorm:"column:is_active;not null;default:false;index" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PaymentSetting) TableName() string { return "payment_settings" }

func (s *PaymentSetting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type WompiEnvironment string

const (
	WompiEnvTest       WompiEnvironment = "test"
	WompiEnvProduction WompiEnvironment = "production"
)

// WompiSetting holds gateway credentials. At most one row is active.
type WompiSetting struct {
	ID              uuid.UUID        `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Environment     WompiEnvironment `gorm:"column:environment;type:varchar(20);not null;default:'test'" json:"environment"`
	PublicKey       string           `gorm:"column:public_key;size:255" json:"public_key"`
	PrivateKey      string           `gorm:"column:private_key;size:255" json:"private_key"`
	EventsSecret    string           `gorm:"column:events_secret;size:255" json:"events_secret"`
	IntegritySecret string           `gorm:"column:integrity_secret;size:255" json:"integrity_secret"`
	APIURL          string           `gorm:"column:api_url;size:255" json:"api_url"`
	IsActive        bool             `gorm:"column:is_active;not null;default:false;index" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (WompiSetting) TableName() string { return "wompi_settings" }

func (s *WompiSetting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

const wompiTestKeyPrefix = "pub_test_"

// IsSandbox reports whether the public key belongs to the sandbox.
func (s *WompiSetting) IsSandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(s.PublicKey), wompiTestKeyPrefix)
}
