package service

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	paymentModel "academia_backend/internals/features/finance/payments/model"
	userModel "academia_backend/internals/features/users/user/model"
)

type CheckoutService struct {
	DB      *gorm.DB
	Gateway Gateway
}

func NewCheckoutService(db *gorm.DB, gw Gateway) *CheckoutService {
	return &CheckoutService{DB: db, Gateway: gw}
}

// Checkout returns a hosted payment page for a pending payment. A link already
// issued by the same provider is reused.
func (s *CheckoutService) Checkout(ctx context.Context, reference string) (*PaymentLink, *paymentModel.Payment, error) {
	db := s.DB.WithContext(ctx)

	p, err := FindPayment(db, reference, "")
	if err != nil {
		return nil, nil, err
	}
	if !p.IsOpen() {
		return nil, p, ErrPaymentNotPending
	}

	provider := paymentModel.PaymentGatewayProvider(s.Gateway.Provider())
	if p.CheckoutURL != nil && p.GatewayProvider != nil && *p.GatewayProvider == provider {
		link := &PaymentLink{URL: *p.CheckoutURL, Reference: p.WompiReference}
		if p.GatewayLinkID != nil {
			link.ID = *p.GatewayLinkID
		}
		return link, p, nil
	}

	var student userModel.UserModel
	if err := db.Where("id = ?", p.StudentID).Take(&student).Error; err != nil {
		return nil, p, errors.Wrap(err, "load payment student")
	}

	link, err := s.Gateway.CreatePaymentLink(ctx, LinkRequest{
		Reference:     p.WompiReference,
		Amount:        p.Amount,
		CustomerEmail: student.EmailOrEmpty(),
		CustomerName:  student.FullName(),
		Description:   p.Concept,
	})
	if err != nil {
		return nil, p, err
	}

	p.GatewayProvider = &provider
	p.CheckoutURL = &link.URL
	p.GatewayLinkID = &link.ID
	if err := db.Model(p).Updates(map[string]any{
		"gateway_provider": provider,
		"checkout_url":     link.URL,
		"gateway_link_id":  link.ID,
	}).Error; err != nil {
		return nil, p, errors.Wrap(err, "store checkout link")
	}
	return link, p, nil
}
