package controller

import (
	"crypto/sha512"
	"encoding/hex"

	gatewayService "academia_backend/internals/features/finance/gateway/service"
)

func midtransSignature(n gatewayService.MidtransNotification) string {
	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + midtransServerKey))
	return hex.EncodeToString(sum[:])
}
