package ports

import (
	"context"

	"github.com/Felixdivoar/natuasili/internal/domain"
)

// PaymentGateway is the payment provider. Implementations obtain their own auth
// token and classify failures as domain.ErrProviderUnavailable (retryable) or
// domain.ErrProviderRejected.
type PaymentGateway interface {
	SubmitOrder(ctx context.Context, req domain.OrderRequest) (*domain.ProviderOrder, error)
	GetTransactionStatus(ctx context.Context, trackingID string) (*domain.ProviderStatus, error)
}
