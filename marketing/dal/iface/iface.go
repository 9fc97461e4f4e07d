//go:generate mockery --output=../mocks --all

package iface

import (
	"context"

	"github.com/webkraft/clientcms/marketing/domain"
)

type Messages interface {
	Create(ctx context.Context, message *domain.MarketingMessage) (*domain.MarketingMessage, error)
}
