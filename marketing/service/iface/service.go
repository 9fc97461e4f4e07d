//go:generate mockery --output=../mocks --all

package iface

import (
	"context"

	"github.com/webkraft/clientcms/marketing/service"
)

type MarketingIface interface {
	SendMarketingEmails(ctx context.Context, req service.SendMarketingEmailsRequest) error
}
