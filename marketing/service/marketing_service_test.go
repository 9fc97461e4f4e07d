package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/webkraft/clientcms/logger"
	"github.com/webkraft/clientcms/marketing/dal/mocks"
	"github.com/webkraft/clientcms/marketing/domain"
)

func TestMarketingService_SendMarketingEmails(t *testing.T) {
	ctx := context.Background()

	messagesDal := &mocks.Messages{}
	s := &MarketingService{
		loggerProvider: logger.FromContext,
		messagesDal:    messagesDal,
	}

	messagesDal.
		On("Create", ctx, &domain.MarketingMessage{Message: "spring discount"}).
		Return(&domain.MarketingMessage{ID: "message-id", Message: "spring discount"}, nil).
		Once()

	err := s.SendMarketingEmails(ctx, SendMarketingEmailsRequest{
		Emails:  []string{"a@acme.com", "b@acme.com", "a@acme.com"},
		Message: "spring discount",
	})

	assert.NoError(t, err)
	messagesDal.AssertNumberOfCalls(t, "Create", 1)
}

func TestMarketingService_SendMarketingEmails_PersistFailure(t *testing.T) {
	ctx := context.Background()

	messagesDal := &mocks.Messages{}
	s := &MarketingService{
		loggerProvider: logger.FromContext,
		messagesDal:    messagesDal,
	}

	messagesDal.
		On("Create", ctx, mock.AnythingOfType("*domain.MarketingMessage")).
		Return(nil, errors.New("write error")).
		Once()

	err := s.SendMarketingEmails(ctx, SendMarketingEmailsRequest{
		Emails:  []string{"a@acme.com"},
		Message: "spring discount",
	})

	assert.Error(t, err)
}
