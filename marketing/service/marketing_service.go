package service

import (
	"context"
	"strings"

	"github.com/webkraft/clientcms/framework/connection"
	"github.com/webkraft/clientcms/logger"
	"github.com/webkraft/clientcms/marketing/dal"
	"github.com/webkraft/clientcms/marketing/dal/iface"
	"github.com/webkraft/clientcms/marketing/domain"
	"github.com/webkraft/clientcms/slice"
)

type MarketingService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	messagesDal    iface.Messages
}

func NewMarketingService(log logger.Provider, conn *connection.Connection) *MarketingService {
	return &MarketingService{
		log,
		conn,
		dal.NewMessagesFirestoreWithClient(conn.Firestore),
	}
}

// SendMarketingEmails logs one marketing message and fake-sends it to the
// deduplicated recipient list. The message record is persisted before the
// send is logged; a persist failure fails the whole request.
func (s *MarketingService) SendMarketingEmails(ctx context.Context, req SendMarketingEmailsRequest) error {
	log := s.loggerProvider(ctx)

	if _, err := s.messagesDal.Create(ctx, &domain.MarketingMessage{Message: req.Message}); err != nil {
		log.Errorf("failed to save marketing message: %s", err)
		return err
	}

	recipients := slice.Unique(req.Emails)

	log.Infof("sending marketing message to: %s", strings.Join(recipients, ", "))
	log.Infof("marketing message: %s", req.Message)

	return nil
}
