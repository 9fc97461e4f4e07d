package service

type SendMarketingEmailsRequest struct {
	Emails  []string `json:"emails"`
	Message string   `json:"message"`
}
