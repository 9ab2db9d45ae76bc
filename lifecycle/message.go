package lifecycle

import (
	"context"
	"strings"

	"renthub/apperr"
	"renthub/models"
	"renthub/policy"
)

type MessageInput struct {
	RecipientID int64  `json:"recipient_id"`
	Subject     string `json:"subject"`
	Body        string `json:"message"`
	PropertyID  *int64 `json:"property_id"`
	InquiryType string `json:"inquiry_type"`
}

func (m *Manager) SendMessage(ctx context.Context, p policy.Principal, in MessageInput) (models.Message, error) {
	var message models.Message
	if err := m.authorize(p, policy.ActionSendMessage, policy.Resource{}); err != nil {
		return message, err
	}
	switch {
	case in.RecipientID == 0:
		return message, apperr.Invalid("recipient_id", "is required")
	case in.RecipientID == p.ID:
		return message, apperr.Invalid("recipient_id", "cannot message yourself")
	case strings.TrimSpace(in.Subject) == "":
		return message, apperr.Invalid("subject", "is required")
	case strings.TrimSpace(in.Body) == "":
		return message, apperr.Invalid("message", "is required")
	}

	if _, err := m.db.Users().FindByID(in.RecipientID); apperr.IsNotFound(err) {
		return message, apperr.NotFound("recipient")
	} else if err != nil {
		return message, err
	}
	if in.PropertyID != nil {
		if _, err := m.db.Properties().FindByID(*in.PropertyID); err != nil {
			return message, err
		}
	}

	inquiry := in.InquiryType
	if inquiry == "" {
		inquiry = models.INQUIRY_TYPE_GENERAL
	}
	message = models.Message{
		SenderID:    p.ID,
		RecipientID: in.RecipientID,
		Subject:     strings.TrimSpace(in.Subject),
		Body:        strings.TrimSpace(in.Body),
		PropertyID:  in.PropertyID,
		InquiryType: inquiry,
	}
	if err := m.db.Messages().Create(&message); err != nil {
		return message, err
	}
	return message, nil
}

// ListMessages returns the messages the caller sent or received.
func (m *Manager) ListMessages(ctx context.Context, p policy.Principal) ([]models.Message, error) {
	if err := m.authorize(p, policy.ActionViewMessages, policy.Resource{}); err != nil {
		return nil, err
	}
	return m.db.Messages().ListForUser(p.ID)
}
