package mailkit

import (
	"context"

	"github.com/dmitrymomot/mailkit/core/mail"
	"github.com/dmitrymomot/mailkit/core/templates"
)

// TemplateParams carries the input for a templated send. Data fields depend
// on Kind; see the templates package for the per-kind substitution sets.
type TemplateParams struct {
	To      string
	Subject string
	Kind    templates.Kind
	Data    templates.Data
	CC      string
	BCC     string
}

// SendTemplate renders one of the fixed HTML layouts and sends the result as
// an HTML-bodied message. On success the rendered kind is copied onto the
// result.
func (s *Service) SendTemplate(ctx context.Context, params TemplateParams) SendResult {
	if params.To == "" {
		return failure(CodeInvalidRecipient, mail.ErrInvalidRecipient.Error())
	}
	if params.Subject == "" {
		return failure(CodeInvalidSubject, mail.ErrInvalidSubject.Error())
	}

	html, err := templates.Render(params.Kind, params.Data)
	if err != nil {
		return classified(err)
	}

	result := s.Send(ctx, SendParams{
		To:       params.To,
		Subject:  params.Subject,
		Body:     html,
		CC:       params.CC,
		BCC:      params.BCC,
		BodyType: mail.BodyHTML,
	})
	if result.Success {
		result.TemplateType = params.Kind
	}
	return result
}
