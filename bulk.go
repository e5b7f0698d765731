package mailkit

import (
	"context"

	"github.com/dmitrymomot/mailkit/core/logger"
	"github.com/dmitrymomot/mailkit/core/mail"
)

// BulkParams carries the input for a bulk fan-out: the same subject and body
// delivered to each recipient as an independent message.
type BulkParams struct {
	Recipients []string
	Subject    string
	Body       string
	BodyType   mail.BodyType
}

// SendBulk sends to every recipient in input order, one message per
// recipient with that address as the sole To (no cc/bcc). One recipient's
// failure never aborts the batch; attachments are re-read per message since
// building is stateless. Delivery is strictly sequential.
func (s *Service) SendBulk(ctx context.Context, params BulkParams) BulkResult {
	if len(params.Recipients) == 0 {
		return BulkResult{
			Error:     "recipients must be a non-empty list",
			ErrorCode: CodeInvalidRecipients,
		}
	}
	if params.Subject == "" {
		return BulkResult{
			Error:     mail.ErrInvalidSubject.Error(),
			ErrorCode: CodeInvalidSubject,
		}
	}
	if params.Body == "" {
		return BulkResult{
			Error:     mail.ErrInvalidBody.Error(),
			ErrorCode: CodeInvalidBody,
		}
	}

	results := make([]RecipientResult, 0, len(params.Recipients))
	var succeeded, failed int

	for _, recipient := range params.Recipients {
		res := s.Send(ctx, SendParams{
			To:       recipient,
			Subject:  params.Subject,
			Body:     params.Body,
			BodyType: params.BodyType,
		})

		if res.Success {
			succeeded++
		} else {
			failed++
		}

		results = append(results, RecipientResult{
			Recipient: recipient,
			Success:   res.Success,
			Error:     res.Error,
			ErrorCode: res.ErrorCode,
		})
	}

	s.log.InfoContext(ctx, "bulk send finished",
		logger.Component("mailkit"),
		logger.Event("send_bulk"),
	)

	return BulkResult{
		Success:   failed == 0,
		Total:     len(params.Recipients),
		Succeeded: succeeded,
		Failed:    failed,
		Results:   results,
	}
}
