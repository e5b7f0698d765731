package mailkit

import "github.com/dmitrymomot/mailkit/core/templates"

// SendResult is the synchronous outcome of a single send. It is always fully
// populated, success or failure, so callers can branch on Success without
// error-handling machinery.
type SendResult struct {
	Success        bool           `json:"success"`
	Message        string         `json:"message,omitempty"`
	Error          string         `json:"error,omitempty"`
	ErrorCode      Code           `json:"error_code,omitempty"`
	MissingConfigs []string       `json:"missing_configs,omitempty"`
	Recipients     []string       `json:"recipients,omitempty"`
	CC             []string       `json:"cc,omitempty"`
	BCCCount       int            `json:"bcc_count,omitempty"`
	TemplateType   templates.Kind `json:"template_type,omitempty"`
}

// BulkResult aggregates a bulk fan-out. Success is true iff zero failures.
type BulkResult struct {
	Success   bool              `json:"success"`
	Total     int               `json:"total"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Error     string            `json:"error,omitempty"`
	ErrorCode Code              `json:"error_code,omitempty"`
	Results   []RecipientResult `json:"results,omitempty"`
}

// RecipientResult is the per-recipient detail line of a bulk send, in input
// order.
type RecipientResult struct {
	Recipient string `json:"recipient"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	ErrorCode Code   `json:"error_code,omitempty"`
}

func failure(code Code, message string) SendResult {
	return SendResult{Error: message, ErrorCode: code}
}
