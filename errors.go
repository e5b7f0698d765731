package mailkit

// Code is a machine-readable error code carried inside result structures.
// Public operations never return Go errors; callers branch on Success and
// ErrorCode instead.
type Code string

const (
	// Pre-flight configuration.
	CodeMissingSMTPConfig Code = "MISSING_SMTP_CONFIG"
	CodeInvalidPort       Code = "INVALID_PORT"

	// Input validation.
	CodeInvalidRecipient     Code = "INVALID_RECIPIENT"
	CodeInvalidSubject       Code = "INVALID_SUBJECT"
	CodeInvalidBody          Code = "INVALID_BODY"
	CodeInvalidBodyType      Code = "INVALID_BODY_TYPE"
	CodeInvalidRecipients    Code = "INVALID_RECIPIENTS"
	CodeInvalidTemplateType  Code = "INVALID_TEMPLATE_TYPE"
	CodeInvalidTemplateData  Code = "INVALID_TEMPLATE_DATA"
	CodeMissingTemplateField Code = "MISSING_TEMPLATE_FIELD"

	// Build time.
	CodeAttachmentError Code = "ATTACHMENT_ERROR"

	// Transport time. Connection setup and authentication failures share
	// the connection code; protocol failures during delivery get their own.
	CodeSMTPConnectionError Code = "SMTP_CONNECTION_ERROR"
	CodeSMTPError           Code = "SMTP_ERROR"

	// Catch-all for anything not classified above.
	CodeUnexpectedError Code = "UNEXPECTED_ERROR"
)
