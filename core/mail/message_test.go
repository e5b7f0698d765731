package mail_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailkit/core/mail"
)

func TestBuild_Validation(t *testing.T) {
	t.Parallel()

	validParams := mail.BuildParams{
		From:    "noreply@example.com",
		To:      "user@example.com",
		Subject: "Test",
		Body:    "Hello",
	}

	tests := []struct {
		name    string
		mutate  func(p *mail.BuildParams)
		wantErr error
	}{
		{
			name:   "valid params",
			mutate: func(p *mail.BuildParams) {},
		},
		{
			name:    "empty to",
			mutate:  func(p *mail.BuildParams) { p.To = "" },
			wantErr: mail.ErrInvalidRecipient,
		},
		{
			name:    "empty subject",
			mutate:  func(p *mail.BuildParams) { p.Subject = "" },
			wantErr: mail.ErrInvalidSubject,
		},
		{
			name:    "empty body",
			mutate:  func(p *mail.BuildParams) { p.Body = "" },
			wantErr: mail.ErrInvalidBody,
		},
		{
			name:    "unknown body type",
			mutate:  func(p *mail.BuildParams) { p.BodyType = "markdown" },
			wantErr: mail.ErrInvalidBodyType,
		},
		{
			name:   "explicit plain body type",
			mutate: func(p *mail.BuildParams) { p.BodyType = mail.BodyPlain },
		},
		{
			name:   "explicit html body type",
			mutate: func(p *mail.BuildParams) { p.BodyType = mail.BodyHTML },
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := validParams
			tt.mutate(&params)

			msg, err := mail.Build(params)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, msg)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, msg)
			}
		})
	}
}

func TestBuild_DefaultBodyType(t *testing.T) {
	t.Parallel()

	msg, err := mail.Build(mail.BuildParams{
		To:      "user@example.com",
		Subject: "Test",
		Body:    "Hello",
	})
	require.NoError(t, err)
	assert.Equal(t, mail.BodyPlain, msg.BodyType)
}

func TestBuild_AddressSplitting(t *testing.T) {
	t.Parallel()

	t.Run("multiple recipients trimmed", func(t *testing.T) {
		t.Parallel()

		msg, err := mail.Build(mail.BuildParams{
			To:      "a@example.com, b@example.com ,c@example.com",
			Subject: "Test",
			Body:    "Hello",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a@example.com", "b@example.com", "c@example.com"}, msg.To)
	})

	t.Run("trailing comma yields empty recipient", func(t *testing.T) {
		t.Parallel()

		msg, err := mail.Build(mail.BuildParams{
			To:      "a@example.com,",
			Subject: "Test",
			Body:    "Hello",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a@example.com", ""}, msg.To)
	})

	t.Run("empty cc and bcc yield nil slices", func(t *testing.T) {
		t.Parallel()

		msg, err := mail.Build(mail.BuildParams{
			To:      "a@example.com",
			Subject: "Test",
			Body:    "Hello",
		})
		require.NoError(t, err)
		assert.Nil(t, msg.CC)
		assert.Nil(t, msg.BCC)
	})

	t.Run("original header strings preserved", func(t *testing.T) {
		t.Parallel()

		msg, err := mail.Build(mail.BuildParams{
			To:      "a@example.com, b@example.com",
			CC:      "c@example.com",
			Subject: "Test",
			Body:    "Hello",
		})
		require.NoError(t, err)
		assert.Equal(t, "a@example.com, b@example.com", msg.ToHeader)
		assert.Equal(t, "c@example.com", msg.CCHeader)
	})
}

func TestMessage_Recipients(t *testing.T) {
	t.Parallel()

	msg, err := mail.Build(mail.BuildParams{
		To:      "a@example.com,b@example.com",
		CC:      "c@example.com",
		BCC:     "d@example.com,a@example.com",
		Subject: "Test",
		Body:    "Hello",
	})
	require.NoError(t, err)

	// to, then cc, then bcc; duplicates kept.
	assert.Equal(t, []string{
		"a@example.com", "b@example.com",
		"c@example.com",
		"d@example.com", "a@example.com",
	}, msg.Recipients())
}
