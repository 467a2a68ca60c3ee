package mailing

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	cfg := MailConfig{SMTPEmail: "noreply@foodgram.test", SMTPSender: "Foodgram"}

	msg := buildMessage(cfg, "chef@example.com", "Shopping list", "see attachment",
		Attachment{Name: "Chef_shopping_list.txt", Content: []byte("Flour: 500 g\n")})

	assert.Equal(t, []string{"chef@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Shopping list"}, msg.GetHeader("Subject"))
	assert.Equal(t, []string{`"Foodgram" <noreply@foodgram.test>`}, msg.GetHeader("From"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	assert.True(t, strings.Contains(raw, `filename="Chef_shopping_list.txt"`))
	assert.True(t, strings.Contains(raw, "see attachment"))
}

func TestSendMailRejectsBadPort(t *testing.T) {
	m := NewMailer(MailConfig{SMTPPort: "not-a-port"})
	err := m.SendMail("chef@example.com", "s", "b")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid SMTP_PORT")
}
