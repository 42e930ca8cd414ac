package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"parcelo/internal/config"
)

func TestNew_NoAPIKey_ReturnsLogMailer(t *testing.T) {
	cfg := config.MailConfig{FromName: "Parcelo", FromAddr: "noreply@parcelo.dev"}

	m := New(cfg, zap.NewNop())

	_, ok := m.(*LogMailer)
	assert.True(t, ok)
}

func TestNew_WithAPIKey_ReturnsResendMailer(t *testing.T) {
	cfg := config.MailConfig{APIKey: "re_test", FromName: "Parcelo", FromAddr: "noreply@parcelo.dev"}

	m := New(cfg, zap.NewNop())

	rm, ok := m.(*ResendMailer)
	assert.True(t, ok)
	assert.Equal(t, "Parcelo <noreply@parcelo.dev>", rm.from)
}

func TestLogMailer_Send_NeverFails(t *testing.T) {
	m := NewLogMailer(zap.NewNop())

	err := m.Send(context.Background(), "John Doe <john@example.com>", "New delivery", "<p>hi</p>")
	assert.NoError(t, err)
}
