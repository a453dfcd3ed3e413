package mail

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"ewarrants/config"
	"ewarrants/internal/domain/entity"
	domainerrors "ewarrants/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

type recordingSender struct {
	msgs []*gomail.Msg
	err  error
}

func (s *recordingSender) DialAndSendWithContext(_ context.Context, msgs ...*gomail.Msg) error {
	s.msgs = append(s.msgs, msgs...)

	return s.err
}

func newTestMailer(s sender) *smtpMailer {
	return newSMTPMailer(s, "noreply@ewarrants.app", slog.New(slog.NewTextHandler(io.Discard, nil)))
}


func TestSMTPMailer_SendExpiryReminder(t *testing.T) {
	s := &recordingSender{}
	mailer := newTestMailer(s)

	warranties := []*entity.Warranty{
		{ProductName: "Laptop", PurchaseDate: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), WarrantyLengthMonths: 1},
		{ProductName: "Fridge <XL>", PurchaseDate: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), WarrantyLengthMonths: 12},
	}
	err := mailer.SendExpiryReminder(context.Background(), "asha@example.com", "Asha", 30, warranties)
	require.NoError(t, err)
	require.Len(t, s.msgs, 1)

	msg := s.msgs[0]
	subject := msg.GetGenHeader(gomail.HeaderSubject)
	require.Len(t, subject, 1)
	assert.Equal(t, "[eWarrants] You have warranties expiring in 30 days!", subject[0])
	assert.Equal(t, []string{"<asha@example.com>"}, msg.GetToString())
}

func TestRender_ReminderListsEveryWarranty(t *testing.T) {
	warranties := []*entity.Warranty{
		{ProductName: "Laptop", PurchaseDate: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), WarrantyLengthMonths: 1},
		{ProductName: "Fridge <XL>", PurchaseDate: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), WarrantyLengthMonths: 12},
	}

	html, err := render("reminder.html", struct {
		Name       string
		Days       int
		Warranties []*entity.Warranty
	}{Name: "Asha", Days: 30, Warranties: warranties})
	require.NoError(t, err)
	assert.Contains(t, html, "Hi Asha,")
	assert.Contains(t, html, "<strong>30 days</strong>")
	assert.Contains(t, html, "<strong>Laptop</strong> (expires 2024-02-29)")
	assert.Contains(t, html, "Fridge &lt;XL&gt;")
	assert.Equal(t, 2, strings.Count(html, "<li>"))
}

func TestSMTPMailer_SendExpiryReminder_EmptyListSendsNothing(t *testing.T) {
	s := &recordingSender{}
	mailer := newTestMailer(s)

	require.NoError(t, mailer.SendExpiryReminder(context.Background(), "asha@example.com", "Asha", 7, nil))
	assert.Empty(t, s.msgs)
}

func TestSMTPMailer_SendVerificationCode(t *testing.T) {
	s := &recordingSender{}
	mailer := newTestMailer(s)

	require.NoError(t, mailer.SendVerificationCode(context.Background(), "asha@example.com", "Asha", "042137"))
	require.Len(t, s.msgs, 1)
	assert.Equal(t, []string{subjectVerification}, s.msgs[0].GetGenHeader(gomail.HeaderSubject))
}

func TestRender_CodeEmail(t *testing.T) {
	html, err := render("code.html", codeEmail{Title: "Verify Your Email", Name: "Asha", Code: "042137"})
	require.NoError(t, err)
	assert.Contains(t, html, "<h2>Verify Your Email</h2>")
	assert.Contains(t, html, "042137")
}

func TestSMTPMailer_TransportFailureIsUpstream(t *testing.T) {
	s := &recordingSender{err: errors.New("connection refused")}
	mailer := newTestMailer(s)

	err := mailer.SendPasswordResetCode(context.Background(), "asha@example.com", "Asha", "123456")
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamFailed)
}

func TestSMTPMailer_InvalidRecipient(t *testing.T) {
	mailer := newTestMailer(&recordingSender{})

	err := mailer.SendVerificationCode(context.Background(), "not an address", "Asha", "123456")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNewSMTPMailer_RequiresHost(t *testing.T) {
	_, err := NewSMTPMailer(SMTPMailerParams{Config: &config.Config{Mail: &config.MailConfig{}}})
	assert.Error(t, err)
}
