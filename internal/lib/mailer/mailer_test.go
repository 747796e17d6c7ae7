package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"hackfest/internal/lib/config"
	"hackfest/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

type fakeSender struct {
	sent []*mail.Msg
	err  error
}

func (f *fakeSender) DialAndSendWithContext(_ context.Context, messages ...*mail.Msg) error {
	f.sent = append(f.sent, messages...)
	return f.err
}

var testCfg = config.Mail{
	From:     "noreply@fest.io",
	FromName: "Hackfest",
	BaseURL:  "https://fest.io/",
}

func TestMailer_NotifyTeamInvites(t *testing.T) {
	sender := &fakeSender{}
	m := NewWithSender(sender, testCfg)

	team := &models.Team{ID: "t1", Name: "Alpha"}
	leader := &models.User{ID: "l", Name: "Lena", Email: "lena@fest.io"}
	invitees := []*models.User{
		{ID: "a", Name: "Alice", Email: "alice@fest.io"},
		{ID: "b", Name: "Bob", Email: "bob@fest.io"},
	}

	err := m.NotifyTeamInvites(context.Background(), team, leader, invitees)

	require.NoError(t, err)
	require.Len(t, sender.sent, 2)

	first := sender.sent[0]
	assert.Equal(t, []string{"You are invited to join Alpha"}, first.GetGenHeader(mail.HeaderSubject))
	assert.Contains(t, first.GetToString()[0], "alice@fest.io")

	var buf bytes.Buffer
	_, err = first.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "https://fest.io/invites")
	assert.Contains(t, buf.String(), "lena@fest.io")
}

func TestMailer_NotifyTeamInvites_NoInvitees(t *testing.T) {
	sender := &fakeSender{}
	m := NewWithSender(sender, testCfg)

	err := m.NotifyTeamInvites(context.Background(), &models.Team{Name: "Solo"}, &models.User{Email: "lena@fest.io"}, nil)

	assert.NoError(t, err)
	assert.Empty(t, sender.sent)
}

func TestMailer_NotifyTeamInvites_SendError(t *testing.T) {
	sendErr := errors.New("connection refused")
	m := NewWithSender(&fakeSender{err: sendErr}, testCfg)

	err := m.NotifyTeamInvites(
		context.Background(),
		&models.Team{Name: "Alpha"},
		&models.User{Name: "Lena", Email: "lena@fest.io"},
		[]*models.User{{Name: "Alice", Email: "alice@fest.io"}},
	)

	assert.ErrorIs(t, err, sendErr)
}

func TestMailer_NotifyTeamInvites_BadAddress(t *testing.T) {
	sender := &fakeSender{}
	m := NewWithSender(sender, testCfg)

	err := m.NotifyTeamInvites(
		context.Background(),
		&models.Team{Name: "Alpha"},
		&models.User{Name: "Lena", Email: "lena@fest.io"},
		[]*models.User{{Name: "Alice", Email: "not an address"}},
	)

	assert.Error(t, err)
	assert.Empty(t, sender.sent)
}

func TestNew_RequiresHost(t *testing.T) {
	_, err := New(config.Mail{})

	assert.ErrorIs(t, err, ErrNoHost)
}
