package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"hackfest/internal/lib"
	"hackfest/internal/lib/config"
	"hackfest/internal/models"

	"github.com/wneessen/go-mail"
)

var ErrNoHost = errors.New("smtp host is not configured")

var inviteTemplate = template.Must(template.New("invite").Parse(
	`Hi {{.Invitee}},

{{.Leader}} ({{.LeaderEmail}}) invited you to join the team "{{.Team}}".

Accept or decline the invitation here: {{.Link}}
`))

type inviteData struct {
	Invitee     string
	Leader      string
	LeaderEmail string
	Team        string
	Link        string
}

// Sender delivers prepared messages. *mail.Client implements it.
type Sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type Mailer struct {
	sender   Sender
	from     string
	fromName string
	baseURL  string
}

// New creates a Mailer backed by an SMTP client with plain auth.
func New(cfg config.Mail) (*Mailer, error) {
	const op = "mailer.New"

	if cfg.Host == "" {
		return nil, lib.Err(op, ErrNoHost)
	}

	opts := []mail.Option{mail.WithPort(cfg.Port)}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	c, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return NewWithSender(c, cfg), nil
}

func NewWithSender(sender Sender, cfg config.Mail) *Mailer {
	return &Mailer{
		sender:   sender,
		from:     cfg.From,
		fromName: cfg.FromName,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// NotifyTeamInvites sends one message per invitee in a single SMTP session.
func (m *Mailer) NotifyTeamInvites(ctx context.Context, team *models.Team, leader *models.User, invitees []*models.User) error {
	const op = "mailer.NotifyTeamInvites"

	msgs := make([]*mail.Msg, 0, len(invitees))
	for _, invitee := range invitees {
		msg, err := m.inviteMessage(team, leader, invitee)
		if err != nil {
			return lib.Err(op, err)
		}
		msgs = append(msgs, msg)
	}

	if len(msgs) == 0 {
		return nil
	}

	if err := m.sender.DialAndSendWithContext(ctx, msgs...); err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func (m *Mailer) inviteMessage(team *models.Team, leader, invitee *models.User) (*mail.Msg, error) {
	msg := mail.NewMsg()

	if err := msg.FromFormat(m.fromName, m.from); err != nil {
		return nil, fmt.Errorf("set from: %w", err)
	}
	if err := msg.AddToFormat(invitee.Name, invitee.Email); err != nil {
		return nil, fmt.Errorf("set to %s: %w", invitee.Email, err)
	}
	if err := msg.ReplyTo(leader.Email); err != nil {
		return nil, fmt.Errorf("set reply-to: %w", err)
	}

	msg.Subject(fmt.Sprintf("You are invited to join %s", team.Name))

	data := inviteData{
		Invitee:     invitee.Name,
		Leader:      leader.Name,
		LeaderEmail: leader.Email,
		Team:        team.Name,
		Link:        m.baseURL + "/invites",
	}
	if err := msg.SetBodyTextTemplate(inviteTemplate, data); err != nil {
		return nil, fmt.Errorf("render body: %w", err)
	}

	return msg, nil
}
