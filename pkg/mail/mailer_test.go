package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeSMTPClient struct {
	from    string
	rcpts   []string
	data    bytes.Buffer
	quitted bool
}

func (f *fakeSMTPClient) Mail(from string) error { f.from = from; return nil }
func (f *fakeSMTPClient) Rcpt(to string) error   { f.rcpts = append(f.rcpts, to); return nil }
func (f *fakeSMTPClient) Data() (io.WriteCloser, error) {
	return nopWriteCloser{&f.data}, nil
}
func (f *fakeSMTPClient) Quit() error                      { f.quitted = true; return nil }
func (f *fakeSMTPClient) Close() error                     { return nil }
func (f *fakeSMTPClient) StartTLS(*tls.Config) error       { return nil }
func (f *fakeSMTPClient) Auth(smtp.Auth) error             { return nil }
func (f *fakeSMTPClient) Extension(string) (bool, string)  { return false, "" }

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func newTestMailer(client *fakeSMTPClient) *smtpMailer {
	return &smtpMailer{
		cfg: SMTPSettings{
			Enabled: true,
			Host:    "smtp.example.com",
			Port:    587,
			From:    "mariage@example.com",
		},
		dialFn: func(context.Context, SMTPSettings) (net.Conn, smtpClient, error) {
			server, clientConn := net.Pipe()
			_ = server.Close()
			return clientConn, client, nil
		},
		authFn: func(smtpClient, SMTPSettings) error { return nil },
	}
}

func TestSendFormatsMessage(t *testing.T) {
	client := &fakeSMTPClient{}
	mailer := newTestMailer(client)

	err := mailer.Send(context.Background(), Message{
		To:      []string{"jean.d@x.com"},
		Subject: "Confirmation",
		Body:    "Merci !",
	})
	require.NoError(t, err)

	require.Equal(t, "mariage@example.com", client.from)
	require.Equal(t, []string{"jean.d@x.com"}, client.rcpts)
	require.Contains(t, client.data.String(), "Subject: Confirmation")
	require.Contains(t, client.data.String(), "Merci !")
	require.True(t, client.quitted)
}

func TestSendRejectsMissingRecipients(t *testing.T) {
	mailer := newTestMailer(&fakeSMTPClient{})

	err := mailer.Send(context.Background(), Message{Subject: "x", Body: "y"})
	require.Error(t, err)
}

func TestSendDisabled(t *testing.T) {
	mailer, err := NewSMTPMailer(SMTPSettings{Enabled: false})
	require.NoError(t, err)

	err = mailer.Send(context.Background(), Message{To: []string{"a@b.fr"}})
	require.ErrorIs(t, err, ErrSMTPDisabled)
}

func TestNewSMTPMailerValidatesConfig(t *testing.T) {
	_, err := NewSMTPMailer(SMTPSettings{Enabled: true})
	require.Error(t, err)
}

func TestEscapeHeaderStripsNewlines(t *testing.T) {
	require.Equal(t, "a b", escapeHeader("a\r\nb"))
}
