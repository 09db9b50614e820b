package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/mail.v2"

	"github.com/communityportal/notifier/pkg/domain"
)

type fakeDialer struct {
	msgs []*mail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*mail.Message) error {
	f.msgs = append(f.msgs, m...)
	return f.err
}

func TestNew(t *testing.T) {
	s := New(Params{Host: "smtp.example.com", Port: 465, Username: "u", Password: "p", From: "noreply@example.com",
		TLS: true, Timeout: 5 * time.Second})
	assert.Equal(t, "noreply@example.com", s.To, "to defaults to from")

	d, ok := s.dialer.(*mail.Dialer)
	require.True(t, ok)
	assert.Equal(t, "smtp.example.com", d.Host)
	assert.Equal(t, 465, d.Port)
	assert.True(t, d.SSL)
	assert.Equal(t, 5*time.Second, d.Timeout)
	assert.Equal(t, "smtp://smtp.example.com:465 (from noreply@example.com, tls true)", s.String())
}

func TestSMTP_Send(t *testing.T) {
	fd := &fakeDialer{}
	s := New(Params{Host: "localhost", Port: 25, From: "noreply@example.com", To: "digest@example.com"})
	s.dialer = fd

	email := domain.Email{
		Bcc:     []string{"a@example.com", "b@example.com"},
		Subject: "Hromada: new in your community",
		HTML:    "<p>hello</p>",
	}
	require.NoError(t, s.Send(context.Background(), email))
	require.Len(t, fd.msgs, 1)

	msg := fd.msgs[0]
	assert.Equal(t, []string{"noreply@example.com"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"digest@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, msg.GetHeader("Bcc"))
	assert.Equal(t, []string{"Hromada: new in your community"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Content-Type: text/html")
	assert.Contains(t, buf.String(), "<p>hello</p>")
}

func TestSMTP_SendExplicitTo(t *testing.T) {
	fd := &fakeDialer{}
	s := New(Params{Host: "localhost", Port: 25, From: "noreply@example.com"})
	s.dialer = fd

	require.NoError(t, s.Send(context.Background(), domain.Email{To: []string{"x@example.com"}, Subject: "s", HTML: "b"}))
	require.Len(t, fd.msgs, 1)
	assert.Equal(t, []string{"x@example.com"}, fd.msgs[0].GetHeader("To"))
	assert.Empty(t, fd.msgs[0].GetHeader("Bcc"))
}

func TestSMTP_SendErrors(t *testing.T) {
	t.Run("no recipients", func(t *testing.T) {
		fd := &fakeDialer{}
		s := New(Params{Host: "localhost", Port: 25, From: "noreply@example.com"})
		s.dialer = fd
		err := s.Send(context.Background(), domain.Email{Subject: "s"})
		require.EqualError(t, err, "no recipients")
		assert.Empty(t, fd.msgs)
	})

	t.Run("canceled context", func(t *testing.T) {
		fd := &fakeDialer{}
		s := New(Params{Host: "localhost", Port: 25, From: "noreply@example.com"})
		s.dialer = fd
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := s.Send(ctx, domain.Email{Bcc: []string{"a@example.com"}, Subject: "s"})
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, fd.msgs)
	})

	t.Run("dial failure", func(t *testing.T) {
		fd := &fakeDialer{err: errors.New("connection refused")}
		s := New(Params{Host: "localhost", Port: 2525, From: "noreply@example.com"})
		s.dialer = fd
		err := s.Send(context.Background(), domain.Email{Bcc: []string{"a@example.com"}, Subject: "digest"})
		require.Error(t, err)
		assert.Equal(t, `send "digest" via localhost:2525: connection refused`, err.Error())
	})
}
