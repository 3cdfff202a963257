package contact

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tauqeerkhan/portfolio/internal/storage"
)

type fakeStore struct {
	saved []Form
	err   error
}

func (s *fakeStore) Save(_ context.Context, f Form) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, f)
	return "doc-1", nil
}

type fakeNotifier struct {
	calls int
	err   error
}

func (n *fakeNotifier) Notify(context.Context, Form) error {
	n.calls++
	return n.err
}

var validForm = Form{
	Name:    "Ada Lovelace",
	Email:   "ada@example.com",
	Subject: "Collaboration",
	Message: "I'd love to work together on a project.",
}

func TestForm_Validate(t *testing.T) {
	tests := []struct {
		name string
		form Form
		want FieldErrors
	}{
		{"valid", validForm, nil},
		{
			"short name and bad email",
			Form{Name: "Al", Email: "bad", Subject: "Hi", Message: "Hello there"},
			FieldErrors{
				"name":    {"Name must be at least 3 characters."},
				"email":   {"Invalid email address."},
				"subject": {"Subject must be at least 5 characters."},
			},
		},
		{
			"short message",
			Form{Name: "Ada", Email: "ada@example.com", Subject: "Hello", Message: "Hi"},
			FieldErrors{"message": {"Message must be at least 10 characters."}},
		},
		{
			"empty",
			Form{},
			FieldErrors{
				"name":    {"Name must be at least 3 characters."},
				"email":   {"Invalid email address."},
				"subject": {"Subject must be at least 5 characters."},
				"message": {"Message must be at least 10 characters."},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.form.Validate())
		})
	}
}

func TestService_InvalidFormNeverReachesStore(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier, nil)

	res := svc.Submit(context.Background(), Form{Name: "Al", Email: "bad", Subject: "Hi", Message: "Hello there"})

	assert.False(t, res.Success)
	assert.Equal(t, MsgInvalid, res.Message)
	assert.Contains(t, res.Errors, "name")
	assert.Contains(t, res.Errors, "email")
	assert.Empty(t, store.saved)
	assert.Zero(t, notifier.calls)
}

func TestService_SavesTrimmedForm(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	svc := NewService(store, notifier, nil)

	f := validForm
	f.Name = "  Ada Lovelace  "
	res := svc.Submit(context.Background(), f)

	assert.True(t, res.Success)
	assert.Equal(t, MsgSaved, res.Message)
	assert.Equal(t, "doc-1", res.ID)
	require.Len(t, store.saved, 1)
	assert.Equal(t, "Ada Lovelace", store.saved[0].Name)
	assert.Equal(t, 1, notifier.calls)
}

func TestService_StoreFailure(t *testing.T) {
	svc := NewService(&fakeStore{err: errors.New("permission denied")}, nil, nil)

	res := svc.Submit(context.Background(), validForm)

	assert.False(t, res.Success)
	assert.Equal(t, MsgStoreFailed, res.Message)
	assert.Empty(t, res.Errors)
}

func TestService_NoStore(t *testing.T) {
	res := NewService(nil, nil, nil).Submit(context.Background(), validForm)
	assert.False(t, res.Success)
	assert.Equal(t, MsgStoreFailed, res.Message)
}

func TestMirrorStore(t *testing.T) {
	primary := &fakeStore{}
	mirror := &fakeStore{err: errors.New("disk full")}
	m := &MirrorStore{Primary: primary, Mirror: mirror}

	id, err := m.Save(context.Background(), validForm)
	require.NoError(t, err)
	assert.Equal(t, "doc-1", id)
	assert.Len(t, primary.saved, 1)

	m.Primary = &fakeStore{err: errors.New("unavailable")}
	_, err = m.Save(context.Background(), validForm)
	assert.Error(t, err)
}

func TestSQLiteStore(t *testing.T) {
	db, err := storage.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := NewSQLiteStore(db)
	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))

	base := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }
	_, err = store.Save(ctx, validForm)
	require.NoError(t, err)

	store.now = func() time.Time { return base.Add(time.Hour) }
	second := validForm
	second.Subject = "Follow up"
	id, err := store.Save(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "2", id)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	msgs, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Follow up", msgs[0].Subject)
	assert.Equal(t, base.Add(time.Hour), msgs[0].CreatedAt.UTC())
}

func TestSMTPNotifier(t *testing.T) {
	n := NewSMTPNotifier(SMTPConfig{User: "me@example.com", Password: "secret", To: "owner@example.com"})

	var gotAddr string
	var gotMsg []byte
	n.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotMsg = msg
		assert.Equal(t, "me@example.com", from)
		assert.Equal(t, []string{"owner@example.com"}, to)
		return nil
	}

	f := validForm
	f.Email = "ada@example.com\r\nBcc: victim@example.com"
	require.NoError(t, n.Notify(context.Background(), f))

	assert.Equal(t, "smtp.gmail.com:587", gotAddr)
	assert.Contains(t, string(gotMsg), "Subject: Portfolio Contact: Collaboration\r\n")
	headers := strings.SplitN(string(gotMsg), "\r\n\r\n", 2)[0]
	assert.NotContains(t, headers, "\r\nBcc:")
}

func TestSMTPConfig_Enabled(t *testing.T) {
	assert.False(t, SMTPConfig{}.Enabled())
	assert.True(t, SMTPConfig{User: "u", Password: "p", To: "t"}.Enabled())
}
