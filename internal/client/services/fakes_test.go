package services

import (
	"context"

	"github.com/dmitrijs2005/picdiary/internal/client/client"
	"github.com/dmitrijs2005/picdiary/internal/client/models"
)

// fakeClient implements client.Client over an in-memory list of pages.
// Navigation follows the server rules: 0 is the last page and
// len+1 wraps to the first.
type fakeClient struct {
	CloseErr    error
	RegisterErr error
	LoginErr    error
	PingErr     error

	StartErr    error
	FinalizeErr error
	CloseIvErr  error
	ListErr     error
	DeleteErr   error

	loggedIn bool
	closed   bool

	entries []*models.Entry

	LastRegisterUser string
	LastLoginUser    string
	LastLoginPass    []byte
	LastAnswer       string
	LastFinalize     []string
	LastClosed       string
	LastEdit         []any
	Requested        []int
}

func (f *fakeClient) Close() error {
	f.closed = true
	return f.CloseErr
}

func (f *fakeClient) Ping(context.Context) error { return f.PingErr }

func (f *fakeClient) Register(_ context.Context, u string, _ []byte) error {
	f.LastRegisterUser = u
	return f.RegisterErr
}

func (f *fakeClient) Login(_ context.Context, u string, p []byte) error {
	f.LastLoginUser = u
	f.LastLoginPass = append([]byte(nil), p...)
	if f.LoginErr != nil {
		return f.LoginErr
	}
	f.loggedIn = true
	return nil
}

func (f *fakeClient) Logout()        { f.loggedIn = false }
func (f *fakeClient) LoggedIn() bool { return f.loggedIn }

func (f *fakeClient) StartInterview(context.Context) (string, string, error) {
	if f.StartErr != nil {
		return "", "", f.StartErr
	}
	return "s1", "How was your day?", nil
}

func (f *fakeClient) Answer(_ context.Context, id, answer string) (string, error) {
	f.LastAnswer = answer
	return "And then?", nil
}

func (f *fakeClient) FinalizeInterview(_ context.Context, id, answer, date string) (*models.Entry, error) {
	f.LastFinalize = []string{id, answer, date}
	if f.FinalizeErr != nil {
		return nil, f.FinalizeErr
	}
	return f.add("Interview", answer, date), nil
}

func (f *fakeClient) CloseInterview(_ context.Context, id string) error {
	f.LastClosed = id
	return f.CloseIvErr
}

func (f *fakeClient) add(title, body, date string) *models.Entry {
	if date == "" {
		date = "2024-05-11"
	}
	e := &models.Entry{Number: len(f.entries) + 1, Title: title, Body: body, Date: date}
	f.entries = append(f.entries, e)
	return e
}

func (f *fakeClient) CreateEntry(_ context.Context, title, body, date string) (*models.Entry, error) {
	return f.add(title, body, date), nil
}

func (f *fakeClient) ListEntries(context.Context) ([]*models.Entry, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return f.entries, nil
}

func (f *fakeClient) GetEntry(_ context.Context, n int) (*models.Page, error) {
	f.Requested = append(f.Requested, n)
	count := len(f.entries)
	if count == 0 {
		return nil, client.ErrNotFound
	}
	redirected := false
	switch {
	case n == 0:
		n, redirected = count, true
	case n == count+1:
		n, redirected = 1, true
	case n < 0 || n > count:
		return nil, client.ErrNotFound
	}
	return &models.Page{Entry: f.entries[n-1], Redirected: redirected, PostCount: count}, nil
}

func (f *fakeClient) EditEntry(_ context.Context, n int, title, body string) error {
	f.LastEdit = []any{n, title, body}
	if n < 1 || n > len(f.entries) {
		return client.ErrNotFound
	}
	f.entries[n-1].Title = title
	f.entries[n-1].Body = body
	return nil
}

func (f *fakeClient) DeleteEntry(_ context.Context, n int) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	if n < 1 || n > len(f.entries) {
		return client.ErrNotFound
	}
	f.entries = append(f.entries[:n-1], f.entries[n:]...)
	for i, e := range f.entries {
		e.Number = i + 1
	}
	return nil
}
