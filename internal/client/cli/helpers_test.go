package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/picdiary/internal/client/config"
	"github.com/dmitrijs2005/picdiary/internal/client/models"
	"github.com/dmitrijs2005/picdiary/internal/client/services"
	"github.com/dmitrijs2005/picdiary/internal/logging"
)

func stubPassword(t *testing.T, pw []byte) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), pw...), nil }
	t.Cleanup(func() { getPassword = orig })
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func newTestApp(t *testing.T, input string, as services.AuthService, ds services.DiaryService) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	var out bytes.Buffer
	return &App{
		config:       cfg,
		authService:  as,
		diaryService: ds,
		logger:       logging.Nop(),
		reader:       bufio.NewReader(strings.NewReader(input)),
		out:          &out,
	}, &out
}

// ---- fake auth ----

type fakeAuth struct {
	regUser string
	regPass []byte
	regErr  error

	loginUser string
	loginPass []byte
	loginErr  error

	loggedIn bool
	pingErr  error
	closed   bool
}

func (f *fakeAuth) Register(_ context.Context, user string, pass []byte) error {
	f.regUser, f.regPass = user, append([]byte(nil), pass...)
	return f.regErr
}

func (f *fakeAuth) Login(_ context.Context, user string, pass []byte) error {
	f.loginUser, f.loginPass = user, append([]byte(nil), pass...)
	if f.loginErr != nil {
		return f.loginErr
	}
	f.loggedIn = true
	return nil
}

func (f *fakeAuth) Logout()                     { f.loggedIn = false }
func (f *fakeAuth) LoggedIn() bool              { return f.loggedIn }
func (f *fakeAuth) Ping(context.Context) error  { return f.pingErr }
func (f *fakeAuth) Close(context.Context) error { f.closed = true; return nil }

// ---- fake diary ----

type fakeDiary struct {
	calls []string

	startErr  error
	answerErr error

	// finishErrs are returned by successive FinishInterview calls
	finishErrs []error

	inInterview bool

	entry *models.Entry
	page  *models.Page
	list  []*models.Entry
	err   error

	lastAnswer string
	lastDate   string
	lastWrite  []string
	lastEdit   []any
	lastShow   int
	lastDelete int
	exportDir  string
	exported   int
}

func (f *fakeDiary) StartInterview(context.Context) (string, error) {
	f.calls = append(f.calls, "start")
	if f.startErr != nil {
		return "", f.startErr
	}
	f.inInterview = true
	return "How was your day?", nil
}

func (f *fakeDiary) Answer(_ context.Context, answer string) (string, error) {
	f.calls = append(f.calls, "answer:"+answer)
	if f.answerErr != nil {
		return "", f.answerErr
	}
	return "What did you eat?", nil
}

func (f *fakeDiary) FinishInterview(_ context.Context, answer, date string) (*models.Entry, error) {
	f.calls = append(f.calls, "finish")
	f.lastDate = date
	if len(f.finishErrs) > 0 {
		err := f.finishErrs[0]
		f.finishErrs = f.finishErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	f.inInterview = false
	return f.entry, nil
}

func (f *fakeDiary) CancelInterview(context.Context) error {
	f.calls = append(f.calls, "cancel")
	f.inInterview = false
	return nil
}

func (f *fakeDiary) InInterview() bool { return f.inInterview }

func (f *fakeDiary) Write(_ context.Context, title, body, date string) (*models.Entry, error) {
	f.lastWrite = []string{title, body, date}
	return f.entry, f.err
}

func (f *fakeDiary) List(context.Context) ([]*models.Entry, error) { return f.list, f.err }

func (f *fakeDiary) Show(_ context.Context, n int) (*models.Page, error) {
	f.lastShow = n
	f.calls = append(f.calls, "show")
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func (f *fakeDiary) Next(context.Context) (*models.Page, error) {
	f.calls = append(f.calls, "next")
	return f.page, f.err
}

func (f *fakeDiary) Prev(context.Context) (*models.Page, error) {
	f.calls = append(f.calls, "prev")
	return f.page, f.err
}

func (f *fakeDiary) Current() int { return 0 }

func (f *fakeDiary) Edit(_ context.Context, n int, title, body string) error {
	f.lastEdit = []any{n, title, body}
	return f.err
}

func (f *fakeDiary) Delete(_ context.Context, n int) error {
	f.lastDelete = n
	return f.err
}

func (f *fakeDiary) Export(_ context.Context, dir string) (string, int, error) {
	f.exportDir = dir
	if f.err != nil {
		return "/tmp/" + dir, f.exported, f.err
	}
	return "/tmp/" + dir, len(f.list), nil
}
