package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/picdiary/internal/common"
	"github.com/dmitrijs2005/picdiary/internal/dbx"
	"github.com/dmitrijs2005/picdiary/internal/server/models"
	"github.com/dmitrijs2005/picdiary/internal/server/repositories/entries"
	"github.com/dmitrijs2005/picdiary/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/picdiary/internal/server/repositories/users"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// fakeData is an in-memory stand-in for the three tables. It ignores
// transactions; tests that need rollback use sqlmock with the real repos.
type fakeData struct {
	mu      sync.Mutex
	users   map[string]*models.User
	entries map[string]map[int]*models.DiaryEntry
	tokens  map[string]*models.RefreshToken
	nextID  int64

	// errors injected per operation name
	fail map[string]error
}

func newFakeData() *fakeData {
	return &fakeData{
		users:   map[string]*models.User{},
		entries: map[string]map[int]*models.DiaryEntry{},
		tokens:  map[string]*models.RefreshToken{},
		fail:    map[string]error{},
	}
}

func (d *fakeData) addUser(name string, hash []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users[name] = &models.User{ID: "id-" + name, UserName: name, PasswordHash: hash}
	d.entries[name] = map[int]*models.DiaryEntry{}
}

func (d *fakeData) postCount(name string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.users[name].PostCount
}

func (d *fakeData) numbers(owner string) []int {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []int
	for n := range d.entries[owner] {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

func (d *fakeData) entry(owner string, n int) *models.DiaryEntry {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.entries[owner][n]
}

// put stores an entry directly, bypassing post_count.
func (d *fakeData) put(e *models.DiaryEntry) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	e.ID = d.nextID
	d.entries[e.Owner][e.SequenceNumber] = e
}

type fakeRepoManager struct {
	data *fakeData
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository         { return &fakeUsers{m.data} }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository {
	return &fakeTokens{m.data}
}
func (m *fakeRepoManager) Entries(dbx.DBTX) entries.Repository { return &fakeEntries{m.data} }

type fakeUsers struct{ d *fakeData }

func (f *fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	if err := f.d.fail["users.create"]; err != nil {
		return nil, err
	}
	if _, ok := f.d.users[u.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}
	cp := *u
	cp.ID = "id-" + u.UserName
	f.d.users[u.UserName] = &cp
	f.d.entries[u.UserName] = map[int]*models.DiaryEntry{}
	return &cp, nil
}

func (f *fakeUsers) GetUserByLogin(_ context.Context, login string) (*models.User, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	if err := f.d.fail["users.get"]; err != nil {
		return nil, err
	}
	u, ok := f.d.users[login]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) IncrementPostCount(_ context.Context, login string) (int, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	u, ok := f.d.users[login]
	if !ok {
		return 0, common.ErrorNotFound
	}
	u.PostCount++
	return u.PostCount, nil
}

func (f *fakeUsers) DecrementPostCount(_ context.Context, login string) (int, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	u, ok := f.d.users[login]
	if !ok {
		return 0, common.ErrorNotFound
	}
	if u.PostCount > 0 {
		u.PostCount--
	}
	return u.PostCount, nil
}

type fakeEntries struct{ d *fakeData }

func (f *fakeEntries) Create(_ context.Context, e *models.DiaryEntry) error {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	if err := f.d.fail["entries.create"]; err != nil {
		return err
	}
	if _, taken := f.d.entries[e.Owner][e.SequenceNumber]; taken {
		return common.ErrorAlreadyExists
	}
	f.d.nextID++
	e.ID = f.d.nextID
	cp := *e
	cp.Image = nil
	f.d.entries[e.Owner][e.SequenceNumber] = &cp
	return nil
}

func (f *fakeEntries) Get(_ context.Context, owner string, seq int) (*models.DiaryEntry, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	e, ok := f.d.entries[owner][seq]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEntries) Exists(_ context.Context, owner string, seq int) (bool, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	_, ok := f.d.entries[owner][seq]
	return ok, nil
}

func (f *fakeEntries) List(_ context.Context, owner string) ([]*models.DiaryEntry, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	var out []*models.DiaryEntry
	for _, e := range f.d.entries[owner] {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SequenceNumber < out[j].SequenceNumber })
	return out, nil
}

func (f *fakeEntries) UpdateText(_ context.Context, owner string, seq int, title, body string) error {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	e, ok := f.d.entries[owner][seq]
	if !ok {
		return common.ErrorNotFound
	}
	e.Title, e.Body = title, body
	return nil
}

func (f *fakeEntries) Delete(_ context.Context, owner string, seq int) (string, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	e, ok := f.d.entries[owner][seq]
	if !ok {
		return "", common.ErrorNotFound
	}
	delete(f.d.entries[owner], seq)
	return e.ImageKey, nil
}

func (f *fakeEntries) ShiftDown(_ context.Context, owner string, seq int) (int64, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	var moved []int
	for n := range f.d.entries[owner] {
		if n > seq {
			moved = append(moved, n)
		}
	}
	sort.Ints(moved)
	for _, n := range moved {
		e := f.d.entries[owner][n]
		delete(f.d.entries[owner], n)
		e.SequenceNumber = n - 1
		f.d.entries[owner][n-1] = e
	}
	return int64(len(moved)), nil
}

type fakeTokens struct{ d *fakeData }

func (f *fakeTokens) Create(_ context.Context, userName, token string, validity time.Duration) error {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	if err := f.d.fail["tokens.create"]; err != nil {
		return err
	}
	f.d.tokens[token] = &models.RefreshToken{UserName: userName, Token: token, Expires: time.Now().Add(validity)}
	return nil
}

func (f *fakeTokens) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	if err := f.d.fail["tokens.find"]; err != nil {
		return nil, err
	}
	t, ok := f.d.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTokens) Delete(_ context.Context, token string) error {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	if err := f.d.fail["tokens.delete"]; err != nil {
		return err
	}
	delete(f.d.tokens, token)
	return nil
}

func (f *fakeTokens) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	var n int64
	for k, t := range f.d.tokens {
		if t.Expires.Before(now) {
			delete(f.d.tokens, k)
			n++
		}
	}
	return n, nil
}
