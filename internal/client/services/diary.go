package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/picdiary/internal/client/client"
	"github.com/dmitrijs2005/picdiary/internal/client/models"
	"github.com/dmitrijs2005/picdiary/internal/filex"
)

var (
	ErrNoInterview     = errors.New("no interview in progress")
	ErrInterviewActive = errors.New("an interview is already in progress")
)

// DiaryService drives interviews and page navigation for one CLI session.
// It remembers the open interview and the page last shown, so next and prev
// work relative to it.
type DiaryService interface {
	StartInterview(ctx context.Context) (string, error)
	Answer(ctx context.Context, answer string) (string, error)
	FinishInterview(ctx context.Context, answer, date string) (*models.Entry, error)
	CancelInterview(ctx context.Context) error
	InInterview() bool

	Write(ctx context.Context, title, body, date string) (*models.Entry, error)
	List(ctx context.Context) ([]*models.Entry, error)
	Show(ctx context.Context, number int) (*models.Page, error)
	Next(ctx context.Context) (*models.Page, error)
	Prev(ctx context.Context) (*models.Page, error)
	Current() int
	Edit(ctx context.Context, number int, title, body string) error
	Delete(ctx context.Context, number int) error
	Export(ctx context.Context, dirName string) (string, int, error)
}

type diaryService struct {
	client client.Client

	mu        sync.Mutex
	sessionID string
	current   int
}

func NewDiaryService(client client.Client) DiaryService {
	return &diaryService{client: client}
}

func (s *diaryService) session() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

func (s *diaryService) setSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionID = id
}

func (s *diaryService) setCurrent(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = n
}

func (s *diaryService) InInterview() bool {
	return s.session() != ""
}

func (s *diaryService) Current() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// StartInterview opens a session and returns the opening question.
func (s *diaryService) StartInterview(ctx context.Context) (string, error) {
	if s.InInterview() {
		return "", ErrInterviewActive
	}
	id, question, err := s.client.StartInterview(ctx)
	if err != nil {
		return "", err
	}
	s.setSession(id)
	return question, nil
}

func (s *diaryService) Answer(ctx context.Context, answer string) (string, error) {
	id := s.session()
	if id == "" {
		return "", ErrNoInterview
	}
	return s.client.Answer(ctx, id, answer)
}

// FinishInterview turns the conversation into a page. On failure the
// session stays open, so the caller can retry.
func (s *diaryService) FinishInterview(ctx context.Context, answer, date string) (*models.Entry, error) {
	id := s.session()
	if id == "" {
		return nil, ErrNoInterview
	}
	e, err := s.client.FinalizeInterview(ctx, id, answer, date)
	if err != nil {
		return nil, err
	}
	s.setSession("")
	s.setCurrent(e.Number)
	return e, nil
}

// CancelInterview discards the open session. A session the server no longer
// knows counts as closed.
func (s *diaryService) CancelInterview(ctx context.Context) error {
	id := s.session()
	if id == "" {
		return ErrNoInterview
	}
	err := s.client.CloseInterview(ctx, id)
	if err != nil && !errors.Is(err, client.ErrNotFound) {
		return err
	}
	s.setSession("")
	return nil
}

func (s *diaryService) Write(ctx context.Context, title, body, date string) (*models.Entry, error) {
	e, err := s.client.CreateEntry(ctx, title, body, date)
	if err != nil {
		return nil, err
	}
	s.setCurrent(e.Number)
	return e, nil
}

func (s *diaryService) List(ctx context.Context) ([]*models.Entry, error) {
	return s.client.ListEntries(ctx)
}

// Show fetches page number. 0 means the latest page.
func (s *diaryService) Show(ctx context.Context, number int) (*models.Page, error) {
	p, err := s.client.GetEntry(ctx, number)
	if err != nil {
		return nil, err
	}
	s.setCurrent(p.Entry.Number)
	return p, nil
}

// Next moves one page forward, wrapping from the last page to the first.
func (s *diaryService) Next(ctx context.Context) (*models.Page, error) {
	return s.Show(ctx, s.Current()+1)
}

// Prev moves one page back, wrapping from the first page to the last.
func (s *diaryService) Prev(ctx context.Context) (*models.Page, error) {
	cur := s.Current()
	if cur <= 1 {
		return s.Show(ctx, 0)
	}
	return s.Show(ctx, cur-1)
}

func (s *diaryService) Edit(ctx context.Context, number int, title, body string) error {
	return s.client.EditEntry(ctx, number, title, body)
}

func (s *diaryService) Delete(ctx context.Context, number int) error {
	if err := s.client.DeleteEntry(ctx, number); err != nil {
		return err
	}
	s.mu.Lock()
	if s.current == number {
		s.current = 0
	}
	s.mu.Unlock()
	return nil
}

// Export writes every page as markdown (plus PNG when illustrated) into
// dirName under the working directory. It returns the directory and the
// number of pages written, which on error counts the pages already on disk.
func (s *diaryService) Export(ctx context.Context, dirName string) (string, int, error) {
	entries, err := s.client.ListEntries(ctx)
	if err != nil {
		return "", 0, err
	}

	dir, err := filex.EnsureSubdDir(dirName)
	if err != nil {
		return "", 0, fmt.Errorf("error creating dir: %w", err)
	}

	written := 0
	for _, e := range entries {
		if _, err := e.Export(dir); err != nil {
			return dir, written, err
		}
		written++
	}
	return dir, written, nil
}
