package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/picdiary/internal/common"
	"github.com/dmitrijs2005/picdiary/internal/logging"
	"github.com/dmitrijs2005/picdiary/internal/observe"
	"github.com/dmitrijs2005/picdiary/internal/server/models"
	"github.com/dmitrijs2005/picdiary/internal/server/transcript"
	"golang.org/x/sync/errgroup"
)

// Asker produces the next interview question.
type Asker interface {
	Ask(ctx context.Context, sessionID, answer string) (string, error)
}

// Compiler turns a transcript into a diary body and a title.
type Compiler interface {
	Summarize(ctx context.Context, entries []transcript.Entry) (string, error)
	Title(ctx context.Context, body string) (string, error)
}

// Illustrator draws a picture for a diary body. A nil result means no
// usable picture.
type Illustrator interface {
	Illustrate(ctx context.Context, body string) ([]byte, error)
}

// EntryStore persists a compiled draft.
type EntryStore interface {
	Finalize(ctx context.Context, owner string, d Draft) (*models.DiaryEntry, error)
}

// InterviewService runs interview sessions from the first question to the
// stored diary entry.
type InterviewService struct {
	transcripts     *transcript.Store
	asker           Asker
	compiler        Compiler
	illustrator     Illustrator
	entries         EntryStore
	openingQuestion string
	log             logging.Logger
	metrics         *observe.Collector
}

func NewInterviewService(store *transcript.Store, asker Asker, c Compiler, il Illustrator, entries EntryStore,
	openingQuestion string, log logging.Logger, metrics *observe.Collector) *InterviewService {
	if log == nil {
		log = logging.Nop()
	}
	return &InterviewService{
		transcripts:     store,
		asker:           asker,
		compiler:        c,
		illustrator:     il,
		entries:         entries,
		openingQuestion: openingQuestion,
		log:             log.With("module", "interview-service"),
		metrics:         metrics,
	}
}

// Start opens a new session for owner and returns its id together with the
// opening question.
func (s *InterviewService) Start(ctx context.Context, owner string) (string, string) {
	id := s.transcripts.Create(owner)
	s.updateGauge()
	s.log.Debug(ctx, "interview started", "owner", owner, "session", id)
	return id, s.openingQuestion
}

// Answer records answer and returns the next question.
func (s *InterviewService) Answer(ctx context.Context, owner, sessionID, answer string) (string, error) {
	if err := s.checkOwner(owner, sessionID); err != nil {
		return "", err
	}

	var question string
	err := s.transcripts.Exclusive(sessionID, func() error {
		var err error
		question, err = s.asker.Ask(ctx, sessionID, answer)
		return err
	})
	return question, err
}

// Finalize compiles the session into a diary entry. A non-blank finalAnswer
// is appended first. On success the transcript is reset to its seed; on
// failure nothing is stored and the transcript keeps everything appended so
// far, so the call can be repeated.
func (s *InterviewService) Finalize(ctx context.Context, owner, sessionID, finalAnswer, date string) (*models.DiaryEntry, error) {
	if err := s.checkOwner(owner, sessionID); err != nil {
		return nil, err
	}

	var entry *models.DiaryEntry
	err := s.transcripts.Exclusive(sessionID, func() error {
		if strings.TrimSpace(finalAnswer) != "" {
			if err := s.transcripts.Append(sessionID, transcript.RoleUser, finalAnswer); err != nil {
				return err
			}
		}

		entries, err := s.transcripts.Snapshot(sessionID, true)
		if err != nil {
			return err
		}

		body, err := s.compiler.Summarize(ctx, entries)
		if err != nil {
			return err
		}

		title, image, err := s.decorate(ctx, body)
		if err != nil {
			return err
		}

		entry, err = s.entries.Finalize(ctx, owner, Draft{
			Title:  title,
			Body:   body,
			Date:   date,
			Image:  image,
			Source: SourceInterview,
		})
		if err != nil {
			return err
		}

		// the entry is stored; a session closed meanwhile is gone after this step
		if err := s.transcripts.Reset(sessionID); err != nil && !errors.Is(err, common.ErrSessionNotFound) {
			return err
		}
		return nil
	})
	if err != nil {
		s.log.Error(ctx, "finalize failed", "owner", owner, "session", sessionID, "error", err)
		return nil, err
	}
	return entry, nil
}

// Create stores a hand-written entry. The body is illustrated the same way
// as an interview entry.
func (s *InterviewService) Create(ctx context.Context, owner, title, body, date string) (*models.DiaryEntry, error) {
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: body must not be empty", common.ErrorValidation)
	}

	image, err := s.illustrator.Illustrate(ctx, body)
	if err != nil {
		return nil, err
	}

	return s.entries.Finalize(ctx, owner, Draft{
		Title:  title,
		Body:   body,
		Date:   date,
		Image:  image,
		Source: SourceManual,
	})
}

// Close ends a session without storing anything.
func (s *InterviewService) Close(owner, sessionID string) error {
	if err := s.checkOwner(owner, sessionID); err != nil {
		return err
	}
	s.transcripts.Close(sessionID)
	s.updateGauge()
	return nil
}

// Sweep drops idle sessions.
func (s *InterviewService) Sweep(ctx context.Context, now time.Time) int {
	n := s.transcripts.Sweep(now)
	if n > 0 {
		s.log.Info(ctx, "expired interview sessions dropped", "count", n)
		if s.metrics != nil {
			s.metrics.SessionsExpired.Add(float64(n))
		}
	}
	s.updateGauge()
	return n
}

// decorate runs title and illustration generation concurrently.
func (s *InterviewService) decorate(ctx context.Context, body string) (string, []byte, error) {
	var (
		title string
		image []byte
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		title, err = s.compiler.Title(gctx, body)
		return err
	})
	g.Go(func() error {
		var err error
		image, err = s.illustrator.Illustrate(gctx, body)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", nil, err
	}
	return title, image, nil
}

// checkOwner hides other users' sessions behind ErrSessionNotFound.
func (s *InterviewService) checkOwner(owner, sessionID string) error {
	got, err := s.transcripts.Owner(sessionID)
	if err != nil {
		return err
	}
	if got != owner {
		return common.ErrSessionNotFound
	}
	return nil
}

func (s *InterviewService) updateGauge() {
	if s.metrics != nil {
		s.metrics.ActiveSessions.Set(float64(s.transcripts.Len()))
	}
}
