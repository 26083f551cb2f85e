package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dmitrijs2005/picdiary/internal/common"
	"github.com/dmitrijs2005/picdiary/internal/dbx"
	"github.com/dmitrijs2005/picdiary/internal/imagex"
	"github.com/dmitrijs2005/picdiary/internal/logging"
	"github.com/dmitrijs2005/picdiary/internal/observe"
	"github.com/dmitrijs2005/picdiary/internal/server/config"
	"github.com/dmitrijs2005/picdiary/internal/server/imagestore"
	"github.com/dmitrijs2005/picdiary/internal/server/models"
	"github.com/dmitrijs2005/picdiary/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/picdiary/internal/timex"
)

// Entry sources, used as a metrics label.
const (
	SourceInterview = "interview"
	SourceManual    = "manual"
)

const entryDateLayout = "2006-01-02"

var entryDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseEntryDate reads a YYYY-MM-DD date. Anything else, including
// calendar-impossible days such as 2024-02-30, falls back to the calendar
// day of now. The result is midnight UTC of the chosen day.
func ParseEntryDate(input string, now time.Time) time.Time {
	if entryDatePattern.MatchString(input) {
		if d, err := time.Parse(entryDateLayout, input); err == nil {
			return d
		}
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Draft is a compiled entry waiting to be stored.
type Draft struct {
	Title string
	Body  string
	// Date is the raw user input; see ParseEntryDate.
	Date string
	// Image is PNG bytes, or nil for an entry without a picture.
	Image  []byte
	Source string
}

// Page is the result of navigating to an entry.
type Page struct {
	Entry *models.DiaryEntry
	// ImageURI is the PNG data URI of the illustration, "" when none.
	ImageURI string
	// Number is the sequence number actually shown.
	Number int
	// Redirected is set when the requested number wrapped around.
	Redirected bool
	PostCount  int
}

// DiaryService persists diary entries and serves sequential, wrapping
// navigation over them.
type DiaryService struct {
	db           *sql.DB
	repomanager  repomanager.RepositoryManager
	images       imagestore.Store
	deletePolicy string
	loc          *time.Location
	now          func() time.Time
	log          logging.Logger
	metrics      *observe.Collector
}

// DiaryOption configures a DiaryService.
type DiaryOption func(*DiaryService)

// WithClock overrides the time source.
func WithClock(now func() time.Time) DiaryOption {
	return func(s *DiaryService) { s.now = now }
}

// WithMetrics records stored and deleted entries.
func WithMetrics(c *observe.Collector) DiaryOption {
	return func(s *DiaryService) { s.metrics = c }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) DiaryOption {
	return func(s *DiaryService) { s.log = l.With("module", "diary") }
}

func NewDiaryService(db *sql.DB, m repomanager.RepositoryManager, images imagestore.Store,
	deletePolicy string, loc *time.Location, opts ...DiaryOption) *DiaryService {
	if loc == nil {
		loc = time.UTC
	}
	if deletePolicy == "" {
		deletePolicy = config.DeletePolicyGap
	}
	s := &DiaryService{
		db:           db,
		repomanager:  m,
		images:       images,
		deletePolicy: deletePolicy,
		loc:          loc,
		now:          time.Now,
		log:          logging.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Finalize stores a new entry for owner. The post_count increment and the
// row insert commit together or not at all. The illustration is uploaded
// first and removed again if the transaction fails.
func (s *DiaryService) Finalize(ctx context.Context, owner string, d Draft) (*models.DiaryEntry, error) {
	now := s.now().In(s.loc)

	entry := &models.DiaryEntry{
		Owner:     owner,
		Title:     d.Title,
		Body:      d.Body,
		EntryDate: ParseEntryDate(d.Date, now),
		CreatedAt: timex.TruncateToMinute(now),
		Image:     d.Image,
	}

	if len(d.Image) > 0 {
		key := imagestore.NewKey(owner, now)
		if err := s.images.Put(ctx, key, d.Image); err != nil {
			return nil, fmt.Errorf("error storing illustration: %w", err)
		}
		entry.ImageKey = key
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		userRepo := s.repomanager.Users(tx)
		entryRepo := s.repomanager.Entries(tx)

		n, err := userRepo.IncrementPostCount(ctx, owner)
		if err != nil {
			return err
		}
		// After a gap deletion post_count may point at a number that is
		// still taken; move on to the next free one.
		for {
			taken, err := entryRepo.Exists(ctx, owner, n)
			if err != nil {
				return err
			}
			if !taken {
				break
			}
			if n, err = userRepo.IncrementPostCount(ctx, owner); err != nil {
				return err
			}
		}

		entry.SequenceNumber = n
		return entryRepo.Create(ctx, entry)
	})
	if err != nil {
		if entry.ImageKey != "" {
			s.dropImage(ctx, entry.ImageKey)
		}
		return nil, fmt.Errorf("error storing entry: %w", err)
	}

	if s.metrics != nil {
		source := d.Source
		if source == "" {
			source = SourceManual
		}
		s.metrics.EntriesStored.WithLabelValues(source).Inc()
	}
	s.log.Info(ctx, "diary entry stored", "owner", owner, "number", entry.SequenceNumber, "image", entry.HasImage())
	return entry, nil
}

// Navigate resolves requested against the owner's post_count: 0 wraps to the
// last number and post_count+1 wraps to 1.
func (s *DiaryService) Navigate(ctx context.Context, owner string, requested int) (*Page, error) {
	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, owner)
	if err != nil {
		return nil, err
	}

	number, err := Resolve(requested, user.PostCount)
	if err != nil {
		return nil, err
	}

	entry, err := s.repomanager.Entries(s.db).Get(ctx, owner, number)
	if err != nil {
		return nil, err
	}

	page := &Page{
		Entry:      entry,
		Number:     number,
		Redirected: number != requested,
		PostCount:  user.PostCount,
	}
	page.ImageURI = s.materialize(ctx, entry)
	return page, nil
}

// Resolve maps a requested number onto 1..postCount with wraparound at
// both ends. Numbers outside 0..postCount+1 are not found.
func Resolve(requested, postCount int) (int, error) {
	if postCount <= 0 {
		return 0, common.ErrorNotFound
	}
	switch {
	case requested == 0:
		return postCount, nil
	case requested == postCount+1:
		return 1, nil
	case requested >= 1 && requested <= postCount:
		return requested, nil
	default:
		return 0, common.ErrorNotFound
	}
}

// List returns the owner's entries and the data URIs of their pictures
// keyed by sequence number. Entries without a usable picture have no key.
func (s *DiaryService) List(ctx context.Context, owner string) ([]*models.DiaryEntry, map[int]string, error) {
	if _, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, owner); err != nil {
		return nil, nil, err
	}

	entries, err := s.repomanager.Entries(s.db).List(ctx, owner)
	if err != nil {
		return nil, nil, err
	}

	images := make(map[int]string)
	for _, e := range entries {
		if uri := s.materialize(ctx, e); uri != "" {
			images[e.SequenceNumber] = uri
		}
	}
	return entries, images, nil
}

// Edit replaces title and body. Number, dates and picture are untouched.
func (s *DiaryService) Edit(ctx context.Context, owner string, seq int, title, body string) error {
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("%w: body must not be empty", common.ErrorValidation)
	}
	return s.repomanager.Entries(s.db).UpdateText(ctx, owner, seq, title, body)
}

// Delete removes an entry and decrements post_count. Under the compact
// policy later entries move down by one so numbering stays dense.
func (s *DiaryService) Delete(ctx context.Context, owner string, seq int) error {
	var imageKey string

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		entryRepo := s.repomanager.Entries(tx)

		key, err := entryRepo.Delete(ctx, owner, seq)
		if err != nil {
			return err
		}
		imageKey = key

		if _, err := s.repomanager.Users(tx).DecrementPostCount(ctx, owner); err != nil {
			return err
		}

		if s.deletePolicy == config.DeletePolicyCompact {
			if _, err := entryRepo.ShiftDown(ctx, owner, seq); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if imageKey != "" {
		s.dropImage(ctx, imageKey)
	}
	if s.metrics != nil {
		s.metrics.EntriesDeleted.Inc()
	}
	return nil
}

// materialize loads the entry's picture and renders it as a data URI.
// Failures are logged and yield "".
func (s *DiaryService) materialize(ctx context.Context, e *models.DiaryEntry) string {
	if len(e.Image) == 0 && e.HasImage() {
		data, err := s.images.Get(ctx, e.ImageKey)
		if err != nil {
			if !errors.Is(err, common.ErrorNotFound) {
				s.log.Warn(ctx, "illustration unavailable", "owner", e.Owner, "number", e.SequenceNumber, "error", err)
			}
			return ""
		}
		e.Image = data
	}
	if len(e.Image) == 0 {
		return ""
	}

	uri, err := imagex.ToDataURI(e.Image)
	if err != nil {
		s.log.Warn(ctx, "illustration not decodable", "owner", e.Owner, "number", e.SequenceNumber, "error", err)
		return ""
	}
	return uri
}

func (s *DiaryService) dropImage(ctx context.Context, key string) {
	if err := s.images.Delete(context.WithoutCancel(ctx), key); err != nil {
		s.log.Warn(ctx, "illustration cleanup failed", "key", key, "error", err)
	}
}
