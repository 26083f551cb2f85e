// Package server wires the diary server together: storage, generation
// backends, services, the gRPC endpoint and the metrics endpoint. It also
// runs the background janitor and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/picdiary/internal/logging"
	"github.com/dmitrijs2005/picdiary/internal/observe"
	"github.com/dmitrijs2005/picdiary/internal/provider/imagegen"
	"github.com/dmitrijs2005/picdiary/internal/provider/imagegen/stability"
	"github.com/dmitrijs2005/picdiary/internal/provider/llm"
	"github.com/dmitrijs2005/picdiary/internal/provider/llm/openai"
	"github.com/dmitrijs2005/picdiary/internal/resilience"
	"github.com/dmitrijs2005/picdiary/internal/server/compiler"
	"github.com/dmitrijs2005/picdiary/internal/server/config"
	"github.com/dmitrijs2005/picdiary/internal/server/illustration"
	"github.com/dmitrijs2005/picdiary/internal/server/imagestore"
	"github.com/dmitrijs2005/picdiary/internal/server/interview"
	"github.com/dmitrijs2005/picdiary/internal/server/prompts"
	"github.com/dmitrijs2005/picdiary/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/picdiary/internal/server/services"
	"github.com/dmitrijs2005/picdiary/internal/server/transcript"

	gs "github.com/dmitrijs2005/picdiary/internal/server/grpc"
)

// janitorInterval is how often idle sessions and expired refresh tokens
// are purged.
const janitorInterval = time.Minute

type App struct {
	config           *config.Config
	logger           logging.Logger
	db               *sql.DB
	metrics          *observe.Collector
	userService      *services.UserService
	diaryService     *services.DiaryService
	interviewService *services.InterviewService
}

// NewLogger builds the JSON logger at the configured level. Unknown levels
// fall back to info.
func NewLogger(level string) logging.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return logging.NewJSON(os.Stdout, lvl)
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := NewLogger(c.LogLevel)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}

	p, err := prompts.Load(c.PromptsFile)
	if err != nil {
		return nil, err
	}

	db, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	images, err := newImageStore(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("image store init error: %w", err)
	}

	metrics := observe.NewCollector("picdiary")

	model, err := newLLM(c, metrics, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	painter, err := newImageGenerator(c, metrics, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := transcript.NewStore(transcript.Seed(p.Persona, p.OpeningNote), c.SessionTTL)

	diary := services.NewDiaryService(db, rm, images, c.DeletePolicy, loc,
		services.WithLogger(logger), services.WithMetrics(metrics))

	interviews := services.NewInterviewService(
		store,
		interview.NewEngine(store, model, logger),
		compiler.New(model, p.Summary, p.Title),
		illustration.New(model, painter, p.Illustration, c.ImageWidth, c.ImageHeight, logger),
		diary,
		p.OpeningQuestion,
		logger,
		metrics,
	)

	return &App{
		config:           c,
		logger:           logger,
		db:               db,
		metrics:          metrics,
		userService:      services.NewUserService(db, rm, c),
		diaryService:     diary,
		interviewService: interviews,
	}, nil
}

func newImageStore(ctx context.Context, c *config.Config) (imagestore.Store, error) {
	if c.ImageStore == config.ImageStoreMemory {
		return imagestore.NewMemoryStore(), nil
	}
	return imagestore.NewS3Store(ctx, imagestore.S3Config{
		User:         c.S3RootUser,
		Password:     c.S3RootPassword,
		Bucket:       c.S3Bucket,
		Region:       c.S3Region,
		BaseEndpoint: c.S3BaseEndpoint,
	})
}

// newLLM stacks metrics inside the breaker so rejected calls are not
// counted as backend calls.
func newLLM(c *config.Config, m *observe.Collector, log logging.Logger) (llm.Provider, error) {
	var opts []openai.Option
	if c.OpenAIBaseURL != "" {
		opts = append(opts, openai.WithBaseURL(c.OpenAIBaseURL))
	}
	p, err := openai.New(c.OpenAIAPIKey, c.OpenAIModel, opts...)
	if err != nil {
		return nil, fmt.Errorf("openai init error: %w", err)
	}
	instrumented := observe.NewInstrumentedLLM(p, "openai", m)
	return resilience.NewLLM(instrumented, resilience.DefaultBreakerConfig("openai"), c.LLMTimeout, log), nil
}

func newImageGenerator(c *config.Config, m *observe.Collector, log logging.Logger) (imagegen.Provider, error) {
	p, err := stability.New(c.StabilityAPIKey,
		stability.WithHost(c.StabilityHost),
		stability.WithEngine(c.StabilityEngine),
		stability.WithLogger(log.With("provider", "stability")),
	)
	if err != nil {
		return nil, fmt.Errorf("stability init error: %w", err)
	}
	instrumented := observe.NewInstrumentedImages(p, "stability", m)
	return resilience.NewImages(instrumented, resilience.DefaultBreakerConfig("stability"), c.ImageTimeout, log), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.userService, app.interviewService, app.diaryService, app.config.SecretKey, app.metrics)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if app.config.MetricsAddr == "" {
		return
	}

	srv := observe.NewServer(app.config.MetricsAddr, app.metrics, app.logger)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// runJanitor drops idle interview sessions and expired refresh tokens
// until ctx is done.
func (app *App) runJanitor(ctx context.Context) {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			app.interviewService.Sweep(ctx, now)
			if n, err := app.userService.PurgeExpiredTokens(ctx, now); err != nil {
				app.logger.Warn(ctx, "refresh token purge failed", "error", err)
			} else if n > 0 {
				app.logger.Debug(ctx, "expired refresh tokens purged", "count", n)
			}
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startMetricsServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.runJanitor(ctx)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(context.Background(), "db close error", "error", err)
	}
	app.logger.Info(context.Background(), "App stopped")
}
