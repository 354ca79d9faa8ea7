package service

import (
	"context"
	"strings"

	"candor/internal/config"
	"candor/internal/logger"
	"candor/internal/model"
	"candor/internal/repository"
	"candor/internal/service/ai"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// Admitter decides whether a request from a client key may proceed.
type Admitter interface {
	Admit(key string) bool
}

// RecordWriter appends one record to the external store.
type RecordWriter interface {
	CreateRecord(ctx context.Context, record model.TranslationRecord) error
}

// StoreOutcome is the advisory result of the record write. It is reported
// to the caller but never changes the primary success of the request.
type StoreOutcome struct {
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

// Result is a successful translation plus the advisory store outcome.
type Result struct {
	Translation string
	Model       string
	Store       StoreOutcome
}

// TranslateService runs the request pipeline: validate, admit, call the
// provider, mirror the record, shape the result.
type TranslateService interface {
	// Translate processes one phrase for the given client key. The returned
	// error is one of the service sentinels or *ai.UpstreamError.
	Translate(ctx context.Context, clientKey, phrase string) (Result, error)
	// History returns the most recent journal records, newest first.
	History(ctx context.Context, limit int) ([]model.TranslationRecord, error)
}

type translateService struct {
	cfg      config.Config
	provider ai.Provider
	admitter Admitter
	qps      *ai.RateLimiter
	store    RecordWriter
	journal  repository.RecordRepository
}

// NewTranslateService creates the pipeline service. Provider and store may
// be nil when credentials are missing; each request then fails with
// ErrConfigMissing instead of the process refusing to start.
func NewTranslateService(
	cfg config.Config,
	provider ai.Provider,
	admitter Admitter,
	qps *ai.RateLimiter,
	store RecordWriter,
	journal repository.RecordRepository,
) TranslateService {
	return &translateService{
		cfg:      cfg,
		provider: provider,
		admitter: admitter,
		qps:      qps,
		store:    store,
		journal:  journal,
	}
}

func (s *translateService) Translate(ctx context.Context, clientKey, phrase string) (Result, error) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return Result{}, ErrPhraseRequired
	}

	// Configuration is checked before any network call.
	if len(s.cfg.MissingRequired()) > 0 || s.provider == nil || s.store == nil {
		return Result{}, ErrConfigMissing
	}

	if !s.admitter.Admit(clientKey) {
		logger.Warn("request rejected", "module", "service", "action", "admit", "resource", "translation", "result", "rejected", "client", clientKey)
		return Result{}, ErrRateLimited
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.UpstreamTimeout)
	defer cancel()

	if err := s.qps.Wait(callCtx); err != nil {
		return Result{}, &ai.UpstreamError{Detail: "provider call timed out waiting for outbound slot"}
	}

	raw, err := s.provider.Translate(callCtx, ai.TranslatePrompt(s.cfg.Tone), phrase)
	if err != nil {
		logger.Error("provider call failed", "module", "service", "action", "translate", "resource", "provider", "result", "failed", "provider", s.provider.Name(), "error", err)
		return Result{}, err
	}

	translation := strings.TrimSpace(raw)
	if translation == "" {
		logger.Error("provider returned empty completion", "module", "service", "action", "translate", "resource", "provider", "result", "failed", "provider", s.provider.Name())
		return Result{}, ErrEmptyCompletion
	}

	record := model.TranslationRecord{
		Phrase:      phrase,
		Translation: translation,
		Model:       s.cfg.Model,
		Source:      config.Source,
	}

	logger.Info("phrase translated", "module", "service", "action", "translate", "resource", "translation", "result", "ok", "provider", s.provider.Name(), "model", s.cfg.Model)

	return Result{
		Translation: translation,
		Model:       s.cfg.Model,
		Store:       s.writeRecord(ctx, record),
	}, nil
}

// writeRecord mirrors the record to the external store and the local
// journal. Both writes are best-effort: failures degrade the response
// (store) or are only logged (journal), never failing the request.
func (s *translateService) writeRecord(ctx context.Context, record model.TranslationRecord) StoreOutcome {
	storeCtx, cancel := context.WithTimeout(ctx, s.cfg.UpstreamTimeout)
	defer cancel()

	outcome := StoreOutcome{OK: true}
	if err := s.store.CreateRecord(storeCtx, record); err != nil {
		logger.Warn("record store write failed", "module", "service", "action", "save", "resource", "record", "result", "failed", "error", err)
		outcome = StoreOutcome{OK: false, Detail: err.Error()}
	}

	if s.journal != nil {
		if _, err := s.journal.Save(ctx, record); err != nil {
			logger.Warn("journal write failed", "module", "service", "action", "save", "resource", "journal", "result", "failed", "error", err)
		}
	}
	return outcome
}

func (s *translateService) History(ctx context.Context, limit int) ([]model.TranslationRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return s.journal.ListRecent(ctx, limit)
}
