// Package pipeline orchestrates the complete FNOL processing flow: text
// extraction, field extraction, validation, routing, and record storage.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/claimpilot/fnolagent/internal/cache"
	"github.com/claimpilot/fnolagent/internal/extract"
	"github.com/claimpilot/fnolagent/internal/llm"
	"github.com/claimpilot/fnolagent/internal/logging"
	"github.com/claimpilot/fnolagent/internal/model"
	"github.com/claimpilot/fnolagent/internal/route"
	"github.com/claimpilot/fnolagent/internal/store"
	"github.com/claimpilot/fnolagent/internal/validate"
)

// ErrEmptyDocument reports a document that yielded no usable text
var ErrEmptyDocument = errors.New("no text could be extracted from document")

// Pipeline orchestrates the complete claim intake process
type Pipeline struct {
	docExtractor *DocExtractor
	ruleEngine   *extract.RuleEngine
	llmExtractor llm.Extractor // nil when no provider is configured
	validator    *validate.FieldValidator
	router       *route.Router
	fieldCache   *cache.FieldCache // nil when caching is disabled
	store        *store.Store
	logger       *slog.Logger
	config       *model.Config
}

// NewPipeline creates a pipeline with the given configuration. Processed
// records land in st.
func NewPipeline(cfg *model.Config, st *store.Store) *Pipeline {
	logger := logging.New("pipeline")

	var extractor llm.Extractor
	if cfg.LLM.Provider != "" {
		e, err := llm.NewExtractor(cfg.LLM)
		if err != nil {
			logger.Warn("LLM extractor unavailable, using rule engine only", "error", err)
		} else {
			extractor = e
		}
	}

	var fieldCache *cache.FieldCache
	if cfg.Cache.Enabled {
		fieldCache = cache.New(cfg.Cache.Dir, cfg.Cache.TTL)
	}

	return &Pipeline{
		docExtractor: NewDocExtractor(),
		ruleEngine:   extract.NewRuleEngine(),
		llmExtractor: extractor,
		validator:    validate.NewFieldValidator(cfg.Validation, cfg.Currency),
		router:       route.NewRouter(cfg.Routing, cfg.Currency),
		fieldCache:   fieldCache,
		store:        st,
		logger:       logger,
		config:       cfg,
	}
}

// Process runs one document through the full pipeline and stores the
// resulting claim record. displayName is the name shown in the record,
// typically the original upload filename rather than the temp path.
func (p *Pipeline) Process(ctx context.Context, path, displayName string) (*model.ClaimRecord, error) {
	start := time.Now()

	// 1. Pull raw text out of the document
	rawText, err := p.docExtractor.Extract(path)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}
	if strings.TrimSpace(rawText) == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDocument, displayName)
	}

	// 2. Extract fields, preferring the LLM strategy when configured
	fields, strategy, err := p.extractFields(ctx, rawText)
	if err != nil {
		return nil, fmt.Errorf("extract fields: %w", err)
	}

	// 3. Validate mandatory fields and cross-field consistency
	validation := p.validator.Validate(fields)

	// 4. Route based on validation outcome and claim content
	decision := p.router.Route(fields, validation.MissingFields)

	record := &model.ClaimRecord{
		ClaimID:         model.NewClaimID(),
		Filename:        displayName,
		ProcessedAt:     time.Now().UTC(),
		ExtractedFields: fields,
		MissingFields:   validation.MissingFields,
		Inconsistencies: validation.Inconsistencies,
		Route:           decision.Route,
		Reasoning:       decision.Reasoning,
		RawTextPreview:  model.Preview(rawText),
	}
	p.store.Put(record)

	p.logger.Info("claim processed",
		"claim_id", record.ClaimID,
		"file", displayName,
		"strategy", strategy,
		"route", record.Route,
		"missing_fields", len(record.MissingFields),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return record, nil
}

// extractFields runs the preferred extraction strategy with cache lookups.
// An LLM failure never fails the claim; the rule engine always answers.
func (p *Pipeline) extractFields(ctx context.Context, rawText string) (*model.FieldSet, string, error) {
	if p.llmExtractor != nil {
		fields, err := p.runStrategy(ctx, p.llmExtractor, rawText)
		if err == nil {
			return fields, p.llmExtractor.Name(), nil
		}
		p.logger.Warn("LLM extraction failed, falling back to rule engine", "error", err)
	}

	fields, err := p.runStrategy(ctx, p.ruleEngine, rawText)
	if err != nil {
		return nil, "", err
	}
	return fields, p.ruleEngine.Name(), nil
}

func (p *Pipeline) runStrategy(ctx context.Context, e llm.Extractor, rawText string) (*model.FieldSet, error) {
	var key string
	if p.fieldCache != nil {
		key = cache.Key(e.Name(), rawText)
		if fields, found := p.fieldCache.Get(key); found {
			p.logger.Debug("extraction cache hit", "strategy", e.Name())
			return fields, nil
		}
	}

	fields, err := e.ExtractFields(ctx, rawText)
	if err != nil {
		return nil, err
	}

	if p.fieldCache != nil {
		if err := p.fieldCache.Set(key, fields); err != nil {
			p.logger.Warn("cache write failed", "error", err)
		}
	}
	return fields, nil
}
