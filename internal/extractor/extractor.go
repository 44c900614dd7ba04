// Package extractor turns a resume document into the fixed candidate field
// schema (name, email, phone, skills, experience) with one Gemini call. The
// model is an opaque collaborator: its output is parsed, never second-guessed,
// and there are no retries.
package extractor

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"talentdesk/internal/cache"
	"talentdesk/internal/config"
	"talentdesk/internal/errors"
	"talentdesk/internal/models"
	"talentdesk/internal/telemetry"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

var tracer = telemetry.GetTracer("talentdesk/extractor")

const extractPrompt = `You are an expert HR assistant specializing in extracting information from resumes.
Extract name, email, phone number, skills, and experience from the resume below.
If the phone number is not available, leave it blank. Do not make up information.

Return your result as a structured JSON object in this format:

{
  "name": string,
  "email": string,
  "phone": string,
  "skills": [string],
  "experience": string
}

Return only valid JSON. Do not include explanations, markdown, or text before or after the JSON.

Resume:
%s`

type Extractor struct {
	client *genai.Client
	model  string
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// New builds the extractor. Without an API key the service still runs, with
// resume extraction disabled; callers get a nil extractor.
func New(ctx context.Context, cfg *config.Config, c cache.Cache, logger *zap.Logger) (*Extractor, error) {
	if cfg.GeminiAPIKey == "" {
		logger.Warn("GOOGLE_API_KEY not set, resume extraction disabled")
		return nil, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Internal("creating genai client", err)
	}

	return &Extractor{
		client: client,
		model:  cfg.GeminiModel,
		cache:  c,
		ttl:    cfg.CacheTTL,
		logger: logger,
	}, nil
}

// Extract flattens the document, asks the model for the fixed field schema and
// returns the parsed result. Results are cached by document digest so the same
// resume is never sent to the model twice within the cache TTL.
func (e *Extractor) Extract(ctx context.Context, document []byte, mime string) (*models.ExtractedCandidate, error) {
	ctx, span := tracer.Start(ctx, "Extract")
	defer span.End()

	span.SetAttributes(
		telemetry.String("document.mime", mime),
		telemetry.Int("document.size", len(document)),
	)

	cacheKey := fmt.Sprintf("extract:%x", sha256.Sum256(document))

	var cached models.ExtractedCandidate
	err := e.cache.Get(ctx, cacheKey, &cached)
	if err == nil {
		span.SetAttributes(telemetry.String("cache.result", "hit"))
		e.logger.Debug("extraction cache hit", zap.String("key", cacheKey))
		return &cached, nil
	} else if err != cache.ErrNotFound {
		span.SetAttributes(telemetry.String("cache.result", "error"))
		span.RecordError(err)
		e.logger.Warn("extraction cache error", zap.Error(err))
	} else {
		span.SetAttributes(telemetry.String("cache.result", "miss"))
	}

	text, err := DocumentText(mime, document)
	if err != nil {
		span.RecordError(err)
		return nil, errors.InvalidInput("reading resume document", err)
	}

	resp, err := e.client.Models.GenerateContent(ctx, e.model,
		genai.Text(fmt.Sprintf(extractPrompt, text)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		})
	if err != nil {
		span.RecordError(err)
		e.logger.Error("resume extraction call failed", zap.Error(err))
		return nil, errors.Unavailable("calling extraction model", err)
	}

	raw := CleanJSON(resp.Text())
	var extracted models.ExtractedCandidate
	if err := json.Unmarshal([]byte(raw), &extracted); err != nil {
		span.RecordError(err)
		e.logger.Error("extraction response was not valid JSON", zap.Error(err))
		return nil, errors.Internal("decoding extraction response", err)
	}
	if extracted.Skills == nil {
		extracted.Skills = []string{}
	}

	if err := e.cache.Set(ctx, cacheKey, extracted, e.ttl); err != nil {
		e.logger.Warn("failed to cache extraction result", zap.Error(err))
	}

	e.logger.Info("resume extracted",
		zap.String("email", extracted.Email),
		zap.Int("skills", len(extracted.Skills)))
	return &extracted, nil
}
