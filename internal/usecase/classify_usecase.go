package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Shaan2522/bajajfinserv-api/internal/domain/entity"
	"github.com/Shaan2522/bajajfinserv-api/internal/domain/repository"
	"github.com/Shaan2522/bajajfinserv-api/internal/domain/service"
)

// Error definitions for classify usecase
var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrEmptyInput         = errors.New("data array cannot be empty")
	ErrTooManyTokens      = errors.New("data array too large")
	ErrInvalidRequest     = errors.New("invalid request")
)

// MaxTokens is the upper bound on tokens accepted per request
const MaxTokens = 1000

const cacheKeyPrefix = "bfhl:classify:"

// ClassifyOutput represents the output of a classification request
type ClassifyOutput struct {
	OddNumbers        []string `json:"odd_numbers"`
	EvenNumbers       []string `json:"even_numbers"`
	Alphabets         []string `json:"alphabets"`
	SpecialCharacters []string `json:"special_characters"`
	Sum               string   `json:"sum"`
	ConcatString      string   `json:"concat_string"`
}

// SubmissionOutput represents a stored submission
type SubmissionOutput struct {
	SubmissionID      uuid.UUID `json:"submission_id"`
	TokenCount        int       `json:"token_count"`
	OddNumbers        []string  `json:"odd_numbers"`
	EvenNumbers       []string  `json:"even_numbers"`
	Alphabets         []string  `json:"alphabets"`
	SpecialCharacters []string  `json:"special_characters"`
	Sum               string    `json:"sum"`
	ConcatString      string    `json:"concat_string"`
	CreatedAt         string    `json:"created_at"`
}

// SubmissionListOutput represents a paginated submission list
type SubmissionListOutput struct {
	Submissions []*SubmissionOutput `json:"submissions"`
	Total       int64               `json:"total"`
	Limit       int                 `json:"limit"`
	Offset      int                 `json:"offset"`
	HasMore     bool                `json:"has_more"`
}

// ClassifyUsecase defines the interface for classification business logic
type ClassifyUsecase interface {
	Classify(ctx context.Context, tokens []string) (*ClassifyOutput, error)
	GetSubmission(ctx context.Context, id uuid.UUID) (*SubmissionOutput, error)
	ListSubmissions(ctx context.Context, limit, offset int) (*SubmissionListOutput, error)
	DeleteSubmission(ctx context.Context, id uuid.UUID) error
}

type classifyUsecase struct {
	submissionRepo repository.SubmissionRepository
	classifier     service.Classifier
	cache          *redis.Client
	cacheTTL       time.Duration
}

// NewClassifyUsecase creates a new classify usecase. The cache client may be
// nil, in which case every request runs the classifier.
func NewClassifyUsecase(submissionRepo repository.SubmissionRepository, classifier service.Classifier, cache *redis.Client, cacheTTL time.Duration) ClassifyUsecase {
	return &classifyUsecase{
		submissionRepo: submissionRepo,
		classifier:     classifier,
		cache:          cache,
		cacheTTL:       cacheTTL,
	}
}

func (u *classifyUsecase) Classify(ctx context.Context, tokens []string) (*ClassifyOutput, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}
	if len(tokens) > MaxTokens {
		return nil, ErrTooManyTokens
	}

	key := cacheKey(tokens)
	if out := u.cachedResult(ctx, key); out != nil {
		return out, nil
	}

	result := u.classifier.Classify(tokens)

	submission := entity.NewSubmission(len(tokens),
		result.OddNumbers, result.EvenNumbers,
		result.Alphabets, result.SpecialCharacters,
		result.Sum, result.ConcatString)
	if err := u.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}

	out := &ClassifyOutput{
		OddNumbers:        result.OddNumbers,
		EvenNumbers:       result.EvenNumbers,
		Alphabets:         result.Alphabets,
		SpecialCharacters: result.SpecialCharacters,
		Sum:               result.Sum,
		ConcatString:      result.ConcatString,
	}
	u.storeResult(ctx, key, out)

	return out, nil
}

func (u *classifyUsecase) GetSubmission(ctx context.Context, id uuid.UUID) (*SubmissionOutput, error) {
	submission, err := u.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, ErrSubmissionNotFound
	}

	return toSubmissionOutput(submission), nil
}

func (u *classifyUsecase) ListSubmissions(ctx context.Context, limit, offset int) (*SubmissionListOutput, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	submissions, total, err := u.submissionRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	outputs := make([]*SubmissionOutput, len(submissions))
	for i, s := range submissions {
		outputs[i] = toSubmissionOutput(s)
	}

	return &SubmissionListOutput{
		Submissions: outputs,
		Total:       total,
		Limit:       limit,
		Offset:      offset,
		HasMore:     int64(offset+limit) < total,
	}, nil
}

func (u *classifyUsecase) DeleteSubmission(ctx context.Context, id uuid.UUID) error {
	submission, err := u.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if submission == nil {
		return ErrSubmissionNotFound
	}

	return u.submissionRepo.Delete(ctx, id)
}

// cachedResult returns a previously computed output for the key, or nil on
// miss, error, or when no cache is configured.
func (u *classifyUsecase) cachedResult(ctx context.Context, key string) *ClassifyOutput {
	if u.cache == nil {
		return nil
	}
	data, err := u.cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	var out ClassifyOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return &out
}

func (u *classifyUsecase) storeResult(ctx context.Context, key string, out *ClassifyOutput) {
	if u.cache == nil {
		return
	}
	data, err := json.Marshal(out)
	if err != nil {
		return
	}
	// best effort, a failed write just means a recompute next time
	u.cache.Set(ctx, key, data, u.cacheTTL)
}

func cacheKey(tokens []string) string {
	h := sha256.Sum256([]byte(strings.Join(tokens, "\x1f")))
	return cacheKeyPrefix + hex.EncodeToString(h[:])
}

func toSubmissionOutput(s *entity.Submission) *SubmissionOutput {
	return &SubmissionOutput{
		SubmissionID:      s.ID,
		TokenCount:        s.TokenCount,
		OddNumbers:        s.OddNumbers,
		EvenNumbers:       s.EvenNumbers,
		Alphabets:         s.Alphabets,
		SpecialCharacters: s.SpecialCharacters,
		Sum:               s.Sum,
		ConcatString:      s.ConcatString,
		CreatedAt:         s.CreatedAt.UTC().Format(time.RFC3339),
	}
}
