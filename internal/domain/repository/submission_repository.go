package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Shaan2522/bajajfinserv-api/internal/domain/entity"
)

// SubmissionRepository defines the interface for submission data operations
type SubmissionRepository interface {
	// Create stores a new submission
	Create(ctx context.Context, submission *entity.Submission) error

	// GetByID retrieves a submission by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Submission, error)

	// List retrieves submissions with pagination, newest first
	List(ctx context.Context, limit, offset int) ([]*entity.Submission, int64, error)

	// Delete removes a submission by ID
	Delete(ctx context.Context, id uuid.UUID) error
}
