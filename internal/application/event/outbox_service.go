package event

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/umitgh/procurement-system/internal/domain/shared"
	"go.uber.org/zap"
)

// ErrOutboxEntryNotFound is returned for unknown outbox ids
var ErrOutboxEntryNotFound = shared.NewDomainError("OUTBOX_ENTRY_NOT_FOUND", "Outbox entry not found")

// ErrOutboxEntryNotDead is returned when retrying an entry that is still live
var ErrOutboxEntryNotDead = shared.NewDomainError("INVALID_STATE", "Only dead letter entries can be retried")

// retryBatchSize bounds one page of the dead-letter sweep
const retryBatchSize = 100

// OutboxService lets operators inspect and re-drive workflow side effects
// (approval e-mails, supplier dispatch) whose delivery ran out of retries.
type OutboxService struct {
	repo   shared.OutboxRepository
	logger *zap.Logger
}

// NewOutboxService creates a new outbox service
func NewOutboxService(repo shared.OutboxRepository, logger *zap.Logger) *OutboxService {
	return &OutboxService{repo: repo, logger: logger}
}

// OutboxEntryDTO is the operator view of one outbox entry
type OutboxEntryDTO struct {
	ID            uuid.UUID  `json:"id"`
	EventID       uuid.UUID  `json:"event_id"`
	EventType     string     `json:"event_type"`
	AggregateID   uuid.UUID  `json:"aggregate_id"`
	AggregateType string     `json:"aggregate_type"`
	Status        string     `json:"status"`
	RetryCount    int        `json:"retry_count"`
	MaxRetries    int        `json:"max_retries"`
	LastError     string     `json:"last_error,omitempty"`
	NextRetryAt   *time.Time `json:"next_retry_at,omitempty"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// OutboxStatsDTO counts entries per delivery status
type OutboxStatsDTO struct {
	Pending    int64 `json:"pending"`
	Processing int64 `json:"processing"`
	Sent       int64 `json:"sent"`
	Failed     int64 `json:"failed"`
	Dead       int64 `json:"dead"`
	Total      int64 `json:"total"`
}

// ListDeadLetters returns one page of entries that exhausted their retries
func (s *OutboxService) ListDeadLetters(ctx context.Context, filter shared.Filter) (shared.Paginated[OutboxEntryDTO], error) {
	filter = filter.Normalize()
	entries, total, err := s.repo.FindDead(ctx, filter.Page, filter.PageSize)
	if err != nil {
		s.logger.Error("Failed to list dead letters", zap.Error(err))
		return shared.Paginated[OutboxEntryDTO]{}, err
	}

	items := make([]OutboxEntryDTO, len(entries))
	for i, entry := range entries {
		items[i] = toOutboxEntryDTO(entry)
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// GetEntry returns a single outbox entry
func (s *OutboxService) GetEntry(ctx context.Context, id uuid.UUID) (*OutboxEntryDTO, error) {
	entry, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toOutboxEntryDTO(entry)
	return &dto, nil
}

// Retry puts one dead entry back into the delivery queue
func (s *OutboxService) Retry(ctx context.Context, id uuid.UUID) (*OutboxEntryDTO, error) {
	entry, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := entry.ResetForRetry(); err != nil {
		return nil, ErrOutboxEntryNotDead
	}
	if err := s.repo.Update(ctx, entry); err != nil {
		s.logger.Error("Failed to requeue outbox entry", zap.Error(err), zap.String("event_id", entry.EventID.String()))
		return nil, err
	}

	s.logger.Info("Outbox entry requeued",
		zap.String("event_id", entry.EventID.String()),
		zap.String("event_type", entry.EventType),
		zap.String("aggregate_id", entry.AggregateID.String()),
	)
	dto := toOutboxEntryDTO(entry)
	return &dto, nil
}

// RetryDead requeues every dead entry, or only those of eventType when it is
// not empty, and returns how many were requeued. Entries that fail to update
// are logged and skipped.
func (s *OutboxService) RetryDead(ctx context.Context, eventType string) (int64, error) {
	var requeued int64
	// requeued entries drop out of the dead set; only a fully skipped page
	// advances the cursor
	page := 1
	for {
		entries, _, err := s.repo.FindDead(ctx, page, retryBatchSize)
		if err != nil {
			s.logger.Error("Failed to list dead letters", zap.Error(err))
			return requeued, err
		}

		skipped := 0
		for _, entry := range entries {
			if eventType != "" && entry.EventType != eventType {
				skipped++
				continue
			}
			if err := entry.ResetForRetry(); err != nil {
				skipped++
				continue
			}
			if err := s.repo.Update(ctx, entry); err != nil {
				s.logger.Error("Failed to requeue outbox entry", zap.Error(err), zap.String("event_id", entry.EventID.String()))
				skipped++
				continue
			}
			requeued++
		}

		if len(entries) < retryBatchSize {
			break
		}
		if skipped == retryBatchSize {
			page++
		}
	}

	s.logger.Info("Dead letters requeued", zap.Int64("count", requeued), zap.String("event_type", eventType))
	return requeued, nil
}

// Stats counts entries per status
func (s *OutboxService) Stats(ctx context.Context) (*OutboxStatsDTO, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("Failed to count outbox entries", zap.Error(err))
		return nil, err
	}

	stats := &OutboxStatsDTO{
		Pending:    counts[shared.OutboxStatusPending],
		Processing: counts[shared.OutboxStatusProcessing],
		Sent:       counts[shared.OutboxStatusSent],
		Failed:     counts[shared.OutboxStatusFailed],
		Dead:       counts[shared.OutboxStatusDead],
	}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}

func (s *OutboxService) find(ctx context.Context, id uuid.UUID) (*shared.OutboxEntry, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, shared.ErrNotFound) || (err == nil && entry == nil) {
		return nil, ErrOutboxEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func toOutboxEntryDTO(entry *shared.OutboxEntry) OutboxEntryDTO {
	return OutboxEntryDTO{
		ID:            entry.ID,
		EventID:       entry.EventID,
		EventType:     entry.EventType,
		AggregateID:   entry.AggregateID,
		AggregateType: entry.AggregateType,
		Status:        string(entry.Status),
		RetryCount:    entry.RetryCount,
		MaxRetries:    entry.MaxRetries,
		LastError:     entry.LastError,
		NextRetryAt:   entry.NextRetryAt,
		ProcessedAt:   entry.ProcessedAt,
		CreatedAt:     entry.CreatedAt,
		UpdatedAt:     entry.UpdatedAt,
	}
}
