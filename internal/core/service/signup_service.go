package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/animationlms/platform-api/internal/api/metrics"
	"github.com/animationlms/platform-api/internal/core/domain"
	"github.com/animationlms/platform-api/internal/core/ports"
)

// DefaultSignupSource is stamped on records submitted without a source.
const DefaultSignupSource = "Website"

// SignupService normalizes and persists notification signups. There is no
// uniqueness constraint: every submission becomes its own record.
type SignupService struct {
	repo   ports.SignupRepository
	logger zerolog.Logger
}

func NewSignupService(repo ports.SignupRepository, logger zerolog.Logger) *SignupService {
	return &SignupService{repo: repo, logger: logger}
}

// Ingest stores a single signup record.
func (s *SignupService) Ingest(ctx context.Context, in ports.SignupInput) error {
	rec := normalize(in)
	if err := s.repo.InsertOne(ctx, &rec); err != nil {
		metrics.SignupErrorsTotal.WithLabelValues("insert_one").Inc()
		s.logger.Error().Err(err).Str("email", rec.Email).Msg("failed to store signup")
		return err
	}

	metrics.SignupsReceivedTotal.WithLabelValues(rec.Source).Inc()
	s.logger.Info().Str("email", rec.Email).Str("source", rec.Source).Msg("signup stored")
	return nil
}

// IngestBatch stores all records in one batch call. The batch either lands
// as a whole or the error for the whole call is returned; there is no
// partial-success reporting.
func (s *SignupService) IngestBatch(ctx context.Context, ins []ports.SignupInput) (int, error) {
	if len(ins) == 0 {
		return 0, nil
	}

	recs := make([]domain.SignupRecord, 0, len(ins))
	for _, in := range ins {
		recs = append(recs, normalize(in))
	}

	if err := s.repo.InsertMany(ctx, recs); err != nil {
		metrics.SignupErrorsTotal.WithLabelValues("insert_many").Inc()
		s.logger.Error().Err(err).Int("count", len(recs)).Msg("failed to store signup batch")
		return 0, err
	}

	for _, rec := range recs {
		metrics.SignupsReceivedTotal.WithLabelValues(rec.Source).Inc()
	}
	s.logger.Info().Int("count", len(recs)).Msg("signup batch stored")
	return len(recs), nil
}

// List returns every stored signup record, unfiltered.
func (s *SignupService) List(ctx context.Context) ([]domain.SignupRecord, error) {
	recs, err := s.repo.FindAll(ctx)
	if err != nil {
		metrics.SignupErrorsTotal.WithLabelValues("find").Inc()
		return nil, err
	}
	if recs == nil {
		recs = []domain.SignupRecord{}
	}
	return recs, nil
}

// normalize fills the fields a caller may omit: the timestamp defaults to
// the current UTC time and the source defaults to DefaultSignupSource.
func normalize(in ports.SignupInput) domain.SignupRecord {
	rec := domain.SignupRecord{
		Email:     in.Email,
		Phone:     in.Phone,
		Timestamp: in.Timestamp,
		Source:    in.Source,
	}
	if rec.Timestamp == "" {
		rec.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	if rec.Source == "" {
		rec.Source = DefaultSignupSource
	}
	return rec
}
