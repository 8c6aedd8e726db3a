package service

import (
	"strings"
	"time"

	"go.uber.org/zap"

	libraryRepo "github.com/Astemirdum/library-catalog/library/internal/repository"
)

// dueSoonDays is the look-ahead window of the summary report.
const dueSoonDays = 7

type Service struct {
	log  *zap.Logger
	repo libraryRepo.Repository
	now  func() time.Time
}

type Option func(s *Service)

// WithClock overrides the time source used to validate birth dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo libraryRepo.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:  log.Named("service"),
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
