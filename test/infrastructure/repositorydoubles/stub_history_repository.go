//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"errors"

	"github.com/rios0rios0/repoindex/internal/domain/repositories"
)

// HistoryResult is the canned answer of LastAuthorTime for one path.
type HistoryResult struct {
	Seconds int64
	Found   bool
	Err     error
}

// SpyHistoryRepository implements repositories.HistoryRepository as a configurable spy.
type SpyHistoryRepository struct {
	// --- LastAuthorTime ---
	Results      map[string]HistoryResult // path -> result; missing paths have no commits
	HistoryCalls []string

	// --- Verify ---
	Unopenable  map[string]bool // paths failing Verify
	VerifyCalls []string
}

var _ repositories.HistoryRepository = (*SpyHistoryRepository)(nil)

func (s *SpyHistoryRepository) LastAuthorTime(path string) (int64, bool, error) {
	s.HistoryCalls = append(s.HistoryCalls, path)
	result := s.Results[path]
	return result.Seconds, result.Found, result.Err
}

func (s *SpyHistoryRepository) Verify(path string) error {
	s.VerifyCalls = append(s.VerifyCalls, path)
	if s.Unopenable[path] {
		return errors.New("repository does not exist")
	}
	return nil
}

// StubDescriptionRepository implements repositories.DescriptionRepository
// from a fixed map.
type StubDescriptionRepository struct {
	Descriptions map[string]string // path -> first line
	LastLimit    int
}

var _ repositories.DescriptionRepository = (*StubDescriptionRepository)(nil)

func (s *StubDescriptionRepository) ReadDescription(path string, limit int) string {
	s.LastLimit = limit
	return s.Descriptions[path]
}
