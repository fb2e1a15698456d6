// Package review records review outcomes and reads back the review status of sets.
package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kvgkvg/MEnglish/internal/learning"
	"github.com/kvgkvg/MEnglish/internal/progress"
	"github.com/kvgkvg/MEnglish/internal/quiz"
	"github.com/kvgkvg/MEnglish/internal/srs"
	"github.com/kvgkvg/MEnglish/internal/statistics"
)

var (
	// ErrEmptyBatch is returned when there is nothing to record.
	ErrEmptyBatch = errors.New("review: no review events")
	// ErrAttemptInProgress is returned when an unfinished attempt is completed.
	ErrAttemptInProgress = errors.New("review: attempt has unanswered questions")
)

//go:generate mockgen -source=service.go -destination=../mocks/review/mock_recorder.go -package=mock_review Recorder

// Recorder persists the outcome of a finished learning session.
type Recorder interface {
	CompleteAttempt(ctx context.Context, userID, setID string, attempt *quiz.Attempt) (*learning.LearningSession, error)
	CompleteFlashcards(ctx context.Context, userID, setID string, session *quiz.FlashcardSession) (*learning.LearningSession, error)
}

// Service reads current progress, applies the memory model and writes the result back.
type Service struct {
	progressRepo learning.ProgressRepository
	wordRepo     learning.WordRepository
	sessionRepo  learning.SessionRepository

	maxRetryAttempts uint
	retryDelay       time.Duration
	now              func() time.Time
}

// NewService creates a Service. A failed progress write is retried up to maxRetryAttempts times.
func NewService(
	progressRepo learning.ProgressRepository,
	wordRepo learning.WordRepository,
	sessionRepo learning.SessionRepository,
	maxRetryAttempts uint,
) *Service {
	return &Service{
		progressRepo:     progressRepo,
		wordRepo:         wordRepo,
		sessionRepo:      sessionRepo,
		maxRetryAttempts: maxRetryAttempts,
		retryDelay:       100 * time.Millisecond,
		now:              time.Now,
	}
}

// RecordReviews applies a batch of reviews and writes every updated word in one upsert.
func (s *Service) RecordReviews(ctx context.Context, userID string, events []srs.ReviewEvent) ([]learning.WordProgress, error) {
	if len(events) == 0 {
		return nil, ErrEmptyBatch
	}
	if err := srs.ValidateBatch(events); err != nil {
		return nil, err
	}

	current, err := s.progressRepo.FindByWords(ctx, userID, srs.WordIDs(events))
	if err != nil {
		return nil, fmt.Errorf("progressRepo.FindByWords() > %w", err)
	}

	updated, err := srs.UpdateBatch(userID, events, current, s.now())
	if err != nil {
		return nil, fmt.Errorf("srs.UpdateBatch() > %w", err)
	}

	if err := s.withRetry(ctx, func() error {
		return s.progressRepo.BatchUpsert(ctx, updated)
	}); err != nil {
		return nil, fmt.Errorf("progressRepo.BatchUpsert() > %w", err)
	}

	slog.Debug("recorded reviews", "user_id", userID, "words", len(updated))
	return updated, nil
}

// RecordReview applies a single review.
func (s *Service) RecordReview(ctx context.Context, userID string, event srs.ReviewEvent) (learning.WordProgress, error) {
	current, err := s.progressRepo.FindByWord(ctx, userID, event.WordID)
	if err != nil {
		return learning.WordProgress{}, fmt.Errorf("progressRepo.FindByWord(%s) > %w", event.WordID, err)
	}

	updated := srs.UpdateLearningProgress(current, event.Result(), s.now()).WordProgress(userID, event.WordID)
	if err := s.withRetry(ctx, func() error {
		return s.progressRepo.Upsert(ctx, updated)
	}); err != nil {
		return learning.WordProgress{}, fmt.Errorf("progressRepo.Upsert(%s) > %w", event.WordID, err)
	}
	return updated, nil
}

// RecordSession logs a finished session and moves the streak of the user forward.
func (s *Service) RecordSession(ctx context.Context, userID, setID string, sessionType learning.SessionType, score *int) (*learning.LearningSession, error) {
	now := s.now()
	session := &learning.LearningSession{
		ID:          uuid.NewString(),
		UserID:      userID,
		SetID:       setID,
		SessionType: sessionType,
		Score:       score,
		CompletedAt: now,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("sessionRepo.Create() > %w", err)
	}

	stats, err := s.sessionRepo.FindStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("sessionRepo.FindStats() > %w", err)
	}
	if stats == nil {
		stats = &learning.UserStats{UserID: userID}
	}

	streak := statistics.NextStreak(stats.LastActivityDate, now, statistics.Streak{
		Current: stats.CurrentStreak,
		Longest: stats.LongestStreak,
	})
	stats.CurrentStreak = streak.Current
	stats.LongestStreak = streak.Longest
	stats.LastActivityDate = &now
	if err := s.sessionRepo.UpsertStats(ctx, *stats); err != nil {
		return nil, fmt.Errorf("sessionRepo.UpsertStats() > %w", err)
	}

	slog.Debug("recorded session", "user_id", userID, "set_id", setID, "type", sessionType, "streak", streak.Current)
	return session, nil
}

// CompleteAttempt records every answer of a finished test and logs it as a test session.
func (s *Service) CompleteAttempt(ctx context.Context, userID, setID string, attempt *quiz.Attempt) (*learning.LearningSession, error) {
	if attempt.State() != quiz.AttemptComplete {
		return nil, fmt.Errorf("%w: %s", ErrAttemptInProgress, attempt.ID)
	}
	return s.completeSession(ctx, userID, setID, learning.SessionTypeTest, attempt.ReviewEvents(), attempt.Score())
}

// CompleteFlashcards records the assessed cards of a flashcard session.
func (s *Service) CompleteFlashcards(ctx context.Context, userID, setID string, session *quiz.FlashcardSession) (*learning.LearningSession, error) {
	return s.completeSession(ctx, userID, setID, learning.SessionTypeFlashcard, session.ReviewEvents(), session.Score())
}

func (s *Service) completeSession(
	ctx context.Context,
	userID, setID string,
	sessionType learning.SessionType,
	events []srs.ReviewEvent,
	score int,
) (*learning.LearningSession, error) {
	if len(events) > 0 {
		if _, err := s.RecordReviews(ctx, userID, events); err != nil {
			return nil, fmt.Errorf("RecordReviews() > %w", err)
		}
	}
	session, err := s.RecordSession(ctx, userID, setID, sessionType, &score)
	if err != nil {
		return nil, fmt.Errorf("RecordSession() > %w", err)
	}
	return session, nil
}

// SetSummary returns the review status of one set.
func (s *Service) SetSummary(ctx context.Context, userID, setID string) (progress.SetReviewSummary, error) {
	words, err := s.wordsWithProgress(ctx, userID, setID)
	if err != nil {
		return progress.SetReviewSummary{}, err
	}
	return progress.Summarize(setID, words, s.now()), nil
}

// SetSummaries returns the review status of every set of the user.
func (s *Service) SetSummaries(ctx context.Context, userID string) ([]progress.SetReviewSummary, error) {
	sets, err := s.wordRepo.FindSetsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("wordRepo.FindSetsByUser() > %w", err)
	}

	wordsBySet := make(map[string][]learning.WordWithProgress, len(sets))
	for _, set := range sets {
		words, err := s.wordsWithProgress(ctx, userID, set.ID)
		if err != nil {
			return nil, err
		}
		wordsBySet[set.ID] = words
	}
	return progress.SummarizeSets(sets, wordsBySet, s.now()), nil
}

// DueWords returns the IDs of the words of a set that need review now.
func (s *Service) DueWords(ctx context.Context, userID, setID string) ([]string, error) {
	words, err := s.wordsWithProgress(ctx, userID, setID)
	if err != nil {
		return nil, err
	}
	return progress.WordsNeedingReview(words, s.now()), nil
}

// Statistics summarizes the sessions of the user; year and month 0 mean no filter.
func (s *Service) Statistics(ctx context.Context, userID string, year, month int) (statistics.StatisticsResult, error) {
	sessions, err := s.sessionRepo.FindByUser(ctx, userID, time.Time{})
	if err != nil {
		return statistics.StatisticsResult{}, fmt.Errorf("sessionRepo.FindByUser() > %w", err)
	}
	return statistics.CalculateStatistics(sessions, year, month), nil
}

// UserStats returns the activity counters of the user, zero valued before the first session.
func (s *Service) UserStats(ctx context.Context, userID string) (learning.UserStats, error) {
	stats, err := s.sessionRepo.FindStats(ctx, userID)
	if err != nil {
		return learning.UserStats{}, fmt.Errorf("sessionRepo.FindStats() > %w", err)
	}
	if stats == nil {
		return learning.UserStats{UserID: userID}, nil
	}
	return *stats, nil
}

func (s *Service) wordsWithProgress(ctx context.Context, userID, setID string) ([]learning.WordWithProgress, error) {
	words, err := s.wordRepo.FindBySet(ctx, setID)
	if err != nil {
		return nil, fmt.Errorf("wordRepo.FindBySet(%s) > %w", setID, err)
	}
	if len(words) == 0 {
		return nil, nil
	}

	ids := make([]string, len(words))
	for i, w := range words {
		ids[i] = w.ID
	}
	progresses, err := s.progressRepo.FindByWords(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("progressRepo.FindByWords() > %w", err)
	}

	result := make([]learning.WordWithProgress, len(words))
	for i, w := range words {
		result[i] = learning.WordWithProgress{Word: w}
		if p, ok := progresses[w.ID]; ok {
			result[i].Progress = &p
		}
	}
	return result, nil
}
