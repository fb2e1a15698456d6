// Package statistics summarizes learning activity over time.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/kvgkvg/MEnglish/internal/learning"
)

// LearningStatistics holds statistics for a time period
type LearningStatistics struct {
	Period        string // "2025-01"
	SessionsCount int
	ScoredCount   int // sessions that recorded a score
	AverageScore  int // rounded mean of the recorded scores
	SetsStudied   int // unique sets with a session in the period
}

// AggregateStatistics holds totals across all periods with global unique counts
type AggregateStatistics struct {
	SessionsCount int
	ScoredCount   int
	AverageScore  int
	SetsStudied   int // deduplicated across periods
}

// StatisticsResult holds both per-period and aggregate statistics
type StatisticsResult struct {
	Periods   []LearningStatistics
	Aggregate AggregateStatistics
	BySession map[learning.SessionType]int
}

type periodData struct {
	sessions   int
	scored     int
	scoreTotal int
	sets       map[string]struct{}
}

// CalculateStatistics groups sessions by month.
// It accepts optional year and month filters (0 means no filter).
func CalculateStatistics(sessions []learning.LearningSession, year, month int) StatisticsResult {
	stats := make(map[string]*periodData)
	globalSets := make(map[string]struct{})
	bySession := make(map[learning.SessionType]int)

	for _, session := range sessions {
		if session.CompletedAt.IsZero() {
			continue
		}

		sessionYear := session.CompletedAt.Year()
		sessionMonth := int(session.CompletedAt.Month())
		if !matchesFilter(sessionYear, sessionMonth, year, month) {
			continue
		}

		period := fmt.Sprintf("%d-%02d", sessionYear, sessionMonth)
		ensurePeriodExists(stats, period)

		data := stats[period]
		data.sessions++
		if session.Score != nil {
			data.scored++
			data.scoreTotal += *session.Score
		}
		data.sets[session.SetID] = struct{}{}
		globalSets[session.SetID] = struct{}{}
		bySession[session.SessionType]++
	}

	result := buildResult(stats, globalSets)
	result.BySession = bySession
	return result
}

func ensurePeriodExists(stats map[string]*periodData, period string) {
	if stats[period] == nil {
		stats[period] = &periodData{
			sets: make(map[string]struct{}),
		}
	}
}

func matchesFilter(sessionYear, sessionMonth, filterYear, filterMonth int) bool {
	if filterYear == 0 {
		return true
	}
	if sessionYear != filterYear {
		return false
	}
	if filterMonth == 0 {
		return true
	}
	return sessionMonth == filterMonth
}

func buildResult(stats map[string]*periodData, globalSets map[string]struct{}) StatisticsResult {
	periods := make([]LearningStatistics, 0, len(stats))

	var totalSessions, totalScored, totalScore int
	for period, data := range stats {
		periods = append(periods, LearningStatistics{
			Period:        period,
			SessionsCount: data.sessions,
			ScoredCount:   data.scored,
			AverageScore:  average(data.scoreTotal, data.scored),
			SetsStudied:   len(data.sets),
		})
		totalSessions += data.sessions
		totalScored += data.scored
		totalScore += data.scoreTotal
	}

	// Sort by period descending (newest first)
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period > periods[j].Period
	})

	return StatisticsResult{
		Periods: periods,
		Aggregate: AggregateStatistics{
			SessionsCount: totalSessions,
			ScoredCount:   totalScored,
			AverageScore:  average(totalScore, totalScored),
			SetsStudied:   len(globalSets),
		},
	}
}

func average(total, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count)))
}
