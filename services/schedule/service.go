package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vetly/models"
	"vetly/upstream/pims"
	"vetly/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultTimelineService is the production timeline engine: it fetches raw
// day records from the PIMS API (behind a short-TTL redis cache) and derives
// every view from scratch per request.
type DefaultTimelineService struct {
	Pims        pims.Repository
	CacheClient *redis.Client
	CacheTTL    time.Duration
	Policy      WindowPolicy
}

func (s *DefaultTimelineService) DayTimeline(ctx context.Context, doctorPimsID, date string) (models.DayTimeline, error) {
	day, err := s.dayRecord(ctx, doctorPimsID, date)
	if err != nil {
		return models.DayTimeline{}, err
	}
	return BuildDayTimeline(doctorPimsID, day, s.Policy), nil
}

func (s *DefaultTimelineService) WeekSummaries(ctx context.Context, doctorPimsID, weekStart string) ([]models.DaySummary, error) {
	start, err := time.Parse("2006-01-02", weekStart)
	if err != nil {
		return nil, fmt.Errorf("invalid week start %q: %w", weekStart, err)
	}

	logger := utils.GetLogger()
	summaries := make([]models.DaySummary, 0, 7)
	for d := 0; d < 7; d++ {
		date := start.AddDate(0, 0, d).Format("2006-01-02")
		day, err := s.dayRecord(ctx, doctorPimsID, date)
		if err != nil {
			// A single failed day degrades to an off entry rather than
			// sinking the whole week view.
			logger.Warn("week summary: day fetch failed",
				zap.String("doctorPimsID", doctorPimsID), zap.String("date", date), zap.Error(err))
			summaries = append(summaries, models.DaySummary{Date: date, Off: true})
			continue
		}

		timeline := BuildDayTimeline(doctorPimsID, day, s.Policy)
		summaries = append(summaries, models.DaySummary{
			Date:          date,
			Off:           timeline.Off,
			WindowSeconds: timeline.Window.LengthSec,
			BusySeconds:   timeline.BusySeconds,
			DriveSeconds:  timeline.DriveSeconds,
			FreeSeconds:   timeline.FreeSeconds,
			ApptCount:     len(day.Appts),
		})
	}
	return summaries, nil
}

// dayRecord fetches one raw day record, trying the cache first. Cache
// failures are non-fatal; the upstream fetch is the source of truth.
func (s *DefaultTimelineService) dayRecord(ctx context.Context, doctorPimsID, date string) (models.DayRecord, error) {
	logger := utils.GetLogger()
	cacheKey := fmt.Sprintf("day:%s:%s", doctorPimsID, date)

	if s.CacheClient != nil {
		if cached, err := s.CacheClient.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var day models.DayRecord
			if err := json.Unmarshal([]byte(cached), &day); err == nil {
				return day, nil
			}
			// Unreadable cache entry falls through to a fresh fetch.
		}
	}

	day, err := s.Pims.DaySchedule(ctx, doctorPimsID, date)
	if err != nil {
		return models.DayRecord{}, err
	}

	if s.CacheClient != nil {
		if data, err := json.Marshal(day); err == nil {
			ttl := s.CacheTTL
			if ttl <= 0 {
				ttl = 2 * time.Minute
			}
			if err := s.CacheClient.Set(ctx, cacheKey, data, ttl).Err(); err != nil {
				logger.Warn("day record cache write failed", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}

	return day, nil
}
