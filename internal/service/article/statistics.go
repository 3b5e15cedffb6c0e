package article

import (
	"time"

	"article-api/internal/domain/dto"
	"article-api/internal/domain/models"
)

// StatisticsDays is the length of the statistics window, today included.
const StatisticsDays = 7

func windowStart(now time.Time) time.Time {
	return now.AddDate(0, 0, -(StatisticsDays - 1))
}

// Aggregate counts arts per calendar day over the StatisticsDays days ending
// on now's date. Days are computed in now's location. Articles outside the
// window are ignored. The result always has StatisticsDays entries, oldest first.
func Aggregate(now time.Time, arts []models.Article) dto.Statistics {
	start := windowStart(now)

	days := make([]dto.StatisticsDay, StatisticsDays)
	index := make(map[string]int, StatisticsDays)
	for i := range days {
		date := start.AddDate(0, 0, i).Format(time.DateOnly)
		days[i] = dto.StatisticsDay{Date: date}
		index[date] = i
	}

	for _, a := range arts {
		date := a.PublishingDate.In(now.Location()).Format(time.DateOnly)
		if i, ok := index[date]; ok {
			days[i].Count++
		}
	}

	return dto.Statistics{Days: days}
}
