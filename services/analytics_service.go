// services/analytics_service.go
package services

import (
	"sort"
	"time"

	"beautybar-backend/models"
	"beautybar-backend/utils"
)

type SectionViews struct {
	Section string `json:"section"`
	Views   int    `json:"views"`
}

type DailyViews struct {
	Date  string `json:"date"`
	Views int    `json:"views"`
}

type AnalyticsSummary struct {
	TotalViews      int            `json:"total_views"`
	TodayViews      int            `json:"today_views"`
	WeekViews       int            `json:"week_views"`
	MonthViews      int            `json:"month_views"`
	UniqueVisitors  int            `json:"unique_visitors"`
	PopularSections []SectionViews `json:"popular_sections"`
	DailyViews      []DailyViews   `json:"daily_views"`
}

const popularSectionLimit = 5

// SummarizeEvents aggregates page-view events relative to now. Day boundaries
// follow now's location; callers pass UTC. The week window is the trailing 7
// calendar days including today, matching the daily series.
func SummarizeEvents(events []models.AnalyticsEvent, now time.Time) AnalyticsSummary {
	todayStart := utils.BeginningOfDay(now)
	weekStart := todayStart.AddDate(0, 0, -6)
	monthStart := todayStart.AddDate(0, 0, -30)

	summary := AnalyticsSummary{
		PopularSections: []SectionViews{},
		DailyViews:      make([]DailyViews, 7),
	}

	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		summary.DailyViews[i] = DailyViews{Date: day.Format("2006-01-02"), Views: 0}
	}

	visitors := make(map[string]struct{})
	sectionCounts := make(map[string]int)
	sectionOrder := []string{} // first-seen order breaks count ties

	for _, e := range events {
		summary.TotalViews++
		visitors[e.VisitorID] = struct{}{}

		ts := e.Timestamp.In(now.Location())
		if !ts.Before(todayStart) {
			summary.TodayViews++
		}
		if !ts.Before(weekStart) {
			summary.WeekViews++
			idx := utils.DaysBetween(weekStart, ts)
			if idx >= 0 && idx < 7 {
				summary.DailyViews[idx].Views++
			}
		}
		if !ts.Before(monthStart) {
			summary.MonthViews++
		}

		if e.Section != "" {
			if _, seen := sectionCounts[e.Section]; !seen {
				sectionOrder = append(sectionOrder, e.Section)
			}
			sectionCounts[e.Section]++
		}
	}

	summary.UniqueVisitors = len(visitors)

	for _, section := range sectionOrder {
		summary.PopularSections = append(summary.PopularSections, SectionViews{
			Section: section,
			Views:   sectionCounts[section],
		})
	}
	sort.SliceStable(summary.PopularSections, func(i, j int) bool {
		return summary.PopularSections[i].Views > summary.PopularSections[j].Views
	})
	if len(summary.PopularSections) > popularSectionLimit {
		summary.PopularSections = summary.PopularSections[:popularSectionLimit]
	}

	return summary
}
