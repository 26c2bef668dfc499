package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/shenikar/incident_response_system/internal/models"
)

// timelineLayout - ключ часового интервала таймлайна
const timelineLayout = "2006-01-02 15:00"

// ComputeMetrics агрегирует показатели дашборда по набору инцидентов.
// Разбивка по статусам заполняется нулями для всех трех статусов,
// разбивки по категориям и серьезности содержат только встреченные значения.
func ComputeMetrics(incidents []*models.Incident) *models.Metrics {
	statusBreakdown := make(map[string]int, len(models.Statuses))
	for _, status := range models.Statuses {
		statusBreakdown[status] = 0
	}
	categoryBreakdown := make(map[string]int)
	severityBreakdown := make(map[string]int)

	var ackMinutes []float64
	var resolutionMinutes []float64
	timeline := make(map[string]int)

	for _, incident := range incidents {
		statusBreakdown[incident.Status]++
		categoryBreakdown[incident.Category]++
		severityBreakdown[incident.Severity]++

		if incident.AcknowledgedAt != nil {
			ackMinutes = append(ackMinutes, minutesBetween(incident.DetectedAt, *incident.AcknowledgedAt))
		}
		if incident.ResolvedAt != nil {
			// Базой времени устранения служит acknowledged_at,
			// при его отсутствии - detected_at
			baseline := incident.DetectedAt
			if incident.AcknowledgedAt != nil {
				baseline = *incident.AcknowledgedAt
			}
			resolutionMinutes = append(resolutionMinutes, minutesBetween(baseline, *incident.ResolvedAt))
		}

		timeline[incident.DetectedAt.Format(timelineLayout)]++
	}

	return &models.Metrics{
		TotalIncidents:       len(incidents),
		StatusBreakdown:      statusBreakdown,
		CategoryBreakdown:    categoryBreakdown,
		SeverityBreakdown:    severityBreakdown,
		AvgAckMinutes:        average(ackMinutes),
		AvgResolutionMinutes: average(resolutionMinutes),
		IncidentsTimeline:    sortedTimeline(timeline),
	}
}

func minutesBetween(start, end time.Time) float64 {
	return end.Sub(start).Minutes()
}

// average возвращает среднее, округленное до одного знака, или nil для пустой выборки
func average(samples []float64) *float64 {
	if len(samples) == 0 {
		return nil
	}
	var sum float64
	for _, v := range samples {
		sum += v
	}
	avg := math.Round(sum/float64(len(samples))*10) / 10
	return &avg
}

// sortedTimeline превращает карту интервалов в последовательность,
// упорядоченную по возрастанию ключа
func sortedTimeline(timeline map[string]int) []models.TimelineBucket {
	buckets := make([]models.TimelineBucket, 0, len(timeline))
	for key, count := range timeline {
		buckets = append(buckets, models.TimelineBucket{Bucket: key, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Bucket < buckets[j].Bucket
	})
	return buckets
}
