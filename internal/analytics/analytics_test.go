package analytics

import (
	"testing"
	"time"

	"github.com/shenikar/incident_response_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMetrics_EmptyInput(t *testing.T) {
	metrics := ComputeMetrics(nil)

	assert.Equal(t, 0, metrics.TotalIncidents)
	assert.Equal(t, map[string]int{
		models.StatusOpen:         0,
		models.StatusAcknowledged: 0,
		models.StatusResolved:     0,
	}, metrics.StatusBreakdown)
	assert.Empty(t, metrics.CategoryBreakdown)
	assert.Empty(t, metrics.SeverityBreakdown)
	assert.Nil(t, metrics.AvgAckMinutes)
	assert.Nil(t, metrics.AvgResolutionMinutes)
	assert.NotNil(t, metrics.IncidentsTimeline)
	assert.Empty(t, metrics.IncidentsTimeline)
}

func TestComputeMetrics_Breakdowns(t *testing.T) {
	detected := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	incidents := []*models.Incident{
		{Status: models.StatusOpen, Category: models.CategoryTraffic, Severity: models.SeverityHigh, DetectedAt: detected},
		{Status: models.StatusOpen, Category: models.CategoryTraffic, Severity: models.SeverityLow, DetectedAt: detected},
		{Status: models.StatusResolved, Category: models.CategoryUtilities, Severity: models.SeverityHigh, DetectedAt: detected},
	}

	metrics := ComputeMetrics(incidents)

	assert.Equal(t, 3, metrics.TotalIncidents)
	// Все три статуса присутствуют, даже отсутствующий в выборке acknowledged
	assert.Equal(t, map[string]int{
		models.StatusOpen:         2,
		models.StatusAcknowledged: 0,
		models.StatusResolved:     1,
	}, metrics.StatusBreakdown)
	// Разбивки по категориям и серьезности содержат только встреченные значения
	assert.Equal(t, map[string]int{
		models.CategoryTraffic:   2,
		models.CategoryUtilities: 1,
	}, metrics.CategoryBreakdown)
	assert.Equal(t, map[string]int{
		models.SeverityHigh: 2,
		models.SeverityLow:  1,
	}, metrics.SeverityBreakdown)
}

func TestComputeMetrics_Averages(t *testing.T) {
	detected := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	ack1 := detected.Add(10 * time.Minute)
	res1 := ack1.Add(30 * time.Minute)
	ack2 := detected.Add(20 * time.Minute)

	incidents := []*models.Incident{
		{Status: models.StatusResolved, DetectedAt: detected, AcknowledgedAt: &ack1, ResolvedAt: &res1},
		{Status: models.StatusAcknowledged, DetectedAt: detected, AcknowledgedAt: &ack2},
		{Status: models.StatusOpen, DetectedAt: detected},
	}

	metrics := ComputeMetrics(incidents)

	// ack: (10 + 20) / 2 = 15.0; resolution: 30.0 от acknowledged_at
	require.NotNil(t, metrics.AvgAckMinutes)
	assert.Equal(t, 15.0, *metrics.AvgAckMinutes)
	require.NotNil(t, metrics.AvgResolutionMinutes)
	assert.Equal(t, 30.0, *metrics.AvgResolutionMinutes)
}

func TestComputeMetrics_ResolutionFallsBackToDetectedAt(t *testing.T) {
	detected := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	resolved := detected.Add(45 * time.Minute)

	incidents := []*models.Incident{
		{Status: models.StatusResolved, DetectedAt: detected, ResolvedAt: &resolved},
	}

	metrics := ComputeMetrics(incidents)

	// Без acknowledged_at базой служит detected_at
	require.NotNil(t, metrics.AvgResolutionMinutes)
	assert.Equal(t, 45.0, *metrics.AvgResolutionMinutes)
	assert.Nil(t, metrics.AvgAckMinutes)
}

func TestComputeMetrics_AveragesRoundedToOneDecimal(t *testing.T) {
	detected := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	ack := detected.Add(10*time.Minute + 20*time.Second)

	incidents := []*models.Incident{
		{Status: models.StatusAcknowledged, DetectedAt: detected, AcknowledgedAt: &ack},
	}

	metrics := ComputeMetrics(incidents)

	require.NotNil(t, metrics.AvgAckMinutes)
	assert.Equal(t, 10.3, *metrics.AvgAckMinutes)
}

func TestComputeMetrics_TimelineAscendingHourBuckets(t *testing.T) {
	incidents := []*models.Incident{
		{Status: models.StatusOpen, DetectedAt: time.Date(2024, 3, 1, 12, 45, 0, 0, time.UTC)},
		{Status: models.StatusOpen, DetectedAt: time.Date(2024, 3, 1, 10, 5, 0, 0, time.UTC)},
		{Status: models.StatusOpen, DetectedAt: time.Date(2024, 3, 1, 10, 59, 0, 0, time.UTC)},
		{Status: models.StatusOpen, DetectedAt: time.Date(2024, 2, 29, 23, 10, 0, 0, time.UTC)},
	}

	metrics := ComputeMetrics(incidents)

	assert.Equal(t, []models.TimelineBucket{
		{Bucket: "2024-02-29 23:00", Count: 1},
		{Bucket: "2024-03-01 10:00", Count: 2},
		{Bucket: "2024-03-01 12:00", Count: 1},
	}, metrics.IncidentsTimeline)
}
