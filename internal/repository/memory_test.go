package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shenikar/incident_response_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *MemoryStore {
	t.Helper()
	return NewMemoryStore(42)
}

func TestListIncidents_SortedByDetectedAtDesc(t *testing.T) {
	// Подготовка
	store := newTestStore(t)
	ctx := context.Background()

	// Действие
	incidents, err := store.ListIncidents(ctx)

	// Проверки: сиды 1000 (45 мин назад), 999 (2ч15м), 998 (6ч)
	require.NoError(t, err)
	require.Len(t, incidents, 3)
	assert.Equal(t, 1000, incidents[0].ID)
	assert.Equal(t, 999, incidents[1].ID)
	assert.Equal(t, 998, incidents[2].ID)
	for i := 1; i < len(incidents); i++ {
		assert.False(t, incidents[i].DetectedAt.After(incidents[i-1].DetectedAt))
	}
}

func TestListIncidents_ReturnsIndependentCopies(t *testing.T) {
	// Подготовка
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.ListIncidents(ctx)
	require.NoError(t, err)

	// Действие: портим полученную копию
	first[0].Title = "corrupted"
	first[0].Status = "corrupted"

	// Проверки: каноническое состояние не изменилось
	second, err := store.ListIncidents(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "corrupted", second[0].Title)
	assert.NotEqual(t, "corrupted", second[0].Status)
}

func TestAddIncident_AssignsSequentialIDsFrom1001(t *testing.T) {
	// Подготовка
	store := newTestStore(t)
	ctx := context.Background()

	// Действие
	first, err := store.AddIncident(ctx, models.IncidentDraft{})
	require.NoError(t, err)
	second, err := store.AddIncident(ctx, models.IncidentDraft{Title: "Manual entry"})
	require.NoError(t, err)

	// Проверки: идентификаторы строго возрастают и не переиспользуются
	assert.Equal(t, 1001, first.ID)
	assert.Equal(t, 1002, second.ID)

	incidents, err := store.ListIncidents(ctx)
	require.NoError(t, err)
	seen := make(map[int]bool)
	for _, incident := range incidents {
		assert.False(t, seen[incident.ID])
		seen[incident.ID] = true
	}
}

func TestAddIncident_DefaultsForMissingFields(t *testing.T) {
	// Подготовка
	store := newTestStore(t)
	ctx := context.Background()

	// Действие
	incident, err := store.AddIncident(ctx, models.IncidentDraft{})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Unclassified incident", incident.Title)
	assert.Contains(t, models.Categories, incident.Category)
	assert.Contains(t, models.Severities, incident.Severity)
	assert.Equal(t, models.StatusOpen, incident.Status)
	assert.Equal(t, "Unknown", incident.Location)
	assert.Equal(t, "Generated from live sensor input.", incident.Description)
	assert.Equal(t, "Impact under investigation.", incident.Impact)
	assert.Nil(t, incident.AcknowledgedAt)
	assert.Nil(t, incident.ResolvedAt)
	assert.Nil(t, incident.RootCause)
	assert.False(t, incident.DetectedAt.IsZero())
}

func TestAddIncident_ExplicitFieldsKept(t *testing.T) {
	// Подготовка
	store := newTestStore(t)
	ctx := context.Background()
	draft := models.IncidentDraft{
		Title:       "Water main burst",
		Category:    models.CategoryUtilities,
		Severity:    models.SeverityCritical,
		Location:    "Harbor District",
		Description: "Pressure drop across three blocks.",
		Impact:      "Supply interruption for 1200 households.",
	}

	// Действие
	incident, err := store.AddIncident(ctx, draft)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, draft.Title, incident.Title)
	assert.Equal(t, draft.Category, incident.Category)
	assert.Equal(t, draft.Severity, incident.Severity)
	assert.Equal(t, draft.Location, incident.Location)
}

func TestGetIncident_NotFound(t *testing.T) {
	// Подготовка
	store := newTestStore(t)

	// Действие
	incident, err := store.GetIncident(context.Background(), 12345)

	// Проверки
	require.ErrorIs(t, err, models.ErrIncidentNotFound)
	assert.Nil(t, incident)
}

func TestUpdateStatus_ResolveSetsBothTimestamps(t *testing.T) {
	// Подготовка: инцидент 1000 открыт, таймстемпы workflow пустые
	store := newTestStore(t)
	ctx := context.Background()

	// Действие
	incident, err := store.UpdateStatus(ctx, 1000, models.StatusResolved)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, incident.AcknowledgedAt)
	require.NotNil(t, incident.ResolvedAt)
	assert.False(t, incident.ResolvedAt.Before(*incident.AcknowledgedAt))
}

func TestUpdateStatus_AcknowledgeThenResolveKeepsAckTime(t *testing.T) {
	// Подготовка
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Now()
	store.now = func() time.Time { return base }
	acked, err := store.UpdateStatus(ctx, 1000, models.StatusAcknowledged)
	require.NoError(t, err)
	require.NotNil(t, acked.AcknowledgedAt)

	// Действие: resolve наступает позже
	store.now = func() time.Time { return base.Add(10 * time.Minute) }
	resolved, err := store.UpdateStatus(ctx, 1000, models.StatusResolved)

	// Проверки: acknowledged_at не перезаписан, resolved_at >= acknowledged_at
	require.NoError(t, err)
	require.NotNil(t, resolved.AcknowledgedAt)
	require.NotNil(t, resolved.ResolvedAt)
	assert.True(t, resolved.AcknowledgedAt.Equal(*acked.AcknowledgedAt))
	assert.False(t, resolved.ResolvedAt.Before(*resolved.AcknowledgedAt))
}

func TestUpdateStatus_RepeatedResolveDoesNotOverwrite(t *testing.T) {
	// Подготовка
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Now()
	store.now = func() time.Time { return base }
	first, err := store.UpdateStatus(ctx, 1000, models.StatusResolved)
	require.NoError(t, err)

	// Действие: повторный resolve спустя час
	store.now = func() time.Time { return base.Add(time.Hour) }
	second, err := store.UpdateStatus(ctx, 1000, models.StatusResolved)

	// Проверки
	require.NoError(t, err)
	assert.True(t, second.AcknowledgedAt.Equal(*first.AcknowledgedAt))
	assert.True(t, second.ResolvedAt.Equal(*first.ResolvedAt))
}

func TestUpdateStatus_InvalidStatusRejectedWithoutMutation(t *testing.T) {
	// Подготовка
	store := newTestStore(t)
	ctx := context.Background()

	before, err := store.GetIncident(ctx, 1000)
	require.NoError(t, err)

	// Действие
	updated, err := store.UpdateStatus(ctx, 1000, "bogus")

	// Проверки: типизированная ошибка называет значение, инцидент не тронут
	require.Error(t, err)
	assert.Nil(t, updated)
	var invalidStatus *models.InvalidStatusError
	require.ErrorAs(t, err, &invalidStatus)
	assert.Equal(t, "bogus", invalidStatus.Status)
	assert.Contains(t, err.Error(), "bogus")

	after, err := store.GetIncident(ctx, 1000)
	require.NoError(t, err)
	assert.Equal(t, before.Status, after.Status)
	assert.Nil(t, after.AcknowledgedAt)
	assert.Nil(t, after.ResolvedAt)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	// Подготовка
	store := newTestStore(t)

	// Действие
	incident, err := store.UpdateStatus(context.Background(), 12345, models.StatusOpen)

	// Проверки
	require.ErrorIs(t, err, models.ErrIncidentNotFound)
	assert.Nil(t, incident)
}

func TestListSensors_SeedOrderAndCopies(t *testing.T) {
	// Подготовка
	store := newTestStore(t)
	ctx := context.Background()

	// Действие
	sensors, err := store.ListSensors(ctx)

	// Проверки
	require.NoError(t, err)
	require.Len(t, sensors, 3)
	assert.Equal(t, "traffic-001", sensors[0].ID)
	assert.Equal(t, "iot-443", sensors[1].ID)
	assert.Equal(t, "cctv-901", sensors[2].ID)

	// Копия payload независима от канонического состояния
	sensors[0].Payload[models.MetricVehicleCount] = -1
	again, err := store.ListSensors(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(982), again[0].Payload[models.MetricVehicleCount])
}

func TestSaveSensor_WritesBack(t *testing.T) {
	// Подготовка
	store := newTestStore(t)
	ctx := context.Background()

	sensors, err := store.ListSensors(ctx)
	require.NoError(t, err)
	sensor := sensors[2]
	sensor.Status = models.SensorHealthy
	sensor.Payload[models.MetricAnomalyScore] = 0.12

	// Действие
	require.NoError(t, store.SaveSensor(ctx, sensor))

	// Проверки
	again, err := store.ListSensors(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SensorHealthy, again[2].Status)
	assert.Equal(t, 0.12, again[2].Payload[models.MetricAnomalyScore])
}

func TestSaveSensor_UnknownID(t *testing.T) {
	// Подготовка
	store := newTestStore(t)

	// Действие
	err := store.SaveSensor(context.Background(), &models.Sensor{ID: "ghost-007"})

	// Проверки
	require.ErrorIs(t, err, models.ErrSensorNotFound)
}
