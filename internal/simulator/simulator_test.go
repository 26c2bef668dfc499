package simulator

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shenikar/incident_response_system/internal/models"
	"github.com/shenikar/incident_response_system/internal/repository"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator(t *testing.T) (*Simulator, *repository.MemoryStore) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	store := repository.NewMemoryStore(42)
	return New(store, 42, logger), store
}

func TestTick_UpdatesLastUpdate(t *testing.T) {
	// Подготовка
	sim, store := newTestSimulator(t)
	ctx := context.Background()

	before, err := store.ListSensors(ctx)
	require.NoError(t, err)

	// Действие
	require.NoError(t, sim.Tick(ctx))

	// Проверки
	after, err := store.ListSensors(ctx)
	require.NoError(t, err)
	for i := range after {
		assert.True(t, after[i].LastUpdate.After(before[i].LastUpdate),
			"sensor %s last_update should advance", after[i].ID)
	}
}

func TestTick_PayloadsStayWithinClamps(t *testing.T) {
	// Подготовка
	sim, store := newTestSimulator(t)
	ctx := context.Background()

	// Действие: многократные тики не должны выводить метрики за границы
	for i := 0; i < 200; i++ {
		require.NoError(t, sim.Tick(ctx))

		sensors, err := store.ListSensors(ctx)
		require.NoError(t, err)
		for _, sensor := range sensors {
			switch sensor.Type {
			case models.CategoryTraffic:
				assert.GreaterOrEqual(t, sensor.Payload[models.MetricVehicleCount], 0.0)
				assert.GreaterOrEqual(t, sensor.Payload[models.MetricAvgSpeedKmh], 0.0)
			case models.CategoryUtilities:
				assert.GreaterOrEqual(t, sensor.Payload[models.MetricChlorinePpm], 0.0)
				assert.GreaterOrEqual(t, sensor.Payload[models.MetricPh], 6.5)
				assert.LessOrEqual(t, sensor.Payload[models.MetricPh], 8.5)
			case models.CategoryPublicSafety:
				assert.GreaterOrEqual(t, sensor.Payload[models.MetricAnomalyScore], 0.0)
				assert.LessOrEqual(t, sensor.Payload[models.MetricAnomalyScore], 1.0)
			}
		}
	}
}

func TestTick_DerivedStatusesMatchThresholds(t *testing.T) {
	// Подготовка
	sim, store := newTestSimulator(t)
	ctx := context.Background()

	// Действие
	require.NoError(t, sim.Tick(ctx))

	// Проверки: статус каждого сенсора согласован с его payload
	sensors, err := store.ListSensors(ctx)
	require.NoError(t, err)
	for _, sensor := range sensors {
		switch sensor.Type {
		case models.CategoryTraffic:
			if sensor.Payload[models.MetricAvgSpeedKmh] < 10 {
				assert.Equal(t, models.SensorAlert, sensor.Status)
			} else {
				assert.Equal(t, models.SensorWarning, sensor.Status)
			}
		case models.CategoryUtilities:
			if sensor.Payload[models.MetricChlorinePpm] > 1.5 {
				assert.Equal(t, models.SensorWarning, sensor.Status)
			} else {
				assert.Equal(t, models.SensorHealthy, sensor.Status)
			}
		case models.CategoryPublicSafety:
			if sensor.Payload[models.MetricAnomalyScore] > 0.7 {
				assert.Equal(t, models.SensorAlert, sensor.Status)
			} else {
				assert.Equal(t, models.SensorHealthy, sensor.Status)
			}
		}
	}
}

func TestTick_DeterministicForEqualSeeds(t *testing.T) {
	// Подготовка: два симулятора с одинаковым сидом над одинаковыми сторами
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	storeA := repository.NewMemoryStore(7)
	storeB := repository.NewMemoryStore(7)
	simA := New(storeA, 7, logger)
	simB := New(storeB, 7, logger)
	fixed := time.Now()
	simA.now = func() time.Time { return fixed }
	simB.now = func() time.Time { return fixed }
	ctx := context.Background()

	// Действие
	for i := 0; i < 5; i++ {
		require.NoError(t, simA.Tick(ctx))
		require.NoError(t, simB.Tick(ctx))
	}

	// Проверки: payload обоих сторах идентичны
	sensorsA, err := storeA.ListSensors(ctx)
	require.NoError(t, err)
	sensorsB, err := storeB.ListSensors(ctx)
	require.NoError(t, err)
	for i := range sensorsA {
		assert.Equal(t, sensorsA[i].Payload, sensorsB[i].Payload)
		assert.Equal(t, sensorsA[i].Status, sensorsB[i].Status)
	}
}
