package simulator

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/shenikar/incident_response_system/internal/metrics"
	"github.com/shenikar/incident_response_system/internal/models"
	"github.com/sirupsen/logrus"
)

// SensorRepository определяет контракт доступа симулятора к сенсорам
type SensorRepository interface {
	ListSensors(ctx context.Context) ([]*models.Sensor, error)
	SaveSensor(ctx context.Context, sensor *models.Sensor) error
}

// Simulator мутирует payload сенсоров псевдослучайным джиттером,
// имитируя живой поток телеметрии. Один общий сидированный генератор
// на все сенсоры; mutex сериализует тики, так как rand.Rand не потокобезопасен.
type Simulator struct {
	mu     sync.Mutex
	repo   SensorRepository
	rng    *rand.Rand
	logger *logrus.Logger
	now    func() time.Time
}

// New создает симулятор с детерминированным сидом
func New(repo SensorRepository, seed int64, logger *logrus.Logger) *Simulator {
	return &Simulator{
		repo:   repo,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
		now:    time.Now,
	}
}

// Tick выполняет один цикл обновления по всем сенсорам: на каждый сенсор
// берется один джиттер в [-0.1, 0.1], обновляется last_update и метрики
// payload по правилам типа. Вызывается перед чтением сенсоров.
func (s *Simulator) Tick(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sensors, err := s.repo.ListSensors(ctx)
	if err != nil {
		return fmt.Errorf("simulator: could not list sensors: %w", err)
	}

	for _, sensor := range sensors {
		jitter := s.rng.Float64()*0.2 - 0.1
		sensor.LastUpdate = s.now()
		mutatePayload(sensor, jitter)
		if err := s.repo.SaveSensor(ctx, sensor); err != nil {
			return fmt.Errorf("simulator: could not save sensor %s: %w", sensor.ID, err)
		}
	}

	metrics.SensorTicks.Inc()
	s.logger.WithFields(logrus.Fields{
		"component": "simulator",
		"sensors":   len(sensors),
	}).Debug("Telemetry tick applied")
	return nil
}

// mutatePayload применяет правила мутации для типа сенсора
func mutatePayload(sensor *models.Sensor, jitter float64) {
	payload := sensor.Payload
	switch sensor.Type {
	case models.CategoryTraffic:
		payload[models.MetricVehicleCount] = math.Max(0, math.Trunc(payload[models.MetricVehicleCount]*(1+jitter)))
		payload[models.MetricAvgSpeedKmh] = math.Max(0, round1(payload[models.MetricAvgSpeedKmh]*(1-jitter)))
		if payload[models.MetricAvgSpeedKmh] < 10 {
			sensor.Status = models.SensorAlert
		} else {
			sensor.Status = models.SensorWarning
		}
	case models.CategoryUtilities:
		payload[models.MetricChlorinePpm] = round2(math.Max(0, payload[models.MetricChlorinePpm]*(1+jitter)))
		payload[models.MetricPh] = round2(clamp(payload[models.MetricPh]+jitter, 6.5, 8.5))
		if payload[models.MetricChlorinePpm] > 1.5 {
			sensor.Status = models.SensorWarning
		} else {
			sensor.Status = models.SensorHealthy
		}
	case models.CategoryPublicSafety:
		payload[models.MetricAnomalyScore] = round2(clamp(payload[models.MetricAnomalyScore]+jitter/2, 0, 1))
		if payload[models.MetricAnomalyScore] > 0.7 {
			sensor.Status = models.SensorAlert
		} else {
			sensor.Status = models.SensorHealthy
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
