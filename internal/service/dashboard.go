package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shenikar/incident_response_system/internal/analytics"
	"github.com/shenikar/incident_response_system/internal/classifier"
	"github.com/shenikar/incident_response_system/internal/metrics"
	"github.com/shenikar/incident_response_system/internal/models"
	"github.com/shenikar/incident_response_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=dashboard.go -destination=mocks/mock_dashboard.go -package=mocks

// IncidentRepository определяет контракт для работы с хранилищем инцидентов
type IncidentRepository interface {
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
	GetIncident(ctx context.Context, id int) (*models.Incident, error)
	AddIncident(ctx context.Context, draft models.IncidentDraft) (*models.Incident, error)
	UpdateStatus(ctx context.Context, id int, status string) (*models.Incident, error)
}

// SensorProvider определяет контракт чтения сенсоров
type SensorProvider interface {
	ListSensors(ctx context.Context) ([]*models.Sensor, error)
}

// TelemetrySimulator определяет контракт тика телеметрии
type TelemetrySimulator interface {
	Tick(ctx context.Context) error
}

// DashboardService определяет контракт бизнес-логики дашборда реагирования
type DashboardService interface {
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
	GetIncident(ctx context.Context, id int) (*models.Incident, error)
	CreateIncident(ctx context.Context, draft models.IncidentDraft) (*models.Incident, error)
	UpdateIncidentStatus(ctx context.Context, id int, status string) (*models.Incident, error)
	ListSensors(ctx context.Context) ([]models.SensorReading, error)
	DashboardSnapshot(ctx context.Context) (*models.DashboardSnapshot, error)
	RunSimulationCycle(ctx context.Context) (*models.SimulationResult, error)
}

type dashboardService struct {
	incidents IncidentRepository
	sensors   SensorProvider
	simulator TelemetrySimulator
	publisher webhook.Publisher
	logger    *logrus.Logger
}

// NewDashboardService создает сервис дашборда
func NewDashboardService(
	incidents IncidentRepository,
	sensors SensorProvider,
	simulator TelemetrySimulator,
	publisher webhook.Publisher,
	logger *logrus.Logger,
) DashboardService {
	return &dashboardService{
		incidents: incidents,
		sensors:   sensors,
		simulator: simulator,
		publisher: publisher,
		logger:    logger,
	}
}

// ListIncidents возвращает инциденты, самые свежие первыми
func (s *dashboardService) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "ListIncidents",
	})

	incidents, err := s.incidents.ListIncidents(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Debug("Incidents listed successfully")
	return incidents, nil
}

// GetIncident получает инцидент по ID
func (s *dashboardService) GetIncident(ctx context.Context, id int) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dashboard",
		"method":      "GetIncident",
		"incident_id": id,
	})

	incident, err := s.incidents.GetIncident(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return incident, nil
}

// CreateIncident регистрирует инцидент, введенный оператором вручную
func (s *dashboardService) CreateIncident(ctx context.Context, draft models.IncidentDraft) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "CreateIncident",
		"title":   draft.Title,
	})
	log.Info("Attempting to register a new incident")

	incident, err := s.incidents.AddIncident(ctx, draft)
	if err != nil {
		log.WithError(err).Error("Failed to register incident in repository")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	s.publishCreated(ctx, incident, webhook.SourceManual)
	metrics.IncidentsCreated.WithLabelValues(webhook.SourceManual).Inc()

	log.WithField("incident_id", incident.ID).Info("Incident registered successfully")
	return incident, nil
}

// UpdateIncidentStatus переводит инцидент по workflow реагирования
func (s *dashboardService) UpdateIncidentStatus(ctx context.Context, id int, status string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dashboard",
		"method":      "UpdateIncidentStatus",
		"incident_id": id,
		"status":      status,
	})
	log.Info("Attempting to update incident status")

	incident, err := s.incidents.UpdateStatus(ctx, id, status)
	if err != nil {
		log.WithError(err).Warn("Failed to update incident status in repository")
		return nil, fmt.Errorf("service: could not update incident status: %w", err)
	}

	log.Info("Incident status updated successfully")
	return incident, nil
}

// ListSensors выполняет тик телеметрии и возвращает сенсоры с классификацией
func (s *dashboardService) ListSensors(ctx context.Context) ([]models.SensorReading, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "ListSensors",
	})

	if err := s.simulator.Tick(ctx); err != nil {
		log.WithError(err).Error("Failed to tick telemetry simulator")
		return nil, fmt.Errorf("service: could not tick simulator: %w", err)
	}

	readings, err := s.classifiedSensors(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to read sensors")
		return nil, err
	}
	return readings, nil
}

// DashboardSnapshot собирает комбинированную выдачу: инциденты, метрики,
// сенсоры с классификацией. Тик телеметрии здесь не выполняется.
func (s *dashboardService) DashboardSnapshot(ctx context.Context) (*models.DashboardSnapshot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "DashboardSnapshot",
	})

	incidents, err := s.incidents.ListIncidents(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	readings, err := s.classifiedSensors(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to read sensors")
		return nil, err
	}

	return &models.DashboardSnapshot{
		Incidents: incidents,
		Metrics:   analytics.ComputeMetrics(incidents),
		Sensors:   readings,
	}, nil
}

// RunSimulationCycle прогоняет полный цикл: тик телеметрии, классификация
// всех сенсоров, выбор максимальной оценки (при равенстве побеждает первый
// по порядку сенсоров) и, если она преодолела порог, регистрация одного
// инцидента по рекомендации. Больше одного инцидента за вызов не создается.
func (s *dashboardService) RunSimulationCycle(ctx context.Context) (*models.SimulationResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "RunSimulationCycle",
	})
	log.Info("Running simulation cycle")

	if err := s.simulator.Tick(ctx); err != nil {
		log.WithError(err).Error("Failed to tick telemetry simulator")
		return nil, fmt.Errorf("service: could not tick simulator: %w", err)
	}

	sensors, err := s.sensors.ListSensors(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list sensors from repository")
		return nil, fmt.Errorf("service: could not list sensors: %w", err)
	}

	type candidate struct {
		sensor *models.Sensor
		cls    models.Classification
	}
	candidates := make([]candidate, 0, len(sensors))
	for _, sensor := range sensors {
		candidates = append(candidates, candidate{sensor: sensor, cls: classifier.Classify(sensor)})
	}
	// Стабильная сортировка по убыванию сохраняет исходный порядок при равных оценках
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].cls.Score > candidates[j].cls.Score
	})

	result := &models.SimulationResult{
		SensorScores: make([]models.SensorScore, 0, len(candidates)),
	}
	for _, c := range candidates {
		result.SensorScores = append(result.SensorScores, models.SensorScore{
			SensorID:          c.sensor.ID,
			Score:             c.cls.Score,
			SuggestedSeverity: c.cls.SuggestedSeverity,
		})
	}

	if len(candidates) > 0 && candidates[0].cls.Score >= classifier.ActionThreshold {
		top := candidates[0]
		draft := classifier.RecommendIncident(top.sensor, top.cls)
		incident, err := s.incidents.AddIncident(ctx, draft)
		if err != nil {
			log.WithError(err).Error("Failed to register recommended incident")
			return nil, fmt.Errorf("service: could not create recommended incident: %w", err)
		}
		result.CreatedIncident = incident

		s.publishCreated(ctx, incident, webhook.SourceSimulation)
		metrics.IncidentsCreated.WithLabelValues(webhook.SourceSimulation).Inc()

		log.WithFields(logrus.Fields{
			"incident_id": incident.ID,
			"sensor_id":   top.sensor.ID,
			"score":       top.cls.Score,
		}).Info("Simulation cycle created an incident")
	} else {
		log.Info("Simulation cycle completed without incident")
	}

	metrics.SimulationCycles.Inc()
	return result, nil
}

// classifiedSensors читает сенсоры и присоединяет классификацию к каждому
func (s *dashboardService) classifiedSensors(ctx context.Context) ([]models.SensorReading, error) {
	sensors, err := s.sensors.ListSensors(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list sensors: %w", err)
	}

	readings := make([]models.SensorReading, 0, len(sensors))
	for _, sensor := range sensors {
		readings = append(readings, models.SensorReading{
			Sensor:     sensor,
			Prediction: classifier.Classify(sensor),
		})
	}
	return readings, nil
}

// publishCreated отправляет событие о созданном инциденте; сбой публикации
// не должен ломать основную операцию
func (s *dashboardService) publishCreated(ctx context.Context, incident *models.Incident, source string) {
	event := webhook.IncidentEvent{
		Event:     "incident.created",
		Source:    source,
		Timestamp: time.Now(),
		Incident:  incident,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("incident_id", incident.ID).Warn("Failed to publish incident event")
	}
}
