package repository

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/shenikar/incident_response_system/internal/models"
)

// Значения по умолчанию для регистрации инцидента с незаполненными полями
const (
	defaultTitle       = "Unclassified incident"
	defaultLocation    = "Unknown"
	defaultDescription = "Generated from live sensor input."
	defaultImpact      = "Impact under investigation."

	firstIncidentID = 1001
)

// MemoryStore владеет каноническими коллекциями инцидентов и сенсоров.
// Все читающие методы возвращают независимые копии, поэтому вызывающая
// сторона не может испортить внутреннее состояние. Доступ сериализован
// через RWMutex, писатели работают строго по одному.
type MemoryStore struct {
	mu        sync.RWMutex
	incidents []*models.Incident
	sensors   []*models.Sensor
	nextID    int
	rng       *rand.Rand
	now       func() time.Time
}

// NewMemoryStore создает хранилище с демонстрационными данными.
// Генератор для подстановки случайных категорий/серьезностей сидируется
// детерминированно и не связан с криптографической случайностью.
func NewMemoryStore(seed int64) *MemoryStore {
	s := &MemoryStore{
		nextID: firstIncidentID,
		rng:    rand.New(rand.NewSource(seed)),
		now:    time.Now,
	}
	s.incidents = seedIncidents(s.now())
	s.sensors = seedSensors(s.now())
	return s
}

// ListIncidents возвращает копии инцидентов, отсортированные по времени
// обнаружения по убыванию (самые свежие первыми)
func (s *MemoryStore) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Incident, 0, len(s.incidents))
	for _, incident := range s.incidents {
		out = append(out, incident.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DetectedAt.After(out[j].DetectedAt)
	})
	return out, nil
}

// GetIncident возвращает копию инцидента по идентификатору
func (s *MemoryStore) GetIncident(ctx context.Context, id int) (*models.Incident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, incident := range s.incidents {
		if incident.ID == id {
			return incident.Clone(), nil
		}
	}
	return nil, models.ErrIncidentNotFound
}

// AddIncident регистрирует новый инцидент. Идентификатор назначается
// монотонно возрастающей последовательностью, пропущенные поля получают
// значения по умолчанию, статус всегда open. Регистрация не может
// завершиться ошибкой из-за незаполненных полей.
func (s *MemoryStore) AddIncident(ctx context.Context, draft models.IncidentDraft) (*models.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	incident := &models.Incident{
		ID:          s.nextID,
		Title:       orDefault(draft.Title, defaultTitle),
		Category:    orDefault(draft.Category, models.Categories[s.rng.Intn(len(models.Categories))]),
		Severity:    orDefault(draft.Severity, models.Severities[s.rng.Intn(len(models.Severities))]),
		Status:      models.StatusOpen,
		DetectedAt:  s.now(),
		Location:    orDefault(draft.Location, defaultLocation),
		Description: orDefault(draft.Description, defaultDescription),
		Impact:      orDefault(draft.Impact, defaultImpact),
	}
	s.nextID++
	s.incidents = append(s.incidents, incident)
	return incident.Clone(), nil
}

// UpdateStatus безусловно переводит инцидент в новый статус и проставляет
// таймстемпы workflow: acknowledged_at фиксируется один раз при первом
// достижении acknowledged или resolved, resolved_at - при resolved.
// Уже установленные таймстемпы не перезаписываются и не сбрасываются,
// поэтому acknowledged_at <= resolved_at сохраняется даже при обратных
// переходах, которые принимаются без ошибки.
func (s *MemoryStore) UpdateStatus(ctx context.Context, id int, status string) (*models.Incident, error) {
	if !models.ValidStatus(status) {
		return nil, &models.InvalidStatusError{Status: status}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, incident := range s.incidents {
		if incident.ID != id {
			continue
		}
		incident.Status = status
		now := s.now()
		if status == models.StatusAcknowledged && incident.AcknowledgedAt == nil {
			incident.AcknowledgedAt = &now
		}
		if status == models.StatusResolved {
			if incident.AcknowledgedAt == nil {
				incident.AcknowledgedAt = &now
			}
			if incident.ResolvedAt == nil {
				incident.ResolvedAt = &now
			}
		}
		return incident.Clone(), nil
	}
	return nil, models.ErrIncidentNotFound
}

// ListSensors возвращает копии сенсоров в порядке сидирования
func (s *MemoryStore) ListSensors(ctx context.Context) ([]*models.Sensor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Sensor, 0, len(s.sensors))
	for _, sensor := range s.sensors {
		out = append(out, sensor.Clone())
	}
	return out, nil
}

// SaveSensor записывает обновленные показания обратно в каноническую
// коллекцию. Сенсоры не создаются на лету: неизвестный идентификатор - ошибка.
func (s *MemoryStore) SaveSensor(ctx context.Context, sensor *models.Sensor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.sensors {
		if existing.ID == sensor.ID {
			s.sensors[i] = sensor.Clone()
			return nil
		}
	}
	return models.ErrSensorNotFound
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
