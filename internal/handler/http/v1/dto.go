package v1

import (
	"time"

	"github.com/shenikar/incident_response_system/internal/models"
)

// LoginRequest DTO для входа оператора
// @Description DTO для входа оператора
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse DTO с выданным сессионным токеном
// @Description DTO с выданным сессионным токеном
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateIncidentRequest DTO для регистрации инцидента.
// Все поля необязательны: пропущенные получают значения по умолчанию.
// @Description DTO для регистрации инцидента
type CreateIncidentRequest struct {
	Title       string `json:"title" validate:"omitempty,max=255"`
	Category    string `json:"category" validate:"omitempty,oneof=Traffic Cybersecurity 'Public Safety' Utilities Environmental"`
	Severity    string `json:"severity" validate:"omitempty,oneof=low medium high critical"`
	Location    string `json:"location" validate:"omitempty,max=255"`
	Description string `json:"description,omitempty"`
	Impact      string `json:"impact,omitempty"`
}

// UpdateStatusRequest DTO для перевода инцидента по workflow
// @Description DTO для перевода инцидента по workflow
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// IncidentResponse DTO для ответа с информацией об инциденте.
// Nullable-таймстемпы сериализуются явным null, не опускаются.
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID             int        `json:"id"`
	Title          string     `json:"title"`
	Category       string     `json:"category"`
	Severity       string     `json:"severity"`
	Status         string     `json:"status"`
	DetectedAt     time.Time  `json:"detected_at"`
	AcknowledgedAt *time.Time `json:"acknowledged_at"`
	ResolvedAt     *time.Time `json:"resolved_at"`
	Location       string     `json:"location"`
	Description    string     `json:"description"`
	Impact         string     `json:"impact"`
	RootCause      *string    `json:"root_cause"`
}

// SensorResponse DTO для сенсора с присоединенной классификацией
// @Description DTO для сенсора с присоединенной классификацией
type SensorResponse struct {
	ID         string                `json:"id"`
	Type       string                `json:"type"`
	Location   string                `json:"location"`
	LastUpdate time.Time             `json:"last_update"`
	Status     string                `json:"status"`
	Payload    map[string]float64    `json:"payload"`
	Prediction models.Classification `json:"prediction"`
}

// IncidentListResponse - конверт списка инцидентов
type IncidentListResponse struct {
	Incidents []*IncidentResponse `json:"incidents"`
}

// IncidentEnvelope - конверт одиночного инцидента
type IncidentEnvelope struct {
	Incident *IncidentResponse `json:"incident"`
}

// SensorListResponse - конверт списка сенсоров
type SensorListResponse struct {
	Sensors []*SensorResponse `json:"sensors"`
}

// DashboardResponse - комбинированная выдача дашборда
type DashboardResponse struct {
	Incidents []*IncidentResponse `json:"incidents"`
	Metrics   *models.Metrics     `json:"metrics"`
	Sensors   []*SensorResponse   `json:"sensors"`
}

// SimulateResponse - итог цикла симуляции.
// CreatedIncident равен null, если порог не был преодолен.
type SimulateResponse struct {
	CreatedIncident *IncidentResponse    `json:"created_incident"`
	SensorScores    []models.SensorScore `json:"sensor_scores"`
}
