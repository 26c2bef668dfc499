package models

import (
	"time"
)

// Фиксированные перечисления доменной модели
const (
	StatusOpen         = "open"
	StatusAcknowledged = "acknowledged"
	StatusResolved     = "resolved"

	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"

	CategoryTraffic       = "Traffic"
	CategoryCybersecurity = "Cybersecurity"
	CategoryPublicSafety  = "Public Safety"
	CategoryUtilities     = "Utilities"
	CategoryEnvironmental = "Environmental"
)

// Statuses - этапы жизненного цикла инцидента
var Statuses = []string{StatusOpen, StatusAcknowledged, StatusResolved}

// Severities - уровни серьезности по возрастанию
var Severities = []string{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

// Categories - допустимые категории инцидентов
var Categories = []string{
	CategoryTraffic,
	CategoryCybersecurity,
	CategoryPublicSafety,
	CategoryUtilities,
	CategoryEnvironmental,
}

// Incident представляет отслеживаемое событие реагирования.
// Nullable-таймстемпы хранятся указателями, чтобы в JSON уходил явный null.
type Incident struct {
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

// Clone возвращает независимую копию инцидента
func (i *Incident) Clone() *Incident {
	if i == nil {
		return nil
	}
	c := *i
	if i.AcknowledgedAt != nil {
		t := *i.AcknowledgedAt
		c.AcknowledgedAt = &t
	}
	if i.ResolvedAt != nil {
		t := *i.ResolvedAt
		c.ResolvedAt = &t
	}
	if i.RootCause != nil {
		rc := *i.RootCause
		c.RootCause = &rc
	}
	return &c
}

// IncidentDraft - входные поля для регистрации инцидента.
// Пустые поля заменяются значениями по умолчанию на стороне хранилища.
type IncidentDraft struct {
	Title       string
	Category    string
	Severity    string
	Location    string
	Description string
	Impact      string
}

// ValidStatus проверяет, что значение входит в перечисление статусов
func ValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}
