package models

import (
	"time"
)

// Производные статусы здоровья сенсора
const (
	SensorHealthy = "healthy"
	SensorWarning = "warning"
	SensorAlert   = "alert"
)

// Ключи метрик в payload сенсоров
const (
	MetricVehicleCount = "vehicle_count"
	MetricAvgSpeedKmh  = "avg_speed_kmh"
	MetricChlorinePpm  = "chlorine_ppm"
	MetricPh           = "ph"
	MetricAnomalyScore = "anomaly_score"
)

// Sensor представляет симулируемый источник телеметрии.
// Набор сенсоров фиксирован на старте: payload, status и last_update
// мутируются на каждом тике, сенсоры не создаются и не удаляются.
type Sensor struct {
	ID         string             `json:"id"`
	Type       string             `json:"type"`
	Location   string             `json:"location"`
	LastUpdate time.Time          `json:"last_update"`
	Status     string             `json:"status"`
	Payload    map[string]float64 `json:"payload"`
}

// Clone возвращает независимую копию сенсора вместе с payload
func (s *Sensor) Clone() *Sensor {
	if s == nil {
		return nil
	}
	c := *s
	c.Payload = make(map[string]float64, len(s.Payload))
	for k, v := range s.Payload {
		c.Payload[k] = v
	}
	return &c
}
