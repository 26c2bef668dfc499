package repository

import (
	"time"

	"github.com/shenikar/incident_response_system/internal/models"
)

// seedIncidents возвращает стартовый набор инцидентов демо-сценария.
// Времена задаются смещениями от текущего момента, чтобы дашборд
// сразу показывал осмысленную историю.
func seedIncidents(now time.Time) []*models.Incident {
	ack999 := now.Add(-2 * time.Hour)
	ack998 := now.Add(-5*time.Hour - 45*time.Minute)
	res998 := now.Add(-5*time.Hour - 10*time.Minute)
	cause999 := "Credential stuffing campaign"
	cause998 := "Battery replacement required"

	return []*models.Incident{
		{
			ID:          1000,
			Title:       "Traffic congestion at Central Station",
			Category:    models.CategoryTraffic,
			Severity:    models.SeverityHigh,
			Status:      models.StatusOpen,
			DetectedAt:  now.Add(-45 * time.Minute),
			Location:    "Central Station",
			Description: "Multiple sensors detect congestion exceeding 85% capacity.",
			Impact:      "Delays to public transport lines 2, 3, and 5.",
		},
		{
			ID:             999,
			Title:          "Unauthorized login attempts detected",
			Category:       models.CategoryCybersecurity,
			Severity:       models.SeverityCritical,
			Status:         models.StatusAcknowledged,
			DetectedAt:     now.Add(-2*time.Hour - 15*time.Minute),
			AcknowledgedAt: &ack999,
			Location:       "Datacenter West",
			Description:    "Spike of failed logins against admin APIs.",
			Impact:         "Potential service disruption for citizen portal.",
			RootCause:      &cause999,
		},
		{
			ID:             998,
			Title:          "IoT air quality sensor offline",
			Category:       models.CategoryEnvironmental,
			Severity:       models.SeverityMedium,
			Status:         models.StatusResolved,
			DetectedAt:     now.Add(-6 * time.Hour),
			AcknowledgedAt: &ack998,
			ResolvedAt:     &res998,
			Location:       "Canal District",
			Description:    "No data received for over 10 minutes.",
			Impact:         "Air quality predictions may be delayed.",
			RootCause:      &cause998,
		},
	}
}

// seedSensors возвращает фиксированный набор сенсоров телеметрии
func seedSensors(now time.Time) []*models.Sensor {
	return []*models.Sensor{
		{
			ID:         "traffic-001",
			Type:       models.CategoryTraffic,
			Location:   "Central Station",
			LastUpdate: now.Add(-2 * time.Minute),
			Status:     models.SensorWarning,
			Payload: map[string]float64{
				models.MetricVehicleCount: 982,
				models.MetricAvgSpeedKmh:  8,
			},
		},
		{
			ID:         "iot-443",
			Type:       models.CategoryUtilities,
			Location:   "Water Treatment Plant",
			LastUpdate: now.Add(-6 * time.Minute),
			Status:     models.SensorHealthy,
			Payload: map[string]float64{
				models.MetricChlorinePpm: 1.1,
				models.MetricPh:          7.2,
			},
		},
		{
			ID:         "cctv-901",
			Type:       models.CategoryPublicSafety,
			Location:   "Museum Quarter",
			LastUpdate: now.Add(-1 * time.Minute),
			Status:     models.SensorAlert,
			Payload: map[string]float64{
				models.MetricAnomalyScore: 0.81,
			},
		},
	}
}
