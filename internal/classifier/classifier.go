package classifier

import (
	"fmt"
	"math"

	"github.com/shenikar/incident_response_system/internal/models"
)

// ActionThreshold - минимальная оценка, при которой рекомендация
// превращается в реальный инцидент
const ActionThreshold = 0.5

// Опорные точки нормализации компонент риска. Подобраны под пороги
// статусов сенсоров: свободный поток ~30 км/ч, насыщение ~1200 машин,
// норма хлора ~1.0 ppm, нейтральная середина допустимого pH 7.5.
const (
	freeFlowSpeedKmh   = 30.0
	saturationVehicles = 1200.0
	chlorineBaseline   = 1.0
	phMidpoint         = 7.5
)

// Classify возвращает оценку риска в [0,1] и предлагаемую серьезность.
// Чистая функция текущего состояния сенсора: более аномальные значения
// payload (по порогам симулятора) дают строго не меньшую оценку.
func Classify(sensor *models.Sensor) models.Classification {
	var score float64
	switch sensor.Type {
	case models.CategoryTraffic:
		congestion := clamp01((freeFlowSpeedKmh - sensor.Payload[models.MetricAvgSpeedKmh]) / freeFlowSpeedKmh)
		volume := clamp01(sensor.Payload[models.MetricVehicleCount] / saturationVehicles)
		score = 0.65*congestion + 0.35*volume
	case models.CategoryUtilities:
		chlorineRisk := clamp01(sensor.Payload[models.MetricChlorinePpm] - chlorineBaseline)
		phRisk := clamp01(math.Abs(sensor.Payload[models.MetricPh] - phMidpoint))
		score = 0.7*chlorineRisk + 0.3*phRisk
	case models.CategoryPublicSafety:
		score = clamp01(sensor.Payload[models.MetricAnomalyScore])
	}
	score = math.Round(score*100) / 100
	return models.Classification{
		Score:             score,
		SuggestedSeverity: severityForScore(score),
	}
}

// severityForScore монотонно отображает диапазоны оценки на уровни серьезности
func severityForScore(score float64) string {
	switch {
	case score >= 0.85:
		return models.SeverityCritical
	case score >= 0.6:
		return models.SeverityHigh
	case score >= 0.35:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

// RecommendIncident формирует черновик инцидента по сенсору, чья
// классификация преодолела порог действия. Категория берется из типа
// сенсора, серьезность - из классификации, описание цитирует показания.
func RecommendIncident(sensor *models.Sensor, cls models.Classification) models.IncidentDraft {
	return models.IncidentDraft{
		Title:       fmt.Sprintf("%s anomaly detected at %s", sensor.Type, sensor.Location),
		Category:    sensor.Type,
		Severity:    cls.SuggestedSeverity,
		Location:    sensor.Location,
		Description: describeReading(sensor),
		Impact:      "Impact assessment pending operator review.",
	}
}

// describeReading возвращает человекочитаемую сводку текущего payload
func describeReading(sensor *models.Sensor) string {
	switch sensor.Type {
	case models.CategoryTraffic:
		return fmt.Sprintf("Sensor %s reports %d vehicles at average speed %.1f km/h.",
			sensor.ID,
			int(sensor.Payload[models.MetricVehicleCount]),
			sensor.Payload[models.MetricAvgSpeedKmh])
	case models.CategoryUtilities:
		return fmt.Sprintf("Sensor %s reports chlorine at %.2f ppm with pH %.2f.",
			sensor.ID,
			sensor.Payload[models.MetricChlorinePpm],
			sensor.Payload[models.MetricPh])
	case models.CategoryPublicSafety:
		return fmt.Sprintf("Sensor %s reports anomaly score %.2f.",
			sensor.ID,
			sensor.Payload[models.MetricAnomalyScore])
	default:
		return fmt.Sprintf("Sensor %s reports an abnormal reading.", sensor.ID)
	}
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
