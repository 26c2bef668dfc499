package models

// Classification - эвристическая оценка риска по текущему payload сенсора
type Classification struct {
	Score             float64 `json:"score"`
	SuggestedSeverity string  `json:"suggested_severity"`
}

// SensorReading - сенсор вместе с его классификацией для выдачи наружу
type SensorReading struct {
	Sensor     *Sensor        `json:"sensor"`
	Prediction Classification `json:"prediction"`
}

// SensorScore - элемент ранжированного списка оценок за цикл симуляции
type SensorScore struct {
	SensorID          string  `json:"sensor_id"`
	Score             float64 `json:"score"`
	SuggestedSeverity string  `json:"suggested_severity"`
}

// SimulationResult - итог одного цикла симуляции.
// CreatedIncident равен nil, если ни один сенсор не преодолел порог.
type SimulationResult struct {
	CreatedIncident *Incident     `json:"created_incident"`
	SensorScores    []SensorScore `json:"sensor_scores"`
}

// DashboardSnapshot - комбинированная выдача для дашборда
type DashboardSnapshot struct {
	Incidents []*Incident     `json:"incidents"`
	Metrics   *Metrics        `json:"metrics"`
	Sensors   []SensorReading `json:"sensors"`
}
