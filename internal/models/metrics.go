package models

// TimelineBucket - количество инцидентов в часовом интервале обнаружения
type TimelineBucket struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

// Metrics - агрегированные показатели для карточек и графиков дашборда.
// Средние значения округлены до одного знака; nil означает отсутствие выборки.
type Metrics struct {
	TotalIncidents       int              `json:"total_incidents"`
	StatusBreakdown      map[string]int   `json:"status_breakdown"`
	CategoryBreakdown    map[string]int   `json:"category_breakdown"`
	SeverityBreakdown    map[string]int   `json:"severity_breakdown"`
	AvgAckMinutes        *float64         `json:"avg_ack_minutes"`
	AvgResolutionMinutes *float64         `json:"avg_resolution_minutes"`
	IncidentsTimeline    []TimelineBucket `json:"incidents_timeline"`
}
