package v1

import "github.com/shenikar/incident_response_system/internal/models"

// DTOToIncidentDraft преобразует DTO создания в черновик доменной модели
func DTOToIncidentDraft(dto CreateIncidentRequest) models.IncidentDraft {
	return models.IncidentDraft{
		Title:       dto.Title,
		Category:    dto.Category,
		Severity:    dto.Severity,
		Location:    dto.Location,
		Description: dto.Description,
		Impact:      dto.Impact,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	if model == nil {
		return nil
	}
	return &IncidentResponse{
		ID:             model.ID,
		Title:          model.Title,
		Category:       model.Category,
		Severity:       model.Severity,
		Status:         model.Status,
		DetectedAt:     model.DetectedAt,
		AcknowledgedAt: model.AcknowledgedAt,
		ResolvedAt:     model.ResolvedAt,
		Location:       model.Location,
		Description:    model.Description,
		Impact:         model.Impact,
		RootCause:      model.RootCause,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, incident := range incidents {
		responses[i] = ModelToIncidentResponse(incident)
	}
	return responses
}

// ReadingToSensorResponse преобразует сенсор с классификацией в DTO
func ReadingToSensorResponse(reading models.SensorReading) *SensorResponse {
	return &SensorResponse{
		ID:         reading.Sensor.ID,
		Type:       reading.Sensor.Type,
		Location:   reading.Sensor.Location,
		LastUpdate: reading.Sensor.LastUpdate,
		Status:     reading.Sensor.Status,
		Payload:    reading.Sensor.Payload,
		Prediction: reading.Prediction,
	}
}

// ReadingsToSensorResponses преобразует слайс показаний в слайс DTO
func ReadingsToSensorResponses(readings []models.SensorReading) []*SensorResponse {
	responses := make([]*SensorResponse, len(readings))
	for i, reading := range readings {
		responses[i] = ReadingToSensorResponse(reading)
	}
	return responses
}
