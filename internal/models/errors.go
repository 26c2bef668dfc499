package models

import (
	"errors"
	"fmt"
)

var (
	// ErrIncidentNotFound возвращается при обращении к несуществующему инциденту
	ErrIncidentNotFound = errors.New("incident not found")
	// ErrSensorNotFound возвращается при записи показаний неизвестного сенсора
	ErrSensorNotFound = errors.New("sensor not found")
)

// InvalidStatusError сигнализирует о статусе вне перечисления Statuses
type InvalidStatusError struct {
	Status string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("unsupported incident status: %q", e.Status)
}
