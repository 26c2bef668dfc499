package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Счетчики операционной телеметрии сервиса
var (
	// IncidentsCreated - созданные инциденты по источнику (manual/simulation)
	IncidentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "incidents_created_total",
		Help: "Number of incidents registered in the store, by source.",
	}, []string{"source"})

	// SimulationCycles - выполненные циклы симуляции
	SimulationCycles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "simulation_cycles_total",
		Help: "Number of simulation cycles executed.",
	})

	// SensorTicks - тики телеметрии по всем сенсорам
	SensorTicks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sensor_ticks_total",
		Help: "Number of telemetry ticks applied to the sensor set.",
	})
)
