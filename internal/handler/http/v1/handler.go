package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/incident_response_system/internal/config"
	"github.com/shenikar/incident_response_system/internal/models"
	"github.com/shenikar/incident_response_system/internal/security"
	"github.com/shenikar/incident_response_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	dashboardService service.DashboardService
	verifier         *security.CredentialVerifier
	sessions         *sessionStore
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(dashboardService service.DashboardService, verifier *security.CredentialVerifier, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		dashboardService: dashboardService,
		verifier:         verifier,
		sessions:         newSessionStore(cfg.SessionTTL),
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary Operator login
// @Description Exchange operator credentials for a session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Operator credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.verifier.Verify(input.Username, input.Password) {
		log.WithField("username", input.Username).Warn("Invalid credentials provided")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, expiresAt := h.sessions.create(input.Username)
	log.WithField("username", input.Username).Info("Operator logged in")
	c.JSON(http.StatusOK, LoginResponse{Token: token, ExpiresAt: expiresAt})
}

// @Summary Operator logout
// @Description Revoke the current session token.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	if token := bearerToken(c); token != "" {
		h.sessions.revoke(token)
	}
	c.Status(http.StatusNoContent)
}

// @Summary Register a new incident
// @Description Register an incident manually. Missing fields fall back to documented defaults.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param incident body CreateIncidentRequest false "Incident fields"
// @Success 201 {object} IncidentEnvelope
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	// Пустое тело допустимо: все поля имеют значения по умолчанию
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.dashboardService.CreateIncident(c.Request.Context(), DTOToIncidentDraft(input))
	if err != nil {
		log.WithError(err).Error("Failed to create incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, IncidentEnvelope{Incident: ModelToIncidentResponse(incident)})
}

// @Summary Get a list of incidents
// @Description Get all incidents sorted by detection time, most recent first.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Success 200 {object} IncidentListResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.dashboardService.ListIncidents(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, IncidentListResponse{Incidents: ModelsToIncidentResponses(incidents)})
}

// @Summary Get incident by ID
// @Description Get a single incident by its integer ID.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 200 {object} IncidentEnvelope
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.dashboardService.GetIncident(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return
	}
	c.JSON(http.StatusOK, IncidentEnvelope{Incident: ModelToIncidentResponse(incident)})
}

// @Summary Update incident status
// @Description Advance an incident through the response workflow (open, acknowledged, resolved).
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Param status body UpdateStatusRequest true "Target status"
// @Success 200 {object} IncidentEnvelope
// @Failure 400 {object} map[string]string "Invalid incident ID, missing or unsupported status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [patch]
func (h *Handler) updateIncidentStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "updateIncidentStatus").WithField("id", id)

	var input UpdateStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing status property"})
		return
	}

	incident, err := h.dashboardService.UpdateIncidentStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		var invalidStatus *models.InvalidStatusError
		switch {
		case errors.As(err, &invalidStatus):
			log.WithError(err).Warn("Unsupported status value")
			c.JSON(http.StatusBadRequest, gin.H{"error": invalidStatus.Error()})
		case errors.Is(err, models.ErrIncidentNotFound):
			log.WithError(err).Warn("Incident not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		default:
			log.WithError(err).Error("Failed to update incident status in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, IncidentEnvelope{Incident: ModelToIncidentResponse(incident)})
}

// @Summary List sensors
// @Description Apply one telemetry tick, then return all sensors with risk classification.
// @Tags Sensors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SensorListResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sensors [get]
func (h *Handler) listSensors(c *gin.Context) {
	log := h.logger.WithField("method", "listSensors")

	readings, err := h.dashboardService.ListSensors(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list sensors from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, SensorListResponse{Sensors: ReadingsToSensorResponses(readings)})
}

// @Summary Dashboard payload
// @Description Combined payload: incidents, aggregated metrics and classified sensors.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard [get]
func (h *Handler) dashboard(c *gin.Context) {
	log := h.logger.WithField("method", "dashboard")

	snapshot, err := h.dashboardService.DashboardSnapshot(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to build dashboard snapshot")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Incidents: ModelsToIncidentResponses(snapshot.Incidents),
		Metrics:   snapshot.Metrics,
		Sensors:   ReadingsToSensorResponses(snapshot.Sensors),
	})
}

// @Summary Run a simulation cycle
// @Description Tick telemetry, classify every sensor and register at most one recommended incident.
// @Tags Simulation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SimulateResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /simulate [post]
func (h *Handler) simulate(c *gin.Context) {
	log := h.logger.WithField("method", "simulate")

	result, err := h.dashboardService.RunSimulationCycle(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to run simulation cycle")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, SimulateResponse{
		CreatedIncident: ModelToIncidentResponse(result.CreatedIncident),
		SensorScores:    result.SensorScores,
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
