package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/incident_response_system/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	webhookQueueKey = "incident_webhook_events"

	// Источники создания инцидента
	SourceManual     = "manual"
	SourceSimulation = "simulation"
)

// IncidentEvent - полезная нагрузка вебхука о созданном инциденте
type IncidentEvent struct {
	Event     string           `json:"event"`
	Source    string           `json:"source"`
	Timestamp time.Time        `json:"timestamp"`
	Incident  *models.Incident `json:"incident"`
}

// Publisher - интерфейс публикации событий инцидентов
type Publisher interface {
	Publish(ctx context.Context, event IncidentEvent) error
}

// RedisPublisher кладет события в очередь Redis, откуда их забирает воркер
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event IncidentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal incident event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish incident event to Redis: %w", err)
	}
	return nil
}

// NoopPublisher используется, когда Redis не сконфигурирован:
// события молча отбрасываются, демо работает автономно
type NoopPublisher struct{}

// NewNoopPublisher создает заглушку публикации
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

// Publish ничего не делает
func (p *NoopPublisher) Publish(ctx context.Context, event IncidentEvent) error {
	return nil
}
