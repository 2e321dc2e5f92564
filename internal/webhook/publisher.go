package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	alertQueueKey = "risk_alerts"
)

// RiskAlert - уведомление о высоком уровне риска по локации.
// Ставится в очередь после скоринга и доставляется воркером асинхронно,
// чтобы не задерживать ответ на сам запрос сводки.
type RiskAlert struct {
	DeliveryID string    `json:"delivery_id"`
	City       string    `json:"city"`
	Country    string    `json:"country"`
	RiskLevel  string    `json:"risk_level"`
	RiskScore  int       `json:"risk_score"`
	Drivers    []string  `json:"drivers,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewRiskAlert создает алерт с уникальным идентификатором доставки
func NewRiskAlert(city, country, riskLevel string, riskScore int, drivers []string) RiskAlert {
	return RiskAlert{
		DeliveryID: uuid.New().String(),
		City:       city,
		Country:    country,
		RiskLevel:  riskLevel,
		RiskScore:  riskScore,
		Drivers:    drivers,
		Timestamp:  time.Now().UTC(),
	}
}

// AlertPublisher - интерфейс для публикации алертов о риске
type AlertPublisher interface {
	Publish(ctx context.Context, alert RiskAlert) error
}

// RedisAlertPublisher - реализация AlertPublisher, использующая Redis
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

// NewRedisAlertPublisher создает новый RedisAlertPublisher
func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Publish публикует алерт в очередь Redis
func (p *RedisAlertPublisher) Publish(ctx context.Context, alert RiskAlert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal risk alert: %w", err)
	}

	// LPUSH в левую часть списка, воркер снимает с правой
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish risk alert to Redis: %w", err)
	}
	return nil
}
