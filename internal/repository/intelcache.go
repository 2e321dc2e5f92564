package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/tourops/security_intel_system/internal/models"
	"github.com/tourops/security_intel_system/internal/service"
)

type IntelCacheRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIntelCacheRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IntelCache {
	return &IntelCacheRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Get возвращает свежую сводку из кеша или nil при промахе/истечении TTL.
// Истекшая строка физически остается в таблице - это намеренно,
// stale-чтение при полном отказе провайдеров опирается на нее.
func (r *IntelCacheRepository) Get(ctx context.Context, key string) (*models.IntelReport, error) {
	// Быстрый путь: Redis хранит только заведомо свежие записи
	if report, err := r.getFromRedis(ctx, key); err == nil && report != nil {
		return report, nil
	}

	query := `
		SELECT payload
		FROM intel_cache
		WHERE cache_key = $1 AND expires_at > NOW();
	`
	var payload []byte
	err := r.db.QueryRow(ctx, query, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached intel: %w", err)
	}

	report := &models.IntelReport{}
	if err := json.Unmarshal(payload, report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached intel: %w", err)
	}
	return report, nil
}

// GetStale возвращает сводку независимо от TTL. Используется только когда
// все живые источники недоступны.
func (r *IntelCacheRepository) GetStale(ctx context.Context, key string) (*models.IntelReport, error) {
	query := `
		SELECT payload
		FROM intel_cache
		WHERE cache_key = $1;
	`
	var payload []byte
	err := r.db.QueryRow(ctx, query, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get stale cached intel: %w", err)
	}

	report := &models.IntelReport{}
	if err := json.Unmarshal(payload, report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stale cached intel: %w", err)
	}
	return report, nil
}

// Set сохраняет сводку под ключом с TTL. Last-write-wins: параллельная запись
// того же ключа безопасна и самовосстанавливается на следующем цикле TTL.
func (r *IntelCacheRepository) Set(ctx context.Context, key string, report *models.IntelReport, ttl time.Duration) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal intel for cache: %w", err)
	}

	query := `
		INSERT INTO intel_cache (cache_key, payload, fetched_at, expires_at)
		VALUES ($1, $2, NOW(), NOW() + $3)
		ON CONFLICT (cache_key) DO UPDATE SET
			payload = EXCLUDED.payload,
			fetched_at = EXCLUDED.fetched_at,
			expires_at = EXCLUDED.expires_at;
	`
	if _, err := r.db.Exec(ctx, query, key, payload, ttl); err != nil {
		return fmt.Errorf("failed to set cached intel: %w", err)
	}

	// Redis - best-effort зеркало, его сбой не валит запись:
	// истина живет в Postgres, зеркало догонится на следующей записи
	_ = r.redisClient.Set(ctx, redisKey(key), payload, ttl).Err()
	return nil
}

// SaveEvents идемпотентно сохраняет события сводки по контентному хешу
func (r *IntelCacheRepository) SaveEvents(ctx context.Context, city, country string, events []models.Event) error {
	query := `
		INSERT INTO intel_events (event_hash, city, country, category, event_date, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (event_hash) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = NOW();
	`
	for _, event := range events {
		if event.EventHash == "" {
			continue
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal event for storage: %w", err)
		}
		eventDate := event.Day()
		if eventDate == "" {
			eventDate = time.Now().UTC().Format("2006-01-02")
		}
		if _, err := r.db.Exec(ctx, query,
			event.EventHash, city, country, string(event.Category), eventDate, payload,
		); err != nil {
			return fmt.Errorf("failed to upsert event %s: %w", event.EventHash, err)
		}
	}
	return nil
}

// Stats возвращает статистику кеша для эксплуатационной ручки
func (r *IntelCacheRepository) Stats(ctx context.Context) (*models.CacheStats, error) {
	stats := &models.CacheStats{}
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE expires_at <= NOW()),
			COUNT(*) FILTER (WHERE expires_at > NOW())
		FROM intel_cache;
	`
	err := r.db.QueryRow(ctx, query).Scan(&stats.TotalEntries, &stats.ExpiredEntries, &stats.ValidEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to get cache stats: %w", err)
	}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM intel_events;`).Scan(&stats.EventRows); err != nil {
		return nil, fmt.Errorf("failed to count event rows: %w", err)
	}
	return stats, nil
}

// PurgeExpired удаляет истекшие строки кеша. Вызывается только явно -
// фонового sweeper нет, истечение проверяется при чтении.
func (r *IntelCacheRepository) PurgeExpired(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM intel_cache WHERE expires_at <= NOW();`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired cache entries: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

func (r *IntelCacheRepository) getFromRedis(ctx context.Context, key string) (*models.IntelReport, error) {
	val, err := r.redisClient.Get(ctx, redisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get intel from redis: %w", err)
	}

	report := &models.IntelReport{}
	if err := json.Unmarshal(val, report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal intel from redis: %w", err)
	}
	return report, nil
}

func redisKey(key string) string {
	return "intel:" + key
}
