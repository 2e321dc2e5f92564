package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tourops/security_intel_system/internal/config"
)

func newTestWorker(cfg *config.Config) *AlertWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewAlertWorker(nil, logger, cfg)
}

func testAlertPayload(t *testing.T) (RiskAlert, string) {
	t.Helper()
	alert := NewRiskAlert("Paris", "France", "High", 75, []string{"12 violent incident(s) recorded"})
	raw, err := json.Marshal(alert)
	require.NoError(t, err)
	return alert, string(raw)
}

func TestNewRiskAlert_FillsDeliveryMetadata(t *testing.T) {
	alert := NewRiskAlert("Paris", "France", "High", 75, nil)

	assert.NotEmpty(t, alert.DeliveryID)
	assert.Equal(t, "Paris", alert.City)
	assert.Equal(t, "High", alert.RiskLevel)
	assert.Equal(t, 75, alert.RiskScore)
	assert.WithinDuration(t, time.Now().UTC(), alert.Timestamp, time.Minute)

	// Каждый алерт получает собственный идентификатор доставки
	other := NewRiskAlert("Paris", "France", "High", 75, nil)
	assert.NotEqual(t, alert.DeliveryID, other.DeliveryID)
}

func TestDeliverAlert_Success(t *testing.T) {
	var gotBody []byte
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		buf := new(bytes.Buffer)
		buf.ReadFrom(r.Body)
		gotBody = buf.Bytes()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    2 * time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	alert, raw := testAlertPayload(t)
	worker.deliverAlert(context.Background(), alert, raw)

	assert.Equal(t, "application/json", gotContentType)

	var delivered RiskAlert
	require.NoError(t, json.Unmarshal(gotBody, &delivered))
	assert.Equal(t, alert.DeliveryID, delivered.DeliveryID)
	assert.Equal(t, "High", delivered.RiskLevel)
}

func TestDeliverAlert_SignsPayloadWhenSecretSet(t *testing.T) {
	var gotSignature string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     "top-secret",
		WebhookTimeout:    2 * time.Second,
		WebhookMaxRetries: 1,
		WebhookBaseDelay:  time.Millisecond,
	})

	alert, raw := testAlertPayload(t)
	worker.deliverAlert(context.Background(), alert, raw)

	assert.Equal(t, generateHMACSHA256(raw, "top-secret"), gotSignature)
}

func TestDeliverAlert_NoSignatureWithoutSecret(t *testing.T) {
	var hasSignature bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasSignature = r.Header["X-Webhook-Signature"]
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    2 * time.Second,
		WebhookMaxRetries: 1,
		WebhookBaseDelay:  time.Millisecond,
	})

	alert, raw := testAlertPayload(t)
	worker.deliverAlert(context.Background(), alert, raw)

	assert.False(t, hasSignature)
}

func TestDeliverAlert_RetriesUntilSuccess(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    2 * time.Second,
		WebhookMaxRetries: 5,
		WebhookBaseDelay:  time.Millisecond,
	})

	alert, raw := testAlertPayload(t)
	worker.deliverAlert(context.Background(), alert, raw)

	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestDeliverAlert_GivesUpAfterMaxRetries(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    2 * time.Second,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	})

	alert, raw := testAlertPayload(t)
	worker.deliverAlert(context.Background(), alert, raw)

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestDeliverAlert_SkipsWhenWebhookURLEmpty(t *testing.T) {
	worker := newTestWorker(&config.Config{
		WebhookTimeout:    2 * time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	alert, raw := testAlertPayload(t)
	// Не должно паниковать и не должно делать сетевых вызовов
	worker.deliverAlert(context.Background(), alert, raw)
}

func TestGenerateHMACSHA256(t *testing.T) {
	sig := generateHMACSHA256("payload", "secret")
	assert.Len(t, sig, 64)
	assert.Equal(t, sig, generateHMACSHA256("payload", "secret"))
	assert.NotEqual(t, sig, generateHMACSHA256("payload", "other-secret"))
}
