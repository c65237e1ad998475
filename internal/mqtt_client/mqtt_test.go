package mqtt_client

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"control-system/configs"
	"control-system/internal/models"
)

type fakeToken struct {
	done bool
	err  error
}

func (t *fakeToken) Wait() bool                     { return t.done }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return t.done }
func (t *fakeToken) Done() <-chan struct{}          { ch := make(chan struct{}); close(ch); return ch }
func (t *fakeToken) Error() error                   { return t.err }

type published struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

// fakeClient реализует только Publish
type fakeClient struct {
	mqtt.Client
	token *fakeToken
	sent  []published
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.sent = append(c.sent, published{topic, qos, retained, payload.([]byte)})
	return c.token
}

func TestPublishEvent(t *testing.T) {
	client := &fakeClient{token: &fakeToken{done: true}}
	p := newPublisher(client, configs.MQTTConfig{QoS: 1, TopicPrefix: "control/compute"})

	stable := true
	sub := &models.Submission{
		ID:        uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		Function:  "(s+3)/(s^2+4s+5)",
		Status:    models.StatusOK,
		IsStable:  &stable,
		Plots:     []string{"bode"},
		Duration:  120,
		CreatedAt: time.UnixMilli(1700000000000),
	}
	if err := p.Publish(sub); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if len(client.sent) != 1 {
		t.Fatalf("sent = %d messages, want 1", len(client.sent))
	}
	msg := client.sent[0]
	if msg.topic != "control/compute/ok" || msg.qos != 1 || msg.retained {
		t.Fatalf("message = %+v", msg)
	}
	var event ResultEvent
	if err := json.Unmarshal(msg.payload, &event); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if event.ID != sub.ID.String() || event.Function != sub.Function || event.Timestamp != 1700000000000 {
		t.Fatalf("event = %+v", event)
	}
	if event.IsStable == nil || !*event.IsStable {
		t.Fatalf("is_stable lost: %+v", event)
	}
}

func TestPublishTimeoutAndError(t *testing.T) {
	p := newPublisher(&fakeClient{token: &fakeToken{done: false}}, configs.MQTTConfig{TopicPrefix: "x"})
	if err := p.Publish(&models.Submission{Status: models.StatusFailed}); err == nil {
		t.Fatalf("expected timeout error")
	}

	boom := errors.New("not authorized")
	p = newPublisher(&fakeClient{token: &fakeToken{done: true, err: boom}}, configs.MQTTConfig{TopicPrefix: "x"})
	if err := p.Publish(&models.Submission{Status: models.StatusFailed}); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestTopic(t *testing.T) {
	p := newPublisher(&fakeClient{}, configs.MQTTConfig{TopicPrefix: "control/compute"})
	if got := p.Topic(models.StatusInvalid); got != "control/compute/invalid" {
		t.Fatalf("Topic = %q", got)
	}
}
