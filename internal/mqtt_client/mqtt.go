package mqtt_client

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"control-system/configs"
	"control-system/internal/models"
)

const publishTimeout = 2 * time.Second

// Publisher публикует итоги отправок в MQTT
type Publisher struct {
	client      mqtt.Client
	qos         byte
	topicPrefix string
}

// ResultEvent сообщение об итоге одной отправки
type ResultEvent struct {
	ID         string   `json:"id"`
	Function   string   `json:"function"`
	Latex      string   `json:"latex,omitempty"`
	Status     string   `json:"status"`
	IsStable   *bool    `json:"is_stable,omitempty"`
	Plots      []string `json:"plots,omitempty"`
	DurationMs int64    `json:"duration_ms"`
	Timestamp  int64    `json:"timestamp"`
}

// NewPublisher подключается к брокеру
func NewPublisher(cfg configs.MQTTConfig) (*Publisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)

	if cfg.Username != "" && cfg.Password != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
		slog.Info("MQTT authentication enabled", "user", cfg.Username)
	}

	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.OnConnect = func(c mqtt.Client) {
		slog.Info("MQTT connected", "broker", cfg.Broker)
	}
	opts.OnConnectionLost = func(c mqtt.Client, err error) {
		slog.Warn("MQTT connection lost", "error", err)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("MQTT подключение не удалось: %w", token.Error())
	}

	return newPublisher(client, cfg), nil
}

func newPublisher(client mqtt.Client, cfg configs.MQTTConfig) *Publisher {
	return &Publisher{
		client:      client,
		qos:         byte(cfg.QoS),
		topicPrefix: cfg.TopicPrefix,
	}
}

// Topic <prefix>/<status>
func (p *Publisher) Topic(status string) string {
	return p.topicPrefix + "/" + status
}

// Publish отправляет итог отправки
func (p *Publisher) Publish(submission *models.Submission) error {
	event := ResultEvent{
		ID:         submission.ID.String(),
		Function:   submission.Function,
		Latex:      submission.Latex,
		Status:     submission.Status,
		IsStable:   submission.IsStable,
		Plots:      submission.Plots,
		DurationMs: submission.Duration,
		Timestamp:  submission.CreatedAt.UnixMilli(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("ошибка сериализации JSON: %w", err)
	}

	token := p.client.Publish(p.Topic(submission.Status), p.qos, false, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("таймаут отправки MQTT")
	}
	return token.Error()
}

// Close отключается от брокера
func (p *Publisher) Close() {
	p.client.Disconnect(250)
}
