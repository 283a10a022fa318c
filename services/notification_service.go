package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/projectteamlcet-droid/civic-eye/config"
	"github.com/projectteamlcet-droid/civic-eye/models"
)

// AlertNotification MQTT告警消息体
type AlertNotification struct {
	MessageID string          `json:"message_id"`
	AlertID   uint            `json:"alert_id"`
	AssetID   uint            `json:"asset_id"`
	AssetName string          `json:"asset_name"`
	Zone      string          `json:"zone"`
	AlertType string          `json:"alert_type"`
	Severity  models.Severity `json:"severity"`
	RiskScore int             `json:"risk_score"`
	IssuedAt  time.Time       `json:"issued_at"`
}

// InterfaceNotificationService defines the alert notification interface
type InterfaceNotificationService interface {
	Connect() error
	PublishAlert(alert *models.Alert) error
	Disconnect()
}

// NotificationService 通过MQTT向运维端推送新触发的告警
type NotificationService struct {
	Config       *config.Config
	Client       mqtt.Client
	PublishMutex sync.Mutex // 用于保护MQTT消息发布
}

// NewNotificationService 创建一个新的告警推送服务
func NewNotificationService(cfg *config.Config) InterfaceNotificationService {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.MQTTBrokerURL)
	opts.SetClientID(fmt.Sprintf("%s-%s", cfg.MQTTClientID, uuid.New().String()[:8]))
	if cfg.MQTTUsername != "" {
		opts.SetUsername(cfg.MQTTUsername)
		opts.SetPassword(cfg.MQTTPassword)
	}
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(5 * time.Second)
	opts.SetConnectionLostHandler(func(client mqtt.Client, err error) {
		log.Printf("[MQTT] 连接丢失: %v", err)
	})

	return &NotificationService{
		Config: cfg,
		Client: mqtt.NewClient(opts),
	}
}

// 1 Connect 连接MQTT服务器，带重试和指数退避
func (s *NotificationService) Connect() error {
	log.Printf("[MQTT] 正在连接到 %s...", s.Config.MQTTBrokerURL)

	if s.Client.IsConnected() {
		return nil
	}

	maxRetries := 3
	var err error

	for i := 0; i < maxRetries; i++ {
		token := s.Client.Connect()
		if token.WaitTimeout(5*time.Second) && token.Error() == nil {
			log.Printf("[MQTT] 成功连接到 %s", s.Config.MQTTBrokerURL)
			return nil
		}

		err = token.Error()
		backoffTime := time.Duration(1<<uint(i)) * time.Second // 指数退避: 1s, 2s, 4s
		log.Printf("[MQTT] 连接尝试 %d/%d 失败: %v, 将在 %v 后重试", i+1, maxRetries, err, backoffTime)
		time.Sleep(backoffTime)
	}

	return fmt.Errorf("[MQTT] 连接失败，已尝试 %d 次: %v", maxRetries, err)
}

// 2 PublishAlert 将告警推送到 civic-eye/alerts/{zone} 主题
func (s *NotificationService) PublishAlert(alert *models.Alert) error {
	s.PublishMutex.Lock()
	defer s.PublishMutex.Unlock()

	if !s.Client.IsConnected() {
		if err := s.Connect(); err != nil {
			return err
		}
	}

	notification := AlertNotification{
		MessageID: uuid.New().String(),
		AlertID:   alert.ID,
		AssetID:   alert.AssetID,
		AssetName: alert.AssetName,
		Zone:      alert.Zone,
		AlertType: alert.AlertType,
		Severity:  alert.Severity,
		RiskScore: alert.RiskScore,
		IssuedAt:  time.Now(),
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	topic := fmt.Sprintf("civic-eye/alerts/%s", alert.Zone)
	token := s.Client.Publish(topic, 1, false, payload)
	if token.WaitTimeout(3*time.Second) && token.Error() != nil {
		return token.Error()
	}

	return nil
}

// 3 Disconnect 断开MQTT连接
func (s *NotificationService) Disconnect() {
	if s.Client.IsConnected() {
		s.Client.Disconnect(250)
	}
}
