package vehicle

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/kilianp07/evroute/core/model"
	"github.com/kilianp07/evroute/infra/logger"
)

// Config defines the connection parameters for the telemetry subscriber.
type Config struct {
	Broker         string `json:"broker"`
	ClientID       string `json:"client_id"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	TelemetryTopic string `json:"telemetry_topic"`
	QoS            byte   `json:"qos"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "evroute"
	}
	if c.TelemetryTopic == "" {
		c.TelemetryTopic = "evroute/vehicle/telemetry"
	}
}

// Enabled reports whether a broker is configured. The service runs without
// telemetry when it is not.
func (c Config) Enabled() bool { return c.Broker != "" }

// telemetryMessage is the JSON payload published by the vehicle gateway.
type telemetryMessage struct {
	SoC                float64 `json:"soc"`
	BatteryKWh         float64 `json:"battery_capacity_kwh"`
	ConsumptionKWhKm   float64 `json:"base_consumption_kwh_per_km"`
	ElevationKWhPer10m float64 `json:"elevation_factor_kwh_per_10m"`
}

// Subscriber feeds a StatusStore from MQTT telemetry messages.
type Subscriber struct {
	cli   paho.Client
	topic string
	qos   byte
	store *StatusStore
	log   logger.Logger
}

// NewSubscriber connects to the broker and subscribes to the telemetry topic.
func NewSubscriber(cfg Config, store *StatusStore) (*Subscriber, error) {
	cfg.SetDefaults()
	log := logger.New("vehicle-telemetry")
	sub := &Subscriber{topic: cfg.TelemetryTopic, qos: cfg.QoS, store: store, log: log}

	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second)
	opts.OnConnect = func(c paho.Client) {
		if tok := c.Subscribe(sub.topic, sub.qos, sub.handle); tok.Wait() && tok.Error() != nil {
			log.Errorf("subscribe %s: %v", sub.topic, tok.Error())
		}
	}

	cli := paho.NewClient(opts)
	if tok := cli.Connect(); tok.Wait() && tok.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", tok.Error())
	}
	sub.cli = cli
	return sub, nil
}

func (s *Subscriber) handle(_ paho.Client, msg paho.Message) {
	var m telemetryMessage
	if err := json.Unmarshal(msg.Payload(), &m); err != nil {
		s.log.Warnf("telemetry decode: %v", err)
		return
	}
	profile := model.VehicleEnergyProfile{
		BatteryKWh:         m.BatteryKWh,
		ConsumptionKWhKm:   m.ConsumptionKWhKm,
		ElevationKWhPer10m: m.ElevationKWhPer10m,
	}
	if err := profile.Validate(); err != nil {
		s.log.Warnf("telemetry profile: %v", err)
		return
	}
	if m.SoC < 0 || m.SoC > 100 {
		s.log.Warnf("telemetry soc out of range: %.1f", m.SoC)
		return
	}
	s.store.Set(Status{SoC: m.SoC, Profile: profile, UpdatedAt: time.Now()})
	s.log.Debugw("telemetry update", map[string]any{"soc": m.SoC, "battery_kwh": m.BatteryKWh})
}

// Close disconnects from the broker.
func (s *Subscriber) Close() {
	if s.cli != nil && s.cli.IsConnected() {
		s.cli.Disconnect(250)
	}
}
