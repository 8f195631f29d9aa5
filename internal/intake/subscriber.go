package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/printer-maintenance/internal/models"
)

// IncidentSink is what the subscriber needs from the storage layer.
type IncidentSink interface {
	AddIncident(ctx context.Context, incident models.Incident) (models.Incident, error)
}

// Subscriber listens on an MQTT topic for incident reports sent by field
// technicians and appends the valid ones to the incident log. Reports that
// fail validation are logged and dropped; the broker never sees an error.
type Subscriber struct {
	broker string
	topic  string
	sink   IncidentSink
	client mqtt.Client
}

// NewSubscriber creates a subscriber for the given broker and topic.
func NewSubscriber(broker, topic string, sink IncidentSink) *Subscriber {
	return &Subscriber{broker: broker, topic: topic, sink: sink}
}

// Start connects to the broker and subscribes. It returns once the
// subscription is live; messages are handled on paho's callback goroutine.
func (s *Subscriber) Start() error {
	opts := mqtt.NewClientOptions().
		AddBroker(s.broker).
		SetClientID("maintenance-intake").
		SetConnectTimeout(10 * time.Second).
		SetAutoReconnect(true).
		SetOnConnectHandler(func(c mqtt.Client) {
			if token := c.Subscribe(s.topic, 1, s.handleMessage); token.Wait() && token.Error() != nil {
				log.WithError(token.Error()).WithField("topic", s.topic).Error("Failed to subscribe")
			}
		})

	s.client = mqtt.NewClient(opts)
	if token := s.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt connect: %w", token.Error())
	}
	log.WithFields(log.Fields{"broker": s.broker, "topic": s.topic}).Info("Incident intake subscribed")
	return nil
}

// Stop disconnects from the broker, letting in-flight handlers finish.
func (s *Subscriber) Stop() {
	if s.client != nil {
		s.client.Disconnect(250)
	}
}

func (s *Subscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	s.ingest(msg.Payload())
}

// ingest parses, validates and stores one raw report.
func (s *Subscriber) ingest(payload []byte) {
	var incident models.Incident
	if err := json.Unmarshal(payload, &incident); err != nil {
		log.WithError(err).Warn("Dropping unparsable incident report")
		return
	}
	if err := incident.Validate(); err != nil {
		log.WithError(err).Warn("Dropping invalid incident report")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	saved, err := s.sink.AddIncident(ctx, incident)
	if err != nil {
		log.WithError(err).Error("Failed to store reported incident")
		return
	}
	log.WithFields(log.Fields{"id": saved.ID, "machine": saved.MachineID}).Info("Incident ingested from field report")
}
