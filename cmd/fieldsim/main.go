package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/printer-maintenance/internal/models"
)

// fieldsim generates plausible repair incidents against the machines known
// to the API and reports them the way field technicians do: over MQTT when a
// broker is configured, otherwise straight to the REST endpoint.

var authToken string

var technicians = []string{
	"Carlos Gomez", "Ana Ruiz", "Miguel Torres", "Lucia Fernandez", "Pedro Diaz",
}

var failureTypes = []string{
	"Paper jam", "Fuser failure", "Pickup roller worn", "Toner leak",
	"Controller fault", "Duplex misfeed", "Sensor error",
}

var difficulties = []models.Difficulty{
	models.DifficultyLow, models.DifficultyMedium, models.DifficultyHigh, models.DifficultyCritical,
}

func authorizedRequest(method, url string, body *bytes.Buffer) (*http.Response, error) {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	return client.Do(req)
}

func fetchMachines(apiURL string) ([]models.Machine, error) {
	resp, err := authorizedRequest(http.MethodGet, apiURL+"/machines", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch machines: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("machine fetch failed with status: %d", resp.StatusCode)
	}
	var machines []models.Machine
	if err := json.NewDecoder(resp.Body).Decode(&machines); err != nil {
		return nil, fmt.Errorf("failed to decode machines: %w", err)
	}
	return machines, nil
}

func fetchParts(apiURL string) ([]models.Part, error) {
	resp, err := authorizedRequest(http.MethodGet, apiURL+"/parts", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch parts: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("parts fetch failed with status: %d", resp.StatusCode)
	}
	var parts []models.Part
	if err := json.NewDecoder(resp.Body).Decode(&parts); err != nil {
		return nil, fmt.Errorf("failed to decode parts: %w", err)
	}
	return parts, nil
}

// randomIncident builds one plausible report against a known machine.
func randomIncident(machines []models.Machine, parts []models.Part) models.Incident {
	machine := machines[rand.Intn(len(machines))]
	difficulty := difficulties[rand.Intn(len(difficulties))]

	incident := models.Incident{
		Date:        time.Now().Format("2006-01-02"),
		LocationID:  machine.LocationID,
		MachineID:   machine.ID,
		FailureType: failureTypes[rand.Intn(len(failureTypes))],
		Difficulty:  difficulty,
		RepairHours: 0.5 + rand.Float64()*float64(models.DifficultyScore(difficulty))*2,
		Technician:  technicians[rand.Intn(len(technicians))],
	}
	incident.Description = fmt.Sprintf("%s on %s", incident.FailureType, machine.Name)

	// Harder repairs consume more parts.
	partCount := rand.Intn(models.DifficultyScore(difficulty) + 1)
	used := map[string]bool{}
	for i := 0; i < partCount && len(parts) > 0; i++ {
		part := parts[rand.Intn(len(parts))]
		if used[part.ID] {
			continue
		}
		used[part.ID] = true
		incident.PartsUsed = append(incident.PartsUsed, models.PartUsage{
			PartID:   part.ID,
			Quantity: 1 + rand.Intn(2),
		})
	}
	return incident
}

func sendViaAPI(apiURL string, incident models.Incident) {
	data, err := json.Marshal(incident)
	if err != nil {
		log.WithError(err).Error("Failed to marshal incident")
		return
	}
	resp, err := authorizedRequest(http.MethodPost, apiURL+"/incidents", bytes.NewBuffer(data))
	if err != nil {
		log.WithError(err).Error("Failed to send incident")
		return
	}
	defer resp.Body.Close()
	log.WithFields(log.Fields{"machine": incident.MachineID, "status": resp.Status}).Info("Reported incident")
}

func connectMQTT(broker string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(fmt.Sprintf("fieldsim-%d", os.Getpid())).
		SetConnectTimeout(10 * time.Second)
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return client, nil
}

func publishViaMQTT(client mqtt.Client, topic string, incident models.Incident) {
	data, err := json.Marshal(incident)
	if err != nil {
		log.WithError(err).Error("Failed to marshal incident")
		return
	}
	if token := client.Publish(topic, 1, false, data); token.Wait() && token.Error() != nil {
		log.WithError(token.Error()).Error("Failed to publish incident")
		return
	}
	log.WithFields(log.Fields{"machine": incident.MachineID, "topic": topic}).Info("Published incident")
}

func main() {
	authToken = os.Getenv("SIM_AUTH_TOKEN")

	apiURL := os.Getenv("API_BASE_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080/api"
	}

	interval := 30 * time.Second
	if v := os.Getenv("SIM_TICK_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			interval = time.Duration(n) * time.Second
		}
	}

	broker := os.Getenv("MQTT_BROKER")
	topic := os.Getenv("MQTT_TOPIC")
	if topic == "" {
		topic = "field/incidents"
	}

	log.WithFields(log.Fields{
		"api_url":  apiURL,
		"interval": interval,
		"broker":   broker,
	}).Info("Starting incident simulation")

	machines, err := fetchMachines(apiURL)
	if err != nil {
		log.WithError(err).Fatal("Cannot fetch machines. Ensure SIM_AUTH_TOKEN is valid and API is reachable.")
	}
	if len(machines) == 0 {
		log.Fatal("No machines registered, nothing to report against")
	}
	parts, err := fetchParts(apiURL)
	if err != nil {
		log.WithError(err).Warn("Cannot fetch parts catalog, reports will carry no parts")
	}

	var mqttClient mqtt.Client
	if broker != "" {
		mqttClient, err = connectMQTT(broker)
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to MQTT broker")
		}
		defer mqttClient.Disconnect(250)
	}

	tick := time.NewTicker(interval)
	defer tick.Stop()
	for range tick.C {
		incident := randomIncident(machines, parts)
		if mqttClient != nil {
			publishViaMQTT(mqttClient, topic, incident)
		} else {
			sendViaAPI(apiURL, incident)
		}
	}
}
