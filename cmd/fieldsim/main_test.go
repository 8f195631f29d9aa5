package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ukydev/printer-maintenance/internal/models"
)

var testMachines = []models.Machine{
	{ID: "mac-1", Name: "Printer 1", Model: "SL-M4020ND", LocationID: "loc-1"},
	{ID: "mac-2", Name: "Printer 2", Model: "x656", LocationID: "loc-2"},
}

var testParts = []models.Part{
	{ID: "p1", Name: "Fuser Unit"},
	{ID: "p2", Name: "Pickup Roller"},
}

func TestRandomIncident_AlwaysValid(t *testing.T) {
	for i := 0; i < 200; i++ {
		incident := randomIncident(testMachines, testParts)
		if err := incident.Validate(); err != nil {
			t.Fatalf("generated invalid incident: %v (%+v)", err, incident)
		}
	}
}

func TestRandomIncident_ReferencesKnownMachine(t *testing.T) {
	known := map[string]string{}
	for _, m := range testMachines {
		known[m.ID] = m.LocationID
	}

	for i := 0; i < 50; i++ {
		incident := randomIncident(testMachines, testParts)
		locationID, ok := known[incident.MachineID]
		if !ok {
			t.Fatalf("incident references unknown machine %s", incident.MachineID)
		}
		if incident.LocationID != locationID {
			t.Fatalf("incident location %s does not match machine's location %s", incident.LocationID, locationID)
		}
	}
}

func TestRandomIncident_NoPartsCatalog(t *testing.T) {
	incident := randomIncident(testMachines, nil)
	if len(incident.PartsUsed) != 0 {
		t.Errorf("expected no parts without a catalog, got %d", len(incident.PartsUsed))
	}
	if err := incident.Validate(); err != nil {
		t.Errorf("incident without parts should be valid: %v", err)
	}
}

func TestFetchMachines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/machines" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(testMachines)
	}))
	defer srv.Close()

	authToken = "test-token"
	defer func() { authToken = "" }()

	machines, err := fetchMachines(srv.URL)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(machines) != 2 {
		t.Errorf("expected 2 machines, got %d", len(machines))
	}
}

func TestFetchMachines_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	if _, err := fetchMachines(srv.URL); err == nil {
		t.Error("expected error for unauthorized response")
	}
}

func TestSendViaAPI(t *testing.T) {
	received := make(chan models.Incident, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var incident models.Incident
		if err := json.NewDecoder(r.Body).Decode(&incident); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		received <- incident
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	incident := randomIncident(testMachines, testParts)
	sendViaAPI(srv.URL, incident)

	select {
	case got := <-received:
		if got.MachineID != incident.MachineID {
			t.Errorf("machine mismatch: got %s, want %s", got.MachineID, incident.MachineID)
		}
	default:
		t.Fatal("server never received the incident")
	}
}
