package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"kelana-server/db"
	"kelana-server/internals"
)

func HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	profile, ok := requireProfile(w, r)
	if !ok {
		return
	}

	itineraryDAO := db.NewItineraryDAO(db.GetDB())
	itineraries, err := itineraryDAO.GetItinerariesByProfileId(profile.ProfileID)
	if err != nil {
		log.Println("Error getting itineraries: ", err)
		http.Error(w, "Error getting itineraries", http.StatusInternalServerError)
		return
	}

	summary := internals.ComputeDashboard(itineraries, time.Now())

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(summary)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding JSON", http.StatusInternalServerError)
		return
	}
}
