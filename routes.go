package main

import (
	"net/http"

	"github.com/rs/cors"

	"kelana-server/handlers"
)

func SetupServer(port string) *http.Server {
	mux := http.NewServeMux()

	// setup routes
	mux.HandleFunc("/profiles/profile", handlers.HandleProfiles)
	mux.HandleFunc("/profiles", handlers.HandleModifyProfile)
	mux.HandleFunc("/profiles/avatar", handlers.HandleAvatar)

	mux.HandleFunc("/itineraries", handlers.HandleCreateItinerary)
	mux.HandleFunc("/itineraries/user", handlers.HandleItinerariesUser)
	mux.HandleFunc("/itineraries/user/", handlers.HandleModifyItinerary)

	mux.HandleFunc("/dashboard", handlers.HandleDashboard)

	mux.HandleFunc("/resetTestDatabase", handlers.HandleResetTestDatabase)

	// the browser client calls from another origin
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:    ":" + port,
		Handler: corsHandler.Handler(mux),
	}

	return server
}
