package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"kelana-server/db"
	"kelana-server/externals"
	"kelana-server/mockservers"
)

func main() {
	// retrieve execution mode
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	testMode := os.Getenv("TEST_MODE")

	// get port from flag
	port := flag.String("port", "80", "Port on which the server listens")
	flag.Parse()

	// init db
	database, err := db.InitDB(testMode)
	if err != nil || database == nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer db.CloseDBConnection()

	// init generation api
	externals.InitGenerationApi(testMode)

	// in test mode, a mock server stands in for the completion endpoint
	if testMode == "test" {
		go mockservers.StartGenerationApiServer()
	}

	// initialize firebase
	externals.InitializeFirebase(testMode)

	// start server
	server := SetupServer(*port)
	log.Println("Kelana server listening on port " + *port)
	err = server.ListenAndServe()
	if err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
