package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

const dataFile = "mock/files/destinations.json"

func main() {
	// Default port matches the web app's default API base URL
	port := "8080"

	// Check if port is provided as command line argument
	if len(os.Args) > 1 {
		port = os.Args[1]
	}

	http.HandleFunc("/api/destinations", withLatency(DestinationsHandler, 150*time.Millisecond))
	http.HandleFunc("/api/destinations/", withLatency(DestinationHandler, 150*time.Millisecond))
	http.HandleFunc("/api/itinerary", withLatency(ItineraryHandler, 600*time.Millisecond))

	addr := fmt.Sprintf(":%s", port)
	fmt.Printf("Go Mock Server running on port %s...\n", port)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal(err)
	}
}

// withLatency delays every response so loading states are visible locally.
func withLatency(h http.HandlerFunc, d time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(d)
		h(w, r)
	}
}
