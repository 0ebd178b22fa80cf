package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"wedding-map/internal/mapview"
	"wedding-map/internal/models"
	"wedding-map/internal/navigation"
	"wedding-map/internal/registry"
)

func main() {
	dir := flag.String("dir", ".", "Directory to write venues.csv and routes.csv into")
	flag.Parse()

	reg := registry.Wedding()

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		fmt.Printf("Error creating %s: %v\n", *dir, err)
		os.Exit(1)
	}

	venuesPath := filepath.Join(*dir, "venues.csv")
	if err := writeCSV(venuesPath, venueRows(reg.Venues())); err != nil {
		fmt.Printf("Error writing venues: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d venues to %s\n", len(reg.Venues()), venuesPath)

	routesPath := filepath.Join(*dir, "routes.csv")
	if err := writeCSV(routesPath, routeRows(reg)); err != nil {
		fmt.Printf("Error writing routes: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d routes to %s\n", len(reg.Routes()), routesPath)
}

func venueRows(venues []models.Venue) [][]string {
	rows := [][]string{{"key", "label", "address", "latitude", "longitude", "search_url"}}
	for _, v := range venues {
		rows = append(rows, []string{
			v.Key,
			v.Label,
			v.Address,
			strconv.FormatFloat(v.Coordinate.Latitude, 'f', -1, 64),
			strconv.FormatFloat(v.Coordinate.Longitude, 'f', -1, 64),
			navigation.SearchURL(v.Address),
		})
	}
	return rows
}

func routeRows(reg *registry.Registry) [][]string {
	rows := [][]string{{"id", "start", "end", "title", "time_minutes", "distance_miles", "link"}}
	for _, r := range reg.Routes() {
		panel := mapview.BuildPanel(reg, r)
		rows = append(rows, []string{
			r.ID(),
			r.Start,
			r.End,
			panel.Title,
			strconv.Itoa(r.TimeMinutes),
			strconv.Itoa(r.DistanceMiles),
			r.Link,
		})
	}
	return rows
}

func writeCSV(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return file.Close()
}
