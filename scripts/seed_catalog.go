//go:build ignore

// This script seeds a running service with a demo product catalog.
// Run with: go run scripts/seed_catalog.go
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit,omitempty"`
}

type product struct {
	Name       string     `json:"name"`
	SKU        string     `json:"sku,omitempty"`
	Dimensions dimensions `json:"dimensions"`
	Weight     float64    `json:"weight"`
}

var demoCatalog = []product{
	{
		Name:       "Olive oil case (12x1L)",
		SKU:        "OO-12x1L",
		Dimensions: dimensions{Length: 40, Width: 30, Height: 25, Unit: "cm"},
		Weight:     9.6,
	},
	{
		Name:       "Canned tomatoes tray",
		SKU:        "CT-24x400G",
		Dimensions: dimensions{Length: 39, Width: 26, Height: 11, Unit: "cm"},
		Weight:     10.8,
	},
	{
		Name:       "Pasta carton (20x500g)",
		SKU:        "PA-20x500G",
		Dimensions: dimensions{Length: 50, Width: 30, Height: 26, Unit: "cm"},
		Weight:     10.4,
	},
	{
		Name:       "Sparkling water pack",
		SKU:        "SW-6x1.5L",
		Dimensions: dimensions{Length: 33, Width: 22, Height: 32, Unit: "cm"},
		Weight:     9.3,
	},
	{
		Name:       "Rice sack",
		SKU:        "RI-25KG",
		Dimensions: dimensions{Length: 75, Width: 45, Height: 15, Unit: "cm"},
		Weight:     25,
	},
}

func seedProduct(client *http.Client, baseURL string, p product) error {
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}

	resp, err := client.Post(baseURL+"/api/v1/products", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		return nil
	case http.StatusConflict:
		// SKU already seeded on a previous run
		return nil
	default:
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, payload)
	}
}

func main() {
	baseURL := os.Getenv("API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	fmt.Println("=== Pallet Optimizer Catalog Seeder ===")
	fmt.Printf("Target: %s\n", baseURL)
	fmt.Println()

	client := &http.Client{Timeout: 10 * time.Second}
	for _, p := range demoCatalog {
		if err := seedProduct(client, baseURL, p); err != nil {
			fmt.Fprintf(os.Stderr, "Error seeding %q: %v\n", p.Name, err)
			os.Exit(1)
		}
		fmt.Printf("Seeded %s (%s)\n", p.Name, p.SKU)
	}

	fmt.Println()
	fmt.Printf("Done: %d products available in the catalog\n", len(demoCatalog))
	fmt.Println("Note: the service must be running with MONGODB_ENABLED=true")
}
