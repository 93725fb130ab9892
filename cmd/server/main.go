package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/lumiere-dining/api/internal/config"
	"github.com/lumiere-dining/api/internal/router"
	"github.com/lumiere-dining/api/internal/seed"
	"github.com/lumiere-dining/api/internal/store"
	"github.com/lumiere-dining/api/internal/ws"
)

func main() {
	cfg := config.Load()

	st := store.New()
	if cfg.SeedFile != "" {
		if err := restoreFromFile(st, cfg.SeedFile); err != nil {
			log.Fatalf("restoring %s: %v", cfg.SeedFile, err)
		}
		log.Printf("Restored data from %s", cfg.SeedFile)
	} else {
		if err := seed.Load(st); err != nil {
			log.Fatalf("seeding store: %v", err)
		}
		log.Printf("Loaded demo dataset")
	}

	hub := ws.NewHub()
	go hub.Run()

	r := router.New(cfg, st, hub)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatal(err)
	}
}

func restoreFromFile(st *store.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var snap store.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	st.Restore(snap)
	return nil
}
