// Command seed writes the demo dataset as a snapshot file that the
// server can load via SEED_FILE.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/lumiere-dining/api/internal/seed"
	"github.com/lumiere-dining/api/internal/store"
)

func main() {
	out := flag.String("out", "seed.json", "path to write the snapshot to")
	flag.Parse()

	st := store.New()
	if err := seed.Load(st); err != nil {
		log.Fatalf("building demo dataset: %v", err)
	}

	data, err := json.MarshalIndent(st.Snapshot(), "", "  ")
	if err != nil {
		log.Fatalf("encoding snapshot: %v", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("writing %s: %v", *out, err)
	}
	log.Printf("Wrote %s (%d bytes)", *out, len(data))
}
