// Command datagen writes a synthetic dataset as JSON, using the same
// generator settings as the server.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"shellwatch/internal/config"
	"shellwatch/internal/services/datagen"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	companies := flag.Int("companies", cfg.Data.Companies, "number of companies")
	transactions := flag.Int("transactions", cfg.Data.Transactions, "number of transactions")
	seed := flag.Int64("seed", cfg.Data.Seed, "generator seed (0 for random)")
	out := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	ds := datagen.Generate(datagen.Options{
		Companies:    *companies,
		Transactions: *transactions,
		Seed:         *seed,
	})

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ds); err != nil {
		log.Fatalf("Failed to write dataset: %v", err)
	}
	log.Printf("✅ Generated %d companies, %d transactions, %d ownerships",
		len(ds.Companies), len(ds.Transactions), len(ds.Ownerships))
}
