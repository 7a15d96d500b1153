package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/loganlanou/academy/internal/content"
	"github.com/loganlanou/academy/storage"
)

// Writes the site content as YAML, ready to serve with CONTENT_SOURCE=file.
func main() {
	dbPath := flag.String("db", "", "read from this content database instead of the built-in content")
	out := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	var source content.Source = content.NewStatic()
	if *dbPath != "" {
		store, err := storage.New(*dbPath)
		if err != nil {
			log.Fatal(err)
		}
		defer store.Close()
		source = storage.NewContentSource(store)
	}

	catalog, err := source.Catalog(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}
	if err := content.Encode(w, catalog); err != nil {
		log.Fatal(err)
	}
}
