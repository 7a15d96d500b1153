package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/loganlanou/academy/storage"
	"github.com/loganlanou/academy/storage/db"
	"github.com/oklog/ulid/v2"
)

var categories = []string{"academic", "arts", "student-life", "athletics"}

func main() {
	dbPath := flag.String("db", "./db/academy.db", "path to the content database")
	count := flag.Int("events", 20, "number of events to create")
	flag.Parse()

	store, err := storage.New(*dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	ctx := context.Background()
	start := time.Now()
	err = store.InTx(ctx, func(q *db.Queries) error {
		for i := 0; i < *count; i++ {
			date := gofakeit.DateRange(start, start.AddDate(0, 9, 0))
			if err := q.CreateEvent(ctx, db.CreateEventParams{
				ID:        ulid.Make().String(),
				Title:     gofakeit.Sentence(4),
				Summary:   gofakeit.Sentence(12),
				Body:      gofakeit.Paragraph(3, 4, 12, "\n\n"),
				EventDate: date.Format("2006-01-02"),
				Location:  gofakeit.Street(),
				Category:  gofakeit.RandomString(categories),
				ImageUrl:  "/public/images/placeholder.svg",
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Created %d events in %s\n", *count, *dbPath)
}
