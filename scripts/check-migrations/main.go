package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

func main() {
	dbPath := flag.String("db", "./db/academy.db", "path to the content database")
	flag.Parse()

	db, err := sql.Open("sqlite", *dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	fmt.Println("=== Goose Migration Status ===")
	rows, err := db.Query("SELECT version_id, is_applied, tstamp FROM goose_db_version ORDER BY id")
	if err != nil {
		fmt.Printf("Error querying goose_db_version: %v\n", err)
		fmt.Println("Table might not exist yet")
		return
	}
	defer rows.Close()
	for rows.Next() {
		var versionID int64
		var isApplied bool
		var tstamp string
		if err := rows.Scan(&versionID, &isApplied, &tstamp); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Version: %d, Applied: %v, Timestamp: %s\n", versionID, isApplied, tstamp)
	}

	fmt.Println("\n=== Content Row Counts ===")
	for _, table := range []string{"events", "news", "clubs", "sports", "leaders", "calendar_entries"} {
		var n int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
			fmt.Printf("%-18s error: %v\n", table, err)
			continue
		}
		fmt.Printf("%-18s %d\n", table, n)
	}
}
