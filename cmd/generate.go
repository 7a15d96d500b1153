package main

//go:generate echo "Generating SQLC files..."
//go:generate bash -c "export PATH=$$PATH:~/go/bin && sqlc generate -f ../storage/sqlc.yaml"
//go:generate echo "SQLC files generated"

//go:generate echo "Generating templ files..."
//go:generate bash -c "export PATH=$$PATH:~/go/bin && templ generate -path ../views"
//go:generate bash -c "export PATH=$$PATH:~/go/bin && templ generate -path ../internal/boundary"
//go:generate echo "templ files generated"

// This file holds the go:generate directives for the templ views and the
// sqlc queries. Run
//
// go generate ./...
//
// from the project root directory.
