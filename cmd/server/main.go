/*
main.go - Application entry point

PURPOSE:

	Initializes and starts the leave tracker server. Handles configuration,
	backend selection, and graceful shutdown.

STARTUP SEQUENCE:
 1. Load .env if present, parse command-line flags
 2. Initialize the record store (sheets, sqlite, or memory)
 3. Create API handler and router
 4. Start server with graceful shutdown

COMMAND-LINE FLAGS:

	-port     HTTP server port (default: 8080)
	-backend  Record store: sheets | sqlite | memory (default: sheets)
	-db       SQLite database path for -backend=sqlite (default: leave.db)

ENVIRONMENT (sheets backend):

	GOOGLE_SPREADSHEET_ID plus service-account credentials via
	GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
	GOOGLE_APPLICATION_CREDENTIALS. A local .env file is honored.

GRACEFUL SHUTDOWN:

	On SIGINT/SIGTERM:
	1. Stop accepting new connections
	2. Wait for active requests to complete (30s timeout)
	3. Exit

EXAMPLES:

	# Run against the office spreadsheet
	./server -backend=sheets

	# Run with a local database
	./server -backend=sqlite -db="./data/leave.db"

	# Run with demo data, no external dependencies
	./server -backend=memory

SEE ALSO:
  - api/server.go: Router configuration
  - store/sheets, store/sqlite, leave/store: Record stores
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/warp/leave-tracker/api"
	"github.com/warp/leave-tracker/leave"
	memstore "github.com/warp/leave-tracker/leave/store"
	"github.com/warp/leave-tracker/store/sheets"
	"github.com/warp/leave-tracker/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	backend := flag.String("backend", "sheets", "Record store: sheets | sqlite | memory")
	dbPath := flag.String("db", "leave.db", "SQLite database path (sqlite backend)")
	flag.Parse()

	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	source, cleanup, err := newSource(context.Background(), *backend, *dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize %s backend: %v", *backend, err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	handler := api.NewHandler(source)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on http://localhost:%d (backend: %s)", *port, *backend)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// newSource builds the record store for the selected backend.
func newSource(ctx context.Context, backend, dbPath string) (leave.Source, func() error, error) {
	switch backend {
	case "sheets":
		client, err := sheets.NewFromEnv(ctx)
		if err != nil {
			return nil, nil, err
		}
		return client, nil, nil
	case "sqlite":
		store, err := sqlite.New(dbPath)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case "memory":
		return memstore.NewMemory(memstore.DemoEmployees()...), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q (want sheets, sqlite, or memory)", backend)
	}
}
