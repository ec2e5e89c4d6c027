// personad serves the personality matrix over gRPC, backed by a
// SQLite trace store.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	pb "github.com/danielpatrickdp/persona-matrix/gen/personapb"
	"github.com/danielpatrickdp/persona-matrix/internal/model"
	"github.com/danielpatrickdp/persona-matrix/internal/orchestrator"
	"github.com/danielpatrickdp/persona-matrix/internal/rpc"
	"github.com/danielpatrickdp/persona-matrix/internal/trace"
)

// #region main
func main() {
	configPath := flag.String("config", "", "path to JSON config file")
	flag.Parse()

	dbPath := envOr("PERSONA_DB", "persona_matrix.db")
	listenAddr := envOr("PERSONA_ADDR", "localhost:50061")

	config, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	store, err := trace.NewStore(dbPath, trace.StoreConfig{
		RetentionDays:     config.TraceRetentionDays,
		DriftThreshold:    config.DriftThreshold,
		EnableDriftAlerts: config.EnableDriftAlerts,
	})
	if err != nil {
		log.Fatalf("open trace store: %v", err)
	}
	defer store.Close()

	matrix, err := orchestrator.New(config, store)
	if err != nil {
		log.Fatalf("build matrix: %v", err)
	}

	lis, err := net.Listen("tcp", listenAddr)
	if err != nil {
		log.Fatalf("listen on %s: %v", listenAddr, err)
	}

	server := grpc.NewServer()
	pb.RegisterPersonaServiceServer(server, rpc.NewServer(matrix, store))

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Println("shutting down...")
		server.GracefulStop()
	}()

	fmt.Printf("Persona Matrix daemon ready.\n  DB: %s | Listen: %s\n", dbPath, listenAddr)
	if err := server.Serve(lis); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

// #endregion main

// #region helpers

// loadConfig reads a JSON config over the defaults. An empty path
// returns the defaults untouched.
func loadConfig(path string) (model.Config, error) {
	config := model.DefaultConfig()
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return model.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return config, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
