// VoiceChess - the rules-and-command core of a voice-driven chess game.
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/hailam/voicechess/internal/server"
	"github.com/hailam/voicechess/internal/storage"
)

func main() {
	addr := flag.String("addr", "localhost:8080", "listen address")
	noStore := flag.Bool("no-store", false, "disable game persistence")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store *storage.Storage
	if !*noStore {
		var err error
		store, err = storage.OpenDefault()
		if err != nil {
			log.Fatalf("open storage: %v", err)
		}
		defer store.Close()
	}

	srv := server.New(store)
	if err := srv.Run(ctx, *addr); err != nil {
		log.Fatal(err)
	}
}
