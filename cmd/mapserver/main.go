package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/deanpointblank/codenamestory/internal/mapgen"
	"github.com/deanpointblank/codenamestory/internal/preview"
)

func main() {
	cfg := mapgen.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	addr := flag.String("addr", ":3333", "listen address")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)
	srv := preview.NewServer(cfg, logger)
	logger.Printf("serving maps on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, srv.Router()))
}
