// Command jobhunter-server runs the job search tracker web app.
package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/raghugg/job-hunter/internal/config"
	"github.com/raghugg/job-hunter/internal/serverapp"
)

func main() {
	cfgPath := os.Getenv("JOBHUNTER_CONFIG")
	if cfgPath == "" {
		cfgPath = "jobhunter.yml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatalf("load config: %v", err)
		}
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	handler, err := serverapp.NewHandler(serverapp.Options{
		Config:        cfg,
		DataDir:       cfg.Data.Dir,
		StaticDir:     "static",
		UseDiskStatic: serverapp.UseDiskStaticByEnv(),
		Logger:        log.Default(),
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
	}
	log.Printf("listening on http://localhost%s", cfg.Server.Addr)
	log.Fatal(srv.ListenAndServe())
}
