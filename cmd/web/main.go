package main

import (
	_ "embed"
	"errors"
	"html/template"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/stressgame/internal/config"
)

//go:embed index.html
var indexHTML string

var indexPage = template.Must(template.New("index").Parse(indexHTML))

type pageData struct {
	SSHHost string
	SSHPort string
}

func main() {
	cfg, err := config.FromEnvironment()
	if err != nil {
		log.Fatal("load config", "err", err)
	}
	logger := config.NewLogger(cfg.Log, os.Stderr, "web")

	mux := http.NewServeMux()
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(cfg.Web.AssetsDir))))
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := pageData{SSHHost: cfg.Web.SSHDisplayHost, SSHPort: cfg.SSH.Port}
		if err := indexPage.Execute(w, data); err != nil {
			logger.Error("render index", "err", err)
		}
	})

	addr := net.JoinHostPort(cfg.Web.Host, cfg.Web.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting web server", "addr", "http://"+addr, "assets", cfg.Web.AssetsDir)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", "err", err)
	}
}
