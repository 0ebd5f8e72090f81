package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
	"vlrdata-backend/lib/configutil"
	"vlrdata-backend/lib/osutil"
	scraper "vlrdata-backend/lib/scrapers/vlr"
	"vlrdata-backend/lib/telemetry"
	"vlrdata-backend/services/vlr"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func fatalerr(message string, err error) {
	slog.Error(message, "err", err.Error())
	os.Exit(1)
}

type Config struct {
	// Port defaults to 8111.
	Port int `json:"port"`
	// TimeoutSeconds bounds each upstream fetch.
	TimeoutSeconds int `json:"timeout_seconds"`
	// TierKeywords filters the match list by event name.
	TierKeywords []string `json:"tier_keywords"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.Error("failed to write response", "err", err)
	}
}

func writeErr(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, scraper.ErrUpstream) {
		status = http.StatusBadGateway
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func newMux(service vlr.Service) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /matches", func(w http.ResponseWriter, r *http.Request) {
		matches, err := service.Matches(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"matches": matches})
	})

	mux.HandleFunc("GET /match/{id}", func(w http.ResponseWriter, r *http.Request) {
		detail, err := service.Match(r.Context(), r.PathValue("id"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, detail)
	})

	mux.HandleFunc("GET /live", func(w http.ResponseWriter, r *http.Request) {
		live, err := service.Live(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"live_matches": live})
	})

	mux.HandleFunc("GET /team/{id}", func(w http.ResponseWriter, r *http.Request) {
		team, err := service.Team(r.Context(), r.PathValue("id"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, team)
	})

	mux.HandleFunc("GET /player/{id}", func(w http.ResponseWriter, r *http.Request) {
		player, err := service.Player(r.Context(), r.PathValue("id"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, player)
	})

	return mux
}

func main() {
	config, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		fatalerr("failed to read config", err)
	}
	if config.Port == 0 {
		config.Port = 8111
	}

	service, err := vlr.NewService(vlr.Options{
		Timeout:      time.Duration(config.TimeoutSeconds) * time.Second,
		TierKeywords: config.TierKeywords,
	})
	if err != nil {
		fatalerr("failed to init service", err)
	}

	mux := newMux(service)
	ctx := osutil.SignalContext()

	go func() {
		slog.Info("listening...", "port", config.Port)
		err = http.ListenAndServe(
			fmt.Sprintf("0.0.0.0:%d", config.Port),
			h2c.NewHandler(mux, &http2.Server{}),
		)
		if err != nil {
			fatalerr("failed to listen", err)
		}
	}()

	telemetry.SetupFromEnv(ctx, "cmd/vlr-server")
	telemetry.InstrumentPerfStats(ctx)

	<-ctx.Done()
}
