package routes

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"discord-webhook-relay/config"
	"discord-webhook-relay/logger"
	"discord-webhook-relay/model"
	"discord-webhook-relay/service"
	"discord-webhook-relay/service/contact"
)

var log = logger.New("routes")

const (
	TriggerPath  = "/webhook/trigger"
	maxBodyBytes = 1 << 20
)

type RestController struct {
	Discord contact.IDiscordSender
	Now     func() time.Time
}

func NewRestController(cfg *config.Config) (*RestController, error) {
	discord, err := contact.NewDiscordSender(cfg)
	if err != nil {
		return nil, err
	}

	return &RestController{
		Discord: discord,
		Now:     time.Now,
	}, nil
}

// SetUpRoutes mounts the trigger route under prefix ("/api" for the
// standalone server, "" inside a function).
func (rc *RestController) SetUpRoutes(prefix string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", rc.HealthHandler)
	mux.HandleFunc(prefix+TriggerPath, rc.TriggerHandler)
	return mux
}

func (rc *RestController) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("UP"))
}

func (rc *RestController) TriggerHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var payload model.TriggerPayload
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&payload)
	if err != nil && !errors.Is(err, io.EOF) {
		log.Warningf("Invalid JSON body: %v", err)
		writeJSON(w, http.StatusBadRequest, model.AckBadRequest)
		return
	}
	log.Infof("Webhook received: system=%q severity=%q", payload.System, payload.Severity)

	message := service.BuildDiscordMessage(payload, rc.now())
	if payload.ImageURL != "" {
		log.Debugf("Image URL detected: %s", payload.ImageURL)
	}

	// Delivery runs to completion even if the caller goes away.
	ctx := context.WithoutCancel(r.Context())
	if _, err := rc.Discord.SendDiscordMessage(ctx, message); err != nil {
		log.Errorf("Failed to send message to Discord: %v", err)
		writeJSON(w, http.StatusInternalServerError, model.AckFailed)
		return
	}

	log.Info("Successfully sent message to Discord")
	writeJSON(w, http.StatusOK, model.AckSent)
}

func (rc *RestController) now() time.Time {
	if rc.Now == nil {
		return time.Now()
	}
	return rc.Now()
}

func writeJSON(w http.ResponseWriter, status int, body model.Ack) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf("encoding response: %v", err)
	}
}
