// Package function runs the relay routes inside a single Lambda-style
// invocation, as used by Netlify Functions.
package function

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"discord-webhook-relay/config"
	"discord-webhook-relay/logger"
	"discord-webhook-relay/routes"
)

var log = logger.New("function")

type Handler struct {
	routes  http.Handler
	mounts  []string
	adapter *httpadapter.HandlerAdapter
}

func NewHandler(cfg *config.Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		// A function cannot refuse to start; requests fail at delivery instead.
		log.Errorf("%v: every notification will be rejected", err)
	}

	rc, err := routes.NewRestController(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating rest controller: %w", err)
	}

	return newHandler(rc.SetUpRoutes(""), cfg.FunctionMount), nil
}

func newHandler(inner http.Handler, mount string) *Handler {
	h := &Handler{routes: inner}

	mount = strings.TrimSuffix(mount, "/")
	if mount != "" {
		h.mounts = []string{mount, "/api/" + path.Base(mount)}
	}

	h.adapter = httpadapter.New(http.HandlerFunc(h.serveMounted))
	return h
}

func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	resp, err := h.adapter.ProxyWithContext(ctx, req)
	if err != nil {
		log.Warningf("Rejecting invocation: %v", err)
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusBadRequest,
			Headers:    map[string]string{"Content-Type": "text/plain"},
			Body:       "Bad request",
		}, nil
	}
	return resp, nil
}

// serveMounted drops the platform mount from the path before routing.
func (h *Handler) serveMounted(w http.ResponseWriter, r *http.Request) {
	r.URL.Path = h.routePath(r.URL.Path)
	r.URL.RawPath = ""
	h.routes.ServeHTTP(w, r)
}

func (h *Handler) routePath(p string) string {
	for _, mount := range h.mounts {
		if p == mount {
			return "/"
		}
		if strings.HasPrefix(p, mount+"/") {
			return strings.TrimPrefix(p, mount)
		}
	}
	if !strings.HasPrefix(p, "/") {
		return "/" + p
	}
	return p
}
