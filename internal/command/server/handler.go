package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/lwmacct/251208-go-pkg-interp/pkg/interp"
)

// renderRequest POST /render 请求体。
type renderRequest struct {
	Template string         `json:"template"`
	Vars     map[string]any `json:"vars"`
}

type renderResponse struct {
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

// newHandler 创建 HTTP 路由。
//
// 每个请求使用 base 的副本，请求中的 vars 只作用于本次渲染。
func newHandler(base *interp.Store, opts []interp.Option, maxBody int64) http.Handler {
	mux := http.NewServeMux()

	// 健康检查端点
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("POST /render", func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", reqID)
		logger := slog.With("request_id", reqID)

		var req renderRequest
		body := http.MaxBytesReader(w, r.Body, maxBody)
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			logger.Warn("Invalid render request", "error", err)
			writeJSON(w, http.StatusBadRequest, renderResponse{Error: fmt.Sprintf("invalid request: %v", err)})

			return
		}

		ip := interp.WithStore(base.Clone().Add(interp.Flatten(req.Vars)), opts...)
		out, err := ip.Parse(req.Template)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, interp.ErrUndefinedVariable) || errors.Is(err, interp.ErrRecursionLimit) ||
				errors.Is(err, interp.ErrOutputLimit) {
				status = http.StatusUnprocessableEntity
			}
			logger.Info("Render failed", "error", err)
			writeJSON(w, status, renderResponse{Error: err.Error()})

			return
		}

		logger.Debug("Render succeeded", "bytes", len(out))
		writeJSON(w, http.StatusOK, renderResponse{Output: out})
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
