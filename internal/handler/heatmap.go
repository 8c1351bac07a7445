package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"truthguard/internal/heatmap"
)

const (
	streamWriteWait = 10 * time.Second
	streamPongWait  = 60 * time.Second
	streamPingEvery = (streamPongWait * 9) / 10
)

var streamUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// HeatmapHandler serves the dashboard snapshot, user flags, and the live
// websocket ticker.
type HeatmapHandler struct {
	svc *heatmap.Service
}

func NewHeatmapHandler(svc *heatmap.Service) *HeatmapHandler {
	return &HeatmapHandler{svc: svc}
}

func (h *HeatmapHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	writeJSON(w, http.StatusOK, h.svc.Snapshot(category))
}

func (h *HeatmapHandler) Flag(w http.ResponseWriter, r *http.Request) {
	var req heatmap.FlagRequest
	if !readJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.SourceURL) == "" {
		writeError(w, http.StatusUnprocessableEntity, "source_url is required")
		return
	}
	writeJSON(w, http.StatusCreated, h.svc.Flag(req))
}

// Stream pushes live ticker frames. Real flag events interleave with the
// cycling demo feed so the connection never looks dead.
func (h *HeatmapHandler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := streamUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(streamPongWait)); err != nil {
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamPongWait))
	})

	// Reader goroutine: the client never sends application data, but reads
	// must be pumped for pong frames and close detection.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	live := h.svc.Subscribe(ctx)
	feed := time.NewTicker(heatmap.FeedInterval)
	defer feed.Stop()
	ping := time.NewTicker(streamPingEvery)
	defer ping.Stop()

	idx := 0
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-live:
			if !ok {
				return
			}
			if writeFrame(conn, ev) != nil {
				return
			}
		case <-feed.C:
			if writeFrame(conn, h.svc.TickerFrame(idx)) != nil {
				return
			}
			idx++
		case <-ping.C:
			if err := conn.SetWriteDeadline(time.Now().Add(streamWriteWait)); err != nil {
				return
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func writeFrame(conn *websocket.Conn, ev heatmap.StreamEvent) error {
	if err := conn.SetWriteDeadline(time.Now().Add(streamWriteWait)); err != nil {
		return err
	}
	return conn.WriteJSON(ev)
}
