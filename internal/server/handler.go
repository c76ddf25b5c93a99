package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"pkt.systems/pslog"

	"pkt.systems/vgacons/internal/vga"
)

// SnapshotFunc supplies the current grid. Handlers call it per request and
// never mutate anything through it.
type SnapshotFunc func() vga.Snapshot

// feedInterval is how often the live feed checks for a changed grid.
const feedInterval = 250 * time.Millisecond

// NewHandler routes the inspection endpoints.
func NewHandler(snapshot SnapshotFunc, logger pslog.Logger) http.Handler {
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}
	h := &handler{snapshot: snapshot, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/screen", h.handleScreen)
	mux.HandleFunc("/screen/live", h.handleScreenLive)
	return mux
}

type handler struct {
	snapshot SnapshotFunc
	logger   pslog.Logger
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

// handleScreen dumps the grid as Height lines of Width characters.
func (h *handler) handleScreen(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(renderScreen(h.snapshot())))
}

// handleScreenLive pushes a dump over a websocket whenever the grid
// changes.
func (h *handler) handleScreenLive(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.logger.Debug("websocket accept failed", "err", err)
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	ticker := time.NewTicker(feedInterval)
	defer ticker.Stop()

	var last string
	for {
		dump := renderScreen(h.snapshot())
		if dump != last {
			if err := conn.Write(ctx, websocket.MessageText, []byte(dump)); err != nil {
				return
			}
			last = dump
		}
		select {
		case <-ctx.Done():
			_ = conn.Close(websocket.StatusNormalClosure, "")
			return
		case <-ticker.C:
		}
	}
}

func renderScreen(snap vga.Snapshot) string {
	var b strings.Builder
	b.Grow(vga.Height * (vga.Width + 1))
	for row := 0; row < vga.Height; row++ {
		b.WriteString(snap.Row(row))
		b.WriteByte('\n')
	}
	return b.String()
}
