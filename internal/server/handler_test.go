package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pkt.systems/vgacons/internal/vga"
)

func TestScreenDump(t *testing.T) {
	fb := vga.NewEmulated()
	w := vga.NewWriter(fb, vga.NewAttr(vga.LightGray, vga.Black))
	w.ClearScreen()
	w.WriteString("HELLO")

	srv := httptest.NewServer(NewHandler(fb.Snapshot, nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/screen")
	if err != nil {
		t.Fatalf("GET /screen: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	if len(lines) != vga.Height {
		t.Fatalf("lines = %d, want %d", len(lines), vga.Height)
	}
	if got := lines[vga.Height-1]; !strings.HasPrefix(got, "HELLO") {
		t.Fatalf("bottom line = %q", got)
	}
}

func TestScreenRejectsNonGet(t *testing.T) {
	srv := httptest.NewServer(NewHandler(func() vga.Snapshot { return vga.Snapshot{} }, nil))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/screen", "text/plain", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("POST /screen: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(NewHandler(func() vga.Snapshot { return vga.Snapshot{} }, nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}
