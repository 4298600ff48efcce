package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/cjeanneret/ov5640/internal/config"
	"github.com/cjeanneret/ov5640/internal/hw/camera"
)

// maxBodyBytes bounds POST bodies.
const maxBodyBytes = 1 << 20

// Sensor is the read side of the driver exposed over HTTP.
type Sensor interface {
	Initialized() bool
	Interface() camera.Interface
	GetResolution() (camera.Resolution, error)
	GetPixelFormat() (camera.PixelFormat, error)
	GetCapabilities() camera.Capabilities
	Effects() camera.Effects
}

// TuneFunc applies a validated tuning profile.
type TuneFunc func(p config.Profile) error

// FocusFunc runs one autofocus command ("single" or "continuous").
type FocusFunc func(mode string) error

// EffectsStatus is the held special-effect state, as hex bytes.
type EffectsStatus struct {
	Brightness string `json:"brightness"`
	Saturation string `json:"saturation"`
	Contrast   string `json:"contrast"`
	Hue        string `json:"hue"`
	Control    string `json:"control"`
}

// Status is the GET /status response.
type Status struct {
	Initialized  bool                `json:"initialized"`
	Interface    string              `json:"interface"`
	Resolution   string              `json:"resolution,omitempty"`
	PixelFormat  string              `json:"pixel_format,omitempty"`
	Effects      EffectsStatus       `json:"effects"`
	Capabilities camera.Capabilities `json:"capabilities"`
	Focusing     bool                `json:"focusing"`
	Busy         bool                `json:"busy"` // sensor held by a focus or tuning request; nothing read back
	Errors       []string            `json:"errors,omitempty"`
}

// FocusRequest is the POST /focus body.
type FocusRequest struct {
	Mode string `json:"mode"`
}

// ValidateFocus checks a focus request.
func ValidateFocus(r FocusRequest) error {
	switch r.Mode {
	case config.AutofocusSingle, config.AutofocusContinuous:
		return nil
	}
	return fmt.Errorf("mode must be %q or %q", config.AutofocusSingle, config.AutofocusContinuous)
}

// Handlers holds dependencies for HTTP handlers. Every sensor access holds
// sensorMu: the driver is not safe for concurrent use. cfgMu guards cfg.
type Handlers struct {
	Broadcaster *StatusBroadcaster
	Tune        TuneFunc
	Focus       FocusFunc

	sensor   Sensor
	cfg      *config.Config
	staticFS fs.FS

	sensorMu sync.Mutex
	cfgMu    sync.Mutex

	focusMu  sync.Mutex
	focusing bool
}

// NewHandlers creates handlers with the given dependencies.
// If tune or focus is nil, the matching POST endpoint returns 503.
func NewHandlers(broadcaster *StatusBroadcaster, sensor Sensor, cfg *config.Config, tune TuneFunc, focus FocusFunc, staticFS fs.FS) *Handlers {
	return &Handlers{
		Broadcaster: broadcaster,
		Tune:        tune,
		Focus:       focus,
		sensor:      sensor,
		cfg:         cfg,
		staticFS:    staticFS,
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func hex(b byte) string { return fmt.Sprintf("0x%02X", b) }

// HandleStatus reports the sensor state. Readback failures are listed in
// the response rather than failing the request. While another request
// holds the sensor, only the busy flags are reported.
func (h *Handlers) HandleStatus(w http.ResponseWriter, r *http.Request) {
	focusing := h.Focusing()
	if !h.sensorMu.TryLock() {
		writeJSON(w, http.StatusOK, Status{Focusing: focusing, Busy: true})
		return
	}
	st := Status{
		Initialized:  h.sensor.Initialized(),
		Interface:    h.sensor.Interface().String(),
		Capabilities: h.sensor.GetCapabilities(),
		Focusing:     focusing,
	}
	e := h.sensor.Effects()
	st.Effects = EffectsStatus{
		Brightness: hex(e.Brightness),
		Saturation: hex(e.Saturation),
		Contrast:   hex(e.Contrast),
		Hue:        hex(e.Hue),
		Control:    hex(e.Control()),
	}
	if st.Initialized {
		if res, err := h.sensor.GetResolution(); err == nil {
			st.Resolution = res.String()
		} else {
			st.Errors = append(st.Errors, err.Error())
		}
		if pf, err := h.sensor.GetPixelFormat(); err == nil {
			st.PixelFormat = pf.String()
		} else {
			st.Errors = append(st.Errors, err.Error())
		}
	}
	h.sensorMu.Unlock()

	writeJSON(w, http.StatusOK, st)
}

// HandleConfig returns the loaded configuration as JSON.
func (h *Handlers) HandleConfig(w http.ResponseWriter, r *http.Request) {
	h.cfgMu.Lock()
	cfg := *h.cfg
	h.cfgMu.Unlock()
	writeJSON(w, http.StatusOK, cfg)
}

// ServeIndex serves the main HTML page (root path only).
func (h *Handlers) ServeIndex(w http.ResponseWriter, r *http.Request) {
	data, err := fs.ReadFile(h.staticFS, "index.html")
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

// HandleTuning handles POST /tuning: the body is a full tuning section,
// validated with the config rules and applied synchronously.
func (h *Handlers) HandleTuning(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var t config.TuningConfig
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := t.Normalize(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// Some settings depend on the sensor section (zoom needs a standard size).
	h.cfgMu.Lock()
	candidate := *h.cfg
	h.cfgMu.Unlock()
	candidate.Tuning = t
	if err := candidate.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if h.Tune == nil {
		http.Error(w, "tuning not configured", http.StatusServiceUnavailable)
		return
	}

	h.sensorMu.Lock()
	err := h.Tune(t.Profile())
	h.sensorMu.Unlock()
	if err == nil {
		h.cfgMu.Lock()
		h.cfg.Tuning = t
		h.cfgMu.Unlock()
	}

	if err != nil {
		h.Broadcaster.Broadcast("error", "Tuning failed: "+err.Error())
		log.Printf("tuning failed: %v", err)
		status := http.StatusInternalServerError
		if errors.Is(err, camera.ErrUnsupported) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}
	h.Broadcaster.Broadcast("info", "Tuning applied")
	writeJSON(w, http.StatusOK, map[string]string{"status": "applied"})
}

// HandleFocus handles POST /focus. Focusing runs in the background; a
// second request while one is running gets 409.
func (h *Handlers) HandleFocus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req FocusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := ValidateFocus(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if h.Focus == nil {
		http.Error(w, "focus not configured", http.StatusServiceUnavailable)
		return
	}

	h.focusMu.Lock()
	if h.focusing {
		h.focusMu.Unlock()
		http.Error(w, "focus already in progress", http.StatusConflict)
		return
	}
	h.focusing = true
	h.focusMu.Unlock()

	go func() {
		defer func() {
			h.focusMu.Lock()
			h.focusing = false
			h.focusMu.Unlock()
		}()

		start := time.Now()
		h.sensorMu.Lock()
		err := h.Focus(req.Mode)
		h.sensorMu.Unlock()
		if err != nil {
			h.Broadcaster.Broadcast("error", "Focus failed: "+err.Error())
			log.Printf("focus failed: %v", err)
			return
		}
		h.Broadcaster.Broadcast("info", fmt.Sprintf("Focus (%s) done in %v", req.Mode, time.Since(start).Round(time.Millisecond)))
	}()

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
}

// Focusing reports whether a focus request is running.
func (h *Handlers) Focusing() bool {
	h.focusMu.Lock()
	defer h.focusMu.Unlock()
	return h.focusing
}

// HandleStatusStream handles GET /status/stream for SSE.
func (h *Handlers) HandleStatusStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // nginx

	ch, unsub := h.Broadcaster.Subscribe()
	defer unsub()

	w.Write([]byte(": connected\n\n"))
	flusher.Flush()

	// Heartbeat while idle
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			w.Write([]byte("data: " + msg + "\n\n"))
			flusher.Flush()

		case <-ticker.C:
			w.Write([]byte(": heartbeat\n\n"))
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
