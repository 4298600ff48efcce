package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/cjeanneret/ov5640/internal/config"
	"github.com/cjeanneret/ov5640/internal/hw/camera"
	"github.com/cjeanneret/ov5640/internal/hw/sccb"
	"github.com/cjeanneret/ov5640/internal/logic/regseq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- ValidateFocus ----------

func TestValidateFocus(t *testing.T) {
	assert.NoError(t, ValidateFocus(FocusRequest{Mode: "single"}))
	assert.NoError(t, ValidateFocus(FocusRequest{Mode: "continuous"}))
	for _, mode := range []string{"", "none", "manual", "SINGLE"} {
		assert.Error(t, ValidateFocus(FocusRequest{Mode: mode}), "mode %q", mode)
	}
}

// ---------- Handler helpers ----------

func newSensor(t *testing.T) (*camera.OV5640, *sccb.MockBus) {
	t.Helper()
	m := camera.Simulate(sccb.NewMockBus())
	_ = m.Init()
	cam := camera.NewOV5640(m, regseq.NewFakeClock(0), camera.ParallelDVP, 0)
	return cam, m
}

func newTestHandlers(t *testing.T, sensor Sensor, tune TuneFunc, focus FocusFunc) *Handlers {
	t.Helper()
	cfg, err := config.Parse([]byte("{}"))
	require.NoError(t, err)
	staticFS := fstest.MapFS{
		"index.html": &fstest.MapFile{Data: []byte("<html>test</html>")},
	}
	return NewHandlers(NewStatusBroadcaster(), sensor, cfg, tune, focus, staticFS)
}

func post(h http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func waitIdle(t *testing.T, h *Handlers) {
	t.Helper()
	require.Eventually(t, func() bool { return !h.Focusing() }, time.Second, 5*time.Millisecond)
}

// ---------- HandleStatus ----------

func TestHandleStatus_Uninitialized(t *testing.T) {
	cam, _ := newSensor(t)
	h := newTestHandlers(t, cam, nil, nil)

	w := httptest.NewRecorder()
	h.HandleStatus(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var st Status
	require.NoError(t, json.NewDecoder(w.Body).Decode(&st))
	assert.False(t, st.Initialized)
	assert.Equal(t, "dvp", st.Interface)
	assert.Empty(t, st.Resolution)
	assert.Equal(t, "0x73", st.Effects.Control)
	assert.Equal(t, "0x32", st.Effects.Hue)
	assert.True(t, st.Capabilities.Zoom)
}

func TestHandleStatus_Initialized(t *testing.T) {
	cam, _ := newSensor(t)
	require.NoError(t, cam.Init(camera.R320x240, camera.YUV422))
	h := newTestHandlers(t, cam, nil, nil)

	w := httptest.NewRecorder()
	h.HandleStatus(w, httptest.NewRequest(http.MethodGet, "/status", nil))

	var st Status
	require.NoError(t, json.NewDecoder(w.Body).Decode(&st))
	assert.True(t, st.Initialized)
	assert.Equal(t, "320x240", st.Resolution)
	assert.Equal(t, "yuv422", st.PixelFormat)
	assert.Empty(t, st.Errors)
}

func TestHandleStatus_ReadbackErrorListed(t *testing.T) {
	cam, m := newSensor(t)
	require.NoError(t, cam.Init(camera.R320x240, camera.RGB565))
	m.Set(0x3808, 0x7F) // no longer a known size
	h := newTestHandlers(t, cam, nil, nil)

	w := httptest.NewRecorder()
	h.HandleStatus(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var st Status
	require.NoError(t, json.NewDecoder(w.Body).Decode(&st))
	assert.Empty(t, st.Resolution)
	assert.Len(t, st.Errors, 1)
	assert.Equal(t, "rgb565", st.PixelFormat)
}

// ---------- HandleConfig ----------

func TestHandleConfig(t *testing.T) {
	cam, _ := newSensor(t)
	h := newTestHandlers(t, cam, nil, nil)

	w := httptest.NewRecorder()
	h.HandleConfig(w, httptest.NewRequest(http.MethodGet, "/config", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var cfg config.Config
	require.NoError(t, json.NewDecoder(w.Body).Decode(&cfg))
	assert.Equal(t, "mock", cfg.Bus.Type)
	assert.Equal(t, "640x480", cfg.Sensor.Resolution)
	assert.Equal(t, "x1", cfg.Tuning.Zoom)
}

// ---------- HandleTuning ----------

func TestHandleTuning_Applies(t *testing.T) {
	cam, _ := newSensor(t)
	var got []config.Profile
	tune := func(p config.Profile) error {
		got = append(got, p)
		return nil
	}
	h := newTestHandlers(t, cam, tune, nil)
	ch, unsub := h.Broadcaster.Subscribe()
	defer unsub()

	w := post(h.HandleTuning, "/tuning", `{"brightness":-2,"hue_degree":-60,"color_effect":"sepia"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.Len(t, got, 1)
	assert.Equal(t, -2, got[0].Brightness)
	assert.Equal(t, -2, got[0].HueStep)
	assert.Equal(t, camera.EffectSepia, got[0].ColorEffect)
	assert.Equal(t, camera.ZoomX1, got[0].Zoom, "unset zoom defaults to x1")

	w = httptest.NewRecorder()
	h.HandleConfig(w, httptest.NewRequest(http.MethodGet, "/config", nil))
	var cfg config.Config
	require.NoError(t, json.NewDecoder(w.Body).Decode(&cfg))
	assert.Equal(t, "sepia", cfg.Tuning.ColorEffect, "config reflects applied tuning")

	evt := receive(t, ch)
	assert.Equal(t, "Tuning applied", evt.Msg)
}

func TestHandleTuning_RealSensor(t *testing.T) {
	cam, m := newSensor(t)
	require.NoError(t, cam.Init(camera.R640x480, camera.RGB565))
	tune := func(p config.Profile) error {
		if err := cam.SetBrightness(p.Brightness); err != nil {
			return err
		}
		return cam.SetZoom(p.Zoom)
	}
	h := newTestHandlers(t, cam, tune, nil)

	w := post(h.HandleTuning, "/tuning", `{"brightness":3,"zoom":"x2"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, byte(0x09), cam.Effects().Brightness)
	assert.Equal(t, byte(0x08), m.Get(0x5601))
}

func TestHandleTuning_BadRequests(t *testing.T) {
	cam, _ := newSensor(t)
	called := false
	h := newTestHandlers(t, cam, func(config.Profile) error { called = true; return nil }, nil)

	cases := map[string]string{
		"not json":     "not json",
		"brightness":   `{"brightness":5}`,
		"hue step":     `{"hue_degree":45}`,
		"light mode":   `{"light_mode":"tungsten"}`,
		"oversized":    strings.Repeat("x", 2<<20),
		"wrong type":   `{"zoom":2}`,
		"color effect": `{"color_effect":"solarize"}`,
	}
	for name, body := range cases {
		w := post(h.HandleTuning, "/tuning", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
	assert.False(t, called, "tune must not run for invalid requests")
}

func TestHandleTuning_ZoomNeedsStandardSize(t *testing.T) {
	cam, _ := newSensor(t)
	called := 0
	h := newTestHandlers(t, cam, func(config.Profile) error { called++; return nil }, nil)
	h.cfg.Sensor.InitMode = config.InitGeneral
	h.cfg.Sensor.Resolution = "1280x800"

	w := post(h.HandleTuning, "/tuning", `{"zoom":"x2"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "1280x800")
	assert.Zero(t, called, "tune must not run")

	w = post(h.HandleTuning, "/tuning", `{"zoom":"x1"}`)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 1, called)
}

func TestHandleTuning_MethodAndUnconfigured(t *testing.T) {
	cam, _ := newSensor(t)
	h := newTestHandlers(t, cam, nil, nil)

	w := httptest.NewRecorder()
	h.HandleTuning(w, httptest.NewRequest(http.MethodGet, "/tuning", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = post(h.HandleTuning, "/tuning", `{}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleTuning_DriverFailure(t *testing.T) {
	cam, _ := newSensor(t)
	h := newTestHandlers(t, cam, func(config.Profile) error {
		return &sccb.Error{Op: "write", Reg: 0x5588, Err: sccb.ErrNACK}
	}, nil)

	w := post(h.HandleTuning, "/tuning", `{"contrast":1}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	h.Tune = func(config.Profile) error { return camera.ErrUnknownReadback }
	w = post(h.HandleTuning, "/tuning", `{"zoom":"x4"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	h.Tune = func(config.Profile) error { return camera.ErrUnsupported }
	w = post(h.HandleTuning, "/tuning", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// ---------- HandleFocus ----------

func TestHandleFocus_Started(t *testing.T) {
	cam, _ := newSensor(t)
	done := make(chan string, 1)
	h := newTestHandlers(t, cam, nil, func(mode string) error {
		done <- mode
		return nil
	})
	ch, unsub := h.Broadcaster.Subscribe()
	defer unsub()

	w := post(h.HandleFocus, "/focus", `{"mode":"single"}`)
	require.Equal(t, http.StatusAccepted, w.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "started", resp["status"])

	select {
	case mode := <-done:
		assert.Equal(t, "single", mode)
	case <-time.After(time.Second):
		t.Fatal("focus not run")
	}
	evt := receive(t, ch)
	assert.Contains(t, evt.Msg, "Focus (single) done")
	waitIdle(t, h)
}

func TestHandleFocus_Concurrent(t *testing.T) {
	cam, _ := newSensor(t)
	started := make(chan struct{})
	blocking := make(chan struct{})
	h := newTestHandlers(t, cam, nil, func(string) error {
		close(started)
		<-blocking
		return nil
	})

	w1 := post(h.HandleFocus, "/focus", `{"mode":"continuous"}`)
	require.Equal(t, http.StatusAccepted, w1.Code)
	<-started

	w2 := post(h.HandleFocus, "/focus", `{"mode":"single"}`)
	assert.Equal(t, http.StatusConflict, w2.Code)

	w := httptest.NewRecorder()
	h.HandleStatus(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	var st Status
	require.NoError(t, json.NewDecoder(w.Body).Decode(&st))
	assert.True(t, st.Focusing)
	assert.True(t, st.Busy)
	assert.Empty(t, st.Resolution, "no readback while the sensor is held")

	wc := httptest.NewRecorder()
	h.HandleConfig(wc, httptest.NewRequest(http.MethodGet, "/config", nil))
	assert.Equal(t, http.StatusOK, wc.Code)

	close(blocking)
	waitIdle(t, h)

	w = httptest.NewRecorder()
	h.HandleStatus(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	st = Status{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&st))
	assert.False(t, st.Focusing)
	assert.False(t, st.Busy)
}

func TestHandleFocus_FailureBroadcast(t *testing.T) {
	cam, _ := newSensor(t)
	h := newTestHandlers(t, cam, nil, func(string) error { return regseq.ErrTimeout })
	ch, unsub := h.Broadcaster.Subscribe()
	defer unsub()

	w := post(h.HandleFocus, "/focus", `{"mode":"single"}`)
	require.Equal(t, http.StatusAccepted, w.Code)

	evt := receive(t, ch)
	assert.Equal(t, "error", evt.Level)
	assert.True(t, strings.HasPrefix(evt.Msg, "Focus failed"))
	waitIdle(t, h)
}

func TestHandleFocus_BadRequests(t *testing.T) {
	cam, _ := newSensor(t)
	h := newTestHandlers(t, cam, nil, func(string) error { return errors.New("must not run") })

	assert.Equal(t, http.StatusBadRequest, post(h.HandleFocus, "/focus", "{").Code)
	assert.Equal(t, http.StatusBadRequest, post(h.HandleFocus, "/focus", `{"mode":"none"}`).Code)

	w := httptest.NewRecorder()
	h.HandleFocus(w, httptest.NewRequest(http.MethodGet, "/focus", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	h.Focus = nil
	assert.Equal(t, http.StatusServiceUnavailable, post(h.HandleFocus, "/focus", `{"mode":"single"}`).Code)
}

// ---------- ServeIndex / routing ----------

func TestServeIndex(t *testing.T) {
	cam, _ := newSensor(t)
	h := newTestHandlers(t, cam, nil, nil)

	w := httptest.NewRecorder()
	h.ServeIndex(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<html>")
}

func TestServerMux_Routes(t *testing.T) {
	cam, _ := newSensor(t)
	cfg, err := config.Parse([]byte("{}"))
	require.NoError(t, err)
	srv := NewServer(":0", NewStatusBroadcaster(), cam, cfg, nil, nil)
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	body := new(bytes.Buffer)
	_, _ = body.ReadFrom(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body.String(), "OV5640")

	resp, err = http.Get(ts.URL + "/status")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/tuning")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
