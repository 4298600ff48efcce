package camera

import (
	"errors"
	"testing"

	"github.com/cjeanneret/ov5640/internal/hw/sccb"
	"github.com/cjeanneret/ov5640/internal/logic/regseq"
	"github.com/google/go-cmp/cmp"
)

func TestEffects_ControlIsOr(t *testing.T) {
	e := Effects{Brightness: 0x09, Saturation: 0x41, Contrast: 0x41, Hue: 0x02}
	if got := e.Control(); got != 0x4B {
		t.Errorf("Control() = 0x%02X, want 0x4B", got)
	}
	if got := DefaultEffects().Control(); got != 0x73 {
		t.Errorf("default Control() = 0x%02X, want 0x73", got)
	}
}

func TestSetBrightness_Writes(t *testing.T) {
	cam, m, _ := newTestSensor(ParallelDVP, 0)
	if err := cam.SetBrightness(-2); err != nil {
		t.Fatalf("SetBrightness: %v", err)
	}
	want := []regseq.Entry{
		{Addr: 0x5001, Val: 0xFF},
		{Addr: 0x5587, Val: 0x20},
		{Addr: 0x5580, Val: 0x07},
		{Addr: 0x5588, Val: 0x01 | 0x41 | 0x41 | 0x32},
	}
	if diff := cmp.Diff(want, writes(m)); diff != "" {
		t.Errorf("writes (-want +got):\n%s", diff)
	}
}

func TestSetSaturation_Writes(t *testing.T) {
	cam, m, _ := newTestSensor(ParallelDVP, 0)
	if err := cam.SetSaturation(3); err != nil {
		t.Fatalf("SetSaturation: %v", err)
	}
	want := []regseq.Entry{
		{Addr: 0x5001, Val: 0xFF},
		{Addr: 0x5583, Val: 0x70},
		{Addr: 0x5584, Val: 0x70},
		{Addr: 0x5580, Val: 0x07},
		{Addr: 0x5588, Val: 0x73},
	}
	if diff := cmp.Diff(want, writes(m)); diff != "" {
		t.Errorf("writes (-want +got):\n%s", diff)
	}
}

func TestSetContrast_Writes(t *testing.T) {
	cam, m, _ := newTestSensor(ParallelDVP, 0)
	if err := cam.SetContrast(-4); err != nil {
		t.Fatalf("SetContrast: %v", err)
	}
	want := []regseq.Entry{
		{Addr: 0x5001, Val: 0xFF},
		{Addr: 0x5580, Val: 0x07},
		{Addr: 0x5586, Val: 0x10},
		{Addr: 0x5585, Val: 0x10},
		{Addr: 0x5588, Val: 0x73},
	}
	if diff := cmp.Diff(want, writes(m)); diff != "" {
		t.Errorf("writes (-want +got):\n%s", diff)
	}
}

func TestSetHueDegree_Writes(t *testing.T) {
	cam, m, _ := newTestSensor(ParallelDVP, 0)
	if err := cam.SetHueDegree(0); err != nil {
		t.Fatalf("SetHueDegree: %v", err)
	}
	want := []regseq.Entry{
		{Addr: 0x5001, Val: 0xFF},
		{Addr: 0x5580, Val: 0x07},
		{Addr: 0x5581, Val: 0x80},
		{Addr: 0x5582, Val: 0x00},
		{Addr: 0x5588, Val: 0x01 | 0x41 | 0x41 | 0x01},
	}
	if diff := cmp.Diff(want, writes(m)); diff != "" {
		t.Errorf("writes (-want +got):\n%s", diff)
	}
}

func TestHeldFields(t *testing.T) {
	tests := []struct {
		name string
		set  func(c *OV5640) error
		get  func(e Effects) byte
		want byte
	}{
		{"brightness -1", func(c *OV5640) error { return c.SetBrightness(-1) }, func(e Effects) byte { return e.Brightness }, 0x01},
		{"brightness 0", func(c *OV5640) error { return c.SetBrightness(0) }, func(e Effects) byte { return e.Brightness }, 0x09},
		{"brightness 4", func(c *OV5640) error { return c.SetBrightness(4) }, func(e Effects) byte { return e.Brightness }, 0x09},
		{"saturation", func(c *OV5640) error { return c.SetSaturation(-4) }, func(e Effects) byte { return e.Saturation }, 0x41},
		{"contrast", func(c *OV5640) error { return c.SetContrast(2) }, func(e Effects) byte { return e.Contrast }, 0x41},
		{"hue -6", func(c *OV5640) error { return c.SetHueDegree(-6) }, func(e Effects) byte { return e.Hue }, 0x32},
		{"hue -3", func(c *OV5640) error { return c.SetHueDegree(-3) }, func(e Effects) byte { return e.Hue }, 0x02},
		{"hue 3", func(c *OV5640) error { return c.SetHueDegree(3) }, func(e Effects) byte { return e.Hue }, 0x31},
		{"hue 5", func(c *OV5640) error { return c.SetHueDegree(5) }, func(e Effects) byte { return e.Hue }, 0x31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam, _, _ := newTestSensor(ParallelDVP, 0)
			if err := tt.set(cam); err != nil {
				t.Fatalf("setter: %v", err)
			}
			if got := tt.get(cam.Effects()); got != tt.want {
				t.Errorf("held field = 0x%02X, want 0x%02X", got, tt.want)
			}
		})
	}
}

func TestCombinationSetters_AnyOrder(t *testing.T) {
	setters := []func(c *OV5640) error{
		func(c *OV5640) error { return c.SetBrightness(2) },
		func(c *OV5640) error { return c.SetHueDegree(-2) },
		func(c *OV5640) error { return c.SetSaturation(-1) },
		func(c *OV5640) error { return c.SetContrast(1) },
	}
	orders := [][]int{
		{0, 1, 2, 3},
		{3, 2, 1, 0},
		{1, 3, 0, 2},
		{2, 0, 3, 1},
	}
	want := Effects{Brightness: 0x09, Saturation: 0x41, Contrast: 0x41, Hue: 0x02}

	for _, order := range orders {
		cam, m, _ := newTestSensor(ParallelDVP, 0)
		for _, i := range order {
			if err := setters[i](cam); err != nil {
				t.Fatalf("order %v: setter %d: %v", order, i, err)
			}
			// every call rewrites the shared byte from all four held fields
			if got := lastWrite(t, m, regSDECtrl8); got != cam.Effects().Control() {
				t.Errorf("order %v: 0x5588 = 0x%02X, held combination 0x%02X", order, got, cam.Effects().Control())
			}
		}
		if diff := cmp.Diff(want, cam.Effects()); diff != "" {
			t.Errorf("order %v: held state (-want +got):\n%s", order, diff)
		}
		if got := m.Get(regSDECtrl8); got != want.Control() {
			t.Errorf("order %v: final 0x5588 = 0x%02X, want 0x%02X", order, got, want.Control())
		}
	}
}

func TestCombinationSetters_RejectOutOfRange(t *testing.T) {
	calls := map[string]func(c *OV5640) error{
		"brightness 5":  func(c *OV5640) error { return c.SetBrightness(5) },
		"saturation -5": func(c *OV5640) error { return c.SetSaturation(-5) },
		"contrast 9":    func(c *OV5640) error { return c.SetContrast(9) },
		"hue 6":         func(c *OV5640) error { return c.SetHueDegree(6) },
		"hue -7":        func(c *OV5640) error { return c.SetHueDegree(-7) },
	}
	for name, call := range calls {
		cam, m, _ := newTestSensor(ParallelDVP, 0)
		if err := call(cam); !errors.Is(err, ErrUnsupported) {
			t.Errorf("%s: error = %v, want ErrUnsupported", name, err)
		}
		if n := len(m.Log()); n != 0 {
			t.Errorf("%s: bus accessed %d times", name, n)
		}
		if cam.Effects() != DefaultEffects() {
			t.Errorf("%s: held state changed to %+v", name, cam.Effects())
		}
	}
}

func TestCombinationSetter_FailureReported(t *testing.T) {
	cam, m, _ := newTestSensor(ParallelDVP, 0)
	m.FailReg(regSDECtrl8, sccb.ErrNACK)
	if err := cam.SetContrast(1); !errors.Is(err, sccb.ErrBus) {
		t.Errorf("error = %v, want ErrBus", err)
	}
}

func TestSetLightMode(t *testing.T) {
	cam, m, _ := newTestSensor(ParallelDVP, 0)
	if err := cam.SetLightMode(LightOffice); err != nil {
		t.Fatalf("SetLightMode: %v", err)
	}
	want := []regseq.Entry{
		{Addr: 0x3406, Val: 0x00},
		{Addr: 0x5190, Val: 0x46},
		{Addr: 0x5191, Val: 0xF8},
		{Addr: 0x5192, Val: 0x04},
		{Addr: 0x3406, Val: 0x01},
		{Addr: 0x3400, Val: 0x05},
		{Addr: 0x3401, Val: 0x48},
		{Addr: 0x3402, Val: 0x04},
		{Addr: 0x3403, Val: 0x00},
		{Addr: 0x3404, Val: 0x07},
		{Addr: 0x3405, Val: 0xCF},
	}
	if diff := cmp.Diff(want, writes(m)); diff != "" {
		t.Errorf("writes (-want +got):\n%s", diff)
	}

	cam, m, _ = newTestSensor(ParallelDVP, 0)
	if err := cam.SetLightMode(LightCloudy + 1); !errors.Is(err, ErrUnsupported) || len(m.Log()) != 0 {
		t.Errorf("unsupported light mode: err=%v accesses=%d", err, len(m.Log()))
	}
}

func TestSetColorEffect(t *testing.T) {
	tests := []struct {
		e    ColorEffect
		want []regseq.Entry
	}{
		{EffectSepia, []regseq.Entry{{Addr: 0x5001, Val: 0xFF}, {Addr: 0x5580, Val: 0x1F}, {Addr: 0x5583, Val: 0x40}, {Addr: 0x5584, Val: 0xA0}}},
		{EffectNegative, []regseq.Entry{{Addr: 0x5001, Val: 0xFF}, {Addr: 0x5580, Val: 0x47}}},
		{EffectNone, []regseq.Entry{{Addr: 0x5001, Val: 0x7F}, {Addr: 0x5580, Val: 0x07}}},
	}
	for _, tt := range tests {
		cam, m, _ := newTestSensor(ParallelDVP, 0)
		if err := cam.SetColorEffect(tt.e); err != nil {
			t.Fatalf("%v: %v", tt.e, err)
		}
		if diff := cmp.Diff(tt.want, writes(m)); diff != "" {
			t.Errorf("%v writes (-want +got):\n%s", tt.e, diff)
		}
	}

	cam, _, _ := newTestSensor(ParallelDVP, 0)
	if err := cam.SetColorEffect(ColorEffect(-1)); !errors.Is(err, ErrUnsupported) {
		t.Errorf("error = %v", err)
	}
}

func TestSetMirrorFlip(t *testing.T) {
	tests := []struct {
		m          MirrorFlip
		tc20, tc21 byte
	}{
		{MirrorFlipNone, 0x41, 0x01},
		{Flip, 0x47, 0x01},
		{Mirror, 0x41, 0x07},
		{MirrorAndFlip, 0x47, 0x07},
	}
	for _, tt := range tests {
		cam, m, _ := newTestSensor(ParallelDVP, 0)
		m.Set(regTimingTC20, 0x43)
		m.Set(regTimingTC21, 0x05)
		if err := cam.SetMirrorFlip(tt.m); err != nil {
			t.Fatalf("%v: %v", tt.m, err)
		}
		if got := m.Get(regTimingTC20); got != tt.tc20 {
			t.Errorf("%v: 0x3820 = 0x%02X, want 0x%02X", tt.m, got, tt.tc20)
		}
		if got := m.Get(regTimingTC21); got != tt.tc21 {
			t.Errorf("%v: 0x3821 = 0x%02X, want 0x%02X", tt.m, got, tt.tc21)
		}
	}
}

func TestSetZoom_ScaledByResolution(t *testing.T) {
	tests := []struct {
		res  Resolution
		zoom Zoom
		want []regseq.Entry
	}{
		{R640x480, ZoomX1, []regseq.Entry{{Addr: 0x5600, Val: 0x10}}},
		{R640x480, ZoomX2, []regseq.Entry{{Addr: 0x5600, Val: 0x00}, {Addr: 0x5601, Val: 0x08}}},
		{R320x240, ZoomX4, []regseq.Entry{{Addr: 0x5600, Val: 0x00}, {Addr: 0x5601, Val: 0x08}}},
		{R800x480, ZoomX4, []regseq.Entry{{Addr: 0x5600, Val: 0x00}, {Addr: 0x5601, Val: 0x11}}},
		{R160x120, ZoomX8, []regseq.Entry{{Addr: 0x5600, Val: 0x00}, {Addr: 0x5601, Val: 0x00}}},
	}
	for _, tt := range tests {
		cam, m, _ := newTestSensor(ParallelDVP, 0)
		if err := cam.SetResolution(tt.res); err != nil {
			t.Fatal(err)
		}
		m.ResetLog()
		if err := cam.SetZoom(tt.zoom); err != nil {
			t.Fatalf("%v %v: %v", tt.res, tt.zoom, err)
		}
		if diff := cmp.Diff(tt.want, writes(m)); diff != "" {
			t.Errorf("%v %v writes (-want +got):\n%s", tt.res, tt.zoom, diff)
		}
	}
}

func TestSetZoom_UnknownResolution(t *testing.T) {
	cam, m, _ := newTestSensor(ParallelDVP, 0)
	if err := cam.SetZoom(ZoomX2); !errors.Is(err, ErrUnknownReadback) {
		t.Errorf("error = %v, want ErrUnknownReadback", err)
	}
	if n := len(m.Writes()); n != 0 {
		t.Errorf("writes = %d, want 0", n)
	}
}

func TestSetNightMode(t *testing.T) {
	cam, m, _ := newTestSensor(ParallelDVP, 0)
	if err := cam.SetNightMode(true); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if diff := cmp.Diff([]regseq.Entry(nightModeTable), writes(m)); diff != "" {
		t.Errorf("writes (-want +got):\n%s", diff)
	}
	if err := cam.SetNightMode(false); err != nil {
		t.Fatalf("disable: %v", err)
	}
	if got := m.Get(regAECCtrl00); got != 0x78 {
		t.Errorf("0x3A00 = 0x%02X, want 0x78", got)
	}
}

func TestSetColorbar(t *testing.T) {
	tests := []struct {
		mode     Colorbar
		sde4, pt byte
	}{
		{ColorbarEnabled, 0x40, 0x80},
		{ColorbarGradualV, 0x40, 0x8C},
		{ColorbarDisabled, 0x10, 0x00},
	}
	for _, tt := range tests {
		cam, m, _ := newTestSensor(ParallelDVP, 0)
		if err := cam.SetColorbar(tt.mode); err != nil {
			t.Fatalf("%v: %v", tt.mode, err)
		}
		if m.Get(regSDECtrl4) != tt.sde4 || m.Get(regPreISPTest1) != tt.pt {
			t.Errorf("%v: 0x5584=0x%02X 0x503D=0x%02X", tt.mode, m.Get(regSDECtrl4), m.Get(regPreISPTest1))
		}
	}
	cam, _, _ := newTestSensor(ParallelDVP, 0)
	if err := cam.SetColorbar(Colorbar(3)); !errors.Is(err, ErrUnsupported) {
		t.Errorf("error = %v", err)
	}
}

func TestSetEmbeddedSync(t *testing.T) {
	cam, m, _ := newTestSensor(ParallelDVP, 0)
	codes := SyncCodes{FrameStart: 0xFF, FrameEnd: 0xFE, LineStart: 0xFD, LineEnd: 0xFC}
	if err := cam.SetEmbeddedSync(codes); err != nil {
		t.Fatalf("SetEmbeddedSync: %v", err)
	}
	want := []regseq.Entry{
		{Addr: 0x4730, Val: 0x83},
		{Addr: 0x4732, Val: 0xFF},
		{Addr: 0x4733, Val: 0xFE},
		{Addr: 0x4734, Val: 0xFD},
		{Addr: 0x4735, Val: 0xFC},
		{Addr: 0x4736, Val: 0x01},
		{Addr: 0x4302, Val: 0x02},
		{Addr: 0x4306, Val: 0x02},
		{Addr: 0x430A, Val: 0x02},
	}
	if diff := cmp.Diff(want, writes(m)); diff != "" {
		t.Errorf("writes (-want +got):\n%s", diff)
	}
}
