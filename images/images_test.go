package images

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"go.uber.org/zap/zaptest"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="40" height="20"><rect width="40" height="20" fill="red"/></svg>`

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("unable to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestNamed(t *testing.T) {
	assets := fstest.MapFS{
		"icon.png":  {Data: encodePNG(t, 8, 8)},
		"exact":     {Data: encodePNG(t, 4, 4)},
		"logo.svg":  {Data: []byte(testSVG)},
		"broken.png": {Data: []byte("not an image")},
	}
	r := NewResolver(WithAssets(assets), WithLogger(zaptest.NewLogger(t)))

	t.Run("extension probing", func(t *testing.T) {
		att, err := r.Named(context.Background(), "icon")
		if err != nil {
			t.Fatalf("Named() error = %v", err)
		}
		if att == nil {
			t.Fatal("Named() returned nil attachment")
		}
		if att.ID != "icon" || att.Name != "icon" {
			t.Errorf("attachment identity = %q/%q, want icon", att.ID, att.Name)
		}
		if att.Bounds.Dx() != 8 || att.Bounds.Dy() != 8 {
			t.Errorf("bounds = %v, want 8x8", att.Bounds)
		}
		if att.Format != "png" {
			t.Errorf("format = %q, want png", att.Format)
		}
	})

	t.Run("exact name first", func(t *testing.T) {
		att, err := r.Named(context.Background(), "exact")
		if err != nil || att == nil {
			t.Fatalf("Named() = %v, %v", att, err)
		}
		if att.Bounds.Dx() != 4 {
			t.Errorf("bounds = %v, want the extensionless asset", att.Bounds)
		}
	})

	t.Run("svg asset", func(t *testing.T) {
		att, err := r.Named(context.Background(), "logo")
		if err != nil || att == nil {
			t.Fatalf("Named() = %v, %v", att, err)
		}
		if att.Format != "svg" {
			t.Errorf("format = %q, want svg", att.Format)
		}
		if att.Bounds.Dx() != 40 || att.Bounds.Dy() != 20 {
			t.Errorf("bounds = %v, want intrinsic 40x20", att.Bounds)
		}
	})

	t.Run("absence is not an error", func(t *testing.T) {
		att, err := r.Named(context.Background(), "missing")
		if err != nil {
			t.Fatalf("Named() error = %v, want nil", err)
		}
		if att != nil {
			t.Errorf("Named() = %v, want nil attachment", att)
		}
	})

	t.Run("undecodable asset is an error", func(t *testing.T) {
		if _, err := r.Named(context.Background(), "broken"); err == nil {
			t.Error("Named() should fail for undecodable data")
		}
	})

	t.Run("no assets configured", func(t *testing.T) {
		bare := NewResolver()
		att, err := bare.Named(context.Background(), "icon")
		if err != nil || att != nil {
			t.Errorf("Named() = %v, %v, want nil, nil", att, err)
		}
	})
}

func TestRemote(t *testing.T) {
	data := encodePNG(t, 6, 3)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/ok.png":
			w.Write(data)
		case "/missing":
			http.NotFound(w, req)
		default:
			w.Write([]byte("junk"))
		}
	}))
	defer srv.Close()

	r := NewResolver(WithClient(srv.Client()), WithLogger(zaptest.NewLogger(t)))

	t.Run("success", func(t *testing.T) {
		att, err := r.Remote(context.Background(), srv.URL+"/ok.png")
		if err != nil {
			t.Fatalf("Remote() error = %v", err)
		}
		if att.Bounds.Dx() != 6 || att.Bounds.Dy() != 3 {
			t.Errorf("bounds = %v, want 6x3", att.Bounds)
		}
		if att.ID == "" {
			t.Error("attachment ID not assigned")
		}
		if att.Source != srv.URL+"/ok.png" {
			t.Errorf("source = %q, want request URL", att.Source)
		}
	})

	t.Run("http error status", func(t *testing.T) {
		if _, err := r.Remote(context.Background(), srv.URL+"/missing"); err == nil {
			t.Error("Remote() should fail for 404")
		}
	})

	t.Run("undecodable body", func(t *testing.T) {
		if _, err := r.Remote(context.Background(), srv.URL+"/junk"); err == nil {
			t.Error("Remote() should fail for junk body")
		}
	})

	t.Run("size limit", func(t *testing.T) {
		limited := NewResolver(WithClient(srv.Client()), WithLimit(10))
		if _, err := limited.Remote(context.Background(), srv.URL+"/ok.png"); err == nil {
			t.Error("Remote() should fail when body exceeds limit")
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := r.Remote(ctx, srv.URL+"/ok.png"); err == nil {
			t.Error("Remote() should fail for canceled context")
		}
	})
}

func TestFit(t *testing.T) {
	t.Run("no-op when it fits", func(t *testing.T) {
		att := decodeTest(t, encodePNG(t, 10, 10))
		Fit(att, 20, 20)
		if att.Bounds.Dx() != 10 || att.Bounds.Dy() != 10 {
			t.Errorf("bounds = %v, want untouched 10x10", att.Bounds)
		}
	})

	t.Run("scales down keeping aspect", func(t *testing.T) {
		att := decodeTest(t, encodePNG(t, 40, 20))
		Fit(att, 10, 10)
		if att.Bounds.Dx() != 10 || att.Bounds.Dy() != 5 {
			t.Errorf("bounds = %v, want 10x5", att.Bounds)
		}
	})

	t.Run("svg re-rasterized", func(t *testing.T) {
		att := decodeTest(t, []byte(testSVG))
		Fit(att, 10, 10)
		if att.Bounds.Dx() != 10 || att.Bounds.Dy() != 5 {
			t.Errorf("bounds = %v, want vector refit 10x5", att.Bounds)
		}
	})

	t.Run("non-positive box ignored", func(t *testing.T) {
		att := decodeTest(t, encodePNG(t, 40, 20))
		Fit(att, 0, 10)
		if att.Bounds.Dx() != 40 {
			t.Errorf("bounds = %v, want untouched", att.Bounds)
		}
	})

	t.Run("nil attachment", func(t *testing.T) {
		Fit(nil, 10, 10) // must not panic
	})
}

func decodeTest(t *testing.T, data []byte) *Attachment {
	t.Helper()
	r := NewResolver()
	att, err := r.decode(data, "test")
	if err != nil {
		t.Fatalf("decode() error = %v", err)
	}
	return att
}

func TestLooksLikeSVG(t *testing.T) {
	tests := []struct {
		name string
		data string
		want bool
	}{
		{"plain svg", testSVG, true},
		{"xml prolog", `<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"/>`, true},
		{"leading whitespace", "\n\t" + testSVG, true},
		{"png magic", "\x89PNG\r\n", false},
		{"xml but not svg", `<?xml version="1.0"?><root/>`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := looksLikeSVG([]byte(tt.data)); got != tt.want {
				t.Errorf("looksLikeSVG() = %v, want %v", got, tt.want)
			}
		})
	}
}
