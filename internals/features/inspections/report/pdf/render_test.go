package pdf

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ptiadmin_backend/internals/features/inspections/formschema"
	"ptiadmin_backend/internals/features/inspections/report"
)

type fakeFetcher struct {
	photos map[string][]byte
	calls  atomic.Int32
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.calls.Add(1)
	if b, ok := f.photos[url]; ok {
		return b, nil
	}
	return nil, errors.New("not found")
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: 120, B: uint8(y), A: 200})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func sampleReport() report.Report {
	n := report.NewNormalizer(formschema.NewDefaultRegistry(), time.UTC)
	return n.Normalize(map[string]any{
		"form_code": "preventive-maintenance",
		"payload": map[string]any{
			"meta":         map[string]any{"date": "2025-03-01", "lat": 14.6, "lng": -90.5},
			"submitted_by": map[string]any{"name": "Ana Gómez", "role": "tecnico", "username": "agomez"},
			"data": map[string]any{
				"formData": map[string]any{"idSitio": "X1", "nombreSitio": "Cerro Ñuñoa", "tipoTorre": "Autosoportada"},
				"checklistData": map[string]any{
					"3.4": map[string]any{"status": "malo", "value": "12", "observation": "Revisar barra"},
				},
			},
		},
	}, "", []report.Asset{
		{ID: "a1", AssetType: "maintenance:fotoTorre:photo", PublicURL: "https://cdn/ok.png"},
		{ID: "a2", AssetType: "maintenance:1.1:before", PublicURL: "https://cdn/missing.png"},
		{ID: "a3", AssetType: "maintenance:zz:photo", PublicURL: "https://cdn/ok.png"},
	})
}

func TestRenderProducesPDF(t *testing.T) {
	f := &fakeFetcher{photos: map[string][]byte{"https://cdn/ok.png": pngBytes(t, 64, 48)}}
	r := NewRenderer(f, Options{Logger: zap.NewNop(), Now: func() time.Time { return time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC) }})

	var out bytes.Buffer
	err := r.Render(context.Background(), &out, Document{SubmissionID: "sub-1", CreatedAt: time.Now(), Report: sampleReport()})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("%PDF")))
	assert.Equal(t, int32(3), f.calls.Load())
}

func TestRenderWithoutFetcher(t *testing.T) {
	r := NewRenderer(nil, Options{Logger: zap.NewNop()})
	var out bytes.Buffer
	require.NoError(t, r.Render(context.Background(), &out, Document{Report: sampleReport()}))
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("%PDF")))
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewRenderer(&fakeFetcher{}, Options{Logger: zap.NewNop()})
	err := r.Render(ctx, &bytes.Buffer{}, Document{Report: sampleReport()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPreparePhotoDownscales(t *testing.T) {
	jpg, w, h, err := preparePhoto(pngBytes(t, 400, 200), 100)
	require.NoError(t, err)
	assert.Equal(t, 100, w)
	assert.Equal(t, 50, h)
	assert.Equal(t, "image/jpeg", http.DetectContentType(jpg))

	_, _, _, err = preparePhoto([]byte("not an image"), 100)
	assert.Error(t, err)
	_, _, _, err = preparePhoto(nil, 100)
	assert.Error(t, err)
}

func TestHTTPFetcher(t *testing.T) {
	body := pngBytes(t, 4, 4)
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(2*time.Second, "service-key")
	got, err := f.Fetch(context.Background(), srv.URL+"/storage/v1/object/public/photos/a.png")
	require.NoError(t, err)
	assert.Equal(t, body, got)
	assert.Equal(t, "Bearer service-key", gotAuth)

	_, err = f.Fetch(context.Background(), srv.URL+"/missing")
	assert.ErrorContains(t, err, "status 404")
	assert.Empty(t, gotAuth)
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "Información de la Torre", heading("🗼 Información de la Torre"))
	assert.Equal(t, "Regular", plain("⚠️ Regular"))
	assert.Equal(t, "Pendiente", plain("⏳ Pendiente"))
	assert.Equal(t, "12 ohm — ok", plain("12 Ω\n—  ok"))
	assert.Equal(t, "Mediciones", heading("📏 Mediciones"))
}
