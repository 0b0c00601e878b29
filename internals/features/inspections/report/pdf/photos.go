package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/image/webp"
)

// PhotoFetcher downloads the bytes behind an asset URL.
type PhotoFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

const maxPhotoBytes = 15 << 20

// HTTPFetcher reads public storage URLs. When ServiceKey is set it is sent
// as bearer token so private buckets resolve too.
type HTTPFetcher struct {
	Client     *http.Client
	ServiceKey string
}

func NewHTTPFetcher(timeout time.Duration, serviceKey string) *HTTPFetcher {
	return &HTTPFetcher{
		Client:     &http.Client{Timeout: timeout},
		ServiceKey: serviceKey,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if f.ServiceKey != "" && strings.Contains(url, "/storage/v1/object/") {
		req.Header.Set("Authorization", "Bearer "+f.ServiceKey)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch photo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch photo: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPhotoBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}
	if len(body) > maxPhotoBytes {
		return nil, fmt.Errorf("photo larger than %d bytes", maxPhotoBytes)
	}
	return body, nil
}

/* ===============================
   Decode + prepare for embedding
=================================*/

func decodePhoto(raw []byte) (image.Image, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty photo")
	}
	head := raw
	if len(head) > 512 {
		head = head[:512]
	}
	if strings.Contains(http.DetectContentType(head), "webp") {
		return webp.Decode(bytes.NewReader(raw))
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode photo: %w", err)
	}
	return img, nil
}

// preparePhoto downscales to fit maxPx, flattens transparency on white and
// re-encodes as JPEG, the one format every PDF reader handles.
func preparePhoto(raw []byte, maxPx int) ([]byte, int, int, error) {
	img, err := decodePhoto(raw)
	if err != nil {
		return nil, 0, 0, err
	}
	b := img.Bounds()
	if maxPx > 0 && (b.Dx() > maxPx || b.Dy() > maxPx) {
		img = imaging.Fit(img, maxPx, maxPx, imaging.Lanczos)
	}
	b = img.Bounds()
	flat := imaging.New(b.Dx(), b.Dy(), color.White)
	flat = imaging.Overlay(flat, img, image.Pt(0, 0), 1.0)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flat, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return nil, 0, 0, fmt.Errorf("encode photo: %w", err)
	}
	return buf.Bytes(), b.Dx(), b.Dy(), nil
}
