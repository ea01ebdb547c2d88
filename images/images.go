// Package images resolves named and remote images into inline attachments
// for the markup resolver. Decoding covers the stdlib formats plus BMP, TIFF
// and WEBP through x/image, with SVG rasterized into the requested box.
// Image loading never fails a resolution pass - a missing image is reported
// to the caller who simply skips the insertion.
package images

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Attachment is a resolved inline image ready to be spliced into a styled
// buffer under the attachment attribute key.
type Attachment struct {
	ID     string
	Name   string
	Source string
	Image  image.Image
	Data   []byte
	Format string
	Bounds image.Rectangle
}

// Source resolves an image by name. Returning (nil, nil) means "not found,
// skip the insertion" - that is not an error.
type Source func(ctx context.Context, name string, attrs map[string]string) (image.Image, error)

const defaultFetchLimit = 32 << 20 // 32 MiB

// assetExtensions are tried in order when a named lookup misses the exact name.
var assetExtensions = []string{"", ".png", ".jpg", ".jpeg", ".gif", ".svg"}

// Resolver loads images from an asset FS and over HTTP.
type Resolver struct {
	assets fs.FS
	client *http.Client
	limit  int64
	log    *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithAssets supplies the FS used as named-image fallback.
func WithAssets(assets fs.FS) Option {
	return func(r *Resolver) { r.assets = assets }
}

// WithClient replaces the HTTP client used for remote fetches.
func WithClient(client *http.Client) Option {
	return func(r *Resolver) { r.client = client }
}

// WithLimit caps remote response body size in bytes.
func WithLimit(limit int64) Option {
	return func(r *Resolver) { r.limit = limit }
}

// WithLogger supplies the logger, named "images".
func WithLogger(log *zap.Logger) Option {
	return func(r *Resolver) { r.log = log.Named("images") }
}

// NewResolver creates a resolver with the default HTTP client and size limit.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		client: http.DefaultClient,
		limit:  defaultFetchLimit,
		log:    zap.NewNop(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Named resolves a local image by name from the asset FS. Returns (nil, nil)
// when no assets are configured or the name is not there - absence is not an
// error, the caller skips the insertion.
func (r *Resolver) Named(ctx context.Context, name string) (*Attachment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.assets == nil {
		return nil, nil
	}
	for _, ext := range assetExtensions {
		data, err := fs.ReadFile(r.assets, name+ext)
		if err != nil {
			continue
		}
		att, err := r.decode(data, name+ext)
		if err != nil {
			return nil, fmt.Errorf("asset %q: %w", name+ext, err)
		}
		att.ID = name
		att.Name = name
		return att, nil
	}
	r.log.Debug("Named image not found in assets", zap.String("name", name))
	return nil, nil
}

// Remote fetches and decodes an image over HTTP. The fetch is synchronous
// and context-aware - it completes before the caller splices the attachment,
// keeping later range offsets valid.
func (r *Resolver) Remote(ctx context.Context, rawURL string) (*Attachment, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("bad image url %q: %w", rawURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch image %q: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unable to fetch image %q: %s", rawURL, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, r.limit+1))
	if err != nil {
		return nil, fmt.Errorf("unable to read image %q: %w", rawURL, err)
	}
	if int64(len(data)) > r.limit {
		return nil, fmt.Errorf("image %q exceeds size limit %d", rawURL, r.limit)
	}

	att, err := r.decode(data, rawURL)
	if err != nil {
		return nil, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("unable to generate attachment ID: %w", err)
	}
	att.ID = id.String()
	return att, nil
}

// decode sniffs the format and decodes data into an attachment. SVG is
// detected textually (filetype only knows magic numbers) and rasterized at
// its intrinsic size.
func (r *Resolver) decode(data []byte, source string) (*Attachment, error) {
	if looksLikeSVG(data) {
		img, err := rasterizeSVG(data, 0, 0)
		if err != nil {
			return nil, fmt.Errorf("unable to rasterize SVG %q: %w", source, err)
		}
		return &Attachment{Source: source, Image: img, Data: data, Format: "svg", Bounds: img.Bounds()}, nil
	}

	format := "unknown"
	if t, err := filetype.Match(data); err == nil && t != filetype.Unknown {
		format = t.Extension
	}
	img, decoded, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to decode image %q (%s): %w", source, format, err)
	}
	return &Attachment{Source: source, Image: img, Data: data, Format: decoded, Bounds: img.Bounds()}, nil
}

// Fit scales the attachment image down to fit the target box keeping aspect
// ratio. Non-positive dimensions leave the attachment untouched.
func Fit(att *Attachment, width, height int) {
	if att == nil || att.Image == nil || width <= 0 || height <= 0 {
		return
	}
	b := att.Image.Bounds()
	if b.Dx() <= width && b.Dy() <= height {
		att.Bounds = image.Rect(0, 0, b.Dx(), b.Dy())
		return
	}
	if att.Format == "svg" {
		// rasterize vector data again instead of scaling pixels
		if img, err := rasterizeSVG(att.Data, width, height); err == nil {
			att.Image = img
			att.Bounds = img.Bounds()
			return
		}
	}
	att.Image = imaging.Fit(att.Image, width, height, imaging.Lanczos)
	att.Bounds = att.Image.Bounds()
}

func looksLikeSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	s := strings.TrimSpace(string(head))
	return strings.HasPrefix(s, "<svg") || strings.HasPrefix(s, "<?xml") && strings.Contains(s, "<svg")
}
