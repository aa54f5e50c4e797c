package rage

import (
	"bytes"
	"fmt"
	"image"
	"io/fs"
	"log/slog"

	// Decoders available to LoadImage.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageResource is an Ebitengine image that may still be loading.
// Resources created by Stage.LoadImage are decoded in the background and
// become ready during a later Stage.Refresh, on the loop goroutine.
type ImageResource struct {
	locator string
	img     *ebiten.Image
	width   float64
	height  float64
	loaded  bool
	err     error
	onLoad  []func()
}

// NewImageResource wraps an already decoded image. It is loaded immediately.
func NewImageResource(img *ebiten.Image) *ImageResource {
	r := &ImageResource{}
	r.complete(img)
	return r
}

// Locator returns the path the resource was requested from, if any.
func (r *ImageResource) Locator() string { return r.locator }

// Size returns the natural size, or (0, 0) before the image has loaded.
func (r *ImageResource) Size() (width, height float64) { return r.width, r.height }

// Loaded reports whether the image is ready to draw.
func (r *ImageResource) Loaded() bool { return r.loaded }

// Err returns the load failure, if any.
func (r *ImageResource) Err() error { return r.err }

// EbitenImage returns the underlying image, or nil before it has loaded.
func (r *ImageResource) EbitenImage() *ebiten.Image { return r.img }

// OnLoad registers fn to run once the image is ready. If it is already
// loaded fn runs immediately.
func (r *ImageResource) OnLoad(fn func()) {
	if r.loaded {
		fn()
		return
	}
	r.onLoad = append(r.onLoad, fn)
}

func (r *ImageResource) complete(img *ebiten.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	r.img = img
	r.width, r.height = float64(b.Dx()), float64(b.Dy())
	r.loaded = true
	callbacks := r.onLoad
	r.onLoad = nil
	for _, fn := range callbacks {
		fn()
	}
}

// LoadImage starts decoding the image at locator from the stage's asset file
// system. The returned resource becomes loaded during a later Refresh; on
// failure Err is set and no load callbacks run.
func (s *Stage) LoadImage(locator string) *ImageResource {
	r := &ImageResource{locator: locator}
	s.loader.load(r)
	return r
}

// PendingImages returns the number of images still decoding.
func (s *Stage) PendingImages() int {
	return s.loader.pending
}

// --- Loader ---

type loadResult struct {
	res *ImageResource
	img image.Image
	err error
}

// imageLoader decodes images on worker goroutines and hands results back to
// the loop through a channel, so resources only change state inside Refresh.
type imageLoader struct {
	fsys    fs.FS
	results chan loadResult
	pending int
}

const loaderResultBuffer = 16

func (l *imageLoader) init(fsys fs.FS) {
	l.fsys = fsys
	l.results = make(chan loadResult, loaderResultBuffer)
}

func (l *imageLoader) load(r *ImageResource) {
	l.pending++
	fsys := l.fsys
	go func() {
		img, err := decodeImage(fsys, r.locator)
		l.results <- loadResult{res: r, img: img, err: err}
	}()
}

// drain applies every finished load without blocking.
func (l *imageLoader) drain(logger *slog.Logger) {
	for l.pending > 0 {
		select {
		case res := <-l.results:
			l.pending--
			if res.err != nil {
				res.res.err = res.err
				logger.Error("image load failed", "locator", res.res.locator, "err", res.err)
				continue
			}
			res.res.complete(ebiten.NewImageFromImage(res.img))
		default:
			return
		}
	}
}

func decodeImage(fsys fs.FS, locator string) (image.Image, error) {
	data, err := fs.ReadFile(fsys, locator)
	if err != nil {
		return nil, fmt.Errorf("rage: read image %s: %w", locator, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("rage: decode image %s: %w", locator, err)
	}
	return img, nil
}
