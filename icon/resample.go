package icon

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Resampler scales a source image to a size x size square
type Resampler interface {
	Name() string
	Resample(src *image.NRGBA, size int) *image.NRGBA
}

var (
	// Lanczos is the default high quality filter
	Lanczos Resampler = filterResampler{name: "lanczos", filter: imaging.Lanczos}

	// CatmullRom uses golang.org/x/image/draw's cubic kernel
	CatmullRom Resampler = kernelResampler{name: "catmullrom", kernel: draw.CatmullRom}
)

// ResamplerByName looks up a resampler by its config name.
// An empty name selects Lanczos.
func ResamplerByName(name string) (Resampler, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "lanczos":
		return Lanczos, nil
	case "catmullrom", "catmull-rom":
		return CatmullRom, nil
	default:
		return nil, fmt.Errorf("unknown resampler '%s'", name)
	}
}

type filterResampler struct {
	name   string
	filter imaging.ResampleFilter
}

func (r filterResampler) Name() string { return r.name }

func (r filterResampler) Resample(src *image.NRGBA, size int) *image.NRGBA {
	return imaging.Resize(src, size, size, r.filter)
}

type kernelResampler struct {
	name   string
	kernel *draw.Kernel
}

func (r kernelResampler) Name() string { return r.name }

func (r kernelResampler) Resample(src *image.NRGBA, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	if size <= 0 {
		return dst
	}
	r.kernel.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
