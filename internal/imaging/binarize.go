package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
)

const (
	// DefaultThresholdWindow is the side of the square neighborhood used by
	// the locally-adaptive threshold.
	DefaultThresholdWindow = 15

	// thresholdBias is subtracted from the local mean before comparing, so
	// flat paper regions do not flip to ink on sensor noise alone.
	thresholdBias = 2
)

// GrayPlane converts an image to a row-major luminance plane.
func GrayPlane(img image.Image) [][]uint8 {
	gray := effect.Grayscale(img)
	bounds := gray.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	plane := make([][]uint8, height)
	for y := 0; y < height; y++ {
		plane[y] = make([]uint8, width)
		row := gray.Pix[y*gray.Stride:]
		for x := 0; x < width; x++ {
			// Grayscale output has R = G = B; sample the red channel.
			plane[y][x] = row[x*4]
		}
	}
	return plane
}

// InkMask binarizes an image with a locally-adaptive threshold and inverts
// the result so ink (dark strokes on paper) becomes foreground.
//
// Each pixel is compared against the mean luminance of the window-sized
// square neighborhood around it, computed in O(1) per pixel from a summed
// area table. A pixel is ink when it is darker than that local mean by more
// than a small bias, which keeps the mask stable under uneven lighting where
// a single global threshold would drop half the page.
func InkMask(img image.Image, window int) [][]bool {
	if window < 3 {
		window = DefaultThresholdWindow
	}
	plane := GrayPlane(img)
	height := len(plane)
	if height == 0 {
		return nil
	}
	width := len(plane[0])

	// Summed area table with a zero row/column border.
	integral := make([][]int64, height+1)
	integral[0] = make([]int64, width+1)
	for y := 1; y <= height; y++ {
		integral[y] = make([]int64, width+1)
		var rowSum int64
		for x := 1; x <= width; x++ {
			rowSum += int64(plane[y-1][x-1])
			integral[y][x] = integral[y-1][x] + rowSum
		}
	}

	half := window / 2
	mask := make([][]bool, height)
	for y := 0; y < height; y++ {
		mask[y] = make([]bool, width)
		y0 := maxInt(0, y-half)
		y1 := minInt(height-1, y+half)
		for x := 0; x < width; x++ {
			x0 := maxInt(0, x-half)
			x1 := minInt(width-1, x+half)

			area := int64((y1 - y0 + 1) * (x1 - x0 + 1))
			sum := integral[y1+1][x1+1] - integral[y0][x1+1] - integral[y1+1][x0] + integral[y0][x0]
			mean := sum / area

			mask[y][x] = int64(plane[y][x]) < mean-thresholdBias
		}
	}
	return mask
}

// OpenHorizontal applies a morphological opening with a length x 1 horizontal
// structuring element: erosion followed by dilation. Strokes shorter than
// length pixels disappear while long horizontal runs (staff lines) survive
// at their original extent. Vertical structure is untouched by construction.
func OpenHorizontal(mask [][]bool, length int) [][]bool {
	height := len(mask)
	if height == 0 || length < 2 {
		return mask
	}
	width := len(mask[0])
	half := length / 2

	eroded := make([][]bool, height)
	for y := 0; y < height; y++ {
		eroded[y] = make([]bool, width)
		run := 0
		for x := 0; x < width; x++ {
			if mask[y][x] {
				run++
			} else {
				run = 0
			}
			// A pixel survives erosion when every pixel of the element fits;
			// mark the element's center once a full run is seen.
			if run >= length {
				eroded[y][x-half] = true
			}
		}
	}

	dilated := make([][]bool, height)
	for y := 0; y < height; y++ {
		dilated[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			if !eroded[y][x] {
				continue
			}
			x0 := maxInt(0, x-half)
			x1 := minInt(width-1, x+(length-1-half))
			for dx := x0; dx <= x1; dx++ {
				dilated[y][dx] = true
			}
		}
	}
	return dilated
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
