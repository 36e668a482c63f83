package preprocess

import (
	"errors"
	"image"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/mat"
)

// blurSigma is the Gaussian sigma applied before synthesis to knock down
// sensor noise without losing edges.
const blurSigma = 0.3

// ErrDecode indicates the uploaded bytes are not a decodable image.
var ErrDecode = errors.New("preprocess: could not decode image data")

// DecodeDarkness decodes raw uploaded image bytes and produces the darkness
// matrix through OpenCV: grayscale decode, aspect-preserving area resize
// onto a white square, mean-anchored contrast stretch, light Gaussian blur,
// and inversion. This is the path the HTTP server uses; FromImage covers
// already-decoded images.
func DecodeDarkness(data []byte) (*mat.Dense, error) {
	src, err := gocv.IMDecode(data, gocv.IMReadGrayScale)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	if src.Empty() {
		return nil, ErrDecode
	}

	nw, nh := fitInto(src.Cols(), src.Rows(), TargetSize)

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(src, &resized, image.Pt(nw, nh), 0, 0, gocv.InterpolationArea)

	square := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 0, 0, 0),
		TargetSize, TargetSize, gocv.MatTypeCV8U)
	defer square.Close()

	offX := (TargetSize - nw) / 2
	offY := (TargetSize - nh) / 2
	roi := square.Region(image.Rect(offX, offY, offX+nw, offY+nh))
	resized.CopyTo(&roi)
	roi.Close()

	// Contrast stretch around the mean gray level.
	mean := square.Mean()
	contrasted := gocv.NewMat()
	defer contrasted.Close()
	square.ConvertToWithParams(&contrasted, gocv.MatTypeCV8U,
		contrastFactor, float32((1-contrastFactor)*mean.Val1))

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(contrasted, &blurred, image.Pt(3, 3), blurSigma, blurSigma, gocv.BorderDefault)

	inverted := gocv.NewMat()
	defer inverted.Close()
	gocv.BitwiseNot(blurred, &inverted)

	out := mat.NewDense(TargetSize, TargetSize, nil)
	for y := 0; y < TargetSize; y++ {
		for x := 0; x < TargetSize; x++ {
			out.Set(y, x, float64(inverted.GetUCharAt(y, x)))
		}
	}
	return out, nil
}
