// Package imaging handles image decoding and the binarization steps that
// precede staff-line detection.
//
// The preprocessing chain is: decode -> grayscale -> locally-adaptive
// threshold with ink as foreground -> wide horizontal morphological opening.
// After the chain only long horizontal strokes remain, which is exactly the
// input the staff detector's line transform wants.
//
// Decoding goes through the disintegration/imaging codec set so JPEG, PNG,
// BMP and TIFF uploads are all handled uniformly; grayscale conversion uses
// bild. The adaptive threshold and the rectangular opening are implemented
// here because neither library offers windowed thresholding or non-square
// structuring elements.
package imaging
