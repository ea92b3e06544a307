// Package source builds the immutable heat-source mask from a grayscale image.
//
// Supported formats are whatever [image.Decode] knows about: PNG, JPEG and GIF
// from the standard library plus BMP, TIFF and WebP from golang.org/x/image.
// Images larger than the grid are rejected with [ErrImageTooLarge]; anything
// that cannot be read or decoded yields [ErrImageLoad].
package source
