// Package filter provides the softening pass for burst images.
//
// The Gaussian blur is separable: a horizontal pass into a float32 buffer
// followed by a vertical pass back to 8-bit, O(w*h*(rx+ry)). Edges are
// extended by clamping. Images are premultiplied *image.RGBA, so
// translucent pixels blur without colour fringes.
package filter
