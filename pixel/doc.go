// Package pixel implements the packed color formats found in Linux framebuffers.
//
// The types are compatible with Go's native [color.Color] and [image.Image] /
// [draw.Image] interfaces, so a framebuffer can be sampled for colors and drawn
// on like any other image.
package pixel
