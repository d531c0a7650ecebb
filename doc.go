// Package colorspector names screen colors.
//
// A [Sample] is a single 24-bit RGB pixel value. [Nearest] maps it to the closest
// entry of the [CSS] named color palette and returns its name together with the
// #RRGGBB hex code of the sample. Custom palettes and the perceptual L*a*b*
// metric are available through [Namer].
//
// The capture, framebuffer, picker, panel and tui packages build a screen
// color picker around this.
package colorspector
