// Package plot describes figures as ordered lists of drawing primitives.
//
// Demo routines draw through the Renderer capability; Figure is the recording
// implementation handed to a raster backend (see ui/chart). Keeping the
// figure as plain data lets tests count primitives without rasterizing.
//
// Coordinates are data coordinates. Only Circles.Radius and marker sizes are
// in output pixels.
package plot
