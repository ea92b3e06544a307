// Package export turns fields and sample series into files: PNG and SVG
// snapshots, go-chart line charts and MJPEG recordings.
package export
