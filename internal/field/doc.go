// Package field provides the fixed-size scalar grid shared by the source mask
// and the temperature field.
//
// Cells are addressed as (x, y) with x in [0, W) and y in [0, H). Row 0 is the
// bottom of the simulation domain; renderers that draw top-down must flip y.
package field
