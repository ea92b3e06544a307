package diffusion

import "errors"

// ErrInvalidParams indicates a grid was constructed with a missing source or
// an unusable diffusion coefficient.
var ErrInvalidParams = errors.New("diffusion: invalid grid parameters")
