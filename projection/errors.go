package projection

import "errors"

var (
	// ErrFieldOfView is reported for a field of view outside of (0, 360) degrees.
	ErrFieldOfView = errors.New("field of view must be a positive value between 0 and 360 degrees")

	// ErrDepth is reported when the far clip lies in front of the near clip.
	ErrDepth = errors.New("far clip must not be less than near clip")
)
