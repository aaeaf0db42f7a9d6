// Package projection builds perspective projection matrices.
//
//	m := projection.New().
//		WithFov(100).
//		WithNear(5).
//		WithFar(500).
//		WithWidth(1920).
//		WithHeight(1080).
//		Build()
//
// The matrix is row major, m[row][column], and maps view space to clip
// space before the perspective divide. Out of range parameters are
// programmer errors: WithFov panics for a field of view outside of
// (0, 360) degrees and Build panics if the far clip is less than the near
// clip. Config.Validate and Builder.TryBuild report the same conditions as
// errors.
//
// A zero height or equal clip planes are not rejected, the matrix then
// contains non finite values.
package projection
