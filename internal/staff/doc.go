// Package staff detects staff systems: groups of five roughly-equispaced
// horizontal lines on which musical symbols are positioned.
//
// Detection is purely geometric. The page is binarized and opened so only
// long horizontal strokes remain, those strokes are traced into line
// segments (bridging the gaps that note heads punch through staff lines),
// each segment collapses to its vertical midpoint, and a sliding window of
// five midpoints accepts every group whose inter-line spacings stay within
// 20% of their mean.
//
// Finding no staves is a soft failure: Detect returns an empty
// slice and callers continue with the synthetic Fallback staff, so a blank
// or badly lit photo still produces a (degraded) transcription instead of
// an error.
package staff
