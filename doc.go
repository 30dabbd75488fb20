// Package figsearch finds the largest figure in a binary grid: the longest
// horizontal run of set cells, the longest vertical run, or the largest
// axis-aligned square whose border is fully set.
//
// Layout:
//
//	bitmap/        the validated rows×cols grid and its strict text parser/encoder
//	search/        line and square searches, parallel variants, Run/Validate
//	imaging/       image → bitmap conversion and synthetic grid generation
//	cmd/figsearch  the command-line front end (test, hline, vline, square,
//	               convert, generate)
//
// Quick example:
//
//	3 3
//	111
//	101
//	111
//
// holds a 3×3 square (only the border counts) reported as "0 0 2 2".
//
//	go install github.com/katalvlaran/figsearch/cmd/figsearch@latest
package figsearch
