//go:build dev || debug

package devtools

// debugBuild is true for `wails dev` and `wails build -debug` binaries.
const debugBuild = true
