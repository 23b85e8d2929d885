//go:build !dev && !debug

package devtools

const debugBuild = false
