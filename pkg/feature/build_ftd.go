//go:build !ncp_mtd && !ncp_radio

package feature

// CompiledProfile names the profile baked into this build.
const CompiledProfile = "ftd"
