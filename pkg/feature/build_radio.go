//go:build ncp_radio

package feature

// CompiledProfile names the profile baked into this build.
const CompiledProfile = "radio"
