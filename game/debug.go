package game

// DebugState holds global debug flags that persist across window restarts
type DebugState struct {
	ShowHUD bool // Show particle counts and TPS
}

// Global debug state instance
var globalDebugState = &DebugState{
	ShowHUD: false,
}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}
