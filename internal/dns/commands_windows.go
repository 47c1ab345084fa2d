package dns

// DefaultCommands returns the commands for this platform.
func DefaultCommands() CommandSet { return NetshCommands() }
