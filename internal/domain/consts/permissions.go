package consts

// File permissions
const (
	PermsOutputDir  = 0o755
	PermsCookieFile = 0o600
	PermsLogFile    = 0o644
)
