package config

// Lua schema field names and globals
const (
	luaGlobalTorinstall = "torinstall"
	luaFieldTargetDir   = "target_dir"
	luaFieldResources   = "resources_dir"
	luaFieldLogLevel    = "log_level"
	luaFieldHost        = "host"
	luaFieldVMName      = "vm_name"
	luaFieldOSName      = "os_name"
	luaFieldOSArch      = "os_arch"
)

const (
	// AppName names the XDG subdirectories used by torinstall.
	AppName = "torinstall"

	// FileName is the config file name searched for in the XDG config dirs.
	FileName = "torinstall.lua"

	// MaxConfigSize is the largest config file accepted.
	MaxConfigSize = 1 << 20
)

// validLogLevels lists the accepted log_level values.
var validLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}
