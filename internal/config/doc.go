// Package config provides Lua configuration parsing and generation for
// torinstall.
//
// # Overview
//
// Configuration is optional. When present it is a Lua file that sets a
// global torinstall table:
//
//	torinstall = {
//	  target_dir = host.when(host.is_windows, "C:/Tor") or "/opt/tor",
//	  resources_dir = "/srv/tor-bundles",
//	  log_level = "info",
//	  host = { os_arch = "i686" },
//	}
//
// Every field may be omitted. The file is searched for as
// torinstall/torinstall.lua in the XDG config directories unless a path is
// given explicitly.
//
// # Host Table
//
// Before user code runs, a read-only host table is injected with the
// detected host descriptor and its resolved platform (see
// platform.InjectHostTable), so configs can branch on the host.
//
// # Security Model
//
// User Lua code runs in a restricted sandbox that prevents:
//   - System command execution (os.execute, os.exit, etc.)
//   - Filesystem access (io.open, io.popen, etc.)
//   - External code loading (require, dofile, loadfile, etc.)
//
// Config files larger than MaxConfigSize are rejected before parsing.
package config
