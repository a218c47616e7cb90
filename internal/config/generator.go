package config

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/ZebulonRouseFrantzich/torinstall/internal/platform"
)

// Generator generates Lua configuration code from Go structs.
type Generator struct {
	indent string // Indentation string (default: two spaces)
	now    func() time.Time
}

// NewGenerator creates a new Lua config generator.
func NewGenerator() *Generator {
	return &Generator{
		indent: "  ",
		now:    time.Now,
	}
}

// Generate generates Lua code from a Config struct.
// Empty fields are written as comments showing the option.
func (g *Generator) Generate(config *Config) string {
	var buf bytes.Buffer

	buf.WriteString("-- torinstall configuration\n")
	buf.WriteString("-- Generated: ")
	buf.WriteString(g.now().Format(time.RFC3339))
	buf.WriteString("\n--\n")
	buf.WriteString("-- The read-only 'host' table describes this machine, e.g.\n")
	buf.WriteString("--   target_dir = host.when(host.is_windows, \"C:/Tor\") or \"/opt/tor\",\n\n")

	buf.WriteString(luaGlobalTorinstall)
	buf.WriteString(" = {\n")

	g.writeString(&buf, 1, luaFieldTargetDir, config.TargetDir)
	g.writeString(&buf, 1, luaFieldResources, config.ResourcesDir)
	g.writeString(&buf, 1, luaFieldLogLevel, config.LogLevel)
	g.writeHost(&buf, config.Host)

	buf.WriteString("}\n")

	return buf.String()
}

// writeHost writes the host override section to the buffer.
func (g *Generator) writeHost(buf *bytes.Buffer, host platform.Descriptor) {
	if host == (platform.Descriptor{}) {
		buf.WriteString(g.indent)
		buf.WriteString("-- host = { vm_name = \"\", os_name = \"\", os_arch = \"\" },\n")
		return
	}

	buf.WriteString(g.indent)
	buf.WriteString(luaFieldHost)
	buf.WriteString(" = {\n")
	g.writeString(buf, 2, luaFieldVMName, host.VMName)
	g.writeString(buf, 2, luaFieldOSName, host.OSName)
	g.writeString(buf, 2, luaFieldOSArch, host.OSArch)
	buf.WriteString(g.indent)
	buf.WriteString("},\n")
}

// writeString writes a string field, or a commented placeholder when empty.
func (g *Generator) writeString(buf *bytes.Buffer, depth int, name, value string) {
	buf.WriteString(strings.Repeat(g.indent, depth))
	if value == "" {
		buf.WriteString(fmt.Sprintf("-- %s = \"\",\n", name))
		return
	}
	buf.WriteString(fmt.Sprintf("%s = %s,\n", name, g.quoteLuaString(value)))
}

// quoteLuaString quotes a string for Lua, handling special characters.
func (g *Generator) quoteLuaString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\") // Escape backslashes first
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return "\"" + s + "\""
}
