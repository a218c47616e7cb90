package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/ZebulonRouseFrantzich/torinstall/internal/platform"
)

// Parser represents a Lua config parser with host detection.
type Parser struct {
	detector platform.Detector
}

// NewParser creates a new config parser with the given host detector.
// A nil detector skips injecting the host table.
func NewParser(detector platform.Detector) *Parser {
	return &Parser{detector: detector}
}

// ParseFile reads and parses the config file at path.
func (p *Parser) ParseFile(ctx context.Context, path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat config: %w", err)
	}
	if info.Size() > MaxConfigSize {
		return nil, &ParseError{
			Message: "config file too large",
			Detail:  fmt.Sprintf("%s is %d bytes, maximum is %d", path, info.Size(), MaxConfigSize),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return p.ParseString(ctx, string(data))
}

// ParseString parses a Lua config from a string.
func (p *Parser) ParseString(ctx context.Context, luaCode string) (*Config, error) {
	L := newSandboxedVM()
	defer L.Close()
	L.SetContext(ctx)

	if p.detector != nil {
		desc, err := p.detector.Detect(ctx)
		if err != nil {
			return nil, fmt.Errorf("platform detection failed: %w", err)
		}
		if err := platform.InjectHostTable(L, desc); err != nil {
			return nil, fmt.Errorf("inject host table: %w", err)
		}
	}

	if err := L.DoString(luaCode); err != nil {
		return nil, &ParseError{
			Message: "Lua syntax error",
			Detail:  err.Error(),
		}
	}

	return extractConfig(L)
}

// ParseError represents a config parsing error with friendly message.
type ParseError struct {
	Message string // User-friendly message
	Detail  string // Technical details (raw Lua error)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Detail)
}

// extractConfig extracts the config from a Lua state.
// A missing torinstall table yields an empty config.
func extractConfig(L *lua.LState) (*Config, error) {
	value := L.GetGlobal(luaGlobalTorinstall)
	if value.Type() == lua.LTNil {
		return &Config{}, nil
	}

	table, ok := value.(*lua.LTable)
	if !ok {
		return nil, &ParseError{
			Message: "invalid 'torinstall' table",
			Detail:  fmt.Sprintf("expected table, got %s", value.Type()),
		}
	}

	config := &Config{}
	var err error

	if config.TargetDir, err = stringField(table, luaFieldTargetDir); err != nil {
		return nil, err
	}
	if config.ResourcesDir, err = stringField(table, luaFieldResources); err != nil {
		return nil, err
	}
	if config.LogLevel, err = stringField(table, luaFieldLogLevel); err != nil {
		return nil, err
	}

	if hostVal := table.RawGetString(luaFieldHost); hostVal.Type() != lua.LTNil {
		hostTable, ok := hostVal.(*lua.LTable)
		if !ok {
			return nil, &ParseError{
				Message: "invalid 'torinstall.host' table",
				Detail:  fmt.Sprintf("expected table, got %s", hostVal.Type()),
			}
		}
		if config.Host, err = extractHost(hostTable); err != nil {
			return nil, err
		}
	}

	if err := config.Validate(); err != nil {
		return nil, &ParseError{
			Message: "config validation failed",
			Detail:  err.Error(),
		}
	}

	return config, nil
}

// extractHost extracts descriptor overrides from a Lua table.
func extractHost(table *lua.LTable) (platform.Descriptor, error) {
	var desc platform.Descriptor
	var err error

	if desc.VMName, err = stringField(table, luaFieldVMName); err != nil {
		return desc, err
	}
	if desc.OSName, err = stringField(table, luaFieldOSName); err != nil {
		return desc, err
	}
	if desc.OSArch, err = stringField(table, luaFieldOSArch); err != nil {
		return desc, err
	}

	return desc, nil
}

// stringField reads an optional string field. nil (including the result of
// an unmatched host.when) leaves it empty.
func stringField(table *lua.LTable, name string) (string, error) {
	value := table.RawGetString(name)
	switch value.Type() {
	case lua.LTNil:
		return "", nil
	case lua.LTString:
		return value.String(), nil
	default:
		return "", &ParseError{
			Message: fmt.Sprintf("invalid '%s' field", name),
			Detail:  fmt.Sprintf("expected string, got %s", value.Type()),
		}
	}
}

// FormatError formats a ParseError for user display.
// In verbose mode, show the raw Lua error. Otherwise, show friendly message.
func FormatError(err error, verbose bool) string {
	if parseErr, ok := err.(*ParseError); ok {
		if verbose {
			return fmt.Sprintf("%s\n\nDetails:\n%s", parseErr.Message, parseErr.Detail)
		}
		// Extract the most relevant part of the error
		detail := parseErr.Detail
		if idx := strings.Index(detail, "stack traceback"); idx > 0 {
			detail = strings.TrimSpace(detail[:idx])
		}
		return fmt.Sprintf("%s: %s", parseErr.Message, detail)
	}
	return err.Error()
}
