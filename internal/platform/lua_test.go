package platform

import (
	"strings"
	"testing"

	lua "github.com/yuin/gopher-lua"
)

func runHostChecks(t *testing.T, L *lua.LState, tests []struct {
	name string
	code string
	want lua.LValue
}) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := L.DoString(tt.code); err != nil {
				t.Fatalf("failed to execute code: %v", err)
			}
			got := L.Get(-1)
			L.Pop(1)

			if got.Type() != tt.want.Type() {
				t.Errorf("type mismatch: got %v, want %v", got.Type(), tt.want.Type())
				return
			}

			if got.String() != tt.want.String() {
				t.Errorf("value mismatch: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInjectHostTable_Linux(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	desc := Descriptor{VMName: "Go go1.25", OSName: "Linux", OSArch: "x86_64"}
	if err := InjectHostTable(L, desc); err != nil {
		t.Fatalf("InjectHostTable() error = %v", err)
	}

	runHostChecks(t, L, []struct {
		name string
		code string
		want lua.LValue
	}{
		{"vm_name", `return host.vm_name`, lua.LString("Go go1.25")},
		{"os_name", `return host.os_name`, lua.LString("Linux")},
		{"os_arch", `return host.os_arch`, lua.LString("x86_64")},
		{"platform", `return host.platform`, lua.LString("linux-64")},
		{"is_linux", `return host.is_linux`, lua.LTrue},
		{"is_windows", `return host.is_windows`, lua.LFalse},
		{"is_mac", `return host.is_mac`, lua.LFalse},
		{"is_android", `return host.is_android`, lua.LFalse},
		{"is_64bit", `return host.is_64bit`, lua.LTrue},
		{"is_supported", `return host.is_supported`, lua.LTrue},
		{"when true", `return host.when(host.is_linux, "/opt/tor")`, lua.LString("/opt/tor")},
		{"when false", `return host.when(host.is_windows, "C:/tor")`, lua.LNil},
	})
}

func TestInjectHostTable_Android(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	desc := Descriptor{VMName: "Dalvik", OSName: "Linux", OSArch: "aarch64"}
	if err := InjectHostTable(L, desc); err != nil {
		t.Fatalf("InjectHostTable() error = %v", err)
	}

	runHostChecks(t, L, []struct {
		name string
		code string
		want lua.LValue
	}{
		{"platform", `return host.platform`, lua.LString("android")},
		{"is_android", `return host.is_android`, lua.LTrue},
		{"is_linux", `return host.is_linux`, lua.LFalse},
		{"is_64bit", `return host.is_64bit`, lua.LFalse},
	})
}

func TestInjectHostTable_Unsupported(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	if err := InjectHostTable(L, Descriptor{OSName: "SunOS", OSArch: "sparcv9"}); err != nil {
		t.Fatalf("InjectHostTable() error = %v", err)
	}

	runHostChecks(t, L, []struct {
		name string
		code string
		want lua.LValue
	}{
		{"platform", `return host.platform`, lua.LString("unsupported")},
		{"is_supported", `return host.is_supported`, lua.LFalse},
	})
}

func TestHostTable_ReadOnly(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	if err := InjectHostTable(L, Descriptor{OSName: "Linux", OSArch: "x86_64"}); err != nil {
		t.Fatalf("InjectHostTable() error = %v", err)
	}

	tests := []struct {
		name string
		code string
	}{
		{"modify existing field", `host.platform = "mac"`},
		{"add new field", `host.extra = true`},
		{"replace metatable", `setmetatable(host, {})`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := L.DoString(tt.code)
			if err == nil {
				t.Fatal("expected error when modifying host table")
			}
		})
	}

	if err := L.DoString(`host.os_name = "Windows"`); err == nil || !strings.Contains(err.Error(), "read-only") {
		t.Errorf("expected read-only error, got %v", err)
	}
}
