package platform

import (
	lua "github.com/yuin/gopher-lua"
)

// InjectHostTable creates a read-only host table and injects it into the Lua state as a global.
// This should be called before loading any user configuration code.
func InjectHostTable(L *lua.LState, desc Descriptor) error {
	p := Resolve(desc)

	hostTable := L.NewTable()

	// Raw descriptor
	L.SetField(hostTable, "vm_name", lua.LString(desc.VMName))
	L.SetField(hostTable, "os_name", lua.LString(desc.OSName))
	L.SetField(hostTable, "os_arch", lua.LString(desc.OSArch))

	// Resolved platform
	L.SetField(hostTable, "platform", lua.LString(p.String()))
	L.SetField(hostTable, "is_windows", lua.LBool(p.IsWindows()))
	L.SetField(hostTable, "is_linux", lua.LBool(p.IsLinux()))
	L.SetField(hostTable, "is_mac", lua.LBool(p == Mac))
	L.SetField(hostTable, "is_android", lua.LBool(p == Android))
	L.SetField(hostTable, "is_64bit", lua.LBool(p.Is64Bit()))
	L.SetField(hostTable, "is_supported", lua.LBool(p != Unsupported))

	// Helper function: when(condition, value)
	// Returns value if condition is true, nil otherwise
	whenFunc := L.NewFunction(func(L *lua.LState) int {
		cond := L.CheckBool(1)
		value := L.Get(2)
		if cond {
			L.Push(value)
		} else {
			L.Push(lua.LNil)
		}
		return 1
	})
	L.SetField(hostTable, "when", whenFunc)

	L.SetGlobal("host", makeReadOnly(L, hostTable))

	return nil
}

// makeReadOnly makes a Lua table read-only by creating a proxy table with a metatable.
// The proxy redirects reads to the original table but prevents all writes.
func makeReadOnly(L *lua.LState, table *lua.LTable) *lua.LTable {
	mt := L.NewTable()

	L.SetField(mt, "__index", table)
	L.SetField(mt, "__newindex", L.NewFunction(func(L *lua.LState) int {
		L.RaiseError("host table is read-only and cannot be modified")
		return 0
	}))
	L.SetField(mt, "__metatable", lua.LString("protected"))

	proxy := L.NewTable()
	L.SetMetatable(proxy, mt)

	return proxy
}
