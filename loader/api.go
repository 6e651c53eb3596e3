package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers all Lua constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Pond { name = "...", intro = "..." }
	L.SetGlobal("Pond", L.NewFunction(func(L *lua.LState) int {
		coll.pond = L.CheckTable(1)
		return 0
	}))

	// Fish "id" { name = "...", level = 1, hp = 10, timer = 5, ... }
	// Curried: Fish("id") returns a function that takes a table.
	L.SetGlobal("Fish", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.fish = append(coll.fish, rawFish{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Words(level) { {"display", "romaji"}, ... }
	L.SetGlobal("Words", L.NewFunction(func(L *lua.LState) int {
		level := L.CheckInt(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.words = append(coll.words, rawWords{level: level, table: tbl})
			return 0
		}))
		return 1
	}))

	// Variant "key" { "spelling", ... }
	L.SetGlobal("Variant", L.NewFunction(func(L *lua.LState) int {
		key := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.variants = append(coll.variants, rawVariant{key: key, table: tbl})
			return 0
		}))
		return 1
	}))
}
