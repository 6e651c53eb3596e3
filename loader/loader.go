package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	lua "github.com/yuin/gopher-lua"
)

// pondFile runs before every other file so later files can rely on it.
const pondFile = "pond.lua"

// collector accumulates Lua definitions during file execution.
type collector struct {
	pond     *lua.LTable
	fish     []rawFish
	words    []rawWords
	variants []rawVariant
}

// Load runs every .lua file in dir in a sandboxed VM, then compiles and
// validates what they declared. The VM is closed before Load returns.
func Load(dir string) (*Content, error) {
	files, err := luaFiles(dir)
	if err != nil {
		return nil, err
	}

	coll, err := execute(dir, files)
	if err != nil {
		return nil, err
	}

	content, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling content: %w", err)
	}
	if err := validate(content); err != nil {
		return nil, err
	}
	return content, nil
}

// luaFiles lists dir's .lua files in load order.
func luaFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading content directory %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && filepath.Ext(e.Name()) == ".lua" {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", dir)
	}
	return sortedLuaFiles(names), nil
}

// execute runs files in a fresh sandboxed VM and returns what they declared.
func execute(dir string, files []string) (*collector, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range files {
		if err := L.DoFile(filepath.Join(dir, f)); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}
	return coll, nil
}

// sortedLuaFiles puts pond.lua first and sorts the rest.
func sortedLuaFiles(files []string) []string {
	out := make([]string, 0, len(files))
	hasPond := false
	for _, f := range files {
		if f == pondFile {
			hasPond = true
			continue
		}
		out = append(out, f)
	}
	sort.Strings(out)
	if hasPond {
		out = append([]string{pondFile}, out...)
	}
	return out
}

// openSafeLibs opens base, table, string and math. No io, os or package.
func openSafeLibs(L *lua.LState) {
	for _, open := range []lua.LGFunction{lua.OpenBase, lua.OpenTable, lua.OpenString, lua.OpenMath} {
		open(L)
	}
}

// sandbox strips file loading, raw access, the collector, and randomness.
// A pack must declare the same content on every run.
func sandbox(L *lua.LState) {
	for _, name := range []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	} {
		L.SetGlobal(name, lua.LNil)
	}

	if math, ok := L.GetGlobal("math").(*lua.LTable); ok {
		math.RawSetString("random", lua.LNil)
		math.RawSetString("randomseed", lua.LNil)
	}
}
