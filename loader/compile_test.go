package loader

import (
	"testing"

	lua "github.com/yuin/gopher-lua"
)

// newTestVM creates a sandboxed Lua VM with the API registered and a fresh collector.
func newTestVM() (*lua.LState, *collector) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibs(L)
	sandbox(L)
	coll := &collector{}
	registerAPI(L, coll)
	return L, coll
}

func TestCompilePond(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`Pond { name = "Lake", intro = "Still water." }`); err != nil {
		t.Fatal(err)
	}

	c, err := compile(coll)
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "Lake" {
		t.Errorf("Name = %q, want %q", c.Name, "Lake")
	}
	if c.Intro != "Still water." {
		t.Errorf("Intro = %q, want %q", c.Intro, "Still water.")
	}
}

func TestCompileFish_Defaults(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`Fish "minnow" {}`); err != nil {
		t.Fatal(err)
	}

	c, err := compile(coll)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Fish) != 1 {
		t.Fatalf("expected 1 fish, got %d", len(c.Fish))
	}
	f := c.Fish[0]
	if f.Name != "minnow" {
		t.Errorf("Name = %q, want id fallback", f.Name)
	}
	if f.Level != 1 || f.Health != 10 || f.Countdown != 5 ||
		f.Price != 0 || f.Shadow != 1 || f.Weight != 1 {
		t.Errorf("defaults = %+v", f)
	}
}

func TestCompileFish_AllFields(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		Fish "tuna" {
			name = "bluefin", level = 4, hp = 80, timer = 9,
			price = 1200, shadow = 5, weight = 2,
		}
	`); err != nil {
		t.Fatal(err)
	}

	c, err := compile(coll)
	if err != nil {
		t.Fatal(err)
	}
	f := c.Fish[0]
	if f.ID != "tuna" || f.Name != "bluefin" || f.Level != 4 || f.Health != 80 ||
		f.Countdown != 9 || f.Price != 1200 || f.Shadow != 5 || f.Weight != 2 {
		t.Errorf("fish = %+v", f)
	}
}

func TestCompileWords_LevelsAndOrder(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		Words(2) { {"すし", "sushi"}, {"えび", "ebi"} }
		Words(1) { {"ねこ", "neko"} }
	`); err != nil {
		t.Fatal(err)
	}

	c, err := compile(coll)
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		level   int
		display string
		romaji  string
	}{
		{2, "すし", "sushi"},
		{2, "えび", "ebi"},
		{1, "ねこ", "neko"},
	}
	if len(c.Words) != len(want) {
		t.Fatalf("got %d words, want %d", len(c.Words), len(want))
	}
	for i, w := range want {
		got := c.Words[i]
		if got.Level != w.level || got.Display != w.display || got.Romanization != w.romaji {
			t.Errorf("word %d = %+v, want %+v", i, got, w)
		}
	}
}

func TestCompileWords_BadEntries(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"not a pair", `Words(1) { "neko" }`},
		{"one field", `Words(1) { {"ねこ"} }`},
		{"three fields", `Words(1) { {"ねこ", "neko", "cat"} }`},
		{"number field", `Words(1) { {"ねこ", 5} }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			L, coll := newTestVM()
			defer L.Close()

			if err := L.DoString(tt.src); err != nil {
				t.Fatal(err)
			}
			if _, err := compile(coll); err == nil {
				t.Error("expected compile error")
			}
		})
	}
}

func TestCompileVariants_MergedAndLowercased(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		Variant "KO" { "ko", "co" }
		Variant "ko" { "qo" }
	`); err != nil {
		t.Fatal(err)
	}

	c, err := compile(coll)
	if err != nil {
		t.Fatal(err)
	}
	got := c.Variants["ko"]
	if len(got) != 3 || got[0] != "ko" || got[2] != "qo" {
		t.Errorf("ko = %v, want [ko co qo]", got)
	}
	if _, ok := c.Variants["KO"]; ok {
		t.Error("uppercase key should be folded")
	}
}

func TestCompileVariants_NonString(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`Variant "ka" { 1 }`); err != nil {
		t.Fatal(err)
	}
	if _, err := compile(coll); err == nil {
		t.Error("expected compile error for non-string spelling")
	}
}

func TestGetInt_MissingUsesDefault(t *testing.T) {
	L, _ := newTestVM()
	defer L.Close()

	tbl := L.NewTable()
	tbl.RawSetString("hp", lua.LNumber(0))
	if got := getInt(tbl, "hp", 10); got != 0 {
		t.Errorf("explicit zero = %d, want 0", got)
	}
	if got := getInt(tbl, "timer", 5); got != 5 {
		t.Errorf("missing = %d, want 5", got)
	}
}
