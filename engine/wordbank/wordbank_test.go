package wordbank

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nathoo/hookline/types"
)

// fixedPicker always returns the same index, clamped to n.
type fixedPicker int

func (p fixedPicker) Intn(n int) int {
	if int(p) >= n {
		return n - 1
	}
	return int(p)
}

func TestLoad_Testdata(t *testing.T) {
	b, err := Load("testdata/words.csv")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	lvl1 := b.Words(1)
	want1 := []types.WordEntry{
		{Level: 1, Display: "ねこ", Romanization: "neko"},
		{Level: 1, Display: "いぬ", Romanization: "inu"},
		{Level: 1, Display: "さかな", Romanization: "sakana"},
	}
	if len(lvl1) != len(want1) {
		t.Fatalf("level 1 = %v, want %v", lvl1, want1)
	}
	for i := range want1 {
		if lvl1[i] != want1[i] {
			t.Errorf("level 1[%d] = %+v, want %+v", i, lvl1[i], want1[i])
		}
	}

	lvl2 := b.Words(2)
	if len(lvl2) != 2 {
		t.Fatalf("level 2 = %v, want sushi and syasin", lvl2)
	}
	if lvl2[0].Romanization != "sushi" || lvl2[1].Romanization != "syasin" {
		t.Errorf("level 2 = %v", lvl2)
	}

	lvl3 := b.Words(3)
	if len(lvl3) != 1 || lvl3[0].Romanization != "tukue" {
		t.Errorf("level 3 = %v, want only tukue (dangling field ignored)", lvl3)
	}

	if got := b.Levels(); len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("Levels() = %v, want [1 2 3]", got)
	}
	if b.Len() != 6 {
		t.Errorf("Len() = %d, want 6", b.Len())
	}
}

func TestLoad_MissingSource(t *testing.T) {
	b, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, ErrMissingSource) {
		t.Fatalf("err = %v, want ErrMissingSource", err)
	}
	if b == nil {
		t.Fatal("bank is nil on missing source")
	}
	for i := 0; i < 3; i++ {
		if _, ok := b.SampleRandom(1, fixedPicker(0)); ok {
			t.Fatal("SampleRandom on empty bank returned a word")
		}
	}
}

func TestParse_HeaderOnly(t *testing.T) {
	b, err := Parse(strings.NewReader("1,header,looks,like,data\n"))
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != 0 {
		t.Errorf("first row must be treated as header, got %d words", b.Len())
	}
}

func TestParse_WhitespaceRowsBeforeHeader(t *testing.T) {
	in := "   \n\t\nlevel,w,r\n1,a,b\n"
	b, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if words := b.Words(1); len(words) != 1 || words[0].Romanization != "b" {
		t.Errorf("level 1 = %v", words)
	}
}

func TestSampleRandom(t *testing.T) {
	b := New()
	for _, r := range []string{"a", "b", "c"} {
		if err := b.Add(types.WordEntry{Level: 2, Display: r, Romanization: r}); err != nil {
			t.Fatal(err)
		}
	}

	for i, want := range []string{"a", "b", "c"} {
		e, ok := b.SampleRandom(2, fixedPicker(i))
		if !ok || e.Romanization != want {
			t.Errorf("SampleRandom(pick %d) = %v/%v, want %s", i, e, ok, want)
		}
	}
	if _, ok := b.SampleRandom(9, fixedPicker(0)); ok {
		t.Error("SampleRandom on empty level returned a word")
	}
}

func TestAdd_Rejects(t *testing.T) {
	b := New()
	bad := []types.WordEntry{
		{Level: 1, Display: "", Romanization: "a"},
		{Level: 1, Display: "a", Romanization: ""},
		{Level: 0, Display: "a", Romanization: "a"},
		{Level: 1, Display: "しし", Romanization: strings.Repeat("si", 20)},
	}
	for _, e := range bad {
		if err := b.Add(e); err == nil {
			t.Errorf("Add(%+v) should fail", e)
		}
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d after rejected adds", b.Len())
	}
}

func TestAll_OrderedByLevel(t *testing.T) {
	b := New()
	for _, e := range []types.WordEntry{
		{Level: 2, Display: "すし", Romanization: "sushi"},
		{Level: 1, Display: "ねこ", Romanization: "neko"},
		{Level: 2, Display: "えび", Romanization: "ebi"},
	} {
		if err := b.Add(e); err != nil {
			t.Fatal(err)
		}
	}
	all := b.All()
	got := make([]string, len(all))
	for i, e := range all {
		got[i] = e.Romanization
	}
	if strings.Join(got, ",") != "neko,sushi,ebi" {
		t.Errorf("All = %v", got)
	}
}

func TestParse_SkipsOversizedWord(t *testing.T) {
	in := "level,w,r\n1,ねこ,neko," + strings.Repeat("し", 40) + "," + strings.Repeat("si", 40) + "\n"
	b, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if words := b.Words(1); len(words) != 1 || words[0].Romanization != "neko" {
		t.Errorf("level 1 = %v", words)
	}
}

type mapTable map[string][]string

func (m mapTable) Lookup(key string) []string { return m[key] }

func TestPrune(t *testing.T) {
	b := New()
	for _, e := range []types.WordEntry{
		{Level: 1, Display: "ねこ", Romanization: "neko"},
		{Level: 2, Display: "long", Romanization: "aaaaaaa"},
		{Level: 2, Display: "えび", Romanization: "ebi"},
	} {
		if err := b.Add(e); err != nil {
			t.Fatal(err)
		}
	}

	removed := b.Prune(mapTable{"a": {"a", "b", "c", "d"}})
	if len(removed) != 1 || removed[0].Display != "long" {
		t.Fatalf("removed = %v", removed)
	}
	if b.Len() != 2 || len(b.Words(2)) != 1 || b.Words(2)[0].Display != "えび" {
		t.Errorf("after prune: len %d, level 2 = %v", b.Len(), b.Words(2))
	}
	if again := b.Prune(mapTable{}); len(again) != 0 {
		t.Errorf("second prune removed %v", again)
	}
}
