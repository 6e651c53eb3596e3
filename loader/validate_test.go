package loader

import (
	"strings"
	"testing"

	"github.com/nathoo/hookline/types"
)

func validContent() *Content {
	return &Content{
		Name: "Test",
		Fish: []types.FishDef{
			{ID: "carp", Name: "carp", Level: 1, Health: 10, Countdown: 5, Shadow: 2, Weight: 1},
		},
		Words: []types.WordEntry{
			{Level: 1, Display: "ねこ", Romanization: "neko"},
		},
		Variants: map[string][]string{"ko": {"ko", "co"}},
	}
}

func TestValidate_ValidContent(t *testing.T) {
	c := validContent()
	if err := validate(c); err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
	if len(c.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", c.Warnings)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Content)
		want   string
	}{
		{"word level zero", func(c *Content) {
			c.Words = append(c.Words, types.WordEntry{Level: 0, Display: "い", Romanization: "i"})
		}, "level 0 must be at least 1"},
		{"word too many spellings", func(c *Content) {
			c.Words = append(c.Words, types.WordEntry{Level: 1, Display: "ここ", Romanization: strings.Repeat("ko", 13)})
		}, "more than 4096 spellings"},
		{"empty romanization", func(c *Content) {
			c.Words = append(c.Words, types.WordEntry{Level: 1, Display: "い"})
		}, "empty display text or romanization"},
		{"non-ascii romanization", func(c *Content) {
			c.Words = append(c.Words, types.WordEntry{Level: 1, Display: "い", Romanization: "い"})
		}, "printable ASCII"},
		{"duplicate fish", func(c *Content) {
			c.Fish = append(c.Fish, c.Fish[0])
		}, "duplicate fish \"carp\""},
		{"zero weight", func(c *Content) {
			c.Fish[0].Weight = 0
		}, "weight must be at least 1"},
		{"negative price", func(c *Content) {
			c.Fish[0].Price = -5
		}, "price must not be negative"},
		{"variant key too long", func(c *Content) {
			c.Variants["kyaa"] = []string{"kyaa"}
		}, "variant key \"kyaa\""},
		{"variant key with space", func(c *Content) {
			c.Variants["a b"] = []string{"ab"}
		}, "variant key \"a b\""},
		{"variant without spellings", func(c *Content) {
			c.Variants["ka"] = nil
		}, "lists no spellings"},
		{"uppercase spelling", func(c *Content) {
			c.Variants["ka"] = []string{"KA"}
		}, "must be lowercase"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validContent()
			tt.mutate(c)
			err := validate(c)
			if err == nil {
				t.Fatal("expected validation error")
			}
			ve := err.(*ValidationError)
			assertContains(t, ve.Errors, tt.want)
		})
	}
}

func TestValidate_ShadowOutOfRange_Warning(t *testing.T) {
	c := validContent()
	c.Fish[0].Shadow = 9
	if err := validate(c); err != nil {
		t.Fatalf("shadow should only warn: %v", err)
	}
	assertContains(t, c.Warnings, "shadow 9 outside 1..5")
}

func TestValidate_FishLevelWithoutWords_Warning(t *testing.T) {
	c := validContent()
	c.Fish[0].Level = 3
	if err := validate(c); err != nil {
		t.Fatalf("missing level should only warn: %v", err)
	}
	assertContains(t, c.Warnings, "no words for level 3")
}

func TestValidate_FishOnlyPack_NoLevelWarning(t *testing.T) {
	// Fish-only packs draw words from the CSV bank.
	c := validContent()
	c.Words = nil
	c.Fish[0].Level = 4
	if err := validate(c); err != nil {
		t.Fatal(err)
	}
	if len(c.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", c.Warnings)
	}
}

func TestValidate_ErrorMessageListsAll(t *testing.T) {
	c := validContent()
	c.Fish[0].Health = 0
	c.Fish[0].Countdown = 0
	err := validate(c)
	if err == nil {
		t.Fatal("expected error")
	}
	ve := err.(*ValidationError)
	if len(ve.Errors) != 2 {
		t.Errorf("errors = %v, want 2", ve.Errors)
	}
}
