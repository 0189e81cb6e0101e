package sanitize

import (
	"strings"
	"testing"
)

func TestText_AllowListOnly(t *testing.T) {
	inputs := []string{
		"I eat cereal with water",
		"I secretly judge people 😬🎱 who put pineapple on pizza",
		"“Curly quotes” and ‘apostrophes’ — with dashes – everywhere",
		"中文 and عربى and emoji 🤖 mixed with plain text!",
		"symbols: @#$%^&*+=[]{}<>/\\|~`",
		"",
	}

	for _, input := range inputs {
		got := Text(input)
		for _, r := range got {
			if !allowed(r) {
				t.Fatalf("Text(%q) produced disallowed rune %q in %q", input, r, got)
			}
		}
	}
}

func TestText_NormalizesTypography(t *testing.T) {
	got := Text("“Hello” — it’s ‘fine’ – really")
	want := `"Hello" - it's 'fine' - really`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestText_Idempotent(t *testing.T) {
	inputs := []string{
		"plain text stays plain",
		"emoji 😈 gets stripped, once",
		"“quotes” and – dashes",
		"!?.,'\"()- kept as-is",
	}

	for _, input := range inputs {
		once := Text(input)
		twice := Text(once)
		if once != twice {
			t.Fatalf("Text not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestIsEmpty(t *testing.T) {
	if !IsEmpty("😬🎱🤖") {
		t.Fatal("emoji-only input should sanitize to empty")
	}
	if !IsEmpty("   \t\n") {
		t.Fatal("whitespace-only input should be empty")
	}
	if IsEmpty("ok") {
		t.Fatal("plain text should not be empty")
	}
}

func TestFilename(t *testing.T) {
	cases := map[string]string{
		"Your Confession":      "your_confession",
		"My Confession! #1":    "my_confession_1",
		"🤖🤖🤖":                  "audio",
		"already_clean":        "already_clean",
		"  spaced   out  ":     "spaced_out",
		"Roast (Snoop Dogg)!!": "roast_snoop_dogg",
	}

	for input, want := range cases {
		if got := Filename(input); got != want {
			t.Fatalf("Filename(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestText_KeepsCommonPunctuation(t *testing.T) {
	input := `Don't worry... it's (mostly) fine, "really" - ok?!`
	if got := Text(input); got != input {
		t.Fatalf("expected punctuation preserved, got %q", got)
	}
	if strings.Contains(Text("a;b:c"), ";") {
		t.Fatal("semicolons should be stripped")
	}
}
