package merger

import (
	"reflect"
	"testing"
)

func TestParseScript(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []scriptRecord
	}{
		{
			name:  "title and verses",
			input: "TITLE: Grace\n\nAmazing grace\nhow sweet\n\nTITLE: \"Hope\"\n\nLine one",
			want: []scriptRecord{
				{title: "Grace", body: []string{"Amazing grace", "how sweet"}},
				{title: "Hope", body: []string{"Line one"}},
			},
		},
		{
			name:  "second verse block starts a titleless record",
			input: "TITLE: A\nverse one\n\nverse two",
			want: []scriptRecord{
				{title: "A", body: []string{"verse one"}},
				{body: []string{"verse two"}},
			},
		},
		{
			name:  "title keyword is case-insensitive",
			input: "title: lower\nTiTlE: mixed",
			want: []scriptRecord{
				{title: "lower"},
				{title: "mixed"},
			},
		},
		{
			name:  "title line followed directly by body",
			input: "TITLE: Chorus\nsing it loud\nsing it strong",
			want: []scriptRecord{
				{title: "Chorus", body: []string{"sing it loud", "sing it strong"}},
			},
		},
		{
			name:  "stray empty title dropped",
			input: "TITLE:\n\n",
			want:  nil,
		},
		{
			name:  "blank lines collapse",
			input: "\n\n\nverse\n\n\n",
			want: []scriptRecord{
				{body: []string{"verse"}},
			},
		},
		{
			name:  "quotes stripped only when paired",
			input: "TITLE: \"Both\"\n\nTITLE: \"left only\n\nTITLE: right only\"",
			want: []scriptRecord{
				{title: "Both"},
				{title: "\"left only"},
				{title: "right only\""},
			},
		},
		{
			name:  "body lines are trimmed",
			input: "  spaced out  \n\ttabbed\t",
			want: []scriptRecord{
				{body: []string{"spaced out", "tabbed"}},
			},
		},
		{
			name:  "crlf input",
			input: "TITLE: Windows\r\n\r\nline one\r\nline two\r\n",
			want: []scriptRecord{
				{title: "Windows", body: []string{"line one", "line two"}},
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseScript([]byte(tt.input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseScript() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseScriptTitleFlushesPreviousRecord(t *testing.T) {
	got := parseScript([]byte("first verse\nTITLE: Next"))
	want := []scriptRecord{
		{body: []string{"first verse"}},
		{title: "Next"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseScript() = %#v, want %#v", got, want)
	}
}

func TestStripQuotes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"quoted"`, "quoted"},
		{`unquoted`, "unquoted"},
		{`"`, `"`},
		{`""`, ""},
		{`"half`, `"half`},
	}
	for _, tt := range tests {
		if got := stripQuotes(tt.in); got != tt.want {
			t.Errorf("stripQuotes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
