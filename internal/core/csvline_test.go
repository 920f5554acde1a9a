package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseCSVLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "plain",
			line: "1,Cube,Desc,file.png,50",
			want: []string{"1", "Cube", "Desc", "file.png", "50"},
		},
		{
			name: "quoted comma and escaped quotes",
			line: `1,"Name, with comma","Desc ""quoted""",file.png,50`,
			want: []string{"1", "Name, with comma", `Desc "quoted"`, "file.png", "50"},
		},
		{
			name: "fields trimmed",
			line: "  1 ,  Cube  ,\tDesc\t",
			want: []string{"1", "Cube", "Desc"},
		},
		{
			name: "whitespace inside quotes trimmed after close",
			line: `" padded "`,
			want: []string{"padded"},
		},
		{
			name: "empty fields",
			line: ",,",
			want: []string{"", "", ""},
		},
		{
			name: "empty quoted field",
			line: `a,"",b`,
			want: []string{"a", "", "b"},
		},
		{
			name: "empty line",
			line: "",
			want: []string{""},
		},
		{
			name: "trailing separator",
			line: "a,b,",
			want: []string{"a", "b", ""},
		},
		{
			name: "quote in the middle of a field",
			line: `ab"c,d"e,f`,
			want: []string{"abc,de", "f"},
		},
		{
			name: "unterminated quote swallows the rest",
			line: `1,"open,2,3`,
			want: []string{"1", "open,2,3"},
		},
		{
			name: "lone quote",
			line: `"`,
			want: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCSVLine(tt.line)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseCSVLine(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestParseCSVLine_NoStateAcrossCalls(t *testing.T) {
	// An unterminated quote on one line must not affect the next
	_ = ParseCSVLine(`1,"never closed`)

	got := ParseCSVLine("2,b,c")
	if diff := cmp.Diff([]string{"2", "b", "c"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
