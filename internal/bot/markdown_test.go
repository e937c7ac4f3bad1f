package bot

import "testing"

func TestRenderMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bold",
			input: "✅ **Task Added!**",
			want:  "✅ <b>Task Added!</b>",
		},
		{
			name:  "inline code",
			input: "🆔 ID: `abc12345`",
			want:  "🆔 ID: <code>abc12345</code>",
		},
		{
			name:  "strikethrough",
			input: "• ~~Buy milk~~ done",
			want:  "• <s>Buy milk</s> done",
		},
		{
			name:  "italic underscore",
			input: "task _2026-03-14 09:26_",
			want:  "task <i>2026-03-14 09:26</i>",
		},
		{
			name:  "italic star",
			input: "👥 *React to this message to vote!*",
			want:  "👥 <i>React to this message to vote!</i>",
		},
		{
			name:  "html is escaped",
			input: "<script>alert(1)</script> & more",
			want:  "&lt;script&gt;alert(1)&lt;/script&gt; &amp; more",
		},
		{
			name:  "operators inside code spans survive",
			input: "`5 + 3 * 2` = **11**",
			want:  "<code>5 + 3 * 2</code> = <b>11</b>",
		},
		{
			name:  "repeated stars inside code span stay literal",
			input: "`2*3*4` = **24**",
			want:  "<code>2*3*4</code> = <b>24</b>",
		},
		{
			name:  "underscores inside code span stay literal",
			input: "ID: `snake_case_id`",
			want:  "ID: <code>snake_case_id</code>",
		},
		{
			name:  "code span beside italic",
			input: "`a_b_c` and _note_",
			want:  "<code>a_b_c</code> and <i>note</i>",
		},
		{
			name:  "multiple bold spans",
			input: "**Winner**: **Alice**!",
			want:  "<b>Winner</b>: <b>Alice</b>!",
		},
		{
			name:  "plain text untouched",
			input: "no markup here",
			want:  "no markup here",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := renderMarkdown(tc.input); got != tc.want {
				t.Fatalf("renderMarkdown(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
