package parser

import "testing"

func TestEditDeltaValidate(t *testing.T) {
	tests := []struct {
		name   string
		edit   EditDelta
		oldLen int
		newLen int
		ok     bool
	}{
		{"replacement", EditDelta{3, 1, 2}, 8, 9, true},
		{"insertion", EditDelta{3, 0, 1}, 8, 9, true},
		{"deletion", EditDelta{3, 2, 0}, 8, 6, true},
		{"whole document", EditDelta{0, 8, 8}, 8, 8, true},
		{"negative start", EditDelta{-1, 0, 1}, 8, 9, false},
		{"negative width", EditDelta{0, -1, 0}, 8, 8, false},
		{"past end", EditDelta{7, 2, 2}, 8, 8, false},
		{"length mismatch", EditDelta{3, 1, 2}, 8, 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.edit.Validate(tt.oldLen, tt.newLen)
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestEditDeltaApply(t *testing.T) {
	edit := EditDelta{ChangeStart: 3, OldWidth: 1, NewWidth: 2}
	got, err := edit.Apply([]byte("<a>1</a>"), []byte("12"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "<a>12</a>" {
		t.Errorf("got %q", got)
	}

	if _, err := edit.Apply([]byte("<a>1</a>"), []byte("123")); err == nil {
		t.Error("expected an error for a replacement of the wrong width")
	}
}

func TestMergeDeltas(t *testing.T) {
	merged, err := MergeDeltas([]EditDelta{
		{ChangeStart: 5, OldWidth: 2, NewWidth: 0},
		{ChangeStart: 2, OldWidth: 1, NewWidth: 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := EditDelta{ChangeStart: 2, OldWidth: 5, NewWidth: 4}
	if merged != want {
		t.Errorf("got %+v, want %+v", merged, want)
	}

	single, err := MergeDeltas([]EditDelta{{ChangeStart: 3, OldWidth: 1, NewWidth: 2}})
	if err != nil {
		t.Fatal(err)
	}
	if (single != EditDelta{ChangeStart: 3, OldWidth: 1, NewWidth: 2}) {
		t.Errorf("got %+v", single)
	}

	if _, err := MergeDeltas(nil); err == nil {
		t.Error("expected an error for no deltas")
	}
	if _, err := MergeDeltas([]EditDelta{
		{ChangeStart: 2, OldWidth: 3, NewWidth: 3},
		{ChangeStart: 4, OldWidth: 1, NewWidth: 1},
	}); err == nil {
		t.Error("expected an error for overlapping deltas")
	}
}

func TestComputeAffectedRange(t *testing.T) {
	// "<a>1</a>" tokens: < a > 1 </ a >
	root := mustParse(t, "<a>1</a>")

	tests := []struct {
		name     string
		edit     EditDelta
		lookback int
		want     affectedRange
	}{
		{"replacement, no lookback", EditDelta{3, 1, 2}, 0, affectedRange{3, 4}},
		{"replacement, one token back", EditDelta{3, 1, 2}, 1, affectedRange{2, 4}},
		{"insertion touches its left neighbor", EditDelta{3, 0, 1}, 0, affectedRange{2, 3}},
		{"insertion at start", EditDelta{0, 0, 1}, 0, affectedRange{0, 0}},
		{"lookback stops at start of text", EditDelta{1, 1, 1}, 3, affectedRange{0, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeAffectedRange(root, tt.edit, tt.lookback)
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
