package imap

import "testing"

func TestNewSeqNoRejectsZero(t *testing.T) {
	if _, err := NewSeqNo(0); err == nil {
		t.Fatal("expected error for zero sequence number")
	}
	n, err := NewSeqNo(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := n.Value(); !ok || v != 5 {
		t.Errorf("Value() = %v, %v, want 5, true", v, ok)
	}
}

func TestSeqNoExpand(t *testing.T) {
	if got := Largest.Expand(42); got != 42 {
		t.Errorf("Largest.Expand(42) = %d, want 42", got)
	}
	n, _ := NewSeqNo(7)
	if got := n.Expand(42); got != 7 {
		t.Errorf("SeqNo(7).Expand(42) = %d, want 7", got)
	}
}

func TestSequenceString(t *testing.T) {
	n1, _ := NewSeqNo(1)
	n10, _ := NewSeqNo(10)
	tests := []struct {
		name string
		seq  Sequence
		want string
	}{
		{"single", NewSingleSequence(n1), "1"},
		{"range", NewRangeSequence(n1, n10), "1:10"},
		{"star range", NewRangeSequence(n10, Largest), "10:*"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seq.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseSequenceSet(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantStr string
		wantErr bool
	}{
		{"single number", "1", "1", false},
		{"multiple singles", "1,2,3", "1,2,3", false},
		{"range", "1:5", "1:5", false},
		{"star range", "10:*", "10:*", false},
		{"mixed", "1,3:5,10:*", "1,3:5,10:*", false},
		{"just star", "*", "*", false},
		{"empty string", "", "", true},
		{"invalid number", "abc", "", true},
		{"zero value", "0", "", true},
		{"trailing comma", "1,", "", true},
		{"leading comma", ",1", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ss, err := ParseSequenceSet(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSequenceSet(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got := ss.String(); got != tt.wantStr {
				t.Errorf("ParseSequenceSet(%q).String() = %q, want %q", tt.input, got, tt.wantStr)
			}
		})
	}
}

func TestSequenceSetContains(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		num     uint32
		largest uint32
		want    bool
	}{
		{"single hit", "5", 5, 100, true},
		{"single miss", "5", 6, 100, false},
		{"range hit", "1:10", 5, 100, true},
		{"multi range gap", "1:3,7:9", 5, 100, false},
		{"star range", "10:*", 100, 100, true},
		{"star range miss", "10:*", 9, 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ss, err := ParseSequenceSet(tt.input)
			if err != nil {
				t.Fatalf("ParseSequenceSet(%q) unexpected error: %v", tt.input, err)
			}
			if got := ss.Contains(tt.num, tt.largest); got != tt.want {
				t.Errorf("Contains(%d) = %v, want %v", tt.num, got, tt.want)
			}
		})
	}
}

func TestSequenceSetDynamic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"no star", "1:5", false},
		{"has star", "1:*", true},
		{"just star", "*", true},
		{"star in middle", "1:3,5:*,10:20", true},
		{"all static", "1,2,3", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ss, err := ParseSequenceSet(tt.input)
			if err != nil {
				t.Fatalf("ParseSequenceSet(%q) unexpected error: %v", tt.input, err)
			}
			if got := ss.Dynamic(); got != tt.want {
				t.Errorf("Dynamic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewSequenceSetRejectsEmpty(t *testing.T) {
	if _, err := NewSequenceSet(nil); err == nil {
		t.Fatal("expected error for empty sequence set")
	}
}
