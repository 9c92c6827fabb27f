package imap

import "testing"

func TestParseFlagSystem(t *testing.T) {
	tests := []struct {
		token string
		want  FlagSystem
	}{
		{"\\Seen", FlagSeen},
		{"\\seen", FlagSeen},
		{"\\Answered", FlagAnswered},
		{"\\Flagged", FlagFlagged},
		{"\\Deleted", FlagDeleted},
		{"\\Draft", FlagDraft},
	}
	for _, tt := range tests {
		f, err := ParseFlag(tt.token)
		if err != nil {
			t.Fatalf("ParseFlag(%q) error: %v", tt.token, err)
		}
		if !f.IsSystem() {
			t.Errorf("ParseFlag(%q).IsSystem() = false, want true", tt.token)
		}
	}
}

func TestParseFlagExtensionAndKeyword(t *testing.T) {
	ext, err := ParseFlag("\\Junk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ext.IsExtension() {
		t.Error("\\Junk should parse as an extension flag")
	}
	if ext.String() != "\\Junk" {
		t.Errorf("String() = %q, want \\Junk", ext.String())
	}

	kw, err := ParseFlag("$Forwarded")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kw.IsSystem() || kw.IsExtension() {
		t.Error("$Forwarded should be a plain keyword")
	}
	if kw.String() != "$Forwarded" {
		t.Errorf("String() = %q, want $Forwarded", kw.String())
	}
}

func TestFlagFetchRecent(t *testing.T) {
	if !FlagFetchRecent.IsRecent() {
		t.Fatal("FlagFetchRecent.IsRecent() = false, want true")
	}
	if _, ok := FlagFetchRecent.Flag(); ok {
		t.Error("FlagFetchRecent.Flag() should return false")
	}
	if FlagFetchRecent.String() != "\\Recent" {
		t.Errorf("String() = %q, want \\Recent", FlagFetchRecent.String())
	}
}

func TestFlagPermWildcard(t *testing.T) {
	if !FlagPermWildcard.IsWildcard() {
		t.Fatal("FlagPermWildcard.IsWildcard() = false, want true")
	}
	if FlagPermWildcard.String() != "\\*" {
		t.Errorf("String() = %q, want \\*", FlagPermWildcard.String())
	}
}
