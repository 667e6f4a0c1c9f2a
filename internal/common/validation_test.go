package common

import "testing"

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"absolute path", "/storage/emulated/0/Android/data", false},
		{"root", "/", false},
		{"relative path", "Android/data", true},
		{"dot relative", "./files", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFileName(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		wantErr  bool
	}{
		{"marker", "diablo.ini", false},
		{"archive", "diabdat.mpq", false},
		{"hidden file", ".nomedia", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"slash", "saves/single_0.sv", true},
		{"backslash", `saves\single_0.sv`, true},
		{"dot", ".", true},
		{"dot dot", "..", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFileName(tt.fileName)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFileName() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateOneOf(t *testing.T) {
	allowed := []string{"CANDIDATE_DIRS", "FALLBACK_DIR"}

	if err := ValidateOneOf("FALLBACK_DIR", allowed); err != nil {
		t.Errorf("ValidateOneOf() error = %v, want nil", err)
	}
	if err := ValidateOneOf("HOMELAB_USER", allowed); err == nil {
		t.Error("ValidateOneOf() error = nil, want error")
	}
}
