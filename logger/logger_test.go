package logger

import "testing"

func TestSetup(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{level: "INFO"},
		{level: "debug"},
		{level: "Warning"},
		{level: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			err := Setup(tt.level)
			if tt.wantErr && err == nil {
				t.Errorf("Expected error for level '%s'", tt.level)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error for level '%s': %v", tt.level, err)
			}
		})
	}
	_ = Setup("INFO")
}

func TestNew(t *testing.T) {
	log := New("routes")
	if log == nil {
		t.Fatal("Expected logger to not be nil")
	}
	if log.Module != Module+"/routes" {
		t.Errorf("Expected module '%s', got '%s'", Module+"/routes", log.Module)
	}
}
