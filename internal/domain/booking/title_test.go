package booking

import "testing"

func TestFormatTitle(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		buffer  int
		want    string
		wantErr bool
	}{
		{"noon booking with default buffer", "12:00", "13:00", 15, "11:45AM - 1:15PM", false},
		{"zero buffer", "09:00", "10:30", 0, "9:00AM - 10:30AM", false},
		{"buffer crosses noon", "11:50", "12:10", 15, "11:35AM - 12:25PM", false},
		{"start wraps backwards past midnight", "00:10", "01:00", 15, "11:55PM - 1:15AM", false},
		{"end wraps forward past midnight", "22:30", "23:50", 15, "10:15PM - 12:05AM", false},
		{"midnight is 12AM", "00:30", "11:30", 30, "12:00AM - 12:00PM", false},
		{"large buffer wraps a full lap", "12:00", "13:00", 1500, "11:00AM - 2:00PM", false},
		{"bad start", "25:00", "13:00", 15, "", true},
		{"bad end", "12:00", "13:99", 15, "", true},
		{"not a time", "noon", "13:00", 15, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatTitle(tt.start, tt.end, tt.buffer)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatTitle(%q, %q, %d) error = %v, wantErr %v", tt.start, tt.end, tt.buffer, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatTitle(%q, %q, %d) = %q, want %q", tt.start, tt.end, tt.buffer, got, tt.want)
			}
		})
	}
}

func TestFormatTitleDeterministic(t *testing.T) {
	first, err := FormatTitle("18:00", "19:00", 15)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		got, err := FormatTitle("18:00", "19:00", 15)
		if err != nil || got != first {
			t.Fatalf("iteration %d: got %q (%v), want %q", i, got, err, first)
		}
	}
}
