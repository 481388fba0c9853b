package bot

import "testing"

func TestParseDurationHours(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"2", 2},
		{"1.5", 1.5},
		{"1,5", 1.5},         // comma decimals
		{"1.3", 1.5},         // snapped to half hours
		{"  4 ", 4},
		{"abc", MinDurationHours},
		{"", MinDurationHours},
		{"-2", MinDurationHours},
		{"0", MinDurationHours},
	}

	for _, tc := range cases {
		if got := ParseDurationHours(tc.in); got != tc.want {
			t.Errorf("ParseDurationHours(%q): got %.2f, want %.2f", tc.in, got, tc.want)
		}
	}
}

func TestParsePetCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"3", 3},
		{" 1 ", 1},
		{"-1", 0},
		{"two", 0},
		{"", 0},
	}

	for _, tc := range cases {
		if got := ParsePetCount(tc.in); got != tc.want {
			t.Errorf("ParsePetCount(%q): got %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseAmountAllowsZeroAndNegative(t *testing.T) {
	if v, ok := ParseAmount("-30"); !ok || v != -30 {
		t.Errorf("ParseAmount(-30): got %.2f, %v", v, ok)
	}
	if v, ok := ParseAmount("0"); !ok || v != 0 {
		t.Errorf("ParseAmount(0): got %.2f, %v", v, ok)
	}
	if _, ok := ParseAmount("lots"); ok {
		t.Error("ParseAmount accepted garbage")
	}
}

func TestParseOvertimeRate(t *testing.T) {
	rate, ok := ParseOvertimeRate("50")
	if !ok || rate == nil || *rate != 50 {
		t.Errorf("ParseOvertimeRate(50): got %v, %v", rate, ok)
	}

	// 0 must come back as a set pointer, not as "cleared".
	rate, ok = ParseOvertimeRate("0")
	if !ok || rate == nil || *rate != 0 {
		t.Errorf("ParseOvertimeRate(0): got %v, %v", rate, ok)
	}

	rate, ok = ParseOvertimeRate("off")
	if !ok || rate != nil {
		t.Errorf("ParseOvertimeRate(off): got %v, %v", rate, ok)
	}

	if _, ok := ParseOvertimeRate("-5"); ok {
		t.Error("ParseOvertimeRate accepted a negative rate")
	}
	if _, ok := ParseOvertimeRate("cheap"); ok {
		t.Error("ParseOvertimeRate accepted garbage")
	}
}

func TestParseExtraLine(t *testing.T) {
	name, amount, ok := ParseExtraLine("album 50")
	if !ok || name != "album" || amount != 50 {
		t.Errorf("got (%q, %.2f, %v)", name, amount, ok)
	}

	name, amount, ok = ParseExtraLine("rush edit 45.5")
	if !ok || name != "rush edit" || amount != 45.5 {
		t.Errorf("multiword name: got (%q, %.2f, %v)", name, amount, ok)
	}

	if _, _, ok := ParseExtraLine("album"); ok {
		t.Error("accepted a line without an amount")
	}
	if _, _, ok := ParseExtraLine("album fifty"); ok {
		t.Error("accepted a non-numeric amount")
	}
}
