package bottega

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{M(3), "€3.00"},
		{M(2.5), "€2.50"},
		{M(0.125), "€0.13"},
		{M(1234.5), "€1,234.50"},
		{Money{}, "€0.00"},
		{M(-4), "-€4.00"},
		{M(-0.001), "€0.00"},
		{M(999), "€999.00"},
		{M(1000000), "€1,000,000.00"},
		{M(int64(100000000000000000)), "€100,000,000,000,000,000.00"},
		{mustParse(t, "1e30"), "€1,000,000,000,000,000,000,000,000,000,000.00"},
	}
	for _, tc := range testCases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("%s.String() = %q, want %q", tc.m.Text(), got, tc.want)
		}
	}
}

func mustParse(t *testing.T, s string) Money {
	t.Helper()
	m, err := ParseMoney(s)
	if err != nil {
		t.Fatalf("ParseMoney(%q) returned an unexpected error: %v", s, err)
	}
	return m
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney(" 2.50 ")
	if err != nil {
		t.Fatalf("ParseMoney() returned an unexpected error: %v", err)
	}
	if !m.Equal(M(2.5)) {
		t.Errorf("ParseMoney() = %v, want %v", m, M(2.5))
	}
	if m.Text() != "2.5" {
		t.Errorf("Text() = %q, want %q", m.Text(), "2.5")
	}

	for _, s := range []string{"", "abc", "2,50"} {
		if _, err := ParseMoney(s); err == nil {
			t.Errorf("ParseMoney(%q) expected an error, got nil", s)
		}
	}
}

func TestMoney_Times(t *testing.T) {
	if got := M(1.5).Times(3); !got.Equal(M(4.5)) {
		t.Errorf("Times() = %v, want %v", got, M(4.5))
	}
}
