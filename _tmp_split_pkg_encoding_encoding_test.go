package encoding

import "testing"

func TestPadDigits(t *testing.T) {
	cases := []struct {
		n, width int
		want     string
	}{
		{12, 5, "00012"},
		{0, 3, "000"},
		{12345, 5, "12345"},
	}
	for _, c := range cases {
		if got := string(PadDigits(c.n, c.width)); got != c.want {
			t.Errorf("PadDigits(%d, %d) = %q; want %q", c.n, c.width, got, c.want)
		}
	}
}

func TestPadDigitsClampsOutOfRange(t *testing.T) {
	if got := string(PadDigits(-5, 3)); got != "000" {
		t.Errorf("PadDigits(-5, 3) = %q; want %q", got, "000")
	}
	if got := string(PadDigits(100000, 5)); got != "99999" {
		t.Errorf("PadDigits(100000, 5) = %q; want %q", got, "99999")
	}
}

func TestParseDigits(t *testing.T) {
	n, err := ParseDigits([]byte("00042"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 42 {
		t.Errorf("ParseDigits(\"00042\") = %d; want 42", n)
	}
}

func TestParseDigitsRejectsNonNumeric(t *testing.T) {
	_, err := ParseDigits([]byte("12X45"))
	if err == nil {
		t.Fatal("expected error for non-numeric byte, got nil")
	}
}

func TestPadString(t *testing.T) {
	if got := string(PadString("hello", 10)); got != "hello     " {
		t.Errorf("PadString(%q, 10) = %q", "hello", got)
	}
	if got := string(PadString("Hello, World!", 5)); got != "Hello" {
		t.Errorf("PadString truncation = %q; want %q", got, "Hello")
	}
	if got := PadString("anything", 0); len(got) != 0 {
		t.Errorf("PadString(%q, 0) returned non-empty result: %q", "anything", string(got))
	}
}


