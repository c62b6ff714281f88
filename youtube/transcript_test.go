package youtube

import "testing"

func TestParseSRT(t *testing.T) {
	srt := "1\n00:00:00,000 --> 00:00:02,500\nwelcome back everyone\n\n" +
		"2\n00:00:02,500 --> 00:00:05,000\ntoday we look at goroutines\nand channels\n\n" +
		"3\n00:00:05,000 --> 00:00:06,000\n\n"

	got := ParseSRT(srt)
	want := "welcome back everyone today we look at goroutines and channels"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestParseSRTWindowsLineEndings(t *testing.T) {
	srt := "1\r\n00:00:00,000 --> 00:00:01,000\r\nhello there\r\n\r\n"

	if got := ParseSRT(srt); got != "hello there" {
		t.Fatalf("expected %q, got %q", "hello there", got)
	}
}

func TestParseSRTEmptyInput(t *testing.T) {
	if got := ParseSRT(""); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
