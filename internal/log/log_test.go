package log

import (
	"bytes"
	stdlog "log"
	"os"
	"strings"
	"testing"
)

func TestWriteLiftsCampaignAndMasksPhone(t *testing.T) {
	var buf bytes.Buffer
	stdlog.SetOutput(&buf)
	defer stdlog.SetOutput(os.Stderr)

	Info(nil, "chat.reply", map[string]any{"campaign": "1724900000000", "phone": "+57 3001234567", "len": 12})

	out := buf.String()
	if !strings.Contains(out, `"campaign":"1724900000000"`) {
		t.Fatalf("campaign id should be a top-level field, got %s", out)
	}
	if strings.Contains(out, "3001234567") {
		t.Fatalf("full phone number leaked into the log: %s", out)
	}
	if !strings.Contains(out, `"phone":"**********4567"`) {
		t.Fatalf("expected masked phone, got %s", out)
	}
	if !strings.Contains(out, `"fields":{"len":12}`) {
		t.Fatalf("remaining fields should stay in the bag, got %s", out)
	}
}

func TestWriteOmitsEmptyFieldBag(t *testing.T) {
	var buf bytes.Buffer
	stdlog.SetOutput(&buf)
	defer stdlog.SetOutput(os.Stderr)

	Audit(nil, "campaign.public.create", map[string]any{"campaign": "qr-1"})

	out := buf.String()
	if strings.Contains(out, `"fields"`) {
		t.Fatalf("lifting the only key should drop the bag, got %s", out)
	}
	if !strings.Contains(out, `"campaign":"qr-1"`) {
		t.Fatalf("expected lifted campaign id, got %s", out)
	}
}

func TestMaskPhone(t *testing.T) {
	cases := []struct{ in, want string }{
		{"+57 3001234567", "**********4567"},
		{"1234", "1234"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := MaskPhone(tc.in); got != tc.want {
			t.Errorf("MaskPhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
