package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestRequestBodyParser_JSON(t *testing.T) {
	body := `{"id": "123", "payer_label": "테스트", "amount": 42000}`
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	parser := NewRequestBodyParser(req)
	if err := parser.Parse(); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if !parser.IsJSON() {
		t.Error("Expected IsJSON() to be true")
	}
	if id := parser.Get("id"); id != "123" {
		t.Errorf("Get('id') = %q, want '123'", id)
	}
	if label := parser.Get("payer_label"); label != "테스트" {
		t.Errorf("Get('payer_label') = %q, want '테스트'", label)
	}
	if amount := parser.Get("amount"); amount != "42000" {
		t.Errorf("Get('amount') = %q, want '42000'", amount)
	}
}

func TestRequestBodyParser_FormData(t *testing.T) {
	body := "id=456&payer_label=form+test&amount=100"
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	parser := NewRequestBodyParser(req)
	if err := parser.Parse(); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if parser.IsJSON() {
		t.Error("Expected IsJSON() to be false for form data")
	}
	if id := parser.Get("id"); id != "456" {
		t.Errorf("Get('id') = %q, want '456'", id)
	}
	if label := parser.Get("payer_label"); label != "form test" {
		t.Errorf("Get('payer_label') = %q, want 'form test'", label)
	}
}

func TestRequestBodyParser_EmptyBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(""))

	parser := NewRequestBodyParser(req)
	if err := parser.Parse(); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if val := parser.Get("nonexistent"); val != "" {
		t.Errorf("Get('nonexistent') = %q, want empty string", val)
	}
}

func TestParseWeekParam(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
		want  int
	}{
		{"valid week", url.Values{"week": {"3"}}, 3},
		{"missing", url.Values{}, 0},
		{"zero", url.Values{"week": {"0"}}, 0},
		{"negative", url.Values{"week": {"-2"}}, 0},
		{"garbage", url.Values{"week": {"abc"}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseWeekParam(tt.query); got != tt.want {
				t.Errorf("ParseWeekParam(%v) = %d, want %d", tt.query, got, tt.want)
			}
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  hello  ", "hello"},
		{"김서연\x00토끼", "김서연토끼"},
		{"line1\nline2", "line1\nline2"},
		{"tab\there", "tab\there"},
	}
	for _, tt := range tests {
		if got := sanitizeInput(tt.in); got != tt.want {
			t.Errorf("sanitizeInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
