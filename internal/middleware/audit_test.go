package middleware

import (
	"strings"
	"testing"
)

func TestRedactBody_PasswordKeys(t *testing.T) {
	body := []byte(`{"old_password":"Password1","new_password":"SuperSecret9"}`)

	out := redactBody(body)

	if strings.Contains(out, "Password1") || strings.Contains(out, "SuperSecret9") {
		t.Errorf("redactBody() = %q, must not contain submitted passwords", out)
	}
	if !strings.Contains(out, "[REDACTED]") {
		t.Errorf("redactBody() = %q, want redaction marker", out)
	}
}

func TestRedactBody_PlainFieldsUntouched(t *testing.T) {
	body := []byte(`{"name":"Ana"}`)

	out := redactBody(body)

	if !strings.Contains(out, "Ana") {
		t.Errorf("redactBody() = %q, want original body", out)
	}
}

func TestRedactBody_NonJSONDropped(t *testing.T) {
	out := redactBody([]byte("name=Ana&password=secret"))

	if out != "" {
		t.Errorf("redactBody() = %q, want empty for non-JSON body", out)
	}
}
