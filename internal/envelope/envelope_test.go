package envelope

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/nutriplan/nutriplan-client/internal/apierr"
)

func respWith(status int, body string) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body))}
}

func TestParse_StringDataBeatsMetaMessage(t *testing.T) {
	t.Parallel()
	resp := respWith(400, `{"meta":{"status":400,"message":"meta says otherwise"},"data":"User already exist"}`)
	_, err := Parse(resp)
	if err == nil {
		t.Fatal("expected error for 400")
	}
	if err.Error() != "User already exist" {
		t.Fatalf("want bare string data verbatim, got %q", err.Error())
	}
}

func TestParse_MetaMessageFallback(t *testing.T) {
	t.Parallel()
	resp := respWith(401, `{"meta":{"message":"Invalid credentials"},"data":{"hint":"nope"}}`)
	_, err := Parse(resp)
	if err == nil || err.Error() != "Invalid credentials" {
		t.Fatalf("want meta.message, got %v", err)
	}
}

func TestParse_GenericFallbackEmbedsStatus(t *testing.T) {
	t.Parallel()
	resp := respWith(500, `{"meta":{},"data":{}}`)
	_, err := Parse(resp)
	if err == nil || err.Error() != "HTTP error! status: 500" {
		t.Fatalf("want generic fallback, got %v", err)
	}
}

func TestParse_UnparseableBody(t *testing.T) {
	t.Parallel()
	resp := respWith(502, `<html>bad gateway</html>`)
	_, err := Parse(resp)
	if err == nil || err.Error() != "Network error" {
		t.Fatalf("want synthetic network-error envelope, got %v", err)
	}
}

func TestParse_Classification(t *testing.T) {
	t.Parallel()
	_, err := Parse(respWith(401, `{"meta":{"message":"no"}}`))
	var ae *apierr.Error
	if !errors.As(err, &ae) || ae.Category != apierr.Irrecoverable || ae.StatusCode != 401 {
		t.Fatalf("401 should classify irrecoverable, got %+v", ae)
	}
	_, err = Parse(respWith(503, `{"meta":{"message":"busy"}}`))
	if !errors.As(err, &ae) || ae.Category != apierr.Recoverable {
		t.Fatalf("503 should classify recoverable, got %+v", ae)
	}
}

func TestParse_MetaStatusCheckedOn2xx(t *testing.T) {
	t.Parallel()
	resp := respWith(200, `{"meta":{"status":401,"message":"token expired"},"data":null}`)
	_, err := Parse(resp)
	if err == nil || err.Error() != "token expired" {
		t.Fatalf("2xx transport with non-200 meta.status must fail, got %v", err)
	}
}

func TestParse_SuccessAndDecode(t *testing.T) {
	t.Parallel()
	resp := respWith(200, `{"meta":{"status":200,"message":"ok"},"data":{"name":"oats"}}`)
	env, err := Parse(resp)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var out struct {
		Name string `json:"name"`
	}
	if err := env.Decode(&out); err != nil || out.Name != "oats" {
		t.Fatalf("Decode unexpected: %+v err=%v", out, err)
	}
}

func TestDecode_NullLeavesTargetUntouched(t *testing.T) {
	t.Parallel()
	env, err := Parse(respWith(200, `{"meta":{"status":200},"data":null}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out := map[string]string{"keep": "me"}
	if err := env.Decode(&out); err != nil || out["keep"] != "me" {
		t.Fatalf("null data must not touch target: %+v err=%v", out, err)
	}
}
