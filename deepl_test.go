package deepl

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// okResponse builds a minimal 2xx response with the given JSON body.
func okResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Status:     "200 OK",
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestNew_EmptyKey(t *testing.T) {
	t.Parallel()
	if _, err := New("", false); err == nil {
		t.Fatal("expected error for empty API key")
	}
}

func TestNew_TierSelectsHost(t *testing.T) {
	t.Parallel()
	cases := []struct {
		freeTier bool
		wantHost string
	}{
		{false, "api.deepl.com"},
		{true, "api-free.deepl.com"},
	}
	for _, tc := range cases {
		var gotURL string
		rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
			gotURL = r.URL.String()
			return okResponse(`{"character_limit":1,"character_count":0}`), nil
		})
		c, err := New("k", tc.freeTier, WithHTTPClient(&http.Client{Transport: rt}))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if _, err := c.Usage(context.Background()); err != nil {
			t.Fatalf("Usage: %v", err)
		}
		want := "https://" + tc.wantHost + "/v2/usage"
		if gotURL != want {
			t.Fatalf("freeTier=%v: request URL = %q, want %q", tc.freeTier, gotURL, want)
		}
	}
}

func TestClient_TranslateEndToEnd(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		if got := r.PostForm.Get("auth_key"); got != "k" {
			t.Errorf("auth_key = %q, want k", got)
		}
		resp := map[string]any{"translations": []map[string]string{
			{"detected_source_language": "DE", "text": "yes"},
		}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c, err := New("k", false, WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := c.Translate(context.Background(), TranslationRequest{
		SourceLang: "DE",
		TargetLang: "EN-US",
		Texts:      []string{"ja"},
	}, &TranslationOptions{Formality: FormalityMore})
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if len(got) != 1 || got[0].Text != "yes" || got[0].DetectedSourceLanguage != "DE" {
		t.Fatalf("Translate = %+v", got)
	}
}

func TestClient_LanguagesEndToEnd(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"language":"EN-US","name":"English (America)"}]`))
	}))
	defer srv.Close()

	c, err := New("k", false, WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	src, err := c.SourceLanguages(context.Background())
	if err != nil || len(src) != 1 || src[0].Language != "EN-US" {
		t.Fatalf("SourceLanguages = %+v err=%v", src, err)
	}
	dst, err := c.TargetLanguages(context.Background())
	if err != nil || len(dst) != 1 || dst[0].Name != "English (America)" {
		t.Fatalf("TargetLanguages = %+v err=%v", dst, err)
	}
}

func TestClient_ErrorPredicates(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c, err := New("bad-key", false, WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.Usage(context.Background())
	if !IsAuthorizationError(err) {
		t.Fatalf("expected authorization error, got %v", err)
	}
	if IsServerError(err) || IsTransportError(err) || IsDeserializationError(err) {
		t.Fatal("error matched more than one kind")
	}
}

func TestClient_TransportErrorPredicate(t *testing.T) {
	t.Parallel()
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, io.ErrUnexpectedEOF
	})
	c, err := New("k", false, WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Usage(context.Background()); !IsTransportError(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
}
