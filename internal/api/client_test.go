package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second)
}

func TestLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("bad login body: %v", err)
		}
		if body["email"] != "asha@jntugv.edu.in" || body["role"] != "student" {
			t.Errorf("login body: %v", body)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "session-token",
			"user":  map[string]string{"name": "Asha Rao", "role": "student"},
		})
	})

	result, err := client.Login(context.Background(), "asha@jntugv.edu.in", "secret", "student")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token != "session-token" || result.User.Name != "Asha Rao" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestLoginWithoutToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	})

	if _, err := client.Login(context.Background(), "a@b.c", "x", "student"); err == nil {
		t.Error("tokenless login response should error")
	}
}

func TestBearerCredential(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("authorization header: %q", got)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"student": map[string]string{}})
	})

	client.SetToken("tok-123")
	if _, err := client.FetchProfile(context.Background()); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
}

func TestBackendErrorMessageSurfaced(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	})

	_, err := client.Login(context.Background(), "a@b.c", "wrong", "student")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("status: %d", apiErr.StatusCode)
	}
	if apiErr.Error() != "Invalid credentials" {
		t.Errorf("message not surfaced verbatim: %q", apiErr.Error())
	}
}

func TestBackendErrorWithoutMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "upstream exploded")
	})

	_, err := client.FetchProfile(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Error() != "backend returned status 502" {
		t.Errorf("fallback message: %q", apiErr.Error())
	}
}

func TestUploadResume(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	if err := os.WriteFile(path, []byte("pdf-bytes"), 0644); err != nil {
		t.Fatal(err)
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/student/profile/upload" {
			t.Errorf("upload path: %s", r.URL.Path)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("multipart field file missing: %v", err)
		}
		defer file.Close()
		if header.Filename != "resume.pdf" {
			t.Errorf("filename: %q", header.Filename)
		}
		data, _ := io.ReadAll(file)
		if string(data) != "pdf-bytes" {
			t.Errorf("file content: %q", data)
		}
		json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.example/r.pdf"})
	})

	url, err := client.UploadResume(context.Background(), path)
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if url != "https://cdn.example/r.pdf" {
		t.Errorf("url: %q", url)
	}
}

func TestUploadResumeMissingFile(t *testing.T) {
	client := New("http://127.0.0.1:1", time.Second)
	if _, err := client.UploadResume(context.Background(), "/no/such/file.pdf"); err == nil {
		t.Error("uploading a missing file should fail before any request")
	}
}

func TestVerifyStudentPath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tpo/verify-student/abc123" {
			t.Errorf("verify path: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	})

	if err := client.VerifyStudent(context.Background(), "abc123"); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
}

func TestBaseURLTrailingSlash(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		json.NewEncoder(w).Encode(map[string]interface{}{"opportunities": []interface{}{}})
	}))
	defer srv.Close()

	client := New(srv.URL+"/", time.Second)
	if _, err := client.ListOpportunities(context.Background()); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if path != "/opportunities" {
		t.Errorf("trailing slash not trimmed, path: %q", path)
	}
}
