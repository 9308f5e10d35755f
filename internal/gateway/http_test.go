// File path: internal/gateway/http_test.go
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHTTPClientAnalyze(t *testing.T) {
	var captured AnalyzeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analyze-requirements" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"businessRequirements":  "Payroll overview.",
			"technicalRequirements": map[string]interface{}{"technicalRequirements": []interface{}{}},
			"sourceLanguage":        "COBOL",
			"targetLanguage":        "dotnet",
		})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL+"/", 5*time.Second)
	result, err := client.AnalyzeRequirements(context.Background(), AnalyzeRequest{
		SourceLanguage: "COBOL",
		TargetLanguage: "dotnet",
		FileData:       map[string]string{"payroll.cbl": "PROGRAM"},
	})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if captured.FileData["payroll.cbl"] != "PROGRAM" {
		t.Fatalf("file data not forwarded: %+v", captured)
	}
	if result.BusinessRequirements != "Payroll overview." {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestHTTPClientConvert(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/convert" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"status":"success","convertedCode":{"Entity":"class X {}"},"unitTests":"code","databaseUsed":true}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, 5*time.Second)
	result, err := client.Convert(context.Background(), ConvertRequest{TargetLanguage: "dotnet", SourceCode: "X"})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !result.DatabaseUsed || result.UnitTests != "code" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if string(result.ConvertedCode) != `{"Entity":"class X {}"}` {
		t.Fatalf("convertedCode must stay raw, got %s", result.ConvertedCode)
	}
}

func TestHTTPClientConvertBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","message":"unsupported source dialect"}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, 5*time.Second)
	_, err := client.Convert(context.Background(), ConvertRequest{})
	if err == nil || !strings.Contains(err.Error(), "unsupported source dialect") {
		t.Fatalf("expected backend error message, got %v", err)
	}
	if errors.Is(err, ErrUnavailable) {
		t.Fatalf("a delivered error response is not an availability failure")
	}
}

func TestHTTPClientNon2xxIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, 5*time.Second)
	if _, err := client.AnalyzeRequirements(context.Background(), AnalyzeRequest{}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if _, err := client.Convert(context.Background(), ConvertRequest{}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestHTTPClientTransportFailureIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewHTTPClient(server.URL, time.Second)
	if _, err := client.AnalyzeRequirements(context.Background(), AnalyzeRequest{}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if err := client.Health(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("health should report ErrUnavailable, got %v", err)
	}
}

func TestHTTPClientHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" || r.Method != http.MethodGet {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, 5*time.Second)
	if err := client.Health(context.Background()); err != nil {
		t.Fatalf("health: %v", err)
	}
}
