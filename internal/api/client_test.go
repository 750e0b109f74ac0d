package api

import (
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		opts     []ClientOption
		wantErr  bool
		wantBase string
	}{
		{
			name:     "empty base URL falls back to default",
			baseURL:  "",
			wantBase: "http://127.0.0.1:5000",
		},
		{
			name:     "trailing slash is trimmed",
			baseURL:  "http://portal.example.gov/",
			wantBase: "http://portal.example.gov",
		},
		{
			name:     "https accepted",
			baseURL:  "https://portal.example.gov",
			wantBase: "https://portal.example.gov",
		},
		{
			name:    "missing scheme rejected",
			baseURL: "portal.example.gov",
			wantErr: true,
		},
		{
			name:     "with custom timeout",
			baseURL:  "http://localhost:5000",
			opts:     []ClientOption{WithTimeout(5 * time.Second)},
			wantBase: "http://localhost:5000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.baseURL, tt.opts...)
			if tt.wantErr {
				if err == nil {
					t.Fatal("NewClient should have returned an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewClient returned error: %v", err)
			}
			defer client.Close()

			if client.BaseURL() != tt.wantBase {
				t.Errorf("BaseURL = %q, want %q", client.BaseURL(), tt.wantBase)
			}
			if client.IsClosed() {
				t.Error("new client should not be closed")
			}
		})
	}
}

func TestClientClose(t *testing.T) {
	client, err := NewClient("http://localhost:5000")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	client.Close()
	if !client.IsClosed() {
		t.Error("client should report closed after Close")
	}

	if _, err := client.Send("hello"); err == nil {
		t.Error("Send on a closed client should fail")
	}
	if _, err := client.Reset(); err == nil {
		t.Error("Reset on a closed client should fail")
	}
}
