package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetOutfits_Success(t *testing.T) {
	var gotPath string
	var gotBody Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(b, &gotBody); err != nil {
			t.Errorf("request body not JSON: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"outfits":[{"match_score":88,"items":{"top":"p1","bottom":null,"footwear":"p3","accessory":null},"reasoning":{"summary":"Good match","budget":{"total_price":1200}}}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	res, err := client.GetOutfits(context.Background(), Request{BaseProductID: "p1", BudgetTier: TierMid})
	if err != nil {
		t.Fatalf("GetOutfits: %v", err)
	}

	if gotPath != "/recommendations/outfit" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotBody.BaseProductID != "p1" || gotBody.BudgetTier != TierMid {
		t.Errorf("unexpected request body: %+v", gotBody)
	}
	if gotBody.Occasion != DefaultOccasion {
		t.Errorf("expected default occasion %q, got %q", DefaultOccasion, gotBody.Occasion)
	}

	if len(res.Outfits) != 1 {
		t.Fatalf("expected 1 outfit, got %d", len(res.Outfits))
	}
	o := res.Outfits[0]
	if o.MatchScore != 88 || o.Reasoning.Budget.TotalPrice != 1200 {
		t.Errorf("unexpected outfit: %+v", o)
	}
	if o.Items.Top == nil || *o.Items.Top != "p1" {
		t.Errorf("top slot not decoded: %+v", o.Items)
	}
	if o.Items.Bottom != nil {
		t.Errorf("null bottom slot should decode to nil, got %v", *o.Items.Bottom)
	}
}

func TestGetOutfits_EmptyOutfitsIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"outfits":[]}`)
	}))
	defer server.Close()

	res, err := NewClient(server.URL, 5*time.Second).GetOutfits(context.Background(), Request{BaseProductID: "p1"})
	if err != nil {
		t.Fatalf("GetOutfits: %v", err)
	}
	if res.Outfits == nil || len(res.Outfits) != 0 {
		t.Fatalf("expected empty outfits slice, got %+v", res.Outfits)
	}
}

func TestGetOutfits_FailureSignals(t *testing.T) {
	t.Run("non-success status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := NewClient(server.URL, 5*time.Second).GetOutfits(context.Background(), Request{BaseProductID: "p1"})
		if !errors.Is(err, ErrEngineUnavailable) {
			t.Fatalf("expected ErrEngineUnavailable, got %v", err)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, "{not json")
		}))
		defer server.Close()

		_, err := NewClient(server.URL, 5*time.Second).GetOutfits(context.Background(), Request{BaseProductID: "p1"})
		if !errors.Is(err, ErrEngineUnavailable) {
			t.Fatalf("expected ErrEngineUnavailable, got %v", err)
		}
	})

	t.Run("network failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // connection refused

		_, err := NewClient(server.URL, time.Second).GetOutfits(context.Background(), Request{BaseProductID: "p1"})
		if !errors.Is(err, ErrEngineUnavailable) {
			t.Fatalf("expected ErrEngineUnavailable, got %v", err)
		}
	})
}

func TestParseTier(t *testing.T) {
	cases := []struct {
		in   string
		tier Tier
		ok   bool
	}{
		{"", TierMid, true},
		{"low", TierLow, true},
		{"mid", TierMid, true},
		{"high", TierHigh, true},
		{"premium", "", false},
		{"MID", "", false},
	}
	for _, tc := range cases {
		tier, ok := ParseTier(tc.in)
		if tier != tc.tier || ok != tc.ok {
			t.Errorf("ParseTier(%q) = (%q, %v), want (%q, %v)", tc.in, tier, ok, tc.tier, tc.ok)
		}
	}
}
