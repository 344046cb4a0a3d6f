package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRecordGenerationExposesCounters(t *testing.T) {
	m := New()
	m.RecordGeneration("medium", true, 12*time.Millisecond)
	m.RecordGeneration("medium", false, 8*time.Millisecond)
	m.RecordPerturbationAttempts("medium", 4)
	m.RecordCandidatesMined("medium", 27)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	m.Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status code = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"scenariogen_generations_total",
		"scenariogen_perturbation_attempts",
		"scenariogen_candidates_mined",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("response body does not contain %q", want)
		}
	}
}

func TestBeginGenerationTracksGauge(t *testing.T) {
	m := New()
	scrape := func() string {
		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
		return rec.Body.String()
	}

	done := m.BeginGeneration()
	if !strings.Contains(scrape(), "scenariogen_generations_active 1") {
		t.Error("active generations gauge is not 1 after BeginGeneration")
	}
	done()
	if !strings.Contains(scrape(), "scenariogen_generations_active 0") {
		t.Error("active generations gauge is not 0 after done")
	}
}
