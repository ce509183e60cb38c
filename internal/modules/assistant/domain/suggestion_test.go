package domain

import (
	"math"
	"strings"
	"testing"
)

func TestParseSuggestions_ThreeSegments(t *testing.T) {
	out := ParseSuggestions("Resposta A|||Resposta B|||Resposta C")

	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}

	wantTypes := []SuggestionType{TypeResponse, TypeInfo, TypeAction}
	wantConfidences := []float64{0.9, 0.8, 0.7}
	wantContents := []string{"Resposta A", "Resposta B", "Resposta C"}

	for i, s := range out {
		if s.Type != wantTypes[i] {
			t.Errorf("[%d].Type = %s, want %s", i, s.Type, wantTypes[i])
		}
		if math.Abs(s.Confidence-wantConfidences[i]) > 1e-9 {
			t.Errorf("[%d].Confidence = %v, want %v", i, s.Confidence, wantConfidences[i])
		}
		if s.Content != wantContents[i] {
			t.Errorf("[%d].Content = %q, want %q", i, s.Content, wantContents[i])
		}
		if s.Uuid == "" {
			t.Errorf("[%d].Uuid is empty", i)
		}
	}
}

func TestParseSuggestions_DropsBlankSegments(t *testing.T) {
	out := ParseSuggestions("|||  Resposta A  |||   |||Resposta B|||")

	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].Content != "Resposta A" || out[1].Content != "Resposta B" {
		t.Errorf("contents: %q, %q", out[0].Content, out[1].Content)
	}
	// 排名按保留后的顺序算，不受空段影响
	if out[0].Type != TypeResponse || out[1].Type != TypeInfo {
		t.Errorf("types: %s, %s", out[0].Type, out[1].Type)
	}
}

func TestParseSuggestions_Empty(t *testing.T) {
	if out := ParseSuggestions(""); len(out) != 0 {
		t.Errorf("len = %d, want 0", len(out))
	}
	if out := ParseSuggestions("   "); len(out) != 0 {
		t.Errorf("len = %d, want 0", len(out))
	}
}

func TestParseSuggestions_SingleSegment(t *testing.T) {
	out := ParseSuggestions("Apenas uma resposta")
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if out[0].Type != TypeResponse || out[0].Confidence != 0.9 {
		t.Errorf("got %s/%v, want response/0.9", out[0].Type, out[0].Confidence)
	}
}

func TestParseSuggestions_ConfidenceFloor(t *testing.T) {
	// 超过 9 段时置信度触底为 0，不允许负值
	raw := strings.Repeat("x|||", 12) + "x"
	out := ParseSuggestions(raw)
	if len(out) != 13 {
		t.Fatalf("len = %d, want 13", len(out))
	}
	for i, s := range out {
		if s.Confidence < 0 {
			t.Errorf("[%d].Confidence = %v, below 0", i, s.Confidence)
		}
		if i >= 2 && s.Type != TypeAction {
			t.Errorf("[%d].Type = %s, want action", i, s.Type)
		}
	}
	if out[9].Confidence != 0 || out[12].Confidence != 0 {
		t.Errorf("tail should be 0: %v, %v", out[9].Confidence, out[12].Confidence)
	}
}
