package domain

import (
	"math"
	"reflect"
	"testing"
)

func TestAnalyze_Deterministic(t *testing.T) {
	text := "estou com dor e muita dificuldade, atendimento ruim"

	first := Analyze(text)
	for i := 0; i < 5; i++ {
		if got := Analyze(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d diverged: %+v != %+v", i, got, first)
		}
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		r := Analyze(text)
		if r.Score != 0 {
			t.Errorf("Analyze(%q).Score = %v, want 0", text, r.Score)
		}
		if r.Label != LabelNeutral {
			t.Errorf("Analyze(%q).Label = %v, want neutral", text, r.Label)
		}
		if r.Confidence != 0.6 {
			t.Errorf("Analyze(%q).Confidence = %v, want 0.6", text, r.Confidence)
		}
	}
}

func TestAnalyze_PositivePortuguese(t *testing.T) {
	r := Analyze("obrigado, excelente atendimento")

	if r.Label != LabelPositive {
		t.Errorf("Label = %v, want positive", r.Label)
	}
	if r.Score <= 0.2 {
		t.Errorf("Score = %v, want > 0.2", r.Score)
	}
	if r.Emotions.Joy <= 0 {
		t.Errorf("Joy = %v, want > 0", r.Emotions.Joy)
	}
}

func TestAnalyze_UrgentMedicalTerms(t *testing.T) {
	r := Analyze("dor urgente, emergência")

	// 三个词各计 2 分紧急：fear = 6*0.5, anger 固定 0.7
	if r.Emotions.Fear != 3.0 {
		t.Errorf("Fear = %v, want 3.0", r.Emotions.Fear)
	}
	if r.Emotions.Anger != 0.7 {
		t.Errorf("Anger = %v, want 0.7", r.Emotions.Anger)
	}
	if r.Emotions.Surprise != 0.4 {
		t.Errorf("Surprise = %v, want 0.4", r.Emotions.Surprise)
	}
	if r.Label != LabelNegative {
		t.Errorf("Label = %v, want negative", r.Label)
	}
	if UrgencyOf(r) != UrgencyHigh {
		t.Errorf("UrgencyOf = %v, want high", UrgencyOf(r))
	}
}

func TestAnalyze_ConfidenceRange(t *testing.T) {
	texts := []string{
		"",
		"bom dia",
		"obrigado, excelente atendimento, ótimo",
		"dor urgente, emergência, sangue, desmaio",
		"consulta marcada para amanhã",
		"péssimo, ruim, problema, demora",
	}
	for _, text := range texts {
		r := Analyze(text)
		if r.Confidence < 0.6 || r.Confidence > 0.95 {
			t.Errorf("Analyze(%q).Confidence = %v, fora de [0.6, 0.95]", text, r.Confidence)
		}
	}
}

func TestAnalyze_SubstringMatch(t *testing.T) {
	// 词表按子串命中："obrigada!" 包含 "obrigado"? 不包含；"satisfeitíssimo" 包含 "satisfeito"? 不包含。
	// 用真实的前缀包含用例："urgentemente" 含 "urgente"
	r := Analyze("urgentemente")
	if r.Emotions.Fear != 1.0 {
		t.Errorf("Fear = %v, want 1.0 (um token urgente, peso 2)", r.Emotions.Fear)
	}
}

func TestAnalyze_ScoreClamped(t *testing.T) {
	r := Analyze("ótimo")
	// 1 token positivo: raw 1/1*10 = 10 → clamp em 1
	if r.Score != 1.0 {
		t.Errorf("Score = %v, want 1.0", r.Score)
	}
	if math.Abs(r.Confidence-0.95) > 1e-9 {
		t.Errorf("Confidence = %v, want 0.95", r.Confidence)
	}

	r = Analyze("péssimo")
	if r.Score != -1.0 {
		t.Errorf("Score = %v, want -1.0", r.Score)
	}
}

func TestAnalyze_EmotionsUnclamped(t *testing.T) {
	// 多次命中时 joy 可超过 1，保持原始算法，不截断
	r := Analyze("ótimo excelente perfeito")
	if r.Emotions.Joy != 1.8 {
		t.Errorf("Joy = %v, want 1.8 (3 * 0.6, sem clamp)", r.Emotions.Joy)
	}
}

func TestUrgencyOf_Medium(t *testing.T) {
	// sadness = 2 * 0.4 = 0.8 > 0.5, sem termo urgente → medium
	r := Analyze("problema chateado")
	if r.Emotions.Fear > 0.4 || r.Emotions.Anger > 0.6 {
		t.Fatalf("setup inválido: %+v", r.Emotions)
	}
	if UrgencyOf(r) != UrgencyMedium {
		t.Errorf("UrgencyOf = %v, want medium", UrgencyOf(r))
	}
}

func TestUrgencyOf_Low(t *testing.T) {
	r := Analyze("bom dia, gostaria de marcar consulta")
	if UrgencyOf(r) != UrgencyLow {
		t.Errorf("UrgencyOf = %v, want low", UrgencyOf(r))
	}
}
