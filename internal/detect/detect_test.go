package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectTone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Tone
	}{
		{"hungry keyword", "I am so hungry right now, wait no, starving", ToneHungry},
		{"eat counts as hungry", "what should I eat", ToneHungry},
		{"confused keyword", "which one is better", ToneConfused},
		{"where is confused", "where do I find dosa", ToneConfused},
		{"urgent keyword", "deliver fast please", ToneUrgent},
		{"hungry wins over urgent", "hungry, need food fast", ToneHungry},
		{"no match", "paneer butter masala", ToneNeutral},
		{"empty", "", ToneNeutral},
		{"case insensitive", "HUNGRY", ToneHungry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectTone(tt.text))
		})
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Language
	}{
		{"hindi keyword", "मुझे पानी चाहिए", LangHindi},
		{"tamil keyword", "நான் சாப்பிட வேண்டும்", LangTamil},
		{"telugu keyword", "నేను తినాలి", LangTelugu},
		{"arabic script", "أريد طعام", LangArabic},
		{"english default", "order some biryani", LangEnglish},
		{"empty default", "", LangEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.text))
		})
	}
}

func TestDetect_Combined(t *testing.T) {
	r := Detect("I am hungry")
	assert.Equal(t, ToneHungry, r.Tone)
	assert.Equal(t, LangEnglish, r.Language)
}

func TestDetect_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, Detect("where is my spicy food, hurry"), Detect("where is my spicy food, hurry"))
	}
}

func TestEmotionForTone(t *testing.T) {
	assert.Equal(t, EmotionHappy, EmotionForTone(ToneHungry))
	assert.Equal(t, EmotionConfused, EmotionForTone(ToneConfused))
	assert.Equal(t, EmotionWarning, EmotionForTone(ToneUrgent))
	assert.Equal(t, EmotionNeutral, EmotionForTone(ToneNeutral))
}
