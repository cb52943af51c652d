// Package detect classifies an utterance into a coarse tone and a language
// tag using keyword and script matching. Best-effort only: callers must not
// treat the result as authoritative.
package detect

import (
	"regexp"
	"strings"
)

type Tone string

const (
	ToneNeutral  Tone = "neutral"
	ToneHungry   Tone = "hungry"
	ToneConfused Tone = "confused"
	ToneUrgent   Tone = "urgent"
)

type Language string

const (
	LangEnglish Language = "en"
	LangHindi   Language = "hi"
	LangTamil   Language = "ta"
	LangTelugu  Language = "te"
	LangArabic  Language = "ar"
)

// Emotion is the avatar face the host shows for a tone.
type Emotion string

const (
	EmotionNeutral  Emotion = "neutral"
	EmotionHappy    Emotion = "happy"
	EmotionConfused Emotion = "confused"
	EmotionWarning  Emotion = "warning"
)

// Result pairs the two classifications for one utterance.
type Result struct {
	Tone     Tone
	Language Language
}

// languageKeywords are checked in order; the Arabic script-range test runs
// after the keyword lists. First match wins.
var languageKeywords = []struct {
	lang  Language
	words []string
}{
	{LangHindi, []string{"है", "मैं", "चाहिए", "पानी", "नमक"}},
	{LangTamil, []string{"அது", "நான்", "உங்களுக்கு", "இது"}},
	{LangTelugu, []string{"నేను", "మీకు", "ఇది"}},
}

// toneRules are checked in order; first match wins.
var toneRules = []struct {
	tone Tone
	re   *regexp.Regexp
}{
	{ToneHungry, regexp.MustCompile(`\b(hungry|starving|eat)\b`)},
	{ToneConfused, regexp.MustCompile(`\b(confused|which|where)\b`)},
	{ToneUrgent, regexp.MustCompile(`\b(angry|now|fast|hurry|urgent)\b`)},
}

// Detect classifies text. Never fails; unmatched input yields neutral/en.
func Detect(text string) Result {
	return Result{
		Tone:     DetectTone(text),
		Language: DetectLanguage(text),
	}
}

func DetectLanguage(text string) Language {
	t := strings.ToLower(text)
	for _, lk := range languageKeywords {
		for _, w := range lk.words {
			if strings.Contains(t, w) {
				return lk.lang
			}
		}
	}
	for _, r := range t {
		if r >= 0x0600 && r <= 0x06FF {
			return LangArabic
		}
	}
	return LangEnglish
}

func DetectTone(text string) Tone {
	t := strings.ToLower(text)
	for _, tr := range toneRules {
		if tr.re.MatchString(t) {
			return tr.tone
		}
	}
	return ToneNeutral
}

// EmotionForTone maps a tone to the assistant's displayed emotion.
func EmotionForTone(tone Tone) Emotion {
	switch tone {
	case ToneHungry:
		return EmotionHappy
	case ToneConfused:
		return EmotionConfused
	case ToneUrgent:
		return EmotionWarning
	default:
		return EmotionNeutral
	}
}
