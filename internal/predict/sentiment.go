package predict

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode"
)

const (
	SentimentScript      = "sentiment_predictor.py"
	sentimentHeuristicID = "RuleBased_Sentiment_Fallback_v1.0"
)

type SentimentInput struct {
	Text string `json:"text" binding:"required"`
}

type SentimentResult struct {
	Sentiment          string  `json:"sentiment" validate:"oneof=positive negative neutral"`
	Confidence         float64 `json:"confidence" validate:"finite,gte=0,lte=100"`
	Analysis           string  `json:"analysis"`
	TextLength         int     `json:"textLength" validate:"gte=0"`
	WordCount          int     `json:"wordCount" validate:"gte=0"`
	PositiveIndicators *int    `json:"positiveIndicators,omitempty"`
	NegativeIndicators *int    `json:"negativeIndicators,omitempty"`
	Complexity         string  `json:"complexity" validate:"oneof=simple moderate complex"`
	Provenance
}

func NewSentimentResult(r SentimentResult) (SentimentResult, error) {
	r.Sentiment = strings.ToLower(strings.TrimSpace(r.Sentiment))
	if err := check(r); err != nil {
		return SentimentResult{}, err
	}
	return r, nil
}

func (r SentimentResult) Labeled(src Source, reason string) SentimentResult {
	r.Provenance = r.Provenance.with(src, reason)
	return r
}

type sentimentReply struct {
	Sentiment  string   `json:"sentiment"`
	Confidence *float64 `json:"confidence"`
	Analysis   string   `json:"analysis"`
	TextLength int      `json:"textLength"`
	WordCount  int      `json:"wordCount"`
	Model      string   `json:"model"`
}

func NewSentimentDelegate(runner Runner) *Delegate[SentimentInput, SentimentResult] {
	return NewDelegate(runner, SentimentScript, func(in SentimentInput) any {
		return map[string]string{"text": in.Text}
	}, func(line []byte) (SentimentResult, error) {
		var reply sentimentReply
		if err := decodeReply(line, &reply); err != nil {
			return SentimentResult{}, err
		}
		if reply.Confidence == nil {
			return SentimentResult{}, fmt.Errorf("%w: confidence is required", ErrInvalidResult)
		}
		model := reply.Model
		if model == "" {
			model = "ML_Sentiment_Model"
		}
		return NewSentimentResult(SentimentResult{
			Sentiment:  reply.Sentiment,
			Confidence: *reply.Confidence,
			Analysis:   reply.Analysis,
			TextLength: reply.TextLength,
			WordCount:  reply.WordCount,
			Complexity: complexityOf(reply.WordCount),
			Provenance: Provenance{Model: model},
		})
	})
}

var (
	positiveWords = setOf(
		"good", "great", "excellent", "amazing", "wonderful", "fantastic",
		"love", "like", "awesome", "brilliant", "perfect", "happy",
		"pleased", "satisfied", "outstanding", "superb", "nice", "best",
		"beautiful", "thanks", "appreciate", "recommend",
	)

	negativeWords = setOf(
		"bad", "terrible", "awful", "horrible", "hate", "dislike",
		"worst", "poor", "disappointing", "annoying", "frustrating",
		"angry", "upset", "sad", "unhappy", "disgusting", "rubbish",
		"waste", "useless", "broken", "problem", "issue", "complaint",
	)

	negationWords = setOf("not", "no", "never", "none", "nothing")
)

// SentimentHeuristic is a word-list classifier. A negation word directly
// before an indicator flips its polarity.
type SentimentHeuristic struct{}

func (SentimentHeuristic) Predict(_ context.Context, in SentimentInput) (SentimentResult, error) {
	words := strings.Fields(strings.ToLower(in.Text))

	var positive, negative int
	negated := false
	for i, raw := range words {
		word := lettersOnly(raw)
		flipped := i > 0 && isNegation(words[i-1])

		_, isPos := positiveWords[word]
		_, isNeg := negativeWords[word]
		switch {
		case isPos && flipped:
			negative++
			negated = true
		case isPos:
			positive++
		case isNeg && flipped:
			positive++
			negated = true
		case isNeg:
			negative++
		}
	}

	sentiment, confidence := "neutral", 0.5
	switch {
	case positive > negative:
		sentiment, confidence = "positive", 0.6+float64(positive)*0.1
	case negative > positive:
		sentiment, confidence = "negative", 0.6+float64(negative)*0.1
	}
	if len(in.Text) > 20 {
		confidence += 0.1
	}
	confidence = math.Min(confidence, 0.85)
	if negated {
		confidence += 0.05
	}
	percent := math.Round(confidence * 100)

	return NewSentimentResult(SentimentResult{
		Sentiment:          sentiment,
		Confidence:         percent,
		Analysis:           fmt.Sprintf("The text shows %s sentiment with %.0f%% confidence", sentiment, percent),
		TextLength:         len(in.Text),
		WordCount:          len(words),
		PositiveIndicators: &positive,
		NegativeIndicators: &negative,
		Complexity:         complexityOf(len(words)),
		Provenance:         Provenance{Model: sentimentHeuristicID, Status: "fallback_used"},
	})
}

func complexityOf(wordCount int) string {
	switch {
	case wordCount < 10:
		return "simple"
	case wordCount < 25:
		return "moderate"
	default:
		return "complex"
	}
}

func isNegation(word string) bool {
	_, ok := negationWords[lettersOnly(word)]
	return ok
}

func lettersOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r <= unicode.MaxASCII && unicode.IsLetter(r) {
			return r
		}
		return -1
	}, s)
}
