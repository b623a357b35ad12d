package predict

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"AIChatbot_Backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner replays a fixed reply and records how often it ran.
type fakeRunner struct {
	mu       sync.Mutex
	line     string
	err      error
	calls    int
	payloads []string
}

func (f *fakeRunner) Run(_ context.Context, script string, payload []byte) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.payloads = append(f.payloads, script+" "+string(payload))
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.line), nil
}

type countingProvider[In, Out any] struct {
	calls int
	next  Provider[In, Out]
}

func (c *countingProvider[In, Out]) Predict(ctx context.Context, in In) (Out, error) {
	c.calls++
	return c.next.Predict(ctx, in)
}

var nzDeveloper = SalaryInput{
	Experience: 5,
	Role:       "Software Developer",
	Location:   "New Zealand",
	Education:  "Bachelor",
	Skills:     []string{"python", "sql"},
}

func TestSalaryHeuristic_KnownValue(t *testing.T) {
	got, err := SalaryHeuristic{}.Predict(context.Background(), nzDeveloper)
	require.NoError(t, err)

	assert.Equal(t, 102263.0, got.Salary)
	assert.Equal(t, 63403.0, got.SalaryUSD)
	assert.Equal(t, "NZD", got.Currency)
	assert.Equal(t, 88.0, got.Confidence)
	assert.Equal(t, salaryHeuristicID, got.Model)
	assert.Equal(t, "fallback_used", got.Status)
	assert.Contains(t, got.Factors, "2 skills including: python, sql")
}

func TestSalaryHeuristic_Bounded(t *testing.T) {
	inputs := []SalaryInput{
		{Experience: 0, Role: "QA Engineer", Location: "Mumbai", Education: "High School"},
		{Experience: 60, Role: "Product Manager", Location: "San Francisco", Education: "PhD",
			Skills: []string{"AI", "aws", "docker", "kubernetes", "python", "rust", "go", "react", "java", "azure"}},
		{Experience: 3, Role: "Unknown Role", Location: "Nowhere"},
		{Experience: -4, Role: "Data Scientist", Location: "India"},
		{Experience: 20, Role: "QA Engineer", Location: "India", Education: "Master",
			Skills: []string{"python", "sql", "aws"}},
	}
	for _, in := range inputs {
		got, err := SalaryHeuristic{}.Predict(context.Background(), in)
		require.NoError(t, err, "%+v", in)
		assert.GreaterOrEqual(t, got.Salary, float64(minSalary), "%+v", in)
		assert.LessOrEqual(t, got.Salary, float64(maxSalary), "%+v", in)
		assert.False(t, math.IsNaN(got.SalaryUSD) || math.IsInf(got.SalaryUSD, 0))
		assert.Greater(t, got.SalaryUSD, 0.0)
		assert.LessOrEqual(t, got.Confidence, 88.0)
	}
}

func TestSentimentHeuristic(t *testing.T) {
	tests := []struct {
		text       string
		sentiment  string
		confidence float64
		complexity string
	}{
		{"I love this, it is great", "positive", 85, "simple"},
		{"not good", "negative", 75, "simple"},
		{"the sky", "neutral", 50, "simple"},
		{"this is a terrible, awful and broken product that I would never buy", "negative", 85, "moderate"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := SentimentHeuristic{}.Predict(context.Background(), SentimentInput{Text: tt.text})
			require.NoError(t, err)
			assert.Equal(t, tt.sentiment, got.Sentiment)
			assert.Equal(t, tt.confidence, got.Confidence)
			assert.Equal(t, tt.complexity, got.Complexity)
			assert.Equal(t, len(tt.text), got.TextLength)
			assert.Equal(t, fmt.Sprintf("The text shows %s sentiment with %.0f%% confidence", tt.sentiment, tt.confidence), got.Analysis)
			require.NotNil(t, got.PositiveIndicators)
			require.NotNil(t, got.NegativeIndicators)
		})
	}
}

func TestWeatherHeuristic(t *testing.T) {
	mild, err := WeatherHeuristic{}.Predict(context.Background(), WeatherInput{
		Temperature: 20, Humidity: 50, WindSpeed: 10, Pressure: 1015, Rainfall: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, 20.5, mild.PredictedTemperature)
	assert.Equal(t, 0.0, mild.PredictedRainfall)
	assert.Equal(t, "Partly Cloudy", mild.WeatherCondition)
	assert.Equal(t, "fallback_activated", mild.Status)
	assert.Equal(t, weatherLocation, mild.Location)

	storm, err := WeatherHeuristic{}.Predict(context.Background(), WeatherInput{
		Temperature: 26, Humidity: 90, WindSpeed: 30, Pressure: 1005, Rainfall: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 24.0, storm.PredictedTemperature)
	assert.Equal(t, 12.0, storm.PredictedRainfall)
	assert.Equal(t, "Heavy Rain", storm.WeatherCondition)
}

func TestConstructors_RejectInvalid(t *testing.T) {
	_, err := NewSalaryResult(SalaryResult{Salary: math.NaN(), SalaryUSD: 1, Currency: "USD", Provenance: Provenance{Model: "m"}})
	assert.ErrorIs(t, err, ErrInvalidResult)

	_, err = NewSalaryResult(SalaryResult{Salary: 10, SalaryUSD: 0, Currency: "USD", Provenance: Provenance{Model: "m"}})
	assert.ErrorIs(t, err, ErrInvalidResult)

	_, err = NewSalaryResult(SalaryResult{Salary: 10, SalaryUSD: 10, Currency: "", Provenance: Provenance{Model: "m"}})
	assert.ErrorIs(t, err, ErrInvalidResult)

	_, err = NewSentimentResult(SentimentResult{Sentiment: "ecstatic", Confidence: 50, Complexity: "simple", Provenance: Provenance{Model: "m"}})
	assert.ErrorIs(t, err, ErrInvalidResult)

	s, err := NewSentimentResult(SentimentResult{Sentiment: "Positive", Confidence: 82, Complexity: "simple", Provenance: Provenance{Model: "m"}})
	require.NoError(t, err)
	assert.Equal(t, "positive", s.Sentiment)

	_, err = NewWeatherResult(WeatherResult{PredictedTemperature: math.Inf(1), WeatherCondition: "Sunny", Provenance: Provenance{Model: "m"}})
	assert.ErrorIs(t, err, ErrInvalidResult)

	_, err = NewWeatherResult(WeatherResult{PredictedTemperature: 10, WeatherCondition: "Meteor Shower", Provenance: Provenance{Model: "m"}})
	assert.ErrorIs(t, err, ErrInvalidResult)

	_, err = NewCarResult(CarResult{PredictedBrand: "Tesla", Confidence: 90, Provenance: Provenance{Model: "m"}})
	assert.ErrorIs(t, err, ErrInvalidResult)

	_, err = NewCarResult(CarResult{PredictedBrand: "Audi", Confidence: 90})
	assert.ErrorIs(t, err, ErrInvalidResult, "model label is required")
}

func TestSalaryDelegate_Success(t *testing.T) {
	runner := &fakeRunner{line: `{"success": true, "salary": 100000, "salaryUSD": 62000, "currency": "nzd", "confidence": 84, "model": "RandomForest_Colab_Trained"}`}
	got, err := NewSalaryDelegate(runner).Predict(context.Background(), nzDeveloper)
	require.NoError(t, err)

	assert.Equal(t, "NZD", got.Currency)
	assert.Equal(t, 62000.0, got.SalaryUSD)
	assert.Equal(t, "RandomForest_Colab_Trained", got.Model)
	require.Len(t, runner.payloads, 1)
	assert.Contains(t, runner.payloads[0], SalaryScript)
	assert.Contains(t, runner.payloads[0], `"role":"Software Developer"`)
}

func TestWeatherDelegate_UsesSnakeCaseWindSpeed(t *testing.T) {
	runner := &fakeRunner{line: `{"success": true, "predictedTemperature": 18.04, "predictedRainfall": 0.0, "weatherCondition": "Mild", "confidence": 85}`}
	got, err := NewWeatherDelegate(runner).Predict(context.Background(), WeatherInput{Temperature: 18, Humidity: 60, WindSpeed: 12, Pressure: 1012})
	require.NoError(t, err)
	assert.Equal(t, 18.0, got.PredictedTemperature)
	assert.Contains(t, runner.payloads[0], `"wind_speed":12`)
}

func TestDelegates_RequireConfidence(t *testing.T) {
	salary := &fakeRunner{line: `{"success": true, "salary": 100000, "salaryUSD": 62000, "currency": "NZD"}`}
	_, err := NewSalaryDelegate(salary).Predict(context.Background(), nzDeveloper)
	assert.ErrorIs(t, err, ErrInvalidResult)

	weather := &fakeRunner{line: `{"success": true, "predictedTemperature": 18.04, "predictedRainfall": 0.0, "weatherCondition": "Mild"}`}
	_, err = NewWeatherDelegate(weather).Predict(context.Background(), WeatherInput{Temperature: 18, Humidity: 60, WindSpeed: 12, Pressure: 1012})
	assert.ErrorIs(t, err, ErrInvalidResult)

	zero := &fakeRunner{line: `{"success": true, "predictedTemperature": 18.04, "predictedRainfall": 0.0, "weatherCondition": "Mild", "confidence": 0}`}
	got, err := NewWeatherDelegate(zero).Predict(context.Background(), WeatherInput{Temperature: 18, Humidity: 60, WindSpeed: 12, Pressure: 1012})
	require.NoError(t, err)
	assert.Zero(t, got.Confidence)
}

func newSalaryFallback(runner Runner) (*Fallback[SalaryInput, SalaryResult], *countingProvider[SalaryInput, SalaryResult]) {
	heuristic := &countingProvider[SalaryInput, SalaryResult]{next: SalaryHeuristic{}}
	return NewFallback[SalaryInput, SalaryResult]("salary", NewSalaryDelegate(runner), heuristic), heuristic
}

func TestFallback_DelegatedResult(t *testing.T) {
	runner := &fakeRunner{line: `{"success": true, "salary": 90000, "salaryUSD": 90000, "currency": "USD", "confidence": 80}`}
	f, heuristic := newSalaryFallback(runner)

	got, err := f.Predict(context.Background(), nzDeveloper)
	require.NoError(t, err)
	assert.Equal(t, SourceDelegated, got.Source)
	assert.Empty(t, got.Reason)
	assert.Zero(t, heuristic.calls)
}

func TestFallback_FailureModes(t *testing.T) {
	tests := []struct {
		name   string
		runner *fakeRunner
		reason string
	}{
		{"negative salary", &fakeRunner{line: `{"success": true, "salary": -5, "salaryUSD": 10, "currency": "USD"}`}, "ML model produced invalid results"},
		{"missing currency", &fakeRunner{line: `{"success": true, "salary": 5000, "salaryUSD": 5000}`}, "ML model produced invalid results"},
		{"missing confidence", &fakeRunner{line: `{"success": true, "salary": 5000, "salaryUSD": 5000, "currency": "USD"}`}, "ML model produced invalid results"},
		{"NaN literal", &fakeRunner{line: `{"success": true, "salary": NaN, "salaryUSD": 10, "currency": "USD"}`}, "ML model produced invalid results"},
		{"model failure", &fakeRunner{line: `{"success": false, "error": "model file missing"}`}, "ML model reported a failure"},
		{"timeout", &fakeRunner{err: fmt.Errorf("%w after 5s", ErrTimeout)}, "ML model timed out"},
		{"missing script", &fakeRunner{err: ErrScriptNotFound}, "ML model not available"},
		{"no output", &fakeRunner{err: ErrNoOutput}, "ML model produced no output"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, heuristic := newSalaryFallback(tt.runner)

			got, err := f.Predict(context.Background(), nzDeveloper)
			require.NoError(t, err)
			assert.Equal(t, SourceFallback, got.Source)
			assert.Equal(t, tt.reason, got.Reason)
			assert.Equal(t, salaryHeuristicID, got.Model)
			assert.Equal(t, 1, tt.runner.calls, "delegate called exactly once")
			assert.Equal(t, 1, heuristic.calls, "heuristic called exactly once")
		})
	}
}

func TestFallback_NoSecondary(t *testing.T) {
	runner := &fakeRunner{err: ErrScriptNotFound}
	f := NewFallback[CarInput, CarResult]("car", NewCarRecognizer(runner, t.TempDir()), nil)

	_, err := f.Predict(context.Background(), CarInput{Filename: "x.jpg", Image: []byte{1}})
	assert.ErrorIs(t, err, ErrProviderFailed)
}

func TestFallback_SecondaryFails(t *testing.T) {
	failing := ProviderFunc[SalaryInput, SalaryResult](func(context.Context, SalaryInput) (SalaryResult, error) {
		return SalaryResult{}, errors.New("boom")
	})
	f := NewFallback[SalaryInput, SalaryResult]("salary", failing, failing)
	_, err := f.Predict(context.Background(), nzDeveloper)
	assert.ErrorIs(t, err, ErrProviderFailed)
}

func TestFallback_HeuristicOnly(t *testing.T) {
	f := NewFallback[SentimentInput, SentimentResult]("sentiment", nil, SentimentHeuristic{})
	got, err := f.Predict(context.Background(), SentimentInput{Text: "great"})
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, got.Source)
	assert.Equal(t, "ML model not configured", got.Reason)
}

func TestBreaker_OpensAndFallsBack(t *testing.T) {
	runner := &fakeRunner{err: ErrScriptFailed}
	cfg := config.BreakerConfig{MinRequests: 2, FailureRatio: 0.5}
	delegate := Provider[SalaryInput, SalaryResult](NewSalaryDelegate(runner))
	f := NewFallback[SalaryInput, SalaryResult]("salary", NewBreaker("salary-test", cfg, delegate), SalaryHeuristic{})

	for i := 0; i < 2; i++ {
		_, err := f.Predict(context.Background(), nzDeveloper)
		require.NoError(t, err)
	}
	require.Equal(t, 2, runner.calls)

	got, err := f.Predict(context.Background(), nzDeveloper)
	require.NoError(t, err)
	assert.Equal(t, 2, runner.calls, "open circuit skips the script")
	assert.Equal(t, "ML model temporarily disabled", got.Reason)
}

func TestCarRecognizer(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{line: `{"success": true, "predicted_brand": "Audi", "confidence": 91.5, "model": "Car_Recognizer_v1.0"}`}
	rec := NewCarRecognizer(runner, dir)

	_, err := rec.Predict(context.Background(), CarInput{Filename: "car.png", Image: []byte("img")})
	assert.ErrorIs(t, err, ErrScriptNotFound, "model weights must exist")
	assert.Zero(t, runner.calls)

	writeFile(t, dir, CarModel, "weights")
	got, err := rec.Predict(context.Background(), CarInput{Filename: "car.png", Image: []byte("img")})
	require.NoError(t, err)
	assert.Equal(t, "Audi", got.PredictedBrand)
	assert.Equal(t, 91.5, got.Confidence)
	assert.Contains(t, runner.payloads[0], "image_path")
	assert.Contains(t, runner.payloads[0], ".png")
}

func TestSuite_Wiring(t *testing.T) {
	runner := &fakeRunner{err: ErrScriptNotFound}
	suite := NewSuiteWithRunner(runner, config.PredictConfig{ModelsDir: t.TempDir()})

	salary, err := suite.Salary.Predict(context.Background(), nzDeveloper)
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, salary.Source)

	_, err = suite.Car.Predict(context.Background(), CarInput{Filename: "a.jpg", Image: []byte{1}})
	assert.ErrorIs(t, err, ErrProviderFailed)
}
