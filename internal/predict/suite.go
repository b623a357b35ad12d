package predict

import (
	"AIChatbot_Backend/internal/config"
)

// Suite holds the composed provider for each tool.
type Suite struct {
	Salary    Provider[SalaryInput, SalaryResult]
	Sentiment Provider[SentimentInput, SentimentResult]
	Weather   Provider[WeatherInput, WeatherResult]
	Car       Provider[CarInput, CarResult]
}

// NewSuite wires delegate -> circuit breaker -> heuristic fallback per tool.
func NewSuite(cfg config.PredictConfig) *Suite {
	return NewSuiteWithRunner(NewScriptRunner(cfg.Interpreter, cfg.ModelsDir, cfg.Timeout), cfg)
}

func NewSuiteWithRunner(runner Runner, cfg config.PredictConfig) *Suite {
	return &Suite{
		Salary: NewFallback[SalaryInput, SalaryResult]("salary",
			NewBreaker("salary-script", cfg.Breaker, Provider[SalaryInput, SalaryResult](NewSalaryDelegate(runner))),
			SalaryHeuristic{}),
		Sentiment: NewFallback[SentimentInput, SentimentResult]("sentiment",
			NewBreaker("sentiment-script", cfg.Breaker, Provider[SentimentInput, SentimentResult](NewSentimentDelegate(runner))),
			SentimentHeuristic{}),
		Weather: NewFallback[WeatherInput, WeatherResult]("weather",
			NewBreaker("weather-script", cfg.Breaker, Provider[WeatherInput, WeatherResult](NewWeatherDelegate(runner))),
			WeatherHeuristic{}),
		Car: NewFallback[CarInput, CarResult]("car",
			NewBreaker("car-script", cfg.Breaker, Provider[CarInput, CarResult](NewCarRecognizer(runner, cfg.ModelsDir))),
			nil),
	}
}
