package predict

import (
	"context"
	"fmt"
	"math"
)

const (
	WeatherScript      = "weather_predictor.py"
	weatherHeuristicID = "Enhanced_Fallback_v2.0"
	weatherLocation    = "Auckland, NZ"
)

type WeatherInput struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Pressure    float64 `json:"pressure"`
	Rainfall    float64 `json:"rainfall"`
}

type WeatherResult struct {
	PredictedTemperature float64  `json:"predictedTemperature" validate:"finite"`
	PredictedRainfall    float64  `json:"predictedRainfall" validate:"finite,gte=0"`
	WeatherCondition     string   `json:"weatherCondition" validate:"weather_condition"`
	Confidence           float64  `json:"confidence" validate:"finite,gte=0,lte=100"`
	Factors              []string `json:"factors,omitempty"`
	Location             string   `json:"location"`
	Provenance
}

func NewWeatherResult(r WeatherResult) (WeatherResult, error) {
	if err := check(r); err != nil {
		return WeatherResult{}, err
	}
	return r, nil
}

func (r WeatherResult) Labeled(src Source, reason string) WeatherResult {
	r.Provenance = r.Provenance.with(src, reason)
	return r
}

type weatherReply struct {
	PredictedTemperature *float64 `json:"predictedTemperature"`
	PredictedRainfall    *float64 `json:"predictedRainfall"`
	WeatherCondition     string   `json:"weatherCondition"`
	Confidence           *float64 `json:"confidence"`
	Model                string   `json:"model"`
}

func NewWeatherDelegate(runner Runner) *Delegate[WeatherInput, WeatherResult] {
	return NewDelegate(runner, WeatherScript, func(in WeatherInput) any {
		return map[string]float64{
			"temperature": in.Temperature,
			"humidity":    in.Humidity,
			"wind_speed":  in.WindSpeed,
			"pressure":    in.Pressure,
			"rainfall":    in.Rainfall,
		}
	}, func(line []byte) (WeatherResult, error) {
		var reply weatherReply
		if err := decodeReply(line, &reply); err != nil {
			return WeatherResult{}, err
		}
		if reply.PredictedTemperature == nil || reply.PredictedRainfall == nil {
			return WeatherResult{}, fmt.Errorf("%w: predictedTemperature and predictedRainfall are required", ErrInvalidResult)
		}
		if reply.Confidence == nil {
			return WeatherResult{}, fmt.Errorf("%w: confidence is required", ErrInvalidResult)
		}
		model := reply.Model
		if model == "" {
			model = "ML_Weather_Model"
		}
		return NewWeatherResult(WeatherResult{
			PredictedTemperature: round1(*reply.PredictedTemperature),
			PredictedRainfall:    round1(*reply.PredictedRainfall),
			WeatherCondition:     reply.WeatherCondition,
			Confidence:           *reply.Confidence,
			Location:             weatherLocation,
			Provenance:           Provenance{Model: model},
		})
	})
}

// WeatherHeuristic adjusts the current temperature by pressure, humidity and
// wind, and estimates rainfall from a rain probability.
type WeatherHeuristic struct{}

func (WeatherHeuristic) Predict(_ context.Context, in WeatherInput) (WeatherResult, error) {
	change := 0.0
	switch {
	case in.Pressure < 1000:
		change -= 2.0
	case in.Pressure > 1020:
		change += 1.5
	}
	switch {
	case in.Humidity > 85:
		change -= 0.8
	case in.Humidity < 60:
		change += 0.5
	}
	if in.WindSpeed > 20 {
		change -= 1.2
	}
	temperature := in.Temperature + change

	probability := 0.0
	if in.Humidity > 80 {
		probability += 0.4
	}
	if in.Pressure < 1010 {
		probability += 0.3
	}
	if in.Rainfall > 1.0 {
		probability += 0.2
	}
	if in.Temperature > 25 && in.Humidity > 70 {
		probability += 0.3
	}
	rainfall := probability * 10.0

	return NewWeatherResult(WeatherResult{
		PredictedTemperature: round1(temperature),
		PredictedRainfall:    round1(rainfall),
		WeatherCondition:     weatherCondition(temperature, rainfall, in.Humidity),
		Confidence:           80,
		Factors:              weatherFactors(in),
		Location:             weatherLocation,
		Provenance:           Provenance{Model: weatherHeuristicID, Status: "fallback_activated"},
	})
}

func weatherCondition(temp, rainfall, humidity float64) string {
	switch {
	case rainfall > 8.0:
		return "Heavy Rain"
	case rainfall > 3.0:
		return "Moderate Rain"
	case rainfall > 1.0:
		return "Light Rain"
	case rainfall > 0.1:
		return "Drizzle"
	case humidity > 90:
		return "Foggy"
	case temp > 28:
		return "Hot and Sunny"
	case temp > 24:
		return "Sunny"
	case temp > 20:
		return "Partly Cloudy"
	case temp > 15:
		return "Cloudy"
	case temp > 10:
		return "Cool"
	case temp > 5:
		return "Cold"
	default:
		return "Very Cold"
	}
}

func weatherFactors(in WeatherInput) []string {
	pressure := "Normal"
	if in.Pressure < 1010 {
		pressure = "Low"
	} else if in.Pressure > 1020 {
		pressure = "High"
	}
	return []string{
		fmt.Sprintf("Current temperature: %gC", in.Temperature),
		fmt.Sprintf("Humidity: %g%%", in.Humidity),
		fmt.Sprintf("Pressure: %g hPa (%s)", in.Pressure, pressure),
		fmt.Sprintf("Current rainfall: %g mm", in.Rainfall),
		fmt.Sprintf("Wind speed: %g km/h", in.WindSpeed),
		"Enhanced rule-based algorithm",
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
