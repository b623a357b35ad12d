package catalog

import (
	"strings"

	"AIChatbot_Backend/internal/predict"
)

const Version = "1.0.0"

type Tool struct {
	Key         string   `json:"-"`
	Name        string   `json:"name" example:"Salary Prediction"`
	Endpoint    string   `json:"endpoint" example:"/api/ai-tools/salary-prediction"`
	Description string   `json:"description"`
	Method      string   `json:"method" example:"POST"`
	Status      string   `json:"status" example:"active"`
	// 점검용 엔드포인트 정보
	Test        TestInfo `json:"-"`
}

type TestInfo struct {
	Message         string `json:"message"`
	Status          string `json:"status"`
	Model           string `json:"model"`
	SupportedBrands string `json:"supported_brands,omitempty"`
}

var order = []string{"salary_prediction", "sentiment_analysis", "weather_prediction", "car_recognition"}

var tools = map[string]Tool{
	"salary_prediction": {
		Key:         "salary_prediction",
		Name:        "Salary Prediction",
		Endpoint:    "/api/ai-tools/salary-prediction",
		Description: "Predict tech salaries based on experience, role, location, and skills",
		Method:      "POST",
		Status:      "active",
		Test:        TestInfo{Message: "ML Salary Prediction API is working!", Status: "success", Model: "Trained on tech_salaries.csv"},
	},
	"sentiment_analysis": {
		Key:         "sentiment_analysis",
		Name:        "Sentiment Analysis",
		Endpoint:    "/api/ai-tools/sentiment-analysis",
		Description: "Analyze text sentiment using ML model",
		Method:      "POST",
		Status:      "active",
		Test:        TestInfo{Message: "Sentiment Analysis API is working!", Status: "success", Model: "NaiveBayes with 82% accuracy"},
	},
	"weather_prediction": {
		Key:         "weather_prediction",
		Name:        "Weather Prediction",
		Endpoint:    "/api/ai-tools/weather-prediction",
		Description: "Predict weather conditions based on current parameters",
		Method:      "POST",
		Status:      "active",
		Test:        TestInfo{Message: "Weather Prediction API is working!", Status: "success", Model: "Trained on auckland_weather.csv"},
	},
	"car_recognition": {
		Key:         "car_recognition",
		Name:        "Car Recognition",
		Endpoint:    "/api/ai-tools/car-recognition",
		Description: "Identify car brands from images using TensorFlow CNN",
		Method:      "POST",
		Status:      "active",
		Test: TestInfo{
			Message:         "Car Recognition API is working!",
			Status:          "success",
			Model:           "TensorFlow CNN Model",
			SupportedBrands: strings.Join(predict.SupportedBrands, ", "),
		},
	},
}

func GetTool(key string) (Tool, bool) {
	tool, exists := tools[key]
	return tool, exists
}

// Tools lists the registry in a stable order.
func Tools() []Tool {
	out := make([]Tool, 0, len(order))
	for _, key := range order {
		out = append(out, tools[key])
	}
	return out
}

// Services is the health view: every tool plus authentication, each with
// its status.
func Services() map[string]string {
	services := map[string]string{"authentication": "active"}
	for key, tool := range tools {
		services[key] = tool.Status
	}
	return services
}
