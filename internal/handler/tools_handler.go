/**
* Name: 			tools_handler.go
* Description: 		AI 도구 (연봉, 감정, 날씨, 자동차) 예측 요청 처리
* Workflow: 		RequireSession -> 입력 바인딩/검증 -> Provider 1회 호출 -> 응답 또는 503
 */
package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"AIChatbot_Backend/internal/catalog"
	"AIChatbot_Backend/internal/logging"
	"AIChatbot_Backend/internal/middleware"
	"AIChatbot_Backend/internal/predict"

	"github.com/gin-gonic/gin"
)

const maxImageSize = 10 << 20

type ToolsHandler struct {
	suite *predict.Suite
}

func NewToolsHandler(suite *predict.Suite) *ToolsHandler {
	return &ToolsHandler{suite: suite}
}

// numeric fields are pointers so an omitted value fails "required" instead of binding as zero
type SalaryRequest struct {
	Experience *int     `json:"experience" binding:"required,min=0,max=60" example:"5"`
	Role       string   `json:"role" binding:"required" example:"Software Developer"`
	Location   string   `json:"location" binding:"required" example:"New Zealand"`
	Education  string   `json:"education" example:"Bachelor"`
	Skills     []string `json:"skills"`
}

func (r SalaryRequest) input() predict.SalaryInput {
	return predict.SalaryInput{
		Experience: *r.Experience,
		Role:       r.Role,
		Location:   r.Location,
		Education:  r.Education,
		Skills:     r.Skills,
	}
}

type WeatherRequest struct {
	Temperature *float64 `json:"temperature" binding:"required,gte=-90,lte=60" example:"20"`
	Humidity    *float64 `json:"humidity" binding:"required,gte=0,lte=100" example:"50"`
	WindSpeed   *float64 `json:"windSpeed" binding:"required,gte=0" example:"10"`
	Pressure    *float64 `json:"pressure" binding:"required,gt=0" example:"1015"`
	Rainfall    *float64 `json:"rainfall" binding:"required,gte=0" example:"0"`
}

func (r WeatherRequest) input() predict.WeatherInput {
	return predict.WeatherInput{
		Temperature: *r.Temperature,
		Humidity:    *r.Humidity,
		WindSpeed:   *r.WindSpeed,
		Pressure:    *r.Pressure,
		Rainfall:    *r.Rainfall,
	}
}

type SalaryResponse struct {
	Success bool `json:"success" example:"true"`
	predict.SalaryResult
}

type SentimentResponse struct {
	Success bool `json:"success" example:"true"`
	predict.SentimentResult
}

type WeatherResponse struct {
	Success bool `json:"success" example:"true"`
	predict.WeatherResult
}

type CarResponse struct {
	Success bool `json:"success" example:"true"`
	predict.CarResult
}

type ImageInfoResponse struct {
	Success      bool   `json:"success" example:"true"`
	Message      string `json:"message" example:"Image received successfully"`
	FileName     string `json:"fileName" example:"car.jpg"`
	FileSize     int64  `json:"fileSize" example:"48213"`
	ContentType  string `json:"contentType" example:"image/jpeg"`
	AnalysisType string `json:"analysisType" example:"basic_info"`
}

type HealthResponse struct {
	Status    string            `json:"status" example:"healthy"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
	Version   string            `json:"version" example:"1.0.0"`
}

type ToolsResponse struct {
	Tools       []catalog.Tool `json:"tools"`
	TotalTools  int            `json:"total_tools" example:"4"`
	LastUpdated string         `json:"last_updated"`
}

type HomeResponse struct {
	Message   string `json:"message" example:"AI Chatbot Backend is running!"`
	Status    string `json:"status" example:"OK"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version" example:"1.0.0"`
}

func logRequest(c *gin.Context, tool string) {
	if user, ok := middleware.CurrentUser(c); ok {
		logging.Info().Int64("user_id", user.ID).Str("tool", tool).Msg("ToolsHandler: prediction requested")
	}
}

// SalaryPrediction godoc
// @Summary      연봉 예측
// @Description  경력, 직무, 지역, 학력, 기술 스택으로 연봉을 예측합니다. ML 모델이 실패하면 규칙 기반 추정으로 대체되며 source/reason 으로 표시됩니다.
// @Tags         AI Tools
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        request body handler.SalaryRequest true "예측 입력"
// @Success      200 {object} handler.SalaryResponse
// @Failure      400 {object} handler.ErrorResponse "잘못된 입력"
// @Failure      401 {object} handler.ErrorResponse "인증 필요"
// @Failure      503 {object} handler.UnavailableResponse "서비스 일시 중단"
// @Router       /api/ai-tools/salary-prediction [post]
func (h *ToolsHandler) SalaryPrediction(c *gin.Context) {
	var req SalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}
	logRequest(c, "salary")
	result, err := h.suite.Salary.Predict(c.Request.Context(), req.input())
	if err != nil {
		unavailable(c, "Salary prediction is temporarily unavailable")
		return
	}
	c.JSON(http.StatusOK, SalaryResponse{Success: true, SalaryResult: result})
}

// SentimentAnalysis godoc
// @Summary      감정 분석
// @Description  텍스트의 감정(positive/negative/neutral)을 분석합니다.
// @Tags         AI Tools
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        request body predict.SentimentInput true "분석할 텍스트"
// @Success      200 {object} handler.SentimentResponse
// @Failure      400 {object} handler.ErrorResponse "잘못된 입력"
// @Failure      401 {object} handler.ErrorResponse "인증 필요"
// @Failure      503 {object} handler.UnavailableResponse "서비스 일시 중단"
// @Router       /api/ai-tools/sentiment-analysis [post]
func (h *ToolsHandler) SentimentAnalysis(c *gin.Context) {
	var in predict.SentimentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidRequest(c, err)
		return
	}
	if strings.TrimSpace(in.Text) == "" {
		invalidRequest(c, errors.New("text must not be blank"))
		return
	}
	logRequest(c, "sentiment")
	result, err := h.suite.Sentiment.Predict(c.Request.Context(), in)
	if err != nil {
		unavailable(c, "Sentiment analysis is temporarily unavailable")
		return
	}
	c.JSON(http.StatusOK, SentimentResponse{Success: true, SentimentResult: result})
}

// WeatherPrediction godoc
// @Summary      날씨 예측
// @Description  현재 기온, 습도, 풍속, 기압, 강수량으로 다음 날씨를 예측합니다.
// @Tags         AI Tools
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        request body handler.WeatherRequest true "현재 기상 정보"
// @Success      200 {object} handler.WeatherResponse
// @Failure      400 {object} handler.ErrorResponse "잘못된 입력"
// @Failure      401 {object} handler.ErrorResponse "인증 필요"
// @Failure      503 {object} handler.UnavailableResponse "서비스 일시 중단"
// @Router       /api/ai-tools/weather-prediction [post]
func (h *ToolsHandler) WeatherPrediction(c *gin.Context) {
	var req WeatherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}
	logRequest(c, "weather")
	result, err := h.suite.Weather.Predict(c.Request.Context(), req.input())
	if err != nil {
		unavailable(c, "Weather prediction is temporarily unavailable")
		return
	}
	c.JSON(http.StatusOK, WeatherResponse{Success: true, WeatherResult: result})
}

// CarRecognition godoc
// @Summary      자동차 브랜드 인식
// @Description  업로드한 이미지에서 자동차 브랜드를 인식합니다. 규칙 기반 대체 수단이 없으므로 모델 실패 시 503 을 반환합니다.
// @Tags         AI Tools
// @Accept       multipart/form-data
// @Produce      json
// @Security     SessionToken
// @Param        image formData file true "자동차 이미지"
// @Success      200 {object} handler.CarResponse
// @Failure      400 {object} handler.ErrorResponse "이미지 누락 또는 크기 초과"
// @Failure      401 {object} handler.ErrorResponse "인증 필요"
// @Failure      503 {object} handler.UnavailableResponse "서비스 일시 중단"
// @Router       /api/ai-tools/car-recognition [post]
func (h *ToolsHandler) CarRecognition(c *gin.Context) {
	filename, image, ok := readImage(c)
	if !ok {
		return
	}
	logRequest(c, "car")
	result, err := h.suite.Car.Predict(c.Request.Context(), predict.CarInput{Filename: filename, Image: image})
	if err != nil {
		unavailable(c, "Car recognition model is not available")
		return
	}
	c.JSON(http.StatusOK, CarResponse{Success: true, CarResult: result})
}

// ImageAnalysis godoc
// @Summary      이미지 기본 정보
// @Description  업로드한 이미지의 파일명, 크기, 타입을 반환합니다.
// @Tags         AI Tools
// @Accept       multipart/form-data
// @Produce      json
// @Security     SessionToken
// @Param        image formData file true "이미지"
// @Success      200 {object} handler.ImageInfoResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      401 {object} handler.ErrorResponse
// @Router       /api/ai-tools/image-analysis [post]
func (h *ToolsHandler) ImageAnalysis(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		invalidRequest(c, errors.New("image file is required"))
		return
	}
	c.JSON(http.StatusOK, ImageInfoResponse{
		Success:      true,
		Message:      "Image received successfully",
		FileName:     file.Filename,
		FileSize:     file.Size,
		ContentType:  file.Header.Get("Content-Type"),
		AnalysisType: "basic_info",
	})
}

func readImage(c *gin.Context) (string, []byte, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		invalidRequest(c, errors.New("image file is required"))
		return "", nil, false
	}
	if file.Size == 0 || file.Size > maxImageSize {
		invalidRequest(c, errors.New("image must be between 1 byte and 10MB"))
		return "", nil, false
	}
	f, err := file.Open()
	if err != nil {
		invalidRequest(c, err)
		return "", nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageSize))
	if err != nil {
		invalidRequest(c, err)
		return "", nil, false
	}
	return file.Filename, data, true
}

// Health godoc
// @Summary      AI 도구 상태
// @Tags         AI Tools
// @Produce      json
// @Success      200 {object} handler.HealthResponse
// @Router       /api/ai-tools/health [get]
func (h *ToolsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: timestamp(),
		Services:  catalog.Services(),
		Version:   catalog.Version,
	})
}

// Tools godoc
// @Summary      사용 가능한 AI 도구 목록
// @Tags         AI Tools
// @Produce      json
// @Success      200 {object} handler.ToolsResponse
// @Router       /api/ai-tools/tools [get]
func (h *ToolsHandler) Tools(c *gin.Context) {
	tools := catalog.Tools()
	c.JSON(http.StatusOK, ToolsResponse{Tools: tools, TotalTools: len(tools), LastUpdated: timestamp()})
}

// Home godoc
// @Summary      서버 상태 (루트)
// @Tags         AI Tools
// @Produce      json
// @Success      200 {object} handler.HomeResponse
// @Router       /api/ai-tools/ [get]
func (h *ToolsHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, HomeResponse{
		Message:   "AI Chatbot Backend is running!",
		Status:    "OK",
		Timestamp: timestamp(),
		Version:   catalog.Version,
	})
}

// TestTool godoc
// @Summary      도구별 점검 엔드포인트
// @Description  test-ml, test-sentiment, test-weather, test-car
// @Tags         AI Tools
// @Produce      json
// @Success      200 {object} catalog.TestInfo
// @Router       /api/ai-tools/test-ml [get]
func (h *ToolsHandler) TestTool(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tool, ok := catalog.GetTool(key)
		if !ok {
			fail(c, http.StatusNotFound, "Not found", "Unknown tool")
			return
		}
		c.JSON(http.StatusOK, tool.Test)
	}
}
