package predict

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	CarScript = "car_recognition.py"
	CarModel  = "car_model.h5"
)

type CarInput struct {
	Filename string
	Image    []byte
}

type CarResult struct {
	PredictedBrand string  `json:"predicted_brand" validate:"car_brand"`
	Confidence     float64 `json:"confidence" validate:"finite,gte=0,lte=100"`
	Provenance
}

func NewCarResult(r CarResult) (CarResult, error) {
	if err := check(r); err != nil {
		return CarResult{}, err
	}
	return r, nil
}

func (r CarResult) Labeled(src Source, reason string) CarResult {
	r.Provenance = r.Provenance.with(src, reason)
	return r
}

type carReply struct {
	PredictedBrand string   `json:"predicted_brand"`
	Confidence     *float64 `json:"confidence"`
	Model          string   `json:"model"`
}

func decodeCar(line []byte) (CarResult, error) {
	var reply carReply
	if err := decodeReply(line, &reply); err != nil {
		return CarResult{}, err
	}
	if reply.Confidence == nil {
		return CarResult{}, fmt.Errorf("%w: confidence is required", ErrInvalidResult)
	}
	model := reply.Model
	if model == "" {
		model = "Car_Recognizer_v1.0"
	}
	return NewCarResult(CarResult{
		PredictedBrand: reply.PredictedBrand,
		Confidence:     *reply.Confidence,
		Provenance:     Provenance{Model: model},
	})
}

// CarRecognizer stages the uploaded image in a temp file and hands its path
// to the recognition script. There is no heuristic for this tool.
type CarRecognizer struct {
	modelsDir string
	tempDir   string
	inner     *Delegate[string, CarResult]
}

func NewCarRecognizer(runner Runner, modelsDir string) *CarRecognizer {
	return &CarRecognizer{
		modelsDir: modelsDir,
		tempDir:   os.TempDir(),
		inner: NewDelegate(runner, CarScript, func(path string) any {
			return map[string]string{"image_path": path}
		}, decodeCar),
	}
}

func (r *CarRecognizer) Predict(ctx context.Context, in CarInput) (CarResult, error) {
	if len(in.Image) == 0 {
		return CarResult{}, fmt.Errorf("%w: empty image", ErrInvalidResult)
	}
	if _, err := os.Stat(filepath.Join(r.modelsDir, CarModel)); err != nil {
		return CarResult{}, fmt.Errorf("%w: %s", ErrScriptNotFound, CarModel)
	}

	ext := strings.ToLower(filepath.Ext(in.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	tmp, err := os.CreateTemp(r.tempDir, "car_upload_*"+ext)
	if err != nil {
		return CarResult{}, fmt.Errorf("CarRecognizer.Predict(): failed to create temp file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.Write(in.Image); err != nil {
		tmp.Close()
		return CarResult{}, fmt.Errorf("CarRecognizer.Predict(): failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return CarResult{}, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return CarResult{}, err
	}
	return r.inner.Predict(ctx, abs)
}
