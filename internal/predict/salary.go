package predict

import (
	"context"
	"fmt"
	"math"
	"strings"
)

const (
	SalaryScript      = "ml_salary_predictor.py"
	salaryHeuristicID = "Intelligent_Fallback_v2.1"
	minSalary         = 20000
	maxSalary         = 500000
)

type SalaryInput struct {
	Experience int      `json:"experience"`
	Role       string   `json:"role"`
	Location   string   `json:"location"`
	Education  string   `json:"education"`
	Skills     []string `json:"skills"`
}

type SalaryResult struct {
	Salary     float64  `json:"salary" validate:"finite,gt=0"`
	SalaryUSD  float64  `json:"salaryUSD" validate:"finite,gt=0"`
	Currency   string   `json:"currency" validate:"required,len=3,uppercase"`
	Confidence float64  `json:"confidence" validate:"finite,gte=0,lte=100"`
	Factors    []string `json:"factors,omitempty"`
	Note       string   `json:"note,omitempty"`
	Provenance
}

// NewSalaryResult is the only way to build a SalaryResult that leaves this package.
func NewSalaryResult(r SalaryResult) (SalaryResult, error) {
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
	if err := check(r); err != nil {
		return SalaryResult{}, err
	}
	return r, nil
}

func (r SalaryResult) Labeled(src Source, reason string) SalaryResult {
	r.Provenance = r.Provenance.with(src, reason)
	return r
}

type salaryReply struct {
	Salary     *float64 `json:"salary"`
	SalaryUSD  *float64 `json:"salaryUSD"`
	Currency   *string  `json:"currency"`
	Confidence *float64 `json:"confidence"`
	Factors    []string `json:"factors"`
	Model      string   `json:"model"`
}

func decodeSalary(line []byte) (SalaryResult, error) {
	var reply salaryReply
	if err := decodeReply(line, &reply); err != nil {
		return SalaryResult{}, err
	}
	// salary, salaryUSD and currency travel together
	if reply.Salary == nil || reply.SalaryUSD == nil || reply.Currency == nil {
		return SalaryResult{}, fmt.Errorf("%w: salary, salaryUSD and currency are required", ErrInvalidResult)
	}
	if reply.Confidence == nil {
		return SalaryResult{}, fmt.Errorf("%w: confidence is required", ErrInvalidResult)
	}
	model := reply.Model
	if model == "" {
		model = "ML_Salary_Model"
	}
	return NewSalaryResult(SalaryResult{
		Salary:     *reply.Salary,
		SalaryUSD:  *reply.SalaryUSD,
		Currency:   *reply.Currency,
		Confidence: *reply.Confidence,
		Factors:    reply.Factors,
		Provenance: Provenance{Model: model},
	})
}

func NewSalaryDelegate(runner Runner) *Delegate[SalaryInput, SalaryResult] {
	return NewDelegate(runner, SalaryScript, func(in SalaryInput) any {
		skills := in.Skills
		if skills == nil {
			skills = []string{}
		}
		return map[string]any{
			"experience": in.Experience,
			"role":       in.Role,
			"location":   in.Location,
			"education":  in.Education,
			"skills":     skills,
		}
	}, decodeSalary)
}

var (
	baseSalaries = map[string]float64{
		"Software Developer":   75000,
		"Senior Developer":     110000,
		"Full Stack Developer": 90000,
		"Frontend Developer":   80000,
		"Backend Developer":    85000,
		"Data Scientist":       95000,
		"ML Engineer":          105000,
		"DevOps Engineer":      95000,
		"Product Manager":      120000,
		"UX Designer":          70000,
		"QA Engineer":          65000,
		"System Administrator": 70000,
	}

	marketMultipliers = map[string]float64{
		"United States":  1.3,
		"San Francisco":  1.6,
		"New York":       1.4,
		"United Kingdom": 1.2,
		"London":         1.3,
		"Germany":        1.1,
		"Canada":         1.0,
		"Australia":      1.0,
		"New Zealand":    0.9,
		"Auckland":       1.0,
		"India":          0.35,
		"Bangalore":      0.4,
	}

	cityAdjustments = map[string]float64{
		"San Francisco": 1.4,
		"New York":      1.3,
		"London":        1.2,
		"Sydney":        1.1,
		"Auckland":      1.0,
		"Berlin":        1.0,
		"Toronto":       1.0,
		"Bangalore":     0.8,
		"Mumbai":        0.7,
	}

	educationMultipliers = map[string]float64{
		"PhD":         1.25,
		"Master":      1.15,
		"Bachelor":    1.05,
		"Diploma":     1.0,
		"High School": 0.9,
	}

	highValueSkills = setOf(
		"machine learning", "ai", "artificial intelligence", "tensorflow", "pytorch",
		"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "react",
		"angular", "vue", "node.js", "python", "java", "spring boot", "rust", "go",
	)

	mediumValueSkills = setOf(
		"javascript", "typescript", "sql", "nosql", "mongodb", "postgresql",
		"redis", "kafka", "jenkins", "git", "ci/cd", "rest api", "graphql",
	)

	currencies = map[string]string{
		"United States":  "USD",
		"New Zealand":    "NZD",
		"India":          "INR",
		"United Kingdom": "GBP",
		"Germany":        "EUR",
		"Canada":         "CAD",
		"Australia":      "AUD",
	}

	// USD per one unit of the currency
	usdRates = map[string]float64{
		"USD": 1.0,
		"NZD": 0.62,
		"INR": 0.012,
		"GBP": 1.27,
		"EUR": 1.09,
		"CAD": 0.74,
		"AUD": 0.66,
	}
)

// SalaryHeuristic is the deterministic in-process salary estimate.
type SalaryHeuristic struct{}

func (SalaryHeuristic) Predict(_ context.Context, in SalaryInput) (SalaryResult, error) {
	base := lookup(baseSalaries, in.Role, 80000) * lookup(marketMultipliers, in.Location, 0.8)

	experience := 1.0 + float64(min(max(in.Experience, 0), 20))*0.08
	education := lookup(educationMultipliers, in.Education, 1.0)

	var high, medium int
	for _, s := range in.Skills {
		key := strings.ToLower(strings.TrimSpace(s))
		if _, ok := highValueSkills[key]; ok {
			high++
		} else if _, ok := mediumValueSkills[key]; ok {
			medium++
		}
	}
	bonus := base * (0.03*float64(high) + 0.015*float64(medium))

	// bounds apply to the local figure, USD is derived from it
	local := (base*experience*education + bonus) * lookup(cityAdjustments, in.Location, 1.0)
	local = math.Round(math.Max(minSalary, math.Min(maxSalary, local)))

	currency := lookup(currencies, in.Location, "USD")
	usd := math.Round(local * lookup(usdRates, currency, 1.0))

	confidence := min(75+min(in.Experience*2, 10)+min(len(in.Skills)*2, 8), 88)

	return NewSalaryResult(SalaryResult{
		Salary:     local,
		SalaryUSD:  usd,
		Currency:   currency,
		Confidence: float64(confidence),
		Factors:    salaryFactors(in),
		Note:       "Based on comprehensive market research and industry standards",
		Provenance: Provenance{Model: salaryHeuristicID, Status: "fallback_used"},
	})
}

func salaryFactors(in SalaryInput) []string {
	top := in.Skills[:min(len(in.Skills), 3)]
	education := in.Education
	if education == "" {
		education = "Not specified"
	}
	return []string{
		"Role: " + in.Role,
		fmt.Sprintf("%d years experience", in.Experience),
		"Location: " + in.Location,
		"Education: " + education,
		fmt.Sprintf("%d skills including: %s", len(in.Skills), strings.Join(top, ", ")),
		"Market-adjusted pricing",
	}
}

func lookup[V any](m map[string]V, key string, def V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

func setOf(items ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}
