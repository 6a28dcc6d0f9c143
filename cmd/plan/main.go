// One-shot calorie plan: takes body stats as flags and prints a report.
// Usage: go run ./cmd/plan -weight "90 kg" -height "5 ft 11 in" -target 80 -age 35 -sex male -weeks 10
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"lg/bmi-checker-go/internal/config"
	"lg/bmi-checker-go/internal/metrics"
	"lg/bmi-checker-go/internal/planner"
	"lg/bmi-checker-go/internal/quantity"
	"lg/bmi-checker-go/internal/report"
)

var errRefused = errors.New("plan refused")

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(os.Args[1:], os.Stdout, cfg, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, cfg *config.Config, logger *zap.Logger) error {
	fs := flag.NewFlagSet("plan", flag.ContinueOnError)
	weightRaw := fs.String("weight", "", `current weight, e.g. "70 kg" or "154 lb"`)
	heightRaw := fs.String("height", "", `height, e.g. "170 cm", "1.75 m" or "5 ft 9 in"`)
	targetRaw := fs.String("target", "", "target weight; a bare number takes the unit of -weight")
	age := fs.Int("age", 0, "age in years")
	sexRaw := fs.String("sex", "", "male, female or other")
	activity := fs.String("activity", metrics.DefaultActivityKey, "activity tier key (1-5) or name")
	weeks := fs.Float64("weeks", 0, "timeframe in weeks")
	pregnant := fs.Bool("pregnant", false, "pregnant or breastfeeding")
	medical := fs.Bool("medical", false, "diagnosed condition affecting diet or exercise")
	format := fs.String("format", cfg.PlanFormat, "output format: text, json or yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	weight, err := quantity.ParseMass(*weightRaw)
	if err != nil {
		return err
	}
	target, err := quantity.ParseMass(withUnitOf(*targetRaw, *weightRaw))
	if err != nil {
		return err
	}
	height, err := quantity.ParseLength(*heightRaw)
	if err != nil {
		return err
	}
	if *weeks <= 0 || math.IsInf(*weeks, 0) || math.IsNaN(*weeks) {
		return fmt.Errorf("weeks must be a positive number, got %v", *weeks)
	}

	sex := metrics.ParseSex(*sexRaw)
	switch {
	case *age <= 0:
		return fmt.Errorf("age must be a positive number, got %d", *age)
	case *age < cfg.MinAge:
		return fmt.Errorf("%w: under %d, consult a pediatrician or registered dietitian", errRefused, cfg.MinAge)
	case *pregnant && sex == metrics.SexFemale:
		return fmt.Errorf("%w: pregnant/breastfeeding, consult an obstetrician or registered dietitian", errRefused)
	case *medical:
		return fmt.Errorf("%w: medical condition, consult a clinician or registered dietitian", errRefused)
	}

	level, ok := metrics.LookupActivity(*activity)
	if !ok {
		logger.Warn("unknown activity tier, using default", zap.String("activity", *activity))
		level = metrics.ActivityOrDefault(*activity)
	}

	r := report.New()
	r.WeightKg = weight.Kilograms()
	r.HeightCm = height.Centimetres()
	r.TargetKg = target.Kilograms()
	r.Age = *age
	r.Sex = sex
	r.BMI = metrics.BMI(r.WeightKg, r.HeightCm)
	r.Category = metrics.Categorize(r.BMI)
	r.Activity = level.Key

	bmr := metrics.BMR(r.WeightKg, r.HeightCm, r.Age, sex)
	r.BMR = int(math.Round(bmr))
	r.TDEE = metrics.TDEE(bmr, level.Key)
	r.Days = planner.DaysFromWeeks(*weeks)
	r.Plan = planner.PlanWeightChange(planner.Request{
		CurrentKg: r.WeightKg,
		TargetKg:  r.TargetKg,
		TDEE:      r.TDEE,
		Days:      r.Days,
		Sex:       sex,
	})
	if r.Plan.HasPlan() {
		m := planner.RecommendMacros(r.Plan.SuggestedDailyCalories, r.WeightKg, level.Key)
		r.Macros = &m
	}

	logger.Info("plan computed",
		zap.String("report_id", r.ID),
		zap.String("outcome", string(r.Plan.Outcome)),
		zap.Int("tdee", r.TDEE),
		zap.Int("days", r.Days))

	if *age > cfg.SeniorAge {
		logger.Warn("metabolic estimates less accurate for older adults", zap.Int("age", *age))
	}
	return r.Encode(stdout, *format)
}

// withUnitOf appends ref's unit to raw when raw is a bare number, so
// -weight "200 lb" -target 180 means 180 lb.
func withUnitOf(raw, ref string) string {
	if strings.TrimSpace(raw) == "" || strings.IndexFunc(raw, unicode.IsLetter) >= 0 {
		return raw
	}
	i := strings.IndexFunc(ref, unicode.IsLetter)
	if i < 0 {
		return raw
	}
	return raw + " " + ref[i:]
}
