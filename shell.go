package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lg/bmi-checker-go/internal/config"
	"lg/bmi-checker-go/internal/metrics"
	"lg/bmi-checker-go/internal/planner"
	"lg/bmi-checker-go/internal/report"
)

// Shell holds the shared dependencies of the interactive session: the input
// reader, the transcript writer, config and logger.
type Shell struct {
	in      *bufio.Reader
	out     io.Writer
	cfg     *config.Config
	log     *zap.Logger
	consent bool
}

// NewShell wires a session to the given input and output.
func NewShell(in io.Reader, out io.Writer, cfg *config.Config, logger *zap.Logger) *Shell {
	return &Shell{
		in:  bufio.NewReader(in),
		out: out,
		cfg: cfg,
		log: logger.With(zap.String("session_id", uuid.NewString())),
	}
}

/* ─── Session loop ───────────────────────────────────────────────────── */

// Run shows the disclaimer, then serves the menu until the user exits or the
// input ends. End of input is a normal exit.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, "Welcome — this bot gives general guidance about BMI and calories. Not medical advice.")

	consent, err := s.askConsent()
	if err != nil {
		return s.finish(err)
	}
	s.consent = consent
	s.log.Info("session started", zap.Bool("consent", consent))

	for {
		s.printMenu()
		choice, err := s.readLine("Enter choice (1-4): ")
		if err != nil {
			return s.finish(err)
		}

		switch strings.ToLower(choice) {
		case "1":
			err = s.checkBMI()
		case "2":
			err = s.planWeightLoss()
		case "3":
			report.WriteTips(s.out)
		case "4", "exit", "quit":
			fmt.Fprintln(s.out, "Goodbye — consult a healthcare professional for medical advice.")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice — try again.")
		}
		if err != nil {
			return s.finish(err)
		}
	}
}

func (s *Shell) finish(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out)
		s.log.Info("input closed")
		return nil
	}
	return fmt.Errorf("read input: %w", err)
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out, "\nBMI Checker Bot")
	fmt.Fprintln(s.out, "Options:\n 1) Check BMI\n 2) Create weight-loss calorie plan\n 3) Health tips\n 4) Exit")
}

// askConsent shows the medical disclaimer. Only an explicit "I AGREE"
// (any case) enables personalized plans.
func (s *Shell) askConsent() (bool, error) {
	fmt.Fprintln(s.out, "\nIMPORTANT — Read before using the calorie planner:")
	fmt.Fprintln(s.out, "This tool provides general educational information only. It is NOT a medical diagnosis or a replacement for professional medical, nutritional, or psychiatric advice.")
	fmt.Fprintln(s.out, "People who are pregnant or breastfeeding, under 18 years old, have a history of an eating disorder, or have serious medical conditions (heart disease, diabetes, etc.) should consult a healthcare professional before changing diet or exercise.")
	fmt.Fprintln(s.out, "If you do not wish to accept these limits, you may still use the BMI calculator and general tips, but personalized calorie plans will be disabled.")

	resp, err := s.readLine("\nType 'I AGREE' to acknowledge and continue, or press Enter to continue without personalized plans: ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(resp, "I AGREE"), nil
}

/* ─── Actions ────────────────────────────────────────────────────────── */

func (s *Shell) checkBMI() error {
	fmt.Fprintln(s.out, "\n-- BMI Calculator --")
	weight, err := s.readMass("Enter weight")
	if err != nil {
		return err
	}
	height, err := s.readLength("Enter height")
	if err != nil {
		return err
	}

	bmi := metrics.BMI(weight.Kilograms(), height.Centimetres())
	category := metrics.Categorize(bmi)
	s.log.Info("bmi computed",
		zap.Float64("weight_kg", weight.Kilograms()),
		zap.Float64("height_cm", height.Centimetres()),
		zap.Float64("bmi", bmi),
		zap.String("category", string(category)))

	report.WriteBMI(s.out, bmi, category)
	return nil
}

// planWeightLoss runs the consent-gated planner: safety screening, body
// stats, activity tier, TDEE, timeframe, then the plan and macros.
func (s *Shell) planWeightLoss() error {
	if !s.consent {
		fmt.Fprintln(s.out, "\nPersonalized calorie plans are disabled because you did not acknowledge the disclaimer.")
		fmt.Fprintln(s.out, "You can still use BMI calculation and general health tips. To enable plans, restart the program and type 'I AGREE' when prompted.")
		return nil
	}

	fmt.Fprintln(s.out, "\n-- Weight-loss calorie planner --")
	weight, err := s.readMass("Current weight")
	if err != nil {
		return err
	}
	target, err := s.readMass("Target weight")
	if err != nil {
		return err
	}
	ageF, err := s.readPositive("Age (years): ")
	if err != nil {
		return err
	}
	age := int(ageF)

	if age < s.cfg.MinAge {
		fmt.Fprintf(s.out, "\nWarning: You are under %d. This tool is not suitable for children or adolescents. Please consult a pediatrician or registered dietitian.\n", s.cfg.MinAge)
		s.log.Info("plan refused", zap.String("reason", "under_min_age"), zap.Int("age", age))
		return nil
	}
	if age > s.cfg.SeniorAge {
		fmt.Fprintf(s.out, "\nNote: For older adults (%d+), metabolic estimates may be less accurate. Consult your doctor for personalized guidance.\n", s.cfg.SeniorAge)
	}

	sexRaw, err := s.readLine("Sex (male/female/other): ")
	if err != nil {
		return err
	}
	sex := metrics.ParseSex(sexRaw)

	if sex == metrics.SexFemale {
		pregnant, err := s.readYes("Are you pregnant or breastfeeding? (y/n): ")
		if err != nil {
			return err
		}
		if pregnant {
			fmt.Fprintln(s.out, "\nBecause you are pregnant/breastfeeding, please consult an obstetrician or registered dietitian before making changes to calories or weight goals.")
			s.log.Info("plan refused", zap.String("reason", "pregnancy"))
			return nil
		}
	}

	medical, err := s.readYes("Do you have any diagnosed medical condition that affects diet/exercise (e.g., diabetes, heart disease)? (y/n): ")
	if err != nil {
		return err
	}
	if medical {
		fmt.Fprintln(s.out, "\nBecause of your medical condition, personalized guidance from a clinician or registered dietitian is recommended. This tool cannot safely provide that level of personalization.")
		s.log.Info("plan refused", zap.String("reason", "medical_condition"))
		return nil
	}

	height, err := s.readLength("Height")
	if err != nil {
		return err
	}

	activity, err := s.readActivity()
	if err != nil {
		return err
	}

	bmr := metrics.BMR(weight.Kilograms(), height.Centimetres(), age, sex)
	tdee := metrics.TDEE(bmr, activity)
	fmt.Fprintf(s.out, "\nEstimated TDEE (calories/day to maintain current weight): %d kcal\n", tdee)

	weeks, err := s.readPositive("Over how many weeks do you want to reach the target? ")
	if err != nil {
		return err
	}
	days := planner.DaysFromWeeks(weeks)

	plan := planner.PlanWeightChange(planner.Request{
		CurrentKg: weight.Kilograms(),
		TargetKg:  target.Kilograms(),
		TDEE:      tdee,
		Days:      days,
		Sex:       sex,
	})
	s.log.Info("plan computed",
		zap.String("outcome", string(plan.Outcome)),
		zap.Int("tdee", tdee),
		zap.Int("bmr", int(math.Round(bmr))),
		zap.Int("days", days),
		zap.Int("suggested_kcal", plan.SuggestedDailyCalories),
		zap.Int("warnings", len(plan.Warnings)))

	report.WritePlan(s.out, plan)
	if !plan.HasPlan() {
		return nil
	}

	macros := planner.RecommendMacros(plan.SuggestedDailyCalories, weight.Kilograms(), activity)
	report.WriteMacros(s.out, macros)
	fmt.Fprintln(s.out)
	return nil
}

// readActivity lists the tiers and returns the chosen key. Blank means the
// default tier; unknown keys are passed through and fall back downstream.
func (s *Shell) readActivity() (string, error) {
	fmt.Fprintln(s.out, "Select activity level:")
	for _, a := range metrics.ActivityLevels() {
		fmt.Fprintf(s.out, " %s) %s\n", a.Key, a.Label)
	}
	key, err := s.readLine("Choose 1-5 (default 1): ")
	if err != nil {
		return "", err
	}
	if key == "" {
		key = metrics.DefaultActivityKey
	}
	if _, ok := metrics.LookupActivity(key); !ok {
		s.log.Debug("unknown activity key, using default", zap.String("key", key))
	}
	return key, nil
}
