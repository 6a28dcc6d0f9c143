// Package report renders BMI results, calorie plans and macro splits as
// console text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"lg/bmi-checker-go/internal/metrics"
	"lg/bmi-checker-go/internal/planner"
)

// Formats accepted by Encode.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// HealthTips is the fixed list printed from the menu.
var HealthTips = []string{
	"Aim for 0.5–1 kg (1–2 lb) weight loss per week — it's safer and more sustainable.",
	"Prioritize protein and vegetables to stay full on fewer calories.",
	"Do a mix of resistance training and cardio — muscle helps raise metabolic rate.",
	"Get 7–9 hours of sleep per night; poor sleep increases hunger hormones.",
	"Stay hydrated and limit sugary drinks.",
	"Avoid extreme calorie restriction; consult a dietitian for personalized plans.",
}

// Report is the full result of one planning run, as emitted by cmd/plan.
type Report struct {
	ID        string    `json:"id" yaml:"id"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	WeightKg float64          `json:"weight_kg" yaml:"weight_kg"`
	HeightCm float64          `json:"height_cm" yaml:"height_cm"`
	TargetKg float64          `json:"target_kg" yaml:"target_kg"`
	Age      int              `json:"age" yaml:"age"`
	Sex      metrics.Sex      `json:"sex" yaml:"sex"`
	BMI      float64          `json:"bmi" yaml:"bmi"`
	Category metrics.Category `json:"category" yaml:"category"`
	Activity string           `json:"activity" yaml:"activity"`
	BMR      int              `json:"bmr" yaml:"bmr"`
	TDEE     int              `json:"tdee" yaml:"tdee"`
	Days     int              `json:"days" yaml:"days"`

	Plan   planner.Plan    `json:"plan" yaml:"plan"`
	Macros *planner.Macros `json:"macros,omitempty" yaml:"macros,omitempty"`
}

// New stamps a report with a fresh ID and the current UTC time.
func New() Report {
	return Report{ID: uuid.NewString(), CreatedAt: time.Now().UTC()}
}

// Encode writes r to w in the given format.
func (r Report) Encode(w io.Writer, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatText, "":
		return r.writeText(w)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func (r Report) writeText(w io.Writer) error {
	fmt.Fprintf(w, "Report %s\n", r.ID)
	WriteBMI(w, r.BMI, r.Category)
	fmt.Fprintf(w, "Estimated TDEE (calories/day to maintain current weight): %d kcal\n", r.TDEE)
	WritePlan(w, r.Plan)
	if r.Macros != nil {
		WriteMacros(w, *r.Macros)
	}
	return nil
}

/* ─── Console text ───────────────────────────────────────────────────── */

// WriteBMI prints the BMI value, its category label and the category advice.
func WriteBMI(w io.Writer, bmi float64, c metrics.Category) {
	fmt.Fprintf(w, "\nYour BMI is %.1f — %s\n", bmi, c.Label())
	fmt.Fprintf(w, "Advice: %s\n", c.Advice())
}

// WritePlan prints the plan figures and any warnings. A no-change plan
// prints only its message.
func WritePlan(w io.Writer, p planner.Plan) {
	if !p.HasPlan() {
		fmt.Fprintln(w, p.Message)
		return
	}
	fmt.Fprintf(w, "\nTo lose %.2f kg (approx) in %.1f weeks:\n", p.KgToLose, p.EstimatedWeeks)
	fmt.Fprintf(w, " - Total calories to lose: %d kcal\n", p.TotalKcalNeeded)
	fmt.Fprintf(w, " - Daily calorie deficit needed: %d kcal/day\n", p.DailyDeficit)
	fmt.Fprintf(w, " - Suggested daily calorie intake: %d kcal/day\n", p.SuggestedDailyCalories)
	fmt.Fprintf(w, " - Estimated weekly loss (if followed): %.3f kg/week\n", p.WeeklyLossKg)

	if len(p.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warn := range p.Warnings {
			fmt.Fprintln(w, "-", warn.Message)
		}
	}
}

// WriteMacros prints the macro split in grams and kcal.
func WriteMacros(w io.Writer, m planner.Macros) {
	fmt.Fprintln(w, "\nSuggested daily macronutrients (approx):")
	fmt.Fprintf(w, " - Protein: %d g (%d kcal)\n", m.ProteinG, m.ProteinKcal)
	fmt.Fprintf(w, " - Fat: %d g (%d kcal)\n", m.FatG, m.FatKcal)
	fmt.Fprintf(w, " - Carbs: %d g (%d kcal)\n", m.CarbG, m.CarbKcal)
}

// WriteTips prints HealthTips as a bulleted list.
func WriteTips(w io.Writer) {
	fmt.Fprintln(w, "\nGeneral health tips:")
	for _, tip := range HealthTips {
		fmt.Fprintln(w, "-", tip)
	}
	fmt.Fprintln(w)
}
