package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"lg/bmi-checker-go/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{LogLevel: "debug", LogFormat: "console", PlanFormat: "text", MinAge: 18, SeniorAge: 80}
}

// script joins input lines the way a user would type them.
func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

// runScript plays input through a fresh shell and returns the transcript and
// the observed log entries.
func runScript(t *testing.T, input string) (string, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	var out bytes.Buffer
	sh := NewShell(strings.NewReader(input), &out, testConfig(), zap.New(core))
	require.NoError(t, sh.Run())
	return out.String(), logs
}

/* ─── Session loop ───────────────────────────────────────────────────── */

func TestShell_ExitFromMenu(t *testing.T) {
	for _, choice := range []string{"4", "exit", "QUIT"} {
		out, _ := runScript(t, script("", choice))
		assert.Contains(t, out, "Welcome")
		assert.Contains(t, out, "BMI Checker Bot")
		assert.Contains(t, out, "Goodbye", choice)
	}
}

// TestShell_EOFEndsSession: closing stdin anywhere is a clean exit.
func TestShell_EOFEndsSession(t *testing.T) {
	for _, input := range []string{"", script(""), script("", "1", "70 kg")} {
		out, logs := runScript(t, input)
		assert.NotContains(t, out, "Goodbye")
		assert.Equal(t, 1, logs.FilterMessage("input closed").Len())
	}
}

func TestShell_InvalidChoice(t *testing.T) {
	out, _ := runScript(t, script("", "9", "4"))
	assert.Contains(t, out, "Invalid choice — try again.")
}

func TestShell_HealthTips(t *testing.T) {
	out, _ := runScript(t, script("", "3", "4"))
	assert.Contains(t, out, "General health tips:")
	assert.Contains(t, out, "Stay hydrated and limit sugary drinks.")
}

/* ─── BMI check ──────────────────────────────────────────────────────── */

// TestShell_CheckBMI_RepromptsOnBadInput walks through each parse failure
// kind before accepting 154 lb / 5 ft 9 in (69.85 kg, 175.3 cm -> 22.7).
func TestShell_CheckBMI_RepromptsOnBadInput(t *testing.T) {
	out, logs := runScript(t, script("", "1", "", "abc", "70 st", "154 lb", "tall", "5 ft 9 in", "4"))

	assert.Contains(t, out, "Please enter your weight.")
	assert.Contains(t, out, "Couldn't parse weight.")
	assert.Contains(t, out, "Unknown unit; use 'kg' or 'lb'.")
	assert.Contains(t, out, "Couldn't parse height.")
	assert.Contains(t, out, "Your BMI is 22.7 — Normal (healthy weight)")
	assert.Contains(t, out, "Advice: Maintain balanced nutrition")

	assert.Equal(t, 4, logs.FilterMessage("measurement rejected").Len())
	computed := logs.FilterMessage("bmi computed").All()
	require.Len(t, computed, 1)
	assert.Equal(t, "Normal", computed[0].ContextMap()["category"])
}

/* ─── Planner ────────────────────────────────────────────────────────── */

func TestShell_Plan_RequiresConsent(t *testing.T) {
	out, _ := runScript(t, script("no thanks", "2", "4"))
	assert.Contains(t, out, "Personalized calorie plans are disabled")
	assert.NotContains(t, out, "Weight-loss calorie planner")
}

// TestShell_Plan_Full: male, 90 kg -> 80 kg, 35 y, 180 cm, moderate tier,
// 10 weeks. BMR = 900 + 1125 - 175 + 5 = 1855, TDEE = round(1855 * 1.55)
// = 2875. The 1100 kcal/day deficit is clamped to 1000 -> 1875 kcal/day.
func TestShell_Plan_Full(t *testing.T) {
	out, logs := runScript(t, script(
		"i agree", "2",
		"90 kg", "80 kg",
		"abc", "-3", "35", // age re-prompts twice
		"male", "n",
		"180 cm", "3",
		"10",
		"4",
	))

	assert.Contains(t, out, "Please enter a positive number")
	assert.NotContains(t, out, "Are you pregnant", "only asked of female users")
	assert.Contains(t, out, " 3) moderately active (moderate exercise 3-5 days/week)")
	assert.Contains(t, out, "Estimated TDEE (calories/day to maintain current weight): 2875 kcal")
	assert.Contains(t, out, "To lose 10.00 kg (approx) in 11.0 weeks:")
	assert.Contains(t, out, " - Daily calorie deficit needed: 1000 kcal/day")
	assert.Contains(t, out, " - Suggested daily calorie intake: 1875 kcal/day")
	assert.Contains(t, out, "Required deficit exceeds common safety recommendations")
	assert.Contains(t, out, " - Protein: 162 g (648 kcal)")
	assert.Contains(t, out, " - Fat: 58 g (525 kcal)")

	entries := logs.FilterMessage("plan computed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "warnings", fields["outcome"])
	assert.EqualValues(t, 2875, fields["tdee"])
	assert.EqualValues(t, 70, fields["days"])
}

func TestShell_Plan_NoLossNeeded(t *testing.T) {
	out, _ := runScript(t, script(
		"I AGREE", "2",
		"70", "75", "30",
		"", // blank sex -> other, no pregnancy question
		"n",
		"170", "", // default activity
		"8",
		"4",
	))

	assert.Contains(t, out, "Target weight is not less than current weight. No calorie deficit needed.")
	assert.NotContains(t, out, "macronutrients")
	assert.NotContains(t, out, "Are you pregnant")
}

func TestShell_Plan_SafetyStops(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"under age", script("I AGREE", "2", "70", "60", "16", "4"), "You are under 18"},
		{"pregnant", script("I AGREE", "2", "70", "60", "30", "female", "y", "4"), "pregnant/breastfeeding"},
		{"medical", script("I AGREE", "2", "70", "60", "30", "female", "n", "yes", "4"), "Because of your medical condition"},
		{"senior note", script("I AGREE", "2", "70", "60", "85", "m", "y", "4"), "For older adults (80+)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, logs := runScript(t, tc.input)
			assert.Contains(t, out, tc.want)
			assert.NotContains(t, out, "Estimated TDEE")
			assert.Zero(t, logs.FilterMessage("plan computed").Len())
		})
	}
}

func TestShell_Plan_UnknownActivityFallsBack(t *testing.T) {
	// other sex: BMR = 700 + 1062.5 - 150 - 78 = 1534.5, x1.2 = 1841.4
	out, logs := runScript(t, script(
		"I AGREE", "2",
		"70", "65", "30", "other", "n", "170",
		"9", // not a tier
		"12",
		"4",
	))

	assert.Contains(t, out, "Estimated TDEE (calories/day to maintain current weight): 1841 kcal")
	assert.Equal(t, 1, logs.FilterMessage("unknown activity key, using default").Len())
}
