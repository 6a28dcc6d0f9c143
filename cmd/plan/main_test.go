package main

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"lg/bmi-checker-go/internal/config"
	"lg/bmi-checker-go/internal/quantity"
)

func testConfig() *config.Config {
	return &config.Config{LogLevel: "debug", LogFormat: "console", PlanFormat: "text", MinAge: 18, SeniorAge: 80}
}

func runArgs(t *testing.T, args ...string) (string, *observer.ObservedLogs, error) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	var out bytes.Buffer
	err := run(args, &out, testConfig(), zap.New(core))
	return out.String(), logs, err
}

var baseArgs = []string{"-weight", "90 kg", "-height", "180 cm", "-target", "80", "-age", "35", "-sex", "male", "-activity", "moderate", "-weeks", "10"}

func TestRun_JSON(t *testing.T) {
	out, logs, err := runArgs(t, append(baseArgs, "-format", "json")...)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "3", got["activity"])
	assert.EqualValues(t, 2875, got["tdee"])
	assert.EqualValues(t, 1855, got["bmr"])
	assert.EqualValues(t, 70, got["days"])

	plan := got["plan"].(map[string]any)
	assert.EqualValues(t, 1875, plan["suggested_daily_calories"])
	assert.Contains(t, got, "macros")

	assert.Equal(t, 1, logs.FilterMessage("plan computed").Len())
}

func TestRun_TextIsDefault(t *testing.T) {
	out, _, err := runArgs(t, baseArgs...)
	require.NoError(t, err)
	assert.Contains(t, out, "Estimated TDEE (calories/day to maintain current weight): 2875 kcal")
	assert.Contains(t, out, " - Suggested daily calorie intake: 1875 kcal/day")
}

func TestRun_NoLossNeeded(t *testing.T) {
	out, _, err := runArgs(t, "-weight", "70", "-height", "1.7", "-target", "75", "-age", "30", "-weeks", "4", "-format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"outcome": "no_change"`)
	assert.NotContains(t, out, "macros")
}

// TestRun_TargetInheritsWeightUnit: 200 lb -> 180 lb is 90.72 -> 81.65 kg.
func TestRun_TargetInheritsWeightUnit(t *testing.T) {
	out, _, err := runArgs(t, "-weight", "200 lb", "-target", "180", "-height", "180", "-age", "40", "-sex", "m", "-weeks", "20", "-format", "json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 90.72, got["weight_kg"], 0.001)
	assert.InDelta(t, 81.65, got["target_kg"], 0.001)
	assert.NotEqual(t, "no_change", got["plan"].(map[string]any)["outcome"])
}

func TestWithUnitOf(t *testing.T) {
	cases := []struct{ raw, ref, want string }{
		{"180", "200 lb", "180 lb"},
		{"180", "200lbs", "180 lbs"},
		{"80 kg", "200 lb", "80 kg"},
		{"80", "90", "80"},
		{"", "200 lb", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, withUnitOf(tc.raw, tc.ref), tc.raw+"/"+tc.ref)
	}
}

func TestRun_UnknownActivityWarns(t *testing.T) {
	out, logs, err := runArgs(t, "-weight", "70", "-height", "170", "-target", "65", "-age", "30", "-sex", "other", "-activity", "9", "-weeks", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "1841 kcal")
	assert.Equal(t, 1, logs.FilterMessage("unknown activity tier, using default").Len())
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"bad weight", []string{"-weight", "heavy"}, "parse weight"},
		{"no weeks", []string{"-weight", "70", "-target", "60", "-height", "170", "-age", "30"}, "weeks must be a positive number"},
		{"no age", []string{"-weight", "70", "-target", "60", "-height", "170", "-weeks", "4"}, "age must be a positive number"},
		{"minor", []string{"-weight", "70", "-target", "60", "-height", "170", "-weeks", "4", "-age", "16"}, "under 18"},
		{"pregnant", []string{"-weight", "70", "-target", "60", "-height", "170", "-weeks", "4", "-age", "30", "-sex", "f", "-pregnant"}, "pregnant/breastfeeding"},
		{"medical", []string{"-weight", "70", "-target", "60", "-height", "170", "-weeks", "4", "-age", "30", "-medical"}, "medical condition"},
		{"format", []string{"-weight", "70", "-target", "60", "-height", "170", "-weeks", "4", "-age", "30", "-format", "xml"}, `unknown format "xml"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := runArgs(t, tc.args...)
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestRun_ParseErrorIsTyped(t *testing.T) {
	_, _, err := runArgs(t, "-weight", "70 st")
	assert.ErrorIs(t, err, quantity.ErrUnknownUnit)
}

func TestRun_Help(t *testing.T) {
	core, _ := observer.New(zapcore.DebugLevel)
	err := run([]string{"-h"}, io.Discard, testConfig(), zap.New(core))
	assert.Error(t, err)
}
