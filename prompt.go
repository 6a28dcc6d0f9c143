package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"lg/bmi-checker-go/internal/quantity"
)

/* ─── Line input ─────────────────────────────────────────────────────── */

// readLine prints prompt and returns the next trimmed input line. A final
// line without a newline is still returned; io.EOF comes on the next call.
func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readYes asks a y/n question; anything starting with "y" is yes.
func (s *Shell) readYes(prompt string) (bool, error) {
	ans, err := s.readLine(prompt)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(ans), "y"), nil
}

// readPositive re-prompts until the user enters a finite number above zero.
func (s *Shell) readPositive(prompt string) (float64, error) {
	for {
		raw, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err == nil && v > 0 && !math.IsInf(v, 0) {
			return v, nil
		}
		fmt.Fprintln(s.out, "Please enter a positive number (e.g. 70 or 70.5).")
	}
}

/* ─── Measurements ───────────────────────────────────────────────────── */

// readMass re-prompts until quantity.ParseMass accepts the input.
func (s *Shell) readMass(label string) (quantity.Mass, error) {
	for {
		raw, err := s.readLine(label + " (e.g. 70 kg or 154 lb): ")
		if err != nil {
			return 0, err
		}
		m, err := quantity.ParseMass(raw)
		if err == nil {
			return m, nil
		}
		s.reportParseError(err)
	}
}

// readLength re-prompts until quantity.ParseLength accepts the input.
func (s *Shell) readLength(label string) (quantity.Length, error) {
	for {
		raw, err := s.readLine(label + " (e.g. 170 cm or 5 ft 9 in): ")
		if err != nil {
			return 0, err
		}
		l, err := quantity.ParseLength(raw)
		if err == nil {
			return l, nil
		}
		s.reportParseError(err)
	}
}

func (s *Shell) reportParseError(err error) {
	s.log.Debug("measurement rejected", zap.Error(err))
	var pe *quantity.ParseError
	if errors.As(err, &pe) {
		fmt.Fprintln(s.out, pe.Hint())
		return
	}
	fmt.Fprintln(s.out, "Couldn't parse that, please try again.")
}
