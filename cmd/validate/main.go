package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jwebster45206/drama-engine/pkg/tuning"
	"gopkg.in/yaml.v3"
)

func main() {
	verbose := flag.Bool("v", false, "print the effective tuning of each valid file")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-v] <tuning.yaml>...\n", os.Args[0])
		os.Exit(1)
	}

	failed := 0
	for _, filename := range flag.Args() {
		validator := &TuningValidator{}
		t, err := validator.validateFile(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ %v\n", err)
			failed++
			continue
		}
		fmt.Printf("✓ %s\n", filename)
		if *verbose {
			printTuning(t)
		}
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d tuning files failed validation\n", failed, flag.NArg())
		os.Exit(1)
	}
	fmt.Println("Tuning files are valid!")
}

type TuningValidator struct {
	errors []string
}

func (v *TuningValidator) validateFile(filename string) (tuning.Tuning, error) {
	t := tuning.Default()

	baseName := filepath.Base(filename)
	ext := filepath.Ext(baseName)
	if ext != ".yaml" && ext != ".yml" {
		return t, fmt.Errorf("tuning file must have .yaml or .yml extension: %s", baseName)
	}
	if !isValidTuningFilename(strings.TrimSuffix(baseName, ext)) {
		return t, fmt.Errorf("tuning filename '%s' must be lowercase snake_case (e.g., fast_pacing.yaml)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return t, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	v.errors = nil

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&t); err != nil {
		return t, fmt.Errorf("file %s failed strict YAML unmarshaling: %w", filename, err)
	}

	v.validateTuning(t)

	if len(v.errors) > 0 {
		return t, fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}
	return t, nil
}

func (v *TuningValidator) validateTuning(t tuning.Tuning) {
	if err := t.Validate(); err != nil {
		var joined interface{ Unwrap() []error }
		if errors.As(err, &joined) {
			for _, e := range joined.Unwrap() {
				v.addError(e.Error())
			}
		} else {
			v.addError(err.Error())
		}
	}

	// Closer than this, two characters enter interact range on the same step.
	if t.MinSeparation > 0 && t.InteractRadius > 0 && t.MinSeparation < t.InteractRadius/2 {
		v.addError(fmt.Sprintf("min_separation (%v) is under half of interact_radius (%v); characters would trigger together", t.MinSeparation, t.InteractRadius))
	}
}

func (v *TuningValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var validFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func isValidTuningFilename(name string) bool {
	// Allow 'x.' prefix for experimental tunings
	name = strings.TrimPrefix(name, "x.")
	return validFilenameRegex.MatchString(name)
}

func printTuning(t tuning.Tuning) {
	for i, b := range t.TierBudgets {
		fmt.Printf("  tier %d: %s\n", i, b)
	}
	fmt.Printf("  terminal tier: %d\n", t.Terminal())
	fmt.Printf("  reveal/interact radius: %v/%v\n", t.RevealRadius, t.InteractRadius)
	fmt.Printf("  separation %v, margin %v, item jitter %v\n", t.MinSeparation, t.Margin, t.ItemJitter)
	fmt.Printf("  placement attempts %d (items %d)\n", t.PlacementAttempts, t.ItemPlacementAttempts)
}
