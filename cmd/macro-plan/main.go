// CLI tool to print a calorie and macro plan for one profile.
// Usage: go run ./cmd/macro-plan -sex male -age 25 -height 180 -weight 80 -activity moderate -goal maintain
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"lg/macro-plan-api/macro"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, prints the plan to stdout and returns the exit code:
// 0 on success, 2 on bad flags or invalid input.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("macro-plan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	sex := fs.String("sex", "", "male or female")
	age := fs.Int("age", 0, "age in years (10-100)")
	height := fs.Float64("height", 0, "height in cm (100-250)")
	weight := fs.Float64("weight", 0, "weight in kg (30-200)")
	activity := fs.String("activity", "", "sedentary, light, moderate, active or very_active")
	goal := fs.String("goal", "", "bulk, maintain or cut")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	profile, err := macro.NewProfile(*sex, *age, *height, *weight, *activity, *goal)
	if err != nil {
		errs := macro.ValidationErrors(err)
		if len(errs) == 0 {
			fmt.Fprintln(stderr, err)
		}
		for _, ve := range errs {
			fmt.Fprintln(stderr, ve)
		}
		return 2
	}

	plan, err := macro.ComputePlan(profile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	fmt.Fprintf(stdout, "BMR: %.0f kcal\n", plan.Energy.BMRKcal)
	fmt.Fprintf(stdout, "TDEE: %.0f kcal\n", plan.Energy.TDEEKcal)
	for _, line := range plan.Summary() {
		fmt.Fprintln(stdout, line)
	}
	for _, w := range plan.Warnings {
		fmt.Fprintf(stderr, "warning: %s\n", w.Message)
	}
	return 0
}
