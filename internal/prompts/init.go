// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

package prompts

import (
	"github.com/charmbracelet/huh"
)

// InitAnswers collects the interactive init form's input.
type InitAnswers struct {
	GeneratorBin string
	Target       string
	Schema       string
	Output       string
	Package      string
	Strategy     string
}

// RunInitForm runs the interactive form for the init command.
func RunInitForm(a *InitAnswers) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Generator binary").
				Placeholder("openapi-generator").
				Validate(requiredValidator("generator binary")).
				Value(&a.GeneratorBin),
			huh.NewInput().
				Title("Language target").
				Placeholder("rust").
				Validate(requiredValidator("language target")).
				Value(&a.Target),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Schema document path").
				Placeholder("line-openapi/messaging-api.yml").
				Validate(requiredValidator("schema path")).
				Value(&a.Schema),
			huh.NewInput().
				Title("Output directory").
				Placeholder("packages/messaging-api").
				Validate(requiredValidator("output directory")).
				Value(&a.Output),
			huh.NewInput().
				Title("Package name").
				Placeholder("line-bot-sdk-messaging-api").
				Value(&a.Package),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Union synthesis strategy").
				Options(
					huh.NewOption("Inline fields (tagged enum)", "inline"),
					huh.NewOption("Wrapper (untagged enum, always synthesizable)", "wrapper"),
				).
				Value(&a.Strategy),
		),
	).WithTheme(Theme()).Run()
}
