// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

package commands

import (
	"strconv"

	"github.com/XuHaoJun/line-bot-sdk-rs/internal/pipeline"
	"github.com/XuHaoJun/line-bot-sdk-rs/internal/prompts"
)

func printSummary(s *pipeline.Summary) {
	prompts.PrintResult([]prompts.ResultField{
		{Label: "Document", Value: s.Document},
		{Label: "Schemas", Value: strconv.Itoa(s.Schemas)},
		{Label: "Discriminated", Value: strconv.Itoa(s.Discriminated)},
		{Label: "Unions generated", Value: strconv.Itoa(s.Generated)},
		{Label: "Unions skipped", Value: strconv.Itoa(s.Skipped)},
	}, "")
	for _, skip := range s.Skips {
		prompts.PrintWarn(skip.String())
	}
}
