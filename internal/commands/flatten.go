// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

package commands

import (
	"github.com/spf13/cobra"

	"github.com/XuHaoJun/line-bot-sdk-rs/internal/flatten"
	"github.com/XuHaoJun/line-bot-sdk-rs/internal/oaschema"
)

func newFlattenCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "flatten <schema>",
		Short: "Flatten a schema document without generating",
		Long: `Resolve allOf composition in the document and print the flattened
result, for inspecting what the external generator would consume.`,
		Example: `  # Print the flattened document
  sdkgen flatten line-openapi/messaging-api.yml

  # Write it to a file
  sdkgen flatten line-openapi/messaging-api.yml -o flattened.yml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := oaschema.LoadFile(args[0])
			if err != nil {
				return err
			}
			if err := flatten.Document(doc); err != nil {
				return err
			}
			if output != "" {
				return doc.WriteFile(output)
			}
			return doc.Encode(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the flattened document to a file instead of stdout")

	return cmd
}
