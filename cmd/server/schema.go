package main

import (
	"bytes"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/graph"
	"github.com/spf13/cobra"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the GraphQL schema",
	Long:  `Validates the embedded schema and prints it in normalised SDL form.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: graph.SDL})
		if err != nil {
			return fmt.Errorf("invalid schema: %w", err)
		}

		var buf bytes.Buffer
		f := formatter.NewFormatter(&buf, formatter.WithIndent("  "))
		f.FormatSchema(schema)

		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		return err
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
