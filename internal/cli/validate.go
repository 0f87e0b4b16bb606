package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abyssparanoia/blender-go/internal/ir"
	"github.com/abyssparanoia/blender-go/internal/schema"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid     bool                     `json:"valid"`
	Files     int                      `json:"files"`
	Classes   int                      `json:"classes"`
	Operators int                      `json:"operators"`
	Errors    []schema.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <schema-dir>",
		Short: "Validate a bpy schema without generating code",
		Long: `Load and check a CUE class schema without rendering bindings.

Reports every problem found: unknown types, missing classes, duplicate
members, enums without items and inheritance cycles.

Exit codes:
  0 - Schema is valid
  1 - Schema has errors
  2 - Command error (directory not found, etc.)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, schemaDir string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout())

	loaded, errs := schema.Load(schemaDir)
	if len(errs) > 0 {
		return reportGenerateError(formatter, loadFailure(errs))
	}
	opts.logger().Debug("schema loaded", "dir", schemaDir, "files", loaded.FileCount, "classes", len(loaded.Classes))

	types, operators := classCount(loaded.Classes)
	result := ValidationResult{
		Files:     loaded.FileCount,
		Classes:   types,
		Operators: operators,
		Errors:    schema.Validate(loaded.Classes),
	}
	result.Valid = len(result.Errors) == 0

	message := fmt.Sprintf("schema has %d validation error(s)", len(result.Errors))
	if opts.Format == "json" {
		if !result.Valid {
			return formatter.fail(ExitFailure, ErrCodeInvalid, message, result.Errors, nil)
		}
		return formatter.Success(result)
	}

	w := cmd.OutOrStdout()
	if !result.Valid {
		fmt.Fprintf(w, "✗ Schema invalid: %d error(s)\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Fprintf(w, "  %s\n", e.Error())
		}
		return NewExitError(ExitFailure, message)
	}
	fmt.Fprintf(w, "✓ Schema valid: %d class(es), %d operator(s) in %d file(s)\n",
		result.Classes, result.Operators, result.Files)
	return nil
}

// classCount splits classes into data classes and operators.
func classCount(classes []ir.ClassSpec) (types, operators int) {
	for _, c := range classes {
		if c.IsOperator() {
			operators++
		} else {
			types++
		}
	}
	return types, operators
}
