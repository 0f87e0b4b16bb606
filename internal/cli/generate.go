package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abyssparanoia/blender-go/internal/codegen"
	"github.com/abyssparanoia/blender-go/internal/schema"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	OutputDir string
	Module    string
	Watch     bool
}

// GenerateResult summarizes one generation run.
type GenerateResult struct {
	Classes   int      `json:"classes"`
	Files     []string `json:"files"`
	OutputDir string   `json:"output_dir"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate <schema-dir>",
		Short: "Generate Go bindings from a bpy schema",
		Long: `Load the CUE class schema in a directory, validate it and render one Go
file per class into the output directory. Data classes go to the types
package and operator classes to the ops package.

With --watch the bindings are regenerated whenever a .cue file changes,
until interrupted.

Examples:
  blender-go generate ./schema -o ./bpy
  blender-go generate ./schema -o ./bpy --module example.com/scenes
  blender-go generate ./schema -o ./bpy --watch`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", "", "output directory (required)")
	_ = cmd.MarkFlagRequired("output")
	cmd.Flags().StringVar(&opts.Module, "module", codegen.DefaultModule, "module path the generated packages import")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "regenerate when the schema changes")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *GenerateOptions, schemaDir string) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	logger := opts.logger()

	if !opts.Watch {
		result, err := generateOnce(cmd.Context(), opts, schemaDir)
		if err != nil {
			return reportGenerateError(formatter, err)
		}
		if opts.Format == "json" {
			return formatter.Success(result)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Generated %d file(s) for %d class(es) in %s\n",
			len(result.Files), result.Classes, result.OutputDir)
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rebuild := func(ctx context.Context) error {
		result, err := generateOnce(ctx, opts, schemaDir)
		if err != nil {
			return err
		}
		logger.Info("bindings written", "files", len(result.Files), "classes", result.Classes)
		return nil
	}
	if err := rebuild(ctx); err != nil {
		// The first run may fail while the schema is being edited.
		logger.Error("initial generation failed", "error", err)
	}
	if err := codegen.Watch(ctx, schemaDir, codegen.DefaultDebounce, logger, rebuild); err != nil {
		return formatter.fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil, err)
	}
	return nil
}

// generateError carries the stage at which generation stopped.
type generateError struct {
	code    string
	exit    int
	message string
	details any
}

func (e *generateError) Error() string {
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

// generateOnce loads, validates, renders and writes the bindings.
func generateOnce(ctx context.Context, opts *GenerateOptions, schemaDir string) (*GenerateResult, error) {
	loaded, errs := schema.Load(schemaDir)
	if len(errs) > 0 {
		return nil, loadFailure(errs)
	}

	if verrs := schema.Validate(loaded.Classes); len(verrs) > 0 {
		return nil, &generateError{
			code:    ErrCodeInvalid,
			exit:    ExitFailure,
			message: fmt.Sprintf("schema has %d validation error(s)", len(verrs)),
			details: verrs,
		}
	}

	gen := codegen.New(codegen.WithModule(opts.Module), codegen.WithLogger(opts.logger()))
	files, err := gen.Generate(ctx, loaded.Classes)
	if err != nil {
		return nil, &generateError{code: ErrCodeGenerate, exit: ExitCommandError, message: err.Error()}
	}
	if err := codegen.Write(opts.OutputDir, files); err != nil {
		return nil, &generateError{code: ErrCodeWrite, exit: ExitCommandError, message: err.Error()}
	}

	result := &GenerateResult{
		Classes:   len(loaded.Classes),
		Files:     make([]string, len(files)),
		OutputDir: opts.OutputDir,
	}
	for i, f := range files {
		result.Files[i] = f.Path
	}
	return result, nil
}

// loadFailure converts schema load errors. A missing directory is a
// command error; a broken schema is a failure of the input.
func loadFailure(errs []error) *generateError {
	messages := make([]string, len(errs))
	code := schema.ErrCodeGeneric
	exit := ExitFailure
	for i, err := range errs {
		messages[i] = err.Error()
		var le *schema.LoadError
		if errors.As(err, &le) && i == 0 {
			code = le.Code
			if le.Code == schema.ErrCodeNotFound {
				exit = ExitCommandError
			}
		}
	}
	return &generateError{
		code:    code,
		exit:    exit,
		message: fmt.Sprintf("failed to load schema: %s", messages[0]),
		details: messages,
	}
}

func reportGenerateError(formatter *OutputFormatter, err error) error {
	var ge *generateError
	if !errors.As(err, &ge) {
		return formatter.fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil, err)
	}
	if formatter.Format != "json" {
		if verrs, ok := ge.details.([]schema.ValidationError); ok {
			fmt.Fprintf(formatter.Writer, "✗ %s\n", ge.message)
			for _, v := range verrs {
				fmt.Fprintf(formatter.Writer, "  %s\n", v.Error())
			}
			return NewExitError(ge.exit, ge.Error())
		}
	}
	return formatter.fail(ge.exit, ge.code, ge.message, ge.details, nil)
}
