package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/davidschrooten/open-academic-records/config"
	"github.com/davidschrooten/open-academic-records/internal/dataset"
	"github.com/davidschrooten/open-academic-records/internal/logger"
	"github.com/davidschrooten/open-academic-records/internal/records"
	"github.com/davidschrooten/open-academic-records/internal/validation"
)

const uploadForm = "upload"

// ErrInvalidRecords is returned when at least one record fails validation
var ErrInvalidRecords = errors.New("validation failed")

type validateOptions struct {
	file     string
	form     string
	path     string
	sanitize bool
	output   string
}

var validateOpts validateOptions

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check records against a form's rules",
	Long: heredoc.Docf(`
		Validate every record of a dataset file with the rules of a form.

		Errors make the command fail. Warnings, such as an expiry date that has
		already passed, are reported but do not.

		Forms: %s, %s.
	`, strings.Join(validation.Forms, ", "), uploadForm),
	Example: heredoc.Doc(`
		$ records validate profile.json --form profile
		$ records validate transcript.yaml --form subject --path subjects --sanitize
	`),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		validateOpts.file = args[0]
		return runValidate(cmd.OutOrStdout(), cfg, validateOpts)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	flags := validateCmd.Flags()
	flags.StringVar(&validateOpts.form, "form", "", "form whose rules apply")
	flags.StringVar(&validateOpts.path, "path", "", "dotted path to the records inside the file")
	flags.BoolVar(&validateOpts.sanitize, "sanitize", false, "run the form's sanitizers before validating")
	flags.StringVarP(&validateOpts.output, "output", "o", outputTable, "output format: table or json")
	validateCmd.MarkFlagRequired("form")
}

type validationReport struct {
	Record records.Record               `json:"record"`
	Result validation.ValidationResult `json:"result"`
}

func runValidate(w io.Writer, cfg *config.Config, opts validateOptions) error {
	if err := checkOutput(opts.output); err != nil {
		return err
	}

	engine, sanitizers, err := formEngine(cfg, opts.form)
	if err != nil {
		return err
	}

	recs, err := dataset.Load(opts.file, dataset.Options{Path: opts.path})
	if err != nil {
		return err
	}

	reports := make([]validationReport, 0, len(recs))
	invalid := 0
	for _, rec := range recs {
		if opts.sanitize {
			rec = validation.SanitizeFormData(rec, sanitizers)
		}
		result := engine.Validate(rec)
		if !result.IsValid {
			invalid++
		}
		reports = append(reports, validationReport{Record: rec, Result: result})
	}

	logger.L().Named("validate").Info("validation finished",
		zap.String("form", opts.form),
		zap.Int("records", len(recs)),
		zap.Int("invalid", invalid),
	)

	if opts.output == outputJSON {
		if err := writeJSON(w, reports); err != nil {
			return err
		}
	} else {
		for i, r := range reports {
			renderValidation(w, recordLabel(r.Record, i), r.Result)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d records invalid", ErrInvalidRecords, invalid, len(recs))
	}
	return nil
}

func formEngine(cfg *config.Config, form string) (*validation.Engine, map[string]validation.Sanitizer, error) {
	if form == uploadForm {
		rules := validation.UploadRules(cfg.Validation.MaxUploadMB, cfg.Validation.AllowedFileTypes)
		return validation.New(rules...), nil, nil
	}

	rules, ok := validation.FormRules(form)
	if !ok {
		return nil, nil, fmt.Errorf("unknown form %q", form)
	}
	sanitizers, _ := validation.FormSanitizers(form)
	return validation.New(rules...), sanitizers, nil
}

func recordLabel(rec records.Record, index int) string {
	for _, key := range []string{"id", "name", "title"} {
		if v, ok := rec[key].(string); ok && v != "" {
			return v
		}
	}
	return fmt.Sprintf("record %d", index+1)
}
