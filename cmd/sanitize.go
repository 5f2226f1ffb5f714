package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/davidschrooten/open-academic-records/internal/dataset"
	"github.com/davidschrooten/open-academic-records/internal/records"
	"github.com/davidschrooten/open-academic-records/internal/validation"
)

type sanitizeOptions struct {
	file    string
	form    string
	path    string
	mapping []string
}

var sanitizeOpts sanitizeOptions

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize <file>",
	Short: "Clean up record fields and print the result as JSON",
	Long: heredoc.Doc(`
		Apply sanitizers to the records of a dataset file.

		Use --form for a form's standard mapping, --map field=sanitizer for
		individual fields, or both. Available sanitizers: name, email, phone,
		text, number and url.
	`),
	Example: heredoc.Doc(`
		$ records sanitize profile.json --form profile
		$ records sanitize contacts.yaml --map email=email --map website=url
	`),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sanitizeOpts.file = args[0]
		return runSanitize(cmd.OutOrStdout(), sanitizeOpts)
	},
}

func init() {
	rootCmd.AddCommand(sanitizeCmd)

	flags := sanitizeCmd.Flags()
	flags.StringVar(&sanitizeOpts.form, "form", "", "form whose sanitizer mapping applies")
	flags.StringVar(&sanitizeOpts.path, "path", "", "dotted path to the records inside the file")
	flags.StringArrayVar(&sanitizeOpts.mapping, "map", nil, "field=sanitizer pair (repeatable)")
}

func runSanitize(w io.Writer, opts sanitizeOptions) error {
	mapping, err := sanitizerMapping(opts.form, opts.mapping)
	if err != nil {
		return err
	}

	recs, err := dataset.Load(opts.file, dataset.Options{Path: opts.path})
	if err != nil {
		return err
	}

	out := make([]records.Record, len(recs))
	for i, rec := range recs {
		out[i] = validation.SanitizeFormData(rec, mapping)
	}
	return writeJSON(w, out)
}

func sanitizerMapping(form string, pairs []string) (map[string]validation.Sanitizer, error) {
	mapping := make(map[string]validation.Sanitizer)
	if form != "" {
		base, ok := validation.FormSanitizers(form)
		if !ok {
			return nil, fmt.Errorf("unknown form %q", form)
		}
		for field, fn := range base {
			mapping[field] = fn
		}
	}

	for _, pair := range pairs {
		field, name, ok := strings.Cut(pair, "=")
		if !ok || field == "" {
			return nil, fmt.Errorf("invalid mapping %q: want field=sanitizer", pair)
		}
		fn, ok := validation.LookupSanitizer(name)
		if !ok {
			return nil, fmt.Errorf("unknown sanitizer %q", name)
		}
		mapping[field] = fn
	}

	if len(mapping) == 0 {
		return nil, errors.New("nothing to do: pass --form or --map")
	}
	return mapping, nil
}
