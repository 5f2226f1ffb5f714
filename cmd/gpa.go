package cmd

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/davidschrooten/open-academic-records/internal/dataset"
	"github.com/davidschrooten/open-academic-records/internal/logger"
	"github.com/davidschrooten/open-academic-records/internal/records"
)

type gpaOptions struct {
	file          string
	semestersPath string
	subjectsPath  string
	output        string
}

var gpaOpts gpaOptions

var gpaCmd = &cobra.Command{
	Use:   "gpa <file>",
	Short: "Summarize semester and cumulative GPA",
	Long: heredoc.Doc(`
		Compute credit-weighted GPAs on a 4.0 scale from a transcript file
		holding semesters and subjects. Subjects without marks are left out
		of the averages.
	`),
	Example: heredoc.Doc(`
		$ records gpa transcript.json
		$ records gpa export.yaml --semesters data.terms --subjects data.courses -o json
	`),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gpaOpts.file = args[0]
		return runGPA(cmd.OutOrStdout(), gpaOpts)
	},
}

func init() {
	rootCmd.AddCommand(gpaCmd)

	flags := gpaCmd.Flags()
	flags.StringVar(&gpaOpts.semestersPath, "semesters", "semesters", "dotted path to the semesters")
	flags.StringVar(&gpaOpts.subjectsPath, "subjects", "subjects", "dotted path to the subjects")
	flags.StringVarP(&gpaOpts.output, "output", "o", outputTable, "output format: table or json")
}

type gpaReport struct {
	Semesters  []records.SemesterSummary `json:"semesters"`
	Cumulative *float64                  `json:"cumulativeGpa"`
}

func runGPA(w io.Writer, opts gpaOptions) error {
	if err := checkOutput(opts.output); err != nil {
		return err
	}

	semesters, err := loadAs[records.Semester](opts.file, opts.semestersPath)
	if err != nil {
		return fmt.Errorf("failed to load semesters: %w", err)
	}
	subjects, err := loadAs[records.Subject](opts.file, opts.subjectsPath)
	if err != nil {
		return fmt.Errorf("failed to load subjects: %w", err)
	}

	report := gpaReport{Semesters: records.Summarize(semesters, subjects)}
	if gpa, ok := records.CumulativeGPA(subjects); ok {
		report.Cumulative = &gpa
	}

	logger.L().Named("gpa").Debug("gpa computed",
		zap.Int("semesters", len(semesters)),
		zap.Int("subjects", len(subjects)),
	)

	if opts.output == outputJSON {
		return writeJSON(w, report)
	}
	renderGPA(w, report.Semesters, report.Cumulative)
	return nil
}

func loadAs[T any](file, path string) ([]T, error) {
	recs, err := dataset.Load(file, dataset.Options{Path: path})
	if err != nil {
		return nil, err
	}
	return dataset.Decode[T](recs)
}
