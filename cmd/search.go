package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/davidschrooten/open-academic-records/config"
	"github.com/davidschrooten/open-academic-records/internal/dataset"
	"github.com/davidschrooten/open-academic-records/internal/logger"
	"github.com/davidschrooten/open-academic-records/internal/records"
	"github.com/davidschrooten/open-academic-records/internal/search"
)

type searchOptions struct {
	file        string
	kind        string
	path        string
	fields      []string
	queries     []string
	filters     []string
	sort        string
	limit       int
	offset      int
	fuzzy       bool
	highlight   bool
	output      string
	showHistory bool
}

var searchOpts searchOptions

var searchCmd = &cobra.Command{
	Use:   "search <file>",
	Short: "Search records in a dataset file",
	Long: heredoc.Doc(`
		Search the records of a JSON, YAML or TOML file.

		Free text is matched against the searchable fields of the record kind,
		or the fields given with --fields. Filters take the form
		field:operator:value where operator is one of equals, contains,
		startsWith, endsWith, greaterThan, lessThan, between or in. The value
		is read as JSON when it parses, so numbers and lists work as expected.

		--query may be repeated; each query runs in turn against the same
		engine, which builds up the search history.
	`),
	Example: heredoc.Doc(`
		$ records search transcript.json --kind subjects --path subjects --query "data struct"
		$ records search transcript.json --kind subjects --path subjects --filter 'marks:between:[60,70]' --sort marks:desc
		$ records search portfolio.yaml --kind projects --path projects --query porject --fuzzy --highlight
	`),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		searchOpts.file = args[0]
		return runSearch(cmd.OutOrStdout(), cfg, searchOpts)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	flags := searchCmd.Flags()
	flags.StringVarP(&searchOpts.kind, "kind", "k", "", "record kind: subjects, projects, certificates or semesters")
	flags.StringVar(&searchOpts.path, "path", "", "dotted path to the records inside the file")
	flags.StringSliceVar(&searchOpts.fields, "fields", nil, "searchable fields, overriding the kind's defaults")
	flags.StringArrayVarP(&searchOpts.queries, "query", "q", nil, "free-text query (repeatable)")
	flags.StringArrayVarP(&searchOpts.filters, "filter", "f", nil, "filter as field:operator:value (repeatable)")
	flags.StringVarP(&searchOpts.sort, "sort", "s", "", "sort as field or field:asc|desc")
	flags.IntVarP(&searchOpts.limit, "limit", "l", 0, "page size (default search.default_limit)")
	flags.IntVar(&searchOpts.offset, "offset", 0, "number of matches to skip")
	flags.BoolVar(&searchOpts.fuzzy, "fuzzy", false, "match query words by edit distance")
	flags.BoolVar(&searchOpts.highlight, "highlight", false, "mark query matches in the output")
	flags.StringVarP(&searchOpts.output, "output", "o", outputTable, "output format: table or json")
	flags.BoolVar(&searchOpts.showHistory, "show-history", false, "print the search history after the results")
}

func runSearch(w io.Writer, cfg *config.Config, opts searchOptions) error {
	if err := checkOutput(opts.output); err != nil {
		return err
	}

	fields := opts.fields
	if len(fields) == 0 {
		var ok bool
		if fields, ok = search.FieldsFor(opts.kind); !ok {
			return fmt.Errorf("unknown record kind %q; pass --kind or --fields", opts.kind)
		}
	}

	filters := make([]search.Filter, 0, len(opts.filters))
	for _, raw := range opts.filters {
		f, err := parseFilter(raw)
		if err != nil {
			return err
		}
		filters = append(filters, f)
	}

	sort, err := parseSort(opts.sort)
	if err != nil {
		return err
	}

	recs, err := dataset.Load(opts.file, dataset.Options{Path: opts.path})
	if err != nil {
		return err
	}

	limit := opts.limit
	if limit == 0 {
		limit = cfg.Search.DefaultLimit
	}

	engine := search.New(recs, fields, search.OptionsFromConfig(cfg.Search)...)

	queries := opts.queries
	if len(queries) == 0 {
		queries = []string{""}
	}

	var results []*search.Result[records.Record]
	for _, q := range queries {
		result := engine.Search(search.Options{
			Query:            q,
			Filters:          filters,
			Sort:             sort,
			Limit:            limit,
			Offset:           opts.offset,
			Fuzzy:            opts.fuzzy,
			HighlightMatches: opts.highlight,
		})
		logger.L().Named("search").Debug("search executed",
			zap.String("query", q),
			zap.Int("total", result.Total),
			zap.Float64("execution_ms", result.ExecutionTimeMs),
		)
		results = append(results, result)
	}

	if opts.output == outputJSON {
		out := map[string]any{"results": results}
		if opts.showHistory {
			out["history"] = engine.History()
		}
		return writeJSON(w, out)
	}

	for _, result := range results {
		renderSearchResult(w, result, fields)
	}
	if opts.showHistory {
		renderHistory(w, engine.History())
	}
	return nil
}

// parseFilter reads field:operator:value. The value is decoded as JSON when
// possible and kept as a plain string otherwise.
func parseFilter(raw string) (search.Filter, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) != 3 || parts[0] == "" {
		return search.Filter{}, fmt.Errorf("invalid filter %q: want field:operator:value", raw)
	}

	op := search.Operator(parts[1])
	known := false
	for _, o := range search.Operators {
		if o == op {
			known = true
			break
		}
	}
	if !known {
		return search.Filter{}, fmt.Errorf("invalid filter %q: unknown operator %q", raw, parts[1])
	}

	var value any = parts[2]
	if gjson.Valid(parts[2]) {
		value = gjson.Parse(parts[2]).Value()
	}

	return search.Filter{Field: parts[0], Operator: op, Value: value}, nil
}

func parseSort(raw string) (*search.Sort, error) {
	if raw == "" {
		return nil, nil
	}

	field, dir, _ := strings.Cut(raw, ":")
	if field == "" {
		return nil, fmt.Errorf("invalid sort %q: missing field", raw)
	}

	switch search.Direction(strings.ToLower(dir)) {
	case "", search.Asc:
		return &search.Sort{Field: field, Direction: search.Asc}, nil
	case search.Desc:
		return &search.Sort{Field: field, Direction: search.Desc}, nil
	}
	return nil, fmt.Errorf("invalid sort %q: direction must be asc or desc", raw)
}
