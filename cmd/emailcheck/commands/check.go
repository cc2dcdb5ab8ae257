package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/emailaddr/pkg/address"
	"github.com/dmitrymomot/emailaddr/pkg/i18n"
	"github.com/dmitrymomot/emailaddr/pkg/logger"
	"github.com/dmitrymomot/emailaddr/pkg/validator"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// field is the name reported in validation errors of the CLI.
const field = "address"

type checkFlags struct {
	strict     bool
	allowBlank bool
	min        int
	max        int
	is         int
	lang       string
	output     string
	messages   string
}

type checkResult struct {
	Address   string       `json:"address"`
	Valid     bool         `json:"valid"`
	LocalPart string       `json:"local_part,omitempty"`
	Domain    string       `json:"domain,omitempty"`
	Errors    []checkError `json:"errors,omitempty"`
}

type checkError struct {
	Kind    validator.ErrorKind `json:"kind"`
	Message string              `json:"message"`
	Bound   int                 `json:"bound,omitempty"`
}

func checkCmd(a *app) *cobra.Command {
	var f checkFlags
	cmd := &cobra.Command{
		Use:   "check [addresses...]",
		Short: "Validate email addresses",
		Long: `Validate email addresses given as arguments, or one per line on stdin
when no argument is given. Empty stdin lines are ignored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, f, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&f.strict, "strict", true, "require an RFC 1035 domain (no domain literals)")
	flags.BoolVar(&f.allowBlank, "allow-blank", false, "accept empty and white space values")
	flags.IntVar(&f.min, "min", 0, "minimum length in characters")
	flags.IntVar(&f.max, "max", 0, "maximum length in characters")
	flags.IntVar(&f.is, "is", 0, "exact length in characters")
	flags.StringVar(&f.lang, "lang", "", "message language, e.g. de or fr_FR.UTF-8")
	flags.StringVarP(&f.output, "output", "o", outputText, "output format: text or json")
	flags.StringVar(&f.messages, "messages", "", "YAML or JSON file overriding the message translations")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, f checkFlags, args []string) error {
	start := time.Now()
	flags := cmd.Flags()

	output := a.settings.Output
	if flags.Changed("output") {
		output = f.output
	}
	output, err := outputFormat(output)
	if err != nil {
		return err
	}

	opts := validator.Options{
		Strict:     validator.Bool(a.settings.Strict),
		AllowBlank: a.settings.AllowBlank,
	}
	if flags.Changed("strict") {
		opts.Strict = validator.Bool(f.strict)
	}
	if flags.Changed("allow-blank") {
		opts.AllowBlank = f.allowBlank
	}
	if flags.Changed("min") {
		opts.Minimum = validator.Int(f.min)
	}
	if flags.Changed("max") {
		opts.Maximum = validator.Int(f.max)
	}
	if flags.Changed("is") {
		opts.Is = validator.Int(f.is)
	}

	messagesFile := a.settings.Messages
	if f.messages != "" {
		messagesFile = f.messages
	}
	msgs, err := a.messages(cmd.Context(), localePreferences(f.lang, a.settings), messagesFile)
	if err != nil {
		return err
	}

	v, err := validator.NewResolver(msgs, validator.WithLogger(a.log)).Declare([]string{field}, opts)
	if err != nil {
		return err
	}

	candidates, source, err := readCandidates(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	ctx := context.WithValue(cmd.Context(), sourceKey{}, source)

	strict := v.Config().Strict()
	results := make([]checkResult, 0, len(candidates))
	invalid := 0
	for _, candidate := range candidates {
		errs := v.ValidateValue(field, &candidate, true)
		res := checkResult{Address: candidate, Valid: errs.IsEmpty()}
		if parsed, ok := address.Parse(candidate, strict); ok {
			res.LocalPart, res.Domain = parsed.LocalPart, parsed.Domain
		}
		res.Errors = lo.Map(errs, func(e validator.ValidationError, _ int) checkError {
			return checkError{Kind: e.Kind, Message: e.Message, Bound: e.Bound}
		})
		if !res.Valid {
			invalid++
			a.log.DebugContext(ctx, "address rejected",
				logger.Field(field),
				slog.Any("kinds", errs.Kinds()),
			)
		}
		results = append(results, res)
	}

	if err := writeResults(cmd.OutOrStdout(), output, results); err != nil {
		return err
	}

	a.log.InfoContext(ctx, "addresses checked",
		logger.Count(len(results)),
		slog.Int("invalid", invalid),
		logger.Strict(strict),
		logger.Duration(time.Since(start)),
	)
	if invalid > 0 {
		return ErrInvalidAddresses
	}
	return nil
}

// messages builds the message table for the best matching language. A
// messages file is layered over the embedded translations.
func (a *app) messages(ctx context.Context, prefs []string, file string) (validator.Messages, error) {
	adapters := i18n.ChainAdapter{validator.LocaleAdapter()}
	if file != "" {
		fa, err := i18n.NewFileAdapterFor(file)
		if err != nil {
			return validator.Messages{}, err
		}
		adapters = append(adapters, fa)
	}

	tr, err := i18n.NewTranslator(ctx, adapters,
		i18n.WithLogger(a.log),
		i18n.WithMissingTranslationsLogging(true),
	)
	if err != nil {
		return validator.Messages{}, err
	}

	lang := tr.Match(prefs...)
	a.log.DebugContext(ctx, "message language selected", slog.String("lang", lang))
	return validator.MessagesFromTranslator(tr, lang), nil
}

func readCandidates(in io.Reader, args []string) ([]string, string, error) {
	if len(args) > 0 {
		return args, "args", nil
	}

	var candidates []string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line != "" {
			candidates = append(candidates, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, "stdin", fmt.Errorf("reading stdin: %w", err)
	}
	return candidates, "stdin", nil
}

func writeResults(w io.Writer, output string, results []checkResult) error {
	if output == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		if r.Valid {
			if _, err := fmt.Fprintf(w, "%s\tvalid\n", r.Address); err != nil {
				return err
			}
			continue
		}
		msgs := lo.Map(r.Errors, func(e checkError, _ int) string { return e.Message })
		if _, err := fmt.Fprintf(w, "%s\tinvalid\t%s\n", r.Address, strings.Join(msgs, "; ")); err != nil {
			return err
		}
	}
	return nil
}
