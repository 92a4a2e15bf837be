package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ordanet/tokenize"
)

var (
	convertNumbers      bool
	convertMeasurements bool
	noGlyphNorm         bool
	htmlEscapes         bool
	kludgyOrdinals      string
	coalescePercent     bool
	noAnnotation        bool
	debugDump           bool

	runCmd = &cobra.Command{
		Use:   "run [file]",
		Short: "Tokenize a file (or stdin) and stream tokens as JSON lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, name, err := openInput(args)
			if err != nil {
				return err
			}
			defer in.Close()
			logrus.Debugf("tokenizing %s", name)

			opts, err := gatherOptions()
			if err != nil {
				return err
			}

			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()
			enc := json.NewEncoder(out)
			count := 0
			for t := range tokenize.TokenizeChunks(lines(in), opts...) {
				count++
				if debugDump {
					fmt.Fprintln(out, repr.String(t, repr.Indent("  ")))
					continue
				}
				if err := enc.Encode(tokenRecord{
					Kind:     t.Kind.String(),
					Text:     t.Txt,
					Val:      t.Val,
					Original: t.Original(),
				}); err != nil {
					return err
				}
			}
			logrus.Debugf("%d tokens", count)
			return nil
		},
	}
)

// tokenRecord is the JSON-lines representation of a token.
type tokenRecord struct {
	Kind     string `json:"k"`
	Text     string `json:"t,omitempty"`
	Val      any    `json:"v,omitempty"`
	Original string `json:"o,omitempty"`
}

func openInput(args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	if len(args) > 1 {
		return nil, "", errors.New("at most one input file may be given")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", err
	}
	return f, args[0], nil
}

// lines yields the input line by line; empty lines split sentences.
func lines(r io.Reader) iter.Seq[string] {
	return func(yield func(string) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		first := true
		for scanner.Scan() {
			line := scanner.Text()
			if !first {
				line = "\n" + line
			}
			first = false
			if !yield(line) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			logrus.Errorf("reading input: %v", err)
		}
	}
}

func gatherOptions() ([]tokenize.Option, error) {
	opts := []tokenize.Option{
		tokenize.ConvertNumbers(convertNumbers),
		tokenize.ConvertMeasurements(convertMeasurements),
		tokenize.ReplaceCompositeGlyphs(!noGlyphNorm),
		tokenize.ReplaceHTMLEscapes(htmlEscapes),
		tokenize.WithAnnotation(!noAnnotation),
		tokenize.CoalescePercent(coalescePercent),
	}
	switch kludgyOrdinals {
	case "pass":
		opts = append(opts, tokenize.HandleKludgyOrdinals(tokenize.KludgyOrdinalsPassThrough))
	case "translate":
		opts = append(opts, tokenize.HandleKludgyOrdinals(tokenize.KludgyOrdinalsTranslate))
	case "modify":
		opts = append(opts, tokenize.HandleKludgyOrdinals(tokenize.KludgyOrdinalsModify))
	default:
		return nil, fmt.Errorf("unknown kludgy-ordinals mode %q", kludgyOrdinals)
	}
	return opts, nil
}

func init() {
	runCmd.Flags().BoolVar(&convertNumbers, "convert-numbers", false, "rewrite English-style numbers to Icelandic format")
	runCmd.Flags().BoolVar(&convertMeasurements, "convert-measurements", false, "rewrite the text of degree measurements to \"<number> °C\" form")
	runCmd.Flags().BoolVar(&noGlyphNorm, "no-glyph-normalization", false, "do not compose decomposed glyphs")
	runCmd.Flags().BoolVar(&htmlEscapes, "html-escapes", false, "decode HTML entities")
	runCmd.Flags().StringVar(&kludgyOrdinals, "kludgy-ordinals", "pass", "handling of forms like '1sti': pass, translate or modify")
	runCmd.Flags().BoolVar(&coalescePercent, "coalesce-percent", false, "merge numbers with spelled-out percentage words")
	runCmd.Flags().BoolVar(&noAnnotation, "no-annotation", false, "skip the final phrase pass")
	runCmd.Flags().BoolVar(&debugDump, "debug", false, "dump tokens with repr instead of JSON")
	rootCmd.AddCommand(runCmd)
}
