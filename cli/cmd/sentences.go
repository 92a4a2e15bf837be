package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ordanet/tokenize"
)

var (
	normalizeSentences bool

	sentencesCmd = &cobra.Command{
		Use:   "sentences [file]",
		Short: "Split a file (or stdin) into sentences, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _, err := openInput(args)
			if err != nil {
				return err
			}
			defer in.Close()
			data, err := io.ReadAll(in)
			if err != nil {
				return err
			}
			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()
			for sent := range tokenize.SplitIntoSentences(string(data), normalizeSentences) {
				fmt.Fprintln(out, sent)
			}
			return nil
		},
	}
)

func init() {
	sentencesCmd.Flags().BoolVar(&normalizeSentences, "normalize", false, "normalize punctuation in the output")
	rootCmd.AddCommand(sentencesCmd)
}
