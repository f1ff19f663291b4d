package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nekruzvatanshoev/carprice/pkg/carprice/dal"
)

var recordPath string

func init() {
	PredictCmd.Flags().StringVar(&recordPath, "record", "", "record file, - for stdin")
	PredictCmd.MarkFlagRequired("record")
}

var (
	PredictCmd = &cobra.Command{
		Use:   PredictCmdName,
		Short: PredictCmdShort,
		Long:  PredictCmdLong,
		RunE:  predictCmdFunc(),
	}
)

func predictCmdFunc() func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		rec, err := readRecord(cmd.InOrStdin(), recordPath)
		if err != nil {
			return err
		}

		_, log, est, err := setup(nil)
		if err != nil {
			return err
		}
		defer log.Sync()

		res, err := est.Estimate(context.Background(), rec)
		if err != nil {
			return err
		}
		printEstimate(cmd.OutOrStdout(), res.Price, res.Encoding.Codes, res.Encoding.Fallbacks)
		return nil
	}
}

// readRecord decodes a record over the form defaults. JSON is valid YAML,
// so both formats are accepted.
func readRecord(stdin io.Reader, path string) (dal.Record, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return dal.Record{}, fmt.Errorf("read record: %w", err)
	}

	if len(bytes.TrimSpace(b)) == 0 {
		return dal.Record{}, errors.New("decode record: empty input")
	}

	rec := dal.DefaultRecord()
	if err := yaml.Unmarshal(b, &rec); err != nil {
		return dal.Record{}, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}

func printEstimate(w io.Writer, price float64, codes map[string]int, fallbacks []string) {
	fmt.Fprintf(w, "price: %.2f\n", price)
	names := make([]string, 0, len(codes))
	for name := range codes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s: %d\n", name, codes[name])
	}
	for _, f := range fallbacks {
		fmt.Fprintf(w, "warning: %s not in vocabulary, encoded as 0\n", f)
	}
}
