package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nekruzvatanshoev/carprice/pkg/carprice/config"
	"github.com/nekruzvatanshoev/carprice/pkg/carprice/encoding"
	"github.com/nekruzvatanshoev/carprice/pkg/carprice/estimator"
	"github.com/nekruzvatanshoev/carprice/pkg/carprice/logger"
	"github.com/nekruzvatanshoev/carprice/pkg/carprice/predictor"
)

const (
	RootCmdName  = "carprice"
	RootCmdShort = "Estimate used car prices with a trained regression model"
	RootCmdLong  = `carprice encodes a car's attributes, derives the engineered features
the model was trained on and asks the model for a price estimate.`

	ServeCmdName  = "serve"
	ServeCmdShort = "Serve the estimate form and JSON API"
	ServeCmdLong  = `Serve the HTML form on / and the JSON API under /api/v1, with
prometheus metrics on /metrics.`

	PredictCmdName  = "predict"
	PredictCmdShort = "Estimate the price of a single record file"
	PredictCmdLong  = `Read one car record from a YAML or JSON file, estimate its price and
print the result. Fields missing from the file take the form defaults.`
)

var RootCmd = &cobra.Command{
	Use:   RootCmdName,
	Short: RootCmdShort,
	Long:  RootCmdLong,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadDotEnv()
	},
}

func Execute() {

	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
}

func init() {
	config.SetDefaults(viper.GetViper())

	flags := RootCmd.PersistentFlags()
	flags.String(config.KeyModel, "model.yaml", "path to the model artifact")
	flags.String(config.KeyVariant, "table", "category encoding variant: table or refit")
	flags.String(config.KeyPredictor, "dense", "predictor kind: dense or remote")
	flags.String(config.KeyRemoteURL, "", "base url of the TensorFlow Serving REST endpoint")
	flags.String(config.KeyRemoteModel, "", "model name on the remote server, defaults to the artifact name")
	flags.Duration(config.KeyRemoteTimeout, 5*time.Second, "timeout for remote predictions")
	flags.String(config.KeyLogMode, "development", "log mode: development or production")
	viper.BindPFlags(flags)

	RootCmd.AddCommand(ServeCmd)
	RootCmd.AddCommand(PredictCmd)
}

// setup loads the configuration and the model artifact and wires an
// estimator registered with reg.
func setup(reg prometheus.Registerer) (*config.Config, *logger.Logger, *estimator.Estimator, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build logger: %w", err)
	}

	artifact, err := predictor.LoadArtifact(cfg.ModelPath)
	if err != nil {
		return nil, nil, nil, err
	}

	p, err := predictor.New(predictor.Options{
		Kind:          cfg.Predictor,
		RemoteURL:     cfg.RemoteURL,
		RemoteModel:   cfg.RemoteModel,
		RemoteTimeout: cfg.RemoteTimeout,
	}, artifact)
	if err != nil {
		return nil, nil, nil, err
	}

	est, err := estimator.New(cfg.Variant, artifact, p, estimator.NewMetrics(reg))
	if err != nil {
		return nil, nil, nil, err
	}
	if est.Variant() == encoding.VariantRefit {
		log.Warn("refit encoding assigns code 0 to every category and zeroes scaled columns; estimates ignore the car's categories")
	}

	log.Info("model loaded", "path", cfg.ModelPath, "model", p.Name(), "predictor", cfg.Predictor, "columns", len(artifact.Columns), "variant", est.Variant())
	return cfg, log, est, nil
}
