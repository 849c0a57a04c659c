package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"text2label.com/fex/api"
	"text2label.com/fex/logger"
	"text2label.com/fex/pipeline"
	"text2label.com/fex/types"
	"text2label.com/fex/worker"
)

type Config struct {
	ConfigPath    string `envconfig:"FEX_CONFIG_PATH" default:""`
	GazetteerPath string `envconfig:"FEX_GAZETTEER_PATH" required:"true"`
	Parallelism   int    `envconfig:"FEX_PARALLELISM" default:"0"`
	RestAPIActive bool   `envconfig:"FEX_REST_API_ACTIVE" default:"false"`
	RestAPIPort   string `envconfig:"FEX_REST_API_PORT" default:"10000"`
}

func main() {
	logger.SetupLogging()
	fexLogger := logger.NewLogger("Main")
	fatalErrLogger := fexLogger.Fatal().Caller()
	extract := flag.Bool("extract", false, "read a corpus chunk from stdin, write its feature file to stdout and exit")
	flag.Parse()
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		fatalErrLogger.Err(err).Msg("Failed to read environment")
		os.Exit(1)
	}

	cfg := types.DefaultConfiguration()
	if config.ConfigPath != "" {
		loaded, err := types.LoadConfiguration(config.ConfigPath)
		if err != nil {
			fatalErrLogger.Err(err).Msg("Failed to load configuration")
			os.Exit(1)
		}
		cfg = loaded
	}

	// Gazetteer load failures are fatal here, before any sequence is touched.
	ppln, err := pipeline.NewFeatureExtraction(pipeline.Params{
		GazetteerDir: config.GazetteerPath,
		Config:       cfg,
		Parallelism:  config.Parallelism,
	})
	if err != nil {
		fatalErrLogger.Err(err).Msg("Failed to start feature extraction pipeline")
		os.Exit(1)
	}
	fexLogger.Info().Msg("Pipeline loaded")

	if *extract {
		runBatch(ppln, fexLogger)
		return
	}

	if config.RestAPIActive {
		go func() {
			fexLogger.Info().Msg("Starting API service")
			apiRequest := &api.Request{
				Pipeline: ppln,
			}
			http.HandleFunc("/", apiRequest.ProcessData)
			host := fmt.Sprintf(":%s", config.RestAPIPort)
			fexLogger.Info().Msgf("REST API on %s", host)
			err := http.ListenAndServe(host, nil)
			fatalErrLogger.Err(err).Msg("REST API stopped with error")
		}()
	}

	fexLogger.Info().Msg("Start FEX worker")
	for {
		rmqWorker, err := worker.New(ppln)
		if err != nil {
			fexLogger.Fatal().Err(err).Msg("Could not initialize RMQ worker")
			os.Exit(1)
		}
		err = rmqWorker.StartWorker()
		if err != nil {
			fexLogger.Err(err).Msg("Worker returned with error. Launching new in 5 seconds")
			time.Sleep(5 * time.Second)
		}
	}
}

func runBatch(ppln pipeline.Pipeline, fexLogger zerolog.Logger) {
	data, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		fexLogger.Fatal().Err(err).Msg("Failed to read stdin")
		os.Exit(1)
	}
	result := <-ppln(pipeline.Request{Tid: "stdin", Text: string(data)})
	if _, err := os.Stdout.WriteString(result); err != nil {
		fexLogger.Fatal().Err(err).Msg("Failed to write feature file")
		os.Exit(1)
	}
}
