package pipeline

import (
	"strings"
	"sync"

	"text2label.com/fex/corpus"
	"text2label.com/fex/features"
	"text2label.com/fex/gazetteer"
	"text2label.com/fex/logger"
	"text2label.com/fex/types"
)

// Pipeline turns one corpus chunk into its rendered feature file. The result
// channel carries exactly one value and is then closed.
type Pipeline func(request Request) <-chan string

type Params struct {
	GazetteerDir string              `json:"gazetteer_dir"`
	Config       types.Configuration `json:"config"`
	Parallelism  int                 `json:"parallelism"`
}

const defaultParallelism = 4

// NewFeatureExtraction loads the gazetteers and builds the pipeline.
// Sequences within a chunk are extracted concurrently; the rendered output
// keeps corpus order. The gazetteer index is the only shared state and is
// read-only after this call.
func NewFeatureExtraction(params Params) (Pipeline, error) {
	fexLogger := logger.NewLogger("Feature extraction pipeline")
	errLogger := fexLogger.With().Caller().Logger()
	fexLogger.Info().
		Interface("params", params).
		Msg("Starting feature extraction pipeline (see parameters in 'params' field)")

	gaz, err := gazetteer.Load(params.GazetteerDir, params.Config.Gazetteers)
	if err != nil {
		errLogger.Err(err).
			Str("gazetteer_dir", params.GazetteerDir).
			Msg("Failed to load gazetteers")
		return nil, err
	}

	extractor := features.NewExtractor(gaz)
	reader := corpus.NewReader(params.Config)
	parallelism := params.Parallelism
	if parallelism <= 0 {
		parallelism = defaultParallelism
	}

	return func(request Request) <-chan string {
		out := make(chan string, 1)
		go func() {
			defer close(out)
			reqLogger := fexLogger.With().Str("tid", request.Tid).Logger()

			var seqs []types.Sequence
			for seq := range reader.Sequences(strings.NewReader(request.Text)) {
				seqs = append(seqs, seq)
			}

			var wg sync.WaitGroup
			slots := make(chan struct{}, parallelism)
			for _, seq := range seqs {
				wg.Add(1)
				go func(seq types.Sequence) {
					defer wg.Done()
					slots <- struct{}{}
					defer func() { <-slots }()
					extractor.Extract(seq)
				}(seq)
			}
			wg.Wait()

			reqLogger.Info().
				Int("sequences", len(seqs)).
				Msg("Finished feature extraction")
			out <- corpus.Render(seqs)
		}()
		return out
	}, nil
}
