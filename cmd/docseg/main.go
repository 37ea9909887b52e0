// Command docseg is the thin front door wiring geometry, outline,
// structunit, wordres, paramsmodel and debugrender together: it builds
// a synthetic multi-blob word, runs it through
// SetupForRecognition/RebuildBestState, scores the result against a
// params-model file (if -model is given), and writes a debug PNG of the
// rebuilt boxes (if -out is given), matching the CLI-driver style of the
// examples/ scripts this module was built from.
//
// Complexity: O(n) in total outline points, Memory: O(n).
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"github.com/katalvlaran/docseg/debugrender"
	"github.com/katalvlaran/docseg/geometry"
	"github.com/katalvlaran/docseg/outline"
	"github.com/katalvlaran/docseg/paramsmodel"
	"github.com/katalvlaran/docseg/structunit"
	"github.com/katalvlaran/docseg/wordres"
)

func main() {
	outPath := flag.String("out", "", "write a debug PNG of the rebuilt boxes to this path")
	modelPath := flag.String("model", "", "optional params-model file to score the word against")
	blobCount := flag.Int("blobs", 3, "number of synthetic square blobs in the demo word")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	werd := buildSyntheticWerd(*blobCount)
	row := structunit.NewRow(128, 96, 48, func(float32) float32 { return 0 })

	wr := wordres.NewWordResult()
	if err := wr.SetupForRecognition(werd, row); err != nil {
		logger.Error("setup for recognition failed", "err", err)
		os.Exit(1)
	}
	logger.Info("chopped word", "blobs", len(wr.Chopped.Blobs))

	bestState := make([]int, len(wr.Chopped.Blobs))
	for i := range bestState {
		bestState[i] = 1
	}
	if err := wr.RebuildBestState(bestState); err != nil {
		logger.Error("rebuild failed", "err", err)
		os.Exit(1)
	}
	wr.SetupBoxWord()
	logger.Info("rebuilt word", "boxes", wr.BoxWord.Length())

	if *modelPath != "" {
		cost, ok := scoreWord(*modelPath, wr, logger)
		if ok {
			fmt.Printf("params-model cost: %.4f\n", cost)
		}
	}

	if *outPath != "" {
		if err := renderDebugPNG(*outPath, wr); err != nil {
			logger.Error("render failed", "err", err)
			os.Exit(1)
		}
		logger.Info("wrote debug render", "path", *outPath)
	}
}

// buildSyntheticWerd lays out n 5x5 square blobs along the baseline,
// starting 12 pixels apart, standing in for a real edge-extractor's
// output.
func buildSyntheticWerd(n int) *structunit.Werd {
	w := structunit.NewWerd()
	for i := 0; i < n; i++ {
		steps := []outline.ChainStep{
			outline.StepRight, outline.StepRight, outline.StepRight, outline.StepRight, outline.StepRight,
			outline.StepUp, outline.StepUp, outline.StepUp, outline.StepUp, outline.StepUp,
			outline.StepLeft, outline.StepLeft, outline.StepLeft, outline.StepLeft, outline.StepLeft,
			outline.StepDown, outline.StepDown, outline.StepDown, outline.StepDown, outline.StepDown,
		}
		start := geometry.IPoint{X: int16(i * 12), Y: 0}
		co, err := outline.NewCOutline(start, steps)
		if err != nil {
			// The synthetic layout is fixed and always valid; a failure
			// here means the step table above was edited incorrectly.
			panic(err)
		}
		w.Blobs = append(w.Blobs, &outline.CBlob{Outlines: []*outline.COutline{co}})
	}

	return w
}

func scoreWord(path string, wr *wordres.WordResult, logger *slog.Logger) (float32, bool) {
	f, err := os.Open(path)
	if err != nil {
		logger.Error("open params model", "err", err)

		return 0, false
	}
	defer f.Close()

	model := paramsmodel.New()
	if err := model.LoadFromReader(f, paramsmodel.PassNormal); err != nil {
		logger.Error("load params model", "err", err)

		return 0, false
	}

	var fv paramsmodel.FeatureVector
	fv[paramsmodel.NumUnichars] = float32(wr.BoxWord.Length())
	fv[paramsmodel.OutlineLen] = float32(len(wr.Chopped.Blobs))

	cost, ok := model.ComputeCost(paramsmodel.PassNormal, fv)
	if !ok {
		logger.Error("params model pass not initialized")
	}

	return cost, ok
}

func renderDebugPNG(path string, wr *wordres.WordResult) error {
	bbox := wr.BoxWord.BoundingBox()
	if bbox.IsEmpty() {
		bbox = geometry.NewBoxFromCoords(0, 0, 10, 10)
	}
	canvas := debugrender.NewCanvas(bbox)
	for i := 0; i < wr.BoxWord.Length(); i++ {
		box, err := wr.BoxWord.BlobBox(i)
		if err != nil {
			return err
		}
		canvas.DrawBox(box)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	return png.Encode(out, canvas.Image())
}
