// Package paramsmodel implements the linear hypothesis-scoring model of
// spec.md §4.6, grounded on src/wordrec/params_model.cpp: a fixed-length
// feature vector times a learned weight vector, clamped to a cost range,
// with a plain-text save/load format.
package paramsmodel

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Scoring constants, grounded on params_model.cpp.
const (
	ScoreScaleFactor = 100.0
	MinFinalCost     = 0.001
	MaxFinalCost     = 100.0
	equivalenceEps   = 1e-4
)

// Pass distinguishes the two scoring passes named in spec.md §4.6 and
// supplemented per SPEC_FULL.md §3 ("Two passes are supported").
type Pass int

// The two supported passes.
const (
	PassNormal Pass = iota
	PassAdapted
)

// Feature is one named dimension of the fixed feature vector, per
// spec.md §6.3's exact enumeration. Order is not significant in the
// file format, but every name must be present for a pass to load.
type Feature int

// The fixed, ordered feature enumeration, grounded on spec.md §6.3.
const (
	DictMatchType Feature = iota
	UnambigDictMatch
	ShapeCost
	NgramProb
	NumBadPunc
	NumBadCase
	NumBadCharType
	NumBadSpacing
	NumBadScript
	NumBadFont
	WorstCert
	Rating
	Adapted
	NumUnichars
	OutlineLen

	numFeatures
)

var featureNames = [numFeatures]string{
	DictMatchType:    "DICT_MATCH_TYPE",
	UnambigDictMatch: "UNAMBIG_DICT_MATCH",
	ShapeCost:        "SHAPE_COST",
	NgramProb:        "NGRAM_PROB",
	NumBadPunc:       "NUM_BAD_PUNC",
	NumBadCase:       "NUM_BAD_CASE",
	NumBadCharType:   "NUM_BAD_CHAR_TYPE",
	NumBadSpacing:    "NUM_BAD_SPACING",
	NumBadScript:     "NUM_BAD_SCRIPT",
	NumBadFont:       "NUM_BAD_FONT",
	WorstCert:        "WORST_CERT",
	Rating:           "RATING",
	Adapted:          "ADAPTED",
	NumUnichars:      "NUM_UNICHARS",
	OutlineLen:       "OUTLINE_LEN",
}

// Name returns the on-disk feature name.
func (f Feature) Name() string { return featureNames[f] }

// FeatureVector is a per-hypothesis sample of all named features.
type FeatureVector [numFeatures]float32

// ParamsModel holds a possibly-uninitialized weight vector per Pass.
type ParamsModel struct {
	weights [2]*[numFeatures]float32
}

// New returns an empty ParamsModel (no pass initialized).
func New() *ParamsModel { return &ParamsModel{} }

// Initialized reports whether pass has a loaded weight vector.
func (m *ParamsModel) Initialized(pass Pass) bool { return m.weights[pass] != nil }

// SetWeights installs w as the weight vector for pass.
func (m *ParamsModel) SetWeights(pass Pass, w [numFeatures]float32) {
	cp := w
	m.weights[pass] = &cp
}

// ComputeCost returns clamp(-sum(w_i * f_i) / ScoreScaleFactor,
// MinFinalCost, MaxFinalCost) for the given pass. ok is false if pass is
// uninitialized, matching the error-handling policy of spec.md §7
// ("compute_cost is not called for that pass" on load failure — callers
// must check ok first).
func (m *ParamsModel) ComputeCost(pass Pass, f FeatureVector) (cost float32, ok bool) {
	w := m.weights[pass]
	if w == nil {
		return 0, false
	}
	var sum float32
	for i := 0; i < int(numFeatures); i++ {
		sum += w[i] * f[i]
	}
	cost = -sum / ScoreScaleFactor
	if cost < MinFinalCost {
		cost = MinFinalCost
	}
	if cost > MaxFinalCost {
		cost = MaxFinalCost
	}

	return cost, true
}

// Equivalent reports whether a and b's weights for pass match within
// equivalenceEps per element. Two uninitialized passes are equivalent;
// one initialized and one not are never equivalent.
func (m *ParamsModel) Equivalent(other *ParamsModel, pass Pass) bool {
	a, b := m.weights[pass], other.weights[pass]
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	for i := 0; i < int(numFeatures); i++ {
		diff := a[i] - b[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > equivalenceEps {
			return false
		}
	}

	return true
}

// ParseLine parses one non-comment line of the params-model file format
// ("NAME value"), returning the feature and parsed value.
func ParseLine(line string) (Feature, float32, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, errors.Errorf("paramsmodel: malformed line %q", line)
	}
	var feat Feature
	found := false
	for i, name := range featureNames {
		if name == fields[0] {
			feat = Feature(i)
			found = true

			break
		}
	}
	if !found {
		return 0, 0, errors.Errorf("paramsmodel: unknown feature name %q", fields[0])
	}
	val, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "paramsmodel: parsing value for %q", fields[0])
	}

	return feat, float32(val), nil
}

// LoadFromReader parses a params-model file for one pass. All-or-nothing:
// every named feature must be present, or the pass is left uninitialized
// and an error is returned (spec.md §7's load-failure policy).
func (m *ParamsModel) LoadFromReader(r io.Reader, pass Pass) error {
	var w [numFeatures]float32
	var seen [numFeatures]bool

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		feat, val, err := ParseLine(line)
		if err != nil {
			return err
		}
		w[feat] = val
		seen[feat] = true
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "paramsmodel: reading model file")
	}
	for i, ok := range seen {
		if !ok {
			return errors.Errorf("paramsmodel: missing feature %q", featureNames[i])
		}
	}
	m.SetWeights(pass, w)

	return nil
}

// SaveToWriter writes one "NAME value" line per feature, in enumeration
// order, matching params_model.cpp's SaveToFile.
func (m *ParamsModel) SaveToWriter(w io.Writer, pass Pass) error {
	weights := m.weights[pass]
	if weights == nil {
		return errors.Errorf("paramsmodel: pass %d is uninitialized", pass)
	}
	for i := 0; i < int(numFeatures); i++ {
		if _, err := fmt.Fprintf(w, "%s %g\n", featureNames[i], weights[i]); err != nil {
			return errors.Wrap(err, "paramsmodel: writing model file")
		}
	}

	return nil
}
