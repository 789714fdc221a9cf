package vokram

import "errors"

var (
	// ErrInvalidOrder is returned when a model is requested with an n-gram
	// order below 1.
	ErrInvalidOrder = errors.New("ngram order must be at least 1")

	// ErrInvalidLength is returned when generation is requested with a
	// negative word budget.
	ErrInvalidLength = errors.New("word budget must be non-negative")

	// ErrEmptyModel is returned when generation is requested from a model
	// that holds no prefixes, which happens when the corpus was shorter
	// than order+1 tokens.
	ErrEmptyModel = errors.New("model has no prefixes")

	// ErrUnknownPrefix is returned when an explicit start prefix is not a
	// key of the model.
	ErrUnknownPrefix = errors.New("start prefix not present in model")
)
