package dataset

import "fmt"

// ErrMissingDataSource indicates the training data could not be located or
// read. Training cannot proceed without it.
type ErrMissingDataSource struct {
	Path string
	Err  error
}

func (e *ErrMissingDataSource) Error() string {
	return fmt.Sprintf("missing data source %q: %v (provide the dataset file and restart)", e.Path, e.Err)
}

func (e *ErrMissingDataSource) Unwrap() error { return e.Err }

// ErrInvalidDataset indicates the data source was read but cannot be used
// for training.
type ErrInvalidDataset struct {
	Path   string
	Reason string
}

func (e *ErrInvalidDataset) Error() string {
	return fmt.Sprintf("invalid dataset %q: %s", e.Path, e.Reason)
}
