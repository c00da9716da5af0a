package hashtable

type tableError string

var _ error = tableError("")

func (err tableError) Error() string {
	return string(err)
}

const (
	ErrInvalidBucketCount = tableError("bucket count must be positive")
	ErrInvalidIterator    = tableError("iterator is past the end of the table")
	ErrCorrupted          = tableError("removed pair does not match the iterator")
)
