package linkedlist

type listError string

var _ error = listError("")

func (err listError) Error() string {
	return string(err)
}

const ErrInvalidIterator = listError("iterator is past the end of the list")
