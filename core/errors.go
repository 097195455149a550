package core

import "errors"

var (
	ErrShapeMismatch        = errors.New("columns have unequal lengths")
	ErrDuplicateColumn      = errors.New("duplicate column name")
	ErrUnknownOp            = errors.New("unknown operator")
	ErrUnsupportedType      = errors.New("unsupported column type")
	ErrAccumulatorNotFound  = errors.New("accumulator not found")
	ErrDuplicateAccumulator = errors.New("accumulator already exists")
)
