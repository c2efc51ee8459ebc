package parser

import "exrun/internal/domain"

// Parser turns fixture source into a suite
type Parser interface {
	Parse(source string, content []byte) (domain.Suite, error)
}
