package pdf

import "tankar/quote_backend/internal/domain/quote"

type Generator interface {
	Generate(doc quote.Document) ([]byte, error)
}
