package query

// Envelope is the response body of every paginated list endpoint.
type Envelope[T any] struct {
	Success     bool `json:"success"`
	Data        []T  `json:"data"`
	TotalData   int  `json:"totalData"`
	CurrentPage int  `json:"currentPage"`
	PageSize    int  `json:"pageSize"`
	TotalPages  int  `json:"totalPages"`
}

// NewEnvelope wraps one page of rows. data is never serialized as null.
func NewEnvelope[T any](data []T, total int, p Page) Envelope[T] {
	if data == nil {
		data = []T{}
	}
	return Envelope[T]{
		Success:     true,
		Data:        data,
		TotalData:   total,
		CurrentPage: p.Number,
		PageSize:    p.Size,
		TotalPages:  p.TotalPages(total),
	}
}
