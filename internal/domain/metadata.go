package domain

// Metadata is the out-of-band pagination channel of every paged listing.
// It travels next to the result slice, never inside it, so the paged body
// stays a homogeneous list of catalog items. TotalRecords always counts the
// full filtered set, even when the requested page holds no rows.
type Metadata struct {
	CurrentPage  int
	FirstPage    int
	LastPage     int
	PageSize     int
	TotalRecords int
}

// NewMetadata derives the page arithmetic from a total. LastPage is 0 when
// the filtered set is empty.
func NewMetadata(totalRecords, page, pageSize int) *Metadata {
	return &Metadata{
		CurrentPage:  page,
		FirstPage:    1,
		LastPage:     (totalRecords + pageSize - 1) / pageSize,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
	}
}
