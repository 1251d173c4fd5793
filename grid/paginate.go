package grid

// DefaultPageSize is the number of cards shown per page.
const DefaultPageSize = 5

// View is the slice of posts visible for one state.
type View struct {
	Items      []Post
	TotalPages int
	Current    int
}

// Paginate clamps page into [1, totalPages] and slices out that page.
func Paginate(posts []Post, page, size int) View {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := (len(posts) + size - 1) / size
	if total < 1 {
		total = 1
	}
	current := page
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}
	start := (current - 1) * size
	end := start + size
	if end > len(posts) {
		end = len(posts)
	}
	if start > end {
		start = end
	}
	return View{
		Items:      posts[start:end],
		TotalPages: total,
		Current:    current,
	}
}

// DeriveView filters posts by the state's tag and paginates the result.
func DeriveView(posts []Post, s State, size int) View {
	return Paginate(FilterPosts(posts, s.Tag), s.Page, size)
}
