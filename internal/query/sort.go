package query

// Known sort keys. Anything else resolves to SortRecent.
const (
	SortRecent   = "recent"
	SortAlpha    = "alpha"
	SortDue      = "due"
	SortPriority = "priority"
)

const (
	orderRecent = "created_at DESC, id DESC"
	orderAlpha  = "title ASC, id ASC"

	// Tasks without a due date sort strictly after every dated task.
	orderDue = "(CASE WHEN due_at IS NULL THEN 1 ELSE 0 END) ASC, due_at ASC, id ASC"

	// high before medium before low; within a tier, newest first.
	orderPriority = "(CASE priority WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END) ASC, created_at DESC"
)

// ResolveSort maps a sort key to an ORDER BY body with explicit tie-breaks
// so equal timestamps cannot reshuffle between reads.
func ResolveSort(key string) string {
	switch key {
	case SortAlpha:
		return orderAlpha
	case SortDue:
		return orderDue
	case SortPriority:
		return orderPriority
	default:
		return orderRecent
	}
}
