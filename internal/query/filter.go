package query

import (
	"strconv"
	"strings"
)

// Params carries the raw listing parameters as they arrive from the request.
// Every field is optional; a zero value adds no restriction.
type Params struct {
	Text      string // substring of title, case-insensitive
	Status    string // all | active | completed
	Priority  string // all | low | medium | high
	DueBucket string // all | overdue | today | week
	Tag       string // substring of the stored tag CSV
	Limit     int    // <= 0 means unbounded
	Offset    int
}

// Condition is a single predicate over task columns: a SQL fragment using
// '?' placeholders plus its bind arguments.
type Condition struct {
	Expr string
	Args []interface{}
}

// Predicate is a conjunction of conditions. Empty means "match all".
type Predicate []Condition

// Compile turns request parameters into a predicate. Missing or
// unrecognized parameter values are no-ops, never errors.
func Compile(p Params) Predicate {
	var pred Predicate

	if p.Text != "" {
		pred = append(pred, Condition{
			Expr: "title ILIKE ?",
			Args: []interface{}{"%" + p.Text + "%"},
		})
	}

	switch p.Status {
	case "active":
		pred = append(pred, Condition{Expr: "completed = FALSE"})
	case "completed":
		pred = append(pred, Condition{Expr: "completed = TRUE"})
	}

	switch p.Priority {
	case "low", "medium", "high":
		pred = append(pred, Condition{
			Expr: "priority = ?",
			Args: []interface{}{p.Priority},
		})
	}

	switch p.DueBucket {
	case "overdue":
		pred = append(pred, Condition{Expr: "due_at IS NOT NULL AND due_at < now()"})
	case "today":
		pred = append(pred, Condition{Expr: "date(due_at) = current_date"})
	case "week":
		pred = append(pred, Condition{Expr: "due_at IS NOT NULL AND date(due_at) <= current_date + interval '7 days'"})
	}

	if p.Tag != "" {
		// Plain containment over the CSV: "art" also matches a task tagged
		// "cart". Known limitation inherited from the original listing.
		pred = append(pred, Condition{
			Expr: "tags IS NOT NULL AND tags ILIKE ?",
			Args: []interface{}{"%" + p.Tag + "%"},
		})
	}

	return pred
}

// Where renders the predicate as a WHERE body with positional placeholders
// numbered from start. An empty predicate renders as TRUE.
func (p Predicate) Where(start int) (string, []interface{}) {
	if len(p) == 0 {
		return "TRUE", nil
	}

	var (
		sb   strings.Builder
		args []interface{}
		n    = start
	)
	for i, c := range p {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		sb.WriteByte('(')
		sb.WriteString(numberPlaceholders(c.Expr, &n))
		sb.WriteByte(')')
		args = append(args, c.Args...)
	}
	return sb.String(), args
}

// numberPlaceholders rewrites each '?' in expr as the next $n placeholder.
func numberPlaceholders(expr string, n *int) string {
	var sb strings.Builder
	for i := 0; i < len(expr); i++ {
		if expr[i] != '?' {
			sb.WriteByte(expr[i])
			continue
		}
		sb.WriteByte('$')
		sb.WriteString(strconv.Itoa(*n))
		*n++
	}
	return sb.String()
}
