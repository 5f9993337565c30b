package types

import "time"

// Dataset is a named, ordered collection of records owned by the module
// registry. Item order is insertion order; identity comes from a record's
// own id field when present.
type Dataset struct {
	Name         string
	Items        []Record
	LastModified time.Time
}

// Clone returns a deep copy so callers can't mutate registry-owned state.
func (d Dataset) Clone() Dataset {
	out := Dataset{
		Name:         d.Name,
		Items:        make([]Record, len(d.Items)),
		LastModified: d.LastModified,
	}
	for i, r := range d.Items {
		out.Items[i] = r.Clone()
	}
	return out
}

// MaxID returns the largest id among the dataset's records, or 0.
func (d Dataset) MaxID() int64 {
	var max int64
	for _, r := range d.Items {
		if id, ok := r.ID(); ok && id > max {
			max = id
		}
	}
	return max
}

// Column maps an internal record key to a user-facing header. Screens pass
// their own projections so display shape stays independent of record shape.
type Column struct {
	Key    string `yaml:"key"`
	Header string `yaml:"header"`
}

// Severity classifies a notification.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

// String returns the wire name used by the notification UI.
func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Notification reports the outcome of a hub operation to the user.
// IDs increase monotonically; Read flips one way via the notification center.
type Notification struct {
	ID       int64
	Title    string
	Message  string
	Severity Severity
	Date     time.Time
	Read     bool
}
