package section

// Kind identifies one section of the quality report.
type Kind int

const (
	MissingValues Kind = iota
	Outliers
	DuplicateRows
	InvalidEmails
	InvalidDates
	InvalidPhones
	CategoryInconsistencies
	SummaryStatistics
)

func (k Kind) Title() string {
	switch k {
	case MissingValues:
		return "Missing Values"
	case Outliers:
		return "Outliers Detected"
	case DuplicateRows:
		return "Duplicate Rows"
	case InvalidEmails:
		return "Invalid Emails"
	case InvalidDates:
		return "Invalid Dates"
	case InvalidPhones:
		return "Invalid Phone Numbers"
	case CategoryInconsistencies:
		return "Category Inconsistencies"
	case SummaryStatistics:
		return "Summary Statistics"
	default:
		return "Unknown Section"
	}
}

// EmptyMessage is the user-facing text shown when the section has no data.
func (k Kind) EmptyMessage() string {
	switch k {
	case MissingValues:
		return "No missing values detected."
	case Outliers:
		return "No outliers detected."
	case DuplicateRows:
		return "No duplicate rows."
	case InvalidEmails:
		return "No invalid emails."
	case InvalidDates:
		return "No invalid dates."
	case InvalidPhones:
		return "No invalid phone numbers."
	case CategoryInconsistencies:
		return "No category inconsistencies."
	case SummaryStatistics:
		return "No summary statistics available."
	default:
		return "No data."
	}
}

// countsLike reports whether the section is a numeric-count mapping, for
// which all-zero content is equivalent to no content.
func (k Kind) countsLike() bool {
	return k == MissingValues || k == Outliers
}

// Section is the minimal view the classifier needs of a report section.
type Section interface {
	Len() int
}

// IsEmpty decides whether a section has anything worth showing. Numeric-count
// sections are empty when they have no entries or when every value coerces to
// zero; every other section is empty only when it has no entries. A nil
// section classifies as empty rather than panicking.
func IsEmpty(kind Kind, s Section) bool {
	if s == nil || s.Len() == 0 {
		return true
	}
	if kind.countsLike() {
		if zeroed, ok := s.(interface{ AllZero() bool }); ok && zeroed.AllZero() {
			return true
		}
	}
	return false
}
