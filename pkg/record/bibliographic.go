package record

// subjectTags is the fixed tag list Subjects scans, per §4.4.
var subjectTags = []string{
	"600", "610", "611", "630", "648", "650", "651",
	"653", "654", "655", "656", "657", "658", "662",
	"690", "691", "696", "697", "698", "699",
}

// Title returns 245$a.
func (r *Record) Title() (string, bool) {
	f, ok := r.GetField("245")
	if !ok {
		return "", false
	}
	return f.Get('a')
}

// Author returns 100$a.
func (r *Record) Author() (string, bool) {
	f, ok := r.GetField("100")
	if !ok {
		return "", false
	}
	return f.Get('a')
}

// ISBN returns 020$a.
func (r *Record) ISBN() (string, bool) {
	f, ok := r.GetField("020")
	if !ok {
		return "", false
	}
	return f.Get('a')
}

// Subjects returns every data field on the fixed subject-tag list, in
// record order.
func (r *Record) Subjects() []*Field {
	var out []*Field
	for _, f := range r.dataFields {
		for _, tag := range subjectTags {
			if f.Tag == tag {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// publisherStatement locates the 260/264 field pair used for
// publisher/place/date, preferring 260 and falling back to 264 with
// indicator2 == '1' (the RDA "Publication" statement) per §4.4.
func (r *Record) publisherStatement() (*Field, bool) {
	if f, ok := r.GetField("260"); ok {
		return f, true
	}
	for _, f := range r.FieldsByTag("264") {
		if f.Indicator2 == '1' {
			return f, true
		}
	}
	return nil, false
}

// Publisher returns 260$b, falling back to 264$b when indicator2 == '1'.
func (r *Record) Publisher() (string, bool) {
	f, ok := r.publisherStatement()
	if !ok {
		return "", false
	}
	return f.Get('b')
}

// Place returns 260$a, falling back to 264$a when indicator2 == '1'.
func (r *Record) Place() (string, bool) {
	f, ok := r.publisherStatement()
	if !ok {
		return "", false
	}
	return f.Get('a')
}

// Date returns 260$c, falling back to 264$c when indicator2 == '1'.
func (r *Record) Date() (string, bool) {
	f, ok := r.publisherStatement()
	if !ok {
		return "", false
	}
	return f.Get('c')
}

// PublicationYear parses a 4-digit year out of 260/264 $c, scanning for
// the first run of four consecutive digits and resetting the run on any
// non-digit; if $c is absent or has no such run, falls back to 008
// positions 7-10. Grounded in the original implementation's
// PublicationInfo::publication_year, including its zero-pad-if-incomplete
// behaviour for a trailing partial run at end-of-string.
func (r *Record) PublicationYear() (string, bool) {
	if date, ok := r.Date(); ok {
		if year, ok := scanFourDigitYear(date); ok {
			return year, true
		}
	}
	if f008, ok := r.GetControlField("008"); ok && len(f008) >= 11 {
		year := f008[7:11]
		if isAllDigits(year) {
			return year, true
		}
	}
	return "", false
}

// PublicationStatement formats "Place : Publisher, Date." from whichever
// of the three components are present, omitting separators for absent
// components.
func (r *Record) PublicationStatement() string {
	place, hasPlace := r.Place()
	publisher, hasPublisher := r.Publisher()
	date, hasDate := r.Date()

	out := ""
	if hasPlace {
		out += place
	}
	if hasPublisher {
		if out != "" {
			out += " : "
		}
		out += publisher
	}
	if hasDate {
		if out != "" {
			out += ", "
		}
		out += date
	}
	if out != "" {
		out += "."
	}
	return out
}

func scanFourDigitYear(s string) (string, bool) {
	run := make([]byte, 0, 4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			run = append(run, c)
			if len(run) == 4 {
				return string(run), true
			}
		} else {
			run = run[:0]
		}
	}
	if len(run) > 0 {
		for len(run) < 4 {
			run = append(run, '0')
		}
		return string(run), true
	}
	return "", false
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
