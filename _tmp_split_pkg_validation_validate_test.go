package validation

import (
	"testing"

	"github.com/bgrewell/marc-kit/pkg/leader"
	"github.com/bgrewell/marc-kit/pkg/record"
)

func TestValidateLeaderAcceptsDocumentedValues(t *testing.T) {
	l := leader.New('a', 'a')
	l.RecordStatus = 'n'
	l.BibliographicLevel = 'm'
	if got := ValidateLeader(l); len(got) != 0 {
		t.Errorf("expected no messages, got %v", got)
	}
}

func TestValidateLeaderFlagsUndocumentedValue(t *testing.T) {
	l := leader.New('a', 'a')
	l.RecordStatus = 'Q'
	messages := ValidateLeader(l)
	if len(messages) != 1 {
		t.Fatalf("expected exactly one message, got %v", messages)
	}
}

func TestValidateLinkageOccurrencesAcceptsUniqueOccurrences(t *testing.T) {
	rec := record.New(leader.New('a', ' '))
	a := &record.Field{Tag: "245", Indicator1: '0', Indicator2: '0'}
	a.AddSubfield('6', "880-01")
	a.AddSubfield('a', "Title")
	b := &record.Field{Tag: "880", Indicator1: '0', Indicator2: '0'}
	b.AddSubfield('6', "245-01")
	if err := rec.AddField(a); err != nil {
		t.Fatal(err)
	}
	if err := rec.AddField(b); err != nil {
		t.Fatal(err)
	}
	if err := ValidateLinkageOccurrences(rec); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateLinkageOccurrencesRejectsDuplicate(t *testing.T) {
	rec := record.New(leader.New('a', ' '))
	first := &record.Field{Tag: "880", Indicator1: '0', Indicator2: '0'}
	first.AddSubfield('6', "245-01")
	second := &record.Field{Tag: "880", Indicator1: '0', Indicator2: '0'}
	second.AddSubfield('6', "245-01")
	if err := rec.AddField(first); err != nil {
		t.Fatal(err)
	}
	if err := rec.AddField(second); err != nil {
		t.Fatal(err)
	}
	if err := ValidateLinkageOccurrences(rec); err == nil {
		t.Error("expected error for duplicate occurrence, got nil")
	}
}


