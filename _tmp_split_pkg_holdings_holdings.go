// Package holdings adds the holdings-record semantic view over the
// shared record model: location, caption, enumeration, textual-holdings,
// and item-information buckets, implemented as filter iterators over one
// field map (SPEC_FULL.md §5/§9 design note — the same redesign applied
// in pkg/authority; the original implementation's ten-plus separate
// Vec<Field> buckets are not mirrored here).
package holdings

import (
	"github.com/bgrewell/marc-kit/pkg/consts"
	"github.com/bgrewell/marc-kit/pkg/leader"
	"github.com/bgrewell/marc-kit/pkg/record"
)

// Record embeds the shared field model and adds holdings-flavour derived
// accessors.
type Record struct {
	*record.Record
}

// New constructs an empty holdings record with the given leader.
func New(lead leader.Leader) *Record {
	return &Record{Record: record.New(lead)}
}

// Type names which of the four holdings leader/06 record types this
// record carries.
type Type byte

const (
	TypeUnknown   Type = 0
	TypeMultipart Type = 'v'
	TypeSinglePart Type = 'u'
	TypeSerial    Type = 'x'
	TypeBasic     Type = 'y'
)

// HoldingsType decodes the holdings flavour from the leader's record-type
// position.
func (r *Record) HoldingsType() Type {
	for _, t := range consts.HoldingsRecordTypes {
		if r.Leader.RecordType == t {
			return Type(t)
		}
	}
	return TypeUnknown
}

// IsSerial reports whether this record describes serial holdings.
func (r *Record) IsSerial() bool {
	return r.HoldingsType() == TypeSerial
}

// IsMultipart reports whether this record describes multipart holdings.
func (r *Record) IsMultipart() bool {
	return r.HoldingsType() == TypeMultipart
}

// Locations returns every 852 field.
func (r *Record) Locations() []*record.Field {
	return r.FieldsByTag("852")
}

// Captions returns every 853-855 field (basic, supplementary, and index
// captions).
func (r *Record) Captions() []*record.Field {
	return r.fieldsInTagRange("853", "855")
}

// Enumeration returns every 863-865 field (enumeration/chronology).
func (r *Record) Enumeration() []*record.Field {
	return r.fieldsInTagRange("863", "865")
}

// TextualHoldings returns every 866-868 field.
func (r *Record) TextualHoldings() []*record.Field {
	return r.fieldsInTagRange("866", "868")
}

// ItemInformation returns every 876-878 field.
func (r *Record) ItemInformation() []*record.Field {
	return r.fieldsInTagRange("876", "878")
}

func (r *Record) fieldsInTagRange(start, end string) []*record.Field {
	var out []*record.Field
	for _, f := range r.Fields() {
		if len(f.Tag) == 3 && f.Tag >= start && f.Tag <= end {
			out = append(out, f)
		}
	}
	return out
}

// AcquisitionStatus decodes 008/06.
type AcquisitionStatus byte

const (
	AcqStatusUnknown      AcquisitionStatus = 0
	AcqStatusClosed       AcquisitionStatus = '0'
	AcqStatusCurrentlyReceived AcquisitionStatus = '1'
	AcqStatusCeased       AcquisitionStatus = '2'
	AcqStatusDiscontinued AcquisitionStatus = '3'
)

// AcquisitionStatus returns the decoded 008/06 value, or AcqStatusUnknown
// if the control field is too short or absent.
func (r *Record) AcquisitionStatus() AcquisitionStatus {
	f008, ok := r.GetControlField("008")
	if !ok || len(f008) < 7 {
		return AcqStatusUnknown
	}
	return AcquisitionStatus(f008[6])
}

// MethodOfAcquisition decodes 008/07.
type MethodOfAcquisition byte

const (
	MethodUnknown   MethodOfAcquisition = 0
	MethodPurchase  MethodOfAcquisition = 'p'
	MethodGift      MethodOfAcquisition = 'g'
	MethodExchange  MethodOfAcquisition = 'x'
	MethodDepository MethodOfAcquisition = 'd'
)

// MethodOfAcquisition returns the decoded 008/07 value, or MethodUnknown
// if the control field is too short or absent.
func (r *Record) MethodOfAcquisition() MethodOfAcquisition {
	f008, ok := r.GetControlField("008")
	if !ok || len(f008) < 8 {
		return MethodUnknown
	}
	return MethodOfAcquisition(f008[7])
}

// Completeness decodes 008/16.
type Completeness byte

const (
	CompletenessUnknown  Completeness = 0
	CompletenessComplete Completeness = '1'
	CompletenessIncomplete Completeness = '2'
	CompletenessScattered Completeness = '3'
	CompletenessNotApplicable Completeness = '4'
)

// Completeness returns the decoded 008/16 value, or CompletenessUnknown if
// the control field is too short or absent.
func (r *Record) Completeness() Completeness {
	f008, ok := r.GetControlField("008")
	if !ok || len(f008) < 17 {
		return CompletenessUnknown
	}
	return Completeness(f008[16])
}


