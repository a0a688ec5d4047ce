package marcio

import (
	"fmt"
	"io"

	marckit "github.com/bgrewell/marc-kit"
	"github.com/bgrewell/marc-kit/pkg/consts"
	"github.com/bgrewell/marc-kit/pkg/encoding"
	"github.com/bgrewell/marc-kit/pkg/logging"
	"github.com/bgrewell/marc-kit/pkg/marc8"
	"github.com/bgrewell/marc-kit/pkg/record"
)

// WriteOptions configures a Writer.
type WriteOptions struct {
	Logger *logging.Logger
}

// WriteOption mutates a WriteOptions.
type WriteOption func(*WriteOptions)

// WithWriterLogger attaches a logger to the writer.
func WithWriterLogger(l *logging.Logger) WriteOption {
	return func(o *WriteOptions) { o.Logger = l }
}

// Writer serialises MARC records to an underlying byte sink, one record
// at a time, recomputing the leader's record length and base address
// from the actual serialised content.
type Writer struct {
	dst  io.Writer
	opts WriteOptions
}

// NewWriter wraps dst.
func NewWriter(dst io.Writer, opts ...WriteOption) *Writer {
	o := WriteOptions{Logger: logging.DefaultLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Writer{dst: dst, opts: o}
}

type serialisedField struct {
	tag    string
	bytes  []byte
	offset int
}

// WriteRecord serialises rec: control fields first, then data fields,
// each in insertion order, matching the record model's grouping.
func (w *Writer) WriteRecord(rec *record.Record) error {
	enc := marc8.EncodingUTF8
	if rec.Leader.IsMARC8() {
		enc = marc8.EncodingMARC8
	}

	var data []byte
	var fields []serialisedField

	for _, cf := range rec.ControlFields() {
		encoded, err := marc8.Encode(cf.Value, enc)
		if err != nil {
			return marckit.WrapError(marckit.KindEncoding, "encoding control field "+cf.Tag, err)
		}
		offset := len(data)
		data = append(data, encoded...)
		data = append(data, consts.FieldTerminator)
		fields = append(fields, serialisedField{tag: cf.Tag, bytes: encoded, offset: offset})
	}

	for _, f := range rec.Fields() {
		fieldBytes, err := serialiseDataField(f, enc)
		if err != nil {
			return err
		}
		offset := len(data)
		data = append(data, fieldBytes...)
		data = append(data, consts.FieldTerminator)
		fields = append(fields, serialisedField{tag: f.Tag, bytes: fieldBytes, offset: offset})
	}

	directory := make([]byte, 0, len(fields)*consts.DirectoryEntryLength+1)
	for _, f := range fields {
		entry, err := directoryEntryBytes(f)
		if err != nil {
			return err
		}
		directory = append(directory, entry...)
	}
	directory = append(directory, consts.FieldTerminator)

	baseAddress := consts.LeaderLength + len(directory)
	if baseAddress > consts.MaxRecordLength {
		return marckit.NewError(marckit.KindInvalidRecord, "base address exceeds 99999")
	}
	recordLength := baseAddress + len(data) + 1
	if recordLength > consts.MaxRecordLength {
		return marckit.NewError(marckit.KindInvalidRecord, "record length exceeds 99999")
	}

	lead := rec.Leader
	lead.RecordLength = recordLength
	lead.BaseAddress = baseAddress

	if _, err := w.dst.Write(lead.AsBytes()); err != nil {
		return marckit.WrapError(marckit.KindIO, "writing leader", err)
	}
	if _, err := w.dst.Write(directory); err != nil {
		return marckit.WrapError(marckit.KindIO, "writing directory", err)
	}
	if _, err := w.dst.Write(data); err != nil {
		return marckit.WrapError(marckit.KindIO, "writing data section", err)
	}
	if _, err := w.dst.Write([]byte{consts.RecordTerminator}); err != nil {
		return marckit.WrapError(marckit.KindIO, "writing record terminator", err)
	}
	return nil
}

func serialiseDataField(f *record.Field, enc marc8.Encoding) ([]byte, error) {
	out := []byte{f.Indicator1, f.Indicator2}
	for _, sf := range f.Subfields.All() {
		encoded, err := marc8.Encode(sf.Value, enc)
		if err != nil {
			return nil, marckit.WrapError(marckit.KindEncoding, "encoding subfield "+f.Tag, err)
		}
		out = append(out, consts.SubfieldDelimiter, sf.Code)
		out = append(out, encoded...)
	}
	return out, nil
}

func directoryEntryBytes(f serialisedField) ([]byte, error) {
	if len(f.tag) != consts.DirectoryTagWidth {
		return nil, marckit.NewError(marckit.KindInvalidField, fmt.Sprintf("tag %q is not %d bytes", f.tag, consts.DirectoryTagWidth))
	}
	length := len(f.bytes) + 1 // +1 for the field terminator
	if length >= pow10(consts.DirectoryLengthWidth) {
		return nil, marckit.NewError(marckit.KindInvalidField, fmt.Sprintf("field %s length %d overflows directory width", f.tag, length))
	}
	if f.offset >= pow10(consts.DirectoryOffsetWidth) {
		return nil, marckit.NewError(marckit.KindInvalidField, fmt.Sprintf("field %s offset %d overflows directory width", f.tag, f.offset))
	}
	entry := make([]byte, 0, consts.DirectoryEntryLength)
	entry = append(entry, f.tag...)
	entry = append(entry, encoding.PadDigits(length, consts.DirectoryLengthWidth)...)
	entry = append(entry, encoding.PadDigits(f.offset, consts.DirectoryOffsetWidth)...)
	return entry, nil
}

func pow10(n int) int {
	v := 1
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}


