package swiftdsv

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for codec events.
var (
	SignalCodecCreated   = capitan.NewSignal("swiftdsv.codec.created", "Codec configured")
	SignalDecodeComplete = capitan.NewSignal("swiftdsv.decode.complete", "Decode operation finished")
	SignalHeaderComplete = capitan.NewSignal("swiftdsv.header.complete", "Header row decode finished")
	SignalEncodeComplete = capitan.NewSignal("swiftdsv.encode.complete", "Encode operation finished")
)

// Keys for typed event data.
var (
	KeyDelimiter = capitan.NewStringKey("delimiter")
	KeyEscaper   = capitan.NewStringKey("escaper")
	KeySize      = capitan.NewIntKey("size")
	KeyRows      = capitan.NewIntKey("rows")
	KeyFields    = capitan.NewIntKey("fields")
	KeyDuration  = capitan.NewDurationKey("duration")
	KeyError     = capitan.NewErrorKey("error")
)

func emitCodecCreated(delimiter, escaper rune) {
	capitan.Emit(context.Background(), SignalCodecCreated,
		KeyDelimiter.Field(string(delimiter)),
		KeyEscaper.Field(string(escaper)),
	)
}

func emitCodecRejected(delimiter, escaper rune, err error) {
	capitan.Error(context.Background(), SignalCodecCreated,
		KeyDelimiter.Field(string(delimiter)),
		KeyEscaper.Field(string(escaper)),
		KeyError.Field(err),
	)
}

func emitDecodeComplete(size int, table [][]string, duration time.Duration, err error) {
	fields := tableFields(size, table, duration)
	if err != nil {
		capitan.Error(context.Background(), SignalDecodeComplete, append(fields, KeyError.Field(err))...)
		return
	}
	capitan.Emit(context.Background(), SignalDecodeComplete, fields...)
}

func emitHeaderComplete(size int, header []string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeySize.Field(size),
		KeyFields.Field(len(header)),
		KeyDuration.Field(duration),
	}
	if err != nil {
		capitan.Error(context.Background(), SignalHeaderComplete, append(fields, KeyError.Field(err))...)
		return
	}
	capitan.Emit(context.Background(), SignalHeaderComplete, fields...)
}

func emitEncodeComplete(size, rows, width int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeySize.Field(size),
		KeyRows.Field(rows),
		KeyFields.Field(width),
		KeyDuration.Field(duration),
	}
	if err != nil {
		capitan.Error(context.Background(), SignalEncodeComplete, append(fields, KeyError.Field(err))...)
		return
	}
	capitan.Emit(context.Background(), SignalEncodeComplete, fields...)
}

// tableFields describes a decoded table; size is the length of the consumed text.
func tableFields(size int, table [][]string, duration time.Duration) []capitan.Field {
	fields := []capitan.Field{
		KeySize.Field(size),
		KeyRows.Field(len(table)),
		KeyDuration.Field(duration),
	}
	if len(table) > 0 {
		fields = append(fields, KeyFields.Field(len(table[0])))
	}
	return fields
}
