// Package midisettings implements the project-level MIDI configuration
// block: clock sync, transport behavior, recording, and per-track input
// routing, grounded on original_source/m8/api/midi_settings.go.
package midisettings

import (
	"github.com/m8kit/m8codec/pkg/enum"
	"github.com/m8kit/m8codec/pkg/schema"
)

// BlockSize is the on-disk size of the MIDI settings block.
const BlockSize = 27

// Offset is where the block lives inside a project file, immediately
// after the 147-byte metadata block that starts at offset 14.
const Offset = 161

// TransportMode controls when MIDI transport messages are sent/received.
var TransportMode = enum.NewClass("TRANSPORT_MODE", []enum.Member{
	{Name: "OFF", Value: 0x00},
	{Name: "PATTERN", Value: 0x01},
	{Name: "SONG", Value: 0x02},
})

// TrackInputMode controls how incoming MIDI notes are applied to a track.
var TrackInputMode = enum.NewClass("TRACK_INPUT_MODE", []enum.Member{
	{Name: "MONO", Value: 0x00},
	{Name: "LEGATO", Value: 0x01},
	{Name: "POLY", Value: 0x02},
})

// RecordDelayKill controls how delay/kill commands are recorded.
var RecordDelayKill = enum.NewClass("RECORD_DELAY_KILL", []enum.Member{
	{Name: "OFF", Value: 0x00},
	{Name: "KILL", Value: 0x01},
	{Name: "DELAY", Value: 0x02},
	{Name: "BOTH", Value: 0x03},
})

const trackCount = 8

func fieldMap() *schema.Map {
	fields := []schema.Field{
		{Name: "receive_sync", Offset: 0, Width: 1, Kind: schema.KindU8},
		{Name: "receive_transport", Offset: 1, Width: 1, Kind: schema.KindU8, EnumBinding: "TRANSPORT_MODE"},
		{Name: "send_sync", Offset: 2, Width: 1, Kind: schema.KindU8},
		{Name: "send_transport", Offset: 3, Width: 1, Kind: schema.KindU8, EnumBinding: "TRANSPORT_MODE"},
		{Name: "record_note_channel", Offset: 4, Width: 1, Kind: schema.KindU8},
		{Name: "record_note_velocity", Offset: 5, Width: 1, Kind: schema.KindU8},
		{Name: "record_delay_kill", Offset: 6, Width: 1, Kind: schema.KindU8, EnumBinding: "RECORD_DELAY_KILL"},
		{Name: "control_map_channel", Offset: 7, Width: 1, Kind: schema.KindU8},
		{Name: "song_row_cue_channel", Offset: 8, Width: 1, Kind: schema.KindU8},
		{Name: "track_input_program_change", Offset: 25, Width: 1, Kind: schema.KindU8},
		{Name: "track_input_mode", Offset: 26, Width: 1, Kind: schema.KindU8, EnumBinding: "TRACK_INPUT_MODE"},
	}
	for i := 0; i < trackCount; i++ {
		fields = append(fields,
			schema.Field{Name: trackChannelField(i), Offset: 9 + i, Width: 1, Kind: schema.KindU8},
			schema.Field{Name: trackInstrumentField(i), Offset: 17 + i, Width: 1, Kind: schema.KindU8},
		)
	}
	return schema.NewMap(fields)
}

func trackChannelField(track int) string    { return "track_input_channel_" + string(rune('0'+track)) }
func trackInstrumentField(track int) string { return "track_input_instrument_" + string(rune('0'+track)) }

var mapInstance = fieldMap()

func defaults() []schema.DefaultEntry {
	entries := []schema.DefaultEntry{
		{Name: "control_map_channel", Value: 0x11},
		{Name: "song_row_cue_channel", Value: 0x0B},
		{Name: "record_note_velocity", Value: 0x01},
		{Name: "track_input_program_change", Value: 0x01},
		{Name: "track_input_mode", Value: 0x01}, // TrackInputMode LEGATO
	}
	for i := 0; i < trackCount; i++ {
		entries = append(entries, schema.DefaultEntry{Name: trackChannelField(i), Value: i + 1})
	}
	return entries
}

// Settings is the project-level MIDI configuration block.
type Settings struct {
	rec *schema.Record
}

// New builds a Settings block with m8-js-matching defaults: channel 17
// control map, channel 11 song row cue, velocity recording on, track input
// channels 1-8, program change on, legato track input.
func New() *Settings {
	rec := schema.NewRecord(mapInstance, BlockSize)
	rec.ApplyDefaults(defaults())
	return &Settings{rec: rec}
}

// Read parses a 27-byte MIDI settings block.
func Read(data []byte) (*Settings, error) {
	rec, err := schema.Read(mapInstance, data, BlockSize)
	if err != nil {
		return nil, err
	}
	return &Settings{rec: rec}, nil
}

// Write emits exactly BlockSize bytes.
func (s *Settings) Write() []byte { return s.rec.Write() }

// Clone returns an independent deep copy.
func (s *Settings) Clone() *Settings { return &Settings{rec: s.rec.Clone()} }

func (s *Settings) getBool(name string) bool { v, _ := s.rec.GetInt(name); return v != 0 }
func (s *Settings) setBool(name string, v bool) {
	n := int64(0)
	if v {
		n = 1
	}
	s.rec.SetInt(name, n)
}

// ReceiveSync reports whether the project receives MIDI clock.
func (s *Settings) ReceiveSync() bool          { return s.getBool("receive_sync") }
func (s *Settings) SetReceiveSync(v bool)      { s.setBool("receive_sync", v) }
func (s *Settings) SendSync() bool             { return s.getBool("send_sync") }
func (s *Settings) SetSendSync(v bool)         { s.setBool("send_sync", v) }

func (s *Settings) ReceiveTransport() int64     { v, _ := s.rec.GetInt("receive_transport"); return v }
func (s *Settings) SetReceiveTransport(v int64) { s.rec.SetInt("receive_transport", v) }
func (s *Settings) SendTransport() int64        { v, _ := s.rec.GetInt("send_transport"); return v }
func (s *Settings) SetSendTransport(v int64)    { s.rec.SetInt("send_transport", v) }

func (s *Settings) ControlMapChannel() int64     { v, _ := s.rec.GetInt("control_map_channel"); return v }
func (s *Settings) SetControlMapChannel(v int64) { s.rec.SetInt("control_map_channel", v) }

func (s *Settings) SongRowCueChannel() int64     { v, _ := s.rec.GetInt("song_row_cue_channel"); return v }
func (s *Settings) SetSongRowCueChannel(v int64) { s.rec.SetInt("song_row_cue_channel", v) }

// TrackInputChannel returns the input channel for a track (0..7).
func (s *Settings) TrackInputChannel(track int) (int64, error) {
	return s.rec.GetInt(trackChannelField(track))
}

// SetTrackInputChannel sets the input channel for a track (0..7).
func (s *Settings) SetTrackInputChannel(track int, channel int64) error {
	return s.rec.SetInt(trackChannelField(track), channel)
}

// TrackInputInstrument returns the input instrument for a track (0..7).
func (s *Settings) TrackInputInstrument(track int) (int64, error) {
	return s.rec.GetInt(trackInstrumentField(track))
}

// SetTrackInputInstrument sets the input instrument for a track (0..7).
func (s *Settings) SetTrackInputInstrument(track int, instrument int64) error {
	return s.rec.SetInt(trackInstrumentField(track), instrument)
}
