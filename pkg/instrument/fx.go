package instrument

import "github.com/m8kit/m8codec/pkg/enum"

// FXCommand is the shared FX command enum used by every phrase FX slot,
// grounded on original_source/m8/enums/fx.go's M8FXEnum: sequencer commands
// occupy 0x00-0x1A, mixer/FX commands occupy 0x1B-0x46. Unlike modulator
// destinations, command meaning does not depend on the targeted instrument
// family.
var FXCommand = enum.NewClass("FX_COMMAND", []enum.Member{
	{Name: "ARP", Value: 0x00},
	{Name: "CHA", Value: 0x01},
	{Name: "DEL", Value: 0x02},
	{Name: "GRV", Value: 0x03},
	{Name: "HOP", Value: 0x04},
	{Name: "KIL", Value: 0x05},
	{Name: "RND", Value: 0x06},
	{Name: "RNL", Value: 0x07},
	{Name: "RET", Value: 0x08},
	{Name: "REP", Value: 0x09},
	{Name: "RMX", Value: 0x0A},
	{Name: "NTH", Value: 0x0B},
	{Name: "PSL", Value: 0x0C},
	{Name: "PBN", Value: 0x0D},
	{Name: "PVB", Value: 0x0E},
	{Name: "PVX", Value: 0x0F},
	{Name: "SCA", Value: 0x10},
	{Name: "SCG", Value: 0x11},
	{Name: "SED", Value: 0x12},
	{Name: "SNG", Value: 0x13},
	{Name: "TBL", Value: 0x14},
	{Name: "THO", Value: 0x15},
	{Name: "TIC", Value: 0x16},
	{Name: "TBX", Value: 0x17},
	{Name: "TPO", Value: 0x18},
	{Name: "TSP", Value: 0x19},
	{Name: "OFF", Value: 0x1A},
	{Name: "VMV", Value: 0x1B},
	{Name: "XCM", Value: 0x1C},
	{Name: "XCF", Value: 0x1D},
	{Name: "XCW", Value: 0x1E},
	{Name: "XCR", Value: 0x1F},
	{Name: "XDT", Value: 0x20},
	{Name: "XDF", Value: 0x21},
	{Name: "XDW", Value: 0x22},
	{Name: "XDR", Value: 0x23},
	{Name: "XRS", Value: 0x24},
	{Name: "XRD", Value: 0x25},
	{Name: "XRM", Value: 0x26},
	{Name: "XRF", Value: 0x27},
	{Name: "XRW", Value: 0x28},
	{Name: "XRZ", Value: 0x29},
	{Name: "VCH", Value: 0x2A},
	{Name: "VDE", Value: 0x2B},
	{Name: "VRE", Value: 0x2C},
	{Name: "VT1", Value: 0x2D},
	{Name: "VT2", Value: 0x2E},
	{Name: "VT3", Value: 0x2F},
	{Name: "VT4", Value: 0x30},
	{Name: "VT5", Value: 0x31},
	{Name: "VT6", Value: 0x32},
	{Name: "VT7", Value: 0x33},
	{Name: "VT8", Value: 0x34},
	{Name: "DJC", Value: 0x35},
	{Name: "VIN", Value: 0x36},
	{Name: "ICH", Value: 0x37},
	{Name: "IDE", Value: 0x38},
	{Name: "IRE", Value: 0x39},
	{Name: "VI2", Value: 0x3A},
	{Name: "IC2", Value: 0x3B},
	{Name: "ID2", Value: 0x3C},
	{Name: "IR2", Value: 0x3D},
	{Name: "USB", Value: 0x3E},
	{Name: "DJR", Value: 0x3F},
	{Name: "DJT", Value: 0x40},
	{Name: "EQM", Value: 0x41},
	{Name: "EQI", Value: 0x42},
	{Name: "INS", Value: 0x43},
	{Name: "RTO", Value: 0x44},
	{Name: "ARC", Value: 0x45},
	{Name: "GGR", Value: 0x46},
})

// FilterType is shared by every family's filter parameter group.
var FilterType = enum.NewClass("FILTER_TYPE", []enum.Member{
	{Name: "OFF", Value: 0x00},
	{Name: "LOWPASS", Value: 0x01},
	{Name: "HIGHPASS", Value: 0x02},
	{Name: "BANDPASS", Value: 0x03},
	{Name: "BANDSTOP", Value: 0x04},
})

// LimiterType is shared by every family's amp parameter group.
var LimiterType = enum.NewClass("LIMITER_TYPE", []enum.Member{
	{Name: "CLIP", Value: 0x00},
	{Name: "SIN", Value: 0x01},
	{Name: "FOLD", Value: 0x02},
	{Name: "WRAP", Value: 0x03},
	{Name: "POST", Value: 0x04},
	{Name: "POSTAD", Value: 0x05},
})
