package midisettings

import "testing"

func TestNewDefaults(t *testing.T) {
	s := New()
	if s.ControlMapChannel() != 0x11 {
		t.Errorf("ControlMapChannel() = 0x%X, want 0x11", s.ControlMapChannel())
	}
	if s.SongRowCueChannel() != 0x0B {
		t.Errorf("SongRowCueChannel() = 0x%X, want 0x0B", s.SongRowCueChannel())
	}
	for i := 0; i < trackCount; i++ {
		ch, err := s.TrackInputChannel(i)
		if err != nil {
			t.Fatal(err)
		}
		if ch != int64(i+1) {
			t.Errorf("TrackInputChannel(%d) = %d, want %d", i, ch, i+1)
		}
	}
}

func TestWriteExactSizeAndRoundTrip(t *testing.T) {
	s := New()
	s.SetReceiveSync(true)
	s.SetSendTransport(2)
	s.SetTrackInputInstrument(3, 42)

	data := s.Write()
	if len(data) != BlockSize {
		t.Fatalf("len(Write()) = %d, want %d", len(data), BlockSize)
	}

	read, err := Read(data)
	if err != nil {
		t.Fatal(err)
	}
	if !read.ReceiveSync() {
		t.Error("ReceiveSync() after round trip = false, want true")
	}
	if read.SendTransport() != 2 {
		t.Errorf("SendTransport() after round trip = %d, want 2", read.SendTransport())
	}
	inst, _ := read.TrackInputInstrument(3)
	if inst != 42 {
		t.Errorf("TrackInputInstrument(3) after round trip = %d, want 42", inst)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := New()
	c := s.Clone()
	c.SetControlMapChannel(0x05)
	if s.ControlMapChannel() != 0x11 {
		t.Error("mutating clone affected the original")
	}
}
